package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Game Metrics
var (
	RunsStarted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRunsStarted,
			Help: HelpTextRunsStarted,
		},
	)

	RunsEnded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRunsEnded,
			Help: HelpTextRunsEnded,
		},
		[]string{LabelReason},
	)

	RoomsExplored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRoomsExplored,
			Help: HelpTextRoomsExplored,
		},
		[]string{LabelRoomType},
	)

	CombatsResolved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCombatsResolved,
			Help: HelpTextCombatsResolved,
		},
		[]string{LabelOutcome},
	)

	CombatTurns = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameCombatTurns,
			Help:    HelpTextCombatTurns,
			Buckets: CombatTurnBuckets,
		},
	)

	EnemiesDefeated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEnemiesDefeated,
			Help: HelpTextEnemiesDefeated,
		},
		[]string{LabelMiniBoss},
	)

	ItemsUsed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsUsed,
			Help: HelpTextItemsUsed,
		},
		[]string{LabelEffect},
	)

	EventsResolved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsResolved,
			Help: HelpTextEventsResolved,
		},
		[]string{LabelSuccess},
	)

	ShardsAwarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameShardsAwarded,
			Help: HelpTextShardsAwarded,
		},
	)

	UpgradesPurchased = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUpgradesPurchased,
			Help: HelpTextUpgradesPurchased,
		},
		[]string{LabelUpgrade},
	)

	ShardsSpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameShardsSpent,
			Help: HelpTextShardsSpent,
		},
	)

	ProfileCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameProfileCache,
			Help: HelpTextProfileCache,
		},
		[]string{LabelResult},
	)
)
