package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "shardlands_http_requests_total"
	MetricNameHTTPRequestDuration  = "shardlands_http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "shardlands_http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "shardlands_events_published_total"
	MetricNameEventHandlerErrors = "shardlands_event_handler_errors_total"
)

// Game metric names
const (
	MetricNameRunsStarted       = "shardlands_runs_started_total"
	MetricNameRunsEnded         = "shardlands_runs_ended_total"
	MetricNameRoomsExplored     = "shardlands_rooms_explored_total"
	MetricNameCombatsResolved   = "shardlands_combats_resolved_total"
	MetricNameCombatTurns       = "shardlands_combat_turns"
	MetricNameEnemiesDefeated   = "shardlands_enemies_defeated_total"
	MetricNameItemsUsed         = "shardlands_items_used_total"
	MetricNameEventsResolved    = "shardlands_narrative_events_resolved_total"
	MetricNameShardsAwarded     = "shardlands_shards_awarded_total"
	MetricNameUpgradesPurchased = "shardlands_upgrades_purchased_total"
	MetricNameShardsSpent       = "shardlands_shards_spent_total"
	MetricNameProfileCache      = "shardlands_profile_cache_lookups_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Game metric help text
const (
	HelpTextRunsStarted       = "Total number of runs started"
	HelpTextRunsEnded         = "Total number of runs ended by reason"
	HelpTextRoomsExplored     = "Total number of rooms entered for the first time by type"
	HelpTextCombatsResolved   = "Total number of combats resolved by outcome"
	HelpTextCombatTurns       = "Number of player turns per combat"
	HelpTextEnemiesDefeated   = "Total number of enemies defeated"
	HelpTextItemsUsed         = "Total number of items used by effect"
	HelpTextEventsResolved    = "Total number of narrative events resolved"
	HelpTextShardsAwarded     = "Total memory shards banked at run end"
	HelpTextUpgradesPurchased = "Total number of forge upgrades purchased"
	HelpTextShardsSpent       = "Total memory shards spent at the forge"
	HelpTextProfileCache      = "Profile cache lookups by result"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelType     = "type"
	LabelReason   = "reason"
	LabelOutcome  = "outcome"
	LabelRoomType = "room_type"
	LabelMiniBoss = "mini_boss"
	LabelEffect   = "effect"
	LabelSuccess  = "success"
	LabelUpgrade  = "upgrade"
	LabelResult   = "result"
)

// Cache lookup results
const (
	CacheResultHit  = "hit"
	CacheResultMiss = "miss"
)

// ============================================================================
// Buckets
// ============================================================================

// HTTPLatencyBuckets covers a local status endpoint
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1}

// CombatTurnBuckets covers short skirmishes through long mini-boss fights
var CombatTurnBuckets = []float64{1, 2, 3, 5, 8, 13, 21, 34}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgPayloadDecodeFailed = "Failed to decode event payload for metrics"
	LogMsgCollectorRegistered = "Event metrics collector registered"
)
