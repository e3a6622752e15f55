package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/Shardlands_Go/internal/event"
	"github.com/osse101/Shardlands_Go/internal/metrics"
	"github.com/osse101/Shardlands_Go/internal/stats"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus event.Bus
	Recorder stats.Recorder
}

// RegisterEventHandlers subscribes the lifetime statistics handler and the
// prometheus collector.
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	stats.NewEventHandler(deps.Recorder).Register(deps.EventBus)
	slog.Info(LogMsgStatsHandlerRegistered)

	if err := metrics.NewEventMetricsCollector().Register(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorEnabled)

	return nil
}
