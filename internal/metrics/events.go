package metrics

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/osse101/Shardlands_Go/internal/event"
	"github.com/osse101/Shardlands_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all game events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	for _, eventType := range event.AllTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
	slog.Debug(LogMsgCollectorRegistered, "types", len(event.AllTypes))
	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.RunStarted:
		RunsStarted.Inc()
	case event.RunEnded:
		var p event.RunEndedPayloadV1
		if p, err = event.DecodePayload[event.RunEndedPayloadV1](evt.Payload); err == nil {
			RunsEnded.WithLabelValues(p.Reason).Inc()
			ShardsAwarded.Add(float64(p.ShardsAwarded))
		}
	case event.RoomEntered:
		var p event.RoomEnteredPayloadV1
		if p, err = event.DecodePayload[event.RoomEnteredPayloadV1](evt.Payload); err == nil && p.FirstVisit {
			RoomsExplored.WithLabelValues(p.RoomType).Inc()
		}
	case event.CombatEnded:
		var p event.CombatEndedPayloadV1
		if p, err = event.DecodePayload[event.CombatEndedPayloadV1](evt.Payload); err == nil {
			CombatsResolved.WithLabelValues(p.Outcome).Inc()
			CombatTurns.Observe(float64(p.Turns))
		}
	case event.EnemyDefeated:
		var p event.EnemyDefeatedPayloadV1
		if p, err = event.DecodePayload[event.EnemyDefeatedPayloadV1](evt.Payload); err == nil {
			EnemiesDefeated.WithLabelValues(strconv.FormatBool(p.MiniBoss)).Inc()
		}
	case event.ItemUsed:
		var p event.ItemUsedPayloadV1
		if p, err = event.DecodePayload[event.ItemUsedPayloadV1](evt.Payload); err == nil {
			ItemsUsed.WithLabelValues(p.Effect).Inc()
		}
	case event.EventResolved:
		var p event.EventResolvedPayloadV1
		if p, err = event.DecodePayload[event.EventResolvedPayloadV1](evt.Payload); err == nil {
			EventsResolved.WithLabelValues(strconv.FormatBool(p.Success)).Inc()
		}
	case event.UpgradePurchased:
		var p event.UpgradePurchasedPayloadV1
		if p, err = event.DecodePayload[event.UpgradePurchasedPayloadV1](evt.Payload); err == nil {
			UpgradesPurchased.WithLabelValues(p.Key).Inc()
			ShardsSpent.Add(float64(p.Cost))
		}
	}

	// A bad payload only costs a metric sample; it must not fail the publish.
	if err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		logger.FromContext(ctx).Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
	}
	return nil
}
