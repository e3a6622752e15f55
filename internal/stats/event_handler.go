// Package stats folds game events into the profile's lifetime statistics.
package stats

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/Shardlands_Go/internal/domain"
	"github.com/osse101/Shardlands_Go/internal/event"
)

// Recorder applies a statistics update to the persisted profile.
type Recorder interface {
	RecordStats(fn func(*domain.LifetimeStats))
}

// EventHandler handles events related to stats
type EventHandler struct {
	recorder Recorder
}

// NewEventHandler creates a new stats event handler
func NewEventHandler(recorder Recorder) *EventHandler {
	return &EventHandler{recorder: recorder}
}

// Register subscribes the handler to relevant events
func (h *EventHandler) Register(bus event.Bus) {
	bus.Subscribe(event.RunStarted, h.HandleRunStarted)
	bus.Subscribe(event.RoomEntered, h.HandleRoomEntered)
	bus.Subscribe(event.CombatEnded, h.HandleCombatEnded)
	bus.Subscribe(event.EnemyDefeated, h.HandleEnemyDefeated)
	bus.Subscribe(event.ItemUsed, h.HandleItemUsed)
	bus.Subscribe(event.EventResolved, h.HandleEventResolved)
	bus.Subscribe(event.RunEnded, h.HandleRunEnded)
	bus.Subscribe(event.UpgradePurchased, h.HandleUpgradePurchased)
	slog.Debug(LogMsgHandlerRegistered)
}

// HandleRunStarted counts a new run
func (h *EventHandler) HandleRunStarted(ctx context.Context, evt event.Event) error {
	h.recorder.RecordStats(func(s *domain.LifetimeStats) { s.Runs++ })
	return nil
}

// HandleRoomEntered counts first visits only
func (h *EventHandler) HandleRoomEntered(ctx context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.RoomEnteredPayloadV1](evt.Payload)
	if err != nil {
		return fmt.Errorf(ErrMsgDecodePayload, evt.Type, err)
	}
	if !p.FirstVisit {
		return nil
	}
	h.recorder.RecordStats(func(s *domain.LifetimeStats) { s.RoomsExplored++ })
	return nil
}

// HandleCombatEnded accumulates damage totals
func (h *EventHandler) HandleCombatEnded(ctx context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.CombatEndedPayloadV1](evt.Payload)
	if err != nil {
		return fmt.Errorf(ErrMsgDecodePayload, evt.Type, err)
	}
	h.recorder.RecordStats(func(s *domain.LifetimeStats) {
		s.DamageDealt += p.DamageDealt
		s.DamageTaken += p.DamageTaken
	})
	return nil
}

// HandleEnemyDefeated counts kills and mini-boss kills
func (h *EventHandler) HandleEnemyDefeated(ctx context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.EnemyDefeatedPayloadV1](evt.Payload)
	if err != nil {
		return fmt.Errorf(ErrMsgDecodePayload, evt.Type, err)
	}
	h.recorder.RecordStats(func(s *domain.LifetimeStats) {
		s.EnemiesDefeated++
		if p.MiniBoss {
			s.MiniBossesSlain++
		}
	})
	return nil
}

// HandleItemUsed counts consumed and preserved item uses alike
func (h *EventHandler) HandleItemUsed(ctx context.Context, evt event.Event) error {
	h.recorder.RecordStats(func(s *domain.LifetimeStats) { s.ItemsUsed++ })
	return nil
}

// HandleEventResolved counts narrative event outcomes
func (h *EventHandler) HandleEventResolved(ctx context.Context, evt event.Event) error {
	h.recorder.RecordStats(func(s *domain.LifetimeStats) { s.EventsResolved++ })
	return nil
}

// HandleRunEnded records how the run finished and what it banked
func (h *EventHandler) HandleRunEnded(ctx context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.RunEndedPayloadV1](evt.Payload)
	if err != nil {
		return fmt.Errorf(ErrMsgDecodePayload, evt.Type, err)
	}
	h.recorder.RecordStats(func(s *domain.LifetimeStats) {
		switch domain.RunEndReason(p.Reason) {
		case domain.RunEndDeath:
			s.Deaths++
		case domain.RunEndRetreat:
			s.Retreats++
		}
		s.ShardsCollected += p.ShardsAwarded
	})
	return nil
}

// HandleUpgradePurchased counts forge purchases
func (h *EventHandler) HandleUpgradePurchased(ctx context.Context, evt event.Event) error {
	h.recorder.RecordStats(func(s *domain.LifetimeStats) { s.UpgradesPurchased++ })
	return nil
}
