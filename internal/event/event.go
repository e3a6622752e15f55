package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/Shardlands_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Game event types
const (
	RunStarted       Type = domain.EventTypeRunStarted
	RunEnded         Type = domain.EventTypeRunEnded
	RoomEntered      Type = domain.EventTypeRoomEntered
	CombatEnded      Type = domain.EventTypeCombatEnded
	EnemyDefeated    Type = domain.EventTypeEnemyDefeated
	ItemUsed         Type = domain.EventTypeItemUsed
	EventResolved    Type = domain.EventTypeEventResolved
	UpgradePurchased Type = domain.EventTypeUpgradePurchased
)

// AllTypes lists every game event type, for subscribers that want them all.
var AllTypes = []Type{
	RunStarted,
	RunEnded,
	RoomEntered,
	CombatEnded,
	EnemyDefeated,
	ItemUsed,
	EventResolved,
	UpgradePurchased,
}

// MetadataKeyRunID carries the run correlation ID on run-scoped events.
const MetadataKeyRunID = "run_id"

// Typed event payloads for type safety

// RunStartedPayloadV1 is the typed payload for run start events
type RunStartedPayloadV1 struct {
	Rooms         int   `json:"rooms"`
	StartingItems int   `json:"starting_items"`
	Timestamp     int64 `json:"timestamp"`
}

// RoomEnteredPayloadV1 is the typed payload for room entry events
type RoomEnteredPayloadV1 struct {
	RoomID     int    `json:"room_id"`
	RoomType   string `json:"room_type"`
	X          int    `json:"x"`
	Y          int    `json:"y"`
	FirstVisit bool   `json:"first_visit"`
}

// CombatEndedPayloadV1 is the typed payload for combat resolution events
type CombatEndedPayloadV1 struct {
	Outcome         string `json:"outcome"`
	Turns           int    `json:"turns"`
	DamageDealt     int    `json:"damage_dealt"`
	DamageTaken     int    `json:"damage_taken"`
	EnemiesDefeated int    `json:"enemies_defeated"`
	MiniBoss        bool   `json:"mini_boss"`
}

// EnemyDefeatedPayloadV1 is the typed payload for enemy defeat events
type EnemyDefeatedPayloadV1 struct {
	Name       string `json:"name"`
	Level      int    `json:"level"`
	Experience int    `json:"experience"`
	MiniBoss   bool   `json:"mini_boss"`
}

// ItemUsedPayloadV1 is the typed payload for item use events
type ItemUsedPayloadV1 struct {
	ItemName  string `json:"item_name"`
	Effect    string `json:"effect"`
	Rarity    string `json:"rarity"`
	InCombat  bool   `json:"in_combat"`
	Preserved bool   `json:"preserved"`
}

// EventResolvedPayloadV1 is the typed payload for narrative event resolutions
type EventResolvedPayloadV1 struct {
	EventID string `json:"event_id"`
	Choice  int    `json:"choice"`
	Success bool   `json:"success"`
	Shards  int    `json:"shards"`
	Special string `json:"special,omitempty"`
}

// RunEndedPayloadV1 is the typed payload for run end events
type RunEndedPayloadV1 struct {
	Reason          string `json:"reason"`
	RoomsExplored   int    `json:"rooms_explored"`
	EnemiesDefeated int    `json:"enemies_defeated"`
	ShardsAwarded   int    `json:"shards_awarded"`
	Timestamp       int64  `json:"timestamp"`
}

// UpgradePurchasedPayloadV1 is the typed payload for forge purchases
type UpgradePurchasedPayloadV1 struct {
	Key        string `json:"key"`
	Count      int    `json:"count"`
	Cost       int    `json:"cost"`
	ShardsLeft int    `json:"shards_left"`
}

// Type-safe event constructors

func runMetadata(runID string) Metadata {
	if runID == "" {
		return nil
	}
	return map[string]interface{}{MetadataKeyRunID: runID}
}

// NewRunStartedEvent creates a new run started event
func NewRunStartedEvent(runID string, rooms, startingItems int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RunStarted,
		Payload: RunStartedPayloadV1{
			Rooms:         rooms,
			StartingItems: startingItems,
			Timestamp:     time.Now().Unix(),
		},
		Metadata: runMetadata(runID),
	}
}

// NewRoomEnteredEvent creates a new room entered event
func NewRoomEnteredEvent(runID string, room *domain.Room, firstVisit bool) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RoomEntered,
		Payload: RoomEnteredPayloadV1{
			RoomID:     room.ID,
			RoomType:   string(room.Type),
			X:          room.X,
			Y:          room.Y,
			FirstVisit: firstVisit,
		},
		Metadata: runMetadata(runID),
	}
}

// NewCombatEndedEvent creates a new combat ended event
func NewCombatEndedEvent(runID string, payload CombatEndedPayloadV1) Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     CombatEnded,
		Payload:  payload,
		Metadata: runMetadata(runID),
	}
}

// NewEnemyDefeatedEvent creates a new enemy defeated event
func NewEnemyDefeatedEvent(runID string, enemy *domain.Enemy) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    EnemyDefeated,
		Payload: EnemyDefeatedPayloadV1{
			Name:       enemy.Name,
			Level:      enemy.Level,
			Experience: enemy.Experience,
			MiniBoss:   enemy.IsMiniBoss,
		},
		Metadata: runMetadata(runID),
	}
}

// NewItemUsedEvent creates a new item used event
func NewItemUsedEvent(runID string, item domain.Item, inCombat, preserved bool) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemUsed,
		Payload: ItemUsedPayloadV1{
			ItemName:  item.Name,
			Effect:    string(item.Effect),
			Rarity:    string(item.Rarity),
			InCombat:  inCombat,
			Preserved: preserved,
		},
		Metadata: runMetadata(runID),
	}
}

// NewEventResolvedEvent creates a new narrative event resolution event
func NewEventResolvedEvent(runID string, payload EventResolvedPayloadV1) Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     EventResolved,
		Payload:  payload,
		Metadata: runMetadata(runID),
	}
}

// NewRunEndedEvent creates a new run ended event
func NewRunEndedEvent(runID string, reason domain.RunEndReason, rooms, enemies, awarded int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RunEnded,
		Payload: RunEndedPayloadV1{
			Reason:          string(reason),
			RoomsExplored:   rooms,
			EnemiesDefeated: enemies,
			ShardsAwarded:   awarded,
			Timestamp:       time.Now().Unix(),
		},
		Metadata: runMetadata(runID),
	}
}

// NewUpgradePurchasedEvent creates a new upgrade purchased event
func NewUpgradePurchasedEvent(key string, count, cost, shardsLeft int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    UpgradePurchased,
		Payload: UpgradePurchasedPayloadV1{
			Key:        key,
			Count:      count,
			Cost:       cost,
			ShardsLeft: shardsLeft,
		},
		Metadata: nil,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	// Handlers run synchronously so game state observed after Publish
	// already reflects every subscriber.
	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
