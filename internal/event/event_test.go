package event

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Shardlands_Go/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	handled := false

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		assert.Equal(t, eventType, event.Type)
		assert.Equal(t, "payload", event.Payload)
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{
		Version: "1.0",
		Type:    eventType,
		Payload: "payload",
	})

	require.NoError(t, err)
	assert.True(t, handled, "handler was not called")
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	count := 0

	handler := func(ctx context.Context, event Event) error {
		count++
		return nil
	}

	bus.Subscribe(eventType, handler)
	bus.Subscribe(eventType, handler)

	require.NoError(t, bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType}))
	assert.Equal(t, 2, count)
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	second := false

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		return errors.New("handler error")
	})
	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		second = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "handler error")
	assert.True(t, second, "later handlers still run after a failure")
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	assert.NoError(t, bus.Publish(context.Background(), Event{Type: RunStarted}))
}

func TestConstructors_CarryRunID(t *testing.T) {
	room := domain.NewRoom(domain.RoomCombat, "a room")
	room.ID, room.X, room.Y = 4, 1, 2

	evt := NewRoomEnteredEvent("run-1", room, true)
	assert.Equal(t, RoomEntered, evt.Type)
	assert.Equal(t, EventSchemaVersion, evt.Version)
	assert.Equal(t, "run-1", evt.GetMetadataValue(MetadataKeyRunID))

	payload, err := DecodePayload[RoomEnteredPayloadV1](evt.Payload)
	require.NoError(t, err)
	assert.Equal(t, RoomEnteredPayloadV1{RoomID: 4, RoomType: "combat", X: 1, Y: 2, FirstVisit: true}, payload)

	purchase := NewUpgradePurchasedEvent(domain.UpgradeAttack, 1, 150, 50)
	assert.Nil(t, purchase.GetMetadataValue(MetadataKeyRunID))
}

func TestDecodePayload_FromMap(t *testing.T) {
	raw := map[string]interface{}{"key": "attack", "count": 2, "cost": 150, "shards_left": 10}
	payload, err := DecodePayload[UpgradePurchasedPayloadV1](raw)
	require.NoError(t, err)
	assert.Equal(t, "attack", payload.Key)
	assert.Equal(t, 2, payload.Count)
}

func TestDeadLetterBus_RecordsFailures(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dead.jsonl")
	dlw, err := NewDeadLetterWriter(path)
	require.NoError(t, err)

	inner := NewMemoryBus()
	inner.Subscribe(ItemUsed, func(ctx context.Context, event Event) error {
		return errors.New("boom")
	})
	bus := NewDeadLetterBus(inner, dlw)

	item := domain.Item{Name: "Health Potion", Effect: domain.EffectHeal, Value: 20, Rarity: domain.RarityCommon}
	require.NoError(t, bus.Publish(context.Background(), NewItemUsedEvent("run-9", item, true, false)))
	require.NoError(t, bus.Publish(context.Background(), NewRunStartedEvent("run-9", 25, 0)))
	require.NoError(t, dlw.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var entries []DeadLetterEntry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var e DeadLetterEntry
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &e))
		entries = append(entries, e)
	}

	require.Len(t, entries, 1, "only the failing event is dead-lettered")
	assert.Equal(t, DeadLetterSchemaVersion, entries[0].SchemaVersion)
	assert.Equal(t, ItemUsed, entries[0].Event.Type)
	assert.Contains(t, entries[0].LastError, "boom")

	payload, err := DecodePayload[ItemUsedPayloadV1](entries[0].Event.Payload)
	require.NoError(t, err)
	assert.Equal(t, "Health Potion", payload.ItemName)
}
