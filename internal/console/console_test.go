package console

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Shardlands_Go/internal/dialogue"
	"github.com/osse101/Shardlands_Go/internal/domain"
	"github.com/osse101/Shardlands_Go/internal/encounter"
	"github.com/osse101/Shardlands_Go/internal/forge"
	"github.com/osse101/Shardlands_Go/internal/lootbox"
	"github.com/osse101/Shardlands_Go/internal/profile"
	"github.com/osse101/Shardlands_Go/internal/run"
	"github.com/osse101/Shardlands_Go/internal/savefile"
	"github.com/osse101/Shardlands_Go/internal/utils"
	"github.com/osse101/Shardlands_Go/internal/validation"
)

// fixedWorld hands out a prebuilt layout.
type fixedWorld func() (*domain.Room, []*domain.Room)

func (f fixedWorld) GenerateWorld(context.Context) (*domain.Room, []*domain.Room) {
	return f()
}

func singleRoom(room *domain.Room) fixedWorld {
	return func() (*domain.Room, []*domain.Room) {
		return room, []*domain.Room{room}
	}
}

type harness struct {
	console *Console
	out     *bytes.Buffer
	svc     *profile.Service
	events  *encounter.Catalog
}

func newHarness(t *testing.T, input string, world run.WorldBuilder, saved *domain.Profile) *harness {
	t.Helper()
	v := validation.NewSchemaValidator()

	forgePath, err := validation.ResolvePath(forge.ConfigPath)
	require.NoError(t, err)
	catalog, err := forge.LoadCatalog(forgePath, v)
	require.NoError(t, err)

	eventsPath, err := validation.ResolvePath(encounter.ConfigPath)
	require.NoError(t, err)
	events, err := encounter.LoadCatalog(eventsPath, v)
	require.NoError(t, err)

	treePath, err := validation.ResolvePath(dialogue.ConfigPath)
	require.NoError(t, err)
	tree, err := dialogue.LoadTree(treePath)
	require.NoError(t, err)

	store := savefile.NewStore(filepath.Join(t.TempDir(), "save.json"))
	if saved != nil {
		require.NoError(t, store.Save(context.Background(), saved))
	}
	svc := profile.NewService(store, catalog, nil)

	rng := utils.NewRand(1)
	loot := lootbox.NewGenerator(rng)
	deps := run.Deps{
		World:      world,
		Loot:       loot,
		Encounters: encounter.NewEngine(events, rng),
		Forge:      catalog,
		Dialogue:   tree,
		Rng:        rng,
		Capacity:   domain.DefaultInventoryCapacity,
	}

	out := &bytes.Buffer{}
	return &harness{
		console: New(strings.NewReader(input), out, svc, deps),
		out:     out,
		svc:     svc,
		events:  events,
	}
}

func savedProfile(shards int, upgrades map[string]int) *domain.Profile {
	p := domain.NewProfile("test-profile")
	p.Player.MemoryShards = shards
	for k, v := range upgrades {
		p.Upgrades[k] = v
	}
	return p
}

func weakEnemy() *domain.Enemy {
	return &domain.Enemy{Entity: domain.Entity{Name: "Shard Rat", Stats: domain.NewStats(1, 1, 0), Level: 1}}
}

func lines(l ...string) string {
	return strings.Join(l, "\n") + "\n"
}

func TestRun_QuitFromMenu(t *testing.T) {
	h := newHarness(t, lines(MenuQuit), singleRoom(domain.NewRoom(domain.RoomTreasure, "")), nil)

	require.NoError(t, h.console.Run(context.Background()))
	out := h.out.String()
	assert.Contains(t, out, "ECHOES OF THE SHARDLANDS")
	assert.Contains(t, out, "2. Memory Forge")
	assert.Contains(t, out, "Thanks for playing!")
}

func TestRun_QuitIsCaseInsensitiveAnywhere(t *testing.T) {
	h := newHarness(t, lines("  QUIT "), singleRoom(domain.NewRoom(domain.RoomTreasure, "")), nil)
	assert.NoError(t, h.console.Run(context.Background()))
}

func TestRun_EndOfInput(t *testing.T) {
	h := newHarness(t, "", singleRoom(domain.NewRoom(domain.RoomTreasure, "")), nil)
	assert.NoError(t, h.console.Run(context.Background()))
}

func TestRun_InvalidMenuChoiceReprompts(t *testing.T) {
	h := newHarness(t, lines("7", MenuQuit), singleRoom(domain.NewRoom(domain.RoomTreasure, "")), nil)

	require.NoError(t, h.console.Run(context.Background()))
	assert.Contains(t, h.out.String(), "Invalid input. Please choose from: 1, 2, 3, 137")
}

func TestRun_HiddenResonance(t *testing.T) {
	h := newHarness(t, lines(MenuResonance, "", MenuQuit), singleRoom(domain.NewRoom(domain.RoomTreasure, "")), nil)

	require.NoError(t, h.console.Run(context.Background()))
	assert.Contains(t, h.out.String(), "ANCIENT MEMORY DISCOVERED")
	assert.NotContains(t, h.out.String(), "137.", "the hidden option is never listed")

	p := h.svc.Snapshot()
	assert.Equal(t, 137, p.Player.MemoryShards)
	assert.Equal(t, domain.DefaultPlayerAttack+13, p.Player.Stats.Attack)
	assert.Equal(t, domain.DefaultPlayerMaxHealth+37, p.Player.Stats.MaxHealth)
}

func TestRun_ForgePurchase(t *testing.T) {
	h := newHarness(t, lines(MenuForge, "1", CmdBack, MenuQuit), singleRoom(domain.NewRoom(domain.RoomTreasure, "")), savedProfile(250, nil))

	require.NoError(t, h.console.Run(context.Background()))
	out := h.out.String()
	assert.Contains(t, out, "=== MEMORY FORGE ===")
	assert.Contains(t, out, "Tier 1 Upgrades:")
	assert.Contains(t, out, "1. Increased Vitality (Increase maximum health by 20) - Cost: 100 [0/5]")
	assert.Contains(t, out, "? Shard Magnetism - Requires: Enhanced Strike (0/1), Increased Vitality (0/1)")
	assert.Contains(t, out, "Purchased Increased Vitality!")

	p := h.svc.Snapshot()
	assert.Equal(t, 150, p.Player.MemoryShards)
	assert.Equal(t, 1, p.Count(domain.UpgradeMaxHealth))
	assert.Equal(t, domain.DefaultPlayerMaxHealth+20, p.Player.Stats.MaxHealth)
}

func TestRun_ForgeNotEnoughShards(t *testing.T) {
	h := newHarness(t, lines(MenuForge, "1", CmdBack, MenuQuit), singleRoom(domain.NewRoom(domain.RoomTreasure, "")), nil)

	require.NoError(t, h.console.Run(context.Background()))
	assert.Contains(t, h.out.String(), "Not enough Memory Shards!")
	assert.Equal(t, 0, h.svc.Snapshot().Player.MemoryShards)
}

func TestPlay_ExploreFightAndRetreat(t *testing.T) {
	start := domain.NewRoom(domain.RoomTreasure, "A quiet alcove.")
	start.Items = []domain.Item{{Name: "Test Potion", Effect: domain.EffectHeal, Value: 5, Rarity: domain.RarityCommon}}
	arena := domain.NewRoom(domain.RoomCombat, "Claw marks everywhere.")
	arena.Enemies = []*domain.Enemy{weakEnemy()}
	start.Connect(domain.East, arena)
	world := fixedWorld(func() (*domain.Room, []*domain.Room) { return start, []*domain.Room{start, arena} })

	input := lines(
		MenuNewRun,
		"dance",
		"talk", "3",
		"status",
		"inventory", "use 1",
		"move east",
		"attack",
		"retreat",
		"",
		MenuQuit,
	)
	h := newHarness(t, input, world, savedProfile(0, map[string]int{domain.UpgradeQuickLearner: 1}))

	require.NoError(t, h.console.Run(context.Background()))
	out := h.out.String()

	assert.Contains(t, out, "=== TREASURE ROOM ===")
	assert.Contains(t, out, "Added Test Potion to inventory!")
	assert.Contains(t, out, "Invalid command. Please choose from: move, inventory, status, talk, retreat, help")
	assert.Contains(t, out, "Sage: Greetings, wanderer.")
	assert.Contains(t, out, "Memory Shards (this run): 1")
	assert.Contains(t, out, "Test Potion restores")
	assert.Contains(t, out, "=== COMBAT ROOM ===")
	assert.Contains(t, out, "Combat started!")
	assert.Contains(t, out, "Victory!")
	assert.Contains(t, out, "=== RUN SUMMARY ===")
	assert.Contains(t, out, "You explored 2 rooms and defeated 1 enemies")

	assert.Equal(t, 2, h.svc.Snapshot().Player.MemoryShards, "quick learner shards are banked on retreat")
}

func TestPlay_DeathAwardsExploration(t *testing.T) {
	brute := &domain.Enemy{Entity: domain.Entity{Name: "Brute", Stats: domain.NewStats(1000, 60, 50), Level: 1}}
	room := domain.NewRoom(domain.RoomMiniBoss, "A looming shadow.")
	room.Enemies = []*domain.Enemy{brute}

	saved := savedProfile(5, nil)
	saved.Player.Stats = domain.NewStats(1, 10, 0)
	h := newHarness(t, lines(MenuNewRun, "attack", "", MenuQuit), singleRoom(room), saved)

	require.NoError(t, h.console.Run(context.Background()))
	out := h.out.String()
	assert.Contains(t, out, "You have been defeated!")
	assert.Contains(t, out, "Your journey into the Shardlands has ended...")
	assert.Contains(t, out, "Exploration: +10")

	assert.Equal(t, 5+run.DeathReward(1, 0, 1.0), h.svc.Snapshot().Player.MemoryShards)
}

func TestPlay_EventChoiceReprompts(t *testing.T) {
	room := domain.NewRoom(domain.RoomEvent, "Light bends strangely here.")
	room.EventID = "event_1"
	h := newHarness(t, lines(MenuNewRun, "choose 9", "1", "retreat", "", MenuQuit), singleRoom(room), nil)

	require.NoError(t, h.console.Run(context.Background()))
	out := h.out.String()

	ev, err := h.events.Get("event_1")
	require.NoError(t, err)
	assert.Contains(t, out, "=== "+ev.Title+" ===")
	assert.Contains(t, out, "1. "+ev.Choices[0].Description)
	assert.Contains(t, out, "Choose your action (number)")
	assert.Greater(t, h.svc.Snapshot().Player.MemoryShards, 0, "every event outcome pays shards")
}

func TestPlay_DamageItemRejectedOutsideCombat(t *testing.T) {
	room := domain.NewRoom(domain.RoomTreasure, "")
	room.Items = []domain.Item{{Name: "Damage Crystal", Effect: domain.EffectDamage, Value: 15}}
	h := newHarness(t, lines(MenuNewRun, "inventory", "use 1", "retreat", "", MenuQuit), singleRoom(room), nil)

	require.NoError(t, h.console.Run(context.Background()))
	out := h.out.String()
	assert.Contains(t, out, "1. Damage Crystal (Enemy)")
	assert.Contains(t, out, MsgDamageItemOnly)
}
