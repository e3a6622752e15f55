package world

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Shardlands_Go/internal/domain"
	"github.com/osse101/Shardlands_Go/internal/lootbox"
	"github.com/osse101/Shardlands_Go/internal/utils"
)

func newTestGenerator(width, depth int, seed int64) *Generator {
	rng := utils.NewRand(seed)
	return NewGenerator(width, depth, rng, lootbox.NewGenerator(rng))
}

func TestGenerateWorld_3x3(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		g := newTestGenerator(3, 3, seed)
		start, rooms := g.GenerateWorld(context.Background())

		require.Len(t, rooms, 9)
		assert.Same(t, rooms[0], start, "start is the top-left room")
		assert.Equal(t, 0, start.X)
		assert.Equal(t, 0, start.Y)

		for _, room := range rooms {
			switch room.Type {
			case domain.RoomCombat:
				assert.GreaterOrEqual(t, len(room.Enemies), 1)
				assert.LessOrEqual(t, len(room.Enemies), 2)
			case domain.RoomTreasure:
				assert.GreaterOrEqual(t, len(room.Items), 1)
				assert.LessOrEqual(t, len(room.Items), 3)
			case domain.RoomEvent:
				assert.NotEmpty(t, room.EventID)
			case domain.RoomMiniBoss:
				require.Len(t, room.Enemies, 1)
				assert.True(t, room.Enemies[0].IsMiniBoss)
			default:
				t.Fatalf("unexpected room type %q", room.Type)
			}
		}
	}
}

func TestGenerateWorld_ExitsAreSymmetricAndAdjacent(t *testing.T) {
	g := newTestGenerator(5, 5, 42)
	_, rooms := g.GenerateWorld(context.Background())

	for _, room := range rooms {
		for dir, other := range room.Exits {
			assert.Same(t, room, other.Exits[dir.Opposite()], "exit %s from (%d,%d) must have a reverse", dir, room.X, room.Y)
			dx, dy := other.X-room.X, other.Y-room.Y
			assert.Equal(t, 1, abs(dx)+abs(dy), "exits only connect grid neighbours")
		}
	}
}

func TestGenerateWorld_PrunesSomeConnections(t *testing.T) {
	const fullEdges = 2 * 5 * 4 // 5x5 grid: 20 horizontal + 20 vertical
	total := 0
	const worlds = 40
	for seed := int64(1); seed <= worlds; seed++ {
		g := newTestGenerator(5, 5, seed)
		_, rooms := g.GenerateWorld(context.Background())
		edges := countEdges(rooms)
		assert.LessOrEqual(t, edges, fullEdges)
		total += edges
	}
	// Each undirected edge is exposed to two independent 20% cuts.
	avg := float64(total) / worlds
	assert.InDelta(t, fullEdges*0.64, avg, 4)
}

func TestDifficulty(t *testing.T) {
	assert.Equal(t, 1, Difficulty(0, 0))
	assert.Equal(t, 1, Difficulty(1, 0))
	assert.Equal(t, 1, Difficulty(1, 1))
	assert.Equal(t, 2, Difficulty(2, 2))
	assert.Equal(t, 4, Difficulty(4, 4))
}

func TestGenerateRoom_MiniBossCadence(t *testing.T) {
	g := newTestGenerator(5, 5, 7)

	var spawnFloors []int
	for floor := 1; floor <= 200; floor++ {
		room := g.GenerateRoom(1)
		if room.Type == domain.RoomMiniBoss {
			spawnFloors = append(spawnFloors, floor)
		}
	}

	require.NotEmpty(t, spawnFloors)
	assert.GreaterOrEqual(t, spawnFloors[0], MiniBossIntervalMin)
	assert.LessOrEqual(t, spawnFloors[0], MiniBossIntervalMax)
	for i := 1; i < len(spawnFloors); i++ {
		gap := spawnFloors[i] - spawnFloors[i-1]
		assert.GreaterOrEqual(t, gap, MiniBossIntervalMin)
		assert.LessOrEqual(t, gap, MiniBossIntervalMax)
	}
	assert.Equal(t, len(spawnFloors), g.MiniBossCount())
}

func TestGenerateRoom_LogsMiniBossSpawn(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	g := newTestGenerator(5, 5, 7)
	for i := 0; i < MiniBossIntervalMin-1; i++ {
		require.NotEqual(t, domain.RoomMiniBoss, g.GenerateRoom(1).Type)
	}
	assert.NotContains(t, buf.String(), LogMsgMiniBossSpawned)

	for g.MiniBossCount() == 0 {
		g.GenerateRoom(1)
	}
	out := buf.String()
	assert.Contains(t, out, LogMsgMiniBossSpawned)
	assert.Contains(t, out, "Mini-Boss: ")
	assert.Contains(t, out, "next_floor=")
}

func TestGenerateEnemy_ScalesWithMiniBossCount(t *testing.T) {
	g := newTestGenerator(5, 5, 3)
	before := g.GenerateEnemy(1)
	assert.Equal(t, 1, before.Level)
	assert.Equal(t, 10, before.Experience)

	g.miniBossCount = 2
	after := g.GenerateEnemy(1)
	assert.Equal(t, 3, after.Level)
	assert.Equal(t, 30, after.Experience)
	assert.Contains(t, after.Name, "Lvl 3 ")
}

func TestGenerateEnemy_StatBounds(t *testing.T) {
	g := newTestGenerator(5, 5, 11)
	for i := 0; i < 500; i++ {
		d := 1 + i%6
		e := g.GenerateEnemy(d)
		assert.GreaterOrEqual(t, e.Stats.Health, EnemyMinHealth)
		assert.GreaterOrEqual(t, e.Stats.Attack, EnemyMinAttack)
		assert.GreaterOrEqual(t, e.Stats.Defense, EnemyMinDefense)
		assert.Equal(t, e.Stats.MaxHealth, e.Stats.Health)
		assert.False(t, e.IsMiniBoss)
		require.Len(t, e.LootTable, 2)
		assert.InDelta(t, 0.3+0.05*float64(d), e.LootTable[0].Chance, 1e-9)
		assert.InDelta(t, 0.2+0.05*float64(d), e.LootTable[1].Chance, 1e-9)
		assert.Equal(t, domain.ActionAttack, e.NextAction())
	}
}

func TestGenerateEnemy_HealthTracksCurve(t *testing.T) {
	g := newTestGenerator(5, 5, 19)
	// Difficulty 4: 25 * 4^1.5 = 200, multipliers 0.8..1.3, noise +-18%, one point of rounding slack.
	for i := 0; i < 200; i++ {
		e := g.GenerateEnemy(4)
		assert.GreaterOrEqual(t, e.Stats.Health, 130)
		assert.LessOrEqual(t, e.Stats.Health, 307)
	}
}

func TestGenerateEnemy_RareGate(t *testing.T) {
	g := newTestGenerator(5, 5, 23)
	stalkers := 0
	const trials = 3000
	for i := 0; i < trials; i++ {
		e := g.GenerateEnemy(3)
		if assert.NotEmpty(t, e.Name) && containsName(e.Name, "Void Stalker") {
			stalkers++
		}
	}
	// 0.3 forced rare + 0.7*0.5*(1/3) via uncommon|rare + 0.7*0.5*(1/5) unrestricted = 0.487
	assert.InDelta(t, 0.487, float64(stalkers)/trials, 0.04)
}

func TestAbilitiesFor(t *testing.T) {
	golem := enemyTypes[0]
	assert.Equal(t, []string{"attack"}, abilitiesFor(golem, 1))
	assert.Equal(t, []string{"attack"}, abilitiesFor(golem, 2))
	assert.Equal(t, []string{"attack", "shield"}, abilitiesFor(golem, 3))
	assert.Equal(t, []string{"attack", "shield", "regenerate"}, abilitiesFor(golem, 5))
	assert.Equal(t, []string{"attack", "shield", "regenerate"}, abilitiesFor(golem, 9))

	got := abilitiesFor(golem, 5)
	got[0] = "mutated"
	assert.Equal(t, "attack", golem.AbilityTiers[5][0])
}

func TestGenerateMiniBoss(t *testing.T) {
	g := newTestGenerator(5, 5, 29)
	boss := g.GenerateMiniBoss(2)

	assert.True(t, boss.IsMiniBoss)
	assert.Equal(t, 2, boss.Level)
	assert.Equal(t, 50, boss.Experience)
	assert.Contains(t, boss.Name, "Mini-Boss: ")
	assert.Contains(t, boss.Name, "(Lvl 2)")
	require.Len(t, boss.AttackPattern, 4)
	assert.Equal(t, domain.ActionAttack, boss.AttackPattern[0])
	require.Len(t, boss.LootTable, 3)
	assert.Equal(t, lootbox.KindLegendary, boss.LootTable[2].Item)

	// 50 * 2^1.6 ~= 151.6, multipliers 1.7..2.0, noise +-7%, one point of rounding slack.
	assert.GreaterOrEqual(t, boss.Stats.Health, 237)
	assert.LessOrEqual(t, boss.Stats.Health, 326)
}

func BenchmarkGenerateWorld(b *testing.B) {
	g := newTestGenerator(DefaultWidth, DefaultDepth, 1)
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.GenerateWorld(ctx)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func containsName(full, name string) bool {
	return len(full) >= len(name) && full[len(full)-len(name):] == name
}
