package world

import (
	"context"
	"fmt"
	"math"
	"log/slog"
	"math/rand"
	"sort"

	"github.com/osse101/Shardlands_Go/internal/domain"
	"github.com/osse101/Shardlands_Go/internal/logger"
	"github.com/osse101/Shardlands_Go/internal/lootbox"
	"github.com/osse101/Shardlands_Go/internal/utils"
)

// Generator builds room grids. It keeps the mini-boss cadence across calls,
// so one generator should live as long as the play session.
type Generator struct {
	width  int
	depth  int
	rng    *rand.Rand
	loot   *lootbox.Generator
	nextID int

	floors        int // rooms generated so far
	nextMiniBoss  int // floor on which the next mini-boss appears
	miniBossCount int // mini-bosses spawned so far
}

// NewGenerator creates a generator for a width x depth grid.
func NewGenerator(width, depth int, rng *rand.Rand, loot *lootbox.Generator) *Generator {
	if width <= 0 {
		width = DefaultWidth
	}
	if depth <= 0 {
		depth = DefaultDepth
	}
	return &Generator{
		width:        width,
		depth:        depth,
		rng:          rng,
		loot:         loot,
		nextMiniBoss: utils.RollRange(rng, MiniBossIntervalMin, MiniBossIntervalMax),
	}
}

// MiniBossCount returns how many mini-bosses have been spawned.
func (g *Generator) MiniBossCount() int {
	return g.miniBossCount
}

// Difficulty returns the generation difficulty for grid cell (x, y).
func Difficulty(x, y int) int {
	return max(1, (x+y)/2)
}

// GenerateWorld builds the grid, connects neighbours east and south, then
// prunes connections at random. Reachability of every room is not guaranteed.
func (g *Generator) GenerateWorld(ctx context.Context) (*domain.Room, []*domain.Room) {
	grid := make([][]*domain.Room, g.depth)
	all := make([]*domain.Room, 0, g.width*g.depth)

	for y := 0; y < g.depth; y++ {
		grid[y] = make([]*domain.Room, g.width)
		for x := 0; x < g.width; x++ {
			room := g.GenerateRoom(Difficulty(x, y))
			room.X, room.Y = x, y
			grid[y][x] = room
			all = append(all, room)
		}
	}

	for y := 0; y < g.depth; y++ {
		for x := 0; x < g.width; x++ {
			if x < g.width-1 {
				grid[y][x].Connect(domain.East, grid[y][x+1])
			}
			if y < g.depth-1 {
				grid[y][x].Connect(domain.South, grid[y+1][x])
			}
		}
	}

	for _, room := range all {
		for _, dir := range domain.Directions {
			if _, ok := room.Exits[dir]; ok && utils.Chance(g.rng, ConnectionCutRate) {
				room.Disconnect(dir)
			}
		}
	}

	logger.FromContext(ctx).Debug(LogMsgWorldGenerated,
		"rooms", len(all),
		"edges", countEdges(all),
		"by_type", countTypes(all),
		"mini_bosses", g.miniBossCount)

	return grid[0][0], all
}

// GenerateRoom creates one room. A due mini-boss overrides the random type draw.
func (g *Generator) GenerateRoom(difficulty int) *domain.Room {
	g.floors++
	g.nextID++

	roomType := utils.Pick(g.rng, ordinaryRoomTypes)
	if g.floors >= g.nextMiniBoss {
		roomType = domain.RoomMiniBoss
		g.nextMiniBoss = g.floors + utils.RollRange(g.rng, MiniBossIntervalMin, MiniBossIntervalMax)
	}

	room := domain.NewRoom(roomType, utils.Pick(g.rng, roomDescriptions[roomType]))
	room.ID = g.nextID

	switch roomType {
	case domain.RoomMiniBoss:
		boss := g.GenerateMiniBoss(difficulty)
		room.Enemies = []*domain.Enemy{boss}
		g.miniBossCount++
		slog.Debug(LogMsgMiniBossSpawned, "floor", g.floors, "name", boss.Name, "next_floor", g.nextMiniBoss)
	case domain.RoomCombat:
		n := utils.RollRange(g.rng, CombatEnemiesMin, CombatEnemiesMax)
		for i := 0; i < n; i++ {
			room.Enemies = append(room.Enemies, g.GenerateEnemy(difficulty))
		}
	case domain.RoomTreasure:
		n := utils.RollRange(g.rng, TreasureItemsMin, TreasureItemsMax)
		for i := 0; i < n; i++ {
			room.Items = append(room.Items, g.loot.TreasureItem(g.loot.TreasureRarity()))
		}
	case domain.RoomEvent:
		room.EventID = fmt.Sprintf(EventIDFormat, utils.RollRange(g.rng, 1, EventPoolSize))
	}

	return room
}

// GenerateEnemy creates an ordinary enemy. Every mini-boss spawned so far adds
// one to the effective difficulty.
func (g *Generator) GenerateEnemy(difficulty int) *domain.Enemy {
	d := difficulty + g.miniBossCount
	et := utils.Pick(g.rng, g.eligibleTypes(d))

	variation := EnemyNoiseBase + float64(d)*EnemyNoisePerLevel
	health := max(EnemyMinHealth, g.scale(EnemyHealthBase, d, EnemyHealthExp, et.HealthMult, variation))
	attack := max(EnemyMinAttack, g.scale(EnemyAttackBase, d, EnemyAttackExp, et.AttackMult, variation))
	defense := max(EnemyMinDefense, g.scale(EnemyDefenseBase, d, EnemyDefenseExp, et.DefenseMult, variation))

	return &domain.Enemy{
		Entity: domain.Entity{
			Name:  fmt.Sprintf(EnemyNameFormat, d, et.Name),
			Stats: domain.NewStats(health, attack, defense),
			Level: d,
		},
		AttackPattern: abilitiesFor(et, d),
		LootTable: []domain.LootEntry{
			{Item: lootbox.KindHealthPotion, Chance: LootPotionBase + float64(d)*LootChancePerLevel},
			{Item: lootbox.KindDamageCrystal, Chance: LootCrystalBase + float64(d)*LootChancePerLevel},
		},
		Experience: d * EnemyXPPerLevel,
	}
}

// GenerateMiniBoss creates a mini-boss with steeper scaling and tighter noise.
func (g *Generator) GenerateMiniBoss(difficulty int) *domain.Enemy {
	mb := utils.Pick(g.rng, miniBossTypes)

	variation := MiniBossNoiseBase + float64(difficulty)*MiniBossNoisePerLevel
	health := max(1, g.scale(MiniBossHealthBase, difficulty, MiniBossHealthExp, mb.HealthMult, variation))
	attack := g.scale(MiniBossAttackBase, difficulty, MiniBossAttackExp, mb.AttackMult, variation)
	defense := g.scale(MiniBossDefenseBase, difficulty, MiniBossDefenseExp, mb.DefenseMult, variation)

	abilities := make([]string, len(mb.Abilities))
	copy(abilities, mb.Abilities)

	return &domain.Enemy{
		Entity: domain.Entity{
			Name:  fmt.Sprintf(MiniBossNameFormat, mb.Name, difficulty),
			Stats: domain.NewStats(health, attack, defense),
			Level: difficulty,
		},
		AttackPattern: abilities,
		LootTable: []domain.LootEntry{
			{Item: lootbox.KindHealthPotion, Chance: MiniBossPotionChance},
			{Item: lootbox.KindDamageCrystal, Chance: MiniBossCrystalChance},
			{Item: lootbox.KindLegendary, Chance: MiniBossLegendChance},
		},
		Experience: difficulty * MiniBossXPPerLevel,
		IsMiniBoss: true,
	}
}

// eligibleTypes applies the difficulty gate to the enemy type draw.
func (g *Generator) eligibleTypes(d int) []enemyType {
	switch {
	case d >= RareGateDifficulty && utils.Chance(g.rng, RareGateChance):
		return filterTypes(domain.RarityRare)
	case d >= UncommonGateLevel && utils.Chance(g.rng, UncommonGateChance):
		return filterTypes(domain.RarityUncommon, domain.RarityRare)
	default:
		return enemyTypes
	}
}

// scale computes int(int(base * d^exp * mult) * noise).
func (g *Generator) scale(base float64, d int, exp, mult, variation float64) int {
	raw := int(base * math.Pow(float64(d), exp) * mult)
	return int(float64(raw) * utils.Uniform(g.rng, 1-variation, 1+variation))
}

func filterTypes(rarities ...domain.Rarity) []enemyType {
	var out []enemyType
	for _, et := range enemyTypes {
		for _, r := range rarities {
			if et.Rarity == r {
				out = append(out, et)
				break
			}
		}
	}
	return out
}

// abilitiesFor returns the ability list of the highest threshold met.
func abilitiesFor(et enemyType, d int) []string {
	thresholds := make([]int, 0, len(et.AbilityTiers))
	for t := range et.AbilityTiers {
		thresholds = append(thresholds, t)
	}
	sort.Ints(thresholds)

	abilities := []string{domain.ActionAttack}
	for _, t := range thresholds {
		if d >= t {
			abilities = et.AbilityTiers[t]
		}
	}

	out := make([]string, len(abilities))
	copy(out, abilities)
	return out
}

func countEdges(rooms []*domain.Room) int {
	n := 0
	for _, r := range rooms {
		n += len(r.Exits)
	}
	return n / 2
}

func countTypes(rooms []*domain.Room) map[domain.RoomType]int {
	counts := make(map[domain.RoomType]int)
	for _, r := range rooms {
		counts[r.Type]++
	}
	return counts
}
