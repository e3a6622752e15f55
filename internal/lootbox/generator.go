package lootbox

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/osse101/Shardlands_Go/internal/domain"
	"github.com/osse101/Shardlands_Go/internal/logger"
	"github.com/osse101/Shardlands_Go/internal/utils"
)

// Generator creates items for treasure rooms, enemy drops and legendary rewards.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator drawing from rng.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// TreasureItem builds a random consumable of the given rarity.
func (g *Generator) TreasureItem(rarity domain.Rarity) domain.Item {
	t := utils.Pick(g.rng, templates)
	value := int(float64(t.BaseValue) * rarity.Multiplier())

	target := "an enemy"
	if t.Effect.TargetsSelf() {
		target = "yourself"
	}

	return domain.Item{
		Name:        utils.Capitalize(fmt.Sprintf("%s %s", rarity, t.Name)),
		Description: fmt.Sprintf("A %s item that "+t.Description+" to %s", rarity, value, target),
		Effect:      t.Effect,
		Value:       value,
		Rarity:      rarity,
		Durability:  g.durability(),
	}
}

// Legendary returns a random item from the legendary pool.
func (g *Generator) Legendary() domain.Item {
	return utils.Pick(g.rng, legendaryItems)
}

// Drop builds one combat loot item of kind, re-rolling rarity and scaling value by level.
func (g *Generator) Drop(kind string, level int) domain.Item {
	if kind == KindLegendary {
		return g.Legendary()
	}

	t, ok := templateFor(kind)
	if !ok {
		t = template{Kind: kind, Name: utils.DisplayName(kind), Effect: domain.EffectHeal, BaseValue: DefaultBaseValue, Description: "provides %d healing"}
	}

	rarity := g.RollRarity()
	value := int(float64(t.BaseValue) * rarity.Multiplier() * (1 + float64(level)*LevelValueScale))

	item := domain.Item{
		Name:        utils.Capitalize(fmt.Sprintf("%s %s", rarity, t.Name)),
		Description: fmt.Sprintf("A %s item that "+t.Description, rarity, value),
		Effect:      t.Effect,
		Value:       value,
		Rarity:      rarity,
		Durability:  g.durability(),
	}

	if rarity == domain.RarityLegendary {
		if named, ok := legendaryNames[kind]; ok {
			item.Name = named.Name
			item.Description = named.Description
		} else {
			item.Description = "A legendary item of immense power"
		}
	}

	return item
}

// EnemyDrops rolls everything a defeated enemy leaves behind: one guaranteed
// potion plus an independent roll per loot table entry.
func (g *Generator) EnemyDrops(ctx context.Context, enemy *domain.Enemy) []domain.Item {
	log := logger.FromContext(ctx)

	drops := []domain.Item{g.Drop(GuaranteedDrop, enemy.Level)}
	for _, entry := range enemy.LootTable {
		if utils.Chance(g.rng, entry.Chance) {
			drops = append(drops, g.Drop(entry.Item, enemy.Level))
		}
	}

	for _, item := range drops {
		log.Debug(LogMsgLootGenerated, LogFieldEnemy, enemy.Name, LogFieldItem, item.Name, LogFieldRarity, item.Rarity)
	}
	return drops
}

func (g *Generator) durability() *int {
	if !utils.Chance(g.rng, DurabilityChance) {
		return nil
	}
	d := utils.RollRange(g.rng, DurabilityMin, DurabilityMax)
	return &d
}
