package lootbox

import (
	"github.com/osse101/Shardlands_Go/internal/domain"
	"github.com/osse101/Shardlands_Go/internal/utils"
)

// rarityThreshold defines a mapping between a roll threshold and a rarity.
type rarityThreshold struct {
	threshold int
	rarity    domain.Rarity
}

// rarityThresholds is checked from rarest (lowest roll) to most common.
var rarityThresholds = []rarityThreshold{
	{RarityLegendaryThreshold, domain.RarityLegendary},
	{RarityRareThreshold, domain.RarityRare},
	{RarityUncommonThreshold, domain.RarityUncommon},
}

var treasureRarities = []utils.Weighted[domain.Rarity]{
	{Value: domain.RarityCommon, Weight: TreasureWeightCommon},
	{Value: domain.RarityUncommon, Weight: TreasureWeightUncommon},
	{Value: domain.RarityRare, Weight: TreasureWeightRare},
}

// rarityForRoll maps a 1..100 roll to a rarity.
func rarityForRoll(roll int) domain.Rarity {
	for _, rt := range rarityThresholds {
		if roll <= rt.threshold {
			return rt.rarity
		}
	}
	return domain.RarityCommon
}

// RollRarity draws a combat loot rarity: 5% legendary, 10% rare, 20% uncommon, 65% common.
func (g *Generator) RollRarity() domain.Rarity {
	return rarityForRoll(utils.RollRange(g.rng, 1, RarityRollMax))
}

// TreasureRarity draws a treasure room rarity: 60% common, 30% uncommon, 10% rare.
func (g *Generator) TreasureRarity() domain.Rarity {
	return utils.PickWeighted(g.rng, treasureRarities)
}
