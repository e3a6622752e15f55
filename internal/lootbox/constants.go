package lootbox

// ============================================================================
// Loot Rarity Thresholds
// ============================================================================

// Combat loot rolls 1..100 and takes the first threshold the roll is under.

// RarityLegendaryThreshold is the maximum roll (<=5) for a legendary drop.
const RarityLegendaryThreshold = 5

// RarityRareThreshold is the maximum roll (<=15) for a rare drop.
const RarityRareThreshold = 15

// RarityUncommonThreshold is the maximum roll (<=35) for an uncommon drop.
const RarityUncommonThreshold = 35

// RarityRollMax is the size of the rarity die.
const RarityRollMax = 100

// ============================================================================
// Treasure Weights
// ============================================================================

// Treasure rooms draw rarity from a 6:3:1 bag.
const (
	TreasureWeightCommon   = 6
	TreasureWeightUncommon = 3
	TreasureWeightRare     = 1
)

// ============================================================================
// Drop Mechanics
// ============================================================================

// DurabilityChance is the probability an item is generated with durability.
const DurabilityChance = 0.3

// Durability bounds for items that get one.
const (
	DurabilityMin = 3
	DurabilityMax = 5
)

// LevelValueScale is the per-level value bonus applied to combat loot.
const LevelValueScale = 0.2

// DefaultBaseValue is used for loot kinds without a template.
const DefaultBaseValue = 10

// ============================================================================
// Loot Kinds
// ============================================================================

// Keys used in enemy loot tables.
const (
	KindHealthPotion  = "health_potion"
	KindDamageCrystal = "damage_crystal"
	KindShieldShard   = "shield_shard"
	KindPowerFragment = "power_fragment"
	KindLegendary     = "legendary_item"
)

// GuaranteedDrop is awarded for every defeated enemy before loot table rolls.
const GuaranteedDrop = KindHealthPotion

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgLootGenerated = "Loot generated"
)

// Log field keys for structured logging
const (
	LogFieldEnemy  = "enemy"
	LogFieldItem   = "item"
	LogFieldRarity = "rarity"
)
