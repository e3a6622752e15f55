package world

// Grid defaults.
const (
	DefaultWidth = 5
	DefaultDepth = 5
)

// Mini-boss cadence: the next mini-boss is due this many floors after the last one.
const (
	MiniBossIntervalMin = 10
	MiniBossIntervalMax = 15
)

// Room content counts.
const (
	CombatEnemiesMin  = 1
	CombatEnemiesMax  = 2
	TreasureItemsMin  = 1
	TreasureItemsMax  = 3
	EventPoolSize     = 5
	EventIDFormat     = "event_%d"
	ConnectionCutRate = 0.2
)

// Ordinary enemy scaling.
const (
	EnemyHealthBase    = 25.0
	EnemyHealthExp     = 1.5
	EnemyAttackBase    = 8.0
	EnemyAttackExp     = 1.3
	EnemyDefenseBase   = 3.0
	EnemyDefenseExp    = 1.2
	EnemyNoiseBase     = 0.1
	EnemyNoisePerLevel = 0.02
	EnemyMinHealth     = 15
	EnemyMinAttack     = 5
	EnemyMinDefense    = 1
	EnemyXPPerLevel    = 10
	EnemyNameFormat    = "Lvl %d %s"
	RareGateDifficulty = 3
	RareGateChance     = 0.3
	UncommonGateLevel  = 2
	UncommonGateChance = 0.5
	LootPotionBase     = 0.3
	LootCrystalBase    = 0.2
	LootChancePerLevel = 0.05
)

// Mini-boss scaling.
const (
	MiniBossHealthBase    = 50.0
	MiniBossHealthExp     = 1.6
	MiniBossAttackBase    = 15.0
	MiniBossAttackExp     = 1.4
	MiniBossDefenseBase   = 5.0
	MiniBossDefenseExp    = 1.3
	MiniBossNoiseBase     = 0.05
	MiniBossNoisePerLevel = 0.01
	MiniBossXPPerLevel    = 25
	MiniBossNameFormat    = "Mini-Boss: %s (Lvl %d)"
	MiniBossPotionChance  = 1.0
	MiniBossCrystalChance = 0.8
	MiniBossLegendChance  = 0.3
)

// Log messages
const (
	LogMsgWorldGenerated  = "World generated"
	LogMsgMiniBossSpawned = "Mini-boss spawned"
)
