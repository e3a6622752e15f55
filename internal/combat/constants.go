package combat

// Roll windows around the attacker's attack stat.
const (
	PlayerAttackSpread = 2
	EnemyAttackSpread  = 1
)

// Flee succeeds when a 1..100 roll is at or under FleeThreshold.
const (
	FleeThreshold = 40
	FleeRollMax   = 100
)

// Log messages
const (
	LogMsgCombatStarted  = "Combat started"
	LogMsgCombatResolved = "Combat resolved"
	LogMsgItemPreserved  = "Item preserved"
)
