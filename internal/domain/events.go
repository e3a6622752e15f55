package domain

// Event type names published on the event bus.
const (
	EventTypeRunStarted       = "run.started"
	EventTypeRunEnded         = "run.ended"
	EventTypeRoomEntered      = "room.entered"
	EventTypeCombatEnded      = "combat.ended"
	EventTypeEnemyDefeated    = "enemy.defeated"
	EventTypeItemUsed         = "item.used"
	EventTypeEventResolved    = "event.resolved"
	EventTypeUpgradePurchased = "upgrade.purchased"
)

// RunEndReason records how a run finished.
type RunEndReason string

const (
	RunEndDeath   RunEndReason = "death"
	RunEndRetreat RunEndReason = "retreat"
)

// RunSummary is what a finished run hands to the meta layer.
type RunSummary struct {
	Reason          RunEndReason `json:"reason"`
	RoomsExplored   int          `json:"rooms_explored"`
	EnemiesDefeated int          `json:"enemies_defeated"`
	ShardsCollected int          `json:"shards_collected"`
	ShardsAwarded   int          `json:"shards_awarded"`
	DamageDealt     int          `json:"damage_dealt"`
	DamageTaken     int          `json:"damage_taken"`
}
