package run

// Death reward: shards per explored room, a depth bonus past the threshold,
// and shards per enemy defeated.
const (
	ShardsPerRoom       = 10
	DepthBonusThreshold = 5
	DepthBonusPerRoom   = 5
	ShardsPerEnemy      = 5
)

// Log messages
const (
	LogMsgRunStarted    = "Run started"
	LogMsgRunEnded      = "Run ended"
	LogMsgRoomEntered   = "Room entered"
	LogMsgVoidTouched   = "Void-touched legendary granted"
	LogMsgPublishFailed = "Failed to publish run event"
	LogMsgInventoryFull = "Inventory full, leaving items behind"
	LogMsgBattleMastery = "Battle mastery applied"
	LogMsgInputRejected = "Player input rejected"
)

// Error messages
const (
	ErrMsgCombatInput  = "failed to read combat action"
	ErrMsgEventInput   = "failed to read event choice"
	ErrMsgResolveEvent = "failed to resolve event"
)
