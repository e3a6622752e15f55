package encounter

// Content file locations, relative to the repository root
const (
	ConfigPath = "configs/events.json"
	SchemaPath = "configs/schemas/events.schema.json"
)

// Reward tuning
const (
	RiskBonusScale       = 20
	DifficultyBonusScale = 5
	ConsolationShards    = 5
)

// Special reward rolls
const (
	HealthBoostBase = 20
	HealthBoostMin  = 10
	HealthBoostMax  = 30
	KnowledgeMin    = 10
	KnowledgeMax    = 25
	TreasureMin     = 20
	TreasureMax     = 40
	PowerMin        = 2
	PowerMax        = 5
	ShardsMin       = 30
	ShardsMax       = 50
)

// Error messages
const (
	ErrMsgReadConfigFailed  = "failed to read events config: %w"
	ErrMsgParseConfigFailed = "failed to parse events config %s: %w"
	ErrMsgNoEvents          = "no events defined"
	ErrMsgDuplicateEvent    = "duplicate event id"
	ErrMsgNoChoices         = "has no choices"
)

// Log messages
const (
	LogMsgCatalogLoaded = "Event catalog loaded"
	LogMsgEventResolved = "Event resolved"
)
