package forge

// Content file locations, relative to the repository root
const (
	ConfigPath = "configs/forge_upgrades.json"
	SchemaPath = "configs/schemas/forge_upgrades.schema.json"
)

// Error messages
const (
	ErrMsgReadConfigFailed  = "failed to read forge config: %w"
	ErrMsgParseConfigFailed = "failed to parse forge config %s: %w"
	ErrMsgNoUpgrades        = "no upgrades defined"
	ErrMsgDuplicateUpgrade  = "duplicate upgrade key"
	ErrMsgUnknownRequire    = "requires unknown upgrade"
	ErrMsgRequireCycle      = "prerequisite cycle"
)
