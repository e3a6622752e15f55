package profile

import "time"

// Cache defaults
const (
	DefaultCacheSize = 16
	DefaultCacheTTL  = 10 * time.Minute
)

// Hidden menu bonus granted by Resonate.
const (
	ResonanceHealth  = 37
	ResonanceAttack  = 13
	ResonanceDefense = 7
	ResonanceShards  = 137
)

// Error messages
const (
	ErrMsgLoadProfile = "failed to load profile"
	ErrMsgSaveProfile = "failed to save profile"
)

// Log messages
const (
	LogMsgNewProfile        = "No save found, starting a fresh profile"
	LogMsgProfileLoaded     = "Profile loaded"
	LogMsgUpgradePurchased  = "Upgrade purchased"
	LogMsgRunBanked         = "Run banked"
	LogMsgResonance         = "The shards resonate"
	LogMsgProfileReset      = "Profile reset"
	LogMsgPublishFailed     = "Failed to publish profile event"
	LogMsgCacheHit          = "Profile cache hit"
	LogMsgCacheVersionStale = "Profile cache entry version mismatch"
)
