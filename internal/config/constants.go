package config

import "time"

// Save backends
const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
)

// Defaults
const (
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultLogDir            = "logs"
	DefaultEnvironment       = "dev"
	DefaultServiceName       = "shardlands"
	DefaultVersion           = "dev"
	DefaultSavePath          = "saves/save.json"
	DefaultSaveSlot          = "default"
	DefaultDBMaxConns        = 4
	DefaultWorldWidth        = 5
	DefaultWorldDepth        = 5
	DefaultInventoryCapacity = 10
	DefaultProfileCacheSize  = 16
	DefaultProfileCacheTTL   = 10 * time.Minute
)

// Example values shipped in .env.example
const (
	ExampleDBPassword   = "change_this_secure_password"
	ExampleStatusAPIKey = "generate_with_openssl_rand_hex_32"
)
