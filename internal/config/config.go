package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/osse101/Shardlands_Go/internal/validation"
)

// Config holds the application configuration
type Config struct {
	LogLevel    string `validate:"oneof=debug info warn warning error"`
	LogFormat   string `validate:"oneof=text json"`
	LogDir      string `validate:"required"`
	Environment string `validate:"required"`
	ServiceName string `validate:"required"`
	Version     string `validate:"required"`

	SaveBackend string `validate:"oneof=file postgres"`
	SavePath    string `validate:"required_if=SaveBackend file"`
	SaveSlot    string `validate:"required"`

	DBUser     string `validate:"required_if=SaveBackend postgres"`
	DBPassword string
	DBHost     string `validate:"required_if=SaveBackend postgres"`
	DBPort     int    `validate:"min=1,max=65535"`
	DBName     string `validate:"required_if=SaveBackend postgres"`
	DBMaxConns int    `validate:"min=1"`

	// StatusPort 0 disables the status server.
	StatusPort   int `validate:"min=0,max=65535"`
	StatusAPIKey string

	WorldWidth        int   `validate:"min=1,max=50"`
	WorldDepth        int   `validate:"min=1,max=50"`
	InventoryCapacity int   `validate:"min=1"`
	Seed              int64 // 0 seeds from the clock

	ProfileCacheSize int           `validate:"min=1"`
	ProfileCacheTTL  time.Duration `validate:"gt=0"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", DefaultLogFormat)),
		LogDir:      getEnv("LOG_DIR", DefaultLogDir),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", DefaultVersion),

		SaveBackend: getEnv("SAVE_BACKEND", BackendFile),
		SavePath:    getEnv("SAVE_PATH", DefaultSavePath),
		SaveSlot:    getEnv("SAVE_SLOT", DefaultSaveSlot),

		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnvAsInt("DB_PORT", 5432),
		DBName:     getEnv("DB_NAME", "shardlands"),
		DBMaxConns: getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),

		StatusPort:   getEnvAsInt("STATUS_PORT", 0),
		StatusAPIKey: getEnv("STATUS_API_KEY", ""),

		WorldWidth:        getEnvAsInt("WORLD_WIDTH", DefaultWorldWidth),
		WorldDepth:        getEnvAsInt("WORLD_DEPTH", DefaultWorldDepth),
		InventoryCapacity: getEnvAsInt("INVENTORY_CAPACITY", DefaultInventoryCapacity),

		ProfileCacheSize: getEnvAsInt("PROFILE_CACHE_SIZE", DefaultProfileCacheSize),
		ProfileCacheTTL:  getEnvAsDuration("PROFILE_CACHE_TTL", DefaultProfileCacheTTL),
	}

	seed, err := strconv.ParseInt(getEnv("SEED", "0"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid SEED value: %w", err)
	}
	cfg.Seed = seed

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field against its constraints.
func (c *Config) Validate() error {
	if err := validation.Structs().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// UsePostgres reports whether saves go to the database.
func (c *Config) UsePostgres() bool {
	return c.SaveBackend == BackendPostgres
}

// StatusEnabled reports whether the status server should be started.
func (c *Config) StatusEnabled() bool {
	return c.StatusPort > 0
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to defaultValue when
// it is unset or malformed.
func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return i
}

// getEnvAsDuration parses a time.ParseDuration string with the same fallback rules.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
