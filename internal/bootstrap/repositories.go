package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Shardlands_Go/internal/config"
	"github.com/osse101/Shardlands_Go/internal/database"
	"github.com/osse101/Shardlands_Go/internal/database/postgres"
	"github.com/osse101/Shardlands_Go/internal/profile"
	"github.com/osse101/Shardlands_Go/internal/repository"
	"github.com/osse101/Shardlands_Go/internal/savefile"
)

// Repositories holds the save store chosen by SAVE_BACKEND.
type Repositories struct {
	// Profile is the cached store the profile service should use.
	Profile repository.Profile
	Cache   *profile.CachedStore
	// Pool is nil for the file backend.
	Pool *pgxpool.Pool
}

// Close releases the database pool, if any.
func (r *Repositories) Close() {
	if r.Pool != nil {
		r.Pool.Close()
	}
}

// InitializeRepositories opens the configured save backend. The postgres
// backend is migrated before use. Either backend is wrapped in the LRU cache.
func InitializeRepositories(ctx context.Context, cfg *config.Config) (*Repositories, error) {
	repos := &Repositories{}
	var inner repository.Profile

	if cfg.UsePostgres() {
		connString := cfg.GetDBConnString()
		if err := database.RunMigrations(ctx, connString); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
		slog.Info(LogMsgMigrationsApplied)

		pool, err := database.NewPool(ctx, connString, cfg.DBMaxConns, DBMaxIdleTime, DBMaxLifetime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnect, err)
		}
		repos.Pool = pool
		inner = postgres.NewProfileRepository(pool, cfg.SaveSlot)
		slog.Info(LogMsgUsingPostgresStore, "slot", cfg.SaveSlot, "host", cfg.DBHost)
	} else {
		inner = savefile.NewStore(cfg.SavePath)
		slog.Info(LogMsgUsingFileStore, "path", cfg.SavePath)
	}

	repos.Cache = profile.NewCachedStore(inner, cfg.SaveSlot, cfg.ProfileCacheSize, cfg.ProfileCacheTTL)
	repos.Profile = repos.Cache
	return repos, nil
}
