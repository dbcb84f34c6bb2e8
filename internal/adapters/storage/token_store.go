package storage

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/just-nibble/git-dashboard/internal/repository"
	"github.com/just-nibble/git-dashboard/pkg/config"
)

// NewTokenStore opens the configured backend and wraps it in the in-process cache when
// token_store.cache_ttl is positive. The returned func releases the backend connection.
func NewTokenStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (repository.TokenStore, func() error, error) {
	var (
		store   repository.TokenStore
		closeFn func() error
	)

	switch cfg.TokenStore.Driver {
	case config.DriverRedis:
		rdb, err := InitRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		store = repository.NewRedisTokenStore(rdb, cfg.Redis.Prefix)
		closeFn = rdb.Close
	case config.DriverPostgres:
		db, err := InitDB(cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get database handle: %w", err)
		}
		store = repository.NewGormTokenStore(db)
		closeFn = sqlDB.Close
	default:
		return nil, nil, fmt.Errorf("unknown token store driver %q", cfg.TokenStore.Driver)
	}

	log.Info().Str("driver", cfg.TokenStore.Driver).Dur("cache_ttl", cfg.TokenStore.CacheTTL).Msg("token store ready")

	if cfg.TokenStore.CacheTTL > 0 {
		store = repository.NewCachedTokenStore(store, cfg.TokenStore.CacheTTL)
	}
	return store, closeFn, nil
}
