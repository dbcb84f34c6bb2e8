package storage

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/just-nibble/git-dashboard/pkg/config"
)

// InitRedis connects to Redis and checks the connection
func InitRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}
	return rdb, nil
}
