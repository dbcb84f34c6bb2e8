package storage

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/just-nibble/git-dashboard/internal/repository"
	"github.com/just-nibble/git-dashboard/pkg/config"
	"github.com/just-nibble/git-dashboard/pkg/errcodes"
)

func redisConfig(addr string, ttl time.Duration) *config.Config {
	return &config.Config{
		TokenStore: config.TokenStoreConfig{Driver: config.DriverRedis, CacheTTL: ttl},
		Redis:      config.RedisConfig{Addr: addr, Prefix: "test"},
	}
}

func TestNewTokenStoreRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	store, closeFn, err := NewTokenStore(ctx, redisConfig(mr.Addr(), 0), zerolog.Nop())
	require.NoError(t, err)
	defer closeFn()

	_, isCached := store.(*repository.CachedTokenStore)
	assert.False(t, isCached)

	require.NoError(t, store.SaveOAuthToken(ctx, "user_1", repository.ProviderGitHub, "gho_abc"))
	assert.True(t, mr.Exists("test:token:github:user_1"))

	token, err := store.OAuthToken(ctx, "user_1", repository.ProviderGitHub)
	require.NoError(t, err)
	assert.Equal(t, "gho_abc", token)

	_, err = store.OAuthToken(ctx, "user_2", repository.ProviderGitHub)
	assert.ErrorIs(t, err, errcodes.ErrTokenNotFound)
}

func TestNewTokenStoreCached(t *testing.T) {
	mr := miniredis.RunT(t)

	store, closeFn, err := NewTokenStore(context.Background(), redisConfig(mr.Addr(), time.Minute), zerolog.Nop())
	require.NoError(t, err)
	defer closeFn()

	_, isCached := store.(*repository.CachedTokenStore)
	assert.True(t, isCached)
}

func TestNewTokenStoreRedisUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, _, err := NewTokenStore(context.Background(), redisConfig(addr, 0), zerolog.Nop())
	assert.Error(t, err)
}

func TestNewTokenStoreUnknownDriver(t *testing.T) {
	_, _, err := NewTokenStore(context.Background(), &config.Config{
		TokenStore: config.TokenStoreConfig{Driver: "mongo"},
	}, zerolog.Nop())
	assert.Error(t, err)
}
