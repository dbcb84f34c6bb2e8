package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/just-nibble/git-dashboard/internal/repository/mocks"
	"github.com/just-nibble/git-dashboard/pkg/errcodes"
)

func newRedisStore(t *testing.T) TokenStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
	})
	return NewRedisTokenStore(client, "test")
}

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&OAuthToken{}))
	t.Cleanup(func() {
		db.Exec("DELETE FROM oauth_tokens")
	})
	return db
}

func TestTokenStoreCompliance(t *testing.T) {
	cases := []struct {
		name    string
		factory func(t *testing.T) TokenStore
	}{
		{
			name:    "redis",
			factory: newRedisStore,
		},
		{
			name: "cached-redis",
			factory: func(t *testing.T) TokenStore {
				return NewCachedTokenStore(newRedisStore(t), time.Minute)
			},
		},
		{
			name: "postgres",
			factory: func(t *testing.T) TokenStore {
				return NewGormTokenStore(setupDB(t))
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			runTokenStoreContract(context.Background(), t, tc.factory(t))
		})
	}
}

func runTokenStoreContract(ctx context.Context, t *testing.T, st TokenStore) {
	t.Helper()

	_, err := st.OAuthToken(ctx, "user_1", ProviderGitHub)
	assert.ErrorIs(t, err, errcodes.ErrTokenNotFound)

	require.NoError(t, st.SaveOAuthToken(ctx, "user_1", ProviderGitHub, "gho_first"))

	token, err := st.OAuthToken(ctx, "user_1", ProviderGitHub)
	require.NoError(t, err)
	assert.Equal(t, "gho_first", token)

	// Replacing keeps a single token per user and provider
	require.NoError(t, st.SaveOAuthToken(ctx, "user_1", ProviderGitHub, "gho_second"))
	token, err = st.OAuthToken(ctx, "user_1", ProviderGitHub)
	require.NoError(t, err)
	assert.Equal(t, "gho_second", token)

	_, err = st.OAuthToken(ctx, "user_1", "gitlab")
	assert.ErrorIs(t, err, errcodes.ErrTokenNotFound)

	_, err = st.OAuthToken(ctx, "user_2", ProviderGitHub)
	assert.ErrorIs(t, err, errcodes.ErrTokenNotFound)
}

func TestCachedTokenStoreServesHitsFromCache(t *testing.T) {
	next := new(mocks.TokenStore)
	next.On("OAuthToken", mock.Anything, "user_1", ProviderGitHub).Return("gho_cached", nil).Once()

	st := NewCachedTokenStore(next, time.Minute)

	for i := 0; i < 3; i++ {
		token, err := st.OAuthToken(context.Background(), "user_1", ProviderGitHub)
		require.NoError(t, err)
		assert.Equal(t, "gho_cached", token)
	}

	next.AssertExpectations(t)
	next.AssertNumberOfCalls(t, "OAuthToken", 1)
}

func TestCachedTokenStoreDoesNotCacheMisses(t *testing.T) {
	next := new(mocks.TokenStore)
	next.On("OAuthToken", mock.Anything, "user_1", ProviderGitHub).Return("", errcodes.ErrTokenNotFound).Twice()

	st := NewCachedTokenStore(next, time.Minute)

	for i := 0; i < 2; i++ {
		_, err := st.OAuthToken(context.Background(), "user_1", ProviderGitHub)
		assert.ErrorIs(t, err, errcodes.ErrTokenNotFound)
	}

	next.AssertExpectations(t)
}

func TestCachedTokenStoreSeesExternalRotationAfterTTL(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
	})

	shared := NewRedisTokenStore(client, "test")
	cached := NewCachedTokenStore(NewRedisTokenStore(client, "test"), 50*time.Millisecond)

	require.NoError(t, shared.SaveOAuthToken(ctx, "user_1", ProviderGitHub, "gho_old"))
	token, err := cached.OAuthToken(ctx, "user_1", ProviderGitHub)
	require.NoError(t, err)
	assert.Equal(t, "gho_old", token)

	// rotated by another process, bypassing this cache
	require.NoError(t, shared.SaveOAuthToken(ctx, "user_1", ProviderGitHub, "gho_new"))

	token, err = cached.OAuthToken(ctx, "user_1", ProviderGitHub)
	require.NoError(t, err)
	assert.Equal(t, "gho_old", token, "cached copy is served until it expires")

	time.Sleep(100 * time.Millisecond)

	token, err = cached.OAuthToken(ctx, "user_1", ProviderGitHub)
	require.NoError(t, err)
	assert.Equal(t, "gho_new", token)
}
