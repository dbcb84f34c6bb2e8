package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/just-nibble/git-dashboard/pkg/errcodes"
)

const defaultKeyPrefix = "git-dashboard"

// RedisTokenStore keeps tokens as plain string keys, one per user and provider.
type RedisTokenStore struct {
	rdb       redis.UniversalClient
	keyPrefix string
}

// NewRedisTokenStore creates a Redis-backed TokenStore.
func NewRedisTokenStore(rdb redis.UniversalClient, keyPrefix string) TokenStore {
	if keyPrefix == "" {
		keyPrefix = defaultKeyPrefix
	}
	return &RedisTokenStore{rdb: rdb, keyPrefix: keyPrefix}
}

func (s *RedisTokenStore) key(parts ...string) string {
	return fmt.Sprintf("%s:%s", s.keyPrefix, strings.Join(parts, ":"))
}

func (s *RedisTokenStore) OAuthToken(ctx context.Context, userID, provider string) (string, error) {
	token, err := s.rdb.Get(ctx, s.key("token", provider, userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", errcodes.ErrTokenNotFound
		}
		return "", fmt.Errorf("failed to retrieve token: %w", err)
	}

	if token == "" {
		return "", errcodes.ErrTokenNotFound
	}
	return token, nil
}

func (s *RedisTokenStore) SaveOAuthToken(ctx context.Context, userID, provider, token string) error {
	if err := s.rdb.Set(ctx, s.key("token", provider, userID), token, 0).Err(); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	return nil
}
