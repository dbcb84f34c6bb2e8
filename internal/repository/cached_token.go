package repository

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

// CachedTokenStore remembers successful lookups of the wrapped store for a short TTL.
// Misses are never cached so a freshly reconnected account is picked up on the next render.
type CachedTokenStore struct {
	next   TokenStore
	tokens *cache.Cache
}

// NewCachedTokenStore wraps next with an in-process TTL cache
func NewCachedTokenStore(next TokenStore, ttl time.Duration) *CachedTokenStore {
	return &CachedTokenStore{
		next:   next,
		tokens: cache.New(ttl, 2*ttl),
	}
}

func cacheKey(userID, provider string) string {
	return provider + "/" + userID
}

func (s *CachedTokenStore) OAuthToken(ctx context.Context, userID, provider string) (string, error) {
	if token, ok := s.tokens.Get(cacheKey(userID, provider)); ok {
		return token.(string), nil
	}

	token, err := s.next.OAuthToken(ctx, userID, provider)
	if err != nil {
		return "", err
	}

	s.tokens.SetDefault(cacheKey(userID, provider), token)
	return token, nil
}

func (s *CachedTokenStore) SaveOAuthToken(ctx context.Context, userID, provider, token string) error {
	if err := s.next.SaveOAuthToken(ctx, userID, provider, token); err != nil {
		return err
	}

	s.tokens.SetDefault(cacheKey(userID, provider), token)
	return nil
}
