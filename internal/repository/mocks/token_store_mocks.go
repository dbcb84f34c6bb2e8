package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// TokenStore mock
type TokenStore struct {
	mock.Mock
}

func (m *TokenStore) OAuthToken(ctx context.Context, userID, provider string) (string, error) {
	args := m.Called(ctx, userID, provider)
	return args.String(0), args.Error(1)
}

func (m *TokenStore) SaveOAuthToken(ctx context.Context, userID, provider, token string) error {
	args := m.Called(ctx, userID, provider, token)
	return args.Error(0)
}
