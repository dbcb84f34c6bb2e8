package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/just-nibble/git-dashboard/pkg/errcodes"
)

// OAuthToken is the persisted form of a delegated token
type OAuthToken struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    string `gorm:"uniqueIndex:idx_oauth_user_provider"`
	Provider  string `gorm:"uniqueIndex:idx_oauth_user_provider"`
	Token     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (OAuthToken) TableName() string {
	return "oauth_tokens"
}

// GormTokenStore is a GORM-based implementation of TokenStore
type GormTokenStore struct {
	db *gorm.DB
}

// NewGormTokenStore initializes a new GormTokenStore
func NewGormTokenStore(db *gorm.DB) TokenStore {
	return &GormTokenStore{db: db}
}

func (s *GormTokenStore) OAuthToken(ctx context.Context, userID, provider string) (string, error) {
	if ctx.Err() == context.Canceled {
		return "", errcodes.ErrContextCancelled
	}

	var token OAuthToken
	err := s.db.WithContext(ctx).
		Where(&OAuthToken{UserID: userID, Provider: provider}).
		Limit(1).
		Find(&token).
		Error
	if err != nil {
		return "", fmt.Errorf("failed to retrieve token: %w", err)
	}

	if token.ID == 0 || token.Token == "" {
		return "", errcodes.ErrTokenNotFound
	}
	return token.Token, nil
}

// SaveOAuthToken creates or replaces the token stored for userID and provider
func (s *GormTokenStore) SaveOAuthToken(ctx context.Context, userID, provider, token string) error {
	if ctx.Err() == context.Canceled {
		return errcodes.ErrContextCancelled
	}

	var record OAuthToken
	err := s.db.WithContext(ctx).
		Where(&OAuthToken{UserID: userID, Provider: provider}).
		Assign(OAuthToken{Token: token}).
		FirstOrCreate(&record).
		Error
	if err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	return nil
}
