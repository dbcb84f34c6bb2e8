package repository

import (
	"context"
)

// ProviderGitHub is the provider name tokens for the code-hosting platform are stored under
const ProviderGitHub = "github"

// TokenStore looks up delegated OAuth tokens previously issued to a user.
// A missing token is reported as errcodes.ErrTokenNotFound.
type TokenStore interface {
	OAuthToken(ctx context.Context, userID, provider string) (string, error)
	SaveOAuthToken(ctx context.Context, userID, provider, token string) error
}
