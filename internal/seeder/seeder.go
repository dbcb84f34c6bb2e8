package seeder

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/just-nibble/git-dashboard/internal/repository"
	"github.com/just-nibble/git-dashboard/pkg/config"
	"github.com/just-nibble/git-dashboard/pkg/errcodes"
)

// SeedToken stores the configured development token if that user has none yet.
// An empty seed config is a no-op.
func SeedToken(ctx context.Context, store repository.TokenStore, seed config.SeedConfig, log zerolog.Logger) error {
	if seed.UserID == "" || seed.GitHubToken == "" {
		return nil
	}

	// Check whether the user already has a token
	_, err := store.OAuthToken(ctx, seed.UserID, repository.ProviderGitHub)
	if err == nil {
		log.Debug().Str("user", seed.UserID).Msg("token already present, skipping seed")
		return nil
	}
	if !errors.Is(err, errcodes.ErrTokenNotFound) {
		return err
	}

	log.Info().Str("user", seed.UserID).Msg("seeding github token")
	return store.SaveOAuthToken(ctx, seed.UserID, repository.ProviderGitHub, seed.GitHubToken)
}
