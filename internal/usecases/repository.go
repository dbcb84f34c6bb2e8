package usecases

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/just-nibble/git-dashboard/internal/domain"
	"github.com/just-nibble/git-dashboard/pkg/errcodes"
	"github.com/just-nibble/git-dashboard/pkg/git"
)

const DefaultLatestRepositories = 3

type RepositoryUsecase interface {
	Latest(ctx context.Context, client git.GitClient, n int) ([]domain.RepositoryRef, error)
}

type repositoryUsecase struct {
	log zerolog.Logger
}

func NewRepositoryUsecase(log zerolog.Logger) RepositoryUsecase {
	return &repositoryUsecase{log: log}
}

// Latest returns the n most recently pushed repositories
func (uc *repositoryUsecase) Latest(ctx context.Context, client git.GitClient, n int) ([]domain.RepositoryRef, error) {
	if n <= 0 {
		n = DefaultLatestRepositories
	}

	repos, err := client.ListRepositories(ctx, n)
	if err != nil {
		uc.log.Error().Err(err).Msg("failed to fetch repository data")
		return nil, fmt.Errorf("%w: %w", errcodes.ErrUpstreamUnavailable, err)
	}

	if len(repos) > n {
		repos = repos[:n]
	}
	return repos, nil
}
