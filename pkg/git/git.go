package git

import (
	"context"
	"time"

	"github.com/just-nibble/git-dashboard/internal/domain"
)

// GitClient is a read-only view of the code-hosting platform bound to one credential
type GitClient interface {
	ListRepositories(ctx context.Context, perPage int) ([]domain.RepositoryRef, error)
	ListCommitsSince(ctx context.Context, fullName string, since time.Time) ([]domain.Commit, error)
	ContributionCalendar(ctx context.Context, from, to time.Time) ([]domain.ContributionDay, error)
}

// ClientFactory binds a GitClient to a bearer token
type ClientFactory func(token string) GitClient
