package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/just-nibble/git-dashboard/internal/domain"
)

// GitClient mock
type GitClient struct {
	mock.Mock
}

func (m *GitClient) ListRepositories(ctx context.Context, perPage int) ([]domain.RepositoryRef, error) {
	args := m.Called(ctx, perPage)
	repos, _ := args.Get(0).([]domain.RepositoryRef)
	return repos, args.Error(1)
}

func (m *GitClient) ListCommitsSince(ctx context.Context, fullName string, since time.Time) ([]domain.Commit, error) {
	args := m.Called(ctx, fullName, since)
	commits, _ := args.Get(0).([]domain.Commit)
	return commits, args.Error(1)
}

func (m *GitClient) ContributionCalendar(ctx context.Context, from, to time.Time) ([]domain.ContributionDay, error) {
	args := m.Called(ctx, from, to)
	days, _ := args.Get(0).([]domain.ContributionDay)
	return days, args.Error(1)
}
