package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/just-nibble/git-dashboard/internal/domain"
	"github.com/just-nibble/git-dashboard/internal/usecases"
	"github.com/just-nibble/git-dashboard/internal/view"
)

// DashboardUsecase mock
type DashboardUsecase struct {
	mock.Mock
}

func (m *DashboardUsecase) Load(ctx context.Context, userID string, page int) (*usecases.Dashboard, error) {
	args := m.Called(ctx, userID, page)
	d, _ := args.Get(0).(*usecases.Dashboard)
	return d, args.Error(1)
}

func (m *DashboardUsecase) RecentCommits(ctx context.Context, userID string) ([]domain.Commit, error) {
	args := m.Called(ctx, userID)
	commits, _ := args.Get(0).([]domain.Commit)
	return commits, args.Error(1)
}

func (m *DashboardUsecase) LatestRepositories(ctx context.Context, userID string, n int) ([]domain.RepositoryRef, error) {
	args := m.Called(ctx, userID, n)
	repos, _ := args.Get(0).([]domain.RepositoryRef)
	return repos, args.Error(1)
}

func (m *DashboardUsecase) ContributionGrid(ctx context.Context, userID string) ([][]view.ContributionCell, error) {
	args := m.Called(ctx, userID)
	grid, _ := args.Get(0).([][]view.ContributionCell)
	return grid, args.Error(1)
}
