package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/just-nibble/git-dashboard/internal/domain"
	"github.com/just-nibble/git-dashboard/internal/repository"
	"github.com/just-nibble/git-dashboard/internal/view"
	"github.com/just-nibble/git-dashboard/pkg/errcodes"
	"github.com/just-nibble/git-dashboard/pkg/git"
)

// SectionState tells the renderer which of the three user-visible outcomes a section ended in
type SectionState int

const (
	StateOK SectionState = iota
	StateReconnect
	StateUnavailable
)

type RepositoriesSection struct {
	State        SectionState
	Repositories []domain.RepositoryRef
}

type CommitsSection struct {
	State SectionState
	Pager *view.CommitPager
}

type ContributionsSection struct {
	State SectionState
	Grid  [][]view.ContributionCell
}

// Dashboard is everything rendered for one signed-in user
type Dashboard struct {
	UserID        string
	Repositories  RepositoriesSection
	Commits       CommitsSection
	Contributions ContributionsSection
}

type DashboardUsecase interface {
	Load(ctx context.Context, userID string, page int) (*Dashboard, error)
	RecentCommits(ctx context.Context, userID string) ([]domain.Commit, error)
	LatestRepositories(ctx context.Context, userID string, n int) ([]domain.RepositoryRef, error)
	ContributionGrid(ctx context.Context, userID string) ([][]view.ContributionCell, error)
}

type dashboardUsecase struct {
	tokens        repository.TokenStore
	clients       git.ClientFactory
	commits       CommitHistoryUsecase
	repositories  RepositoryUsecase
	contributions ContributionUsecase
	log           zerolog.Logger
}

func NewDashboardUsecase(tokens repository.TokenStore, clients git.ClientFactory, commits CommitHistoryUsecase,
	repositories RepositoryUsecase, contributions ContributionUsecase, log zerolog.Logger) DashboardUsecase {
	return &dashboardUsecase{
		tokens:        tokens,
		clients:       clients,
		commits:       commits,
		repositories:  repositories,
		contributions: contributions,
		log:           log,
	}
}

// client resolves the user's GitHub token and binds a client to it
func (uc *dashboardUsecase) client(ctx context.Context, userID string) (git.GitClient, error) {
	if userID == "" {
		return nil, errcodes.ErrUnauthenticated
	}

	token, err := uc.tokens.OAuthToken(ctx, userID, repository.ProviderGitHub)
	if err != nil {
		if errors.Is(err, errcodes.ErrTokenNotFound) {
			uc.log.Info().Str("user", userID).Msg("github token not found")
			return nil, err
		}
		return nil, fmt.Errorf("failed to look up github token: %w", err)
	}

	return uc.clients(token), nil
}

func stateOf(err error) SectionState {
	switch {
	case err == nil:
		return StateOK
	case errors.Is(err, errcodes.ErrTokenNotFound):
		return StateReconnect
	default:
		return StateUnavailable
	}
}

// Load builds all dashboard sections. Each section fails independently; the only
// error returned is an unauthenticated user or a broken token store.
func (uc *dashboardUsecase) Load(ctx context.Context, userID string, page int) (*Dashboard, error) {
	d := &Dashboard{UserID: userID}

	client, err := uc.client(ctx, userID)
	if err != nil {
		if !errors.Is(err, errcodes.ErrTokenNotFound) {
			return nil, err
		}
		d.Repositories.State = StateReconnect
		d.Commits.State = StateReconnect
		d.Commits.Pager = view.NewCommitPager(nil)
		d.Contributions.State = StateReconnect
		return d, nil
	}

	repos, err := uc.repositories.Latest(ctx, client, DefaultLatestRepositories)
	d.Repositories = RepositoriesSection{State: stateOf(err), Repositories: repos}

	commits, err := uc.commits.RecentCommits(ctx, client)
	pager := view.NewCommitPager(commits)
	pager.Goto(page)
	d.Commits = CommitsSection{State: stateOf(err), Pager: pager}

	days, err := uc.contributions.RecentDays(ctx, client)
	d.Contributions = ContributionsSection{State: stateOf(err)}
	if err == nil {
		d.Contributions.Grid = view.LayoutGrid(days)
	}

	return d, nil
}

func (uc *dashboardUsecase) RecentCommits(ctx context.Context, userID string) ([]domain.Commit, error) {
	client, err := uc.client(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.commits.RecentCommits(ctx, client)
}

func (uc *dashboardUsecase) LatestRepositories(ctx context.Context, userID string, n int) ([]domain.RepositoryRef, error) {
	client, err := uc.client(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.repositories.Latest(ctx, client, n)
}

func (uc *dashboardUsecase) ContributionGrid(ctx context.Context, userID string) ([][]view.ContributionCell, error) {
	client, err := uc.client(ctx, userID)
	if err != nil {
		return nil, err
	}

	days, err := uc.contributions.RecentDays(ctx, client)
	if err != nil {
		return nil, err
	}
	return view.LayoutGrid(days), nil
}
