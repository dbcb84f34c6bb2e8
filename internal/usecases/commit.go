package usecases

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/just-nibble/git-dashboard/internal/domain"
	"github.com/just-nibble/git-dashboard/internal/metrics"
	"github.com/just-nibble/git-dashboard/pkg/errcodes"
	"github.com/just-nibble/git-dashboard/pkg/git"
)

const (
	RepositoryListLimit = 100
	CommitWindow        = 30 * 24 * time.Hour
)

type CommitHistoryUsecase interface {
	RecentCommits(ctx context.Context, client git.GitClient) ([]domain.Commit, error)
}

type commitHistoryUsecase struct {
	log zerolog.Logger
	now func() time.Time
}

func NewCommitHistoryUsecase(log zerolog.Logger, now func() time.Time) CommitHistoryUsecase {
	if now == nil {
		now = time.Now
	}
	return &commitHistoryUsecase{
		log: log,
		now: now,
	}
}

// repoResult is the outcome of one repository's commit fetch
type repoResult struct {
	repo    string
	commits []domain.Commit
	err     error
}

// RecentCommits lists the user's repositories, fetches every repository's commits
// from the last 30 days concurrently and returns them newest first.
//
// Failing to list repositories aborts with errcodes.ErrUpstreamUnavailable.
// A repository whose commits cannot be fetched contributes nothing.
func (uc *commitHistoryUsecase) RecentCommits(ctx context.Context, client git.GitClient) ([]domain.Commit, error) {
	start := time.Now()
	commits, err := uc.aggregate(ctx, client)
	metrics.ObserveAggregation(time.Since(start), err)
	return commits, err
}

func (uc *commitHistoryUsecase) aggregate(ctx context.Context, client git.GitClient) ([]domain.Commit, error) {
	repos, err := client.ListRepositories(ctx, RepositoryListLimit)
	if err != nil {
		uc.log.Error().Err(err).Msg("failed to fetch repositories")
		return nil, fmt.Errorf("%w: %w", errcodes.ErrUpstreamUnavailable, err)
	}

	since := uc.now().Add(-CommitWindow)

	results := make([]repoResult, len(repos))
	var g errgroup.Group
	for i, repo := range repos {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("fetching commits for %s panicked: %v", repo.FullName, r)
				}
			}()

			commits, fetchErr := client.ListCommitsSince(ctx, repo.FullName, since)
			results[i] = repoResult{repo: repo.FullName, commits: commits, err: fetchErr}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		uc.log.Error().Err(err).Msg("commit aggregation failed")
		return nil, fmt.Errorf("%w: %w", errcodes.ErrUpstreamUnavailable, err)
	}

	return uc.merge(results), nil
}

// merge flattens per-repository results, dropping failed ones, newest commit first
func (uc *commitHistoryUsecase) merge(results []repoResult) []domain.Commit {
	all := make([]domain.Commit, 0)
	for _, r := range results {
		if r.err != nil {
			metrics.RecordRepositoryFailure()
			uc.log.Warn().Err(r.err).Str("repository", r.repo).Msg("failed to fetch commits, skipping repository")
			continue
		}
		all = append(all, r.commits...)
	}

	slices.SortStableFunc(all, func(a, b domain.Commit) int {
		return b.AuthorDate.Compare(a.AuthorDate)
	})

	uc.log.Debug().Int("repositories", len(results)).Int("commits", len(all)).Msg("aggregated commit history")
	return all
}
