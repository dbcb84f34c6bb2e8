package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/just-nibble/git-dashboard/internal/domain"
	"github.com/just-nibble/git-dashboard/internal/view"
	"github.com/just-nibble/git-dashboard/pkg/errcodes"
	"github.com/just-nibble/git-dashboard/pkg/git"
)

type ContributionUsecase interface {
	RecentDays(ctx context.Context, client git.GitClient) ([]domain.ContributionDay, error)
}

type contributionUsecase struct {
	log zerolog.Logger
	now func() time.Time
}

func NewContributionUsecase(log zerolog.Logger, now func() time.Time) ContributionUsecase {
	if now == nil {
		now = time.Now
	}
	return &contributionUsecase{log: log, now: now}
}

// RecentDays returns the most recent view.CalendarDays days of the contribution calendar
func (uc *contributionUsecase) RecentDays(ctx context.Context, client git.GitClient) ([]domain.ContributionDay, error) {
	to := uc.now()
	from := to.AddDate(0, 0, -view.CalendarDays)

	days, err := client.ContributionCalendar(ctx, from, to)
	if err != nil {
		uc.log.Error().Err(err).Msg("failed to fetch contribution data")
		return nil, fmt.Errorf("%w: %w", errcodes.ErrUpstreamUnavailable, err)
	}

	return view.LastDays(days, view.CalendarDays), nil
}
