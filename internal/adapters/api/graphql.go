package api

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/just-nibble/git-dashboard/internal/domain"
	"github.com/just-nibble/git-dashboard/internal/metrics"
)

const contributionsQuery = `
query($from: DateTime!, $to: DateTime!) {
  viewer {
    contributionsCollection(from: $from, to: $to) {
      contributionCalendar {
        weeks {
          contributionDays {
            contributionCount
            date
            weekday
            color
          }
        }
      }
    }
  }
}`

type graphQLRequest struct {
	Query     string            `json:"query"`
	Variables map[string]string `json:"variables"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type contributionDay struct {
	ContributionCount int    `json:"contributionCount"`
	Date              string `json:"date"`
	Weekday           int    `json:"weekday"`
	Color             string `json:"color"`
}

type contributionsResponse struct {
	Data struct {
		Viewer struct {
			ContributionsCollection struct {
				ContributionCalendar struct {
					Weeks []struct {
						ContributionDays []contributionDay `json:"contributionDays"`
					} `json:"weeks"`
				} `json:"contributionCalendar"`
			} `json:"contributionsCollection"`
		} `json:"viewer"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

// ContributionCalendar fetches the viewer's contribution calendar between from and to,
// flattened week by week into chronological order
func (c *GitHubClient) ContributionCalendar(ctx context.Context, from, to time.Time) ([]domain.ContributionDay, error) {
	days, err := c.contributionCalendar(ctx, from, to)
	metrics.RecordUpstream("contribution_calendar", err)
	return days, err
}

func (c *GitHubClient) contributionCalendar(ctx context.Context, from, to time.Time) ([]domain.ContributionDay, error) {
	req, err := c.gh.NewRequest("POST", c.graphQLURL, graphQLRequest{
		Query: contributionsQuery,
		Variables: map[string]string{
			"from": from.UTC().Format(time.RFC3339),
			"to":   to.UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create contributions request: %w", err)
	}

	var resp contributionsResponse
	if _, err := c.gh.Do(ctx, req, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch contribution data: %w", err)
	}

	if len(resp.Errors) > 0 {
		messages := make([]string, 0, len(resp.Errors))
		for _, e := range resp.Errors {
			messages = append(messages, e.Message)
		}
		return nil, errors.New("failed to fetch contribution data: " + strings.Join(messages, "; "))
	}

	var days []domain.ContributionDay
	for _, week := range resp.Data.Viewer.ContributionsCollection.ContributionCalendar.Weeks {
		for _, d := range week.ContributionDays {
			date, err := time.Parse(time.DateOnly, d.Date)
			if err != nil {
				return nil, fmt.Errorf("failed to decode contribution date %q: %w", d.Date, err)
			}
			days = append(days, domain.ContributionDay{
				Count:   d.ContributionCount,
				Date:    date,
				Weekday: d.Weekday,
				Color:   d.Color,
			})
		}
	}

	return days, nil
}
