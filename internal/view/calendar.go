package view

import (
	"fmt"
	"time"

	"github.com/just-nibble/git-dashboard/internal/domain"
)

const (
	GridRows     = 6
	GridColumns  = 5
	CalendarDays = GridRows * GridColumns

	contributionDateLayout = "January 02, 2006"
)

type ContributionCell struct {
	Count   int
	Date    time.Time
	Weekday int
	Color   string
	Title   string
}

// LastDays keeps the n most recent entries of a chronological sequence.
func LastDays(days []domain.ContributionDay, n int) []domain.ContributionDay {
	if len(days) <= n {
		return days
	}
	return days[len(days)-n:]
}

// LayoutGrid lays up to CalendarDays entries into GridRows rows of GridColumns,
// row by row in the order given. Short input leaves the trailing rows short or empty.
func LayoutGrid(days []domain.ContributionDay) [][]ContributionCell {
	grid := make([][]ContributionCell, GridRows)
	for i := 0; i < GridRows; i++ {
		start := i * GridColumns
		end := start + GridColumns
		if start > len(days) {
			start = len(days)
		}
		if end > len(days) {
			end = len(days)
		}

		row := make([]ContributionCell, 0, end-start)
		for _, d := range days[start:end] {
			row = append(row, ContributionCell{
				Count:   d.Count,
				Date:    d.Date,
				Weekday: d.Weekday,
				Color:   d.Color,
				Title:   fmt.Sprintf("%d contributions on %s", d.Count, d.Date.Format(contributionDateLayout)),
			})
		}
		grid[i] = row
	}
	return grid
}
