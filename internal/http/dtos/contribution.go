package dtos

import "github.com/just-nibble/git-dashboard/internal/view"

type ContributionCell struct {
	Date    string `json:"date"`
	Count   int    `json:"count"`
	Weekday int    `json:"weekday"`
	Color   string `json:"color"`
	Title   string `json:"title"`
}

// ContributionGrid is the 6x5 calendar, row-major, oldest day first
type ContributionGrid struct {
	Rows    int                  `json:"rows"`
	Columns int                  `json:"columns"`
	Cells   [][]ContributionCell `json:"cells"`
}

func NewContributionGrid(grid [][]view.ContributionCell) ContributionGrid {
	cells := make([][]ContributionCell, 0, len(grid))
	for _, row := range grid {
		out := make([]ContributionCell, 0, len(row))
		for _, c := range row {
			out = append(out, ContributionCell{
				Date:    c.Date.Format("2006-01-02"),
				Count:   c.Count,
				Weekday: c.Weekday,
				Color:   c.Color,
				Title:   c.Title,
			})
		}
		cells = append(cells, out)
	}
	return ContributionGrid{Rows: view.GridRows, Columns: view.GridColumns, Cells: cells}
}
