package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/just-nibble/git-dashboard/internal/view"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	shaStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#696969"))
	subjectStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	boxStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
)

// RenderError formats one of the user-facing failure messages
func RenderError(msg string) string {
	return errorStyle.Render(msg)
}

// RenderCommitPage draws the pager's current page with its navigation footer
func RenderCommitPage(p *view.CommitPager) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Commit History (Last 30 Days)"))
	b.WriteString("\n")

	if p.Empty() {
		b.WriteString(mutedStyle.Render(view.EmptyCommitsText))
		return boxStyle.Render(b.String())
	}

	for _, row := range p.Rows() {
		fmt.Fprintf(&b, "%s %s\n", shaStyle.Render(row.ShortHash), subjectStyle.Render(row.Subject))
		fmt.Fprintf(&b, "  %s\n", mutedStyle.Render(fmt.Sprintf("by %s on %s", row.Author, row.Date)))
	}

	prev, next := "Previous", "Next"
	if !p.HasPrev() {
		prev = mutedStyle.Render("(" + prev + ")")
	}
	if !p.HasNext() {
		next = mutedStyle.Render("(" + next + ")")
	}
	fmt.Fprintf(&b, "\n%s  Page %d of %d  %s", prev, p.Page(), p.TotalPages(), next)

	return boxStyle.Render(b.String())
}

// RenderGrid draws the contribution calendar, one colored block per day
func RenderGrid(grid [][]view.ContributionCell) string {
	rows := make([]string, 0, len(grid))
	for _, row := range grid {
		cells := make([]string, 0, len(row))
		for _, c := range row {
			style := lipgloss.NewStyle()
			if c.Color != "" {
				style = style.Foreground(lipgloss.Color(c.Color))
			}
			cells = append(cells, style.Render("■"))
		}
		rows = append(rows, strings.Join(cells, " "))
	}

	body := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return boxStyle.Render(titleStyle.Render("Last 30 Days of Contributions") + "\n" + body)
}
