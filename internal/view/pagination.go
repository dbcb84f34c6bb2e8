package view

import (
	"github.com/just-nibble/git-dashboard/internal/domain"
)

const (
	DEFAULTPAGE = 1
	PageSize    = 5

	EmptyCommitsText = "No commits found in the last 30 days."
	CommitDateLayout = "Jan 2, 2006"
)

// CommitRow is the compact rendering of one commit in the history list
type CommitRow struct {
	Hash      string
	ShortHash string
	Subject   string
	Author    string
	Date      string
	URL       string
}

// CommitPager windows an already sorted commit sequence into fixed-size pages.
//
// The cursor is 1-based and always within [1, TotalPages()]. An empty sequence
// still has one (empty) page, so both navigation controls are disabled.
type CommitPager struct {
	commits []domain.Commit
	cursor  int
}

func NewCommitPager(commits []domain.Commit) *CommitPager {
	return &CommitPager{commits: commits, cursor: DEFAULTPAGE}
}

func (p *CommitPager) Page() int {
	return p.cursor
}

func (p *CommitPager) Len() int {
	return len(p.commits)
}

func (p *CommitPager) Empty() bool {
	return len(p.commits) == 0
}

// TotalPages is ceil(N/PageSize), but never less than one.
func (p *CommitPager) TotalPages() int {
	pages := (len(p.commits) + PageSize - 1) / PageSize
	if pages < 1 {
		return 1
	}
	return pages
}

func (p *CommitPager) HasNext() bool {
	return p.cursor < p.TotalPages()
}

func (p *CommitPager) HasPrev() bool {
	return p.cursor > 1
}

// Advance moves to the next page; it is a no-op on the last page.
func (p *CommitPager) Advance() {
	if p.HasNext() {
		p.cursor++
	}
}

// Retreat moves to the previous page; it is a no-op on the first page.
func (p *CommitPager) Retreat() {
	if p.HasPrev() {
		p.cursor--
	}
}

// Goto clamps page into the valid range and makes it current.
func (p *CommitPager) Goto(page int) {
	switch {
	case page < 1:
		p.cursor = 1
	case page > p.TotalPages():
		p.cursor = p.TotalPages()
	default:
		p.cursor = page
	}
}

// Visible returns the commits on the current page.
func (p *CommitPager) Visible() []domain.Commit {
	lastIndex := p.cursor * PageSize
	firstIndex := lastIndex - PageSize

	if firstIndex >= len(p.commits) {
		return nil
	}
	if lastIndex > len(p.commits) {
		lastIndex = len(p.commits)
	}
	return p.commits[firstIndex:lastIndex]
}

// Rows renders the current page in descending-date order.
func (p *CommitPager) Rows() []CommitRow {
	visible := p.Visible()
	rows := make([]CommitRow, 0, len(visible))
	for _, c := range visible {
		rows = append(rows, CommitRow{
			Hash:      c.Hash,
			ShortHash: c.ShortHash(),
			Subject:   c.Subject(),
			Author:    c.AuthorName,
			Date:      c.AuthorDate.Format(CommitDateLayout),
			URL:       c.URL,
		})
	}
	return rows
}
