package dtos

import (
	"time"

	"github.com/just-nibble/git-dashboard/internal/domain"
	"github.com/just-nibble/git-dashboard/internal/view"
)

// Commit represents the JSON structure of one commit in the history list
type Commit struct {
	SHA        string    `json:"sha"`
	ShortSHA   string    `json:"short_sha"`
	Repository string    `json:"repository"`
	Message    string    `json:"message"`
	Author     string    `json:"author"`
	Date       time.Time `json:"date"`
	URL        string    `json:"url"`
}

type PagingInfo struct {
	Page        int  `json:"page"`
	PageSize    int  `json:"page_size"`
	TotalPages  int  `json:"total_pages"`
	TotalCount  int  `json:"total_count"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

type MultiCommitsResponse struct {
	Commits  []Commit   `json:"commits"`
	PageInfo PagingInfo `json:"page_info"`
}

func NewMultiCommitsResponse(pager *view.CommitPager) MultiCommitsResponse {
	visible := pager.Visible()
	commits := make([]Commit, 0, len(visible))
	for _, c := range visible {
		commits = append(commits, NewCommit(c))
	}

	return MultiCommitsResponse{
		Commits: commits,
		PageInfo: PagingInfo{
			Page:        pager.Page(),
			PageSize:    view.PageSize,
			TotalPages:  pager.TotalPages(),
			TotalCount:  pager.Len(),
			HasNext:     pager.HasNext(),
			HasPrevious: pager.HasPrev(),
		},
	}
}

func NewCommit(c domain.Commit) Commit {
	return Commit{
		SHA:        c.Hash,
		ShortSHA:   c.ShortHash(),
		Repository: c.Repository,
		Message:    c.Subject(),
		Author:     c.AuthorName,
		Date:       c.AuthorDate,
		URL:        c.URL,
	}
}
