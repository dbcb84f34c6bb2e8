package dtos

import (
	"time"

	"github.com/just-nibble/git-dashboard/internal/domain"
)

type Repository struct {
	FullName string    `json:"full_name"`
	Name     string    `json:"name"`
	PushedAt time.Time `json:"pushed_at"`
}

func NewRepositories(repos []domain.RepositoryRef) []Repository {
	out := make([]Repository, 0, len(repos))
	for _, r := range repos {
		out = append(out, Repository{FullName: r.FullName, Name: r.Name, PushedAt: r.PushedAt})
	}
	return out
}
