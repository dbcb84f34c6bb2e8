package domain

import "time"

// RepositoryRef identifies a repository on the code-hosting platform
type RepositoryRef struct {
	FullName string
	Name     string
	PushedAt time.Time
}
