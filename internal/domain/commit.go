package domain

import (
	"strings"
	"time"
)

// Commit is a single commit authored in one of the user's repositories
type Commit struct {
	Hash       string
	Repository string
	AuthorName string
	AuthorDate time.Time
	Message    string
	URL        string
}

// Subject returns the first line of the commit message
func (c Commit) Subject() string {
	subject, _, _ := strings.Cut(c.Message, "\n")
	return strings.TrimRight(subject, "\r")
}

// ShortHash returns the abbreviated hash shown in commit lists
func (c Commit) ShortHash() string {
	if len(c.Hash) <= 7 {
		return c.Hash
	}
	return c.Hash[:7]
}
