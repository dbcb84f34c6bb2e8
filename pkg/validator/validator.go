package validator

import (
	"errors"
	"strings"
)

var ErrInvalidRepository = errors.New("invalid repository name, expected owner/name")

// SplitRepository splits a full repository name into owner and name
func SplitRepository(fullName string) (string, string, error) {
	repoSlice := strings.Split(fullName, "/")
	if len(repoSlice) != 2 || repoSlice[0] == "" || repoSlice[1] == "" {
		return "", "", ErrInvalidRepository
	}

	return repoSlice[0], repoSlice[1], nil
}
