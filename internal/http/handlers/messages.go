package handlers

import (
	"errors"
	"net/http"

	"github.com/just-nibble/git-dashboard/pkg/errcodes"
)

const (
	MsgSignedOut          = "You must be signed in to view this page."
	MsgReconnect          = "GitHub token not found. Please reconnect your GitHub account."
	MsgReposUnavailable   = "Could not load repositories."
	MsgCommitsUnavailable = "Could not load commit history."
	MsgContribUnavailable = "Could not load contribution data."
	MsgNoRepositories     = "No repositories found."
	MsgInternal           = "Internal server error"
)

// statusFor maps a usecase error onto the status code and message shown to the user.
// unavailable is the section specific "could not load" text.
func statusFor(err error, unavailable string) (int, string) {
	switch {
	case errors.Is(err, errcodes.ErrUnauthenticated):
		return http.StatusUnauthorized, MsgSignedOut
	case errors.Is(err, errcodes.ErrTokenNotFound):
		return http.StatusForbidden, MsgReconnect
	case errors.Is(err, errcodes.ErrUpstreamUnavailable):
		return http.StatusBadGateway, unavailable
	default:
		return http.StatusInternalServerError, MsgInternal
	}
}
