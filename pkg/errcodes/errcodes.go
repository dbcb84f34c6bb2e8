package errcodes

import "errors"

var (
	ErrContextCancelled    = errors.New("context cancelled")
	ErrTokenNotFound       = errors.New("oauth token not found")
	ErrUnauthenticated     = errors.New("user is not signed in")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrInvalidConfig       = errors.New("invalid configuration")
)
