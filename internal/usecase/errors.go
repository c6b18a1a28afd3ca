package usecase

import "errors"

// Sentinel errors the HTTP layer maps to status codes. Services wrap these
// with %w plus the offending identifier.
var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
