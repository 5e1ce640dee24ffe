package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable covers network failures and timeouts.
	ErrUnavailable = errors.New("server unavailable")
	// ErrUnauthorized is returned for authentication failures (HTTP 401).
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound is returned for HTTP 404.
	ErrNotFound = errors.New("not found")
)

// StatusError carries any other non-2xx response through to the caller
// unchanged. No retry, no backoff: resilience is the caller's problem.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("unexpected status %d", e.Code)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Message)
}
