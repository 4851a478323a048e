package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for API operations
var (
	// ErrOffline indicates the API server is unreachable (no response at all)
	ErrOffline = errors.New("server is unreachable")

	// ErrAuthFailed indicates the server rejected the bearer credential (401/403).
	// The gateway clears the matching stored session before returning this.
	ErrAuthFailed = errors.New("authentication failed")

	// ErrNotFound indicates the requested resource does not exist (404)
	ErrNotFound = errors.New("resource not found")
)

// ValidationError is a structured 4xx rejection whose message should be
// surfaced to the user verbatim.
type ValidationError struct {
	Status  int
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request rejected with status %d", e.Status)
}

// ServerError is a 5xx response, surfaced generically and never retried.
type ServerError struct {
	Status int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error (status %d)", e.Status)
}

// UserMessage returns the text shown to the user for err, preferring the
// server's own message when one exists and falling back to a generic line.
func UserMessage(err error, fallback string) string {
	var v *ValidationError
	if errors.As(err, &v) && v.Message != "" {
		return v.Message
	}
	if errors.Is(err, ErrAuthFailed) {
		return "your session has expired, please log in again"
	}
	if errors.Is(err, ErrOffline) {
		return "could not reach the server"
	}
	return fallback
}
