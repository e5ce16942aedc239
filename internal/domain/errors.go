package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrServiceUnavailable covers the network class of remote failures:
	// connection refused, timeout, DNS. Reads fall back on it, writes propagate.
	ErrServiceUnavailable = errors.New("car service is unavailable")

	// ErrMalformedResponse means the remote answered but the body did not
	// have the expected shape.
	ErrMalformedResponse = errors.New("malformed response from car service")

	ErrCarNotFound        = errors.New("car not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// NotFoundError carries the identifier that was looked up.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("car %q not found", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrCarNotFound
}

// APIError is a non-network remote failure (validation, auth, server error).
// It is propagated to the caller unchanged.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("car service returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("car service returned status %d: %s", e.StatusCode, e.Message)
}
