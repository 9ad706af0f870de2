package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrTransport is returned when the enrichment API cannot be reached
	ErrTransport = errors.New("enrichment API unreachable")

	// ErrUnexpected is returned for failures that fit no other category
	ErrUnexpected = errors.New("unexpected error")
)

// APIError is a non-200 response from the enrichment provider.
// Body holds the raw response text as returned by the provider.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e == nil {
		return "API Error"
	}
	return fmt.Sprintf("API Error: %d - %s", e.StatusCode, e.Body)
}

// TransportError wraps connection, DNS, TLS and timeout failures.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	if e == nil || e.Err == nil {
		return "Request failed"
	}
	return fmt.Sprintf("Request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is lets errors.Is(err, ErrTransport) match any transport failure.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}
