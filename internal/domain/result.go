package domain

import (
	"errors"
	"fmt"
)

// Result is the outcome of one enrichment call: either Success or Failure.
type Result interface {
	isResult()
}

// Success carries the provider payload scoped to the organization or person object
type Success struct {
	Kind    Kind
	Message string
	Payload Payload
}

// Failure carries a non-empty, user-facing message
type Failure struct {
	Message string
	Err     error
}

func (Success) isResult() {}
func (Failure) isResult() {}

// ResultFrom converts the outcome of a provider call into a Result.
// It is the only place lower-layer failure kinds become user-facing text.
func ResultFrom(kind Kind, envelope map[string]any, err error) Result {
	if err != nil {
		return NewFailure(err)
	}
	return Success{
		Kind:    kind,
		Message: successMessage(kind),
		Payload: extractPayload(envelope, payloadKey(kind)),
	}
}

// NewFailure maps err onto the provider, transport or unexpected category
func NewFailure(err error) Failure {
	if err == nil {
		err = ErrUnexpected
	}

	var apiErr *APIError
	var transportErr *TransportError
	switch {
	case errors.As(err, &apiErr):
		return Failure{Message: apiErr.Error(), Err: err}
	case errors.As(err, &transportErr):
		return Failure{Message: transportErr.Error(), Err: err}
	default:
		return Failure{Message: fmt.Sprintf("Unexpected error: %v", err), Err: err}
	}
}

// extractPayload returns the object under key, or an empty payload when the
// key is missing or does not hold an object.
func extractPayload(envelope map[string]any, key string) Payload {
	if obj, ok := envelope[key].(map[string]any); ok {
		return Payload(obj)
	}
	return Payload{}
}
