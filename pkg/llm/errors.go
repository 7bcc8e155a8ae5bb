package llm

import (
	"errors"
	"fmt"
)

// ErrEmptyResponse is returned when the endpoint answers without any choice.
var ErrEmptyResponse = errors.New("no choices returned by model")

// TransportError means the completion endpoint could not be reached.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return "completion endpoint unreachable: " + e.Err.Error() }

func (e *TransportError) Unwrap() error { return e.Err }

// AuthenticationError means the endpoint rejected the API credential.
type AuthenticationError struct {
	StatusCode int
	Err        error
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("completion endpoint rejected credentials (http %d): %v", e.StatusCode, e.Err)
}

func (e *AuthenticationError) Unwrap() error { return e.Err }

// APIError covers every other non-2xx answer, e.g. quota exhaustion or server errors.
type APIError struct {
	StatusCode int
	Err        error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("completion endpoint http %d: %v", e.StatusCode, e.Err)
}

func (e *APIError) Unwrap() error { return e.Err }

// IsAuthentication reports whether err is, or wraps, an AuthenticationError.
func IsAuthentication(err error) bool {
	var ae *AuthenticationError
	return errors.As(err, &ae)
}
