package client

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/rentpred/internal/netx"
)

var (
	ErrUnavailable       = errors.New("server unavailable")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrRejected          = errors.New("request rejected")
	ErrServer            = errors.New("server error")
	ErrMalformedResponse = errors.New("malformed response")
)

// APIError is a non-2xx answer from the backend. Message is the server's
// {error} text, or the status text when the body carried none.
type APIError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s (HTTP %d)", e.Op, e.Message, e.StatusCode)
}

func (e *APIError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusUnauthorized, e.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case e.StatusCode >= 500:
		return ErrServer
	default:
		return ErrRejected
	}
}

// NetworkError is a request that never produced an HTTP response.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// Is reports ErrUnavailable for connectivity failures. Cancellation by the
// caller is not one.
func (e *NetworkError) Is(target error) bool {
	return target == ErrUnavailable && netx.IsUnreachable(e.Err)
}
