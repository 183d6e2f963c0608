// Package netx contains net/http helpers shared by the API client.
package netx

import (
	"context"
	"errors"
	"io"
	"net"
	"net/url"
	"syscall"
)

// MaxErrorBody bounds how much of a failed response body is read for diagnostics.
const MaxErrorBody = 64 << 10

// IsUnreachable reports whether err is a transport failure (DNS, refused
// connection, timeout, reset) rather than an HTTP response from the server.
// Caller cancellation is not a transport failure.
func IsUnreachable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var urlErr *url.Error
	return errors.As(err, &urlErr)
}

// ReadLimited reads up to MaxErrorBody bytes from r.
func ReadLimited(r io.Reader) ([]byte, error) {
	return io.ReadAll(io.LimitReader(r, MaxErrorBody))
}

// DrainAndClose discards what is left of body so the connection can be reused.
func DrainAndClose(body io.ReadCloser) {
	if body == nil {
		return
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(body, MaxErrorBody))
	_ = body.Close()
}
