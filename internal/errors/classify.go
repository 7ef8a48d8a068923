// Package errors classifies gateway outcomes so retry policies and metrics
// can treat them uniformly without inspecting each error type at every site.
package errors

import (
	goerrors "errors"
	"fmt"
	"net/http"

	"github.com/muhzarfan/catatanku/internal/types"
)

// Category determines how an error should be handled by retry logic.
type Category int

const (
	// Recoverable errors may be retried with backoff: connection-level
	// failures and transient server statuses (5xx, 408, 429).
	Recoverable Category = iota

	// Irrecoverable errors fail immediately: validation, expired sessions,
	// server-reported rejections.
	Irrecoverable
)

func (c Category) String() string {
	switch c {
	case Recoverable:
		return "Recoverable"
	case Irrecoverable:
		return "Irrecoverable"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// Classify maps a gateway error to its category. A nil error has no
// category; callers must check first.
func Classify(err error) Category {
	var conn *types.ConnectionError
	if goerrors.As(err, &conn) {
		return Recoverable
	}
	var api *types.APIError
	if goerrors.As(err, &api) {
		switch {
		case api.StatusCode >= 500 && api.StatusCode < 600:
			return Recoverable
		case api.StatusCode == http.StatusRequestTimeout, api.StatusCode == http.StatusTooManyRequests:
			return Recoverable
		default:
			return Irrecoverable
		}
	}
	return Irrecoverable
}

// Reason is a short stable label for metrics.
func Reason(err error) string {
	switch {
	case err == nil:
		return "none"
	case goerrors.Is(err, types.ErrSessionExpired):
		return "session_expired"
	default:
	}
	var conn *types.ConnectionError
	if goerrors.As(err, &conn) {
		return "connection"
	}
	var fields types.FieldErrors
	if goerrors.As(err, &fields) {
		return "validation"
	}
	var api *types.APIError
	if goerrors.As(err, &api) {
		return "server"
	}
	return "internal"
}
