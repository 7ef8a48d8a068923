package types

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ------------------------------
// Shared Errors
// ------------------------------

// ErrSessionExpired is returned when an authenticated call comes back with
// HTTP 401. Callers must force a logout and clear local state.
var ErrSessionExpired = errors.New("session expired")

// ConnectionError reports that a request got no usable response at all
// (DNS failure, refused connection, timeout). Local state must not be
// mutated on this outcome.
type ConnectionError struct {
	Op  string
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("%s: connection failed: %v", e.Op, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// APIError reports a server-visible failure: either an envelope with
// success=false or an unexpected HTTP status. Message carries the server's
// text when present, otherwise a generic fallback.
type APIError struct {
	Op         string
	Message    string
	StatusCode int
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: %s (HTTP %d)", e.Op, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// FieldErrors maps a form field name to its validation message. Validation
// failures never reach the network.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	fields := make([]string, 0, len(f))
	for name := range f {
		fields = append(fields, name)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(f))
	for _, name := range fields {
		parts = append(parts, name+": "+f[name])
	}
	return "validation: " + strings.Join(parts, "; ")
}
