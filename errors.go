package catatanku

import (
	"errors"

	"github.com/muhzarfan/catatanku/internal/types"
)

// Re-exported gateway errors so callers compare against a single symbol.
var ErrSessionExpired = types.ErrSessionExpired

type (
	// ConnectionError reports that a call got no response at all.
	ConnectionError = types.ConnectionError
	// APIError reports a server-visible failure with its message.
	APIError = types.APIError
	// FieldErrors maps form fields to validation messages.
	FieldErrors = types.FieldErrors
)

// Manager-level errors.
var (
	// ErrNotLoggedIn is returned by operations that need a session when
	// none is active.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrBusyEditing rejects opening a second note form while one is open.
	ErrBusyEditing = errors.New("a note form is already open")

	// ErrNoDraft is returned by Save when no create/edit is in progress.
	ErrNoDraft = errors.New("no draft to save")

	// ErrEmptyNote rejects a save whose title and content are both blank.
	// No network call is made.
	ErrEmptyNote = errors.New("note title and content are both empty")

	// ErrUnknownNote is returned when an edit targets an ID that is not in
	// the collection.
	ErrUnknownNote = errors.New("unknown note id")

	// ErrOperationInFlight rejects a duplicate submission while a call for
	// the same control is still outstanding.
	ErrOperationInFlight = errors.New("operation already in flight")
)

// RefreshError reports that a write succeeded but the follow-up list
// refresh did not: the note is saved, the displayed collection may be
// stale until the next refresh.
type RefreshError struct {
	Err error
}

func (e *RefreshError) Error() string {
	return "saved, but refreshing the note list failed: " + e.Err.Error()
}

func (e *RefreshError) Unwrap() error { return e.Err }

// IsSessionExpired reports whether err means the session must be
// re-established.
func IsSessionExpired(err error) bool { return errors.Is(err, ErrSessionExpired) }

// IsConnectionError reports whether err is a connection-level failure.
func IsConnectionError(err error) bool {
	var conn *ConnectionError
	return errors.As(err, &conn)
}

// SessionExpiredMessage is the user-facing wording for a forced logout,
// distinct from a credentials rejection.
const SessionExpiredMessage = "Sesi berakhir. Silakan login kembali."
