// Package catatanku is the client SDK for the Catatanku notes service:
// authenticated note CRUD over HTTP/JSON, a persistent session store, and
// the note-collection state machine the UI layers drive.
package catatanku

import (
	"context"
	"net/http"
	"strings"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/muhzarfan/catatanku/internal/api"
	interrors "github.com/muhzarfan/catatanku/internal/errors"
	"github.com/muhzarfan/catatanku/session"
	"github.com/muhzarfan/catatanku/internal/types"
)

// listRetries bounds the extra attempts for the idempotent list call when
// the failure is classified as recoverable.
const listRetries = 2

// Client issues authenticated requests against the notes API. The bearer
// credential is read from the session store on every request, so a login
// or logout takes effect immediately without rebuilding the client.
type Client struct {
	baseURL  string
	http     *http.Client
	sessions *session.Store
}

// New constructs a Client for the API at baseURL, authenticating from
// sessions. Additional options can be provided via functional arguments.
func New(baseURL string, sessions *session.Store, opts ...Option) *Client {
	if baseURL == "" {
		panic("baseURL cannot be empty")
	}
	if sessions == nil {
		panic("session store cannot be nil")
	}

	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: 30 * time.Second},
		sessions: sessions,
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			panic(err)
		}
	}

	c.wrapTransportWithAuth()
	return c
}

// wrapTransportWithAuth wraps the HTTP client's transport so every request
// carries the current bearer token (when a session exists) and a request ID
// for log correlation.
func (c *Client) wrapTransportWithAuth() {
	base := c.http.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	c.http.Transport = &authTransport{
		base:  base,
		token: c.sessions.Token,
	}
}

// authTransport wraps an http.RoundTripper to attach the Authorization
// header and an X-Request-Id.
type authTransport struct {
	base  http.RoundTripper
	token func() string
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	cloned := req.Clone(req.Context())
	if tok := t.token(); tok != "" {
		cloned.Header.Set("Authorization", "Bearer "+tok)
	}
	cloned.Header.Set("X-Request-Id", uuid.NewString())
	return t.base.RoundTrip(cloned)
}

// Restore reconstructs a persisted session at startup. It returns nil when
// no valid session is stored.
func (c *Client) Restore() *Session {
	return c.sessions.Restore()
}

// Session returns the active session, or nil when unauthenticated.
func (c *Client) Session() *Session {
	return c.sessions.Current()
}

// Login validates the form, authenticates, and persists the resulting
// session. Validation failures are reported per field and never reach the
// network.
func (c *Client) Login(ctx context.Context, username, password string) (s *Session, err error) {
	defer func() { instrument("login", err) }()

	req := types.LoginRequest{Username: username, Password: password}
	if verrs := req.ValidateLogin(); verrs != nil {
		return nil, verrs
	}
	sess, err := api.Login(ctx, c.http, c.baseURL, req)
	if err != nil {
		return nil, err
	}
	if err := c.sessions.Save(*sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Register creates an account. It does not establish a session; callers
// log in afterwards.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (err error) {
	defer func() { instrument("register", err) }()

	if verrs := req.ValidateRegistration(); verrs != nil {
		return verrs
	}
	return api.Register(ctx, c.http, c.baseURL, req)
}

// Logout notifies the server best-effort, then unconditionally clears the
// persisted session. A failed server call is logged, never surfaced.
func (c *Client) Logout(ctx context.Context) error {
	if c.sessions.Token() != "" {
		if err := api.Logout(ctx, c.http, c.baseURL); err != nil {
			log.Warn().Err(err).Msg("logout call failed, clearing session anyway")
		}
	}
	return c.sessions.Clear()
}

// ListNotes fetches the full note collection. Recoverable failures
// (connection loss, transient server errors) are retried a bounded number
// of times before the outcome is surfaced.
func (c *Client) ListNotes(ctx context.Context) (notes []Note, err error) {
	defer func() { instrument("list_notes", err) }()

	op := func() error {
		var opErr error
		notes, opErr = api.ListNotes(ctx, c.http, c.baseURL)
		if opErr != nil && interrors.Classify(opErr) == interrors.Irrecoverable {
			return backoff.Permanent(opErr)
		}
		return opErr
	}
	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), listRetries), ctx)
	if err = backoff.Retry(op, bo); err != nil {
		return nil, err
	}
	return notes, nil
}

// CreateNote stores a new note; the server assigns ID and timestamps.
func (c *Client) CreateNote(ctx context.Context, fields NoteFields) (err error) {
	defer func() { instrument("create_note", err) }()
	return api.CreateNote(ctx, c.http, c.baseURL, fields)
}

// UpdateNote replaces the writable fields of note id.
func (c *Client) UpdateNote(ctx context.Context, id string, fields NoteFields) (err error) {
	defer func() { instrument("update_note", err) }()
	return api.UpdateNote(ctx, c.http, c.baseURL, id, fields)
}

// DeleteNote removes note id.
func (c *Client) DeleteNote(ctx context.Context, id string) (err error) {
	defer func() { instrument("delete_note", err) }()
	return api.DeleteNote(ctx, c.http, c.baseURL, id)
}
