// Package api holds the raw request functions for the Catatanku HTTP API.
// Each function speaks the wire contract and translates transport and
// server outcomes into the shared error types; session handling, retries
// and metrics live in the facade above.
package api

import "net/http"

// HTTPClient interface for dependency injection. The production client is an
// *http.Client whose transport attaches the bearer credential.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Fallback user-facing messages when the server supplies none.
const (
	fallbackAuthMessage = "Terjadi kesalahan. Cek kredensial Anda."
	fallbackMessage     = "Terjadi kesalahan."
)
