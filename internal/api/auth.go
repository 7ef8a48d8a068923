package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/muhzarfan/catatanku/internal/types"
)

// Login authenticates against the external auth endpoint. It performs no
// validation; callers validate before any network call. On success the
// returned Session carries the server token and the reported username,
// falling back to the submitted one when the payload omits the user.
func Login(ctx context.Context, hc HTTPClient, baseURL string, req types.LoginRequest) (*types.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/auth/login", baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := hc.Do(httpReq)
	if err != nil {
		return nil, &types.ConnectionError{Op: "login", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	var env types.Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, &types.APIError{Op: "login", Message: fallbackAuthMessage, StatusCode: resp.StatusCode}
	}
	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = fallbackAuthMessage
		}
		return nil, &types.APIError{Op: "login", Message: msg, StatusCode: resp.StatusCode}
	}

	var data types.LoginData
	if err := json.Unmarshal(env.Data, &data); err != nil || data.Token == "" {
		return nil, &types.APIError{Op: "login", Message: fallbackAuthMessage, StatusCode: resp.StatusCode}
	}
	username := req.Username
	if data.User != nil && data.User.Username != "" {
		username = data.User.Username
	}
	return &types.Session{Token: data.Token, Username: username}, nil
}

// Register creates an account. It does not establish a session; the caller
// must log in afterwards.
func Register(ctx context.Context, hc HTTPClient, baseURL string, req types.RegisterRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body, err := json.Marshal(req)
	if err != nil {
		return err
	}
	url := fmt.Sprintf("%s/auth/register", baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := hc.Do(httpReq)
	if err != nil {
		return &types.ConnectionError{Op: "register", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	var env types.Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return &types.APIError{Op: "register", Message: fallbackAuthMessage, StatusCode: resp.StatusCode}
	}
	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = fallbackAuthMessage
		}
		return &types.APIError{Op: "register", Message: msg, StatusCode: resp.StatusCode}
	}
	return nil
}

// Logout notifies the server that the bearer token should be discarded.
// The body is ignored; only a transport failure or an error status is
// reported, and callers treat both as non-fatal.
func Logout(ctx context.Context, hc HTTPClient, baseURL string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	url := fmt.Sprintf("%s/auth/logout", baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return err
	}
	resp, err := hc.Do(httpReq)
	if err != nil {
		return &types.ConnectionError{Op: "logout", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &types.APIError{Op: "logout", Message: fallbackMessage, StatusCode: resp.StatusCode}
	}
	return nil
}
