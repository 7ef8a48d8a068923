package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/muhzarfan/catatanku/internal/types"
)

// ListNotes fetches the caller's full note collection. A missing or
// non-list payload yields an empty collection rather than an error; the
// server's canonical view after a write is re-read through this call.
func ListNotes(ctx context.Context, hc HTTPClient, baseURL string) ([]types.Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/notes", baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := hc.Do(httpReq)
	if err != nil {
		return nil, &types.ConnectionError{Op: "list notes", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, types.ErrSessionExpired
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &types.APIError{Op: "list notes", Message: fallbackMessage, StatusCode: resp.StatusCode}
	}

	var env types.Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return []types.Note{}, nil
	}
	var data types.NotesData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return []types.Note{}, nil
	}
	var wire []types.WireNote
	if err := json.Unmarshal(data.Notes, &wire); err != nil {
		return []types.Note{}, nil
	}
	notes := make([]types.Note, 0, len(wire))
	for _, w := range wire {
		notes = append(notes, w.Note())
	}
	return notes, nil
}

// CreateNote stores a new note. The server assigns the ID and timestamps.
func CreateNote(ctx context.Context, hc HTTPClient, baseURL string, fields types.NoteFields) error {
	url := fmt.Sprintf("%s/notes", baseURL)
	return mutateNote(ctx, hc, http.MethodPost, url, &fields, "create note")
}

// UpdateNote replaces the writable fields of an existing note.
func UpdateNote(ctx context.Context, hc HTTPClient, baseURL, id string, fields types.NoteFields) error {
	url := fmt.Sprintf("%s/notes/%s", baseURL, id)
	return mutateNote(ctx, hc, http.MethodPut, url, &fields, "update note")
}

// DeleteNote removes a note by ID.
func DeleteNote(ctx context.Context, hc HTTPClient, baseURL, id string) error {
	url := fmt.Sprintf("%s/notes/%s", baseURL, id)
	return mutateNote(ctx, hc, http.MethodDelete, url, nil, "delete note")
}

// mutateNote issues a write and interprets the uniform envelope. All three
// mutations share the outcome rules: 401 means the session expired, a
// transport error means connection failed, success=false carries the
// server's message or the generic fallback.
func mutateNote(ctx context.Context, hc HTTPClient, method, url string, fields *types.NoteFields, op string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var body *bytes.Buffer
	if fields != nil {
		raw, err := json.Marshal(fields)
		if err != nil {
			return err
		}
		body = bytes.NewBuffer(raw)
	} else {
		body = &bytes.Buffer{}
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return err
	}
	if fields != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := hc.Do(httpReq)
	if err != nil {
		return &types.ConnectionError{Op: op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized {
		return types.ErrSessionExpired
	}

	var env types.Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return &types.APIError{Op: op, Message: fallbackMessage, StatusCode: resp.StatusCode}
	}
	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = fallbackMessage
		}
		return &types.APIError{Op: op, Message: msg, StatusCode: resp.StatusCode}
	}
	return nil
}
