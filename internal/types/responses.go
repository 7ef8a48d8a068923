package types

import "encoding/json"

// ------------------------------
// Response Types (wire envelopes)
// ------------------------------

// Envelope is the server's uniform response wrapper.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// LoginData is the payload of a successful login. User may be absent; the
// caller falls back to the submitted username.
type LoginData struct {
	Token string `json:"token"`
	User  *struct {
		Username string `json:"username"`
	} `json:"user,omitempty"`
}

// NotesData wraps the list endpoint payload. Notes is kept raw so a missing
// or non-list value can be tolerated instead of failing the whole call.
type NotesData struct {
	Notes json.RawMessage `json:"notes"`
}

// WireNote mirrors a note as the list endpoint reports it. The server calls
// the identifier "_id"; everywhere else in the client it is "id".
type WireNote struct {
	ID        string `json:"_id"`
	Title     string `json:"title"`
	Tags      string `json:"tags"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// Note converts the wire shape to the domain shape.
func (w WireNote) Note() Note {
	return Note{
		ID:        w.ID,
		Title:     w.Title,
		Tags:      w.Tags,
		Content:   w.Content,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}
