package types

// ------------------------------
// Request Types
// ------------------------------

// RegisterRequest holds the registration form values. ConfirmPassword is
// validated client-side and never sent over the wire.
type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"-"`
}

// LoginRequest holds the login form values. Username is the sole login
// identifier; email is registration-only metadata.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// NoteFields carries the writable fields of a note for create and update
// calls. The server owns IDs and timestamps.
type NoteFields struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Tags    string `json:"tags"`
}
