package types

// ------------------------------
// Core Domain Entities
// ------------------------------

// Session is the authenticated identity for the current user. The token is
// opaque to the client; it is attached verbatim as a bearer credential.
type Session struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// Note is a single note as the server reports it. Timestamps are carried as
// the server's strings; the client never reinterprets or synthesizes them,
// and it never synthesizes an ID.
type Note struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Tags      string `json:"tags"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// Draft holds the in-progress form values for a note being created or
// edited. It is transient and never persisted.
type Draft struct {
	Title   string
	Tags    string
	Content string
}
