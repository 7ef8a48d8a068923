package catatanku

import "github.com/muhzarfan/catatanku/internal/types"

// Public type aliases so SDK consumers can import only this package.
type (
	// Domain entities
	Session = types.Session
	Note    = types.Note
	Draft   = types.Draft

	// Requests
	RegisterRequest = types.RegisterRequest
	LoginRequest    = types.LoginRequest
	NoteFields      = types.NoteFields
)
