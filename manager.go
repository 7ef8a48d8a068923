package catatanku

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/muhzarfan/catatanku/tags"
)

// untitledFallback is used when a note is saved with a blank title but
// non-blank content.
const untitledFallback = "Untitled"

// ConfirmFunc asks the user to confirm a destructive action. Returning
// false cancels it before any network call.
type ConfirmFunc func() bool

type modeKind int

const (
	modeIdle modeKind = iota
	modeCreating
	modeEditing
)

// Mode is the mutually exclusive UI state of the note collection: Idle,
// Creating, or Editing a specific note. The zero value is Idle; an editing
// mode always carries its note ID, so illegal combinations cannot be
// represented.
type Mode struct {
	kind   modeKind
	noteID string
}

func idleMode() Mode             { return Mode{} }
func creatingMode() Mode         { return Mode{kind: modeCreating} }
func editingMode(id string) Mode { return Mode{kind: modeEditing, noteID: id} }

// IsIdle reports that no note form is open.
func (m Mode) IsIdle() bool { return m.kind == modeIdle }

// IsCreating reports that a new note is being composed.
func (m Mode) IsCreating() bool { return m.kind == modeCreating }

// EditingID returns the target note ID when a note is being edited.
func (m Mode) EditingID() (string, bool) {
	if m.kind != modeEditing {
		return "", false
	}
	return m.noteID, true
}

func (m Mode) String() string {
	switch m.kind {
	case modeCreating:
		return "creating"
	case modeEditing:
		return "editing(" + m.noteID + ")"
	default:
		return "idle"
	}
}

// Manager owns the in-memory note collection for the current session and
// the create/edit state machine around it. All writes go through the
// gateway and are followed by a full refetch, so the displayed collection
// always reflects the server's canonical view.
//
// The Manager expects a single event-processing goroutine: it is not safe
// for concurrent use. The in-flight guard exists to reject duplicate
// submissions from rapid repeated user input, not to synchronize threads.
type Manager struct {
	client *Client

	notes []Note
	mode  Mode
	draft Draft
	busy  bool
}

// NewManager wraps client. Call Refresh after a session is established or
// restored to populate the collection.
func NewManager(client *Client) *Manager {
	return &Manager{client: client}
}

// Notes returns the current in-memory collection in server order.
func (m *Manager) Notes() []Note { return m.notes }

// Mode returns the current UI mode.
func (m *Manager) Mode() Mode { return m.mode }

// Draft returns a copy of the in-progress form values.
func (m *Manager) Draft() Draft { return m.draft }

// SetDraftTitle updates the draft's title field.
func (m *Manager) SetDraftTitle(title string) { m.draft.Title = title }

// SetDraftTags updates the draft's raw tags text.
func (m *Manager) SetDraftTags(t string) { m.draft.Tags = t }

// SetDraftContent mirrors the edit surface's markup into the draft. The
// surface stays the source of truth while focused; this is the one-way
// flow back to the resting value.
func (m *Manager) SetDraftContent(markup string) { m.draft.Content = markup }

// Search returns the notes matching query, preserving collection order.
func (m *Manager) Search(query string) []Note {
	return tags.Filter(m.notes, query)
}

// Refresh re-fetches the collection from the server. On session expiry the
// local state is cleared and the session is torn down.
func (m *Manager) Refresh(ctx context.Context) error {
	if m.client.Session() == nil {
		m.notes = nil
		return ErrNotLoggedIn
	}
	if m.busy {
		return ErrOperationInFlight
	}
	m.busy = true
	defer func() { m.busy = false }()

	notes, err := m.client.ListNotes(ctx)
	if m.client.Session() == nil {
		// Logged out while the call was in flight; discard the response.
		return nil
	}
	if errors.Is(err, ErrSessionExpired) {
		m.expire(ctx)
		return err
	}
	if err != nil {
		return err
	}
	m.notes = notes
	return nil
}

// StartCreate opens the form for a new note. Rejected when a form is
// already open.
func (m *Manager) StartCreate() error {
	if m.client.Session() == nil {
		return ErrNotLoggedIn
	}
	if !m.mode.IsIdle() {
		return ErrBusyEditing
	}
	m.mode = creatingMode()
	m.draft = Draft{}
	return nil
}

// StartEdit opens the form for an existing note and seeds the draft from
// its current fields.
func (m *Manager) StartEdit(id string) error {
	if m.client.Session() == nil {
		return ErrNotLoggedIn
	}
	if !m.mode.IsIdle() {
		return ErrBusyEditing
	}
	for _, n := range m.notes {
		if n.ID == id {
			m.draft = Draft{Title: n.Title, Tags: n.Tags, Content: n.Content}
			m.mode = editingMode(id)
			return nil
		}
	}
	return ErrUnknownNote
}

// Cancel abandons the open form and clears the draft.
func (m *Manager) Cancel() {
	m.draft = Draft{}
	m.mode = idleMode()
}

// Save submits the draft: a create when Creating, an update when Editing.
// A draft whose title and content are both blank is rejected locally with
// no network call; a blank title alone falls back to "Untitled". On
// success the collection is re-fetched before the transition back to Idle
// completes; if only that refetch fails, the save still completes and a
// RefreshError is returned. On failure the draft and mode are left
// untouched so the user can retry.
func (m *Manager) Save(ctx context.Context) error {
	if m.client.Session() == nil {
		return ErrNotLoggedIn
	}
	if m.mode.IsIdle() {
		return ErrNoDraft
	}
	if m.busy {
		return ErrOperationInFlight
	}

	title := strings.TrimSpace(m.draft.Title)
	if title == "" && strings.TrimSpace(m.draft.Content) == "" {
		return ErrEmptyNote
	}
	if title == "" {
		title = untitledFallback
	}
	fields := NoteFields{Title: title, Content: m.draft.Content, Tags: m.draft.Tags}

	m.busy = true
	defer func() { m.busy = false }()

	var err error
	if id, editing := m.mode.EditingID(); editing {
		err = m.client.UpdateNote(ctx, id, fields)
	} else {
		err = m.client.CreateNote(ctx, fields)
	}
	if m.client.Session() == nil {
		return nil
	}
	if errors.Is(err, ErrSessionExpired) {
		m.expire(ctx)
		return err
	}
	if err != nil {
		return err
	}

	return m.settle(ctx)
}

// Delete removes a note after explicit confirmation. Declining the
// confirmation issues no network call and leaves the note in place. On
// success the collection is re-fetched; on failure the note remains
// displayed unchanged.
func (m *Manager) Delete(ctx context.Context, id string, confirm ConfirmFunc) error {
	if m.client.Session() == nil {
		return ErrNotLoggedIn
	}
	if m.busy {
		return ErrOperationInFlight
	}
	if confirm == nil || !confirm() {
		return nil
	}

	m.busy = true
	defer func() { m.busy = false }()

	err := m.client.DeleteNote(ctx, id)
	if m.client.Session() == nil {
		return nil
	}
	if errors.Is(err, ErrSessionExpired) {
		m.expire(ctx)
		return err
	}
	if err != nil {
		return err
	}

	return m.settle(ctx)
}

// settle finishes a successful write: refetch, then close the form. The
// write has already happened, so even a failed refetch terminates the
// editing mode; the caller learns about the stale view via RefreshError.
func (m *Manager) settle(ctx context.Context) error {
	notes, err := m.client.ListNotes(ctx)
	if m.client.Session() == nil {
		return nil
	}
	if errors.Is(err, ErrSessionExpired) {
		m.expire(ctx)
		return err
	}

	m.draft = Draft{}
	m.mode = idleMode()
	if err != nil {
		log.Warn().Err(err).Msg("note saved but list refresh failed")
		return &RefreshError{Err: err}
	}
	m.notes = notes
	return nil
}

// Logout clears the collection and the form, then tears the session down.
func (m *Manager) Logout(ctx context.Context) error {
	m.notes = nil
	m.draft = Draft{}
	m.mode = idleMode()
	return m.client.Logout(ctx)
}

// expire handles a 401 from any authenticated call: collection cleared,
// mode reset, session torn down (best-effort server notify included).
func (m *Manager) expire(ctx context.Context) {
	m.notes = nil
	m.draft = Draft{}
	m.mode = idleMode()
	if err := m.client.Logout(ctx); err != nil {
		log.Warn().Err(err).Msg("clearing expired session failed")
	}
}
