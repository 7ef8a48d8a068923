// Package session owns the authenticated identity for the current user and
// its persistence across restarts. Nothing else mutates the session; the
// note layer reads it and delegates clearing here.
package session

import (
	"encoding/json"

	"github.com/muhzarfan/catatanku/internal/types"
)

// Stable storage keys; they survive restarts until explicit logout.
const (
	keyToken = "token"
	keyUser  = "user"
)

// Store holds the current session and mirrors it into durable storage.
type Store struct {
	storage Storage
	current *types.Session
}

// NewStore wraps the given storage. Call Restore to pick up a persisted
// session at startup.
func NewStore(storage Storage) *Store {
	return &Store{storage: storage}
}

// Restore reconstructs the session from durable storage. Absent or
// malformed data yields nil and leaves the store unauthenticated.
func (s *Store) Restore() *types.Session {
	token, ok := s.storage.Get(keyToken)
	if !ok || token == "" {
		s.current = nil
		return nil
	}
	rawUser, ok := s.storage.Get(keyUser)
	if !ok {
		s.current = nil
		return nil
	}
	var user struct {
		Username string `json:"username"`
	}
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil || user.Username == "" {
		s.current = nil
		return nil
	}
	s.current = &types.Session{Token: token, Username: user.Username}
	return s.current
}

// Save installs sess as the current session and persists it.
func (s *Store) Save(sess types.Session) error {
	rawUser, err := json.Marshal(struct {
		Username string `json:"username"`
	}{Username: sess.Username})
	if err != nil {
		return err
	}
	if err := s.storage.Set(keyToken, sess.Token); err != nil {
		return err
	}
	if err := s.storage.Set(keyUser, string(rawUser)); err != nil {
		return err
	}
	s.current = &sess
	return nil
}

// Clear drops the session unconditionally, in memory and on disk.
func (s *Store) Clear() error {
	s.current = nil
	if err := s.storage.Delete(keyToken); err != nil {
		return err
	}
	return s.storage.Delete(keyUser)
}

// Current returns the active session, or nil when unauthenticated.
func (s *Store) Current() *types.Session {
	return s.current
}

// Token returns the bearer credential, empty when unauthenticated.
func (s *Store) Token() string {
	if s.current == nil {
		return ""
	}
	return s.current.Token
}
