package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Storage is the durable key-value backend the Store persists through. It is
// deliberately tiny so the Store is testable without touching the filesystem.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

// FileStorage keeps the key-value map as a single JSON file with 0600
// permissions. Reads re-parse the file so separate processes see each
// other's logout.
type FileStorage struct {
	path string
}

// NewFileStorage returns storage backed by the given file path.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// DefaultPath places the session file under the user config dir,
// honouring XDG_CONFIG_HOME.
func DefaultPath() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "catatanku", "session.json")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "catatanku", "session.json")
}

func (f *FileStorage) load() map[string]string {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		return map[string]string{}
	}
	var m map[string]string
	if err := json.Unmarshal(raw, &m); err != nil || m == nil {
		return map[string]string{}
	}
	return m
}

func (f *FileStorage) save(m map[string]string) error {
	if len(m) == 0 {
		err := os.Remove(f.path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, raw, 0o600)
}

func (f *FileStorage) Get(key string) (string, bool) {
	v, ok := f.load()[key]
	return v, ok
}

func (f *FileStorage) Set(key, value string) error {
	m := f.load()
	m[key] = value
	return f.save(m)
}

func (f *FileStorage) Delete(key string) error {
	m := f.load()
	delete(m, key)
	return f.save(m)
}

// MemStorage is an in-memory Storage for tests and ephemeral sessions.
type MemStorage struct {
	m map[string]string
}

func NewMemStorage() *MemStorage {
	return &MemStorage{m: map[string]string{}}
}

func (s *MemStorage) Get(key string) (string, bool) {
	v, ok := s.m[key]
	return v, ok
}

func (s *MemStorage) Set(key, value string) error {
	s.m[key] = value
	return nil
}

func (s *MemStorage) Delete(key string) error {
	delete(s.m, key)
	return nil
}
