package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muhzarfan/catatanku/internal/types"
)

func TestStore_SaveRestoreClear(t *testing.T) {
	t.Parallel()

	storage := NewMemStorage()
	st := NewStore(storage)

	require.Nil(t, st.Restore(), "fresh storage has no session")
	assert.Empty(t, st.Token())

	require.NoError(t, st.Save(types.Session{Token: "t1", Username: "alice"}))
	assert.Equal(t, "t1", st.Token())

	// A second store over the same storage models a restart.
	restarted := NewStore(storage)
	sess := restarted.Restore()
	require.NotNil(t, sess)
	assert.Equal(t, "t1", sess.Token)
	assert.Equal(t, "alice", sess.Username)

	require.NoError(t, restarted.Clear())
	assert.Nil(t, restarted.Current())
	require.Nil(t, NewStore(storage).Restore(), "clear must drop durable state")
}

func TestStore_RestoreMalformed(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		setup func(*MemStorage)
	}{
		{"token only", func(s *MemStorage) { _ = s.Set("token", "t1") }},
		{"user not json", func(s *MemStorage) {
			_ = s.Set("token", "t1")
			_ = s.Set("user", "not-json")
		}},
		{"user without name", func(s *MemStorage) {
			_ = s.Set("token", "t1")
			_ = s.Set("user", `{}`)
		}},
		{"empty token", func(s *MemStorage) {
			_ = s.Set("token", "")
			_ = s.Set("user", `{"username":"alice"}`)
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			storage := NewMemStorage()
			tc.setup(storage)
			assert.Nil(t, NewStore(storage).Restore())
		})
	}
}

func TestFileStorage_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "session.json")
	fs := NewFileStorage(path)

	_, ok := fs.Get("token")
	assert.False(t, ok)

	require.NoError(t, fs.Set("token", "t1"))
	require.NoError(t, fs.Set("user", `{"username":"alice"}`))

	v, ok := NewFileStorage(path).Get("token")
	require.True(t, ok)
	assert.Equal(t, "t1", v)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStorage_DeleteRemovesEmptyFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.json")
	fs := NewFileStorage(path)
	require.NoError(t, fs.Set("token", "t1"))
	require.NoError(t, fs.Delete("token"))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "file should be gone once empty")
}

func TestFileStorage_CorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o600))

	fs := NewFileStorage(path)
	_, ok := fs.Get("token")
	assert.False(t, ok)
	require.NoError(t, fs.Set("token", "t1"), "writes recover from corrupt state")
}

func TestStore_FilePersistence(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.json")
	st := NewStore(NewFileStorage(path))
	require.NoError(t, st.Save(types.Session{Token: "abc", Username: "budi"}))

	sess := NewStore(NewFileStorage(path)).Restore()
	require.NotNil(t, sess)
	assert.Equal(t, "budi", sess.Username)
}
