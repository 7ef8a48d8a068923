package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runCLI executes the root command with args and returns its combined
// output.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// feedStdin replaces os.Stdin with a pipe carrying data for the duration
// of the test.
func feedStdin(t *testing.T, data string) {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	old := os.Stdin
	os.Stdin = r
	t.Cleanup(func() {
		os.Stdin = old
		_ = r.Close()
	})
	go func() {
		_, _ = w.WriteString(data)
		_ = w.Close()
	}()
}

// stubBackend is a minimal notes API accepting one credential pair.
func stubBackend(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username != "alice" || req.Password != "secret123" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "Username atau password salah"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    map[string]any{"token": "t1", "user": map[string]string{"username": "alice"}},
		})
	})
	mux.HandleFunc("POST /auth/logout", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	})
	mux.HandleFunc("GET /notes", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer t1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": map[string]any{"notes": []map[string]string{
				{"_id": "n1", "title": "Groceries", "tags": "#home", "content": "Buy milk #urgent"},
			}},
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestCLI_LoginListLogout(t *testing.T) {
	srv := stubBackend(t)
	t.Setenv("CATATANKU_SESSION_FILE", filepath.Join(t.TempDir(), "session.json"))

	feedStdin(t, "secret123\n")
	out, err := runCLI(t, "--api-url", srv.URL, "login", "-u", "alice")
	if err != nil {
		t.Fatalf("login failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Login berhasil sebagai alice!") {
		t.Fatalf("unexpected login output: %q", out)
	}

	out, err = runCLI(t, "--api-url", srv.URL, "whoami")
	if err != nil {
		t.Fatalf("whoami failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "alice") {
		t.Fatalf("unexpected whoami output: %q", out)
	}

	out, err = runCLI(t, "--api-url", srv.URL, "list")
	if err != nil {
		t.Fatalf("list failed: %v\n%s", err, out)
	}
	for _, want := range []string{"[n1] Groceries", "Tags: #home", "Total: 1 catatan"} {
		if !strings.Contains(out, want) {
			t.Fatalf("list output missing %q:\n%s", want, out)
		}
	}

	out, err = runCLI(t, "--api-url", srv.URL, "list", "-q", "tidakada")
	if err != nil {
		t.Fatalf("filtered list failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "No notes found") {
		t.Fatalf("unexpected filtered output: %q", out)
	}

	out, err = runCLI(t, "--api-url", srv.URL, "logout")
	if err != nil {
		t.Fatalf("logout failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Logout berhasil!") {
		t.Fatalf("unexpected logout output: %q", out)
	}

	if _, err = runCLI(t, "--api-url", srv.URL, "whoami"); err == nil {
		t.Fatal("whoami should fail after logout")
	}
}

func TestCLI_LoginRejectedShowsServerMessage(t *testing.T) {
	srv := stubBackend(t)
	t.Setenv("CATATANKU_SESSION_FILE", filepath.Join(t.TempDir(), "session.json"))

	feedStdin(t, "wrongpass\n")
	out, err := runCLI(t, "--api-url", srv.URL, "login", "-u", "alice")
	if err == nil {
		t.Fatalf("expected failure, output: %q", out)
	}
	if !strings.Contains(err.Error(), "Username atau password salah") {
		t.Fatalf("server message lost: %v", err)
	}
}

func TestCLI_LoginValidationMessage(t *testing.T) {
	srv := stubBackend(t)
	t.Setenv("CATATANKU_SESSION_FILE", filepath.Join(t.TempDir(), "session.json"))

	feedStdin(t, "\n")
	_, err := runCLI(t, "--api-url", srv.URL, "login", "-u", "")
	if err == nil {
		t.Fatal("expected validation failure")
	}
	if !strings.Contains(err.Error(), "Username wajib diisi") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestCLI_ListWithoutSession(t *testing.T) {
	srv := stubBackend(t)
	t.Setenv("CATATANKU_SESSION_FILE", filepath.Join(t.TempDir(), "session.json"))

	if _, err := runCLI(t, "--api-url", srv.URL, "list"); err == nil {
		t.Fatal("expected failure without a session")
	}
}
