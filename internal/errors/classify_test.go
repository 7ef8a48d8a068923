package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/muhzarfan/catatanku/internal/types"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want Category
	}{
		{"connection", &types.ConnectionError{Op: "list notes", Err: errors.New("refused")}, Recoverable},
		{"server 500", &types.APIError{Op: "list notes", StatusCode: 500}, Recoverable},
		{"timeout 408", &types.APIError{Op: "list notes", StatusCode: 408}, Recoverable},
		{"throttle 429", &types.APIError{Op: "list notes", StatusCode: 429}, Recoverable},
		{"bad request 400", &types.APIError{Op: "create note", StatusCode: 400}, Irrecoverable},
		{"rejected 200", &types.APIError{Op: "create note", StatusCode: 200}, Irrecoverable},
		{"session expired", types.ErrSessionExpired, Irrecoverable},
		{"wrapped connection", fmt.Errorf("outer: %w", &types.ConnectionError{Op: "x", Err: errors.New("y")}), Recoverable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.err); got != tc.want {
				t.Fatalf("Classify(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}

func TestReason(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		want string
	}{
		{nil, "none"},
		{types.ErrSessionExpired, "session_expired"},
		{&types.ConnectionError{Op: "x", Err: errors.New("y")}, "connection"},
		{types.FieldErrors{"password": "too short"}, "validation"},
		{&types.APIError{Op: "x", Message: "no"}, "server"},
		{errors.New("mystery"), "internal"},
	}
	for _, tc := range cases {
		if got := Reason(tc.err); got != tc.want {
			t.Fatalf("Reason(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}
