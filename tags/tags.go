// Package tags derives display hashtags from a note's raw tags text and
// filters note collections by a search query. Both functions are pure.
package tags

import (
	"regexp"
	"strings"

	"github.com/muhzarfan/catatanku/internal/types"
)

// A tag is '#' followed by word characters, extended Latin letters included.
// Bare '#' and '#' before a non-word character are not tags.
var tagPattern = regexp.MustCompile(`#[0-9A-Za-z_\x{00C0}-\x{017F}]+`)

// Extract returns every tag in raw in order of appearance. Duplicates are
// kept; display reflects raw occurrence. The result is never nil.
func Extract(raw string) []string {
	found := tagPattern.FindAllString(raw, -1)
	if found == nil {
		return []string{}
	}
	return found
}

// Filter returns the notes whose title, content or raw tags text contains
// query, case-insensitively, preserving input order. A blank query returns
// the collection unchanged.
func Filter(notes []types.Note, query string) []types.Note {
	if query == "" {
		return notes
	}
	q := strings.ToLower(query)
	out := make([]types.Note, 0, len(notes))
	for _, n := range notes {
		if strings.Contains(strings.ToLower(n.Title), q) ||
			strings.Contains(strings.ToLower(n.Content), q) ||
			strings.Contains(strings.ToLower(n.Tags), q) {
			out = append(out, n)
		}
	}
	return out
}
