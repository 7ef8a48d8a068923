package tags

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muhzarfan/catatanku/internal/types"
)

func TestExtract(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty", "", []string{}},
		{"no tags", "just some words", []string{}},
		{"single", "#home", []string{"#home"}},
		{"order preserved", "#home then #urgent", []string{"#home", "#urgent"}},
		{"duplicates kept", "#a #b #a", []string{"#a", "#b", "#a"}},
		{"bare hash skipped", "# #ok", []string{"#ok"}},
		{"hash before symbol skipped", "#! #?x", []string{}},
		{"digits and underscore", "#tag_1 #2nd", []string{"#tag_1", "#2nd"}},
		{"extended latin", "#café #über #señal", []string{"#café", "#über", "#señal"}},
		{"stops at non-word", "#home,#work.", []string{"#home", "#work"}},
		{"mid-word", "see#notes", []string{"#notes"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Extract(tc.raw))
		})
	}
}

func TestExtract_AlwaysPrefixed(t *testing.T) {
	t.Parallel()

	raws := []string{"#a b #c", "## #x#y", "tail#", "#ç mixed ### #_"}
	for _, raw := range raws {
		for _, tag := range Extract(raw) {
			require.True(t, strings.HasPrefix(tag, "#"), "tag %q from %q", tag, raw)
		}
	}
}

func TestExtract_Idempotent(t *testing.T) {
	t.Parallel()

	raws := []string{"", "#home #urgent", "x #a,#b y", "#dup #dup"}
	for _, raw := range raws {
		once := Extract(raw)
		again := Extract(strings.Join(once, " "))
		assert.Equal(t, once, again, "re-extracting %q", raw)
	}
}

func sampleNotes() []types.Note {
	return []types.Note{
		{ID: "1", Title: "Groceries", Tags: "#home #urgent", Content: "<b>milk</b>"},
		{ID: "2", Title: "Work log", Tags: "#work", Content: "standup notes"},
		{ID: "3", Title: "Ideas", Tags: "", Content: "A Grocery app"},
	}
}

func TestFilter_BlankQueryIsIdentity(t *testing.T) {
	t.Parallel()

	notes := sampleNotes()
	got := Filter(notes, "")
	require.Len(t, got, len(notes))
	assert.Equal(t, notes, got)
}

func TestFilter_CaseInsensitiveAcrossFields(t *testing.T) {
	t.Parallel()

	notes := sampleNotes()

	byTitle := Filter(notes, "groceries")
	require.Len(t, byTitle, 1)
	assert.Equal(t, "1", byTitle[0].ID)

	byContent := Filter(notes, "MILK")
	require.Len(t, byContent, 1)
	assert.Equal(t, "1", byContent[0].ID)

	byTags := Filter(notes, "#work")
	require.Len(t, byTags, 1)
	assert.Equal(t, "2", byTags[0].ID)
}

func TestFilter_SubsetInInputOrder(t *testing.T) {
	t.Parallel()

	notes := sampleNotes()
	got := Filter(notes, "gro")
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[1].ID)
}

func TestFilter_NoMatch(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Filter(sampleNotes(), "nope"))
}

func TestFilter_Deterministic(t *testing.T) {
	t.Parallel()

	notes := sampleNotes()
	assert.Equal(t, Filter(notes, "work"), Filter(notes, "work"))
}
