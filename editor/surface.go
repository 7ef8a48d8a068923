// Package editor bridges a user-editable text surface to a single
// serialized-markup string. The surface owns the value while focused; the
// resting copy lives in whatever draft the caller mirrors it into through
// the change callback. There is no semantic document model, only the
// markup string and a selection over it.
package editor

import "strings"

// Command names a formatting primitive. The names mirror the common
// editing-command vocabulary so callers can map toolbar actions directly.
type Command string

const (
	Bold         Command = "bold"
	Italic       Command = "italic"
	Underline    Command = "underline"
	BulletList   Command = "insertUnorderedList"
	NumberedList Command = "insertOrderedList"
)

var inlineTags = map[Command]string{
	Bold:      "b",
	Italic:    "i",
	Underline: "u",
}

var listTags = map[Command]string{
	BulletList:   "ul",
	NumberedList: "ol",
}

// lineBreak separates lines inside the serialized markup.
const lineBreak = "<br>"

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Surface is a live editing surface over a markup value. It is not safe
// for concurrent use; all edits arrive from a single event loop.
type Surface struct {
	value    []rune
	selStart int // rune offset, selStart <= selEnd
	selEnd   int
	focused  bool
	onChange func(markup string)
}

// New returns an empty surface. onChange (may be nil) fires after every
// user edit with the updated markup; programmatic SetValue does not fire it.
func New(onChange func(markup string)) *Surface {
	return &Surface{onChange: onChange}
}

// Value returns the current serialized markup.
func (s *Surface) Value() string { return string(s.value) }

// SetValue replaces the visible content. Setting the value it already
// holds is a no-op so a live cursor is never disturbed by the mirror
// writing back what it just received.
func (s *Surface) SetValue(markup string) {
	if string(s.value) == markup {
		return
	}
	s.value = []rune(markup)
	s.selStart = len(s.value)
	s.selEnd = len(s.value)
}

// Focus marks the surface as the active input target.
func (s *Surface) Focus() { s.focused = true }

// Blur releases focus. The value stays as-is.
func (s *Surface) Blur() { s.focused = false }

// Focused reports whether the surface currently owns the live edit.
func (s *Surface) Focused() bool { return s.focused }

// Select sets the selection in rune offsets, clamping to the value bounds
// and swapping if the ends arrive reversed. Equal offsets are a caret.
func (s *Surface) Select(start, end int) {
	if start > end {
		start, end = end, start
	}
	s.selStart = clamp(start, 0, len(s.value))
	s.selEnd = clamp(end, 0, len(s.value))
}

// Selection returns the current selection in rune offsets.
func (s *Surface) Selection() (start, end int) { return s.selStart, s.selEnd }

// InsertText types text at the current selection, replacing it. Markup
// metacharacters are escaped; typed text can never inject tags.
func (s *Surface) InsertText(text string) {
	escaped := []rune(textEscaper.Replace(text))
	out := make([]rune, 0, len(s.value)+len(escaped))
	out = append(out, s.value[:s.selStart]...)
	out = append(out, escaped...)
	out = append(out, s.value[s.selEnd:]...)
	s.value = out
	s.selStart += len(escaped)
	s.selEnd = s.selStart
	s.emitChange()
}

// NewLine inserts a line break at the caret.
func (s *Surface) NewLine() {
	raw := []rune(lineBreak)
	out := make([]rune, 0, len(s.value)+len(raw))
	out = append(out, s.value[:s.selStart]...)
	out = append(out, raw...)
	out = append(out, s.value[s.selEnd:]...)
	s.value = out
	s.selStart += len(raw)
	s.selEnd = s.selStart
	s.emitChange()
}

// Apply toggles the formatting command at the current selection and
// re-emits the updated markup. Unsupported commands are a no-op; focus is
// never taken from the surface.
func (s *Surface) Apply(cmd Command) {
	if tag, ok := inlineTags[cmd]; ok {
		if s.toggleInline(tag) {
			s.emitChange()
		}
		return
	}
	if tag, ok := listTags[cmd]; ok {
		s.toggleList(tag)
		s.emitChange()
		return
	}
	// Unknown formatting primitive: ignore.
}

func (s *Surface) emitChange() {
	if s.onChange != nil {
		s.onChange(string(s.value))
	}
}

// toggleInline wraps the selection in <tag>..</tag>, or removes the pair
// when the selection is already wrapped (either just inside or just
// outside the tags). It reports whether the value changed; a caret with
// no selection has nothing to format.
func (s *Surface) toggleInline(tag string) bool {
	if s.selStart == s.selEnd {
		return false
	}
	open, closeTag := []rune("<"+tag+">"), []rune("</"+tag+">")
	seg := s.value[s.selStart:s.selEnd]

	// Selection includes the tag pair itself.
	if len(seg) >= len(open)+len(closeTag) &&
		string(seg[:len(open)]) == string(open) &&
		string(seg[len(seg)-len(closeTag):]) == string(closeTag) {
		inner := seg[len(open) : len(seg)-len(closeTag)]
		s.splice(s.selStart, s.selEnd, inner)
		s.selEnd = s.selStart + len(inner)
		return true
	}

	// Selection sits just inside an existing tag pair.
	if s.selStart >= len(open) && s.selEnd+len(closeTag) <= len(s.value) &&
		string(s.value[s.selStart-len(open):s.selStart]) == string(open) &&
		string(s.value[s.selEnd:s.selEnd+len(closeTag)]) == string(closeTag) {
		inner := append([]rune{}, seg...)
		s.splice(s.selStart-len(open), s.selEnd+len(closeTag), inner)
		s.selStart -= len(open)
		s.selEnd = s.selStart + len(inner)
		return true
	}

	wrapped := make([]rune, 0, len(open)+len(seg)+len(closeTag))
	wrapped = append(wrapped, open...)
	wrapped = append(wrapped, seg...)
	wrapped = append(wrapped, closeTag...)
	s.splice(s.selStart, s.selEnd, wrapped)
	s.selStart += len(open)
	s.selEnd = s.selStart + len(seg)
	return true
}

// toggleList converts the selected lines into a <ul>/<ol> block, or a list
// block back into <br>-separated lines. A caret expands to the current line.
func (s *Surface) toggleList(tag string) {
	start, end := s.selStart, s.selEnd
	if start == end {
		start, end = s.lineBounds(start)
	}
	seg := string(s.value[start:end])

	if inner, ok := stripListBlock(seg, "ul"); ok {
		s.replaceBlock(start, end, joinItems(inner))
		return
	}
	if inner, ok := stripListBlock(seg, "ol"); ok {
		s.replaceBlock(start, end, joinItems(inner))
		return
	}

	var b strings.Builder
	b.WriteString("<" + tag + ">")
	for _, line := range strings.Split(seg, lineBreak) {
		b.WriteString("<li>" + line + "</li>")
	}
	b.WriteString("</" + tag + ">")
	s.replaceBlock(start, end, b.String())
}

// replaceBlock swaps [start,end) for block and selects the result so the
// next toggle sees the whole block.
func (s *Surface) replaceBlock(start, end int, block string) {
	repl := []rune(block)
	s.splice(start, end, repl)
	s.selStart = start
	s.selEnd = start + len(repl)
}

// splice replaces value[start:end) with repl.
func (s *Surface) splice(start, end int, repl []rune) {
	out := make([]rune, 0, len(s.value)-(end-start)+len(repl))
	out = append(out, s.value[:start]...)
	out = append(out, repl...)
	out = append(out, s.value[end:]...)
	s.value = out
}

// lineBounds returns the bounds of the line containing pos, delimited by
// line breaks or the value edges.
func (s *Surface) lineBounds(pos int) (int, int) {
	text := string(s.value)
	prefix := text[:runeIndexToByte(text, pos)]
	start := 0
	if i := strings.LastIndex(prefix, lineBreak); i >= 0 {
		start = len([]rune(prefix[:i+len(lineBreak)]))
	}
	rest := text[runeIndexToByte(text, pos):]
	end := len(s.value)
	if i := strings.Index(rest, lineBreak); i >= 0 {
		end = pos + len([]rune(rest[:i]))
	}
	return start, end
}

// stripListBlock returns the <li> items of seg when seg is exactly one
// <tag>..</tag> list block.
func stripListBlock(seg, tag string) ([]string, bool) {
	open, closeTag := "<"+tag+">", "</"+tag+">"
	if !strings.HasPrefix(seg, open) || !strings.HasSuffix(seg, closeTag) {
		return nil, false
	}
	body := seg[len(open) : len(seg)-len(closeTag)]
	var items []string
	for body != "" {
		if !strings.HasPrefix(body, "<li>") {
			return nil, false
		}
		rest := body[len("<li>"):]
		i := strings.Index(rest, "</li>")
		if i < 0 {
			return nil, false
		}
		items = append(items, rest[:i])
		body = rest[i+len("</li>"):]
	}
	return items, true
}

func joinItems(items []string) string {
	return strings.Join(items, lineBreak)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// runeIndexToByte converts a rune offset into a byte offset within text.
func runeIndexToByte(text string, runeIdx int) int {
	count := 0
	for i := range text {
		if count == runeIdx {
			return i
		}
		count++
	}
	return len(text)
}
