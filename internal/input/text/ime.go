package text

import (
	"fmt"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// ImeKind distinguishes preedit from commit events.
type ImeKind uint8

// IME event kinds.
const (
	ImePreedit ImeKind = iota
	ImeCommit
)

// String returns the kind name.
func (k ImeKind) String() string {
	switch k {
	case ImePreedit:
		return "preedit"
	case ImeCommit:
		return "commit"
	default:
		return fmt.Sprintf("ImeKind(%d)", uint8(k))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k ImeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *ImeKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "preedit":
		*k = ImePreedit
	case "commit":
		*k = ImeCommit
	default:
		return fmt.Errorf("%w: %q", ErrUnknownImeKind, string(text))
	}
	return nil
}

// Span is a byte range [Start, End) within preedit text.
type Span struct {
	Start int `yaml:"start"`
	End   int `yaml:"end"`
}

// Len returns the span length in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// ImeEvent is an input method composition event.
//
// A preedit event replaces the in-progress composition; an empty preedit
// text clears it. Cursor is nil when the input method hides the cursor.
// A commit event inserts finished text and ends the composition.
type ImeEvent struct {
	Kind   ImeKind `yaml:"kind"`
	Text   string  `yaml:"text"`
	Cursor *Span   `yaml:"cursor,omitempty"`
}

// Preedit creates a preedit event.
func Preedit(text string, cursor *Span) ImeEvent {
	return ImeEvent{Kind: ImePreedit, Text: text, Cursor: cursor}
}

// Commit creates a commit event.
func Commit(text string) ImeEvent {
	return ImeEvent{Kind: ImeCommit, Text: text}
}

// IsPreedit reports whether the event is a preedit update.
func (e ImeEvent) IsPreedit() bool {
	return e.Kind == ImePreedit
}

// IsCommit reports whether the event commits text.
func (e ImeEvent) IsCommit() bool {
	return e.Kind == ImeCommit
}

// Equal compares events including the cursor span value.
func (e ImeEvent) Equal(other ImeEvent) bool {
	if e.Kind != other.Kind || e.Text != other.Text {
		return false
	}
	if e.Cursor == nil || other.Cursor == nil {
		return e.Cursor == nil && other.Cursor == nil
	}
	return *e.Cursor == *other.Cursor
}

// String renders the event for logs.
func (e ImeEvent) String() string {
	if e.Kind == ImePreedit && e.Cursor != nil {
		return fmt.Sprintf("preedit(%q, %d..%d)", e.Text, e.Cursor.Start, e.Cursor.End)
	}
	return fmt.Sprintf("%s(%q)", e.Kind, e.Text)
}

// SnapCursor returns the event with its cursor span clamped into the text
// and moved onto grapheme cluster boundaries: the start rounds down and the
// end rounds up, so a span never splits a cluster. Commit events and
// preedits without a cursor are returned unchanged.
func (e ImeEvent) SnapCursor() ImeEvent {
	if e.Kind != ImePreedit || e.Cursor == nil {
		return e
	}
	start, end := e.Cursor.Start, e.Cursor.End
	if start > end {
		start, end = end, start
	}
	start = clamp(start, 0, len(e.Text))
	end = clamp(end, 0, len(e.Text))

	snapped := Span{Start: start, End: end}
	g := uniseg.NewGraphemes(e.Text)
	for g.Next() {
		from, to := g.Positions()
		if from < start && start < to {
			snapped.Start = from
		}
		if from < end && end < to {
			snapped.End = to
		}
	}
	e.Cursor = &snapped
	return e
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

// NormalizeCommit returns the event with committed text in NFC. Input
// methods differ in whether they emit precomposed characters; NFC keeps
// "é" a single code point either way. Preedit events are returned
// unchanged because their cursor offsets refer to the original bytes.
func NormalizeCommit(e ImeEvent) ImeEvent {
	if e.Kind == ImeCommit {
		e.Text = norm.NFC.String(e.Text)
	}
	return e
}
