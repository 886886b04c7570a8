// Package text provides text-editing input: control codes and IME
// composition events.
//
// # Control Codes
//
// A ControlCode is an editing command derived from a key press, such as
// "move left one word" or "paste". Hosts usually produce them through
// Shortcuts, which maps key descriptors and modifiers using the platform's
// command modifier (Ctrl, or Meta on macOS):
//
//	s := text.Shortcuts{Command: key.ModMeta}
//	code, ok := s.ControlCodeFor(desc, key.ModMeta|key.ModShift)
//
// IsEditInput reports whether a code changes the text rather than only the
// selection, so read-only fields can ignore it.
//
// # IME
//
// ImeEvent carries either preedit (in-progress composition, with an optional
// cursor span given in byte offsets) or committed text. SnapCursor keeps a
// preedit span inside the text and on grapheme cluster boundaries, and
// NormalizeCommit brings committed text into NFC.
package text
