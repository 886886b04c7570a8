package text

import "errors"

// Errors for text input parsing.
var (
	// ErrUnknownControlCode is returned when a control code name is not recognized.
	ErrUnknownControlCode = errors.New("unknown control code")

	// ErrUnknownImeKind is returned when an IME event kind is not recognized.
	ErrUnknownImeKind = errors.New("unknown ime event kind")
)
