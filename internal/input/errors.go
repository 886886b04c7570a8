package input

import "errors"

// Errors for input processing.
var (
	// ErrUnknownEventKind is returned when an event kind name is not recognized.
	ErrUnknownEventKind = errors.New("unknown event kind")
)
