package clip

import "errors"

// Errors for clip event parsing.
var (
	// ErrUnknownKind is returned when a kind name is not recognized.
	ErrUnknownKind = errors.New("unknown clip event kind")
)
