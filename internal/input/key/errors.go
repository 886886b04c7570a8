package key

import "errors"

// Errors for key name parsing.
var (
	// ErrUnknownKeyName is returned when a key name is not recognized.
	ErrUnknownKeyName = errors.New("unknown key name")
)
