package record

import "errors"

// Sentinel errors for the record package.
var (
	// ErrUnsupportedVersion is returned for recordings written by a newer
	// format.
	ErrUnsupportedVersion = errors.New("unsupported recording version")

	// ErrMissingEvent is returned for entries whose kind needs a payload
	// but has none.
	ErrMissingEvent = errors.New("entry has no event payload")
)
