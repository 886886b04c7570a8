package dispatch

import "errors"

// Sentinel errors for the dispatch package.
var (
	// ErrUnknownNode is returned when a handle does not name a live node.
	ErrUnknownNode = errors.New("unknown node")

	// ErrRemoveRoot is returned when removing the root of a tree.
	ErrRemoveRoot = errors.New("cannot remove root node")
)
