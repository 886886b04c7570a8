package script

import (
	"errors"
	"fmt"
)

// Sentinel errors for the script package.
var (
	// ErrClosed is returned when using a closed engine.
	ErrClosed = errors.New("script engine is closed")

	// ErrTimeout is returned when a script runs past its timeout.
	ErrTimeout = errors.New("script timeout")

	// ErrUnknownObject is returned for handles that are not bound.
	ErrUnknownObject = errors.New("object not bound")

	// ErrAlreadyBound is returned when binding a handle twice.
	ErrAlreadyBound = errors.New("object already bound")
)

// HandlerError reports a failing Lua handler.
type HandlerError struct {
	Object string
	Slot   string
	Err    error
}

func (e *HandlerError) Error() string {
	return fmt.Sprintf("%s.%s: %v", e.Object, e.Slot, e.Err)
}

func (e *HandlerError) Unwrap() error {
	return e.Err
}
