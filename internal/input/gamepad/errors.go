package gamepad

import (
	"errors"
	"fmt"
)

// ErrUnknownButton is matched by every button parse failure.
var ErrUnknownButton = errors.New("unknown gamepad button")

// ParseError reports a string that names no gamepad button.
type ParseError struct {
	Input string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s %q", ErrUnknownButton, e.Input)
}

// Unwrap returns ErrUnknownButton.
func (e *ParseError) Unwrap() error {
	return ErrUnknownButton
}
