package app

import (
	"errors"
	"fmt"
)

// Player errors.
var (
	// ErrClosed indicates the player has been shut down.
	ErrClosed = errors.New("player closed")

	// ErrNotRecording indicates recording was not enabled.
	ErrNotRecording = errors.New("player not recording")

	// ErrDuplicateObject indicates two scene objects share a name.
	ErrDuplicateObject = errors.New("duplicate object name")
)

// InitError reports which component failed to start.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string {
	return "init " + e.Component + ": " + e.Err.Error()
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// SceneError reports an invalid scene object.
type SceneError struct {
	Object string
	Err    error
}

func (e *SceneError) Error() string {
	return fmt.Sprintf("scene object %q: %v", e.Object, e.Err)
}

func (e *SceneError) Unwrap() error {
	return e.Err
}
