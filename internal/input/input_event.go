package input

import (
	"fmt"

	"github.com/dshills/clipevent/internal/input/key"
	"github.com/dshills/clipevent/internal/input/mouse"
	"github.com/dshills/clipevent/internal/input/text"
)

// InputEvent is a processed input event, as delivered to the player.
// Gamepad events have become key events and mouse presses carry a click
// index. The set of implementations is closed.
type InputEvent interface {
	isInputEvent()
}

// KeyDownInput is a key press resolved to a legacy key code. Char is set
// when the key produces a character.
type KeyDownInput struct {
	KeyCode   key.KeyCode
	Char      rune
	HasChar   bool
	Modifiers key.Modifier
}

// KeyUpInput is a key release resolved to a legacy key code.
type KeyUpInput struct {
	KeyCode   key.KeyCode
	Char      rune
	HasChar   bool
	Modifiers key.Modifier
}

// MouseMoveInput is a pointer move.
type MouseMoveInput struct {
	X, Y float64
}

// MouseDownInput is a button press with its click index.
type MouseDownInput struct {
	X, Y   float64
	Button mouse.Button
	Index  int
}

// MouseUpInput is a button release.
type MouseUpInput struct {
	X, Y   float64
	Button mouse.Button
}

// MouseLeaveInput reports that the pointer left the player.
type MouseLeaveInput struct{}

// MouseWheelInput is wheel movement.
type MouseWheelInput struct {
	Delta mouse.WheelDelta
}

// TextInputInput is a typed character.
type TextInputInput struct {
	Codepoint rune
}

// TextControlInput is a text editing command.
type TextControlInput struct {
	Code text.ControlCode
}

// ImeInput is an input method composition event.
type ImeInput struct {
	Event text.ImeEvent
}

// FocusGainedInput reports that the player gained focus.
type FocusGainedInput struct{}

// FocusLostInput reports that the player lost focus.
type FocusLostInput struct{}

func (KeyDownInput) isInputEvent()     {}
func (KeyUpInput) isInputEvent()       {}
func (MouseMoveInput) isInputEvent()   {}
func (MouseDownInput) isInputEvent()   {}
func (MouseUpInput) isInputEvent()     {}
func (MouseLeaveInput) isInputEvent()  {}
func (MouseWheelInput) isInputEvent()  {}
func (TextInputInput) isInputEvent()   {}
func (TextControlInput) isInputEvent() {}
func (ImeInput) isInputEvent()         {}
func (FocusGainedInput) isInputEvent() {}
func (FocusLostInput) isInputEvent()   {}

// DescribeInput renders an input event for logs.
func DescribeInput(ev InputEvent) string {
	switch e := ev.(type) {
	case KeyDownInput:
		return fmt.Sprintf("key_down %s", e.KeyCode)
	case KeyUpInput:
		return fmt.Sprintf("key_up %s", e.KeyCode)
	case MouseMoveInput:
		return fmt.Sprintf("mouse_move (%g, %g)", e.X, e.Y)
	case MouseDownInput:
		return fmt.Sprintf("mouse_down %s (%g, %g) %s", e.Button, e.X, e.Y, mouse.ClickName(e.Index))
	case MouseUpInput:
		return fmt.Sprintf("mouse_up %s (%g, %g)", e.Button, e.X, e.Y)
	case MouseLeaveInput:
		return "mouse_leave"
	case MouseWheelInput:
		return fmt.Sprintf("mouse_wheel %s", e.Delta)
	case TextInputInput:
		return fmt.Sprintf("text_input %q", e.Codepoint)
	case TextControlInput:
		return fmt.Sprintf("text_control %s", e.Code)
	case ImeInput:
		return fmt.Sprintf("ime %s", e.Event)
	case FocusGainedInput:
		return "focus_gained"
	case FocusLostInput:
		return "focus_lost"
	}
	return "<nil>"
}

// ButtonKeyCodeFor returns the key-press code for an input event. Text
// input of a printable ASCII character (32 through 126) maps to the code
// with the same value; a key press maps through
// key.ButtonKeyCodeFromKeyCode. Every other event has no code.
func ButtonKeyCodeFor(ev InputEvent) (key.ButtonKeyCode, bool) {
	switch e := ev.(type) {
	case TextInputInput:
		if e.Codepoint >= key.ButtonPrintableMin && e.Codepoint <= key.ButtonPrintableMax {
			return key.ButtonKeyCodeFromUint8(uint8(e.Codepoint))
		}
	case KeyDownInput:
		return key.ButtonKeyCodeFromKeyCode(e.KeyCode)
	}
	return key.ButtonUnknown, false
}
