package input

import (
	"fmt"

	"github.com/dshills/clipevent/internal/input/gamepad"
	"github.com/dshills/clipevent/internal/input/key"
	"github.com/dshills/clipevent/internal/input/mouse"
	"github.com/dshills/clipevent/internal/input/text"
)

// EventKind names a PlayerEvent variant.
type EventKind uint8

// Player event kinds.
const (
	KindKeyDown EventKind = iota
	KindKeyUp
	KindMouseMove
	KindMouseUp
	KindMouseDown
	KindMouseLeave
	KindMouseWheel
	KindGamepadButtonDown
	KindGamepadButtonUp
	KindTextInput
	KindTextControl
	KindIme
	KindFocusGained
	KindFocusLost
)

const eventKindCount = KindFocusLost + 1

var eventKindNames = [eventKindCount]string{
	KindKeyDown:           "key_down",
	KindKeyUp:             "key_up",
	KindMouseMove:         "mouse_move",
	KindMouseUp:           "mouse_up",
	KindMouseDown:         "mouse_down",
	KindMouseLeave:        "mouse_leave",
	KindMouseWheel:        "mouse_wheel",
	KindGamepadButtonDown: "gamepad_button_down",
	KindGamepadButtonUp:   "gamepad_button_up",
	KindTextInput:         "text_input",
	KindTextControl:       "text_control",
	KindIme:               "ime",
	KindFocusGained:       "focus_gained",
	KindFocusLost:         "focus_lost",
}

// String returns the snake_case kind name used in recordings.
func (k EventKind) String() string {
	if k < eventKindCount {
		return eventKindNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", uint8(k))
}

// ParseEventKind parses a kind name.
func ParseEventKind(s string) (EventKind, error) {
	for i, name := range eventKindNames {
		if name == s {
			return EventKind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEventKind, s)
}

// MarshalText implements encoding.TextMarshaler.
func (k EventKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *EventKind) UnmarshalText(b []byte) error {
	parsed, err := ParseEventKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// PlayerEvent is an input event reported by a host. The set of
// implementations is closed; see the Kind constants.
type PlayerEvent interface {
	Kind() EventKind
	isPlayerEvent()
}

// KeyDown reports a key press.
type KeyDown struct {
	Key       key.Descriptor
	Modifiers key.Modifier
}

// KeyUp reports a key release.
type KeyUp struct {
	Key       key.Descriptor
	Modifiers key.Modifier
}

// MouseMove reports the pointer position in host logical pixels.
type MouseMove struct {
	X, Y float64
}

// MouseUp reports a button release.
type MouseUp struct {
	X, Y   float64
	Button mouse.Button
}

// MouseDown reports a button press. Index is the click index (0 single,
// 1 double) when the host computed one; nil lets the Manager assign it.
type MouseDown struct {
	X, Y   float64
	Button mouse.Button
	Index  *int
}

// MouseLeave reports that the pointer left the player.
type MouseLeave struct{}

// MouseWheel reports wheel movement.
type MouseWheel struct {
	Delta mouse.WheelDelta
}

// GamepadButtonDown reports a gamepad button press.
type GamepadButtonDown struct {
	Button gamepad.Button
}

// GamepadButtonUp reports a gamepad button release.
type GamepadButtonUp struct {
	Button gamepad.Button
}

// TextInput reports a character typed by the user.
type TextInput struct {
	Codepoint rune
}

// TextControl reports a text editing command.
type TextControl struct {
	Code text.ControlCode
}

// Ime reports an input method composition event.
type Ime struct {
	Event text.ImeEvent
}

// FocusGained reports that the player received keyboard focus.
type FocusGained struct{}

// FocusLost reports that the player lost keyboard focus.
type FocusLost struct{}

func (KeyDown) Kind() EventKind           { return KindKeyDown }
func (KeyUp) Kind() EventKind             { return KindKeyUp }
func (MouseMove) Kind() EventKind         { return KindMouseMove }
func (MouseUp) Kind() EventKind           { return KindMouseUp }
func (MouseDown) Kind() EventKind         { return KindMouseDown }
func (MouseLeave) Kind() EventKind        { return KindMouseLeave }
func (MouseWheel) Kind() EventKind        { return KindMouseWheel }
func (GamepadButtonDown) Kind() EventKind { return KindGamepadButtonDown }
func (GamepadButtonUp) Kind() EventKind   { return KindGamepadButtonUp }
func (TextInput) Kind() EventKind         { return KindTextInput }
func (TextControl) Kind() EventKind       { return KindTextControl }
func (Ime) Kind() EventKind               { return KindIme }
func (FocusGained) Kind() EventKind       { return KindFocusGained }
func (FocusLost) Kind() EventKind         { return KindFocusLost }

func (KeyDown) isPlayerEvent()           {}
func (KeyUp) isPlayerEvent()             {}
func (MouseMove) isPlayerEvent()         {}
func (MouseUp) isPlayerEvent()           {}
func (MouseDown) isPlayerEvent()         {}
func (MouseLeave) isPlayerEvent()        {}
func (MouseWheel) isPlayerEvent()        {}
func (GamepadButtonDown) isPlayerEvent() {}
func (GamepadButtonUp) isPlayerEvent()   {}
func (TextInput) isPlayerEvent()         {}
func (TextControl) isPlayerEvent()       {}
func (Ime) isPlayerEvent()               {}
func (FocusGained) isPlayerEvent()       {}
func (FocusLost) isPlayerEvent()         {}

// ClickIndex returns a pointer to i, for MouseDown.Index.
func ClickIndex(i int) *int {
	return &i
}

// Describe renders a player event for logs.
func Describe(ev PlayerEvent) string {
	switch e := ev.(type) {
	case KeyDown:
		return fmt.Sprintf("key_down %s %s", e.Key, e.Modifiers)
	case KeyUp:
		return fmt.Sprintf("key_up %s %s", e.Key, e.Modifiers)
	case MouseMove:
		return fmt.Sprintf("mouse_move (%g, %g)", e.X, e.Y)
	case MouseUp:
		return fmt.Sprintf("mouse_up %s (%g, %g)", e.Button, e.X, e.Y)
	case MouseDown:
		if e.Index != nil {
			return fmt.Sprintf("mouse_down %s (%g, %g) #%d", e.Button, e.X, e.Y, *e.Index)
		}
		return fmt.Sprintf("mouse_down %s (%g, %g)", e.Button, e.X, e.Y)
	case MouseWheel:
		return fmt.Sprintf("mouse_wheel %s", e.Delta)
	case GamepadButtonDown:
		return fmt.Sprintf("gamepad_button_down %s", e.Button)
	case GamepadButtonUp:
		return fmt.Sprintf("gamepad_button_up %s", e.Button)
	case TextInput:
		return fmt.Sprintf("text_input %q", e.Codepoint)
	case TextControl:
		return fmt.Sprintf("text_control %s", e.Code)
	case Ime:
		return fmt.Sprintf("ime %s", e.Event)
	case nil:
		return "<nil>"
	}
	return ev.Kind().String()
}
