package gamepad

import "fmt"

// Button is a gamepad button in the standard layout.
type Button uint8

// Gamepad buttons. The face buttons are named by compass position so the
// layout does not depend on the controller brand.
const (
	South Button = iota
	East
	North
	West
	LeftTrigger
	LeftTrigger2
	RightTrigger
	RightTrigger2
	Select
	Start
	DPadUp
	DPadDown
	DPadLeft
	DPadRight
)

const buttonCount = DPadRight + 1

var buttonNames = [buttonCount]string{
	South:         "south",
	East:          "east",
	North:         "north",
	West:          "west",
	LeftTrigger:   "left-trigger",
	LeftTrigger2:  "left-trigger-2",
	RightTrigger:  "right-trigger",
	RightTrigger2: "right-trigger-2",
	Select:        "select",
	Start:         "start",
	DPadUp:        "dpad-up",
	DPadDown:      "dpad-down",
	DPadLeft:      "dpad-left",
	DPadRight:     "dpad-right",
}

// AllButtons returns every button in declaration order.
func AllButtons() []Button {
	buttons := make([]Button, buttonCount)
	for i := range buttons {
		buttons[i] = Button(i)
	}
	return buttons
}

// String returns the kebab-case button name.
func (b Button) String() string {
	if b < buttonCount {
		return buttonNames[b]
	}
	return fmt.Sprintf("Button(%d)", uint8(b))
}

// IsDPad reports whether the button is on the directional pad.
func (b Button) IsDPad() bool {
	return b >= DPadUp && b <= DPadRight
}

// ParseButton parses a kebab-case button name. Matching is exact; any other
// string returns a *ParseError.
func ParseButton(s string) (Button, error) {
	for i, name := range buttonNames {
		if name == s {
			return Button(i), nil
		}
	}
	return 0, &ParseError{Input: s}
}

// MarshalText implements encoding.TextMarshaler.
func (b Button) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Button) UnmarshalText(text []byte) error {
	parsed, err := ParseButton(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
