package mouse

import (
	"fmt"
	"strings"

	"github.com/dshills/clipevent/internal/input/key"
)

// Button represents a mouse button.
type Button uint8

const (
	// ButtonUnknown is a button the player does not distinguish.
	ButtonUnknown Button = iota
	// ButtonLeft is the primary button.
	ButtonLeft
	// ButtonRight is the secondary button.
	ButtonRight
	// ButtonMiddle is the middle button (wheel click).
	ButtonMiddle
)

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonMiddle:
		return "middle"
	default:
		return "unknown"
	}
}

// KeyCode returns the legacy key code the button is reported as.
func (b Button) KeyCode() key.KeyCode {
	switch b {
	case ButtonLeft:
		return key.CodeMouseLeft
	case ButtonRight:
		return key.CodeMouseRight
	case ButtonMiddle:
		return key.CodeMouseMiddle
	default:
		return key.CodeUnknown
	}
}

// ButtonFromKeyCode is the inverse of KeyCode.
func ButtonFromKeyCode(c key.KeyCode) (Button, bool) {
	switch c {
	case key.CodeMouseLeft:
		return ButtonLeft, true
	case key.CodeMouseRight:
		return ButtonRight, true
	case key.CodeMouseMiddle:
		return ButtonMiddle, true
	default:
		return ButtonUnknown, false
	}
}

// ParseButton parses a button name as produced by String.
func ParseButton(s string) (Button, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return ButtonLeft, nil
	case "right":
		return ButtonRight, nil
	case "middle":
		return ButtonMiddle, nil
	case "unknown", "":
		return ButtonUnknown, nil
	}
	return ButtonUnknown, fmt.Errorf("unknown mouse button %q", s)
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

// Position is a point in host logical pixels.
type Position struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Distance returns the Manhattan distance (|dx| + |dy|) between two positions.
func (p Position) Distance(other Position) float64 {
	dx := p.X - other.X
	if dx < 0 {
		dx = -dx
	}
	dy := p.Y - other.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}
