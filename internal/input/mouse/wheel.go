package mouse

import (
	"fmt"
	"math"
)

// WheelScale is the number of pixels in one line of wheel movement.
const WheelScale = 100.0

// WheelUnit is the unit a WheelDelta was reported in.
type WheelUnit uint8

// Wheel units.
const (
	UnitLines WheelUnit = iota
	UnitPixels
)

// String returns the unit name.
func (u WheelUnit) String() string {
	if u == UnitPixels {
		return "pixels"
	}
	return "lines"
}

// WheelDelta is the amount a mouse wheel moved. Positive values scroll up.
//
// WheelDelta values should be compared with Equal rather than ==, which
// distinguishes units and does not treat NaN as equal.
type WheelDelta struct {
	Unit  WheelUnit `yaml:"unit"`
	Value float64   `yaml:"value"`
}

// Lines creates a delta measured in lines.
func Lines(n float64) WheelDelta {
	return WheelDelta{Unit: UnitLines, Value: n}
}

// Pixels creates a delta measured in pixels.
func Pixels(n float64) WheelDelta {
	return WheelDelta{Unit: UnitPixels, Value: n}
}

// Lines returns the delta in lines. Pixel deltas are divided by WheelScale.
func (d WheelDelta) Lines() float64 {
	if d.Unit == UnitPixels {
		return d.Value / WheelScale
	}
	return d.Value
}

// Pixels returns the delta in pixels.
func (d WheelDelta) Pixels() float64 {
	if d.Unit == UnitPixels {
		return d.Value
	}
	return d.Value * WheelScale
}

// Equal reports whether two deltas describe the same movement. Deltas in
// different units are compared in lines. Two NaN deltas are equal
// regardless of unit; NaN never equals a number.
func (d WheelDelta) Equal(other WheelDelta) bool {
	a, b := d.Value, other.Value
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	if d.Unit == other.Unit {
		return a == b
	}
	return d.Lines() == other.Lines()
}

// IsZero reports whether the wheel did not move.
func (d WheelDelta) IsZero() bool {
	return d.Value == 0
}

// String renders the delta, e.g. "3 lines" or "-120 pixels".
func (d WheelDelta) String() string {
	return fmt.Sprintf("%g %s", d.Value, d.Unit)
}

// MarshalText implements encoding.TextMarshaler.
func (u WheelUnit) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *WheelUnit) UnmarshalText(text []byte) error {
	switch string(text) {
	case "lines":
		*u = UnitLines
	case "pixels":
		*u = UnitPixels
	default:
		return fmt.Errorf("unknown wheel unit %q", string(text))
	}
	return nil
}
