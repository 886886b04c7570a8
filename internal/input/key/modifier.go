package key

import (
	"fmt"
	"strings"
)

// Modifier is the set of modifier keys held while a key event was produced.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModShift indicates the Shift key.
	ModShift Modifier = 1 << (iota - 1)

	// ModCtrl indicates the Control key.
	ModCtrl

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt

	// ModMeta indicates the Meta key (Cmd on macOS, Win on Windows).
	ModMeta
)

// Has returns true if m contains any bit of mod.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// With returns m with mod added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns m with mod removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// IsEmpty returns true if no modifiers are set.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// Only returns true if m is exactly mod.
func (m Modifier) Only(mod Modifier) bool {
	return m == mod
}

var modifierOrder = []struct {
	mod  Modifier
	name string
	code KeyCode
}{
	{ModCtrl, "Ctrl", CodeControl},
	{ModAlt, "Alt", CodeAlt},
	{ModShift, "Shift", CodeShift},
	{ModMeta, "Meta", CodeCommand},
}

// String returns a representation like "Ctrl+Shift". ModNone renders as "".
func (m Modifier) String() string {
	var parts []string
	for _, o := range modifierOrder {
		if m.Has(o.mod) {
			parts = append(parts, o.name)
		}
	}
	return strings.Join(parts, "+")
}

// KeyCodes returns the legacy key codes of the held modifiers, so a host
// that only reports modifier state can still mark SHIFT/CONTROL/ALT down.
func (m Modifier) KeyCodes() []KeyCode {
	var codes []KeyCode
	for _, o := range modifierOrder {
		if m.Has(o.mod) {
			codes = append(codes, o.code)
		}
	}
	return codes
}

// ModifierForKeyCode returns the modifier bit a modifier key code toggles.
func ModifierForKeyCode(c KeyCode) (Modifier, bool) {
	for _, o := range modifierOrder {
		if o.code == c {
			return o.mod, true
		}
	}
	return ModNone, false
}

var modifierNameMap = map[string]Modifier{
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"alt":     ModAlt,
	"option":  ModAlt,
	"opt":     ModAlt,
	"shift":   ModShift,
	"meta":    ModMeta,
	"cmd":     ModMeta,
	"command": ModMeta,
	"super":   ModMeta,
	"win":     ModMeta,
}

// ParseModifiers parses "Ctrl+Shift" style strings (case-insensitive).
// An empty string yields ModNone.
func ParseModifiers(s string) (Modifier, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ModNone, nil
	}
	var result Modifier
	for _, part := range strings.Split(strings.ToLower(s), "+") {
		part = strings.TrimSpace(part)
		mod, ok := modifierNameMap[part]
		if !ok {
			return ModNone, fmt.Errorf("%w: modifier %q", ErrUnknownKeyName, part)
		}
		result = result.With(mod)
	}
	return result, nil
}

// MarshalText implements encoding.TextMarshaler.
func (m Modifier) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Modifier) UnmarshalText(text []byte) error {
	parsed, err := ParseModifiers(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
