package gamepad

import (
	"fmt"

	"github.com/dshills/clipevent/internal/input/key"
)

// Mapping translates gamepad buttons into key codes.
type Mapping map[Button]key.KeyCode

// DefaultMapping maps the directional pad to the arrow keys, the south and
// east buttons to Space and Escape, and Start to Enter.
func DefaultMapping() Mapping {
	return Mapping{
		DPadUp:    key.CodeUp,
		DPadDown:  key.CodeDown,
		DPadLeft:  key.CodeLeft,
		DPadRight: key.CodeRight,
		South:     key.CodeSpace,
		East:      key.CodeEscape,
		Start:     key.CodeEnter,
	}
}

// KeyCode returns the key a button is mapped to.
func (m Mapping) KeyCode(b Button) (key.KeyCode, bool) {
	c, ok := m[b]
	return c, ok
}

// Clone returns a copy of the mapping.
func (m Mapping) Clone() Mapping {
	out := make(Mapping, len(m))
	for b, c := range m {
		out[b] = c
	}
	return out
}

// ParseMapping builds a mapping from button names to key code names, the
// shape used by the [gamepad.mapping] configuration table.
func ParseMapping(raw map[string]string) (Mapping, error) {
	m := make(Mapping, len(raw))
	for name, keyName := range raw {
		b, err := ParseButton(name)
		if err != nil {
			return nil, err
		}
		c, ok := key.KeyCodeFromName(keyName)
		if !ok {
			return nil, fmt.Errorf("gamepad button %s: %w: %q", name, key.ErrUnknownKeyName, keyName)
		}
		m[b] = c
	}
	return m, nil
}
