package key

import (
	"fmt"
	"strings"
)

// KeyCode is a legacy virtual key code.
// Values are fixed by the scripting API and compared by value.
type KeyCode uint32

// Virtual key codes.
const (
	CodeUnknown     KeyCode = 0
	CodeMouseLeft   KeyCode = 1
	CodeMouseRight  KeyCode = 2
	CodeMouseMiddle KeyCode = 4
	CodeBackspace   KeyCode = 8
	CodeTab         KeyCode = 9
	CodeEnter       KeyCode = 13
	CodeCommand     KeyCode = 15
	CodeShift       KeyCode = 16
	CodeControl     KeyCode = 17
	CodeAlt         KeyCode = 18
	CodePause       KeyCode = 19
	CodeCapsLock    KeyCode = 20
	CodeNumpad      KeyCode = 21
	CodeEscape      KeyCode = 27
	CodeSpace       KeyCode = 32
	CodePageUp      KeyCode = 33
	CodePageDown    KeyCode = 34
	CodeEnd         KeyCode = 35
	CodeHome        KeyCode = 36
	CodeLeft        KeyCode = 37
	CodeUp          KeyCode = 38
	CodeRight       KeyCode = 39
	CodeDown        KeyCode = 40
	CodeInsert      KeyCode = 45
	CodeDelete      KeyCode = 46

	CodeNumber0 KeyCode = 48
	CodeNumber1 KeyCode = 49
	CodeNumber2 KeyCode = 50
	CodeNumber3 KeyCode = 51
	CodeNumber4 KeyCode = 52
	CodeNumber5 KeyCode = 53
	CodeNumber6 KeyCode = 54
	CodeNumber7 KeyCode = 55
	CodeNumber8 KeyCode = 56
	CodeNumber9 KeyCode = 57

	CodeA KeyCode = 65
	CodeB KeyCode = 66
	CodeC KeyCode = 67
	CodeD KeyCode = 68
	CodeE KeyCode = 69
	CodeF KeyCode = 70
	CodeG KeyCode = 71
	CodeH KeyCode = 72
	CodeI KeyCode = 73
	CodeJ KeyCode = 74
	CodeK KeyCode = 75
	CodeL KeyCode = 76
	CodeM KeyCode = 77
	CodeN KeyCode = 78
	CodeO KeyCode = 79
	CodeP KeyCode = 80
	CodeQ KeyCode = 81
	CodeR KeyCode = 82
	CodeS KeyCode = 83
	CodeT KeyCode = 84
	CodeU KeyCode = 85
	CodeV KeyCode = 86
	CodeW KeyCode = 87
	CodeX KeyCode = 88
	CodeY KeyCode = 89
	CodeZ KeyCode = 90

	CodeNumpad0        KeyCode = 96
	CodeNumpad1        KeyCode = 97
	CodeNumpad2        KeyCode = 98
	CodeNumpad3        KeyCode = 99
	CodeNumpad4        KeyCode = 100
	CodeNumpad5        KeyCode = 101
	CodeNumpad6        KeyCode = 102
	CodeNumpad7        KeyCode = 103
	CodeNumpad8        KeyCode = 104
	CodeNumpad9        KeyCode = 105
	CodeNumpadMultiply KeyCode = 106
	CodeNumpadAdd      KeyCode = 107
	CodeNumpadEnter    KeyCode = 108
	CodeNumpadSubtract KeyCode = 109
	CodeNumpadDecimal  KeyCode = 110
	CodeNumpadDivide   KeyCode = 111

	CodeF1  KeyCode = 112
	CodeF2  KeyCode = 113
	CodeF3  KeyCode = 114
	CodeF4  KeyCode = 115
	CodeF5  KeyCode = 116
	CodeF6  KeyCode = 117
	CodeF7  KeyCode = 118
	CodeF8  KeyCode = 119
	CodeF9  KeyCode = 120
	CodeF10 KeyCode = 121
	CodeF11 KeyCode = 122
	CodeF12 KeyCode = 123
	CodeF13 KeyCode = 124
	CodeF14 KeyCode = 125
	CodeF15 KeyCode = 126

	// F16 through F24 are undocumented but reported by the reference player.
	CodeF16 KeyCode = 127
	CodeF17 KeyCode = 128
	CodeF18 KeyCode = 129
	CodeF19 KeyCode = 130
	CodeF20 KeyCode = 131
	CodeF21 KeyCode = 132
	CodeF22 KeyCode = 133
	CodeF23 KeyCode = 134
	CodeF24 KeyCode = 135

	CodeNumLock      KeyCode = 144
	CodeScrollLock   KeyCode = 145
	CodeSemicolon    KeyCode = 186
	CodeEqual        KeyCode = 187
	CodeComma        KeyCode = 188
	CodeMinus        KeyCode = 189
	CodePeriod       KeyCode = 190
	CodeSlash        KeyCode = 191
	CodeBackquote    KeyCode = 192
	CodeLeftBracket  KeyCode = 219
	CodeBackslash    KeyCode = 220
	CodeRightBracket KeyCode = 221
	CodeQuote        KeyCode = 222
)

// KeyCodeFromUint32 wraps a raw code. Every number is a valid KeyCode;
// codes without a name are still compared by value.
func KeyCodeFromUint32(code uint32) KeyCode {
	return KeyCode(code)
}

// Value returns the numeric code.
func (c KeyCode) Value() uint32 {
	return uint32(c)
}

// IsMouseButton returns true for the three mouse button codes.
func (c KeyCode) IsMouseButton() bool {
	return c == CodeMouseLeft || c == CodeMouseRight || c == CodeMouseMiddle
}

// IsLetter returns true for A through Z.
func (c KeyCode) IsLetter() bool {
	return c >= CodeA && c <= CodeZ
}

// IsDigit returns true for the number row digits.
func (c KeyCode) IsDigit() bool {
	return c >= CodeNumber0 && c <= CodeNumber9
}

// IsNumpad returns true for keys on the numeric keypad.
func (c KeyCode) IsNumpad() bool {
	return c >= CodeNumpad0 && c <= CodeNumpadDivide
}

// IsFunctionKey returns true for F1 through F24.
func (c KeyCode) IsFunctionKey() bool {
	return c >= CodeF1 && c <= CodeF24
}

var keyCodeNames = map[KeyCode]string{
	CodeUnknown:        "UNKNOWN",
	CodeMouseLeft:      "MOUSE_LEFT",
	CodeMouseRight:     "MOUSE_RIGHT",
	CodeMouseMiddle:    "MOUSE_MIDDLE",
	CodeBackspace:      "BACKSPACE",
	CodeTab:            "TAB",
	CodeEnter:          "ENTER",
	CodeCommand:        "COMMAND",
	CodeShift:          "SHIFT",
	CodeControl:        "CONTROL",
	CodeAlt:            "ALT",
	CodePause:          "PAUSE",
	CodeCapsLock:       "CAPS_LOCK",
	CodeNumpad:         "NUMPAD",
	CodeEscape:         "ESCAPE",
	CodeSpace:          "SPACE",
	CodePageUp:         "PAGE_UP",
	CodePageDown:       "PAGE_DOWN",
	CodeEnd:            "END",
	CodeHome:           "HOME",
	CodeLeft:           "LEFT",
	CodeUp:             "UP",
	CodeRight:          "RIGHT",
	CodeDown:           "DOWN",
	CodeInsert:         "INSERT",
	CodeDelete:         "DELETE",
	CodeNumpadMultiply: "NUMPAD_MULTIPLY",
	CodeNumpadAdd:      "NUMPAD_ADD",
	CodeNumpadEnter:    "NUMPAD_ENTER",
	CodeNumpadSubtract: "NUMPAD_SUBTRACT",
	CodeNumpadDecimal:  "NUMPAD_DECIMAL",
	CodeNumpadDivide:   "NUMPAD_DIVIDE",
	CodeNumLock:        "NUM_LOCK",
	CodeScrollLock:     "SCROLL_LOCK",
	CodeSemicolon:      "SEMICOLON",
	CodeEqual:          "EQUAL",
	CodeComma:          "COMMA",
	CodeMinus:          "MINUS",
	CodePeriod:         "PERIOD",
	CodeSlash:          "SLASH",
	CodeBackquote:      "BACKQUOTE",
	CodeLeftBracket:    "LEFTBRACKET",
	CodeBackslash:      "BACKSLASH",
	CodeRightBracket:   "RIGHTBRACKET",
	CodeQuote:          "QUOTE",
}

// keyCodeByName is the inverse of the names above plus the generated
// ranges (letters, digits, numpad digits, function keys).
var keyCodeByName = func() map[string]KeyCode {
	m := make(map[string]KeyCode, len(keyCodeNames)+80)
	for c, name := range keyCodeNames {
		m[name] = c
	}
	for c := CodeA; c <= CodeZ; c++ {
		m[string(rune('A'+(c-CodeA)))] = c
	}
	for c := CodeNumber0; c <= CodeNumber9; c++ {
		m[fmt.Sprintf("NUMBER_%d", c-CodeNumber0)] = c
	}
	for c := CodeNumpad0; c <= CodeNumpad9; c++ {
		m[fmt.Sprintf("NUMPAD_%d", c-CodeNumpad0)] = c
	}
	for c := CodeF1; c <= CodeF24; c++ {
		m[fmt.Sprintf("F%d", c-CodeF1+1)] = c
	}
	return m
}()

// String returns the constant name used by the scripting API, e.g. "ENTER",
// "A", "NUMBER_1", "F5". Unnamed codes render as KeyCode(n).
func (c KeyCode) String() string {
	switch {
	case c.IsLetter():
		return string(rune('A' + (c - CodeA)))
	case c.IsDigit():
		return fmt.Sprintf("NUMBER_%d", c-CodeNumber0)
	case c >= CodeNumpad0 && c <= CodeNumpad9:
		return fmt.Sprintf("NUMPAD_%d", c-CodeNumpad0)
	case c.IsFunctionKey():
		return fmt.Sprintf("F%d", c-CodeF1+1)
	}
	if name, ok := keyCodeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("KeyCode(%d)", uint32(c))
}

// KeyCodeFromName returns the KeyCode for a constant name (case-insensitive,
// "-" accepted for "_"). Returns false if the name is not recognized.
func KeyCodeFromName(name string) (KeyCode, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, "-", "_")
	c, ok := keyCodeByName[name]
	return c, ok
}

// MarshalText implements encoding.TextMarshaler.
func (c KeyCode) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *KeyCode) UnmarshalText(text []byte) error {
	parsed, ok := KeyCodeFromName(string(text))
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKeyName, string(text))
	}
	*c = parsed
	return nil
}
