package key

import "fmt"

// NamedKey is a logical key that has a name rather than a character.
// Names follow the W3C UI Events KeyboardEvent key values.
type NamedKey uint8

// Named keys.
const (
	NamedAlt NamedKey = iota
	NamedAltGraph
	NamedCapsLock
	NamedControl
	NamedFn
	NamedFnLock
	NamedSuper
	NamedNumLock
	NamedScrollLock
	NamedShift
	NamedSymbol
	NamedSymbolLock
	NamedEnter
	NamedTab
	NamedArrowDown
	NamedArrowLeft
	NamedArrowRight
	NamedArrowUp
	NamedEnd
	NamedHome
	NamedPageDown
	NamedPageUp
	NamedBackspace
	NamedClear
	NamedCopy
	NamedCrSel
	NamedCut
	NamedDelete
	NamedEraseEof
	NamedExSel
	NamedInsert
	NamedPaste
	NamedRedo
	NamedUndo
	NamedContextMenu
	NamedEscape
	NamedPause
	NamedPlay
	NamedSelect
	NamedZoomIn
	NamedZoomOut
	NamedPrintScreen
	NamedF1
	NamedF2
	NamedF3
	NamedF4
	NamedF5
	NamedF6
	NamedF7
	NamedF8
	NamedF9
	NamedF10
	NamedF11
	NamedF12
	NamedF13
	NamedF14
	NamedF15
	NamedF16
	NamedF17
	NamedF18
	NamedF19
	NamedF20
	NamedF21
	NamedF22
	NamedF23
	NamedF24
	NamedF25
	NamedF26
	NamedF27
	NamedF28
	NamedF29
	NamedF30
	NamedF31
	NamedF32
	NamedF33
	NamedF34
	NamedF35
)

const namedKeyCount = NamedF35 + 1

var namedKeyNames = [namedKeyCount]string{
	NamedAlt:         "Alt",
	NamedAltGraph:    "AltGraph",
	NamedCapsLock:    "CapsLock",
	NamedControl:     "Control",
	NamedFn:          "Fn",
	NamedFnLock:      "FnLock",
	NamedSuper:       "Super",
	NamedNumLock:     "NumLock",
	NamedScrollLock:  "ScrollLock",
	NamedShift:       "Shift",
	NamedSymbol:      "Symbol",
	NamedSymbolLock:  "SymbolLock",
	NamedEnter:       "Enter",
	NamedTab:         "Tab",
	NamedArrowDown:   "ArrowDown",
	NamedArrowLeft:   "ArrowLeft",
	NamedArrowRight:  "ArrowRight",
	NamedArrowUp:     "ArrowUp",
	NamedEnd:         "End",
	NamedHome:        "Home",
	NamedPageDown:    "PageDown",
	NamedPageUp:      "PageUp",
	NamedBackspace:   "Backspace",
	NamedClear:       "Clear",
	NamedCopy:        "Copy",
	NamedCrSel:       "CrSel",
	NamedCut:         "Cut",
	NamedDelete:      "Delete",
	NamedEraseEof:    "EraseEof",
	NamedExSel:       "ExSel",
	NamedInsert:      "Insert",
	NamedPaste:       "Paste",
	NamedRedo:        "Redo",
	NamedUndo:        "Undo",
	NamedContextMenu: "ContextMenu",
	NamedEscape:      "Escape",
	NamedPause:       "Pause",
	NamedPlay:        "Play",
	NamedSelect:      "Select",
	NamedZoomIn:      "ZoomIn",
	NamedZoomOut:     "ZoomOut",
	NamedPrintScreen: "PrintScreen",
	NamedF1:          "F1",
	NamedF2:          "F2",
	NamedF3:          "F3",
	NamedF4:          "F4",
	NamedF5:          "F5",
	NamedF6:          "F6",
	NamedF7:          "F7",
	NamedF8:          "F8",
	NamedF9:          "F9",
	NamedF10:         "F10",
	NamedF11:         "F11",
	NamedF12:         "F12",
	NamedF13:         "F13",
	NamedF14:         "F14",
	NamedF15:         "F15",
	NamedF16:         "F16",
	NamedF17:         "F17",
	NamedF18:         "F18",
	NamedF19:         "F19",
	NamedF20:         "F20",
	NamedF21:         "F21",
	NamedF22:         "F22",
	NamedF23:         "F23",
	NamedF24:         "F24",
	NamedF25:         "F25",
	NamedF26:         "F26",
	NamedF27:         "F27",
	NamedF28:         "F28",
	NamedF29:         "F29",
	NamedF30:         "F30",
	NamedF31:         "F31",
	NamedF32:         "F32",
	NamedF33:         "F33",
	NamedF34:         "F34",
	NamedF35:         "F35",
}

var namedKeyByName = func() map[string]NamedKey {
	m := make(map[string]NamedKey, len(namedKeyNames))
	for i, name := range namedKeyNames {
		m[name] = NamedKey(i)
	}
	return m
}()

// String returns the W3C key name, e.g. "ArrowLeft".
func (n NamedKey) String() string {
	if n < namedKeyCount {
		return namedKeyNames[n]
	}
	return fmt.Sprintf("NamedKey(%d)", uint8(n))
}

// NamedKeyFromName returns the named key for a W3C key name.
func NamedKeyFromName(name string) (NamedKey, bool) {
	n, ok := namedKeyByName[name]
	return n, ok
}

// Control characters for the named keys that have one.
var namedKeyChars = map[NamedKey]rune{
	NamedBackspace: 0x08,
	NamedTab:       0x09,
	NamedEnter:     0x0D,
	NamedEscape:    0x1B,
	NamedDelete:    0x7F,
}

type logicalKind uint8

const (
	logicalUnknown logicalKind = iota
	logicalCharacter
	logicalNamed
)

// LogicalKey is the meaning of a key press under the active layout: either
// unknown, a character, or a named key. The zero value is unknown.
//
// LogicalKey is comparable; two keys are equal when they are the same kind
// with the same payload.
type LogicalKey struct {
	kind  logicalKind
	char  rune
	named NamedKey
}

// UnknownLogicalKey returns the unknown logical key.
func UnknownLogicalKey() LogicalKey {
	return LogicalKey{}
}

// CharacterKey returns a logical key producing ch.
func CharacterKey(ch rune) LogicalKey {
	return LogicalKey{kind: logicalCharacter, char: ch}
}

// NamedLogicalKey returns a logical key for a named key.
func NamedLogicalKey(n NamedKey) LogicalKey {
	return LogicalKey{kind: logicalNamed, named: n}
}

// IsUnknown returns true for the unknown key.
func (l LogicalKey) IsUnknown() bool {
	return l.kind == logicalUnknown
}

// Named returns the named key, if this is one.
func (l LogicalKey) Named() (NamedKey, bool) {
	if l.kind != logicalNamed {
		return 0, false
	}
	return l.named, true
}

// Character returns the character the key produces. Character keys return
// their character. Backspace, Tab, Enter, Escape and Delete return their
// control characters. Every other key returns false.
func (l LogicalKey) Character() (rune, bool) {
	switch l.kind {
	case logicalCharacter:
		return l.char, true
	case logicalNamed:
		ch, ok := namedKeyChars[l.named]
		return ch, ok
	}
	return 0, false
}

// String renders the key as "Unknown", "Character('a')" or the key name.
func (l LogicalKey) String() string {
	switch l.kind {
	case logicalCharacter:
		return fmt.Sprintf("Character(%q)", l.char)
	case logicalNamed:
		return l.named.String()
	}
	return "Unknown"
}

// ParseLogicalKey parses the text form: a named key name, a single
// character, or "Unknown".
func ParseLogicalKey(s string) (LogicalKey, error) {
	if s == "" || s == "Unknown" {
		return UnknownLogicalKey(), nil
	}
	if n, ok := NamedKeyFromName(s); ok {
		return NamedLogicalKey(n), nil
	}
	if r := []rune(s); len(r) == 1 {
		return CharacterKey(r[0]), nil
	}
	return LogicalKey{}, fmt.Errorf("%w: logical key %q", ErrUnknownKeyName, s)
}

// MarshalText encodes named keys by name and characters as themselves.
func (l LogicalKey) MarshalText() ([]byte, error) {
	switch l.kind {
	case logicalCharacter:
		return []byte(string(l.char)), nil
	case logicalNamed:
		return []byte(l.named.String()), nil
	}
	return []byte("Unknown"), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *LogicalKey) UnmarshalText(text []byte) error {
	parsed, err := ParseLogicalKey(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
