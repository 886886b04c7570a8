package key

import "fmt"

// Location distinguishes keys that appear more than once on a keyboard.
type Location uint8

// Key locations.
const (
	LocationStandard Location = iota
	LocationLeft
	LocationRight
	LocationNumpad
)

var locationNames = [...]string{
	LocationStandard: "Standard",
	LocationLeft:     "Left",
	LocationRight:    "Right",
	LocationNumpad:   "Numpad",
}

// String returns the location name.
func (l Location) String() string {
	if int(l) < len(locationNames) {
		return locationNames[l]
	}
	return fmt.Sprintf("Location(%d)", uint8(l))
}

// LocationFromName parses a location name.
func LocationFromName(name string) (Location, bool) {
	for i, n := range locationNames {
		if n == name {
			return Location(i), true
		}
	}
	return LocationStandard, false
}

// MarshalText implements encoding.TextMarshaler.
func (l Location) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Location) UnmarshalText(text []byte) error {
	parsed, ok := LocationFromName(string(text))
	if !ok {
		return fmt.Errorf("%w: location %q", ErrUnknownKeyName, string(text))
	}
	*l = parsed
	return nil
}

// Descriptor describes one key press. Two descriptors are equal when their
// physical key, logical key and location are all equal.
type Descriptor struct {
	Physical PhysicalKey `yaml:"physical"`
	Logical  LogicalKey  `yaml:"logical"`
	Location Location    `yaml:"location"`
}

// NewDescriptor creates a descriptor.
func NewDescriptor(physical PhysicalKey, logical LogicalKey, location Location) Descriptor {
	return Descriptor{Physical: physical, Logical: logical, Location: location}
}

// Character returns the character produced by the key, if any.
func (d Descriptor) Character() (rune, bool) {
	return d.Logical.Character()
}

// String renders the descriptor for logs.
func (d Descriptor) String() string {
	return fmt.Sprintf("%s/%s/%s", d.Physical, d.Logical, d.Location)
}

// KeyCode resolves the legacy key code scripts see for this press.
//
// The logical key wins so that layouts are respected: on AZERTY the key
// printing 'a' reports A even though it sits where Q is on a US keyboard.
// Keys whose logical meaning has no code fall back to their position.
func (d Descriptor) KeyCode() KeyCode {
	if c, ok := d.logicalKeyCode(); ok {
		return c
	}
	if c, ok := physicalKeyCodes[d.Physical]; ok {
		return c
	}
	return CodeUnknown
}

func (d Descriptor) logicalKeyCode() (KeyCode, bool) {
	if named, ok := d.Logical.Named(); ok {
		if named == NamedEnter && d.Location == LocationNumpad {
			return CodeNumpadEnter, true
		}
		c, ok := namedKeyCodes[named]
		return c, ok
	}
	ch, ok := d.Logical.Character()
	if !ok {
		return CodeUnknown, false
	}
	if d.Location == LocationNumpad {
		if ch >= '0' && ch <= '9' {
			return CodeNumpad0 + KeyCode(ch-'0'), true
		}
		if c, ok := numpadCharCodes[ch]; ok {
			return c, true
		}
	}
	switch {
	case ch >= 'a' && ch <= 'z':
		return CodeA + KeyCode(ch-'a'), true
	case ch >= 'A' && ch <= 'Z':
		return CodeA + KeyCode(ch-'A'), true
	case ch >= '0' && ch <= '9':
		return CodeNumber0 + KeyCode(ch-'0'), true
	}
	c, ok := charKeyCodes[ch]
	return c, ok
}

var namedKeyCodes = map[NamedKey]KeyCode{
	NamedAlt:        CodeAlt,
	NamedAltGraph:   CodeAlt,
	NamedControl:    CodeControl,
	NamedShift:      CodeShift,
	NamedSuper:      CodeCommand,
	NamedCapsLock:   CodeCapsLock,
	NamedNumLock:    CodeNumLock,
	NamedScrollLock: CodeScrollLock,
	NamedEnter:      CodeEnter,
	NamedTab:        CodeTab,
	NamedArrowDown:  CodeDown,
	NamedArrowLeft:  CodeLeft,
	NamedArrowRight: CodeRight,
	NamedArrowUp:    CodeUp,
	NamedEnd:        CodeEnd,
	NamedHome:       CodeHome,
	NamedPageDown:   CodePageDown,
	NamedPageUp:     CodePageUp,
	NamedBackspace:  CodeBackspace,
	NamedDelete:     CodeDelete,
	NamedInsert:     CodeInsert,
	NamedEscape:     CodeEscape,
	NamedPause:      CodePause,
	NamedF1:         CodeF1,
	NamedF2:         CodeF2,
	NamedF3:         CodeF3,
	NamedF4:         CodeF4,
	NamedF5:         CodeF5,
	NamedF6:         CodeF6,
	NamedF7:         CodeF7,
	NamedF8:         CodeF8,
	NamedF9:         CodeF9,
	NamedF10:        CodeF10,
	NamedF11:        CodeF11,
	NamedF12:        CodeF12,
	NamedF13:        CodeF13,
	NamedF14:        CodeF14,
	NamedF15:        CodeF15,
	NamedF16:        CodeF16,
	NamedF17:        CodeF17,
	NamedF18:        CodeF18,
	NamedF19:        CodeF19,
	NamedF20:        CodeF20,
	NamedF21:        CodeF21,
	NamedF22:        CodeF22,
	NamedF23:        CodeF23,
	NamedF24:        CodeF24,
}

var charKeyCodes = map[rune]KeyCode{
	' ':  CodeSpace,
	';':  CodeSemicolon,
	'=':  CodeEqual,
	',':  CodeComma,
	'-':  CodeMinus,
	'.':  CodePeriod,
	'/':  CodeSlash,
	'`':  CodeBackquote,
	'[':  CodeLeftBracket,
	'\\': CodeBackslash,
	']':  CodeRightBracket,
	'\'': CodeQuote,
}

var numpadCharCodes = map[rune]KeyCode{
	'*': CodeNumpadMultiply,
	'+': CodeNumpadAdd,
	'-': CodeNumpadSubtract,
	'.': CodeNumpadDecimal,
	',': CodeNumpadDecimal,
	'/': CodeNumpadDivide,
}

var physicalKeyCodes = func() map[PhysicalKey]KeyCode {
	m := map[PhysicalKey]KeyCode{
		PhysicalBackquote:      CodeBackquote,
		PhysicalMinus:          CodeMinus,
		PhysicalEqual:          CodeEqual,
		PhysicalBracketLeft:    CodeLeftBracket,
		PhysicalBracketRight:   CodeRightBracket,
		PhysicalBackslash:      CodeBackslash,
		PhysicalSemicolon:      CodeSemicolon,
		PhysicalQuote:          CodeQuote,
		PhysicalComma:          CodeComma,
		PhysicalPeriod:         CodePeriod,
		PhysicalSlash:          CodeSlash,
		PhysicalBackspace:      CodeBackspace,
		PhysicalTab:            CodeTab,
		PhysicalCapsLock:       CodeCapsLock,
		PhysicalEnter:          CodeEnter,
		PhysicalShiftLeft:      CodeShift,
		PhysicalShiftRight:     CodeShift,
		PhysicalControlLeft:    CodeControl,
		PhysicalControlRight:   CodeControl,
		PhysicalSuperLeft:      CodeCommand,
		PhysicalSuperRight:     CodeCommand,
		PhysicalAltLeft:        CodeAlt,
		PhysicalAltRight:       CodeAlt,
		PhysicalSpace:          CodeSpace,
		PhysicalInsert:         CodeInsert,
		PhysicalDelete:         CodeDelete,
		PhysicalHome:           CodeHome,
		PhysicalEnd:            CodeEnd,
		PhysicalPageUp:         CodePageUp,
		PhysicalPageDown:       CodePageDown,
		PhysicalArrowUp:        CodeUp,
		PhysicalArrowLeft:      CodeLeft,
		PhysicalArrowDown:      CodeDown,
		PhysicalArrowRight:     CodeRight,
		PhysicalNumLock:        CodeNumLock,
		PhysicalNumpadDivide:   CodeNumpadDivide,
		PhysicalNumpadMultiply: CodeNumpadMultiply,
		PhysicalNumpadSubtract: CodeNumpadSubtract,
		PhysicalNumpadAdd:      CodeNumpadAdd,
		PhysicalNumpadComma:    CodeNumpadDecimal,
		PhysicalNumpadEnter:    CodeNumpadEnter,
		PhysicalNumpadDecimal:  CodeNumpadDecimal,
		PhysicalEscape:         CodeEscape,
		PhysicalScrollLock:     CodeScrollLock,
		PhysicalPause:          CodePause,
	}
	for i := PhysicalKey(0); i < 26; i++ {
		m[PhysicalA+i] = CodeA + KeyCode(i)
	}
	for i := PhysicalKey(0); i < 10; i++ {
		m[PhysicalDigit0+i] = CodeNumber0 + KeyCode(i)
		m[PhysicalNumpad0+i] = CodeNumpad0 + KeyCode(i)
	}
	for i := PhysicalKey(0); i < 24; i++ {
		m[PhysicalF1+i] = CodeF1 + KeyCode(i)
	}
	return m
}()
