package key

import "fmt"

// ButtonKeyCode is a SWF4 key-press code, as used by on(keyPress "...")
// button handlers. Codes 32 through 126 are ASCII; lower values name the
// editing and navigation keys and differ from KeyCode numbering.
type ButtonKeyCode uint8

// Key-press codes.
const (
	ButtonUnknown   ButtonKeyCode = 0
	ButtonLeft      ButtonKeyCode = 1
	ButtonRight     ButtonKeyCode = 2
	ButtonHome      ButtonKeyCode = 3
	ButtonEnd       ButtonKeyCode = 4
	ButtonInsert    ButtonKeyCode = 5
	ButtonDelete    ButtonKeyCode = 6
	ButtonBackspace ButtonKeyCode = 8
	ButtonReturn    ButtonKeyCode = 13
	ButtonUp        ButtonKeyCode = 14
	ButtonDown      ButtonKeyCode = 15
	ButtonPgUp      ButtonKeyCode = 16
	ButtonPgDown    ButtonKeyCode = 17
	ButtonTab       ButtonKeyCode = 18
	ButtonEscape    ButtonKeyCode = 19

	ButtonSpace       ButtonKeyCode = 32
	ButtonExclamation ButtonKeyCode = 33
	ButtonDoubleQuote ButtonKeyCode = 34
	ButtonNumberSign  ButtonKeyCode = 35
	ButtonDollar      ButtonKeyCode = 36
	ButtonPercent     ButtonKeyCode = 37
	ButtonAmpersand   ButtonKeyCode = 38
	ButtonSingleQuote ButtonKeyCode = 39
	ButtonLParen      ButtonKeyCode = 40
	ButtonRParen      ButtonKeyCode = 41
	ButtonAsterisk    ButtonKeyCode = 42
	ButtonPlus        ButtonKeyCode = 43
	ButtonComma       ButtonKeyCode = 44
	ButtonMinus       ButtonKeyCode = 45
	ButtonPeriod      ButtonKeyCode = 46
	ButtonSlash       ButtonKeyCode = 47
	ButtonZero        ButtonKeyCode = 48
	ButtonOne         ButtonKeyCode = 49
	ButtonTwo         ButtonKeyCode = 50
	ButtonThree       ButtonKeyCode = 51
	ButtonFour        ButtonKeyCode = 52
	ButtonFive        ButtonKeyCode = 53
	ButtonSix         ButtonKeyCode = 54
	ButtonSeven       ButtonKeyCode = 55
	ButtonEight       ButtonKeyCode = 56
	ButtonNine        ButtonKeyCode = 57
	ButtonColon       ButtonKeyCode = 58
	ButtonSemicolon   ButtonKeyCode = 59
	ButtonLessThan    ButtonKeyCode = 60
	ButtonEquals      ButtonKeyCode = 61
	ButtonGreaterThan ButtonKeyCode = 62
	ButtonQuestion    ButtonKeyCode = 63
	ButtonAt          ButtonKeyCode = 64
	ButtonUppercaseA  ButtonKeyCode = 65
	ButtonUppercaseB  ButtonKeyCode = 66
	ButtonUppercaseC  ButtonKeyCode = 67
	ButtonUppercaseD  ButtonKeyCode = 68
	ButtonUppercaseE  ButtonKeyCode = 69
	ButtonUppercaseF  ButtonKeyCode = 70
	ButtonUppercaseG  ButtonKeyCode = 71
	ButtonUppercaseH  ButtonKeyCode = 72
	ButtonUppercaseI  ButtonKeyCode = 73
	ButtonUppercaseJ  ButtonKeyCode = 74
	ButtonUppercaseK  ButtonKeyCode = 75
	ButtonUppercaseL  ButtonKeyCode = 76
	ButtonUppercaseM  ButtonKeyCode = 77
	ButtonUppercaseN  ButtonKeyCode = 78
	ButtonUppercaseO  ButtonKeyCode = 79
	ButtonUppercaseP  ButtonKeyCode = 80
	ButtonUppercaseQ  ButtonKeyCode = 81
	ButtonUppercaseR  ButtonKeyCode = 82
	ButtonUppercaseS  ButtonKeyCode = 83
	ButtonUppercaseT  ButtonKeyCode = 84
	ButtonUppercaseU  ButtonKeyCode = 85
	ButtonUppercaseV  ButtonKeyCode = 86
	ButtonUppercaseW  ButtonKeyCode = 87
	ButtonUppercaseX  ButtonKeyCode = 88
	ButtonUppercaseY  ButtonKeyCode = 89
	ButtonUppercaseZ  ButtonKeyCode = 90
	ButtonLBracket    ButtonKeyCode = 91
	ButtonBackslash   ButtonKeyCode = 92
	ButtonRBracket    ButtonKeyCode = 93
	ButtonCaret       ButtonKeyCode = 94
	ButtonUnderscore  ButtonKeyCode = 95
	ButtonBackquote   ButtonKeyCode = 96
	ButtonA           ButtonKeyCode = 97
	ButtonB           ButtonKeyCode = 98
	ButtonC           ButtonKeyCode = 99
	ButtonD           ButtonKeyCode = 100
	ButtonE           ButtonKeyCode = 101
	ButtonF           ButtonKeyCode = 102
	ButtonG           ButtonKeyCode = 103
	ButtonH           ButtonKeyCode = 104
	ButtonI           ButtonKeyCode = 105
	ButtonJ           ButtonKeyCode = 106
	ButtonK           ButtonKeyCode = 107
	ButtonL           ButtonKeyCode = 108
	ButtonM           ButtonKeyCode = 109
	ButtonN           ButtonKeyCode = 110
	ButtonO           ButtonKeyCode = 111
	ButtonP           ButtonKeyCode = 112
	ButtonQ           ButtonKeyCode = 113
	ButtonR           ButtonKeyCode = 114
	ButtonS           ButtonKeyCode = 115
	ButtonT           ButtonKeyCode = 116
	ButtonU           ButtonKeyCode = 117
	ButtonV           ButtonKeyCode = 118
	ButtonW           ButtonKeyCode = 119
	ButtonX           ButtonKeyCode = 120
	ButtonY           ButtonKeyCode = 121
	ButtonZ           ButtonKeyCode = 122
	ButtonLBrace      ButtonKeyCode = 123
	ButtonPipe        ButtonKeyCode = 124
	ButtonRBrace      ButtonKeyCode = 125
	ButtonTilde       ButtonKeyCode = 126
)

// Printable ASCII range that maps onto key-press codes by identity.
const (
	ButtonPrintableMin = 32
	ButtonPrintableMax = 126
)

var buttonSpecialNames = map[ButtonKeyCode]string{
	ButtonUnknown:   "Unknown",
	ButtonLeft:      "Left",
	ButtonRight:     "Right",
	ButtonHome:      "Home",
	ButtonEnd:       "End",
	ButtonInsert:    "Insert",
	ButtonDelete:    "Delete",
	ButtonBackspace: "Backspace",
	ButtonReturn:    "Enter",
	ButtonUp:        "Up",
	ButtonDown:      "Down",
	ButtonPgUp:      "PageUp",
	ButtonPgDown:    "PageDown",
	ButtonTab:       "Tab",
	ButtonEscape:    "Escape",
	ButtonSpace:     "Space",
}

// ButtonKeyCodeFromUint8 validates a raw key-press code. Values the format
// leaves unassigned (7, 9-12, 20-31, above 126) are rejected rather than
// aliased to a defined code.
func ButtonKeyCodeFromUint8(n uint8) (ButtonKeyCode, bool) {
	b := ButtonKeyCode(n)
	if b.isValid() {
		return b, true
	}
	return ButtonUnknown, false
}

func (b ButtonKeyCode) isValid() bool {
	switch {
	case b <= ButtonDelete:
		return true
	case b == ButtonBackspace:
		return true
	case b >= ButtonReturn && b <= ButtonEscape:
		return true
	case b >= ButtonPrintableMin && b <= ButtonPrintableMax:
		return true
	}
	return false
}

// ToUint8 returns the numeric code.
func (b ButtonKeyCode) ToUint8() uint8 {
	return uint8(b)
}

// IsPrintable returns true for the ASCII range.
func (b ButtonKeyCode) IsPrintable() bool {
	return b >= ButtonPrintableMin && b <= ButtonPrintableMax
}

// String returns the name used in on(keyPress "<Name>") handlers for special
// keys, or the character itself for printable codes.
func (b ButtonKeyCode) String() string {
	if name, ok := buttonSpecialNames[b]; ok {
		return name
	}
	if b.IsPrintable() {
		return string(rune(b))
	}
	return fmt.Sprintf("ButtonKeyCode(%d)", uint8(b))
}

// ButtonKeyCodeFromName parses a key-press name. Special keys accept the
// bracketed handler form ("<Left>") or the bare name; any single printable
// ASCII character maps to itself.
func ButtonKeyCodeFromName(name string) (ButtonKeyCode, bool) {
	if len(name) > 2 && name[0] == '<' && name[len(name)-1] == '>' {
		name = name[1 : len(name)-1]
	}
	if len(name) == 1 {
		return ButtonKeyCodeFromUint8(name[0])
	}
	for code, special := range buttonSpecialNames {
		if code != ButtonUnknown && special == name {
			return code, true
		}
	}
	return ButtonUnknown, false
}

// ButtonKeyCodeFromKeyCode resolves the key-press code for a non-printable
// key. Only navigation and editing keys have one; every other key code
// returns false.
func ButtonKeyCodeFromKeyCode(c KeyCode) (ButtonKeyCode, bool) {
	switch c {
	case CodeLeft:
		return ButtonLeft, true
	case CodeRight:
		return ButtonRight, true
	case CodeHome:
		return ButtonHome, true
	case CodeEnd:
		return ButtonEnd, true
	case CodeInsert:
		return ButtonInsert, true
	case CodeDelete:
		return ButtonDelete, true
	case CodeBackspace:
		return ButtonBackspace, true
	case CodeEnter:
		return ButtonReturn, true
	case CodeUp:
		return ButtonUp, true
	case CodeDown:
		return ButtonDown, true
	case CodePageUp:
		return ButtonPgUp, true
	case CodePageDown:
		return ButtonPgDown, true
	case CodeEscape:
		return ButtonEscape, true
	case CodeTab:
		return ButtonTab, true
	}
	return ButtonUnknown, false
}
