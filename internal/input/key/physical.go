package key

import "fmt"

// PhysicalKey identifies a key by its position on a US-layout keyboard,
// independent of the active layout. Names follow the W3C UI Events
// KeyboardEvent code values.
type PhysicalKey uint16

// Physical keys. PhysicalUnknown is the zero value.
const (
	PhysicalUnknown PhysicalKey = iota
	PhysicalBackquote
	PhysicalDigit0
	PhysicalDigit1
	PhysicalDigit2
	PhysicalDigit3
	PhysicalDigit4
	PhysicalDigit5
	PhysicalDigit6
	PhysicalDigit7
	PhysicalDigit8
	PhysicalDigit9
	PhysicalMinus
	PhysicalEqual
	PhysicalIntlYen
	PhysicalA
	PhysicalB
	PhysicalC
	PhysicalD
	PhysicalE
	PhysicalF
	PhysicalG
	PhysicalH
	PhysicalI
	PhysicalJ
	PhysicalK
	PhysicalL
	PhysicalM
	PhysicalN
	PhysicalO
	PhysicalP
	PhysicalQ
	PhysicalR
	PhysicalS
	PhysicalT
	PhysicalU
	PhysicalV
	PhysicalW
	PhysicalX
	PhysicalY
	PhysicalZ
	PhysicalBracketLeft
	PhysicalBracketRight
	PhysicalBackslash
	PhysicalSemicolon
	PhysicalQuote
	PhysicalIntlBackslash
	PhysicalComma
	PhysicalPeriod
	PhysicalSlash
	PhysicalIntlRo
	PhysicalBackspace
	PhysicalTab
	PhysicalCapsLock
	PhysicalEnter
	PhysicalShiftLeft
	PhysicalShiftRight
	PhysicalControlLeft
	PhysicalSuperLeft
	PhysicalAltLeft
	PhysicalSpace
	PhysicalAltRight
	PhysicalSuperRight
	PhysicalContextMenu
	PhysicalControlRight
	PhysicalInsert
	PhysicalDelete
	PhysicalHome
	PhysicalEnd
	PhysicalPageUp
	PhysicalPageDown
	PhysicalArrowUp
	PhysicalArrowLeft
	PhysicalArrowDown
	PhysicalArrowRight
	PhysicalNumLock
	PhysicalNumpadDivide
	PhysicalNumpadMultiply
	PhysicalNumpadSubtract
	PhysicalNumpad0
	PhysicalNumpad1
	PhysicalNumpad2
	PhysicalNumpad3
	PhysicalNumpad4
	PhysicalNumpad5
	PhysicalNumpad6
	PhysicalNumpad7
	PhysicalNumpad8
	PhysicalNumpad9
	PhysicalNumpadAdd
	PhysicalNumpadComma
	PhysicalNumpadEnter
	PhysicalNumpadDecimal
	PhysicalEscape
	PhysicalF1
	PhysicalF2
	PhysicalF3
	PhysicalF4
	PhysicalF5
	PhysicalF6
	PhysicalF7
	PhysicalF8
	PhysicalF9
	PhysicalF10
	PhysicalF11
	PhysicalF12
	PhysicalF13
	PhysicalF14
	PhysicalF15
	PhysicalF16
	PhysicalF17
	PhysicalF18
	PhysicalF19
	PhysicalF20
	PhysicalF21
	PhysicalF22
	PhysicalF23
	PhysicalF24
	PhysicalF25
	PhysicalF26
	PhysicalF27
	PhysicalF28
	PhysicalF29
	PhysicalF30
	PhysicalF31
	PhysicalF32
	PhysicalF33
	PhysicalF34
	PhysicalF35
	PhysicalFn
	PhysicalFnLock
	PhysicalPrintScreen
	PhysicalScrollLock
	PhysicalPause
)

// physicalKeyCount is one past the last defined key.
const physicalKeyCount = PhysicalPause + 1

var physicalKeyNames = [physicalKeyCount]string{
	PhysicalUnknown:        "Unknown",
	PhysicalBackquote:      "Backquote",
	PhysicalDigit0:         "Digit0",
	PhysicalDigit1:         "Digit1",
	PhysicalDigit2:         "Digit2",
	PhysicalDigit3:         "Digit3",
	PhysicalDigit4:         "Digit4",
	PhysicalDigit5:         "Digit5",
	PhysicalDigit6:         "Digit6",
	PhysicalDigit7:         "Digit7",
	PhysicalDigit8:         "Digit8",
	PhysicalDigit9:         "Digit9",
	PhysicalMinus:          "Minus",
	PhysicalEqual:          "Equal",
	PhysicalIntlYen:        "IntlYen",
	PhysicalA:              "KeyA",
	PhysicalB:              "KeyB",
	PhysicalC:              "KeyC",
	PhysicalD:              "KeyD",
	PhysicalE:              "KeyE",
	PhysicalF:              "KeyF",
	PhysicalG:              "KeyG",
	PhysicalH:              "KeyH",
	PhysicalI:              "KeyI",
	PhysicalJ:              "KeyJ",
	PhysicalK:              "KeyK",
	PhysicalL:              "KeyL",
	PhysicalM:              "KeyM",
	PhysicalN:              "KeyN",
	PhysicalO:              "KeyO",
	PhysicalP:              "KeyP",
	PhysicalQ:              "KeyQ",
	PhysicalR:              "KeyR",
	PhysicalS:              "KeyS",
	PhysicalT:              "KeyT",
	PhysicalU:              "KeyU",
	PhysicalV:              "KeyV",
	PhysicalW:              "KeyW",
	PhysicalX:              "KeyX",
	PhysicalY:              "KeyY",
	PhysicalZ:              "KeyZ",
	PhysicalBracketLeft:    "BracketLeft",
	PhysicalBracketRight:   "BracketRight",
	PhysicalBackslash:      "Backslash",
	PhysicalSemicolon:      "Semicolon",
	PhysicalQuote:          "Quote",
	PhysicalIntlBackslash:  "IntlBackslash",
	PhysicalComma:          "Comma",
	PhysicalPeriod:         "Period",
	PhysicalSlash:          "Slash",
	PhysicalIntlRo:         "IntlRo",
	PhysicalBackspace:      "Backspace",
	PhysicalTab:            "Tab",
	PhysicalCapsLock:       "CapsLock",
	PhysicalEnter:          "Enter",
	PhysicalShiftLeft:      "ShiftLeft",
	PhysicalShiftRight:     "ShiftRight",
	PhysicalControlLeft:    "ControlLeft",
	PhysicalSuperLeft:      "SuperLeft",
	PhysicalAltLeft:        "AltLeft",
	PhysicalSpace:          "Space",
	PhysicalAltRight:       "AltRight",
	PhysicalSuperRight:     "SuperRight",
	PhysicalContextMenu:    "ContextMenu",
	PhysicalControlRight:   "ControlRight",
	PhysicalInsert:         "Insert",
	PhysicalDelete:         "Delete",
	PhysicalHome:           "Home",
	PhysicalEnd:            "End",
	PhysicalPageUp:         "PageUp",
	PhysicalPageDown:       "PageDown",
	PhysicalArrowUp:        "ArrowUp",
	PhysicalArrowLeft:      "ArrowLeft",
	PhysicalArrowDown:      "ArrowDown",
	PhysicalArrowRight:     "ArrowRight",
	PhysicalNumLock:        "NumLock",
	PhysicalNumpadDivide:   "NumpadDivide",
	PhysicalNumpadMultiply: "NumpadMultiply",
	PhysicalNumpadSubtract: "NumpadSubtract",
	PhysicalNumpad0:        "Numpad0",
	PhysicalNumpad1:        "Numpad1",
	PhysicalNumpad2:        "Numpad2",
	PhysicalNumpad3:        "Numpad3",
	PhysicalNumpad4:        "Numpad4",
	PhysicalNumpad5:        "Numpad5",
	PhysicalNumpad6:        "Numpad6",
	PhysicalNumpad7:        "Numpad7",
	PhysicalNumpad8:        "Numpad8",
	PhysicalNumpad9:        "Numpad9",
	PhysicalNumpadAdd:      "NumpadAdd",
	PhysicalNumpadComma:    "NumpadComma",
	PhysicalNumpadEnter:    "NumpadEnter",
	PhysicalNumpadDecimal:  "NumpadDecimal",
	PhysicalEscape:         "Escape",
	PhysicalF1:             "F1",
	PhysicalF2:             "F2",
	PhysicalF3:             "F3",
	PhysicalF4:             "F4",
	PhysicalF5:             "F5",
	PhysicalF6:             "F6",
	PhysicalF7:             "F7",
	PhysicalF8:             "F8",
	PhysicalF9:             "F9",
	PhysicalF10:            "F10",
	PhysicalF11:            "F11",
	PhysicalF12:            "F12",
	PhysicalF13:            "F13",
	PhysicalF14:            "F14",
	PhysicalF15:            "F15",
	PhysicalF16:            "F16",
	PhysicalF17:            "F17",
	PhysicalF18:            "F18",
	PhysicalF19:            "F19",
	PhysicalF20:            "F20",
	PhysicalF21:            "F21",
	PhysicalF22:            "F22",
	PhysicalF23:            "F23",
	PhysicalF24:            "F24",
	PhysicalF25:            "F25",
	PhysicalF26:            "F26",
	PhysicalF27:            "F27",
	PhysicalF28:            "F28",
	PhysicalF29:            "F29",
	PhysicalF30:            "F30",
	PhysicalF31:            "F31",
	PhysicalF32:            "F32",
	PhysicalF33:            "F33",
	PhysicalF34:            "F34",
	PhysicalF35:            "F35",
	PhysicalFn:             "Fn",
	PhysicalFnLock:         "FnLock",
	PhysicalPrintScreen:    "PrintScreen",
	PhysicalScrollLock:     "ScrollLock",
	PhysicalPause:          "Pause",
}

var physicalKeyByName = func() map[string]PhysicalKey {
	m := make(map[string]PhysicalKey, len(physicalKeyNames))
	for i, name := range physicalKeyNames {
		m[name] = PhysicalKey(i)
	}
	return m
}()

// String returns the W3C code name, e.g. "KeyA" or "NumpadEnter".
func (p PhysicalKey) String() string {
	if p < physicalKeyCount {
		return physicalKeyNames[p]
	}
	return fmt.Sprintf("PhysicalKey(%d)", uint16(p))
}

// PhysicalKeyFromName returns the key for a W3C code name. Names are
// case-sensitive, as they are in the W3C table.
func PhysicalKeyFromName(name string) (PhysicalKey, bool) {
	p, ok := physicalKeyByName[name]
	return p, ok
}

// MarshalText implements encoding.TextMarshaler.
func (p PhysicalKey) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *PhysicalKey) UnmarshalText(text []byte) error {
	parsed, ok := PhysicalKeyFromName(string(text))
	if !ok {
		return fmt.Errorf("%w: physical key %q", ErrUnknownKeyName, string(text))
	}
	*p = parsed
	return nil
}
