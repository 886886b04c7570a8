package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/dshills/clipevent/internal/input/gamepad"
	"github.com/dshills/clipevent/internal/input/key"
	"github.com/dshills/clipevent/internal/input/mouse"
)

type keyInfo struct {
	physical key.PhysicalKey
	location key.Location
	named    key.NamedKey
	isNamed  bool
	lower    rune
	upper    rune
}

func chars(p key.PhysicalKey, lower, upper rune) keyInfo {
	return keyInfo{physical: p, lower: lower, upper: upper}
}

func namedAt(p key.PhysicalKey, n key.NamedKey, loc key.Location) keyInfo {
	return keyInfo{physical: p, location: loc, named: n, isNamed: true}
}

func numpad(p key.PhysicalKey, ch rune) keyInfo {
	return keyInfo{physical: p, location: key.LocationNumpad, lower: ch, upper: ch}
}

// descriptor returns the key descriptor with the logical key a US layout
// produces under the given modifiers.
func (k keyInfo) descriptor(mods key.Modifier) key.Descriptor {
	if k.isNamed {
		return key.NewDescriptor(k.physical, key.NamedLogicalKey(k.named), k.location)
	}
	ch := k.lower
	if mods.Has(key.ModShift) {
		ch = k.upper
	}
	return key.NewDescriptor(k.physical, key.CharacterKey(ch), k.location)
}

var keyTable = map[ebiten.Key]keyInfo{
	ebiten.KeyA: chars(key.PhysicalA, 'a', 'A'),
	ebiten.KeyB: chars(key.PhysicalB, 'b', 'B'),
	ebiten.KeyC: chars(key.PhysicalC, 'c', 'C'),
	ebiten.KeyD: chars(key.PhysicalD, 'd', 'D'),
	ebiten.KeyE: chars(key.PhysicalE, 'e', 'E'),
	ebiten.KeyF: chars(key.PhysicalF, 'f', 'F'),
	ebiten.KeyG: chars(key.PhysicalG, 'g', 'G'),
	ebiten.KeyH: chars(key.PhysicalH, 'h', 'H'),
	ebiten.KeyI: chars(key.PhysicalI, 'i', 'I'),
	ebiten.KeyJ: chars(key.PhysicalJ, 'j', 'J'),
	ebiten.KeyK: chars(key.PhysicalK, 'k', 'K'),
	ebiten.KeyL: chars(key.PhysicalL, 'l', 'L'),
	ebiten.KeyM: chars(key.PhysicalM, 'm', 'M'),
	ebiten.KeyN: chars(key.PhysicalN, 'n', 'N'),
	ebiten.KeyO: chars(key.PhysicalO, 'o', 'O'),
	ebiten.KeyP: chars(key.PhysicalP, 'p', 'P'),
	ebiten.KeyQ: chars(key.PhysicalQ, 'q', 'Q'),
	ebiten.KeyR: chars(key.PhysicalR, 'r', 'R'),
	ebiten.KeyS: chars(key.PhysicalS, 's', 'S'),
	ebiten.KeyT: chars(key.PhysicalT, 't', 'T'),
	ebiten.KeyU: chars(key.PhysicalU, 'u', 'U'),
	ebiten.KeyV: chars(key.PhysicalV, 'v', 'V'),
	ebiten.KeyW: chars(key.PhysicalW, 'w', 'W'),
	ebiten.KeyX: chars(key.PhysicalX, 'x', 'X'),
	ebiten.KeyY: chars(key.PhysicalY, 'y', 'Y'),
	ebiten.KeyZ: chars(key.PhysicalZ, 'z', 'Z'),

	ebiten.KeyDigit0: chars(key.PhysicalDigit0, '0', ')'),
	ebiten.KeyDigit1: chars(key.PhysicalDigit1, '1', '!'),
	ebiten.KeyDigit2: chars(key.PhysicalDigit2, '2', '@'),
	ebiten.KeyDigit3: chars(key.PhysicalDigit3, '3', '#'),
	ebiten.KeyDigit4: chars(key.PhysicalDigit4, '4', '$'),
	ebiten.KeyDigit5: chars(key.PhysicalDigit5, '5', '%'),
	ebiten.KeyDigit6: chars(key.PhysicalDigit6, '6', '^'),
	ebiten.KeyDigit7: chars(key.PhysicalDigit7, '7', '&'),
	ebiten.KeyDigit8: chars(key.PhysicalDigit8, '8', '*'),
	ebiten.KeyDigit9: chars(key.PhysicalDigit9, '9', '('),

	ebiten.KeySpace:          chars(key.PhysicalSpace, ' ', ' '),
	ebiten.KeyBackquote:      chars(key.PhysicalBackquote, '`', '~'),
	ebiten.KeyMinus:          chars(key.PhysicalMinus, '-', '_'),
	ebiten.KeyEqual:          chars(key.PhysicalEqual, '=', '+'),
	ebiten.KeyBracketLeft:    chars(key.PhysicalBracketLeft, '[', '{'),
	ebiten.KeyBracketRight:   chars(key.PhysicalBracketRight, ']', '}'),
	ebiten.KeyBackslash:      chars(key.PhysicalBackslash, '\\', '|'),
	ebiten.KeyIntlBackslash:  chars(key.PhysicalIntlBackslash, '\\', '|'),
	ebiten.KeySemicolon:      chars(key.PhysicalSemicolon, ';', ':'),
	ebiten.KeyQuote:          chars(key.PhysicalQuote, '\'', '"'),
	ebiten.KeyComma:          chars(key.PhysicalComma, ',', '<'),
	ebiten.KeyPeriod:         chars(key.PhysicalPeriod, '.', '>'),
	ebiten.KeySlash:          chars(key.PhysicalSlash, '/', '?'),
	ebiten.KeyNumpad0:        numpad(key.PhysicalNumpad0, '0'),
	ebiten.KeyNumpad1:        numpad(key.PhysicalNumpad1, '1'),
	ebiten.KeyNumpad2:        numpad(key.PhysicalNumpad2, '2'),
	ebiten.KeyNumpad3:        numpad(key.PhysicalNumpad3, '3'),
	ebiten.KeyNumpad4:        numpad(key.PhysicalNumpad4, '4'),
	ebiten.KeyNumpad5:        numpad(key.PhysicalNumpad5, '5'),
	ebiten.KeyNumpad6:        numpad(key.PhysicalNumpad6, '6'),
	ebiten.KeyNumpad7:        numpad(key.PhysicalNumpad7, '7'),
	ebiten.KeyNumpad8:        numpad(key.PhysicalNumpad8, '8'),
	ebiten.KeyNumpad9:        numpad(key.PhysicalNumpad9, '9'),
	ebiten.KeyNumpadAdd:      numpad(key.PhysicalNumpadAdd, '+'),
	ebiten.KeyNumpadSubtract: numpad(key.PhysicalNumpadSubtract, '-'),
	ebiten.KeyNumpadMultiply: numpad(key.PhysicalNumpadMultiply, '*'),
	ebiten.KeyNumpadDivide:   numpad(key.PhysicalNumpadDivide, '/'),
	ebiten.KeyNumpadDecimal:  numpad(key.PhysicalNumpadDecimal, '.'),
	ebiten.KeyNumpadEnter:    namedAt(key.PhysicalNumpadEnter, key.NamedEnter, key.LocationNumpad),

	ebiten.KeyEnter:        namedAt(key.PhysicalEnter, key.NamedEnter, key.LocationStandard),
	ebiten.KeyTab:          namedAt(key.PhysicalTab, key.NamedTab, key.LocationStandard),
	ebiten.KeyBackspace:    namedAt(key.PhysicalBackspace, key.NamedBackspace, key.LocationStandard),
	ebiten.KeyEscape:       namedAt(key.PhysicalEscape, key.NamedEscape, key.LocationStandard),
	ebiten.KeyCapsLock:     namedAt(key.PhysicalCapsLock, key.NamedCapsLock, key.LocationStandard),
	ebiten.KeyNumLock:      namedAt(key.PhysicalNumLock, key.NamedNumLock, key.LocationStandard),
	ebiten.KeyScrollLock:   namedAt(key.PhysicalScrollLock, key.NamedScrollLock, key.LocationStandard),
	ebiten.KeyPrintScreen:  namedAt(key.PhysicalPrintScreen, key.NamedPrintScreen, key.LocationStandard),
	ebiten.KeyPause:        namedAt(key.PhysicalPause, key.NamedPause, key.LocationStandard),
	ebiten.KeyContextMenu:  namedAt(key.PhysicalContextMenu, key.NamedContextMenu, key.LocationStandard),
	ebiten.KeyInsert:       namedAt(key.PhysicalInsert, key.NamedInsert, key.LocationStandard),
	ebiten.KeyDelete:       namedAt(key.PhysicalDelete, key.NamedDelete, key.LocationStandard),
	ebiten.KeyHome:         namedAt(key.PhysicalHome, key.NamedHome, key.LocationStandard),
	ebiten.KeyEnd:          namedAt(key.PhysicalEnd, key.NamedEnd, key.LocationStandard),
	ebiten.KeyPageUp:       namedAt(key.PhysicalPageUp, key.NamedPageUp, key.LocationStandard),
	ebiten.KeyPageDown:     namedAt(key.PhysicalPageDown, key.NamedPageDown, key.LocationStandard),
	ebiten.KeyArrowUp:      namedAt(key.PhysicalArrowUp, key.NamedArrowUp, key.LocationStandard),
	ebiten.KeyArrowDown:    namedAt(key.PhysicalArrowDown, key.NamedArrowDown, key.LocationStandard),
	ebiten.KeyArrowLeft:    namedAt(key.PhysicalArrowLeft, key.NamedArrowLeft, key.LocationStandard),
	ebiten.KeyArrowRight:   namedAt(key.PhysicalArrowRight, key.NamedArrowRight, key.LocationStandard),
	ebiten.KeyShiftLeft:    namedAt(key.PhysicalShiftLeft, key.NamedShift, key.LocationLeft),
	ebiten.KeyShiftRight:   namedAt(key.PhysicalShiftRight, key.NamedShift, key.LocationRight),
	ebiten.KeyControlLeft:  namedAt(key.PhysicalControlLeft, key.NamedControl, key.LocationLeft),
	ebiten.KeyControlRight: namedAt(key.PhysicalControlRight, key.NamedControl, key.LocationRight),
	ebiten.KeyAltLeft:      namedAt(key.PhysicalAltLeft, key.NamedAlt, key.LocationLeft),
	ebiten.KeyAltRight:     namedAt(key.PhysicalAltRight, key.NamedAlt, key.LocationRight),
	ebiten.KeyMetaLeft:     namedAt(key.PhysicalSuperLeft, key.NamedSuper, key.LocationLeft),
	ebiten.KeyMetaRight:    namedAt(key.PhysicalSuperRight, key.NamedSuper, key.LocationRight),

	ebiten.KeyF1:  namedAt(key.PhysicalF1, key.NamedF1, key.LocationStandard),
	ebiten.KeyF2:  namedAt(key.PhysicalF2, key.NamedF2, key.LocationStandard),
	ebiten.KeyF3:  namedAt(key.PhysicalF3, key.NamedF3, key.LocationStandard),
	ebiten.KeyF4:  namedAt(key.PhysicalF4, key.NamedF4, key.LocationStandard),
	ebiten.KeyF5:  namedAt(key.PhysicalF5, key.NamedF5, key.LocationStandard),
	ebiten.KeyF6:  namedAt(key.PhysicalF6, key.NamedF6, key.LocationStandard),
	ebiten.KeyF7:  namedAt(key.PhysicalF7, key.NamedF7, key.LocationStandard),
	ebiten.KeyF8:  namedAt(key.PhysicalF8, key.NamedF8, key.LocationStandard),
	ebiten.KeyF9:  namedAt(key.PhysicalF9, key.NamedF9, key.LocationStandard),
	ebiten.KeyF10: namedAt(key.PhysicalF10, key.NamedF10, key.LocationStandard),
	ebiten.KeyF11: namedAt(key.PhysicalF11, key.NamedF11, key.LocationStandard),
	ebiten.KeyF12: namedAt(key.PhysicalF12, key.NamedF12, key.LocationStandard),
}

var modifierKeys = map[ebiten.Key]key.Modifier{
	ebiten.KeyShiftLeft:    key.ModShift,
	ebiten.KeyShiftRight:   key.ModShift,
	ebiten.KeyControlLeft:  key.ModCtrl,
	ebiten.KeyControlRight: key.ModCtrl,
	ebiten.KeyAltLeft:      key.ModAlt,
	ebiten.KeyAltRight:     key.ModAlt,
	ebiten.KeyMetaLeft:     key.ModMeta,
	ebiten.KeyMetaRight:    key.ModMeta,
}

var mouseButtons = map[ebiten.MouseButton]mouse.Button{
	ebiten.MouseButtonLeft:   mouse.ButtonLeft,
	ebiten.MouseButtonRight:  mouse.ButtonRight,
	ebiten.MouseButtonMiddle: mouse.ButtonMiddle,
}

var gamepadButtons = map[ebiten.StandardGamepadButton]gamepad.Button{
	ebiten.StandardGamepadButtonRightBottom:      gamepad.South,
	ebiten.StandardGamepadButtonRightRight:       gamepad.East,
	ebiten.StandardGamepadButtonRightTop:         gamepad.North,
	ebiten.StandardGamepadButtonRightLeft:        gamepad.West,
	ebiten.StandardGamepadButtonFrontTopLeft:     gamepad.LeftTrigger,
	ebiten.StandardGamepadButtonFrontBottomLeft:  gamepad.LeftTrigger2,
	ebiten.StandardGamepadButtonFrontTopRight:    gamepad.RightTrigger,
	ebiten.StandardGamepadButtonFrontBottomRight: gamepad.RightTrigger2,
	ebiten.StandardGamepadButtonCenterLeft:       gamepad.Select,
	ebiten.StandardGamepadButtonCenterRight:      gamepad.Start,
	ebiten.StandardGamepadButtonLeftTop:          gamepad.DPadUp,
	ebiten.StandardGamepadButtonLeftBottom:       gamepad.DPadDown,
	ebiten.StandardGamepadButtonLeftLeft:         gamepad.DPadLeft,
	ebiten.StandardGamepadButtonLeftRight:        gamepad.DPadRight,
}

func modifiersOf(keys map[ebiten.Key]struct{}) key.Modifier {
	var mods key.Modifier
	for k := range keys {
		if m, ok := modifierKeys[k]; ok {
			mods = mods.With(m)
		}
	}
	return mods
}
