package text

import "github.com/dshills/clipevent/internal/input/key"

type granularity uint8

const (
	byChar granularity = iota
	byWord
	byLine
	byDocument
)

var (
	moveLeftCodes    = [...]ControlCode{MoveLeft, MoveLeftWord, MoveLeftLine, MoveLeftDocument}
	moveRightCodes   = [...]ControlCode{MoveRight, MoveRightWord, MoveRightLine, MoveRightDocument}
	selectLeftCodes  = [...]ControlCode{SelectLeft, SelectLeftWord, SelectLeftLine, SelectLeftDocument}
	selectRightCodes = [...]ControlCode{SelectRight, SelectRightWord, SelectRightLine, SelectRightDocument}
)

// Shortcuts maps key presses to control codes.
type Shortcuts struct {
	// Command is the platform command modifier: ModCtrl, or ModMeta on
	// macOS. It selects SelectAll/Copy/Paste/Cut and document movement.
	// On ModMeta platforms, word movement uses Alt and line movement uses
	// Meta+Left/Right.
	Command key.Modifier
}

// DefaultShortcuts returns shortcuts using Ctrl as the command modifier.
func DefaultShortcuts() Shortcuts {
	return Shortcuts{Command: key.ModCtrl}
}

// ControlCodeFor maps a key press using DefaultShortcuts.
func ControlCodeFor(d key.Descriptor, mods key.Modifier) (ControlCode, bool) {
	return DefaultShortcuts().ControlCodeFor(d, mods)
}

func (s Shortcuts) command() key.Modifier {
	if s.Command == key.ModNone {
		return key.ModCtrl
	}
	return s.Command
}

func (s Shortcuts) wordModifier() key.Modifier {
	if s.command() == key.ModMeta {
		return key.ModAlt
	}
	return key.ModCtrl
}

// ControlCodeFor returns the editing command for a key press, if it is one.
func (s Shortcuts) ControlCodeFor(d key.Descriptor, mods key.Modifier) (ControlCode, bool) {
	cmd := s.command()
	word := s.wordModifier()
	shift := mods.Has(key.ModShift)

	switch d.KeyCode() {
	case key.CodeLeft:
		return horizontal(true, s.granularity(mods), shift), true
	case key.CodeRight:
		return horizontal(false, s.granularity(mods), shift), true
	case key.CodeHome:
		if mods.Has(cmd) || cmd == key.ModMeta {
			return horizontal(true, byDocument, shift), true
		}
		return horizontal(true, byLine, shift), true
	case key.CodeEnd:
		if mods.Has(cmd) || cmd == key.ModMeta {
			return horizontal(false, byDocument, shift), true
		}
		return horizontal(false, byLine, shift), true
	case key.CodeUp:
		if mods.Has(cmd) {
			return horizontal(true, byDocument, shift), true
		}
	case key.CodeDown:
		if mods.Has(cmd) {
			return horizontal(false, byDocument, shift), true
		}
	case key.CodeBackspace:
		if mods.Has(word) {
			return BackspaceWord, true
		}
		return Backspace, true
	case key.CodeDelete:
		if mods.Has(word) {
			return DeleteWord, true
		}
		return Delete, true
	case key.CodeEnter, key.CodeNumpadEnter:
		return Enter, true
	case key.CodeA:
		if mods.Only(cmd) {
			return SelectAll, true
		}
	case key.CodeC:
		if mods.Only(cmd) {
			return Copy, true
		}
	case key.CodeV:
		if mods.Only(cmd) {
			return Paste, true
		}
	case key.CodeX:
		if mods.Only(cmd) {
			return Cut, true
		}
	case key.CodeInsert:
		if mods.Only(key.ModShift) {
			return Paste, true
		}
		if mods.Only(key.ModCtrl) {
			return Copy, true
		}
	}
	return 0, false
}

func (s Shortcuts) granularity(mods key.Modifier) granularity {
	if s.command() == key.ModMeta && mods.Has(key.ModMeta) {
		return byLine
	}
	if mods.Has(s.wordModifier()) {
		return byWord
	}
	return byChar
}

func horizontal(left bool, g granularity, selecting bool) ControlCode {
	switch {
	case left && selecting:
		return selectLeftCodes[g]
	case left:
		return moveLeftCodes[g]
	case selecting:
		return selectRightCodes[g]
	default:
		return moveRightCodes[g]
	}
}
