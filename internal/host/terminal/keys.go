package terminal

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/clipevent/internal/input/key"
)

type namedKey struct {
	physical key.PhysicalKey
	named    key.NamedKey
}

// Control characters that share a value with a Ctrl+letter (Tab is Ctrl+I,
// Enter is Ctrl+M, ...) are listed here and win over the letter.
var namedKeys = map[tcell.Key]namedKey{
	tcell.KeyEnter:      {key.PhysicalEnter, key.NamedEnter},
	tcell.KeyTab:        {key.PhysicalTab, key.NamedTab},
	tcell.KeyBacktab:    {key.PhysicalTab, key.NamedTab},
	tcell.KeyBackspace:  {key.PhysicalBackspace, key.NamedBackspace},
	tcell.KeyBackspace2: {key.PhysicalBackspace, key.NamedBackspace},
	tcell.KeyEscape:     {key.PhysicalEscape, key.NamedEscape},
	tcell.KeyDelete:     {key.PhysicalDelete, key.NamedDelete},
	tcell.KeyInsert:     {key.PhysicalInsert, key.NamedInsert},
	tcell.KeyHome:       {key.PhysicalHome, key.NamedHome},
	tcell.KeyEnd:        {key.PhysicalEnd, key.NamedEnd},
	tcell.KeyPgUp:       {key.PhysicalPageUp, key.NamedPageUp},
	tcell.KeyPgDn:       {key.PhysicalPageDown, key.NamedPageDown},
	tcell.KeyUp:         {key.PhysicalArrowUp, key.NamedArrowUp},
	tcell.KeyDown:       {key.PhysicalArrowDown, key.NamedArrowDown},
	tcell.KeyLeft:       {key.PhysicalArrowLeft, key.NamedArrowLeft},
	tcell.KeyRight:      {key.PhysicalArrowRight, key.NamedArrowRight},
	tcell.KeyPrint:      {key.PhysicalPrintScreen, key.NamedPrintScreen},
	tcell.KeyPause:      {key.PhysicalPause, key.NamedPause},
	tcell.KeyClear:      {key.PhysicalUnknown, key.NamedClear},
}

// functionKeys is how many of tcell's F keys have a player equivalent.
const functionKeys = 24

// US layout positions of the printable ASCII punctuation, shifted and
// unshifted.
var punctuation = map[rune]key.PhysicalKey{
	' ': key.PhysicalSpace,
	'`': key.PhysicalBackquote, '~': key.PhysicalBackquote,
	'-': key.PhysicalMinus, '_': key.PhysicalMinus,
	'=': key.PhysicalEqual, '+': key.PhysicalEqual,
	'[': key.PhysicalBracketLeft, '{': key.PhysicalBracketLeft,
	']': key.PhysicalBracketRight, '}': key.PhysicalBracketRight,
	'\\': key.PhysicalBackslash, '|': key.PhysicalBackslash,
	';': key.PhysicalSemicolon, ':': key.PhysicalSemicolon,
	'\'': key.PhysicalQuote, '"': key.PhysicalQuote,
	',': key.PhysicalComma, '<': key.PhysicalComma,
	'.': key.PhysicalPeriod, '>': key.PhysicalPeriod,
	'/': key.PhysicalSlash, '?': key.PhysicalSlash,
	')': key.PhysicalDigit0, '!': key.PhysicalDigit1,
	'@': key.PhysicalDigit2, '#': key.PhysicalDigit3,
	'$': key.PhysicalDigit4, '%': key.PhysicalDigit5,
	'^': key.PhysicalDigit6, '&': key.PhysicalDigit7,
	'*': key.PhysicalDigit8, '(': key.PhysicalDigit9,
}

// physicalForRune guesses the key position that types ch on a US layout.
func physicalForRune(ch rune) key.PhysicalKey {
	switch {
	case ch >= 'a' && ch <= 'z':
		return key.PhysicalA + key.PhysicalKey(ch-'a')
	case ch >= 'A' && ch <= 'Z':
		return key.PhysicalA + key.PhysicalKey(ch-'A')
	case ch >= '0' && ch <= '9':
		return key.PhysicalDigit0 + key.PhysicalKey(ch-'0')
	}
	return punctuation[ch]
}

func convertMod(m tcell.ModMask) key.Modifier {
	var mods key.Modifier
	if m&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(key.ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		mods = mods.With(key.ModMeta)
	}
	return mods
}

// describeKey builds the key descriptor for a tcell key event. Terminals
// encode Ctrl+letter as a control character; those are reported as the
// letter with Ctrl held.
func describeKey(e *tcell.EventKey) (key.Descriptor, key.Modifier, bool) {
	mods := convertMod(e.Modifiers())
	k := e.Key()

	if k == tcell.KeyBacktab {
		mods = mods.With(key.ModShift)
	}
	if nk, ok := namedKeys[k]; ok {
		return key.NewDescriptor(nk.physical, key.NamedLogicalKey(nk.named), key.LocationStandard), mods, true
	}
	if k >= tcell.KeyF1 && k < tcell.KeyF1+functionKeys {
		n := k - tcell.KeyF1
		return key.NewDescriptor(key.PhysicalF1+key.PhysicalKey(n), key.NamedLogicalKey(key.NamedF1+key.NamedKey(n)), key.LocationStandard), mods, true
	}

	switch {
	case k == tcell.KeyRune:
		ch := e.Rune()
		if mods.Has(key.ModCtrl) {
			ch = unicode.ToLower(ch)
		}
		return key.NewDescriptor(physicalForRune(ch), key.CharacterKey(ch), key.LocationStandard), mods, true
	case k == tcell.KeyCtrlSpace:
		return key.NewDescriptor(key.PhysicalSpace, key.CharacterKey(' '), key.LocationStandard), mods.With(key.ModCtrl), true
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		ch := 'a' + rune(k-tcell.KeyCtrlA)
		return key.NewDescriptor(physicalForRune(ch), key.CharacterKey(ch), key.LocationStandard), mods.With(key.ModCtrl), true
	}
	return key.Descriptor{}, key.ModNone, false
}
