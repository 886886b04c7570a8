package terminal

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/clipevent/internal/input"
	"github.com/dshills/clipevent/internal/input/key"
	"github.com/dshills/clipevent/internal/input/mouse"
	"github.com/dshills/clipevent/internal/input/text"
)

// Translator converts tcell events into player events. It keeps the
// previous mouse report and paste state, so one Translator serves one
// screen and is not safe for concurrent use.
type Translator struct {
	cellWidth  float64
	cellHeight float64
	shortcuts  text.Shortcuts

	buttons tcell.ButtonMask
	x, y    float64
	hasPos  bool
	pasting bool
}

// Option configures a Translator.
type Option func(*Translator)

// WithCellSize sets the size of one terminal cell in logical pixels.
// Non-positive sizes are ignored.
func WithCellSize(width, height float64) Option {
	return func(t *Translator) {
		if width > 0 {
			t.cellWidth = width
		}
		if height > 0 {
			t.cellHeight = height
		}
	}
}

// WithShortcuts sets the table used to derive TextControl events.
func WithShortcuts(s text.Shortcuts) Option {
	return func(t *Translator) {
		t.shortcuts = s
	}
}

// NewTranslator creates a translator. Cells are one pixel square by
// default.
func NewTranslator(opts ...Option) *Translator {
	t := &Translator{
		cellWidth:  1,
		cellHeight: 1,
		shortcuts:  text.DefaultShortcuts(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Translate returns the player events for ev. Events with no player
// meaning (resize, interrupts) yield nil.
func (t *Translator) Translate(ev tcell.Event) []input.PlayerEvent {
	switch e := ev.(type) {
	case *tcell.EventKey:
		if t.pasting {
			return t.paste(e)
		}
		return t.key(e)
	case *tcell.EventMouse:
		return t.mouse(e)
	case *tcell.EventPaste:
		t.pasting = e.Start()
		return nil
	case *tcell.EventFocus:
		if e.Focused {
			return []input.PlayerEvent{input.FocusGained{}}
		}
		t.buttons = 0
		t.pasting = false
		return []input.PlayerEvent{input.FocusLost{}}
	default:
		return nil
	}
}

func (t *Translator) key(e *tcell.EventKey) []input.PlayerEvent {
	d, mods, ok := describeKey(e)
	if !ok {
		return nil
	}
	out := []input.PlayerEvent{input.KeyDown{Key: d, Modifiers: mods}}
	if code, ok := t.shortcuts.ControlCodeFor(d, mods); ok {
		out = append(out, input.TextControl{Code: code})
	} else if ch, ok := d.Character(); ok && !mods.Has(key.ModCtrl|key.ModAlt|key.ModMeta) && unicode.IsPrint(ch) {
		out = append(out, input.TextInput{Codepoint: ch})
	}
	return append(out, input.KeyUp{Key: d, Modifiers: mods})
}

func (t *Translator) paste(e *tcell.EventKey) []input.PlayerEvent {
	switch e.Key() {
	case tcell.KeyRune:
		return []input.PlayerEvent{input.TextInput{Codepoint: e.Rune()}}
	case tcell.KeyEnter:
		return []input.PlayerEvent{input.TextControl{Code: text.Enter}}
	case tcell.KeyTab:
		return []input.PlayerEvent{input.TextInput{Codepoint: '\t'}}
	default:
		return nil
	}
}

var mouseButtons = [...]struct {
	mask   tcell.ButtonMask
	button mouse.Button
}{
	{tcell.ButtonPrimary, mouse.ButtonLeft},
	{tcell.ButtonSecondary, mouse.ButtonRight},
	{tcell.ButtonMiddle, mouse.ButtonMiddle},
}

func (t *Translator) mouse(e *tcell.EventMouse) []input.PlayerEvent {
	col, row := e.Position()
	x := float64(col) * t.cellWidth
	y := float64(row) * t.cellHeight

	var out []input.PlayerEvent
	if !t.hasPos || x != t.x || y != t.y {
		out = append(out, input.MouseMove{X: x, Y: y})
		t.x, t.y, t.hasPos = x, y, true
	}

	btns := e.Buttons()
	for _, b := range mouseButtons {
		if t.buttons&b.mask != 0 && btns&b.mask == 0 {
			out = append(out, input.MouseUp{X: x, Y: y, Button: b.button})
		}
	}
	for _, b := range mouseButtons {
		if t.buttons&b.mask == 0 && btns&b.mask != 0 {
			out = append(out, input.MouseDown{X: x, Y: y, Button: b.button})
		}
	}
	t.buttons = btns & (tcell.ButtonPrimary | tcell.ButtonSecondary | tcell.ButtonMiddle)

	if btns&tcell.WheelUp != 0 {
		out = append(out, input.MouseWheel{Delta: mouse.Lines(1)})
	}
	if btns&tcell.WheelDown != 0 {
		out = append(out, input.MouseWheel{Delta: mouse.Lines(-1)})
	}
	return out
}

// Pressed reports whether the translator believes b is held.
func (t *Translator) Pressed(b mouse.Button) bool {
	for _, mb := range mouseButtons {
		if mb.button == b {
			return t.buttons&mb.mask != 0
		}
	}
	return false
}
