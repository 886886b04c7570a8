package ebiten

import (
	"sort"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/dshills/clipevent/internal/input"
	"github.com/dshills/clipevent/internal/input/gamepad"
	"github.com/dshills/clipevent/internal/input/mouse"
	"github.com/dshills/clipevent/internal/input/text"
)

// Snapshot is the input state of one frame.
type Snapshot struct {
	Focused          bool
	CursorX, CursorY float64
	MouseButtons     []ebiten.MouseButton
	WheelY           float64
	Keys             []ebiten.Key
	Chars            []rune
	GamepadButtons   []ebiten.StandardGamepadButton
}

// Poll reads the current frame's input from Ebitengine. It must be called
// from ebiten.Game.Update.
func Poll() Snapshot {
	s := Snapshot{Focused: ebiten.IsFocused()}

	x, y := ebiten.CursorPosition()
	s.CursorX, s.CursorY = float64(x), float64(y)
	for b := range mouseButtons {
		if ebiten.IsMouseButtonPressed(b) {
			s.MouseButtons = append(s.MouseButtons, b)
		}
	}
	_, s.WheelY = ebiten.Wheel()
	s.Keys = inpututil.AppendPressedKeys(nil)
	s.Chars = ebiten.AppendInputChars(nil)

	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for b := range gamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(id, b) {
				s.GamepadButtons = append(s.GamepadButtons, b)
			}
		}
	}
	return s
}

// Tracker diffs snapshots into player events.
type Tracker struct {
	shortcuts text.Shortcuts

	focused bool
	hasPos  bool
	x, y    float64
	buttons map[mouse.Button]struct{}
	keys    map[ebiten.Key]struct{}
	pads    map[gamepad.Button]struct{}
}

// TrackerOption configures a Tracker.
type TrackerOption func(*Tracker)

// WithShortcuts sets the table used to derive TextControl events.
func WithShortcuts(s text.Shortcuts) TrackerOption {
	return func(t *Tracker) {
		t.shortcuts = s
	}
}

// NewTracker creates a tracker that assumes the window starts focused.
func NewTracker(opts ...TrackerOption) *Tracker {
	t := &Tracker{
		shortcuts: text.DefaultShortcuts(),
		focused:   true,
		buttons:   make(map[mouse.Button]struct{}),
		keys:      make(map[ebiten.Key]struct{}),
		pads:      make(map[gamepad.Button]struct{}),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Update returns the events that turn the previous snapshot into s.
//
// Events are ordered focus, pointer, wheel, keys, text, gamepad. Within a
// group releases precede presses.
func (t *Tracker) Update(s Snapshot) []input.PlayerEvent {
	var out []input.PlayerEvent

	if s.Focused != t.focused {
		t.focused = s.Focused
		if !s.Focused {
			return append(out, t.release()...)
		}
		out = append(out, input.FocusGained{})
	}
	if !s.Focused {
		return out
	}

	if !t.hasPos || s.CursorX != t.x || s.CursorY != t.y {
		out = append(out, input.MouseMove{X: s.CursorX, Y: s.CursorY})
		t.x, t.y, t.hasPos = s.CursorX, s.CursorY, true
	}
	out = t.diffButtons(out, s)
	if s.WheelY != 0 {
		out = append(out, input.MouseWheel{Delta: mouse.Lines(s.WheelY)})
	}
	out = t.diffKeys(out, s)
	for _, ch := range s.Chars {
		if unicode.IsPrint(ch) {
			out = append(out, input.TextInput{Codepoint: ch})
		}
	}
	return t.diffGamepad(out, s)
}

// release forgets every held input. The player learns about it through
// FocusLost.
func (t *Tracker) release() []input.PlayerEvent {
	clear(t.buttons)
	clear(t.keys)
	clear(t.pads)
	return []input.PlayerEvent{input.FocusLost{}}
}

func (t *Tracker) diffButtons(out []input.PlayerEvent, s Snapshot) []input.PlayerEvent {
	now := make(map[mouse.Button]struct{}, len(s.MouseButtons))
	for _, b := range s.MouseButtons {
		if mb, ok := mouseButtons[b]; ok {
			now[mb] = struct{}{}
		}
	}
	for _, b := range []mouse.Button{mouse.ButtonLeft, mouse.ButtonRight, mouse.ButtonMiddle} {
		if _, was := t.buttons[b]; was {
			if _, is := now[b]; !is {
				out = append(out, input.MouseUp{X: s.CursorX, Y: s.CursorY, Button: b})
			}
		}
	}
	for _, b := range []mouse.Button{mouse.ButtonLeft, mouse.ButtonRight, mouse.ButtonMiddle} {
		if _, is := now[b]; is {
			if _, was := t.buttons[b]; !was {
				out = append(out, input.MouseDown{X: s.CursorX, Y: s.CursorY, Button: b})
			}
		}
	}
	t.buttons = now
	return out
}

func (t *Tracker) diffKeys(out []input.PlayerEvent, s Snapshot) []input.PlayerEvent {
	now := make(map[ebiten.Key]struct{}, len(s.Keys))
	for _, k := range s.Keys {
		if _, ok := keyTable[k]; ok {
			now[k] = struct{}{}
		}
	}
	mods := modifiersOf(now)

	for _, k := range sortedKeys(t.keys) {
		if _, is := now[k]; !is {
			out = append(out, input.KeyUp{Key: keyTable[k].descriptor(mods), Modifiers: mods})
		}
	}
	for _, k := range sortedKeys(now) {
		if _, was := t.keys[k]; was {
			continue
		}
		d := keyTable[k].descriptor(mods)
		out = append(out, input.KeyDown{Key: d, Modifiers: mods})
		if code, ok := t.shortcuts.ControlCodeFor(d, mods); ok {
			out = append(out, input.TextControl{Code: code})
		}
	}
	t.keys = now
	return out
}

func (t *Tracker) diffGamepad(out []input.PlayerEvent, s Snapshot) []input.PlayerEvent {
	now := make(map[gamepad.Button]struct{}, len(s.GamepadButtons))
	for _, b := range s.GamepadButtons {
		if gb, ok := gamepadButtons[b]; ok {
			now[gb] = struct{}{}
		}
	}
	for _, b := range gamepad.AllButtons() {
		_, was := t.pads[b]
		_, is := now[b]
		switch {
		case was && !is:
			out = append(out, input.GamepadButtonUp{Button: b})
		case is && !was:
			out = append(out, input.GamepadButtonDown{Button: b})
		}
	}
	t.pads = now
	return out
}

func sortedKeys(m map[ebiten.Key]struct{}) []ebiten.Key {
	keys := make([]ebiten.Key, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
