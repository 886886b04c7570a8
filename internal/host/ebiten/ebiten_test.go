package ebiten

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/clipevent/internal/input"
	"github.com/dshills/clipevent/internal/input/gamepad"
	"github.com/dshills/clipevent/internal/input/key"
	"github.com/dshills/clipevent/internal/input/mouse"
	"github.com/dshills/clipevent/internal/input/text"
)

func frame(mutate func(*Snapshot)) Snapshot {
	s := Snapshot{Focused: true, CursorX: 10, CursorY: 20}
	if mutate != nil {
		mutate(&s)
	}
	return s
}

func TestTrackerMouse(t *testing.T) {
	tr := NewTracker()

	assert.Equal(t, []input.PlayerEvent{input.MouseMove{X: 10, Y: 20}}, tr.Update(frame(nil)))
	assert.Empty(t, tr.Update(frame(nil)))

	got := tr.Update(frame(func(s *Snapshot) {
		s.MouseButtons = []ebiten.MouseButton{ebiten.MouseButtonLeft}
	}))
	assert.Equal(t, []input.PlayerEvent{
		input.MouseDown{X: 10, Y: 20, Button: mouse.ButtonLeft},
	}, got)

	got = tr.Update(frame(func(s *Snapshot) {
		s.CursorX = 15
		s.MouseButtons = []ebiten.MouseButton{ebiten.MouseButtonRight}
	}))
	assert.Equal(t, []input.PlayerEvent{
		input.MouseMove{X: 15, Y: 20},
		input.MouseUp{X: 15, Y: 20, Button: mouse.ButtonLeft},
		input.MouseDown{X: 15, Y: 20, Button: mouse.ButtonRight},
	}, got)

	got = tr.Update(frame(func(s *Snapshot) {
		s.CursorX = 15
		s.WheelY = -2
	}))
	assert.Equal(t, []input.PlayerEvent{
		input.MouseUp{X: 15, Y: 20, Button: mouse.ButtonRight},
		input.MouseWheel{Delta: mouse.Lines(-2)},
	}, got)
}

func TestTrackerKeys(t *testing.T) {
	tr := NewTracker()
	tr.Update(frame(nil))

	shiftDesc := key.NewDescriptor(key.PhysicalShiftLeft, key.NamedLogicalKey(key.NamedShift), key.LocationLeft)
	got := tr.Update(frame(func(s *Snapshot) {
		s.Keys = []ebiten.Key{ebiten.KeyShiftLeft}
	}))
	assert.Equal(t, []input.PlayerEvent{
		input.KeyDown{Key: shiftDesc, Modifiers: key.ModShift},
	}, got)

	upperA := key.NewDescriptor(key.PhysicalA, key.CharacterKey('A'), key.LocationStandard)
	got = tr.Update(frame(func(s *Snapshot) {
		s.Keys = []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyA}
		s.Chars = []rune{'A'}
	}))
	assert.Equal(t, []input.PlayerEvent{
		input.KeyDown{Key: upperA, Modifiers: key.ModShift},
		input.TextInput{Codepoint: 'A'},
	}, got)

	got = tr.Update(frame(func(s *Snapshot) {
		s.Keys = []ebiten.Key{ebiten.KeyShiftLeft}
	}))
	assert.Equal(t, []input.PlayerEvent{
		input.KeyUp{Key: upperA, Modifiers: key.ModShift},
	}, got)

	got = tr.Update(frame(nil))
	assert.Equal(t, []input.PlayerEvent{
		input.KeyUp{Key: shiftDesc},
	}, got)
}

func TestTrackerShortcuts(t *testing.T) {
	tests := []struct {
		name      string
		shortcuts text.Shortcuts
		keys      []ebiten.Key
		want      text.ControlCode
	}{
		{"ctrl copy", text.DefaultShortcuts(), []ebiten.Key{ebiten.KeyControlLeft, ebiten.KeyC}, text.Copy},
		{"meta paste", text.Shortcuts{Command: key.ModMeta}, []ebiten.Key{ebiten.KeyMetaLeft, ebiten.KeyV}, text.Paste},
		{"numpad enter", text.DefaultShortcuts(), []ebiten.Key{ebiten.KeyNumpadEnter}, text.Enter},
		{"backspace", text.DefaultShortcuts(), []ebiten.Key{ebiten.KeyBackspace}, text.Backspace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTracker(WithShortcuts(tt.shortcuts))
			tr.Update(frame(nil))

			got := tr.Update(frame(func(s *Snapshot) { s.Keys = tt.keys }))
			assert.Contains(t, got, input.TextControl{Code: tt.want})
		})
	}
}

func TestTrackerFocus(t *testing.T) {
	tr := NewTracker()
	tr.Update(frame(func(s *Snapshot) {
		s.Keys = []ebiten.Key{ebiten.KeyZ}
		s.MouseButtons = []ebiten.MouseButton{ebiten.MouseButtonLeft}
	}))

	got := tr.Update(Snapshot{Focused: false})
	assert.Equal(t, []input.PlayerEvent{input.FocusLost{}}, got)
	assert.Empty(t, tr.Update(Snapshot{Focused: false, Keys: []ebiten.Key{ebiten.KeyQ}}))

	z := key.NewDescriptor(key.PhysicalZ, key.CharacterKey('z'), key.LocationStandard)
	got = tr.Update(frame(func(s *Snapshot) {
		s.Keys = []ebiten.Key{ebiten.KeyZ}
	}))
	assert.Equal(t, []input.PlayerEvent{
		input.FocusGained{},
		input.KeyDown{Key: z},
	}, got)
}

func TestTrackerGamepad(t *testing.T) {
	tr := NewTracker()
	tr.Update(frame(nil))

	got := tr.Update(frame(func(s *Snapshot) {
		s.GamepadButtons = []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonCenterRight,
			ebiten.StandardGamepadButtonRightBottom,
		}
	}))
	assert.Equal(t, []input.PlayerEvent{
		input.GamepadButtonDown{Button: gamepad.South},
		input.GamepadButtonDown{Button: gamepad.Start},
	}, got)

	got = tr.Update(frame(func(s *Snapshot) {
		s.GamepadButtons = []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight}
	}))
	assert.Equal(t, []input.PlayerEvent{input.GamepadButtonUp{Button: gamepad.South}}, got)
}

func TestTrackerIgnoresControlChars(t *testing.T) {
	tr := NewTracker()
	tr.Update(frame(nil))
	got := tr.Update(frame(func(s *Snapshot) { s.Chars = []rune{'\b', 'x'} }))
	assert.Equal(t, []input.PlayerEvent{input.TextInput{Codepoint: 'x'}}, got)
}

func TestGameUpdate(t *testing.T) {
	frames := []Snapshot{
		frame(nil),
		frame(func(s *Snapshot) { s.MouseButtons = []ebiten.MouseButton{ebiten.MouseButtonLeft} }),
	}
	var got []input.PlayerEvent
	g := NewGame(func(ev input.PlayerEvent) { got = append(got, ev) })
	g.poll = func() Snapshot {
		s := frames[0]
		frames = frames[1:]
		return s
	}

	require.NoError(t, g.Update())
	require.NoError(t, g.Update())
	assert.Equal(t, []input.PlayerEvent{
		input.MouseMove{X: 10, Y: 20},
		input.MouseDown{X: 10, Y: 20, Button: mouse.ButtonLeft},
	}, got)

	w, h := g.Layout(640, 480)
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
}

func TestGameFrameFunc(t *testing.T) {
	ticks := 0
	g := NewGame(nil, WithFrameFunc(func() error {
		ticks++
		if ticks == 2 {
			return ebiten.Termination
		}
		return nil
	}))
	g.poll = func() Snapshot { return frame(nil) }

	require.NoError(t, g.Update())
	assert.ErrorIs(t, g.Update(), ebiten.Termination)
	assert.Equal(t, 2, ticks)
}
