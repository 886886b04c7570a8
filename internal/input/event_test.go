package input

import (
	"errors"
	"testing"

	"github.com/dshills/clipevent/internal/input/gamepad"
	"github.com/dshills/clipevent/internal/input/key"
	"github.com/dshills/clipevent/internal/input/mouse"
	"github.com/dshills/clipevent/internal/input/text"
)

func allPlayerEvents() []PlayerEvent {
	return []PlayerEvent{
		KeyDown{Key: key.NewDescriptor(key.PhysicalA, key.CharacterKey('a'), key.LocationStandard)},
		KeyUp{Key: key.NewDescriptor(key.PhysicalA, key.CharacterKey('a'), key.LocationStandard)},
		MouseMove{X: 1, Y: 2},
		MouseUp{X: 1, Y: 2, Button: mouse.ButtonLeft},
		MouseDown{X: 1, Y: 2, Button: mouse.ButtonLeft},
		MouseLeave{},
		MouseWheel{Delta: mouse.Lines(1)},
		GamepadButtonDown{Button: gamepad.South},
		GamepadButtonUp{Button: gamepad.South},
		TextInput{Codepoint: 'x'},
		TextControl{Code: text.Paste},
		Ime{Event: text.Commit("x")},
		FocusGained{},
		FocusLost{},
	}
}

func TestPlayerEventKinds(t *testing.T) {
	events := allPlayerEvents()
	if len(events) != int(eventKindCount) {
		t.Fatalf("have %d events, want %d", len(events), eventKindCount)
	}
	for i, ev := range events {
		if got := ev.Kind(); got != EventKind(i) {
			t.Errorf("%T.Kind() = %v, want %v", ev, got, EventKind(i))
		}
		if Describe(ev) == "" {
			t.Errorf("Describe(%T) is empty", ev)
		}
	}
}

func TestEventKindText(t *testing.T) {
	for k := EventKind(0); k < eventKindCount; k++ {
		text, _ := k.MarshalText()
		var back EventKind
		if err := back.UnmarshalText(text); err != nil || back != k {
			t.Errorf("round trip %v -> %q -> %v (%v)", k, text, back, err)
		}
	}
	if _, err := ParseEventKind("key_press"); !errors.Is(err, ErrUnknownEventKind) {
		t.Errorf("ParseEventKind(key_press) err = %v", err)
	}
}

func TestButtonKeyCodeFor(t *testing.T) {
	tests := []struct {
		name string
		ev   InputEvent
		want key.ButtonKeyCode
		ok   bool
	}{
		{"text a", TextInputInput{Codepoint: 'a'}, key.ButtonA, true},
		{"text space", TextInputInput{Codepoint: ' '}, key.ButtonSpace, true},
		{"text tilde", TextInputInput{Codepoint: '~'}, key.ButtonTilde, true},
		{"text A", TextInputInput{Codepoint: 'A'}, key.ButtonUppercaseA, true},
		{"text control char", TextInputInput{Codepoint: 0x1F}, key.ButtonUnknown, false},
		{"text del", TextInputInput{Codepoint: 0x7F}, key.ButtonUnknown, false},
		{"text non-ascii", TextInputInput{Codepoint: 'é'}, key.ButtonUnknown, false},
		{"key enter", KeyDownInput{KeyCode: key.CodeEnter}, key.ButtonReturn, true},
		{"key left", KeyDownInput{KeyCode: key.CodeLeft}, key.ButtonLeft, true},
		{"key f1", KeyDownInput{KeyCode: key.CodeF1}, key.ButtonUnknown, false},
		{"key a", KeyDownInput{KeyCode: key.CodeA}, key.ButtonUnknown, false},
		{"key up event", KeyUpInput{KeyCode: key.CodeEnter}, key.ButtonUnknown, false},
		{"mouse", MouseDownInput{Button: mouse.ButtonLeft}, key.ButtonUnknown, false},
		{"nil", nil, key.ButtonUnknown, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ButtonKeyCodeFor(tt.ev)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ButtonKeyCodeFor() = %v, %v; want %v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}
