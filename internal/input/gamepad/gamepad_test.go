package gamepad

import (
	"errors"
	"testing"

	"github.com/dshills/clipevent/internal/input/key"
)

func TestParseButton(t *testing.T) {
	tests := []struct {
		in   string
		want Button
	}{
		{"south", South},
		{"east", East},
		{"north", North},
		{"west", West},
		{"left-trigger", LeftTrigger},
		{"left-trigger-2", LeftTrigger2},
		{"right-trigger", RightTrigger},
		{"right-trigger-2", RightTrigger2},
		{"select", Select},
		{"start", Start},
		{"dpad-up", DPadUp},
		{"dpad-down", DPadDown},
		{"dpad-left", DPadLeft},
		{"dpad-right", DPadRight},
	}
	if len(tests) != len(AllButtons()) {
		t.Fatalf("table covers %d buttons, want %d", len(tests), len(AllButtons()))
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseButton(tt.in)
			if err != nil {
				t.Fatalf("ParseButton(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseButton(%q) = %v, want %v", tt.in, got, tt.want)
			}
			if got.String() != tt.in {
				t.Errorf("String() = %q, want %q", got.String(), tt.in)
			}
		})
	}
}

func TestParseButtonError(t *testing.T) {
	for _, in := range []string{"", "South", "a", "dpad_up", "left-trigger-3", " start"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseButton(in)
			if err == nil {
				t.Fatalf("ParseButton(%q) succeeded", in)
			}
			var pe *ParseError
			if !errors.As(err, &pe) || pe.Input != in {
				t.Errorf("error %v is not a *ParseError for %q", err, in)
			}
			if !errors.Is(err, ErrUnknownButton) {
				t.Errorf("error %v does not match ErrUnknownButton", err)
			}
		})
	}
}

func TestButtonUnmarshalText(t *testing.T) {
	var b Button
	if err := b.UnmarshalText([]byte("west")); err != nil || b != West {
		t.Errorf("UnmarshalText(west) = %v, %v", b, err)
	}
	if err := b.UnmarshalText([]byte("x")); !errors.Is(err, ErrUnknownButton) {
		t.Errorf("UnmarshalText(x) err = %v", err)
	}
}

func TestIsDPad(t *testing.T) {
	for _, b := range AllButtons() {
		want := b == DPadUp || b == DPadDown || b == DPadLeft || b == DPadRight
		if b.IsDPad() != want {
			t.Errorf("%v.IsDPad() = %v", b, b.IsDPad())
		}
	}
}

func TestParseMapping(t *testing.T) {
	m, err := ParseMapping(map[string]string{"south": "SPACE", "dpad-up": "up"})
	if err != nil {
		t.Fatalf("ParseMapping error: %v", err)
	}
	if c, ok := m.KeyCode(South); !ok || c != key.CodeSpace {
		t.Errorf("south -> %v, %v", c, ok)
	}
	if c, ok := m.KeyCode(DPadUp); !ok || c != key.CodeUp {
		t.Errorf("dpad-up -> %v, %v", c, ok)
	}
	if _, ok := m.KeyCode(North); ok {
		t.Error("north should be unmapped")
	}

	if _, err := ParseMapping(map[string]string{"triangle": "A"}); !errors.Is(err, ErrUnknownButton) {
		t.Errorf("bad button err = %v", err)
	}
	if _, err := ParseMapping(map[string]string{"south": "NOPE"}); !errors.Is(err, key.ErrUnknownKeyName) {
		t.Errorf("bad key err = %v", err)
	}
}

func TestDefaultMappingClone(t *testing.T) {
	m := DefaultMapping()
	c := m.Clone()
	c[North] = key.CodeA
	if _, ok := m[North]; ok {
		t.Error("Clone shares storage with the original")
	}
}
