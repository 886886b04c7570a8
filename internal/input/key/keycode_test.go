package key

import (
	"errors"
	"testing"
)

func TestKeyCodeValues(t *testing.T) {
	tests := []struct {
		code KeyCode
		want uint32
	}{
		{CodeUnknown, 0},
		{CodeMouseLeft, 1},
		{CodeMouseMiddle, 4},
		{CodeBackspace, 8},
		{CodeEnter, 13},
		{CodeEscape, 27},
		{CodeLeft, 37},
		{CodeDelete, 46},
		{CodeNumber0, 48},
		{CodeA, 65},
		{CodeZ, 90},
		{CodeNumpad0, 96},
		{CodeNumpadDivide, 111},
		{CodeF1, 112},
		{CodeF24, 135},
		{CodeQuote, 222},
	}
	for _, tt := range tests {
		if got := tt.code.Value(); got != tt.want {
			t.Errorf("%s.Value() = %d, want %d", tt.code, got, tt.want)
		}
	}
}

func TestKeyCodeFromUint32Identity(t *testing.T) {
	for _, n := range []uint32{0, 13, 65, 222, 999} {
		if got := KeyCodeFromUint32(n).Value(); got != n {
			t.Errorf("KeyCodeFromUint32(%d).Value() = %d", n, got)
		}
	}
	if KeyCodeFromUint32(13) != CodeEnter {
		t.Error("KeyCodeFromUint32(13) should equal CodeEnter")
	}
}

func TestKeyCodeString(t *testing.T) {
	tests := []struct {
		code KeyCode
		want string
	}{
		{CodeEnter, "ENTER"},
		{CodeA, "A"},
		{CodeNumber1, "NUMBER_1"},
		{CodeNumpad3, "NUMPAD_3"},
		{CodeF5, "F5"},
		{CodePageUp, "PAGE_UP"},
		{KeyCode(999), "KeyCode(999)"},
	}
	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("KeyCode(%d).String() = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestKeyCodeFromName(t *testing.T) {
	tests := []struct {
		name string
		want KeyCode
		ok   bool
	}{
		{"ENTER", CodeEnter, true},
		{"enter", CodeEnter, true},
		{"page-up", CodePageUp, true},
		{"number_7", CodeNumber7, true},
		{"F12", CodeF12, true},
		{"q", CodeQ, true},
		{"bogus", CodeUnknown, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := KeyCodeFromName(tt.name)
			if ok != tt.ok || got != tt.want {
				t.Errorf("KeyCodeFromName(%q) = %v, %v; want %v, %v", tt.name, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestKeyCodeTextRoundTrip(t *testing.T) {
	for _, c := range []KeyCode{CodeEnter, CodeA, CodeNumpad9, CodeF24, CodeRightBracket} {
		text, err := c.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", c, err)
		}
		var back KeyCode
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", text, err)
		}
		if back != c {
			t.Errorf("round trip %v -> %q -> %v", c, text, back)
		}
	}

	var c KeyCode
	if err := c.UnmarshalText([]byte("NOPE")); !errors.Is(err, ErrUnknownKeyName) {
		t.Errorf("UnmarshalText(NOPE) err = %v, want ErrUnknownKeyName", err)
	}
}

func TestKeyCodePredicates(t *testing.T) {
	if !CodeMouseRight.IsMouseButton() || CodeBackspace.IsMouseButton() {
		t.Error("IsMouseButton wrong")
	}
	if !CodeM.IsLetter() || CodeNumber1.IsLetter() {
		t.Error("IsLetter wrong")
	}
	if !CodeNumber9.IsDigit() || CodeNumpad9.IsDigit() {
		t.Error("IsDigit wrong")
	}
	if !CodeNumpadAdd.IsNumpad() || CodeF1.IsNumpad() {
		t.Error("IsNumpad wrong")
	}
	if !CodeF16.IsFunctionKey() || CodeNumLock.IsFunctionKey() {
		t.Error("IsFunctionKey wrong")
	}
}
