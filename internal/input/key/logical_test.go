package key

import (
	"errors"
	"testing"
)

func TestLogicalKeyCharacter(t *testing.T) {
	tests := []struct {
		name   string
		key    LogicalKey
		want   rune
		wantOK bool
	}{
		{"unknown", UnknownLogicalKey(), 0, false},
		{"character", CharacterKey('a'), 'a', true},
		{"backspace", NamedLogicalKey(NamedBackspace), 0x08, true},
		{"tab", NamedLogicalKey(NamedTab), 0x09, true},
		{"enter", NamedLogicalKey(NamedEnter), 0x0D, true},
		{"escape", NamedLogicalKey(NamedEscape), 0x1B, true},
		{"delete", NamedLogicalKey(NamedDelete), 0x7F, true},
		{"home", NamedLogicalKey(NamedHome), 0, false},
		{"f1", NamedLogicalKey(NamedF1), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.key.Character()
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Character() = %q, %v; want %q, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestLogicalKeyEquality(t *testing.T) {
	if CharacterKey('a') != CharacterKey('a') {
		t.Error("equal characters should compare equal")
	}
	if CharacterKey('a') == CharacterKey('A') {
		t.Error("different characters should differ")
	}
	if NamedLogicalKey(NamedEnter) == CharacterKey('\r') {
		t.Error("named Enter should differ from the CR character")
	}
	var zero LogicalKey
	if zero != UnknownLogicalKey() || !zero.IsUnknown() {
		t.Error("zero value should be unknown")
	}
}

func TestLogicalKeyTextRoundTrip(t *testing.T) {
	keys := []LogicalKey{
		UnknownLogicalKey(),
		CharacterKey('q'),
		CharacterKey('é'),
		NamedLogicalKey(NamedArrowLeft),
		NamedLogicalKey(NamedF35),
	}
	for _, k := range keys {
		text, err := k.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", k, err)
		}
		var back LogicalKey
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", text, err)
		}
		if back != k {
			t.Errorf("round trip %v -> %q -> %v", k, text, back)
		}
	}

	if _, err := ParseLogicalKey("NotAKey"); !errors.Is(err, ErrUnknownKeyName) {
		t.Errorf("ParseLogicalKey(NotAKey) err = %v", err)
	}
}

func TestNamedKeyNames(t *testing.T) {
	for n := NamedKey(0); n < namedKeyCount; n++ {
		back, ok := NamedKeyFromName(n.String())
		if !ok || back != n {
			t.Errorf("NamedKeyFromName(%q) = %v, %v", n.String(), back, ok)
		}
	}
}

func TestPhysicalKeyNames(t *testing.T) {
	for p := PhysicalKey(0); p < physicalKeyCount; p++ {
		back, ok := PhysicalKeyFromName(p.String())
		if !ok || back != p {
			t.Errorf("PhysicalKeyFromName(%q) = %v, %v", p.String(), back, ok)
		}
	}
	if PhysicalA.String() != "KeyA" || PhysicalNumpadEnter.String() != "NumpadEnter" {
		t.Errorf("unexpected names %q %q", PhysicalA, PhysicalNumpadEnter)
	}
	var zero PhysicalKey
	if zero != PhysicalUnknown {
		t.Error("zero value should be PhysicalUnknown")
	}
}
