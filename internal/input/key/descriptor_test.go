package key

import "testing"

func TestDescriptorEquality(t *testing.T) {
	a := NewDescriptor(PhysicalE, CharacterKey('f'), LocationStandard)
	b := NewDescriptor(PhysicalE, CharacterKey('f'), LocationStandard)
	if a != b {
		t.Error("identical descriptors should be equal")
	}
	tests := []Descriptor{
		NewDescriptor(PhysicalF, CharacterKey('f'), LocationStandard),
		NewDescriptor(PhysicalE, CharacterKey('e'), LocationStandard),
		NewDescriptor(PhysicalE, CharacterKey('f'), LocationNumpad),
	}
	for _, other := range tests {
		if a == other {
			t.Errorf("%v should differ from %v", a, other)
		}
	}
}

func TestDescriptorKeyCode(t *testing.T) {
	tests := []struct {
		name string
		desc Descriptor
		want KeyCode
	}{
		{"colemak e prints f", NewDescriptor(PhysicalE, CharacterKey('f'), LocationStandard), CodeF},
		{"uppercase letter", NewDescriptor(PhysicalA, CharacterKey('A'), LocationStandard), CodeA},
		{"digit row", NewDescriptor(PhysicalDigit3, CharacterKey('3'), LocationStandard), CodeNumber3},
		{"numpad digit", NewDescriptor(PhysicalNumpad3, CharacterKey('3'), LocationNumpad), CodeNumpad3},
		{"numpad plus", NewDescriptor(PhysicalNumpadAdd, CharacterKey('+'), LocationNumpad), CodeNumpadAdd},
		{"numpad enter", NewDescriptor(PhysicalNumpadEnter, NamedLogicalKey(NamedEnter), LocationNumpad), CodeNumpadEnter},
		{"enter", NewDescriptor(PhysicalEnter, NamedLogicalKey(NamedEnter), LocationStandard), CodeEnter},
		{"left shift", NewDescriptor(PhysicalShiftLeft, NamedLogicalKey(NamedShift), LocationLeft), CodeShift},
		{"arrow", NewDescriptor(PhysicalArrowLeft, NamedLogicalKey(NamedArrowLeft), LocationStandard), CodeLeft},
		{"space", NewDescriptor(PhysicalSpace, CharacterKey(' '), LocationStandard), CodeSpace},
		{"semicolon", NewDescriptor(PhysicalSemicolon, CharacterKey(';'), LocationStandard), CodeSemicolon},
		{"shifted digit falls back to position", NewDescriptor(PhysicalDigit1, CharacterKey('!'), LocationStandard), CodeNumber1},
		{"unmapped named key falls back", NewDescriptor(PhysicalF13, NamedLogicalKey(NamedF13), LocationStandard), CodeF13},
		{"non-latin falls back", NewDescriptor(PhysicalQ, CharacterKey('й'), LocationStandard), CodeQ},
		{"unknown", NewDescriptor(PhysicalUnknown, UnknownLogicalKey(), LocationStandard), CodeUnknown},
		{"f35 has no code", NewDescriptor(PhysicalF35, NamedLogicalKey(NamedF35), LocationStandard), CodeUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.desc.KeyCode(); got != tt.want {
				t.Errorf("KeyCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLocationText(t *testing.T) {
	for _, l := range []Location{LocationStandard, LocationLeft, LocationRight, LocationNumpad} {
		text, _ := l.MarshalText()
		var back Location
		if err := back.UnmarshalText(text); err != nil || back != l {
			t.Errorf("round trip %v -> %q -> %v (%v)", l, text, back, err)
		}
	}
	var l Location
	if err := l.UnmarshalText([]byte("Middle")); err == nil {
		t.Error("expected error for unknown location")
	}
}
