package swf

import (
	"errors"
	"testing"
)

func TestFlagBitValues(t *testing.T) {
	tests := []struct {
		flag ClipEventFlag
		want uint32
	}{
		{FlagLoad, 1 << 0},
		{FlagEnterFrame, 1 << 1},
		{FlagUnload, 1 << 2},
		{FlagMouseMove, 1 << 3},
		{FlagMouseDown, 1 << 4},
		{FlagMouseUp, 1 << 5},
		{FlagKeyDown, 1 << 6},
		{FlagKeyUp, 1 << 7},
		{FlagData, 1 << 8},
		{FlagInitialize, 1 << 9},
		{FlagPress, 1 << 10},
		{FlagRelease, 1 << 11},
		{FlagReleaseOutside, 1 << 12},
		{FlagRollOver, 1 << 13},
		{FlagRollOut, 1 << 14},
		{FlagDragOver, 1 << 15},
		{FlagDragOut, 1 << 16},
		{FlagKeyPress, 1 << 17},
		{FlagConstruct, 1 << 18},
	}

	for _, tt := range tests {
		t.Run(tt.flag.String(), func(t *testing.T) {
			if uint32(tt.flag) != tt.want {
				t.Errorf("%s = 0x%x, want 0x%x", tt.flag, uint32(tt.flag), tt.want)
			}
			if !AllFlags.Has(tt.flag) {
				t.Errorf("AllFlags missing %s", tt.flag)
			}
		})
	}

	if AllFlags != 0x7FFFF {
		t.Errorf("AllFlags = 0x%x, want 0x7ffff", uint32(AllFlags))
	}
}

func TestFlagString(t *testing.T) {
	tests := []struct {
		flag ClipEventFlag
		want string
	}{
		{FlagNone, "None"},
		{FlagPress, "Press"},
		{FlagPress | FlagRelease, "Press|Release"},
		{FlagLoad | 1<<20, "Load|0x100000"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.flag.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFlagSetOperations(t *testing.T) {
	set := FlagPress | FlagRelease

	if !set.Has(FlagPress) {
		t.Error("Has(Press) = false")
	}
	if set.Has(FlagPress | FlagKeyUp) {
		t.Error("Has(Press|KeyUp) = true")
	}
	if !set.Intersects(FlagPress | FlagKeyUp) {
		t.Error("Intersects(Press|KeyUp) = false")
	}
	if set.Intersects(FlagKeyUp) {
		t.Error("Intersects(KeyUp) = true")
	}
	if !FlagNone.IsEmpty() {
		t.Error("FlagNone.IsEmpty() = false")
	}
	if ClipEventFlag(1 << 19).IsValid() {
		t.Error("reserved bit reported valid")
	}
	if got := ClipEventFlag(1<<19 | 1).Truncate(); got != FlagLoad {
		t.Errorf("Truncate() = %s, want Load", got)
	}
}

func TestFlagFromName(t *testing.T) {
	f, ok := FlagFromName("releaseoutside")
	if !ok || f != FlagReleaseOutside {
		t.Errorf("FlagFromName(releaseoutside) = %s, %v", f, ok)
	}
	if _, ok := FlagFromName("bogus"); ok {
		t.Error("FlagFromName(bogus) ok = true")
	}
}

func TestParseClipEventFlags(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		version  uint8
		want     ClipEventFlag
		consumed int
		wantErr  error
	}{
		{"swf5 load", []byte{0x01, 0x00}, 5, FlagLoad, 2, nil},
		{"swf5 press release", []byte{0x00, 0x0C}, 5, FlagPress | FlagRelease, 2, nil},
		{"swf6 construct", []byte{0x00, 0x00, 0x04, 0x00}, 6, FlagConstruct, 4, nil},
		{"swf6 reserved dropped", []byte{0x00, 0x00, 0xF8, 0xFF}, 6, FlagNone, 4, nil},
		{"swf6 drag out keypress", []byte{0x00, 0x00, 0x03, 0x00}, 8, FlagDragOut | FlagKeyPress, 4, nil},
		{"short swf5", []byte{0x01}, 5, FlagNone, 0, ErrShortBuffer},
		{"short swf6", []byte{0x01, 0x00}, 6, FlagNone, 0, ErrShortBuffer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, n, err := ParseClipEventFlags(tt.data, tt.version)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("flags = %s, want %s", got, tt.want)
			}
			if n != tt.consumed {
				t.Errorf("consumed = %d, want %d", n, tt.consumed)
			}
		})
	}
}

func TestAppendClipEventFlags(t *testing.T) {
	f := FlagKeyUp | FlagDragOver | FlagConstruct

	buf := AppendClipEventFlags(nil, f, 6)
	got, _, err := ParseClipEventFlags(buf, 6)
	if err != nil {
		t.Fatal(err)
	}
	if got != f {
		t.Errorf("swf6 = %s, want %s", got, f)
	}

	buf = AppendClipEventFlags(nil, f, 5)
	if len(buf) != 2 {
		t.Fatalf("swf5 len = %d, want 2", len(buf))
	}
	got, _, _ = ParseClipEventFlags(buf, 5)
	if got != FlagKeyUp|FlagDragOver {
		t.Errorf("swf5 = %s, want KeyUp|DragOver", got)
	}
}
