package mouse

import (
	"math"
	"testing"
	"time"

	"github.com/dshills/clipevent/internal/input/key"
)

func TestButtonKeyCode(t *testing.T) {
	tests := []struct {
		button Button
		want   key.KeyCode
	}{
		{ButtonUnknown, key.CodeUnknown},
		{ButtonLeft, key.CodeMouseLeft},
		{ButtonRight, key.CodeMouseRight},
		{ButtonMiddle, key.CodeMouseMiddle},
	}
	for _, tt := range tests {
		t.Run(tt.button.String(), func(t *testing.T) {
			if got := tt.button.KeyCode(); got != tt.want {
				t.Errorf("KeyCode() = %v, want %v", got, tt.want)
			}
			if tt.button == ButtonUnknown {
				return
			}
			back, ok := ButtonFromKeyCode(tt.want)
			if !ok || back != tt.button {
				t.Errorf("ButtonFromKeyCode(%v) = %v, %v", tt.want, back, ok)
			}
		})
	}
}

func TestParseButton(t *testing.T) {
	for _, b := range []Button{ButtonUnknown, ButtonLeft, ButtonRight, ButtonMiddle} {
		got, err := ParseButton(b.String())
		if err != nil || got != b {
			t.Errorf("ParseButton(%q) = %v, %v", b.String(), got, err)
		}
	}
	if _, err := ParseButton("back"); err == nil {
		t.Error("ParseButton(back) should fail")
	}
}

func TestWheelDeltaLines(t *testing.T) {
	tests := []struct {
		delta WheelDelta
		want  float64
	}{
		{Lines(3), 3},
		{Lines(-1.5), -1.5},
		{Pixels(100), 1},
		{Pixels(250), 2.5},
		{Pixels(-50), -0.5},
		{Pixels(0), 0},
	}
	for _, tt := range tests {
		if got := tt.delta.Lines(); got != tt.want {
			t.Errorf("%v.Lines() = %g, want %g", tt.delta, got, tt.want)
		}
	}
	if got := Lines(2).Pixels(); got != 200 {
		t.Errorf("Lines(2).Pixels() = %g, want 200", got)
	}
}

func TestWheelDeltaEqual(t *testing.T) {
	nan := math.NaN()
	tests := []struct {
		name string
		a, b WheelDelta
		want bool
	}{
		{"same lines", Lines(1), Lines(1), true},
		{"different lines", Lines(1), Lines(2), false},
		{"pixels equal lines", Pixels(100), Lines(1), true},
		{"lines equal pixels", Lines(1), Pixels(100), true},
		{"fractional cross unit", Pixels(250), Lines(2.5), true},
		{"cross unit mismatch", Pixels(100), Lines(2), false},
		{"nan lines", Lines(nan), Lines(nan), true},
		{"nan cross unit", Lines(nan), Pixels(nan), true},
		{"nan pixels lines", Pixels(nan), Lines(nan), true},
		{"nan vs number", Lines(nan), Lines(1), false},
		{"number vs nan", Pixels(100), Lines(nan), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("%v.Equal(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := tt.b.Equal(tt.a); got != tt.want {
				t.Errorf("symmetric %v.Equal(%v) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestWheelUnitText(t *testing.T) {
	for _, u := range []WheelUnit{UnitLines, UnitPixels} {
		text, _ := u.MarshalText()
		var back WheelUnit
		if err := back.UnmarshalText(text); err != nil || back != u {
			t.Errorf("round trip %v -> %q -> %v (%v)", u, text, back, err)
		}
	}
}

func TestClickTrackerSequence(t *testing.T) {
	tracker := NewClickTracker(400*time.Millisecond, 3)
	base := time.Unix(1000, 0)
	pos := Position{X: 10, Y: 10}

	steps := []struct {
		name   string
		button Button
		pos    Position
		at     time.Duration
		want   int
	}{
		{"first", ButtonLeft, pos, 0, 0},
		{"double", ButtonLeft, pos, 100 * time.Millisecond, 1},
		{"triple", ButtonLeft, Position{X: 11, Y: 11}, 200 * time.Millisecond, 2},
		{"wraps", ButtonLeft, pos, 300 * time.Millisecond, 0},
		{"too slow", ButtonLeft, pos, 800 * time.Millisecond, 0},
		{"too far", ButtonLeft, Position{X: 20, Y: 10}, 900 * time.Millisecond, 0},
		{"other button", ButtonRight, Position{X: 20, Y: 10}, 950 * time.Millisecond, 0},
		{"same button again", ButtonRight, Position{X: 20, Y: 10}, time.Second, 1},
		{"clock skew", ButtonRight, Position{X: 20, Y: 10}, 500 * time.Millisecond, 0},
	}
	for _, s := range steps {
		if got := tracker.Record(s.button, s.pos, base.Add(s.at)); got != s.want {
			t.Fatalf("%s: Record() = %d, want %d", s.name, got, s.want)
		}
	}
	if tracker.LastIndex() != 0 {
		t.Errorf("LastIndex() = %d, want 0", tracker.LastIndex())
	}
}

func TestClickTrackerReset(t *testing.T) {
	tracker := NewClickTracker(0, 0)
	now := time.Unix(5, 0)
	tracker.Record(ButtonLeft, Position{}, now)
	tracker.Reset()
	if got := tracker.Record(ButtonLeft, Position{}, now.Add(time.Millisecond)); got != 0 {
		t.Errorf("Record after Reset = %d, want 0", got)
	}
}

func TestClickName(t *testing.T) {
	if ClickName(0) != "single" || ClickName(1) != "double" || ClickName(2) != "triple" || ClickName(7) != "unknown" {
		t.Error("unexpected click names")
	}
}
