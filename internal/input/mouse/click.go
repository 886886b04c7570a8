package mouse

import "time"

// Default click sequence thresholds.
const (
	DefaultDoubleClickTime     = 500 * time.Millisecond
	DefaultDoubleClickDistance = 4.0

	// maxClickIndex is the highest index before a sequence restarts at 0,
	// so a fourth rapid click counts as a new single click.
	maxClickIndex = 2
)

// ClickTracker assigns click indices to successive presses.
//
// ClickTracker is not safe for concurrent use.
type ClickTracker struct {
	maxTime     time.Duration
	maxDistance float64

	lastPos    Position
	lastTime   time.Time
	lastButton Button
	lastIndex  int
	active     bool
}

// NewClickTracker creates a tracker. Non-positive thresholds select the
// defaults.
func NewClickTracker(maxTime time.Duration, maxDistance float64) *ClickTracker {
	if maxTime <= 0 {
		maxTime = DefaultDoubleClickTime
	}
	if maxDistance <= 0 {
		maxDistance = DefaultDoubleClickDistance
	}
	return &ClickTracker{
		maxTime:     maxTime,
		maxDistance: maxDistance,
	}
}

// Record records a press and returns its click index: 0 for a single click,
// 1 for a double click, 2 for a triple click. A zero timestamp is replaced
// by time.Now.
func (t *ClickTracker) Record(button Button, pos Position, timestamp time.Time) int {
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	if t.continues(button, pos, timestamp) {
		t.lastIndex++
		if t.lastIndex > maxClickIndex {
			t.lastIndex = 0
		}
	} else {
		t.lastIndex = 0
	}

	t.active = true
	t.lastButton = button
	t.lastPos = pos
	t.lastTime = timestamp

	return t.lastIndex
}

// continues checks whether a press extends the current sequence.
func (t *ClickTracker) continues(button Button, pos Position, timestamp time.Time) bool {
	if !t.active || button != t.lastButton {
		return false
	}

	// Clock skew starts a new sequence.
	elapsed := timestamp.Sub(t.lastTime)
	if elapsed < 0 || elapsed > t.maxTime {
		return false
	}

	return pos.Distance(t.lastPos) <= t.maxDistance
}

// Reset forgets the current sequence.
func (t *ClickTracker) Reset() {
	t.active = false
	t.lastIndex = 0
	t.lastTime = time.Time{}
	t.lastPos = Position{}
	t.lastButton = ButtonUnknown
}

// LastIndex returns the index assigned to the most recent press.
func (t *ClickTracker) LastIndex() int {
	return t.lastIndex
}

// ClickName names a click index: "single", "double", "triple".
func ClickName(index int) string {
	switch index {
	case 0:
		return "single"
	case 1:
		return "double"
	case 2:
		return "triple"
	default:
		return "unknown"
	}
}
