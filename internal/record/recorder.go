package record

import (
	"sync"
	"time"

	"github.com/dshills/clipevent/internal/input"
)

// Recorder captures the events a Manager processes. Register it with the
// Manager's hooks; it never consumes events.
type Recorder struct {
	mu    sync.Mutex
	rec   *Recording
	start time.Time
	now   func() time.Time
}

// RecorderOption configures a Recorder.
type RecorderOption func(*Recorder)

// WithClock sets the time source.
func WithClock(now func() time.Time) RecorderOption {
	return func(r *Recorder) {
		r.now = now
	}
}

// NewRecorder starts a new recording.
func NewRecorder(opts ...RecorderOption) *Recorder {
	r := &Recorder{now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	r.start = r.now()
	r.rec = New(r.start.UTC())
	return r
}

// PreEvent records ev.
func (r *Recorder) PreEvent(ev input.PlayerEvent) bool {
	r.Add(ev)
	return false
}

// PostEvent does nothing.
func (r *Recorder) PostEvent(input.PlayerEvent, input.InputEvent) {}

// Add records ev at the current offset.
func (r *Recorder) Add(ev input.PlayerEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	at := r.now().Sub(r.start)
	if n := len(r.rec.Events); n > 0 && at < r.rec.Events[n-1].At {
		// The clock went backwards; keep offsets monotonic.
		at = r.rec.Events[n-1].At
	}
	r.rec.Events = append(r.rec.Events, Entry{At: at, Event: ev})
}

// Len returns the number of recorded events.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rec.Events)
}

// Recording returns a copy of what has been recorded so far.
func (r *Recorder) Recording() *Recording {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := *r.rec
	out.Events = append([]Entry(nil), r.rec.Events...)
	return &out
}

var _ input.Hook = (*Recorder)(nil)
