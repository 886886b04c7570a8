package record

import (
	"context"
	"fmt"
	"time"
)

// Sink receives replayed events.
type Sink func(e Entry) error

type replayOptions struct {
	realtime bool
	speed    float64
}

// ReplayOption configures Replay.
type ReplayOption func(*replayOptions)

// Realtime paces events by their offsets divided by speed. A speed of 0
// or less means 1.
func Realtime(speed float64) ReplayOption {
	return func(o *replayOptions) {
		o.realtime = true
		if speed <= 0 {
			speed = 1
		}
		o.speed = speed
	}
}

// Replay hands every entry of rec to sink in order. It stops at the
// first sink error or when ctx is done.
func Replay(ctx context.Context, rec *Recording, sink Sink, opts ...ReplayOption) error {
	o := replayOptions{speed: 1}
	for _, opt := range opts {
		opt(&o)
	}

	start := time.Now()
	for i, e := range rec.Events {
		if o.realtime {
			due := start.Add(time.Duration(float64(e.At) / o.speed))
			if wait := time.Until(due); wait > 0 {
				t := time.NewTimer(wait)
				select {
				case <-ctx.Done():
					t.Stop()
					return ctx.Err()
				case <-t.C:
				}
			}
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := sink(e); err != nil {
			return fmt.Errorf("event %d (%s): %w", i, e.Event.Kind(), err)
		}
	}
	return nil
}
