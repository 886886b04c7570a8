package dispatch

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/dshills/clipevent/internal/clip"
)

// HandlerFunc handles a clip event delivered to an object.
type HandlerFunc func(target clip.Handle, ev clip.ClipEvent) clip.Result

// PanicHandler is called when a handler panics. It receives the target,
// the event, the panic value and the stack trace.
type PanicHandler func(target clip.Handle, ev clip.ClipEvent, panicValue any, stack []byte)

// Outcome describes one handler invocation.
type Outcome struct {
	// Result is what the handler returned. A panicking or skipped handler
	// reports NotHandled.
	Result clip.Result

	// Panicked is true if the handler panicked.
	Panicked bool

	// PanicValue is the value passed to panic().
	PanicValue any

	// PanicStack is the stack trace at the point of panic.
	PanicStack []byte

	// Duration is how long the handler took.
	Duration time.Duration

	// Skipped is true if the context was done before the handler ran.
	Skipped bool
}

// Executor runs handlers with panic recovery and timing.
type Executor struct {
	panicHandler PanicHandler
}

// ExecutorOption configures an Executor.
type ExecutorOption func(*Executor)

// WithPanicHandler sets the panic handler.
func WithPanicHandler(h PanicHandler) ExecutorOption {
	return func(e *Executor) {
		e.panicHandler = h
	}
}

// NewExecutor creates an executor.
func NewExecutor(opts ...ExecutorOption) *Executor {
	e := &Executor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Execute runs fn for the target and event.
func (e *Executor) Execute(ctx context.Context, target clip.Handle, ev clip.ClipEvent, fn func() clip.Result) (out Outcome) {
	select {
	case <-ctx.Done():
		return Outcome{Result: clip.NotHandled, Skipped: true}
	default:
	}

	start := time.Now()
	defer func() {
		out.Duration = time.Since(start)

		if r := recover(); r != nil {
			stack := debug.Stack()
			out.Result = clip.NotHandled
			out.Panicked = true
			out.PanicValue = r
			out.PanicStack = stack

			if e.panicHandler != nil {
				func() {
					// A panicking panic handler must not take the dispatch loop down.
					defer func() { _ = recover() }()
					e.panicHandler(target, ev, r, stack)
				}()
			}
		}
	}()

	out.Result = fn()
	return out
}
