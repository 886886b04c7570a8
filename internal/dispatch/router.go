package dispatch

import (
	"context"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/dshills/clipevent/internal/clip"
	"github.com/dshills/clipevent/internal/input"
	"github.com/dshills/clipevent/internal/input/mouse"
	"github.com/dshills/clipevent/internal/logging"
)

// Delivery records one event handed to one object.
type Delivery struct {
	Target   clip.Handle
	Event    clip.ClipEvent
	Result   clip.Result
	Panicked bool
}

// Observer is notified after every delivery.
type Observer func(d Delivery)

// buttonKinds lists the clip event kinds a mouse button produces.
type buttonKinds struct {
	down, up, upInside             clip.Kind
	press, release, releaseOutside clip.Kind
}

var kindsByButton = map[mouse.Button]buttonKinds{
	mouse.ButtonLeft: {
		down: clip.KindMouseDown, up: clip.KindMouseUp, upInside: clip.KindMouseUpInside,
		press: clip.KindPress, release: clip.KindRelease, releaseOutside: clip.KindReleaseOutside,
	},
	mouse.ButtonRight: {
		down: clip.KindRightMouseDown, up: clip.KindRightMouseUp, upInside: clip.KindRightMouseUpInside,
		press: clip.KindRightPress, release: clip.KindRightRelease, releaseOutside: clip.KindRightReleaseOutside,
	},
	mouse.ButtonMiddle: {
		down: clip.KindMiddleMouseDown, up: clip.KindMiddleMouseUp, upInside: clip.KindMiddleMouseUpInside,
		press: clip.KindMiddlePress, release: clip.KindMiddleRelease, releaseOutside: clip.KindMiddleReleaseOutside,
	},
}

type pressState struct {
	target clip.Handle
	index  int
}

// Stats is a snapshot of router counters.
type Stats struct {
	Deliveries uint64
	Handled    uint64
	Panics     uint64
}

// Router delivers clip events into a Tree and derives them from input.
//
// Router is not safe for concurrent use; it runs on the dispatch goroutine.
type Router struct {
	tree      Tree
	exec      *Executor
	log       logrus.FieldLogger
	observers []Observer

	hovered clip.Handle
	pressed map[mouse.Button]pressState

	deliveries atomic.Uint64
	handled    atomic.Uint64
	panics     atomic.Uint64
}

// Option configures a Router.
type Option func(*Router)

// WithLogger sets the logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(r *Router) {
		r.log = logging.Component(l, "dispatch")
	}
}

// WithObserver adds an observer called after every delivery.
func WithObserver(o Observer) Option {
	return func(r *Router) {
		r.observers = append(r.observers, o)
	}
}

// WithExecutor replaces the handler executor.
func WithExecutor(e *Executor) Option {
	return func(r *Router) {
		r.exec = e
	}
}

// NewRouter creates a router over tree.
func NewRouter(tree Tree, opts ...Option) *Router {
	r := &Router{
		tree:    tree,
		log:     logging.Discard(),
		pressed: make(map[mouse.Button]pressState),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.exec == nil {
		r.exec = NewExecutor(WithPanicHandler(r.logPanic))
	}
	return r
}

// Hovered returns the object under the pointer.
func (r *Router) Hovered() clip.Handle {
	return r.hovered
}

// Pressed returns the object that took the current press of b.
func (r *Router) Pressed(b mouse.Button) (clip.Handle, bool) {
	p, ok := r.pressed[b]
	return p.target, ok
}

// Stats returns the delivery counters.
func (r *Router) Stats() Stats {
	return Stats{
		Deliveries: r.deliveries.Load(),
		Handled:    r.handled.Load(),
		Panics:     r.panics.Load(),
	}
}

// Send delivers ev according to its delivery mode. Target is used only
// by targeted events.
func (r *Router) Send(ctx context.Context, ev clip.ClipEvent, target clip.Handle) clip.Result {
	switch ev.Delivery() {
	case clip.Broadcast:
		r.Broadcast(ctx, ev)
		return clip.NotHandled
	case clip.Anycast:
		return r.Anycast(ctx, ev)
	default:
		return r.Target(ctx, target, ev)
	}
}

// Broadcast delivers ev to every object, parents before children.
func (r *Router) Broadcast(ctx context.Context, ev clip.ClipEvent) {
	r.broadcast(ctx, r.tree.Root(), ev)
}

func (r *Router) broadcast(ctx context.Context, h clip.Handle, ev clip.ClipEvent) {
	if ctx.Err() != nil {
		return
	}
	r.deliver(ctx, h, ev)
	for _, c := range r.tree.Children(h) {
		r.broadcast(ctx, c, ev)
	}
}

// Anycast delivers ev depth first, children before their parent, and
// stops at the first object that handles it.
func (r *Router) Anycast(ctx context.Context, ev clip.ClipEvent) clip.Result {
	return r.anycast(ctx, r.tree.Root(), ev)
}

func (r *Router) anycast(ctx context.Context, h clip.Handle, ev clip.ClipEvent) clip.Result {
	for _, c := range r.tree.Children(h) {
		if r.anycast(ctx, c, ev).IsHandled() {
			return clip.Handled
		}
	}
	if ctx.Err() != nil {
		return clip.NotHandled
	}
	return r.deliver(ctx, h, ev)
}

// Target delivers ev to h alone. A zero handle drops the event.
func (r *Router) Target(ctx context.Context, h clip.Handle, ev clip.ClipEvent) clip.Result {
	if h.IsZero() {
		return clip.NotHandled
	}
	return r.deliver(ctx, h, ev)
}

func (r *Router) deliver(ctx context.Context, h clip.Handle, ev clip.ClipEvent) clip.Result {
	out := r.exec.Execute(ctx, h, ev, func() clip.Result {
		return r.tree.Handle(h, ev)
	})
	if out.Skipped {
		return clip.NotHandled
	}

	r.deliveries.Add(1)
	if out.Result.IsHandled() {
		r.handled.Add(1)
	}
	if out.Panicked {
		r.panics.Add(1)
	}

	d := Delivery{Target: h, Event: ev, Result: out.Result, Panicked: out.Panicked}
	for _, o := range r.observers {
		o(d)
	}
	return out.Result
}

func (r *Router) logPanic(target clip.Handle, ev clip.ClipEvent, v any, stack []byte) {
	r.log.WithFields(logrus.Fields{
		"target": target.String(),
		"event":  ev.String(),
		"panic":  v,
	}).Error("handler panicked")
	r.log.Debugf("stack:\n%s", stack)
}

// Dispatch derives clip events from a processed input event and delivers
// them. It reports whether any object handled one of them.
func (r *Router) Dispatch(ctx context.Context, in input.InputEvent) clip.Result {
	r.log.WithField("input", input.DescribeInput(in)).Debug("dispatch")

	switch e := in.(type) {
	case input.MouseMoveInput:
		res := r.Anycast(ctx, clip.New(clip.KindMouseMove))
		res = res.Or(r.updateHover(ctx, e.X, e.Y))
		return res.Or(r.Target(ctx, r.hovered, clip.New(clip.KindMouseMoveInside)))

	case input.MouseDownInput:
		return r.mouseDown(ctx, e)

	case input.MouseUpInput:
		return r.mouseUp(ctx, e)

	case input.MouseLeaveInput:
		return r.setHovered(ctx, clip.Handle{})

	case input.MouseWheelInput:
		return r.Target(ctx, r.hovered, clip.MouseWheel(e.Delta))

	case input.KeyDownInput:
		res := r.Anycast(ctx, clip.New(clip.KindKeyDown))
		return res.Or(r.keyPress(ctx, in))

	case input.KeyUpInput:
		return r.Anycast(ctx, clip.New(clip.KindKeyUp))

	case input.TextInputInput:
		return r.keyPress(ctx, in)

	case input.FocusLostInput:
		clear(r.pressed)
		return clip.NotHandled
	}
	return clip.NotHandled
}

func (r *Router) keyPress(ctx context.Context, in input.InputEvent) clip.Result {
	code, ok := input.ButtonKeyCodeFor(in)
	if !ok {
		return clip.NotHandled
	}
	return r.Anycast(ctx, clip.KeyPress(code))
}

func (r *Router) updateHover(ctx context.Context, x, y float64) clip.Result {
	return r.setHovered(ctx, r.tree.HitTest(x, y))
}

// setHovered moves the hover to next and sends RollOut/RollOver. While
// the primary button is held only the pressed object hears about it, as
// DragOut when the pointer leaves it and DragOver when it comes back.
func (r *Router) setHovered(ctx context.Context, next clip.Handle) clip.Result {
	prev := r.hovered
	if prev == next {
		return clip.NotHandled
	}
	r.hovered = next

	if p, dragging := r.pressed[mouse.ButtonLeft]; dragging {
		switch p.target {
		case prev:
			return r.Target(ctx, prev, clip.DragOut(next))
		case next:
			return r.Target(ctx, next, clip.DragOver(prev))
		}
		return clip.NotHandled
	}
	res := r.Target(ctx, prev, clip.RollOut(next))
	return res.Or(r.Target(ctx, next, clip.RollOver(prev)))
}

func (r *Router) mouseDown(ctx context.Context, e input.MouseDownInput) clip.Result {
	kinds, ok := kindsByButton[e.Button]
	if !ok {
		return clip.NotHandled
	}
	res := r.updateHover(ctx, e.X, e.Y)

	res = res.Or(r.Send(ctx, clip.New(kinds.down), r.tree.Root()))

	if r.hovered.IsZero() {
		return res
	}
	r.pressed[e.Button] = pressState{target: r.hovered, index: e.Index}
	press := clip.ClipEvent{Kind: kinds.press, Index: e.Index}
	return res.Or(r.Target(ctx, r.hovered, press))
}

func (r *Router) mouseUp(ctx context.Context, e input.MouseUpInput) clip.Result {
	kinds, ok := kindsByButton[e.Button]
	if !ok {
		return clip.NotHandled
	}
	p, wasPressed := r.pressed[e.Button]
	delete(r.pressed, e.Button)

	res := r.Send(ctx, clip.New(kinds.up), r.tree.Root())

	over := r.tree.HitTest(e.X, e.Y)
	res = res.Or(r.Target(ctx, over, clip.New(kinds.upInside)))

	if wasPressed {
		if over == p.target {
			res = res.Or(r.Target(ctx, p.target, clip.ClipEvent{Kind: kinds.release, Index: p.index}))
		} else {
			res = res.Or(r.Target(ctx, p.target, clip.New(kinds.releaseOutside)))
		}
	}

	// A drag released away from the pressed object rolls onto whatever
	// is under the pointer now.
	if wasPressed && e.Button == mouse.ButtonLeft && over != p.target {
		r.hovered = over
		return res.Or(r.Target(ctx, over, clip.RollOver(p.target)))
	}
	return res.Or(r.setHovered(ctx, over))
}
