package notify

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/dshills/clipevent/internal/logging"
)

// Sink receives notifications.
type Sink func(n PlayerNotification)

// Subscription represents an active sink registration.
type Subscription struct {
	id       uint64
	notifier *Notifier
}

// Unsubscribe removes this subscription. Calling it more than once is safe.
func (s *Subscription) Unsubscribe() {
	if s != nil && s.notifier != nil {
		s.notifier.unsubscribe(s.id)
	}
}

// Notifier fans notifications out to subscribed sinks.
type Notifier struct {
	mu     sync.RWMutex
	sinks  map[uint64]Sink
	order  []uint64
	nextID uint64

	async  bool
	buffer chan PlayerNotification
	done   chan struct{}
	wg     sync.WaitGroup
	closed bool

	log logrus.FieldLogger
}

// Option configures a Notifier.
type Option func(*Notifier)

// WithAsync delivers notifications from a background goroutine through a
// buffer of the given size.
func WithAsync(bufferSize int) Option {
	return func(n *Notifier) {
		if bufferSize > 0 {
			n.async = true
			n.buffer = make(chan PlayerNotification, bufferSize)
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(n *Notifier) {
		n.log = l
	}
}

// New creates a Notifier.
func New(opts ...Option) *Notifier {
	n := &Notifier{
		sinks: make(map[uint64]Sink),
		done:  make(chan struct{}),
		log:   logging.Discard(),
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.async {
		n.wg.Add(1)
		go n.processAsync()
	}
	return n
}

// Subscribe registers a sink. Sinks are called in subscription order.
func (n *Notifier) Subscribe(sink Sink) *Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	n.sinks[id] = sink
	n.order = append(n.order, id)

	return &Subscription{id: id, notifier: n}
}

// Notify delivers a notification. After Close it is a no-op.
func (n *Notifier) Notify(note PlayerNotification) {
	n.mu.RLock()
	closed := n.closed
	n.mu.RUnlock()
	if closed || note == nil {
		return
	}

	n.log.WithField("notification", Describe(note)).Debug("notify")

	if n.async {
		select {
		case n.buffer <- note:
		case <-n.done:
		}
		return
	}
	n.deliver(note)
}

// Close shuts down the notifier, draining pending async notifications.
// It is safe to call Close multiple times.
func (n *Notifier) Close() {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return
	}
	n.closed = true
	n.mu.Unlock()

	close(n.done)
	n.wg.Wait()
}

func (n *Notifier) unsubscribe(id uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if _, ok := n.sinks[id]; !ok {
		return
	}
	delete(n.sinks, id)
	for i, oid := range n.order {
		if oid == id {
			n.order = append(n.order[:i], n.order[i+1:]...)
			break
		}
	}
}

func (n *Notifier) deliver(note PlayerNotification) {
	n.mu.RLock()
	sinks := make([]Sink, 0, len(n.order))
	for _, id := range n.order {
		sinks = append(sinks, n.sinks[id])
	}
	n.mu.RUnlock()

	// Sinks run outside the lock so they may unsubscribe.
	for _, sink := range sinks {
		sink(note)
	}
}

func (n *Notifier) processAsync() {
	defer n.wg.Done()

	for {
		select {
		case note := <-n.buffer:
			n.deliver(note)
		case <-n.done:
			for {
				select {
				case note := <-n.buffer:
					n.deliver(note)
				default:
					return
				}
			}
		}
	}
}
