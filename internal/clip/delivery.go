package clip

import "fmt"

// Delivery is the way an event reaches objects in the display tree.
type Delivery uint8

const (
	// Broadcast events go to every object, regardless of position.
	Broadcast Delivery = iota
	// Anycast events go to the first object in front-to-back render order
	// that handles them, children before their parent.
	Anycast
	// Targeted events go to one resolved object and are dropped if it
	// does not handle them.
	Targeted
)

// String returns the delivery name.
func (d Delivery) String() string {
	switch d {
	case Broadcast:
		return "broadcast"
	case Anycast:
		return "anycast"
	case Targeted:
		return "targeted"
	default:
		return fmt.Sprintf("Delivery(%d)", uint8(d))
	}
}

// Result reports whether an object handled an event.
type Result bool

const (
	// NotHandled lets anycast delivery continue.
	NotHandled Result = false
	// Handled stops anycast delivery.
	Handled Result = true
)

// ResultFromBool converts a handler's boolean return.
func ResultFromBool(handled bool) Result {
	return Result(handled)
}

// IsHandled reports whether the result is Handled.
func (r Result) IsHandled() bool {
	return r == Handled
}

// Or combines results: handled if either is.
func (r Result) Or(other Result) Result {
	return r || other
}

// String returns "handled" or "not handled".
func (r Result) String() string {
	if r {
		return "handled"
	}
	return "not handled"
}
