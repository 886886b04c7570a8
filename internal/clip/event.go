package clip

import (
	"fmt"

	"github.com/dshills/clipevent/internal/input/key"
	"github.com/dshills/clipevent/internal/input/mouse"
	"github.com/dshills/clipevent/internal/swf"
)

// ClipEvent is an event delivered to an interactive object. Only the
// payload field matching Kind is meaningful:
//
//   - Peer for DragOut, DragOver (the object moved to or from), RollOut
//     and RollOver; the zero Handle means no object
//   - Index for Press and Release
//   - KeyCode for KeyPress
//   - Delta for MouseWheel
type ClipEvent struct {
	Kind    Kind
	Peer    Handle
	Index   int
	KeyCode key.ButtonKeyCode
	Delta   mouse.WheelDelta
}

// New returns an event of a kind that carries no payload.
func New(kind Kind) ClipEvent {
	return ClipEvent{Kind: kind}
}

// DragOut returns a DragOut event towards the object now under the pointer.
func DragOut(to Handle) ClipEvent {
	return ClipEvent{Kind: KindDragOut, Peer: to}
}

// DragOver returns a DragOver event from the object previously under the
// pointer.
func DragOver(from Handle) ClipEvent {
	return ClipEvent{Kind: KindDragOver, Peer: from}
}

// RollOut returns a RollOut event towards the object now under the pointer.
func RollOut(to Handle) ClipEvent {
	return ClipEvent{Kind: KindRollOut, Peer: to}
}

// RollOver returns a RollOver event from the object previously under the
// pointer.
func RollOver(from Handle) ClipEvent {
	return ClipEvent{Kind: KindRollOver, Peer: from}
}

// Press returns a Press event with its click index.
func Press(index int) ClipEvent {
	return ClipEvent{Kind: KindPress, Index: index}
}

// Release returns a Release event with the index of the matching press.
func Release(index int) ClipEvent {
	return ClipEvent{Kind: KindRelease, Index: index}
}

// KeyPress returns a KeyPress event for a key-press code.
func KeyPress(code key.ButtonKeyCode) ClipEvent {
	return ClipEvent{Kind: KindKeyPress, KeyCode: code}
}

// MouseWheel returns a MouseWheel event.
func MouseWheel(delta mouse.WheelDelta) ClipEvent {
	return ClipEvent{Kind: KindMouseWheel, Delta: delta}
}

// Delivery returns how the event reaches objects.
func (e ClipEvent) Delivery() Delivery {
	return e.Kind.Delivery()
}

// Flag returns the legacy clip-action flag, if the kind has one.
func (e ClipEvent) Flag() (swf.ClipEventFlag, bool) {
	return e.Kind.Flag()
}

// Propagates reports whether children see the event before the object.
func (e ClipEvent) Propagates() bool {
	return e.Kind.Propagates()
}

// IsButtonEvent reports whether button handlers can receive the event.
func (e ClipEvent) IsButtonEvent() bool {
	return e.Kind.IsButtonEvent()
}

// IsKeyEvent reports whether the event is KeyDown, KeyUp or KeyPress.
func (e ClipEvent) IsKeyEvent() bool {
	return e.Kind.IsKeyEvent()
}

// MethodName returns the script method invoked for the event.
func (e ClipEvent) MethodName() (string, bool) {
	return e.Kind.MethodName()
}

// Equal compares events, using WheelDelta.Equal for wheel deltas.
func (e ClipEvent) Equal(other ClipEvent) bool {
	if e.Kind != other.Kind {
		return false
	}
	switch {
	case e.Kind.HasPeer():
		return e.Peer == other.Peer
	case e.Kind.HasIndex():
		return e.Index == other.Index
	case e.Kind == KindKeyPress:
		return e.KeyCode == other.KeyCode
	case e.Kind == KindMouseWheel:
		return e.Delta.Equal(other.Delta)
	}
	return true
}

// String renders the event with its payload.
func (e ClipEvent) String() string {
	switch {
	case e.Kind.HasPeer():
		return fmt.Sprintf("%s(%s)", e.Kind, e.Peer)
	case e.Kind.HasIndex():
		return fmt.Sprintf("%s(%d)", e.Kind, e.Index)
	case e.Kind == KindKeyPress:
		return fmt.Sprintf("%s(%s)", e.Kind, e.KeyCode)
	case e.Kind == KindMouseWheel:
		return fmt.Sprintf("%s(%s)", e.Kind, e.Delta)
	}
	return e.Kind.String()
}
