package clip

import (
	"fmt"

	"github.com/dshills/clipevent/internal/swf"
)

// Kind identifies a clip event.
type Kind uint8

// Clip event kinds.
const (
	KindConstruct Kind = iota
	KindData
	// KindDragOut: the pointer left the object while the primary button
	// was held. Carries the object now under the pointer.
	KindDragOut
	// KindDragOver: the pointer entered the object while the primary
	// button was held. Carries the object previously under the pointer.
	KindDragOver
	KindEnterFrame
	KindInitialize
	KindKeyUp
	KindKeyDown
	// KindKeyPress carries the key-press code. Handlers for it are keyed
	// by that code rather than by a method name.
	KindKeyPress
	KindLoad
	KindMouseUp
	KindRightMouseUp
	KindMiddleMouseUp
	// KindMouseUpInside is the targeted form of MouseUp, sent to the
	// object under the pointer.
	KindMouseUpInside
	KindRightMouseUpInside
	KindMiddleMouseUpInside
	KindMouseDown
	KindRightMouseDown
	KindMiddleMouseDown
	KindMouseMove
	// KindMouseMoveInside is the targeted form of MouseMove.
	KindMouseMoveInside
	// KindPress: primary button pressed over the object. Carries the
	// click index.
	KindPress
	KindRightPress
	KindMiddlePress
	KindRollOut
	KindRollOver
	// KindRelease: primary button released over the object that received
	// the press. Carries the index of that press.
	KindRelease
	KindRightRelease
	KindMiddleRelease
	// KindReleaseOutside: primary button released away from the object
	// that received the press.
	KindReleaseOutside
	KindRightReleaseOutside
	KindMiddleReleaseOutside
	KindUnload
	// KindMouseWheel is targeted at the object under the pointer.
	KindMouseWheel
)

const kindCount = KindMouseWheel + 1

// AllKinds returns every kind in declaration order.
func AllKinds() []Kind {
	kinds := make([]Kind, kindCount)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

type kindInfo struct {
	name     string
	delivery Delivery
	flag     swf.ClipEventFlag
	method   string
}

var kindTable = [kindCount]kindInfo{
	KindConstruct:            {"Construct", Broadcast, swf.FlagConstruct, ""},
	KindData:                 {"Data", Broadcast, swf.FlagData, ""},
	KindDragOut:              {"DragOut", Targeted, swf.FlagDragOut, "onDragOut"},
	KindDragOver:             {"DragOver", Targeted, swf.FlagDragOver, "onDragOver"},
	KindEnterFrame:           {"EnterFrame", Broadcast, swf.FlagEnterFrame, "onEnterFrame"},
	KindInitialize:           {"Initialize", Broadcast, swf.FlagInitialize, ""},
	KindKeyUp:                {"KeyUp", Anycast, swf.FlagKeyUp, "onKeyUp"},
	KindKeyDown:              {"KeyDown", Anycast, swf.FlagKeyDown, "onKeyDown"},
	KindKeyPress:             {"KeyPress", Anycast, swf.FlagKeyPress, ""},
	KindLoad:                 {"Load", Broadcast, swf.FlagLoad, "onLoad"},
	KindMouseUp:              {"MouseUp", Anycast, swf.FlagMouseUp, "onMouseUp"},
	KindRightMouseUp:         {"RightMouseUp", Targeted, swf.FlagNone, ""},
	KindMiddleMouseUp:        {"MiddleMouseUp", Targeted, swf.FlagNone, ""},
	KindMouseUpInside:        {"MouseUpInside", Targeted, swf.FlagNone, ""},
	KindRightMouseUpInside:   {"RightMouseUpInside", Targeted, swf.FlagNone, ""},
	KindMiddleMouseUpInside:  {"MiddleMouseUpInside", Targeted, swf.FlagNone, ""},
	KindMouseDown:            {"MouseDown", Anycast, swf.FlagMouseDown, "onMouseDown"},
	KindRightMouseDown:       {"RightMouseDown", Targeted, swf.FlagNone, ""},
	KindMiddleMouseDown:      {"MiddleMouseDown", Targeted, swf.FlagNone, ""},
	KindMouseMove:            {"MouseMove", Anycast, swf.FlagMouseMove, "onMouseMove"},
	KindMouseMoveInside:      {"MouseMoveInside", Targeted, swf.FlagNone, ""},
	KindPress:                {"Press", Targeted, swf.FlagPress, "onPress"},
	KindRightPress:           {"RightPress", Targeted, swf.FlagNone, ""},
	KindMiddlePress:          {"MiddlePress", Targeted, swf.FlagNone, ""},
	KindRollOut:              {"RollOut", Targeted, swf.FlagRollOut, "onRollOut"},
	KindRollOver:             {"RollOver", Targeted, swf.FlagRollOver, "onRollOver"},
	KindRelease:              {"Release", Targeted, swf.FlagRelease, "onRelease"},
	KindRightRelease:         {"RightRelease", Targeted, swf.FlagNone, ""},
	KindMiddleRelease:        {"MiddleRelease", Targeted, swf.FlagNone, ""},
	KindReleaseOutside:       {"ReleaseOutside", Targeted, swf.FlagReleaseOutside, "onReleaseOutside"},
	KindRightReleaseOutside:  {"RightReleaseOutside", Targeted, swf.FlagNone, ""},
	KindMiddleReleaseOutside: {"MiddleReleaseOutside", Targeted, swf.FlagNone, ""},
	KindUnload:               {"Unload", Broadcast, swf.FlagUnload, "onUnload"},
	KindMouseWheel:           {"MouseWheel", Targeted, swf.FlagNone, ""},
}

// String returns the kind name, e.g. "ReleaseOutside".
func (k Kind) String() string {
	if k < kindCount {
		return kindTable[k].name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// KindFromName parses a kind name.
func KindFromName(name string) (Kind, bool) {
	for i := range kindTable {
		if kindTable[i].name == name {
			return Kind(i), true
		}
	}
	return 0, false
}

// Delivery returns how events of this kind reach objects.
func (k Kind) Delivery() Delivery {
	if k < kindCount {
		return kindTable[k].delivery
	}
	return Targeted
}

// Flag returns the legacy clip-action flag for this kind. Kinds with no
// legacy equivalent return false.
func (k Kind) Flag() (swf.ClipEventFlag, bool) {
	if k >= kindCount || kindTable[k].flag == swf.FlagNone {
		return swf.FlagNone, false
	}
	return kindTable[k].flag, true
}

// Propagates reports whether the event is offered to an object's children
// before the object itself. True exactly for the anycast kinds.
func (k Kind) Propagates() bool {
	return k.Delivery() == Anycast
}

// IsButtonEvent reports whether the kind's flag is one of ButtonEventFlags.
func (k Kind) IsButtonEvent() bool {
	flag, ok := k.Flag()
	return ok && flag.Intersects(ButtonEventFlags)
}

// IsKeyEvent reports whether the kind is KeyDown, KeyUp or KeyPress.
func (k Kind) IsKeyEvent() bool {
	switch k {
	case KindKeyDown, KindKeyUp, KindKeyPress:
		return true
	default:
		return false
	}
}

// MethodName returns the script method invoked for this kind.
//
// Construct and Initialize have no script handler. Data has one, onData,
// but it must run before the object's own clip actions, so callers invoke
// it directly instead of through this lookup. KeyPress handlers are keyed
// by key-press code. Every kind without a legacy flag also returns false.
func (k Kind) MethodName() (string, bool) {
	if k >= kindCount || kindTable[k].method == "" {
		return "", false
	}
	return kindTable[k].method, true
}

// HasPeer reports whether events of this kind carry a peer handle.
func (k Kind) HasPeer() bool {
	switch k {
	case KindDragOut, KindDragOver, KindRollOut, KindRollOver:
		return true
	default:
		return false
	}
}

// HasIndex reports whether events of this kind carry a click index.
func (k Kind) HasIndex() bool {
	return k == KindPress || k == KindRelease
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, ok := KindFromName(string(text))
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKind, string(text))
	}
	*k = parsed
	return nil
}

// ButtonEventFlags is the set of flags handled by on(...) button handlers.
const ButtonEventFlags = swf.FlagDragOut | swf.FlagDragOver | swf.FlagKeyPress |
	swf.FlagPress | swf.FlagRollOut | swf.FlagRollOver | swf.FlagRelease |
	swf.FlagReleaseOutside

// ButtonEventMethods lists the script methods of button events.
var ButtonEventMethods = [7]string{
	"onDragOver",
	"onDragOut",
	"onPress",
	"onRelease",
	"onReleaseOutside",
	"onRollOut",
	"onRollOver",
}

// DataMethodName is the method a caller invokes for Data events before
// running the object's clip actions.
const DataMethodName = "onData"
