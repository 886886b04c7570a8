// Package dispatch delivers clip events to the objects of a display tree.
//
// The tree itself belongs to the caller and is reached through the Tree
// interface. Router knows the three delivery modes:
//
//   - Broadcast: every object, parent before children, results ignored.
//   - Anycast: depth first with children before their parent, front to
//     back, stopping at the first object that handles the event.
//   - Targeted: exactly one object. If it does not handle the event the
//     event is dropped.
//
// # Input
//
// Router.Dispatch turns processed input into clip events. A pointer move
// is sent as an anycast MouseMove, followed by RollOut/RollOver (or
// DragOut/DragOver while the primary button is held) when the object
// under the pointer changes. Button presses produce Press, button releases
// Release or ReleaseOutside on the object that took the press. Wheel input
// goes to the hovered object. Key-down and printable text input are sent
// as KeyPress when they have a key-press code.
//
//	tree := dispatch.NewMemoryTree("stage")
//	btn, _ := tree.Add(tree.Root(), &dispatch.Node{
//	    Name:        "button",
//	    Bounds:      dispatch.Rect{Width: 100, Height: 20},
//	    Interactive: true,
//	    Handler:     onButton,
//	})
//	router := dispatch.NewRouter(tree)
//	router.Dispatch(ctx, input.MouseDownInput{X: 5, Y: 5, Button: mouse.ButtonLeft})
//
// # Panics
//
// Handlers run under an Executor that recovers panics. A handler that
// panics is treated as not having handled the event.
package dispatch
