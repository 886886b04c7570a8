// Package clip classifies the events delivered to interactive objects.
//
// A ClipEvent is a Kind plus the payload that kind carries. Everything a
// dispatcher needs to know about an event is derived from the Kind:
//
//   - Delivery: broadcast (every object), anycast (the first object in
//     front-to-back order that handles it) or targeted (one resolved
//     object, dropped if unhandled)
//   - Flag: the legacy clip-action bit that declares interest in the event
//   - IsButtonEvent: whether on(...) button handlers can receive it
//   - IsKeyEvent: KeyDown, KeyUp and KeyPress
//   - MethodName: the script method invoked for it, such as "onPress"
//
// None of these fail; a kind without a flag or method name reports false.
//
// # Peers
//
// DragOut, DragOver, RollOut and RollOver name the object the pointer moved
// to or came from. The peer is a Handle, a generation-checked index into an
// Arena owned by the display tree. A Handle never keeps its object alive and
// must be resolved through the arena during the dispatch call that carried
// it; once the object is removed the handle stops resolving.
//
// # Key Presses
//
// KeyPress has no method name. Its handlers are registered per key-press
// code (key.ButtonKeyCode), as in on(keyPress "<Left>"), and the event
// carries that code.
package clip
