// Package script runs Lua event handlers for display objects.
//
// An Engine owns one sandboxed gopher-lua state. Display objects are bound
// to it by handle and appear to Lua as tables:
//
//	btn, _ := engine.Bind(h, "button")
//	engine.DoString(`
//	    function button:onRelease() clicks = (clicks or 0) + 1 end
//	    on_key_press(button, "<Enter>", function(self) submit() end)
//	    add_event_listener(button, "onRollOver", function(self, ev) hover = true end)
//	`)
//
// Engine.Handle has the dispatch handler signature, so an engine can serve
// as the handler of tree nodes directly.
//
// # Handler Slots
//
// Three kinds of handler are supported:
//
//   - Method slots. For event kinds with a method name ("onPress",
//     "onRollOut", ...) the object's field of that name is called with the
//     object as self.
//   - Key-press handlers, registered with on_key_press(obj, code, fn). They
//     are keyed by key-press code, either a number or a name such as "a",
//     "<Left>" or "Enter", never by a method name. KeyPress events run only
//     the handlers registered for their code.
//   - Listeners, registered with add_event_listener(obj, name, fn) and
//     keyed by the same method name string. Kinds without a method name use
//     the kind name ("MouseWheel", "KeyPress"), except Data which uses
//     "onData". Listeners receive the object and an event table.
//
// Data has no method slot of its own in Handle; CallOnData runs the onData
// slot and listeners when a load completes.
//
// # Limits
//
// Every call runs under a timeout enforced through the state's context, so
// runaway loops fail with ErrTimeout. The call stack and registry sizes
// are fixed when the engine is created. Only the base, table, string and
// math libraries are available; file loading and require are removed.
//
// Engine is safe for concurrent use, but handlers run one at a time.
package script
