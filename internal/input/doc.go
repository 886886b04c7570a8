// Package input turns host input into the events a player consumes.
//
// # Player Events
//
// Hosts (a terminal, a game window, a recording) report what happened as a
// PlayerEvent: one of KeyDown, KeyUp, MouseMove, MouseDown, MouseUp,
// MouseLeave, MouseWheel, GamepadButtonDown, GamepadButtonUp, TextInput,
// TextControl, Ime, FocusGained or FocusLost. PlayerEvent is a closed set;
// a type switch over the variants is exhaustive.
//
// # Input Events
//
// Manager.Process converts a PlayerEvent into an InputEvent, the form the
// rest of the player works with. Along the way it resolves key descriptors
// to legacy key codes, tracks which keys and mouse buttons are down,
// assigns click indices to presses and maps gamepad buttons onto keys:
//
//	m := input.NewManager(input.WithGamepadMapping(gamepad.DefaultMapping()))
//	if ev, ok := m.Process(input.MouseDown{X: 10, Y: 20, Button: mouse.ButtonLeft}); ok {
//	    router.Dispatch(ctx, ev)
//	}
//
// # Key-Press Codes
//
// ButtonKeyCodeFor resolves the SWF4 key-press code of an input event, used
// to fire on(keyPress) button handlers. Printable text input maps by
// identity; key-down events map through the navigation key table.
//
// # Hooks
//
// Hooks observe or consume player events before the manager processes them,
// in priority order. Recorders and debug loggers are hooks.
package input
