// Package mouse provides the mouse vocabulary of the input system.
//
// # Buttons
//
// Button names the three buttons a player distinguishes. Each one is also a
// legacy key code (MOUSE_LEFT, MOUSE_RIGHT, MOUSE_MIDDLE), so scripts can
// poll it like a key:
//
//	code := mouse.ButtonRight.KeyCode() // key.CodeMouseRight
//
// # Wheel Deltas
//
// Hosts report wheel movement either in lines or in pixels. WheelDelta keeps
// the unit it was created with and converts on demand, one line being
// WheelScale (100) pixels:
//
//	mouse.Pixels(250).Lines() // 2.5
//	mouse.Pixels(100).Equal(mouse.Lines(1)) // true
//
// # Click Detection
//
// ClickTracker assigns the click index carried by mouse-down events: 0 for a
// single click, 1 for a double click, 2 for a triple click. Presses count
// towards a sequence when they land within the configured time and Manhattan
// distance of the previous press with the same button.
package mouse
