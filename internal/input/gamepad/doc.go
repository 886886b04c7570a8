// Package gamepad provides gamepad buttons and their mapping onto keys.
//
// Button names use a kebab-case vocabulary ("south", "left-trigger-2",
// "dpad-up") so they can appear in configuration files:
//
//	b, err := gamepad.ParseButton("dpad-left")
//	if errors.Is(err, gamepad.ErrUnknownButton) { ... }
//
// A Mapping translates buttons into key codes so content written for the
// keyboard can be played with a controller.
package gamepad
