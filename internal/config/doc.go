// Package config loads player settings.
//
// Settings come from three layers, later layers winning:
//
//  1. Built-in defaults (Default).
//  2. A TOML file.
//  3. Environment variables prefixed with CLIPEVENT_.
//
// # File Format
//
//	[mouse]
//	double_click_time = "500ms"   # a bare integer is milliseconds
//	double_click_distance = 4.0
//
//	[keyboard]
//	command_modifier = "Meta"     # "Ctrl" or "Meta"
//
//	[gamepad.mapping]             # overrides the default mapping per button
//	south = "Enter"
//	select = "Escape"
//
//	[script]
//	call_stack_size = 256
//	registry_size = 5120
//	timeout = "1s"
//
//	[logging]
//	level = "info"
//
// Unknown keys are rejected.
//
// # Environment
//
// CLIPEVENT_<SECTION>_<KEY> sets section.key, for example
// CLIPEVENT_MOUSE_DOUBLE_CLICK_TIME=300ms. Gamepad buttons are set with
// CLIPEVENT_GAMEPAD_MAPPING_<BUTTON>, where underscores in the button name
// stand for dashes (CLIPEVENT_GAMEPAD_MAPPING_LEFT_TRIGGER=Q).
// CLIPEVENT_LOG_LEVEL is accepted as a shorthand for logging.level.
//
// # Live Reload
//
// Watcher reloads the file whenever it changes on disk and hands the new
// settings, or the error, to a callback.
package config
