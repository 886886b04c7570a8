// Package key provides the key identity model for the input system.
//
// This package defines the types for representing a keyboard key press:
//
//   - KeyCode: the legacy numeric virtual key code seen by scripts
//   - ButtonKeyCode: the SWF4 key-press code used by button handlers
//   - PhysicalKey: the position of the key on the keyboard
//   - LogicalKey: the layout-resolved meaning of the key
//   - Location: which of several duplicate keys was pressed
//   - Descriptor: physical + logical + location for one key press
//   - Modifier: modifier keys held during the press
//
// # Physical and Logical Keys
//
// Pressing E on an ANSI keyboard with the Colemak layout produces physical
// key PhysicalKeyE and logical key Character('f'). Named logical keys such as
// Home or F1 respect the layout but do not distinguish duplicates: there is
// only one logical Shift.
//
// # Legacy Codes
//
// KeyCode values are contractual numbers (ENTER is 13, F1 is 112). The
// ButtonKeyCode set is a different, near-ASCII numbering; converting between
// them goes through ButtonKeyCodeFromKeyCode and never by numeric identity.
package key
