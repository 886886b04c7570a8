// Package terminal produces player events from a tcell screen.
//
// Terminals report key presses but not releases, and report mouse state
// as a button mask rather than as transitions. Translator turns that into
// the player's event model:
//
//   - every key press becomes KeyDown, an optional TextInput or
//     TextControl, then a synthesized KeyUp
//   - mouse reports are diffed against the previous report and become
//     MouseMove, MouseUp and MouseDown events, in that order
//   - wheel buttons become MouseWheel events of one line
//   - bracketed paste is delivered as TextInput only
//   - focus reports become FocusGained and FocusLost
//
// Terminal coordinates are cells. WithCellSize scales them to the logical
// pixels the display tree hit-tests in.
//
// Source runs the poll loop:
//
//	screen, _ := tcell.NewScreen()
//	_ = screen.Init()
//	src := terminal.NewSource(screen)
//	err := src.Run(ctx, func(ev input.PlayerEvent) {
//	    if out, ok := manager.Process(ev); ok {
//	        router.Dispatch(ctx, out)
//	    }
//	})
package terminal
