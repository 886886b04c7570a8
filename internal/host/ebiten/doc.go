// Package ebiten produces player events from an Ebitengine window.
//
// Ebitengine exposes input as state polled once per frame. Poll captures
// that state in a Snapshot and Tracker diffs consecutive snapshots into
// player events, so the translation runs without a window:
//
//	tr := ebiten.NewTracker()
//	events := tr.Update(ebiten.Snapshot{Focused: true, CursorX: 10, CursorY: 20})
//
// Game wires both into an ebiten.Game whose Update emits the events of
// each frame:
//
//	g := ebiten.NewGame(func(ev input.PlayerEvent) {
//	    if out, ok := manager.Process(ev); ok {
//	        router.Dispatch(ctx, out)
//	    }
//	})
//	err := g.Run("clipevent")
//
// Key events are positional: Ebitengine keys map to physical keys and the
// logical key is derived from a US layout. Typed text arrives separately
// through TextInput events.
package ebiten
