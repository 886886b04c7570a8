// Package record captures player event streams and plays them back.
//
// A Recording is a session of timestamped PlayerEvents stored as YAML:
//
//	version: 1
//	session: 5f0c4c1e-8f5b-4a51-9a67-3b1b1f0c2d11
//	created: 2026-10-19T10:00:00Z
//	events:
//	  - at: 0s
//	    kind: mouse_move
//	    event: {x: 10, y: 20}
//	  - at: 120ms
//	    kind: key_down
//	    event:
//	      key: {physical: KeyA, logical: a, location: Standard}
//	      modifiers: Shift
//
// Recorder is an input.Hook that appends every event a Manager sees.
// Replay feeds a recording back into any sink, optionally at the original
// pace.
package record
