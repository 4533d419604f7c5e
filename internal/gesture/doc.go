// Package gesture tracks interactive editing gestures (drag, resize, and
// marquee selection) and resolves them into committed engine operations.
//
// # State machine
//
//	Idle → MarqueeSelecting → Idle
//	Idle → Dragging  → Idle (commit or cancel)
//	Idle → Resizing  → Idle (commit or cancel)
//
// A gesture begins on pointer-down, produces a fresh non-committing
// preview on every update (consulting the snapping resolver), and on
// release submits exactly one operation to the engine, so one gesture is
// one history entry. The document is never mutated mid-gesture. On engine
// failure the gesture is discarded and the prior selection restored;
// Cancel discards preview state unconditionally and never touches the
// document.
//
// Previews and selection are ephemeral machine state, distinct types from
// anything in the document, and are never persisted.
package gesture
