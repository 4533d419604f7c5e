// Package history provides undo/redo for the timeline engine.
//
// The history is a bounded sequence of immutable document snapshots plus a
// cursor. The engine records exactly one entry per committed operation (a
// drag gesture with many live updates still produces a single entry), and
// Undo/Redo walk the cursor, returning snapshot clones.
//
// Recording after an undo truncates the redo branch. When capacity is
// exceeded the oldest entry is dropped and the cursor rebased; the only
// consequence is a shallower undo depth, never an error.
//
// Snapshots are full deep copies. At timeline-document scale that is cheap
// and keeps undo a trivial restore with no inverse-operation bookkeeping.
package history
