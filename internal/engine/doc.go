// Package engine provides the edit operation engine for Cutline: the
// single owner of the timeline document and the only component that
// mutates it.
//
// # Operations
//
// One entry point exists per edit kind: AddElement, MoveElement,
// TrimElement, SplitElement, DeleteElements, DuplicateElements, plus track
// management and Undo/Redo. Each operation is atomic: it validates
// against a working copy of the document and either commits fully or
// fails with a typed error, leaving the document untouched. Expected
// validation failures are returned, never panicked.
//
// # Ripple edits
//
// Add, move, and delete accept a ripple flag. Ripple edits shift later
// elements on the same track to open or close a gap, preserving relative
// spacing; they never touch other tracks. Ripple deletes close gaps
// independently per track.
//
// # Commit protocol
//
// A committed operation records exactly one history entry and publishes
// exactly one change notification carrying a document snapshot and the
// affected element IDs. Interactive gestures preview candidate operations
// without calling the engine and submit a single operation on release, so
// one gesture is one history entry.
//
// # Ownership
//
// Read accessors return clones. Nothing outside the engine ever holds a
// mutable reference into the document; the rendering and persistence
// collaborators work from notification snapshots.
package engine
