package event

import "github.com/dshills/cutline/internal/timeline"

// Change describes one committed mutation of the timeline document.
// Exactly one Change is published per committed operation; intermediate
// gesture previews are never published.
type Change struct {
	// Label is the human-readable operation name, matching the history
	// entry label ("Move Element", "Split Element", ...).
	Label string

	// Added, Removed, and Updated list the affected element IDs so the
	// rendering collaborator can redraw incrementally.
	Added   []string
	Removed []string
	Updated []string

	// Tracks lists affected track IDs for structural changes
	// (track added or removed).
	Tracks []string

	// Doc is a snapshot of the document after the change. Receivers may
	// read it freely; it is a clone, never the engine's live document.
	Doc *timeline.Document
}
