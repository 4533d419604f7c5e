package engine

import (
	"sync"

	"github.com/dshills/cutline/internal/engine/history"
	"github.com/dshills/cutline/internal/event"
	"github.com/dshills/cutline/internal/media"
	"github.com/dshills/cutline/internal/timeline"
)

// Engine is the single owner of the timeline document and the only
// component allowed to mutate it. Collaborators read through the accessors
// (which return clones) and subscribe to change notifications; they never
// hold a mutable reference into engine state.
//
// Every operation is atomic: it either commits fully, recording exactly
// one history entry and publishing exactly one change notification, or it
// fails with a typed error and the document is untouched.
type Engine struct {
	mu sync.RWMutex

	doc      *timeline.Document
	hist     *history.History
	notifier *event.Notifier
	media    media.Source

	// Configuration
	fps               int
	maxHistoryEntries int

	// Initialization
	initDoc *timeline.Document
}

// New creates an engine. Without WithDocument it owns a fresh empty
// document with one main video track; the opening state is recorded as the
// history baseline.
func New(opts ...Option) *Engine {
	e := &Engine{
		fps:               timeline.DefaultFPS,
		maxHistoryEntries: DefaultMaxHistoryEntries,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.initDoc != nil {
		e.doc = e.initDoc
		e.initDoc = nil
	} else {
		e.doc = timeline.NewDocument(e.fps)
	}

	e.hist = history.New(e.maxHistoryEntries)
	e.hist.Record(e.doc, "Open Project")
	e.notifier = event.NewNotifier()
	return e
}

// ============================================================================
// Read API
// ============================================================================

// Document returns a deep copy of the current document.
func (e *Engine) Document() *timeline.Document {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.doc.Clone()
}

// Tracks returns deep copies of all tracks in display order.
func (e *Engine) Tracks() []*timeline.Track {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]*timeline.Track, len(e.doc.Tracks))
	for i, tr := range e.doc.Tracks {
		out[i] = tr.Clone()
	}
	return out
}

// Track returns a deep copy of one track, or nil.
func (e *Engine) Track(id string) *timeline.Track {
	e.mu.RLock()
	defer e.mu.RUnlock()
	tr := e.doc.TrackByID(id)
	if tr == nil {
		return nil
	}
	return tr.Clone()
}

// Element returns a copy of one element, or nil.
func (e *Engine) Element(id string) *timeline.Element {
	e.mu.RLock()
	defer e.mu.RUnlock()
	el := e.doc.ElementByID(id)
	if el == nil {
		return nil
	}
	return el.Clone()
}

// MainTrackID returns the permanent primary track's ID.
func (e *Engine) MainTrackID() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.doc.MainTrackID
}

// Duration returns the document duration.
func (e *Engine) Duration() timeline.Ticks {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.doc.Duration()
}

// FPS returns the project frame rate.
func (e *Engine) FPS() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.doc.FPS
}

// HistoryDepth returns the number of recorded history entries.
func (e *Engine) HistoryDepth() int { return e.hist.Depth() }

// HistoryCursor returns the history cursor position.
func (e *Engine) HistoryCursor() int { return e.hist.Cursor() }

// HistoryEntries returns display info for the history stack.
func (e *Engine) HistoryEntries() []history.EntryInfo { return e.hist.Entries() }

// CanUndo returns true if undo is available.
func (e *Engine) CanUndo() bool { return e.hist.CanUndo() }

// CanRedo returns true if redo is available.
func (e *Engine) CanRedo() bool { return e.hist.CanRedo() }

// ============================================================================
// Notifications
// ============================================================================

// Subscribe registers a change handler. Handlers run synchronously on the
// committing goroutine, once per committed mutation.
func (e *Engine) Subscribe(h event.Handler) event.Subscription {
	return e.notifier.Subscribe(h)
}

// Unsubscribe removes a change handler.
func (e *Engine) Unsubscribe(s event.Subscription) {
	e.notifier.Unsubscribe(s)
}

// ============================================================================
// Undo / Redo
// ============================================================================

// Undo restores the previous committed state. Fails with ErrNothingToUndo
// at the boundary; callers may treat that as a no-op.
func (e *Engine) Undo() error {
	e.mu.Lock()
	restored, err := e.hist.Undo()
	if err != nil {
		e.mu.Unlock()
		return err
	}
	change := diffChange("Undo", e.doc, restored)
	e.doc = restored
	snapshot := restored.Clone()
	e.mu.Unlock()

	change.Doc = snapshot
	e.notifier.Publish(change)
	return nil
}

// Redo re-applies the next undone state. Fails with ErrNothingToRedo at
// the boundary.
func (e *Engine) Redo() error {
	e.mu.Lock()
	restored, err := e.hist.Redo()
	if err != nil {
		e.mu.Unlock()
		return err
	}
	change := diffChange("Redo", e.doc, restored)
	e.doc = restored
	snapshot := restored.Clone()
	e.mu.Unlock()

	change.Doc = snapshot
	e.notifier.Publish(change)
	return nil
}

// ============================================================================
// Commit plumbing
// ============================================================================

// commit installs a fully validated working copy as the current document,
// records one history entry, and publishes one change notification.
// Must be called with e.mu held; it releases the lock.
func (e *Engine) commit(working *timeline.Document, change event.Change) {
	e.doc = working
	e.hist.Record(working, change.Label)
	snapshot := working.Clone()
	e.mu.Unlock()

	change.Doc = snapshot
	e.notifier.Publish(change)
}

// diffChange computes the element IDs added, removed, or updated between
// two documents. Used for undo/redo where the delta is not known up front.
func diffChange(label string, before, after *timeline.Document) event.Change {
	c := event.Change{Label: label}

	beforeEls := elementIndex(before)
	afterEls := elementIndex(after)

	for id, a := range afterEls {
		b, ok := beforeEls[id]
		if !ok {
			c.Added = append(c.Added, id)
			continue
		}
		if *a != *b {
			c.Updated = append(c.Updated, id)
		}
	}
	for id := range beforeEls {
		if _, ok := afterEls[id]; !ok {
			c.Removed = append(c.Removed, id)
		}
	}
	return c
}

func elementIndex(d *timeline.Document) map[string]*timeline.Element {
	idx := make(map[string]*timeline.Element, d.ElementCount())
	for _, tr := range d.Tracks {
		for _, el := range tr.Elements {
			idx[el.ID] = el
		}
	}
	return idx
}
