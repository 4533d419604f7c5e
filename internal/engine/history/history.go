package history

import (
	"errors"
	"sync"
	"time"

	"github.com/dshills/cutline/internal/timeline"
)

// Common errors for history operations. Both are boundary conditions, not
// failures: callers may treat them as a no-op.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// DefaultMaxEntries bounds the history when no capacity is configured.
const DefaultMaxEntries = 100

// EntryInfo describes one history entry for display (undo menus).
type EntryInfo struct {
	Label     string
	Timestamp time.Time
}

// entry holds one immutable document snapshot.
type entry struct {
	snapshot  *timeline.Document
	label     string
	timestamp time.Time
}

// History manages the undo/redo stack of document snapshots. It keeps an
// ordered sequence of entries plus a cursor pointing at the current state.
// Recording a new entry discards everything past the cursor: the redo
// branch does not survive a fresh edit.
type History struct {
	mu sync.Mutex

	entries []*entry
	cursor  int // index of the current entry, -1 when empty

	maxEntries int
}

// New creates a history manager with the given capacity.
func New(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &History{
		cursor:     -1,
		maxEntries: maxEntries,
	}
}

// Record pushes a snapshot of the document as the new current entry,
// truncating any redo entries past the cursor. When capacity is exceeded
// the oldest entry is dropped and the cursor rebased; undo depth simply
// shrinks.
func (h *History) Record(doc *timeline.Document, label string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = h.entries[:h.cursor+1]
	h.entries = append(h.entries, &entry{
		snapshot:  doc.Clone(),
		label:     label,
		timestamp: time.Now(),
	})
	h.cursor++

	if len(h.entries) > h.maxEntries {
		excess := len(h.entries) - h.maxEntries
		h.entries = h.entries[excess:]
		h.cursor -= excess
	}
}

// Undo moves the cursor back one entry and returns a clone of the document
// at the new cursor. Fails with ErrNothingToUndo at the boundary.
func (h *History) Undo() (*timeline.Document, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.cursor <= 0 {
		return nil, ErrNothingToUndo
	}
	h.cursor--
	return h.entries[h.cursor].snapshot.Clone(), nil
}

// Redo moves the cursor forward one entry and returns a clone of the
// document at the new cursor. Fails with ErrNothingToRedo at the boundary.
func (h *History) Redo() (*timeline.Document, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.cursor >= len(h.entries)-1 {
		return nil, ErrNothingToRedo
	}
	h.cursor++
	return h.entries[h.cursor].snapshot.Clone(), nil
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cursor > 0
}

// CanRedo returns true if redo is available.
func (h *History) CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cursor < len(h.entries)-1
}

// Depth returns the number of recorded entries.
func (h *History) Depth() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Cursor returns the index of the current entry, -1 when empty.
func (h *History) Cursor() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cursor
}

// Entries returns display info for all entries in order.
func (h *History) Entries() []EntryInfo {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]EntryInfo, len(h.entries))
	for i, e := range h.entries {
		out[i] = EntryInfo{Label: e.label, Timestamp: e.timestamp}
	}
	return out
}

// Clear removes all history.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = nil
	h.cursor = -1
}

// MaxEntries returns the configured capacity.
func (h *History) MaxEntries() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.maxEntries
}
