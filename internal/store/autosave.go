package store

import (
	"log/slog"
	"sync"
	"time"

	"github.com/dshills/cutline/internal/event"
	"github.com/dshills/cutline/internal/timeline"
)

// DefaultDebounce is the autosave coalescing window.
const DefaultDebounce = 100 * time.Millisecond

// Autosaver subscribes to engine change notifications and writes the
// latest document after a debounce window. Edits arriving inside the
// window coalesce: only the newest state is written. A failed write is
// logged as a warning and retried on the next debounce cycle; the
// in-memory document stays the source of truth.
type Autosaver struct {
	store     Store
	projectID string
	delay     time.Duration
	log       *slog.Logger

	mu      sync.Mutex
	pending *timeline.Document
	timer   *time.Timer
	closed  bool
}

// NewAutosaver creates an autosaver for one project. A zero delay uses
// DefaultDebounce; a nil logger uses slog.Default.
func NewAutosaver(s Store, projectID string, delay time.Duration, log *slog.Logger) *Autosaver {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	if log == nil {
		log = slog.Default()
	}
	return &Autosaver{
		store:     s,
		projectID: projectID,
		delay:     delay,
		log:       log,
	}
}

// HandleChange is the engine subscription target.
func (a *Autosaver) HandleChange(c event.Change) {
	if c.Doc != nil {
		a.Schedule(c.Doc)
	}
}

// Schedule notes a new document state and (re)arms the debounce timer.
func (a *Autosaver) Schedule(doc *timeline.Document) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return
	}
	a.pending = doc
	if a.timer == nil {
		a.timer = time.AfterFunc(a.delay, a.flush)
	} else {
		a.timer.Reset(a.delay)
	}
}

// flush writes the pending state. On failure the state is kept (unless a
// newer one arrived meanwhile) and the timer re-armed for a retry.
func (a *Autosaver) flush() {
	a.mu.Lock()
	doc := a.pending
	a.pending = nil
	a.mu.Unlock()
	if doc == nil {
		return
	}

	if err := a.store.Save(a.projectID, doc); err != nil {
		a.log.Warn("autosave failed, will retry",
			"project", a.projectID,
			"error", err)
		a.mu.Lock()
		if a.pending == nil && !a.closed {
			a.pending = doc
			a.timer.Reset(a.delay)
		}
		a.mu.Unlock()
	}
}

// Flush writes any pending state immediately.
func (a *Autosaver) Flush() error {
	a.mu.Lock()
	doc := a.pending
	a.pending = nil
	if a.timer != nil {
		a.timer.Stop()
	}
	a.mu.Unlock()
	if doc == nil {
		return nil
	}
	return a.store.Save(a.projectID, doc)
}

// Close stops the timer and flushes pending state. The autosaver ignores
// schedules after Close.
func (a *Autosaver) Close() error {
	a.mu.Lock()
	a.closed = true
	a.mu.Unlock()
	return a.Flush()
}
