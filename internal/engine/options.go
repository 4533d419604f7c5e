package engine

import (
	"github.com/dshills/cutline/internal/media"
	"github.com/dshills/cutline/internal/timeline"
)

// Default configuration values.
const (
	DefaultMaxHistoryEntries = 100
)

// Option configures an Engine during creation.
type Option func(*Engine)

// WithFPS sets the project frame rate for a newly created document.
func WithFPS(fps int) Option {
	return func(e *Engine) {
		if fps > 0 {
			e.fps = fps
		}
	}
}

// WithDocument starts the engine with an existing document (the load
// path). The engine takes a deep copy; the caller's document is not
// aliased.
func WithDocument(doc *timeline.Document) Option {
	return func(e *Engine) {
		if doc != nil {
			e.initDoc = doc.Clone()
		}
	}
}

// WithMaxHistoryEntries bounds the undo stack.
func WithMaxHistoryEntries(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxHistoryEntries = n
		}
	}
}

// WithMediaSource wires the media metadata collaborator. Required for
// NewMediaElement; all other operations work without it.
func WithMediaSource(src media.Source) Option {
	return func(e *Engine) {
		e.media = src
	}
}
