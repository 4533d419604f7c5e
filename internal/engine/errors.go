package engine

import (
	"errors"

	"github.com/dshills/cutline/internal/engine/history"
	"github.com/dshills/cutline/internal/timeline"
)

// Errors returned by engine operations. Every failure leaves the document
// exactly as it was; no operation partially applies.
var (
	// ErrIncompatibleTrack indicates an element kind cannot live on the
	// target track kind, or a cross-kind move was attempted.
	ErrIncompatibleTrack = errors.New("element incompatible with track kind")

	// ErrOverlap indicates a non-ripple placement collides with an
	// existing element.
	ErrOverlap = errors.New("placement overlaps existing element")

	// ErrInvalidTrim indicates a trim delta would produce a non-positive
	// duration or exceed the source bounds.
	ErrInvalidTrim = errors.New("trim out of bounds")

	// ErrOutOfRange indicates a split point outside the element's span.
	ErrOutOfRange = errors.New("position out of range")

	// ErrTrackLocked indicates an edit targeted a locked track.
	ErrTrackLocked = errors.New("track is locked")

	// ErrMediaUnknown indicates a media reference is not registered with
	// the configured media source.
	ErrMediaUnknown = errors.New("unknown media reference")
)

// Boundary and lookup errors re-exported for callers of the facade.
var (
	ErrNothingToUndo   = history.ErrNothingToUndo
	ErrNothingToRedo   = history.ErrNothingToRedo
	ErrTrackNotFound   = timeline.ErrTrackNotFound
	ErrElementNotFound = timeline.ErrElementNotFound
	ErrMainTrack       = timeline.ErrMainTrack
)
