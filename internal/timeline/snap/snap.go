package snap

import (
	"github.com/dshills/cutline/internal/timeline"
)

// Target identifies what a position snapped to.
type Target int

const (
	// None means the position was not adjusted.
	None Target = iota

	// ElementStart means the position snapped to another element's start edge.
	ElementStart

	// ElementEnd means the position snapped to another element's end edge.
	ElementEnd

	// Playhead means the position snapped to the playhead.
	Playhead
)

// String returns the target name.
func (t Target) String() string {
	switch t {
	case None:
		return "none"
	case ElementStart:
		return "element-start"
	case ElementEnd:
		return "element-end"
	case Playhead:
		return "playhead"
	default:
		return "unknown"
	}
}

// Input describes one snap query. Elements must be the candidate track's
// elements in track order; cross-track edges are deliberately not
// candidates because ripple and trim semantics are per-track.
type Input struct {
	// Position is the proposed time being adjusted.
	Position timeline.Ticks

	// Elements are the same-track elements whose start/end edges are
	// snap candidates.
	Elements []*timeline.Element

	// Exclude lists element IDs whose edges must be ignored, typically
	// the elements being dragged.
	Exclude []string

	// Playhead is the current playhead time, always a candidate.
	Playhead timeline.Ticks

	// ThresholdPx is the snap radius in screen pixels.
	ThresholdPx float64

	// Zoom is the current zoom factor; with PixelsPerSecond it converts
	// the pixel threshold into a time delta.
	Zoom float64

	// PixelsPerSecond is the base timeline scale at zoom 1.0.
	PixelsPerSecond float64
}

// Result is the outcome of a snap query.
type Result struct {
	// Position is the adjusted time; equal to the input position when
	// Target is None.
	Position timeline.Ticks

	// Target reports what the position snapped to.
	Target Target
}

// Resolve adjusts a proposed position to the nearest candidate within the
// threshold. It is a pure function: no side effects, no memory between
// calls, deterministic for identical inputs.
//
// Tie-break: the smallest absolute time delta wins; on an exact tie an
// element edge beats the playhead, and among element edges the one
// encountered first in track element order wins.
func Resolve(in Input) Result {
	miss := Result{Position: in.Position, Target: None}

	if in.ThresholdPx <= 0 || in.Zoom <= 0 || in.PixelsPerSecond <= 0 {
		return miss
	}
	threshold := timeline.FromSeconds(in.ThresholdPx / (in.Zoom * in.PixelsPerSecond))
	if threshold <= 0 {
		return miss
	}

	best := miss
	bestDelta := threshold + 1

	consider := func(pos timeline.Ticks, target Target) {
		delta := (pos - in.Position).Abs()
		if delta > threshold {
			return
		}
		// Strict comparison keeps the earlier candidate on exact ties.
		if delta < bestDelta {
			best = Result{Position: pos, Target: target}
			bestDelta = delta
		}
	}

	for _, e := range in.Elements {
		if excluded(in.Exclude, e.ID) {
			continue
		}
		consider(e.Start, ElementStart)
		consider(e.End(), ElementEnd)
	}
	consider(in.Playhead, Playhead)

	return best
}

func excluded(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
