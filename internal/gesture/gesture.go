package gesture

import (
	"errors"

	"github.com/dshills/cutline/internal/engine"
	"github.com/dshills/cutline/internal/timeline"
	"github.com/dshills/cutline/internal/timeline/snap"
)

// Errors returned by the gesture state machine.
var (
	// ErrGestureActive indicates a gesture begin while another is active.
	ErrGestureActive = errors.New("another gesture is active")

	// ErrNoGesture indicates an update or commit with no active gesture.
	ErrNoGesture = errors.New("no active gesture")
)

// State identifies the machine's current gesture.
type State int

const (
	Idle State = iota
	MarqueeSelecting
	Dragging
	Resizing
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case MarqueeSelecting:
		return "marquee-selecting"
	case Dragging:
		return "dragging"
	case Resizing:
		return "resizing"
	default:
		return "unknown"
	}
}

// Config holds the boundary constants for pixel/time conversion.
type Config struct {
	// SnapThresholdPx is the snap radius in screen pixels.
	SnapThresholdPx float64

	// PixelsPerSecond is the base timeline scale at zoom 1.0.
	PixelsPerSecond float64
}

// DefaultConfig returns the standard gesture configuration.
func DefaultConfig() Config {
	return Config{SnapThresholdPx: 10, PixelsPerSecond: 100}
}

// Machine tracks interactive gesture state and resolves released gestures
// into committed engine operations. Gesture state is ephemeral: it is
// never part of the document and is discarded when a gesture ends or is
// cancelled. The machine is confined to the input-event goroutine; it is
// not synchronized.
type Machine struct {
	eng *engine.Engine
	cfg Config

	state     State
	selection []string
	prior     []string

	drag    dragGesture
	resize  resizeGesture
	marquee marqueeGesture
}

type dragGesture struct {
	elementID   string
	duration    timeline.Ticks
	kind        timeline.ElementKind
	originTrack string
	originStart timeline.Ticks
	preview     DragPreview
	hasPreview  bool
}

type resizeGesture struct {
	elementID  string
	edge       engine.Edge
	origin     timeline.Element
	preview    ResizePreview
	hasPreview bool
}

type marqueeGesture struct {
	anchorTime  timeline.Ticks
	anchorTrack int
	additive    bool
	preview     MarqueePreview
}

// DragPreview is the non-committing result of a drag update, exposed to
// the rendering collaborator. The document is never mutated mid-gesture.
type DragPreview struct {
	TrackID   string
	Start     timeline.Ticks
	End       timeline.Ticks
	SnappedTo snap.Target

	// Valid reports whether a plain (non-ripple) commit at this position
	// would succeed.
	Valid bool
}

// ResizePreview is the non-committing result of a resize update.
type ResizePreview struct {
	Start     timeline.Ticks
	End       timeline.Ticks
	Delta     timeline.Ticks
	SnappedTo snap.Target
	Valid     bool
}

// MarqueePreview is the live state of a marquee selection rectangle in
// track/time space.
type MarqueePreview struct {
	TimeFrom  timeline.Ticks
	TimeTo    timeline.Ticks
	TrackFrom int
	TrackTo   int
	Hits      []string
}

// NewMachine creates a gesture machine submitting to the given engine.
func NewMachine(eng *engine.Engine, cfg Config) *Machine {
	if cfg.SnapThresholdPx <= 0 {
		cfg.SnapThresholdPx = DefaultConfig().SnapThresholdPx
	}
	if cfg.PixelsPerSecond <= 0 {
		cfg.PixelsPerSecond = DefaultConfig().PixelsPerSecond
	}
	return &Machine{eng: eng, cfg: cfg}
}

// State returns the current gesture state.
func (m *Machine) State() State { return m.state }

// Cancel discards any in-progress gesture unconditionally: preview state
// is dropped, the prior selection restored, and the document untouched.
func (m *Machine) Cancel() {
	if m.state == Idle {
		return
	}
	m.selection = m.prior
	m.reset()
}

// reset clears gesture state and returns to Idle.
func (m *Machine) reset() {
	m.state = Idle
	m.prior = nil
	m.drag = dragGesture{}
	m.resize = resizeGesture{}
	m.marquee = marqueeGesture{}
}

// snapInput builds the resolver input for a position on a track.
func (m *Machine) snapInput(tr *timeline.Track, pos, playhead timeline.Ticks, zoom float64, exclude ...string) snap.Input {
	return snap.Input{
		Position:        pos,
		Elements:        tr.Elements,
		Exclude:         exclude,
		Playhead:        playhead,
		ThresholdPx:     m.cfg.SnapThresholdPx,
		Zoom:            zoom,
		PixelsPerSecond: m.cfg.PixelsPerSecond,
	}
}
