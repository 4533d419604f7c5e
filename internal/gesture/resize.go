package gesture

import (
	"github.com/dshills/cutline/internal/engine"
	"github.com/dshills/cutline/internal/timeline"
	"github.com/dshills/cutline/internal/timeline/snap"
)

// BeginResize starts resizing an element from one of its edges.
func (m *Machine) BeginResize(elementID string, edge engine.Edge) error {
	if m.state != Idle {
		return ErrGestureActive
	}
	el := m.eng.Element(elementID)
	if el == nil {
		return engine.ErrElementNotFound
	}

	m.prior = append([]string(nil), m.selection...)
	m.state = Resizing
	m.resize = resizeGesture{
		elementID: elementID,
		edge:      edge,
		origin:    *el,
	}
	return nil
}

// UpdateResize recomputes the resize preview for a proposed edge
// position. The preview reports the resulting span and whether a commit
// would pass the engine's trim validation.
func (m *Machine) UpdateResize(pos, playhead timeline.Ticks, zoom float64) (ResizePreview, error) {
	if m.state != Resizing {
		return ResizePreview{}, ErrNoGesture
	}
	origin := m.resize.origin

	tr := m.eng.Track(origin.TrackID)
	if tr == nil {
		m.resize.hasPreview = false
		return ResizePreview{Valid: false}, nil
	}

	res := snap.Resolve(m.snapInput(tr, pos, playhead, zoom, origin.ID))

	var edgePos timeline.Ticks
	if m.resize.edge == engine.EdgeStart {
		edgePos = origin.Start
	} else {
		edgePos = origin.End()
	}
	delta := res.Position - edgePos

	p := ResizePreview{
		Delta:     delta,
		SnappedTo: res.Target,
	}

	newStart := origin.Start
	newTrimIn := origin.TrimIn
	newTrimOut := origin.TrimOut
	if m.resize.edge == engine.EdgeStart {
		newStart += delta
		newTrimIn += delta
	} else {
		newTrimOut -= delta
	}
	newDur := origin.SourceDuration - newTrimIn - newTrimOut

	p.Start = newStart
	p.End = newStart + newDur
	p.Valid = newTrimIn >= 0 && newTrimOut >= 0 && newStart >= 0 && newDur > 0 &&
		!tr.Locked && tr.FreeAt(newStart, newDur, origin.ID)

	m.resize.preview = p
	m.resize.hasPreview = true
	return p, nil
}

// CommitResize resolves the resize into a TrimElement operation. On
// failure the gesture is discarded with no document change.
func (m *Machine) CommitResize() error {
	if m.state != Resizing {
		return ErrNoGesture
	}
	resize := m.resize
	prior := m.prior
	m.reset()

	if !resize.hasPreview || resize.preview.Delta == 0 {
		return nil
	}
	if err := m.eng.TrimElement(resize.elementID, resize.edge, resize.preview.Delta); err != nil {
		m.selection = prior
		return err
	}
	return nil
}
