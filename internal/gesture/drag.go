package gesture

import (
	"github.com/dshills/cutline/internal/engine"
	"github.com/dshills/cutline/internal/timeline"
	"github.com/dshills/cutline/internal/timeline/snap"
)

// BeginDrag starts dragging an element. The element becomes selected
// (union with the prior selection when additive); the prior selection is
// remembered so a failed or cancelled gesture can restore it.
func (m *Machine) BeginDrag(elementID string, additive bool) error {
	if m.state != Idle {
		return ErrGestureActive
	}
	el := m.eng.Element(elementID)
	if el == nil {
		return engine.ErrElementNotFound
	}

	m.prior = append([]string(nil), m.selection...)
	if !m.IsSelected(elementID) {
		m.Select([]string{elementID}, additive)
	}

	m.state = Dragging
	m.drag = dragGesture{
		elementID:   elementID,
		duration:    el.Duration(),
		kind:        el.Kind,
		originTrack: el.TrackID,
		originStart: el.Start,
	}
	return nil
}

// UpdateDrag recomputes the drag preview for a proposed track and start
// time, consulting the snapping resolver. The document is not touched;
// the returned preview is for rendering only.
func (m *Machine) UpdateDrag(trackID string, pos, playhead timeline.Ticks, zoom float64) (DragPreview, error) {
	if m.state != Dragging {
		return DragPreview{}, ErrNoGesture
	}

	tr := m.eng.Track(trackID)
	if tr == nil {
		m.drag.hasPreview = false
		return DragPreview{TrackID: trackID, Valid: false}, nil
	}

	res := snap.Resolve(m.snapInput(tr, pos, playhead, zoom, m.drag.elementID))
	start := res.Position
	if start < 0 {
		start = 0
	}

	p := DragPreview{
		TrackID:   trackID,
		Start:     start,
		End:       start + m.drag.duration,
		SnappedTo: res.Target,
		Valid: m.drag.kind.CompatibleWith(tr.Kind) &&
			tr.FreeAt(start, m.drag.duration, m.drag.elementID) &&
			!tr.Locked,
	}
	m.drag.preview = p
	m.drag.hasPreview = true
	return p, nil
}

// CommitDrag resolves the drag into a MoveElement operation. Release
// without movement, or at the element's original placement, is a plain
// click: the selection change stands and no operation is submitted. On
// engine failure the gesture is discarded, the prior selection restored,
// and the document unchanged.
func (m *Machine) CommitDrag(ripple bool) error {
	if m.state != Dragging {
		return ErrNoGesture
	}
	drag := m.drag
	prior := m.prior
	m.reset()

	if !drag.hasPreview {
		return nil
	}
	if drag.preview.TrackID == drag.originTrack && drag.preview.Start == drag.originStart {
		return nil
	}
	if err := m.eng.MoveElement(drag.elementID, drag.preview.TrackID, drag.preview.Start, ripple); err != nil {
		m.selection = prior
		return err
	}
	return nil
}
