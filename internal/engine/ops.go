package engine

import (
	"github.com/google/uuid"

	"github.com/dshills/cutline/internal/event"
	"github.com/dshills/cutline/internal/timeline"
)

// Edge selects which end of an element a trim adjusts.
type Edge int

const (
	EdgeStart Edge = iota
	EdgeEnd
)

// String returns the edge name.
func (e Edge) String() string {
	if e == EdgeStart {
		return "start"
	}
	return "end"
}

// AddElement places an element on a track at the desired start time.
//
// Fails with ErrIncompatibleTrack if the element kind cannot live on the
// track kind, ErrTrackLocked on a locked track, and ErrOverlap if the
// placement collides and ripple is false. With ripple, the insert point
// advances past any occupied span and every element at or after it shifts
// later by the element's duration; other tracks are never touched.
func (e *Engine) AddElement(trackID string, el *timeline.Element, desiredStart timeline.Ticks, ripple bool) error {
	e.mu.Lock()

	working := e.doc.Clone()
	tr := working.TrackByID(trackID)
	if tr == nil {
		e.mu.Unlock()
		return ErrTrackNotFound
	}
	if tr.Locked {
		e.mu.Unlock()
		return ErrTrackLocked
	}
	if !el.Kind.CompatibleWith(tr.Kind) {
		e.mu.Unlock()
		return ErrIncompatibleTrack
	}

	placed := el.Clone()
	placed.Start = desiredStart
	if err := placed.Validate(); err != nil {
		e.mu.Unlock()
		return err
	}

	if ripple {
		placed.Start = rippleOpen(tr, desiredStart, placed.Duration())
	} else if !tr.FreeAt(placed.Start, placed.Duration()) {
		e.mu.Unlock()
		return ErrOverlap
	}

	shifted := shiftedIDs(e.doc.TrackByID(trackID), tr)
	if err := tr.InsertElement(placed); err != nil {
		e.mu.Unlock()
		return err
	}

	e.commit(working, event.Change{
		Label:   "Add Element",
		Added:   []string{placed.ID},
		Updated: shifted,
	})
	return nil
}

// MoveElement moves an element to a new track and start time.
//
// Moves across tracks of different kinds are rejected with
// ErrIncompatibleTrack. Without ripple a colliding destination fails with
// ErrOverlap. With ripple the vacated gap on the source track closes
// (later elements shift earlier by the element's duration) and the
// destination opens room at the target point.
func (e *Engine) MoveElement(elementID, newTrackID string, newStart timeline.Ticks, ripple bool) error {
	e.mu.Lock()

	working := e.doc.Clone()
	src := working.TrackOf(elementID)
	if src == nil {
		e.mu.Unlock()
		return ErrElementNotFound
	}
	dest := working.TrackByID(newTrackID)
	if dest == nil {
		e.mu.Unlock()
		return ErrTrackNotFound
	}
	if src.Locked || dest.Locked {
		e.mu.Unlock()
		return ErrTrackLocked
	}
	if src.ID != dest.ID && src.Kind != dest.Kind {
		e.mu.Unlock()
		return ErrIncompatibleTrack
	}

	el := src.ElementByID(elementID)
	if !el.Kind.CompatibleWith(dest.Kind) {
		e.mu.Unlock()
		return ErrIncompatibleTrack
	}

	dur := el.Duration()
	oldEnd := el.End()
	moved := el.Clone()
	moved.Start = newStart
	if err := moved.Validate(); err != nil {
		e.mu.Unlock()
		return err
	}

	if !ripple && !dest.FreeAt(newStart, dur, el.ID) {
		e.mu.Unlock()
		return ErrOverlap
	}

	if err := src.RemoveElement(elementID); err != nil {
		e.mu.Unlock()
		return err
	}
	if ripple {
		// Close the vacated gap, then open room at the destination.
		for _, other := range src.ElementsFrom(oldEnd) {
			other.Start -= dur
		}
		moved.Start = rippleOpen(dest, newStart, dur)
	}

	shifted := shiftedIDs(e.doc.TrackByID(src.ID), src)
	if src.ID != dest.ID {
		shifted = append(shifted, shiftedIDs(e.doc.TrackByID(dest.ID), dest)...)
	}
	if err := dest.InsertElement(moved); err != nil {
		e.mu.Unlock()
		return err
	}

	e.commit(working, event.Change{
		Label:   "Move Element",
		Updated: append(shifted, elementID),
	})
	return nil
}

// TrimElement adjusts one edge of an element by delta. A positive delta
// moves the edge toward later time.
//
// Trimming the start moves the start time and grows TrimIn, keeping the
// end fixed; trimming the end moves the end time and shrinks TrimOut,
// keeping the start fixed. Duration is always re-derived, never written.
// Deltas that produce a non-positive duration or exceed the source bounds
// fail with ErrInvalidTrim; extending into a neighbor fails with
// ErrOverlap.
func (e *Engine) TrimElement(elementID string, edge Edge, delta timeline.Ticks) error {
	e.mu.Lock()

	working := e.doc.Clone()
	tr := working.TrackOf(elementID)
	if tr == nil {
		e.mu.Unlock()
		return ErrElementNotFound
	}
	if tr.Locked {
		e.mu.Unlock()
		return ErrTrackLocked
	}
	el := tr.ElementByID(elementID)

	newStart := el.Start
	newTrimIn := el.TrimIn
	newTrimOut := el.TrimOut
	switch edge {
	case EdgeStart:
		newStart += delta
		newTrimIn += delta
	case EdgeEnd:
		newTrimOut -= delta
	}

	if newTrimIn < 0 || newTrimOut < 0 || newStart < 0 {
		e.mu.Unlock()
		return ErrInvalidTrim
	}
	newDur := el.SourceDuration - newTrimIn - newTrimOut
	if newDur <= 0 {
		e.mu.Unlock()
		return ErrInvalidTrim
	}
	if !tr.FreeAt(newStart, newDur, elementID) {
		e.mu.Unlock()
		return ErrOverlap
	}

	err := tr.UpdateElement(elementID, func(el *timeline.Element) {
		el.Start = newStart
		el.TrimIn = newTrimIn
		el.TrimOut = newTrimOut
	})
	if err != nil {
		e.mu.Unlock()
		return err
	}

	e.commit(working, event.Change{
		Label:   "Trim Element",
		Updated: []string{elementID},
	})
	return nil
}

// SplitElement cuts an element at the given time, producing two siblings
// whose spans are contiguous and together equal the original. Both keep
// the original media reference; the left half keeps the original ID.
// Fails with ErrOutOfRange unless the time is strictly inside the span.
func (e *Engine) SplitElement(elementID string, at timeline.Ticks) (leftID, rightID string, err error) {
	e.mu.Lock()

	working := e.doc.Clone()
	tr := working.TrackOf(elementID)
	if tr == nil {
		e.mu.Unlock()
		return "", "", ErrElementNotFound
	}
	if tr.Locked {
		e.mu.Unlock()
		return "", "", ErrTrackLocked
	}
	el := tr.ElementByID(elementID)
	if at <= el.Start || at >= el.End() {
		e.mu.Unlock()
		return "", "", ErrOutOfRange
	}

	offset := at - el.Start
	right := el.Clone()
	right.ID = uuid.NewString()
	right.Start = at
	right.TrimIn = el.TrimIn + offset

	err = tr.UpdateElement(elementID, func(el *timeline.Element) {
		el.TrimOut = el.SourceDuration - el.TrimIn - offset
	})
	if err != nil {
		e.mu.Unlock()
		return "", "", err
	}
	if err := tr.InsertElement(right); err != nil {
		e.mu.Unlock()
		return "", "", err
	}

	e.commit(working, event.Change{
		Label:   "Split Element",
		Added:   []string{right.ID},
		Updated: []string{elementID},
	})
	return elementID, right.ID, nil
}

// DeleteElements removes the given elements. All IDs must resolve or the
// whole operation fails with ErrElementNotFound.
//
// In ripple mode gaps close independently per track: every surviving
// element shifts earlier by the summed duration of the deleted elements
// that preceded it on its own track. Other tracks are unaffected.
func (e *Engine) DeleteElements(ids []string, ripple bool) error {
	// Repeated IDs delete once; order is preserved.
	seen := make(map[string]bool, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}
	ids = unique
	if len(ids) == 0 {
		return nil
	}
	e.mu.Lock()

	working := e.doc.Clone()
	deleted := make(map[string][]*timeline.Element) // track ID -> elements
	for _, id := range ids {
		tr := working.TrackOf(id)
		if tr == nil {
			e.mu.Unlock()
			return ErrElementNotFound
		}
		if tr.Locked {
			e.mu.Unlock()
			return ErrTrackLocked
		}
		deleted[tr.ID] = append(deleted[tr.ID], tr.ElementByID(id).Clone())
	}

	var updated []string
	for trackID, dead := range deleted {
		tr := working.TrackByID(trackID)
		for _, el := range dead {
			if err := tr.RemoveElement(el.ID); err != nil {
				e.mu.Unlock()
				return err
			}
		}
		if !ripple {
			continue
		}
		for _, survivor := range tr.Elements {
			var shift timeline.Ticks
			for _, el := range dead {
				if el.Start < survivor.Start {
					shift += el.Duration()
				}
			}
			if shift > 0 {
				survivor.Start -= shift
				updated = append(updated, survivor.ID)
			}
		}
	}

	e.commit(working, event.Change{
		Label:   "Delete Elements",
		Removed: append([]string(nil), ids...),
		Updated: updated,
	})
	return nil
}

// DuplicateElements clones the given elements with fresh identities. Each
// clone lands immediately after its source's end on the same track when
// that span is free, otherwise at the nearest free position. Returns the
// new IDs in input order.
func (e *Engine) DuplicateElements(ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	e.mu.Lock()

	working := e.doc.Clone()
	newIDs := make([]string, 0, len(ids))
	for _, id := range ids {
		tr := working.TrackOf(id)
		if tr == nil {
			e.mu.Unlock()
			return nil, ErrElementNotFound
		}
		if tr.Locked {
			e.mu.Unlock()
			return nil, ErrTrackLocked
		}
		el := tr.ElementByID(id)

		clone := el.Clone()
		clone.ID = uuid.NewString()
		clone.Start = nearestFree(tr, el.End(), el.Duration())
		if err := tr.InsertElement(clone); err != nil {
			e.mu.Unlock()
			return nil, err
		}
		newIDs = append(newIDs, clone.ID)
	}

	e.commit(working, event.Change{
		Label: "Duplicate Elements",
		Added: append([]string(nil), newIDs...),
	})
	return newIDs, nil
}

// AddTrack appends a track of the given kind and restores display order.
// Returns the new track's ID.
func (e *Engine) AddTrack(kind timeline.TrackKind, name string) (string, error) {
	e.mu.Lock()

	working := e.doc.Clone()
	tr := &timeline.Track{ID: uuid.NewString(), Kind: kind, Name: name}
	if err := working.AddTrack(tr); err != nil {
		e.mu.Unlock()
		return "", err
	}

	e.commit(working, event.Change{
		Label:  "Add Track",
		Tracks: []string{tr.ID},
	})
	return tr.ID, nil
}

// RemoveTrack removes a track and its elements. The main track is
// protected (ErrMainTrack).
func (e *Engine) RemoveTrack(id string) error {
	e.mu.Lock()

	working := e.doc.Clone()
	tr := working.TrackByID(id)
	var removed []string
	if tr != nil {
		for _, el := range tr.Elements {
			removed = append(removed, el.ID)
		}
	}
	if err := working.RemoveTrack(id); err != nil {
		e.mu.Unlock()
		return err
	}

	e.commit(working, event.Change{
		Label:   "Remove Track",
		Removed: removed,
		Tracks:  []string{id},
	})
	return nil
}

// SetTrackLocked toggles a track's locked flag.
func (e *Engine) SetTrackLocked(id string, locked bool) error {
	return e.setTrackFlag(id, "Lock Track", func(tr *timeline.Track) { tr.Locked = locked })
}

// SetTrackMuted toggles a track's muted flag. Muting is playback-only
// state; it never affects timing.
func (e *Engine) SetTrackMuted(id string, muted bool) error {
	return e.setTrackFlag(id, "Mute Track", func(tr *timeline.Track) { tr.Muted = muted })
}

// RenameTrack sets a track's display name.
func (e *Engine) RenameTrack(id, name string) error {
	return e.setTrackFlag(id, "Rename Track", func(tr *timeline.Track) { tr.Name = name })
}

func (e *Engine) setTrackFlag(id, label string, fn func(*timeline.Track)) error {
	e.mu.Lock()

	working := e.doc.Clone()
	tr := working.TrackByID(id)
	if tr == nil {
		e.mu.Unlock()
		return ErrTrackNotFound
	}
	fn(tr)

	e.commit(working, event.Change{
		Label:  label,
		Tracks: []string{id},
	})
	return nil
}

// ============================================================================
// Placement helpers
// ============================================================================

// rippleOpen prepares room for a span of the given duration at pos.
// The position first advances past any element whose span contains it
// (existing elements are never split), then every element starting at or
// after the effective position shifts later by the duration. Returns the
// effective start, which is guaranteed free.
func rippleOpen(tr *timeline.Track, pos, dur timeline.Ticks) timeline.Ticks {
	eff := pos
	for {
		advanced := false
		for _, el := range tr.Elements {
			if el.Contains(eff) {
				eff = el.End()
				advanced = true
				break
			}
		}
		if !advanced {
			break
		}
	}
	for _, el := range tr.ElementsFrom(eff) {
		el.Start += dur
	}
	return eff
}

// nearestFree returns the free position closest to desired that can hold
// the duration. Candidates are the desired position itself, element edges
// (end, and start minus the duration), and zero; the end of the track is
// always free so a result always exists. Ties prefer the earlier position.
func nearestFree(tr *timeline.Track, desired, dur timeline.Ticks) timeline.Ticks {
	if tr.FreeAt(desired, dur) {
		return desired
	}

	candidates := []timeline.Ticks{0, tr.End()}
	for _, el := range tr.Elements {
		candidates = append(candidates, el.End(), el.Start-dur)
	}

	best := tr.End()
	bestDelta := (best - desired).Abs()
	for _, pos := range candidates {
		if pos < 0 || !tr.FreeAt(pos, dur) {
			continue
		}
		delta := (pos - desired).Abs()
		if delta < bestDelta || (delta == bestDelta && pos < best) {
			best = pos
			bestDelta = delta
		}
	}
	return best
}

// shiftedIDs reports elements present in both track states whose start
// time changed, in track order. before is the committed track, after the
// working copy.
func shiftedIDs(before, after *timeline.Track) []string {
	var out []string
	for _, el := range after.Elements {
		if prior := before.ElementByID(el.ID); prior != nil && prior.Start != el.Start {
			out = append(out, el.ID)
		}
	}
	return out
}
