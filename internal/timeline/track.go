package timeline

import "sort"

// Track is an ordered lane of non-overlapping elements. Elements are kept
// sorted by start time. The track enforces per-element field invariants on
// insert and update but never cross-element invariants; overlap and
// compatibility validation belong to the edit engine.
type Track struct {
	ID     string
	Kind   TrackKind
	Name   string
	Muted  bool
	Locked bool

	Elements []*Element
}

// ElementByID returns the element with the given ID, or nil.
func (tr *Track) ElementByID(id string) *Element {
	for _, e := range tr.Elements {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// InsertElement adds an element to the track, keeping start-time order.
// The element's TrackID is rewritten to this track. Fails with an
// InvalidFieldError if the element's fields are malformed, or
// ErrDuplicateID if the ID is already present.
func (tr *Track) InsertElement(e *Element) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if tr.ElementByID(e.ID) != nil {
		return ErrDuplicateID
	}
	e.TrackID = tr.ID
	tr.Elements = append(tr.Elements, e)
	tr.sortElements()
	return nil
}

// RemoveElement removes the element with the given ID.
// Fails with ErrElementNotFound if it is not on this track.
func (tr *Track) RemoveElement(id string) error {
	for i, e := range tr.Elements {
		if e.ID == id {
			tr.Elements = append(tr.Elements[:i], tr.Elements[i+1:]...)
			return nil
		}
	}
	return ErrElementNotFound
}

// UpdateElement applies fn to the element with the given ID, then
// re-validates its fields and restores start-time order. If validation
// fails the element is restored to its prior state and the error returned.
func (tr *Track) UpdateElement(id string, fn func(*Element)) error {
	e := tr.ElementByID(id)
	if e == nil {
		return ErrElementNotFound
	}
	prior := *e
	fn(e)
	if err := e.Validate(); err != nil {
		*e = prior
		return err
	}
	e.TrackID = tr.ID
	tr.sortElements()
	return nil
}

// FreeAt reports whether the half-open span [start, start+duration) is
// unoccupied, ignoring elements whose IDs appear in exclude.
func (tr *Track) FreeAt(start, duration Ticks, exclude ...string) bool {
	end := start + duration
	for _, e := range tr.Elements {
		if containsID(exclude, e.ID) {
			continue
		}
		if e.Overlaps(start, end) {
			return false
		}
	}
	return true
}

// ElementsFrom returns the elements whose start time is at or after t,
// in start order.
func (tr *Track) ElementsFrom(t Ticks) []*Element {
	var out []*Element
	for _, e := range tr.Elements {
		if e.Start >= t {
			out = append(out, e)
		}
	}
	return out
}

// End returns the end time of the last element, or 0 for an empty track.
func (tr *Track) End() Ticks {
	var end Ticks
	for _, e := range tr.Elements {
		if e.End() > end {
			end = e.End()
		}
	}
	return end
}

// Clone returns a deep copy of the track and its elements.
func (tr *Track) Clone() *Track {
	c := *tr
	c.Elements = make([]*Element, len(tr.Elements))
	for i, e := range tr.Elements {
		c.Elements[i] = e.Clone()
	}
	return &c
}

func (tr *Track) sortElements() {
	sort.SliceStable(tr.Elements, func(i, j int) bool {
		return tr.Elements[i].Start < tr.Elements[j].Start
	})
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
