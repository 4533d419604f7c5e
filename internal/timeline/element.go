package timeline

// Element is a single clip on a track: a slice of source media, or a text
// overlay. Its visible duration is always derived from the source duration
// minus the trims; trims are the thing edits mutate, duration is never set
// directly. For text elements SourceDuration is the authored duration (there
// is no underlying media) and trims behave the same way.
type Element struct {
	ID      string
	TrackID string
	Kind    ElementKind
	Name    string

	// MediaRef identifies the source asset in the media registry.
	// Empty for text elements.
	MediaRef string

	// Content is the text payload for text elements.
	Content string

	Start          Ticks
	SourceDuration Ticks
	TrimIn         Ticks
	TrimOut        Ticks
}

// Duration returns the visible duration: SourceDuration - TrimIn - TrimOut.
func (e *Element) Duration() Ticks {
	return e.SourceDuration - e.TrimIn - e.TrimOut
}

// End returns the exclusive end time of the element's span.
func (e *Element) End() Ticks {
	return e.Start + e.Duration()
}

// Span returns the element's half-open interval [start, end).
func (e *Element) Span() (start, end Ticks) {
	return e.Start, e.End()
}

// Overlaps reports whether the element's half-open span [Start, End)
// intersects [start, end). Touching edges do not overlap.
func (e *Element) Overlaps(start, end Ticks) bool {
	return e.Start < end && start < e.End()
}

// Contains reports whether t lies within the element's half-open span.
func (e *Element) Contains(t Ticks) bool {
	return t >= e.Start && t < e.End()
}

// Validate checks per-field invariants. It does not check cross-element
// invariants such as overlap; that is the edit engine's responsibility.
func (e *Element) Validate() error {
	if e.ID == "" {
		return invalidField("ID", e.ID, "must not be empty")
	}
	if e.Start < 0 {
		return invalidField("Start", e.Start, "must not be negative")
	}
	if e.SourceDuration <= 0 {
		return invalidField("SourceDuration", e.SourceDuration, "must be positive")
	}
	if e.TrimIn < 0 {
		return invalidField("TrimIn", e.TrimIn, "must not be negative")
	}
	if e.TrimOut < 0 {
		return invalidField("TrimOut", e.TrimOut, "must not be negative")
	}
	if e.TrimIn+e.TrimOut >= e.SourceDuration {
		return invalidField("TrimIn+TrimOut", e.TrimIn+e.TrimOut, "must leave a positive duration")
	}
	if e.Kind == ElementMedia && e.MediaRef == "" {
		return invalidField("MediaRef", e.MediaRef, "media element requires a media reference")
	}
	return nil
}

// Clone returns a deep copy of the element.
func (e *Element) Clone() *Element {
	c := *e
	return &c
}
