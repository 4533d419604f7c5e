package engine

import (
	"github.com/google/uuid"

	"github.com/dshills/cutline/internal/timeline"
)

// NewMediaElement builds an unattached media element from a registered
// asset, snapshotting its source duration from the media collaborator.
// Fails with ErrMediaUnknown if no media source is configured or the
// reference is not registered.
func (e *Engine) NewMediaElement(ref, name string) (*timeline.Element, error) {
	if e.media == nil {
		return nil, ErrMediaUnknown
	}
	info, ok := e.media.Lookup(ref)
	if !ok {
		return nil, ErrMediaUnknown
	}
	if name == "" {
		name = info.Name
	}
	return &timeline.Element{
		ID:             uuid.NewString(),
		Kind:           timeline.ElementMedia,
		MediaRef:       ref,
		Name:           name,
		SourceDuration: info.Duration,
	}, nil
}

// NewTextElement builds an unattached text element with the given
// authored duration.
func NewTextElement(content string, duration timeline.Ticks) *timeline.Element {
	return &timeline.Element{
		ID:             uuid.NewString(),
		Kind:           timeline.ElementText,
		Content:        content,
		Name:           content,
		SourceDuration: duration,
	}
}
