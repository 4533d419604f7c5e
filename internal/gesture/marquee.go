package gesture

import (
	"github.com/dshills/cutline/internal/timeline"
)

// BeginMarquee starts a marquee selection anchored at a time and display
// track index. With additive set, the committed selection unions with the
// prior selection instead of replacing it.
func (m *Machine) BeginMarquee(time timeline.Ticks, trackIndex int, additive bool) error {
	if m.state != Idle {
		return ErrGestureActive
	}
	m.prior = append([]string(nil), m.selection...)
	m.state = MarqueeSelecting
	m.marquee = marqueeGesture{
		anchorTime:  time,
		anchorTrack: trackIndex,
		additive:    additive,
	}
	return nil
}

// UpdateMarquee recomputes the marquee rectangle and its hit set. The
// rectangle lives in track/time space: membership is intersection of the
// time range with each element's span on every track whose display index
// falls inside the track range.
func (m *Machine) UpdateMarquee(time timeline.Ticks, trackIndex int) (MarqueePreview, error) {
	if m.state != MarqueeSelecting {
		return MarqueePreview{}, ErrNoGesture
	}

	p := MarqueePreview{
		TimeFrom:  minTicks(m.marquee.anchorTime, time),
		TimeTo:    maxTicks(m.marquee.anchorTime, time),
		TrackFrom: minInt(m.marquee.anchorTrack, trackIndex),
		TrackTo:   maxInt(m.marquee.anchorTrack, trackIndex),
	}

	for i, tr := range m.eng.Tracks() {
		if i < p.TrackFrom || i > p.TrackTo {
			continue
		}
		for _, el := range tr.Elements {
			if el.Overlaps(p.TimeFrom, p.TimeTo) {
				p.Hits = append(p.Hits, el.ID)
			}
		}
	}

	m.marquee.preview = p
	return p, nil
}

// CommitMarquee installs the marquee's hit set as the selection, unioned
// with the prior selection when the gesture is additive.
func (m *Machine) CommitMarquee() error {
	if m.state != MarqueeSelecting {
		return ErrNoGesture
	}
	hits := m.marquee.preview.Hits
	additive := m.marquee.additive
	prior := m.prior
	m.reset()

	if additive {
		m.selection = prior
		m.Select(hits, true)
	} else {
		m.selection = append([]string(nil), hits...)
	}
	return nil
}

func minTicks(a, b timeline.Ticks) timeline.Ticks {
	if a < b {
		return a
	}
	return b
}

func maxTicks(a, b timeline.Ticks) timeline.Ticks {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
