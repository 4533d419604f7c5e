package snap

import (
	"testing"

	"github.com/dshills/cutline/internal/timeline"
)

func sec(s float64) timeline.Ticks { return timeline.FromSeconds(s) }

func newTestElement(id string, start, dur timeline.Ticks) *timeline.Element {
	return &timeline.Element{
		ID:             id,
		Kind:           timeline.ElementMedia,
		MediaRef:       "m-" + id,
		Start:          start,
		SourceDuration: dur,
	}
}

// baseInput gives a 10px threshold at 100px/s and zoom 1.0: a 0.1s radius.
func baseInput(pos timeline.Ticks, elems ...*timeline.Element) Input {
	return Input{
		Position:        pos,
		Elements:        elems,
		Playhead:        sec(100), // far away unless a test moves it
		ThresholdPx:     10,
		Zoom:            1.0,
		PixelsPerSecond: 100,
	}
}

func TestResolveSnapsToElementStart(t *testing.T) {
	in := baseInput(sec(1.95), newTestElement("a", sec(2), sec(3)))
	got := Resolve(in)
	if got.Target != ElementStart {
		t.Fatalf("target = %v, want element-start", got.Target)
	}
	if got.Position != sec(2) {
		t.Errorf("position = %v, want 2s", got.Position)
	}
}

func TestResolveSnapsToElementEnd(t *testing.T) {
	in := baseInput(sec(5.04), newTestElement("a", sec(2), sec(3)))
	got := Resolve(in)
	if got.Target != ElementEnd {
		t.Fatalf("target = %v, want element-end", got.Target)
	}
	if got.Position != sec(5) {
		t.Errorf("position = %v, want 5s", got.Position)
	}
}

func TestResolveOutsideThreshold(t *testing.T) {
	in := baseInput(sec(2.5), newTestElement("a", sec(2), sec(3)))
	got := Resolve(in)
	if got.Target != None {
		t.Fatalf("target = %v, want none", got.Target)
	}
	if got.Position != sec(2.5) {
		t.Error("position must be unchanged on a miss")
	}
}

func TestResolveSnapsToPlayhead(t *testing.T) {
	in := baseInput(sec(7.03))
	in.Playhead = sec(7)
	got := Resolve(in)
	if got.Target != Playhead {
		t.Fatalf("target = %v, want playhead", got.Target)
	}
	if got.Position != sec(7) {
		t.Errorf("position = %v, want 7s", got.Position)
	}
}

func TestResolveSmallestDeltaWins(t *testing.T) {
	in := baseInput(sec(4.96), newTestElement("a", sec(2), sec(3))) // end at 5s
	in.Playhead = sec(4.9)
	got := Resolve(in)
	if got.Target != ElementEnd {
		t.Errorf("closer element edge must beat playhead, got %v", got.Target)
	}
}

func TestResolveExactTieElementBeatsPlayhead(t *testing.T) {
	in := baseInput(sec(4.95), newTestElement("a", sec(2), sec(3))) // end at 5s
	in.Playhead = sec(4.9)                                          // same 0.05s delta
	got := Resolve(in)
	if got.Target != ElementEnd {
		t.Errorf("element edge must win exact ties, got %v", got.Target)
	}
}

func TestResolveExactTieTrackOrderWins(t *testing.T) {
	// a ends at 3s, b starts at 3.1s; position 3.05s is equidistant.
	a := newTestElement("a", sec(1), sec(2))
	b := newTestElement("b", sec(3.1), sec(2))
	in := baseInput(sec(3.05), a, b)
	got := Resolve(in)
	if got.Target != ElementEnd || got.Position != sec(3) {
		t.Errorf("earlier element in track order must win, got %v at %v", got.Target, got.Position)
	}
}

func TestResolveExcludesDraggedElements(t *testing.T) {
	in := baseInput(sec(2.01), newTestElement("a", sec(2), sec(3)))
	in.Exclude = []string{"a"}
	got := Resolve(in)
	if got.Target != None {
		t.Errorf("excluded element edges must be ignored, got %v", got.Target)
	}
}

func TestResolveThresholdScalesWithZoom(t *testing.T) {
	// At zoom 4 the 10px threshold is only 0.025s; a 0.05s delta misses.
	in := baseInput(sec(1.95), newTestElement("a", sec(2), sec(3)))
	in.Zoom = 4.0
	if got := Resolve(in); got.Target != None {
		t.Errorf("higher zoom must shrink the time threshold, got %v", got.Target)
	}
	// At zoom 0.5 the radius widens to 0.2s; a 0.15s delta hits.
	in = baseInput(sec(1.85), newTestElement("a", sec(2), sec(3)))
	in.Zoom = 0.5
	if got := Resolve(in); got.Target != ElementStart {
		t.Errorf("lower zoom must widen the time threshold, got %v", got.Target)
	}
}

func TestResolveDeterministic(t *testing.T) {
	in := baseInput(sec(4.97), newTestElement("a", sec(2), sec(3)))
	first := Resolve(in)
	for i := 0; i < 10; i++ {
		if got := Resolve(in); got != first {
			t.Fatalf("call %d diverged: %+v vs %+v", i, got, first)
		}
	}
}

func TestResolveInvalidScaleInputs(t *testing.T) {
	for _, mutate := range []func(*Input){
		func(in *Input) { in.Zoom = 0 },
		func(in *Input) { in.ThresholdPx = 0 },
		func(in *Input) { in.PixelsPerSecond = 0 },
	} {
		in := baseInput(sec(1.99), newTestElement("a", sec(2), sec(3)))
		mutate(&in)
		if got := Resolve(in); got.Target != None {
			t.Errorf("degenerate scale must disable snapping, got %v", got.Target)
		}
	}
}
