package engine

import (
	"errors"
	"testing"

	"github.com/dshills/cutline/internal/event"
	"github.com/dshills/cutline/internal/media"
	"github.com/dshills/cutline/internal/timeline"
)

func sec(s float64) timeline.Ticks { return timeline.FromSeconds(s) }

// mediaElement builds an element with an explicit ID and source duration.
func mediaElement(id string, sourceDur timeline.Ticks) *timeline.Element {
	return &timeline.Element{
		ID:             id,
		Kind:           timeline.ElementMedia,
		MediaRef:       "m-" + id,
		Name:           id,
		SourceDuration: sourceDur,
	}
}

// addClip places a media element on a track or fails the test.
func addClip(t *testing.T, e *Engine, trackID, id string, start, dur timeline.Ticks) {
	t.Helper()
	if err := e.AddElement(trackID, mediaElement(id, dur), start, false); err != nil {
		t.Fatalf("add %s: %v", id, err)
	}
}

// assertNoOverlaps verifies the track invariant on every track.
func assertNoOverlaps(t *testing.T, e *Engine) {
	t.Helper()
	for _, tr := range e.Tracks() {
		for i := 0; i < len(tr.Elements); i++ {
			for j := i + 1; j < len(tr.Elements); j++ {
				a, b := tr.Elements[i], tr.Elements[j]
				if a.Overlaps(b.Start, b.End()) {
					t.Fatalf("track %s: %s [%v,%v) overlaps %s [%v,%v)",
						tr.ID, a.ID, a.Start, a.End(), b.ID, b.Start, b.End())
				}
			}
		}
	}
}

// AddElement Tests

func TestAddElementOnMainTrack(t *testing.T) {
	e := New()
	addClip(t, e, e.MainTrackID(), "a", 0, sec(5))
	if e.Duration() != sec(5) {
		t.Errorf("duration = %v, want 5s", e.Duration())
	}
	if e.Element("a") == nil {
		t.Error("element not placed")
	}
}

func TestAddTextElementOnMainTrackRejected(t *testing.T) {
	// Empty document, one main video track: a text element cannot live there.
	e := New()
	el := NewTextElement("Title", sec(3))
	err := e.AddElement(e.MainTrackID(), el, 0, false)
	if !errors.Is(err, ErrIncompatibleTrack) {
		t.Errorf("want ErrIncompatibleTrack, got %v", err)
	}
	if e.Document().ElementCount() != 0 {
		t.Error("failed add must not modify the document")
	}
}

func TestAddElementOverlapRejected(t *testing.T) {
	e := New()
	addClip(t, e, e.MainTrackID(), "a", 0, sec(5))
	err := e.AddElement(e.MainTrackID(), mediaElement("b", sec(5)), sec(3), false)
	if !errors.Is(err, ErrOverlap) {
		t.Errorf("want ErrOverlap, got %v", err)
	}
	// Touching edges are permitted.
	if err := e.AddElement(e.MainTrackID(), mediaElement("c", sec(2)), sec(5), false); err != nil {
		t.Errorf("touching placement should succeed: %v", err)
	}
	assertNoOverlaps(t, e)
}

func TestAddElementNegativeStartRejected(t *testing.T) {
	e := New()
	err := e.AddElement(e.MainTrackID(), mediaElement("a", sec(5)), sec(-1), false)
	var fieldErr *timeline.InvalidFieldError
	if !errors.As(err, &fieldErr) {
		t.Errorf("want InvalidFieldError, got %v", err)
	}
}

func TestAddElementUnknownTrack(t *testing.T) {
	e := New()
	err := e.AddElement("missing", mediaElement("a", sec(5)), 0, false)
	if !errors.Is(err, ErrTrackNotFound) {
		t.Errorf("want ErrTrackNotFound, got %v", err)
	}
}

func TestRippleInsertSequence(t *testing.T) {
	// Three ripple-inserts at the same position: three contiguous elements
	// in insertion order, none overlapping.
	e := New()
	main := e.MainTrackID()
	for _, id := range []string{"a", "b", "c"} {
		if err := e.AddElement(main, mediaElement(id, sec(2)), 0, true); err != nil {
			t.Fatalf("ripple insert %s: %v", id, err)
		}
	}
	tr := e.Track(main)
	if len(tr.Elements) != 3 {
		t.Fatalf("want 3 elements, got %d", len(tr.Elements))
	}
	wantIDs := []string{"a", "b", "c"}
	for i, el := range tr.Elements {
		if el.ID != wantIDs[i] {
			t.Errorf("element %d = %s, want %s", i, el.ID, wantIDs[i])
		}
		if el.Start != sec(float64(i*2)) {
			t.Errorf("element %s start = %v, want %vs", el.ID, el.Start, i*2)
		}
	}
	assertNoOverlaps(t, e)
}

func TestRippleInsertShiftsLaterElements(t *testing.T) {
	e := New()
	main := e.MainTrackID()
	addClip(t, e, main, "a", 0, sec(2))
	addClip(t, e, main, "b", sec(5), sec(2))

	// Insert into the free gap at 3s; b must shift later by the duration.
	if err := e.AddElement(main, mediaElement("c", sec(2)), sec(3), true); err != nil {
		t.Fatal(err)
	}
	if got := e.Element("c").Start; got != sec(3) {
		t.Errorf("c start = %v, want 3s", got)
	}
	if got := e.Element("b").Start; got != sec(7) {
		t.Errorf("b start = %v, want 7s", got)
	}
	if got := e.Element("a").Start; got != 0 {
		t.Errorf("a start = %v, want 0", got)
	}
	assertNoOverlaps(t, e)
}

func TestRippleInsertNeverTouchesOtherTracks(t *testing.T) {
	e := New()
	audioID, err := e.AddTrack(timeline.TrackAudio, "Audio 1")
	if err != nil {
		t.Fatal(err)
	}
	addClip(t, e, audioID, "music", 0, sec(10))
	addClip(t, e, e.MainTrackID(), "a", 0, sec(2))

	if err := e.AddElement(e.MainTrackID(), mediaElement("b", sec(2)), 0, true); err != nil {
		t.Fatal(err)
	}
	if got := e.Element("music").Start; got != 0 {
		t.Errorf("other track shifted: music start = %v", got)
	}
}

// MoveElement Tests

func TestMoveElementToFreeSpan(t *testing.T) {
	e := New()
	main := e.MainTrackID()
	addClip(t, e, main, "a", 0, sec(5))

	if err := e.MoveElement("a", main, sec(3), false); err != nil {
		t.Fatal(err)
	}
	el := e.Element("a")
	if el.Start != sec(3) || el.End() != sec(8) {
		t.Errorf("span = [%v,%v), want [3s,8s)", el.Start, el.End())
	}
}

func TestMoveElementOverlapRejected(t *testing.T) {
	e := New()
	main := e.MainTrackID()
	addClip(t, e, main, "a", 0, sec(5))
	addClip(t, e, main, "b", sec(6), sec(5)) // occupies [6s,11s)

	err := e.MoveElement("a", main, sec(3), false)
	if !errors.Is(err, ErrOverlap) {
		t.Errorf("want ErrOverlap, got %v", err)
	}
	if got := e.Element("a").Start; got != 0 {
		t.Error("failed move must not change the element")
	}
}

func TestMoveElementCrossKindRejected(t *testing.T) {
	e := New()
	audioID, err := e.AddTrack(timeline.TrackAudio, "Audio 1")
	if err != nil {
		t.Fatal(err)
	}
	addClip(t, e, e.MainTrackID(), "a", 0, sec(5))

	err = e.MoveElement("a", audioID, 0, false)
	if !errors.Is(err, ErrIncompatibleTrack) {
		t.Errorf("want ErrIncompatibleTrack, got %v", err)
	}
}

func TestMoveElementAcrossSameKindTracks(t *testing.T) {
	e := New()
	videoID, err := e.AddTrack(timeline.TrackVideo, "Video 2")
	if err != nil {
		t.Fatal(err)
	}
	addClip(t, e, e.MainTrackID(), "a", 0, sec(5))

	if err := e.MoveElement("a", videoID, sec(1), false); err != nil {
		t.Fatal(err)
	}
	if got := e.Track(videoID).ElementByID("a"); got == nil {
		t.Fatal("element not on destination track")
	}
	if got := e.Track(e.MainTrackID()).ElementByID("a"); got != nil {
		t.Error("element still on source track")
	}
}

func TestMoveElementRippleClosesSourceGap(t *testing.T) {
	e := New()
	main := e.MainTrackID()
	videoID, err := e.AddTrack(timeline.TrackVideo, "Video 2")
	if err != nil {
		t.Fatal(err)
	}
	addClip(t, e, main, "a", 0, sec(2))
	addClip(t, e, main, "b", sec(2), sec(2))
	addClip(t, e, main, "c", sec(4), sec(2))
	addClip(t, e, videoID, "x", sec(2), sec(2))

	// Ripple-move b away: c closes the gap, x shifts to make room.
	if err := e.MoveElement("b", videoID, 0, true); err != nil {
		t.Fatal(err)
	}
	if got := e.Element("c").Start; got != sec(2) {
		t.Errorf("c start = %v, want 2s (gap closed)", got)
	}
	if got := e.Element("b").Start; got != 0 {
		t.Errorf("b start = %v, want 0", got)
	}
	if got := e.Element("x").Start; got != sec(4) {
		t.Errorf("x start = %v, want 4s (shifted for room)", got)
	}
	assertNoOverlaps(t, e)
}

// TrimElement Tests

func TestTrimStartEdge(t *testing.T) {
	// Element [0s,10s), no trims, source 10s: trim start by +2s.
	e := New()
	addClip(t, e, e.MainTrackID(), "a", 0, sec(10))

	if err := e.TrimElement("a", EdgeStart, sec(2)); err != nil {
		t.Fatal(err)
	}
	el := e.Element("a")
	if el.Start != sec(2) || el.End() != sec(10) {
		t.Errorf("span = [%v,%v), want [2s,10s)", el.Start, el.End())
	}
	if el.TrimIn != sec(2) {
		t.Errorf("trimIn = %v, want 2s", el.TrimIn)
	}
	if el.Duration() != sec(8) {
		t.Errorf("duration = %v, want 8s", el.Duration())
	}
}

func TestTrimEndEdge(t *testing.T) {
	e := New()
	addClip(t, e, e.MainTrackID(), "a", 0, sec(10))

	// Negative delta on the end edge moves the end earlier.
	if err := e.TrimElement("a", EdgeEnd, sec(-3)); err != nil {
		t.Fatal(err)
	}
	el := e.Element("a")
	if el.Start != 0 || el.End() != sec(7) {
		t.Errorf("span = [%v,%v), want [0s,7s)", el.Start, el.End())
	}
	if el.TrimOut != sec(3) {
		t.Errorf("trimOut = %v, want 3s", el.TrimOut)
	}

	// Extending restores footage from the trimmed tail.
	if err := e.TrimElement("a", EdgeEnd, sec(1)); err != nil {
		t.Fatal(err)
	}
	if got := e.Element("a").End(); got != sec(8) {
		t.Errorf("end = %v, want 8s", got)
	}
}

func TestTrimConsistencyInvariant(t *testing.T) {
	e := New()
	addClip(t, e, e.MainTrackID(), "a", 0, sec(10))
	deltas := []struct {
		edge  Edge
		delta timeline.Ticks
	}{
		{EdgeStart, sec(1)},
		{EdgeEnd, sec(-2)},
		{EdgeStart, sec(-0.5)},
		{EdgeEnd, sec(1)},
	}
	for _, d := range deltas {
		if err := e.TrimElement("a", d.edge, d.delta); err != nil {
			t.Fatalf("trim %v %v: %v", d.edge, d.delta, err)
		}
		el := e.Element("a")
		if el.Duration() != el.SourceDuration-el.TrimIn-el.TrimOut {
			t.Fatal("duration/trim consistency broken")
		}
		if el.Duration() <= 0 {
			t.Fatal("duration must stay positive")
		}
	}
}

func TestTrimRejectsExhaustedDuration(t *testing.T) {
	e := New()
	addClip(t, e, e.MainTrackID(), "a", 0, sec(5))
	err := e.TrimElement("a", EdgeStart, sec(5))
	if !errors.Is(err, ErrInvalidTrim) {
		t.Errorf("want ErrInvalidTrim, got %v", err)
	}
}

func TestTrimRejectsExceedingSourceBounds(t *testing.T) {
	e := New()
	addClip(t, e, e.MainTrackID(), "a", sec(2), sec(5))
	// No footage before trimIn=0: extending the start edge must fail.
	err := e.TrimElement("a", EdgeStart, sec(-1))
	if !errors.Is(err, ErrInvalidTrim) {
		t.Errorf("want ErrInvalidTrim, got %v", err)
	}
	// Same for the end edge with trimOut=0.
	err = e.TrimElement("a", EdgeEnd, sec(1))
	if !errors.Is(err, ErrInvalidTrim) {
		t.Errorf("want ErrInvalidTrim, got %v", err)
	}
}

func TestTrimExtendIntoNeighborRejected(t *testing.T) {
	e := New()
	main := e.MainTrackID()
	addClip(t, e, main, "a", 0, sec(5))
	addClip(t, e, main, "b", sec(5), sec(7))
	// Trim b's start so it has footage in reserve, then park it next to a.
	if err := e.TrimElement("b", EdgeStart, sec(3)); err != nil {
		t.Fatal(err)
	}
	if err := e.MoveElement("b", main, sec(6), false); err != nil {
		t.Fatal(err)
	}
	// Extending b's start by 2s stays within source bounds but would
	// reach into a's span.
	err := e.TrimElement("b", EdgeStart, sec(-2))
	if !errors.Is(err, ErrOverlap) {
		t.Errorf("want ErrOverlap, got %v", err)
	}
	if got := e.Element("b").Start; got != sec(6) {
		t.Error("failed trim must not move the element")
	}
}

// SplitElement Tests

func TestSplitConservation(t *testing.T) {
	e := New()
	addClip(t, e, e.MainTrackID(), "a", sec(1), sec(10))

	leftID, rightID, err := e.SplitElement("a", sec(4))
	if err != nil {
		t.Fatal(err)
	}
	left, right := e.Element(leftID), e.Element(rightID)
	if left.Start != sec(1) || left.End() != sec(4) {
		t.Errorf("left span = [%v,%v), want [1s,4s)", left.Start, left.End())
	}
	if right.Start != sec(4) || right.End() != sec(11) {
		t.Errorf("right span = [%v,%v), want [4s,11s)", right.Start, right.End())
	}
	if left.MediaRef != right.MediaRef {
		t.Error("both halves must keep the media reference")
	}
	// The right half plays the footage the left half no longer covers.
	if right.TrimIn != sec(3) {
		t.Errorf("right trimIn = %v, want 3s", right.TrimIn)
	}
	if left.Duration()+right.Duration() != sec(10) {
		t.Error("split halves must cover the original span")
	}
	assertNoOverlaps(t, e)
}

func TestSplitOutsideSpanRejected(t *testing.T) {
	e := New()
	addClip(t, e, e.MainTrackID(), "a", sec(1), sec(4)) // [1s,5s)
	for _, at := range []timeline.Ticks{sec(1), sec(5), sec(0.5), sec(9)} {
		if _, _, err := e.SplitElement("a", at); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("split at %v: want ErrOutOfRange, got %v", at, err)
		}
	}
}

// DeleteElements Tests

func TestDeleteWithoutRippleLeavesGap(t *testing.T) {
	e := New()
	main := e.MainTrackID()
	addClip(t, e, main, "a", 0, sec(2))
	addClip(t, e, main, "b", sec(2), sec(2))
	addClip(t, e, main, "c", sec(4), sec(2))

	if err := e.DeleteElements([]string{"b"}, false); err != nil {
		t.Fatal(err)
	}
	if e.Element("b") != nil {
		t.Error("b still present")
	}
	if got := e.Element("c").Start; got != sec(4) {
		t.Errorf("c start = %v, want 4s (gap kept)", got)
	}
}

func TestRippleDeleteConservation(t *testing.T) {
	// Deleting a 2s element ripples every later element on that track
	// earlier by exactly 2s; other tracks are unaffected.
	e := New()
	main := e.MainTrackID()
	audioID, err := e.AddTrack(timeline.TrackAudio, "Audio 1")
	if err != nil {
		t.Fatal(err)
	}
	addClip(t, e, main, "a", 0, sec(2))
	addClip(t, e, main, "b", sec(3), sec(2))
	addClip(t, e, main, "c", sec(6), sec(2))
	addClip(t, e, audioID, "music", sec(1), sec(8))

	if err := e.DeleteElements([]string{"a"}, true); err != nil {
		t.Fatal(err)
	}
	if got := e.Element("b").Start; got != sec(1) {
		t.Errorf("b start = %v, want 1s", got)
	}
	if got := e.Element("c").Start; got != sec(4) {
		t.Errorf("c start = %v, want 4s", got)
	}
	if got := e.Element("music").Start; got != sec(1) {
		t.Errorf("music start = %v, other tracks must not move", got)
	}
	assertNoOverlaps(t, e)
}

func TestRippleDeleteClosesGapsPerTrack(t *testing.T) {
	e := New()
	main := e.MainTrackID()
	videoID, err := e.AddTrack(timeline.TrackVideo, "Video 2")
	if err != nil {
		t.Fatal(err)
	}
	addClip(t, e, main, "a", 0, sec(2))
	addClip(t, e, main, "b", sec(2), sec(3))
	addClip(t, e, videoID, "x", 0, sec(1))
	addClip(t, e, videoID, "y", sec(1), sec(4))

	if err := e.DeleteElements([]string{"a", "x"}, true); err != nil {
		t.Fatal(err)
	}
	// Each track closes its own gap by its own deleted duration.
	if got := e.Element("b").Start; got != 0 {
		t.Errorf("b start = %v, want 0", got)
	}
	if got := e.Element("y").Start; got != 0 {
		t.Errorf("y start = %v, want 0", got)
	}
	assertNoOverlaps(t, e)
}

func TestRippleDeleteInterleavedSurvivor(t *testing.T) {
	e := New()
	main := e.MainTrackID()
	addClip(t, e, main, "a", 0, sec(2))
	addClip(t, e, main, "b", sec(2), sec(2))
	addClip(t, e, main, "c", sec(4), sec(2))
	addClip(t, e, main, "d", sec(6), sec(2))

	// Delete a and c; b shifts by a's duration, d by a's plus c's.
	if err := e.DeleteElements([]string{"a", "c"}, true); err != nil {
		t.Fatal(err)
	}
	if got := e.Element("b").Start; got != 0 {
		t.Errorf("b start = %v, want 0", got)
	}
	if got := e.Element("d").Start; got != sec(2) {
		t.Errorf("d start = %v, want 2s", got)
	}
	assertNoOverlaps(t, e)
}

func TestDeleteUnknownIDAtomic(t *testing.T) {
	e := New()
	addClip(t, e, e.MainTrackID(), "a", 0, sec(2))
	err := e.DeleteElements([]string{"a", "ghost"}, false)
	if !errors.Is(err, ErrElementNotFound) {
		t.Errorf("want ErrElementNotFound, got %v", err)
	}
	if e.Element("a") == nil {
		t.Error("partial delete applied")
	}
}

func TestDeleteDuplicateIDsRemoveOnce(t *testing.T) {
	e := New()
	main := e.MainTrackID()
	addClip(t, e, main, "a", 0, sec(2))
	addClip(t, e, main, "b", sec(2), sec(3))

	if err := e.DeleteElements([]string{"a", "a"}, true); err != nil {
		t.Fatalf("duplicate IDs should delete once, got %v", err)
	}
	if e.Element("a") != nil {
		t.Error("a still present")
	}
	// Survivor shifts by a's duration exactly once.
	if got := e.Element("b").Start; got != 0 {
		t.Errorf("b start = %v, want 0", got)
	}
}

// DuplicateElements Tests

func TestDuplicateAfterSourceEnd(t *testing.T) {
	e := New()
	addClip(t, e, e.MainTrackID(), "a", 0, sec(3))

	ids, err := e.DuplicateElements([]string{"a"})
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 1 {
		t.Fatalf("ids = %v", ids)
	}
	dup := e.Element(ids[0])
	if dup.Start != sec(3) {
		t.Errorf("dup start = %v, want 3s", dup.Start)
	}
	if dup.ID == "a" {
		t.Error("duplicate must get a fresh identity")
	}
	if dup.MediaRef != e.Element("a").MediaRef {
		t.Error("duplicate must keep the media reference")
	}
}

func TestDuplicateFindsNearestFreePosition(t *testing.T) {
	e := New()
	main := e.MainTrackID()
	addClip(t, e, main, "a", 0, sec(3))
	addClip(t, e, main, "b", sec(3), sec(3)) // occupies the spot after a

	ids, err := e.DuplicateElements([]string{"a"})
	if err != nil {
		t.Fatal(err)
	}
	dup := e.Element(ids[0])
	if dup.Start != sec(6) {
		t.Errorf("dup start = %v, want 6s (nearest free)", dup.Start)
	}
	assertNoOverlaps(t, e)
}

// Track Tests

func TestLockedTrackRejectsEdits(t *testing.T) {
	e := New()
	main := e.MainTrackID()
	addClip(t, e, main, "a", 0, sec(5))
	if err := e.SetTrackLocked(main, true); err != nil {
		t.Fatal(err)
	}

	if err := e.AddElement(main, mediaElement("b", sec(2)), sec(6), false); !errors.Is(err, ErrTrackLocked) {
		t.Errorf("add: want ErrTrackLocked, got %v", err)
	}
	if err := e.TrimElement("a", EdgeStart, sec(1)); !errors.Is(err, ErrTrackLocked) {
		t.Errorf("trim: want ErrTrackLocked, got %v", err)
	}
	if err := e.DeleteElements([]string{"a"}, false); !errors.Is(err, ErrTrackLocked) {
		t.Errorf("delete: want ErrTrackLocked, got %v", err)
	}

	if err := e.SetTrackLocked(main, false); err != nil {
		t.Fatal(err)
	}
	if err := e.TrimElement("a", EdgeStart, sec(1)); err != nil {
		t.Errorf("unlocked trim failed: %v", err)
	}
}

func TestRemoveMainTrackRejected(t *testing.T) {
	e := New()
	err := e.RemoveTrack(e.MainTrackID())
	if !errors.Is(err, ErrMainTrack) {
		t.Errorf("want ErrMainTrack, got %v", err)
	}
}

func TestRenameTrack(t *testing.T) {
	e := New()
	main := e.MainTrackID()
	if err := e.RenameTrack(main, "V1"); err != nil {
		t.Fatal(err)
	}
	if got := e.Track(main).Name; got != "V1" {
		t.Errorf("name = %q, want V1", got)
	}
	if !e.CanUndo() {
		t.Error("rename should record a history entry")
	}
	if err := e.RenameTrack("nope", "x"); !errors.Is(err, ErrTrackNotFound) {
		t.Errorf("want ErrTrackNotFound, got %v", err)
	}
}

func TestReadAccessorsReturnClones(t *testing.T) {
	e := New()
	addClip(t, e, e.MainTrackID(), "a", 0, sec(5))

	doc := e.Document()
	doc.MainTrack().Elements[0].Start = sec(9)
	if got := e.Element("a").Start; got != 0 {
		t.Error("mutating a read snapshot leaked into the engine")
	}

	tr := e.Track(e.MainTrackID())
	tr.Elements[0].Start = sec(7)
	if got := e.Element("a").Start; got != 0 {
		t.Error("mutating a track copy leaked into the engine")
	}
}

// Undo/Redo Tests

func TestUndoRedoRoundTripThroughEngine(t *testing.T) {
	e := New()
	main := e.MainTrackID()
	addClip(t, e, main, "a", 0, sec(2))
	addClip(t, e, main, "b", sec(2), sec(2))
	if err := e.TrimElement("a", EdgeStart, sec(1)); err != nil {
		t.Fatal(err)
	}
	want := e.Document()

	for i := 0; i < 3; i++ {
		if err := e.Undo(); err != nil {
			t.Fatalf("undo %d: %v", i, err)
		}
	}
	if e.Document().ElementCount() != 0 {
		t.Error("expected empty document after full undo")
	}
	if err := e.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("want ErrNothingToUndo, got %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := e.Redo(); err != nil {
			t.Fatalf("redo %d: %v", i, err)
		}
	}
	got := e.Document()
	if got.ElementCount() != want.ElementCount() {
		t.Fatalf("element count = %d, want %d", got.ElementCount(), want.ElementCount())
	}
	for _, wantEl := range []string{"a", "b"} {
		w, g := want.ElementByID(wantEl), got.ElementByID(wantEl)
		if *w != *g {
			t.Errorf("element %s = %+v, want %+v", wantEl, g, w)
		}
	}
	if err := e.Redo(); !errors.Is(err, ErrNothingToRedo) {
		t.Errorf("want ErrNothingToRedo, got %v", err)
	}
}

func TestFreshEditDiscardsRedo(t *testing.T) {
	e := New()
	main := e.MainTrackID()
	addClip(t, e, main, "a", 0, sec(2))
	if err := e.Undo(); err != nil {
		t.Fatal(err)
	}
	addClip(t, e, main, "b", 0, sec(2))
	if e.CanRedo() {
		t.Error("fresh edit must discard redo history")
	}
}

// Notification Tests

func TestOneNotificationPerCommit(t *testing.T) {
	e := New()
	var changes []event.Change
	e.Subscribe(func(c event.Change) { changes = append(changes, c) })

	main := e.MainTrackID()
	addClip(t, e, main, "a", 0, sec(5))
	if err := e.TrimElement("a", EdgeStart, sec(1)); err != nil {
		t.Fatal(err)
	}
	// Failed operations never notify.
	if err := e.TrimElement("a", EdgeStart, sec(100)); err == nil {
		t.Fatal("expected trim failure")
	}
	if err := e.Undo(); err != nil {
		t.Fatal(err)
	}

	if len(changes) != 3 {
		t.Fatalf("notifications = %d, want 3", len(changes))
	}
	if changes[0].Label != "Add Element" || len(changes[0].Added) != 1 {
		t.Errorf("first change = %+v", changes[0])
	}
	if changes[1].Label != "Trim Element" || len(changes[1].Updated) != 1 {
		t.Errorf("second change = %+v", changes[1])
	}
	if changes[2].Label != "Undo" {
		t.Errorf("third change label = %q", changes[2].Label)
	}
	for i, c := range changes {
		if c.Doc == nil {
			t.Errorf("change %d missing document snapshot", i)
		}
	}
}

func TestNotificationCarriesShiftedElements(t *testing.T) {
	e := New()
	main := e.MainTrackID()
	addClip(t, e, main, "a", sec(2), sec(2))
	addClip(t, e, main, "b", sec(4), sec(2))

	var got event.Change
	e.Subscribe(func(c event.Change) { got = c })
	if err := e.AddElement(main, mediaElement("c", sec(2)), 0, true); err != nil {
		t.Fatal(err)
	}
	// a and b both shifted to make room for c.
	if len(got.Updated) != 2 {
		t.Errorf("updated = %v, want both shifted elements", got.Updated)
	}
}

// Media integration

func TestNewMediaElementFromRegistry(t *testing.T) {
	reg := media.NewRegistry()
	ref, err := reg.Register(media.Info{Name: "clip.mp4", Duration: sec(12), Width: 1920, Height: 1080})
	if err != nil {
		t.Fatal(err)
	}
	e := New(WithMediaSource(reg))

	el, err := e.NewMediaElement(ref, "")
	if err != nil {
		t.Fatal(err)
	}
	if el.SourceDuration != sec(12) {
		t.Errorf("source duration = %v, want 12s", el.SourceDuration)
	}
	if el.Name != "clip.mp4" {
		t.Errorf("name = %q", el.Name)
	}
	if err := e.AddElement(e.MainTrackID(), el, 0, false); err != nil {
		t.Fatal(err)
	}

	if _, err := e.NewMediaElement("ghost", ""); !errors.Is(err, ErrMediaUnknown) {
		t.Errorf("want ErrMediaUnknown, got %v", err)
	}
}

func TestWithDocumentLoadPath(t *testing.T) {
	doc := timeline.NewDocument(24)
	if err := doc.MainTrack().InsertElement(mediaElement("a", sec(5))); err != nil {
		t.Fatal(err)
	}
	e := New(WithDocument(doc))
	if e.FPS() != 24 {
		t.Errorf("fps = %d, want 24", e.FPS())
	}
	if e.Element("a") == nil {
		t.Error("loaded element missing")
	}
	// The engine must not alias the caller's document.
	doc.MainTrack().Elements[0].Start = sec(9)
	if got := e.Element("a").Start; got != 0 {
		t.Error("engine aliased the loaded document")
	}
}
