package timeline

import (
	"sort"

	"github.com/google/uuid"
)

// DefaultFPS is the project frame rate used when none is configured.
const DefaultFPS = 30

// Document is the complete in-memory timeline: an ordered set of tracks
// plus project settings. It is owned exclusively by the edit engine; no
// other component holds a mutable reference to it. The raw mutators here
// enforce structural rules (track ordering, main track permanence) and
// per-field invariants, nothing more.
type Document struct {
	Tracks []*Track
	FPS    int

	// MainTrackID identifies the permanent primary video track. It is set
	// at creation and the track it names can never be removed.
	MainTrackID string
}

// NewDocument creates an empty document with one main video track.
func NewDocument(fps int) *Document {
	if fps <= 0 {
		fps = DefaultFPS
	}
	main := &Track{
		ID:   uuid.NewString(),
		Kind: TrackVideo,
		Name: "Main",
	}
	return &Document{
		Tracks:      []*Track{main},
		FPS:         fps,
		MainTrackID: main.ID,
	}
}

// TrackByID returns the track with the given ID, or nil.
func (d *Document) TrackByID(id string) *Track {
	for _, tr := range d.Tracks {
		if tr.ID == id {
			return tr
		}
	}
	return nil
}

// MainTrack returns the permanent primary track.
func (d *Document) MainTrack() *Track {
	return d.TrackByID(d.MainTrackID)
}

// TrackOf returns the track holding the element with the given ID, or nil.
func (d *Document) TrackOf(elementID string) *Track {
	for _, tr := range d.Tracks {
		if tr.ElementByID(elementID) != nil {
			return tr
		}
	}
	return nil
}

// ElementByID returns the element with the given ID from any track, or nil.
func (d *Document) ElementByID(id string) *Element {
	for _, tr := range d.Tracks {
		if e := tr.ElementByID(id); e != nil {
			return e
		}
	}
	return nil
}

// AddTrack inserts a track and restores the display ordering rule:
// text tracks before video tracks before audio tracks, insertion order
// preserved within each kind.
func (d *Document) AddTrack(tr *Track) error {
	if tr.ID == "" {
		return invalidField("ID", tr.ID, "must not be empty")
	}
	if d.TrackByID(tr.ID) != nil {
		return ErrDuplicateID
	}
	d.Tracks = append(d.Tracks, tr)
	d.sortTracks()
	return nil
}

// RemoveTrack removes the track with the given ID along with its elements.
// Fails with ErrMainTrack for the main track and ErrTrackNotFound for an
// unknown ID.
func (d *Document) RemoveTrack(id string) error {
	if id == d.MainTrackID {
		return ErrMainTrack
	}
	for i, tr := range d.Tracks {
		if tr.ID == id {
			d.Tracks = append(d.Tracks[:i], d.Tracks[i+1:]...)
			return nil
		}
	}
	return ErrTrackNotFound
}

// Duration returns the document duration: the latest element end time
// across all tracks.
func (d *Document) Duration() Ticks {
	var end Ticks
	for _, tr := range d.Tracks {
		if trEnd := tr.End(); trEnd > end {
			end = trEnd
		}
	}
	return end
}

// ElementCount returns the total number of elements across all tracks.
func (d *Document) ElementCount() int {
	n := 0
	for _, tr := range d.Tracks {
		n += len(tr.Elements)
	}
	return n
}

// Clone returns a deep copy of the document. History snapshots and read
// accessors that escape the engine use clones so no outside component
// ever aliases engine-owned state.
func (d *Document) Clone() *Document {
	c := &Document{
		Tracks:      make([]*Track, len(d.Tracks)),
		FPS:         d.FPS,
		MainTrackID: d.MainTrackID,
	}
	for i, tr := range d.Tracks {
		c.Tracks[i] = tr.Clone()
	}
	return c
}

// Stacking is display-only: it never affects timing logic.
func (d *Document) sortTracks() {
	sort.SliceStable(d.Tracks, func(i, j int) bool {
		return d.Tracks[i].Kind.stackRank() < d.Tracks[j].Kind.stackRank()
	})
}
