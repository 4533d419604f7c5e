package store

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/cutline/internal/timeline"
)

// formatVersion identifies the project file layout.
const formatVersion = 1

// builder accumulates sjson writes, keeping the first error.
type builder struct {
	json string
	err  error
}

func (b *builder) set(path string, value any) {
	if b.err != nil {
		return
	}
	b.json, b.err = sjson.Set(b.json, path, value)
}

// EncodeDocument serializes a document to the project file JSON format.
func EncodeDocument(doc *timeline.Document) ([]byte, error) {
	b := &builder{json: "{}"}
	b.set("version", formatVersion)
	b.set("fps", doc.FPS)
	b.set("mainTrackId", doc.MainTrackID)

	for i, tr := range doc.Tracks {
		base := fmt.Sprintf("tracks.%d", i)
		b.set(base+".id", tr.ID)
		b.set(base+".kind", tr.Kind.String())
		b.set(base+".name", tr.Name)
		b.set(base+".muted", tr.Muted)
		b.set(base+".locked", tr.Locked)
		b.set(base+".elements", []any{})
		for j, el := range tr.Elements {
			p := fmt.Sprintf("%s.elements.%d", base, j)
			b.set(p+".id", el.ID)
			b.set(p+".kind", el.Kind.String())
			b.set(p+".name", el.Name)
			b.set(p+".mediaRef", el.MediaRef)
			b.set(p+".content", el.Content)
			b.set(p+".start", int64(el.Start))
			b.set(p+".sourceDuration", int64(el.SourceDuration))
			b.set(p+".trimIn", int64(el.TrimIn))
			b.set(p+".trimOut", int64(el.TrimOut))
		}
	}
	if b.err != nil {
		return nil, fmt.Errorf("encoding document: %w", b.err)
	}
	return []byte(b.json), nil
}

// DecodeDocument parses project file JSON. Missing optional fields
// (muted, locked, trims, names) default to their zero values; a missing
// or unresolvable main track is an error because the document invariant
// requires one.
func DecodeDocument(data []byte) (*timeline.Document, error) {
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("decoding document: not a JSON object")
	}

	doc := &timeline.Document{
		FPS:         int(root.Get("fps").Int()),
		MainTrackID: root.Get("mainTrackId").String(),
	}
	if doc.FPS <= 0 {
		doc.FPS = timeline.DefaultFPS
	}

	var firstErr error
	root.Get("tracks").ForEach(func(_, trackVal gjson.Result) bool {
		kind, err := timeline.ParseTrackKind(trackVal.Get("kind").String())
		if err != nil {
			firstErr = err
			return false
		}
		tr := &timeline.Track{
			ID:     trackVal.Get("id").String(),
			Kind:   kind,
			Name:   trackVal.Get("name").String(),
			Muted:  trackVal.Get("muted").Bool(),
			Locked: trackVal.Get("locked").Bool(),
		}
		trackVal.Get("elements").ForEach(func(_, elVal gjson.Result) bool {
			elKind, err := timeline.ParseElementKind(elVal.Get("kind").String())
			if err != nil {
				firstErr = err
				return false
			}
			el := &timeline.Element{
				ID:             elVal.Get("id").String(),
				Kind:           elKind,
				Name:           elVal.Get("name").String(),
				MediaRef:       elVal.Get("mediaRef").String(),
				Content:        elVal.Get("content").String(),
				Start:          timeline.Ticks(elVal.Get("start").Int()),
				SourceDuration: timeline.Ticks(elVal.Get("sourceDuration").Int()),
				TrimIn:         timeline.Ticks(elVal.Get("trimIn").Int()),
				TrimOut:        timeline.Ticks(elVal.Get("trimOut").Int()),
			}
			if err := tr.InsertElement(el); err != nil {
				firstErr = err
				return false
			}
			return true
		})
		if firstErr != nil {
			return false
		}
		// Elements arrive sorted by Start; adjacent spans must not
		// overlap or the no-overlap invariant is broken before any
		// operation runs.
		for i := 1; i < len(tr.Elements); i++ {
			prev, cur := tr.Elements[i-1], tr.Elements[i]
			if prev.End() > cur.Start {
				firstErr = fmt.Errorf("track %s: elements %s and %s overlap", tr.ID, prev.ID, cur.ID)
				return false
			}
		}
		if err := doc.AddTrack(tr); err != nil {
			firstErr = err
			return false
		}
		return true
	})
	if firstErr != nil {
		return nil, fmt.Errorf("decoding document: %w", firstErr)
	}

	if doc.MainTrackID == "" || doc.TrackByID(doc.MainTrackID) == nil {
		return nil, fmt.Errorf("decoding document: main track missing")
	}
	if doc.MainTrack().Kind != timeline.TrackVideo {
		return nil, fmt.Errorf("decoding document: main track must be video")
	}
	return doc, nil
}
