package timeline

// TrackKind identifies what a track holds. Kind is immutable after track
// creation.
type TrackKind int

const (
	TrackVideo TrackKind = iota
	TrackAudio
	TrackText
)

// String returns the kind name.
func (k TrackKind) String() string {
	switch k {
	case TrackVideo:
		return "video"
	case TrackAudio:
		return "audio"
	case TrackText:
		return "text"
	default:
		return "unknown"
	}
}

// stackRank orders tracks for display: text above video above audio.
// Stacking never affects timing logic.
func (k TrackKind) stackRank() int {
	switch k {
	case TrackText:
		return 0
	case TrackVideo:
		return 1
	case TrackAudio:
		return 2
	default:
		return 3
	}
}

// ParseTrackKind parses a track kind name as produced by String.
func ParseTrackKind(s string) (TrackKind, error) {
	switch s {
	case "video":
		return TrackVideo, nil
	case "audio":
		return TrackAudio, nil
	case "text":
		return TrackText, nil
	default:
		return 0, invalidField("kind", s, "unknown track kind")
	}
}

// ElementKind identifies what an element carries.
type ElementKind int

const (
	ElementMedia ElementKind = iota
	ElementText
)

// String returns the kind name.
func (k ElementKind) String() string {
	switch k {
	case ElementMedia:
		return "media"
	case ElementText:
		return "text"
	default:
		return "unknown"
	}
}

// ParseElementKind parses an element kind name as produced by String.
func ParseElementKind(s string) (ElementKind, error) {
	switch s {
	case "media":
		return ElementMedia, nil
	case "text":
		return ElementText, nil
	default:
		return 0, invalidField("kind", s, "unknown element kind")
	}
}

// CompatibleWith reports whether an element of this kind may live on a
// track of the given kind. Media elements go on video or audio tracks,
// text elements only on text tracks.
func (k ElementKind) CompatibleWith(t TrackKind) bool {
	switch k {
	case ElementMedia:
		return t == TrackVideo || t == TrackAudio
	case ElementText:
		return t == TrackText
	default:
		return false
	}
}
