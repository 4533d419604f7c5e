// Package timeline provides the document model for the Cutline editing
// engine: tracks, elements, and the timeline document that holds them.
//
// # Time
//
// All positions and durations are expressed in Ticks, a fixed-precision
// integer count of microseconds. Floating-point seconds and pixels exist
// only at the boundaries (user input, snapping thresholds, persistence);
// converting between them and ticks is the caller's concern.
//
// # Model
//
// A Document holds an ordered list of Tracks; each Track holds elements
// sorted by start time. Track kind (video, audio, text) is immutable after
// creation. Exactly one track, always of kind video, is the main track and
// can never be removed. Tracks are kept in display order (text over video
// over audio) but stacking never affects timing.
//
// An Element's duration is always derived: SourceDuration minus TrimIn
// minus TrimOut. Edits mutate the trims and the start time; duration is
// never written directly.
//
// # Validation split
//
// The model enforces per-field invariants only (non-negative times,
// positive durations, trim bounds) and fails with InvalidFieldError.
// Cross-element invariants (overlap, track-kind compatibility, locked
// tracks) are the edit engine's responsibility. Code outside the engine
// must treat the model as read-only.
package timeline
