package timeline

import (
	"errors"
	"fmt"
)

// Errors returned by document model operations.
var (
	// ErrTrackNotFound indicates the referenced track does not exist.
	ErrTrackNotFound = errors.New("track not found")

	// ErrElementNotFound indicates the referenced element does not exist.
	ErrElementNotFound = errors.New("element not found")

	// ErrMainTrack indicates an attempt to remove the main track.
	ErrMainTrack = errors.New("main track cannot be removed")

	// ErrDuplicateID indicates an element with the same ID already exists
	// on the track.
	ErrDuplicateID = errors.New("duplicate element id")
)

// InvalidFieldError reports a malformed field value on an element or track.
// It always indicates a caller bug; the mutation it was returned from was
// not applied.
type InvalidFieldError struct {
	Field  string
	Value  any
	Reason string
}

// Error implements the error interface.
func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid field %s=%v: %s", e.Field, e.Value, e.Reason)
}

// invalidField is a shorthand constructor.
func invalidField(field string, value any, reason string) *InvalidFieldError {
	return &InvalidFieldError{Field: field, Value: value, Reason: reason}
}
