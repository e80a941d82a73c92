package event

import "errors"

// Sentinel kinds for event model errors. These allow errors.Is/As from callers.
var (
	ErrInvalidEvent     = errors.New("invalid event")
	ErrUnsortedSequence = errors.New("unsorted sequence")
	ErrOverlap          = errors.New("overlapping events")
	ErrEmptySequence    = errors.New("empty sequence")
)
