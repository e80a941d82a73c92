// Package event defines the canonical representation of detected gaze events
// and immutable sequences of them.
//
// Conventions:
//   - Timestamps are float64 values in a single unit (typically milliseconds)
//     shared by every event in a sequence.
//   - Events and sequences are value objects; once constructed they are never
//     mutated.
//   - External errors must be wrapped via this package's sentinel kinds.
package event

import (
	"fmt"
	"math"
)

// Event is one contiguous labeled temporal segment produced by a detector or
// a human rater.
type Event struct {
	label  Label
	onset  float64
	offset float64

	// Optional attributes. NaN marks an absent value.
	amplitude float64
	azimuth   float64
	centerX   float64
	centerY   float64
}

// Attr applies an optional attribute to an Event under construction.
type Attr func(*Event)

// WithAmplitude sets the movement amplitude (degrees).
func WithAmplitude(deg float64) Attr {
	return func(e *Event) { e.amplitude = deg }
}

// WithAzimuth sets the movement azimuth (degrees).
func WithAzimuth(deg float64) Attr {
	return func(e *Event) { e.azimuth = deg }
}

// WithCenter sets the centroid position (pixels).
func WithCenter(x, y float64) Attr {
	return func(e *Event) {
		e.centerX = x
		e.centerY = y
	}
}

// New constructs an Event from a label and an [onset, offset] interval.
// It fails with ErrInvalidEvent if offset precedes onset, if either timestamp
// is NaN, or if the label is not recognized.
func New(label Label, onset, offset float64, attrs ...Attr) (Event, error) {
	if !label.Valid() {
		return Event{}, fmt.Errorf("%w: unrecognized label %d", ErrInvalidEvent, int(label))
	}
	if math.IsNaN(onset) || math.IsNaN(offset) {
		return Event{}, fmt.Errorf("%w: NaN timestamp", ErrInvalidEvent)
	}
	if offset < onset {
		return Event{}, fmt.Errorf("%w: offset %v precedes onset %v", ErrInvalidEvent, offset, onset)
	}
	e := Event{
		label:     label,
		onset:     onset,
		offset:    offset,
		amplitude: math.NaN(),
		azimuth:   math.NaN(),
		centerX:   math.NaN(),
		centerY:   math.NaN(),
	}
	for _, attr := range attrs {
		attr(&e)
	}
	return e, nil
}

// MustNew is New for statically known-good inputs; it panics on error.
// Intended for tests and literal fixtures.
func MustNew(label Label, onset, offset float64, attrs ...Attr) Event {
	e, err := New(label, onset, offset, attrs...)
	if err != nil {
		panic(err)
	}
	return e
}

// Label returns the event's perceptual class.
func (e Event) Label() Label { return e.label }

// Onset returns the start timestamp.
func (e Event) Onset() float64 { return e.onset }

// Offset returns the end timestamp.
func (e Event) Offset() float64 { return e.offset }

// Duration returns offset - onset. Always >= 0 for a valid event.
func (e Event) Duration() float64 { return e.offset - e.onset }

// Midpoint returns the temporal center of the event.
func (e Event) Midpoint() float64 { return (e.onset + e.offset) / 2 }

// Amplitude returns the movement amplitude, or NaN if absent.
func (e Event) Amplitude() float64 { return e.amplitude }

// Azimuth returns the movement azimuth, or NaN if absent.
func (e Event) Azimuth() float64 { return e.azimuth }

// Center returns the centroid position, or (NaN, NaN) if absent.
func (e Event) Center() (x, y float64) { return e.centerX, e.centerY }

// Overlap returns the absolute time shared by the two event intervals.
// Events that merely touch at a boundary have zero overlap.
func (e Event) Overlap(other Event) float64 {
	start := math.Max(e.onset, other.onset)
	end := math.Min(e.offset, other.offset)
	return math.Max(0, end-start)
}

// IoU returns the intersection-over-union of the two event intervals.
// Two zero-duration events at the same instant yield 0.
func (e Event) IoU(other Event) float64 {
	intersection := e.Overlap(other)
	union := e.Duration() + other.Duration() - intersection
	if union <= 0 {
		return 0
	}
	return intersection / union
}

// TimeL2 returns the l2 norm of the onset and offset differences between the
// two events.
func (e Event) TimeL2(other Event) float64 {
	return math.Hypot(e.onset-other.onset, e.offset-other.offset)
}

// CenterDistance returns the euclidean distance between the two events'
// centroid positions, or NaN if either centroid is absent.
func (e Event) CenterDistance(other Event) float64 {
	return math.Hypot(e.centerX-other.centerX, e.centerY-other.centerY)
}

// String renders the event as "label[onset, offset]".
func (e Event) String() string {
	return fmt.Sprintf("%s[%v, %v]", e.label, e.onset, e.offset)
}
