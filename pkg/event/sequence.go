package event

import (
	"fmt"
	"math"
)

// Sequence is an immutable ordered collection of events sharing one time
// axis. Events are ordered by onset and pairwise non-overlapping; adjacent
// events may share a boundary timestamp.
type Sequence struct {
	events []Event
}

// NewSequence validates and wraps the given events. It fails with
// ErrUnsortedSequence if onsets are not non-decreasing and with ErrOverlap if
// two events share more than a zero-width boundary. The input slice is copied
// so later mutation by the caller cannot affect the sequence.
func NewSequence(events []Event) (Sequence, error) {
	copied := make([]Event, len(events))
	copy(copied, events)
	for i := 1; i < len(copied); i++ {
		prev, cur := copied[i-1], copied[i]
		if cur.onset < prev.onset {
			return Sequence{}, fmt.Errorf("%w: event %d onset %v precedes event %d onset %v",
				ErrUnsortedSequence, i, cur.onset, i-1, prev.onset)
		}
		if cur.onset < prev.offset {
			return Sequence{}, fmt.Errorf("%w: event %d %s intersects event %d %s",
				ErrOverlap, i, cur, i-1, prev)
		}
	}
	return Sequence{events: copied}, nil
}

// MustNewSequence is NewSequence for statically known-good inputs; it panics
// on error. Intended for tests and literal fixtures.
func MustNewSequence(events []Event) Sequence {
	s, err := NewSequence(events)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of events.
func (s Sequence) Len() int { return len(s.events) }

// At returns the i-th event in onset order.
func (s Sequence) At(i int) Event { return s.events[i] }

// Events returns a copy of the underlying events.
func (s Sequence) Events() []Event {
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

// Start returns the onset of the first event, or NaN for an empty sequence.
func (s Sequence) Start() float64 {
	if len(s.events) == 0 {
		return math.NaN()
	}
	return s.events[0].onset
}

// End returns the largest offset across all events, or NaN for an empty
// sequence.
func (s Sequence) End() float64 {
	if len(s.events) == 0 {
		return math.NaN()
	}
	end := s.events[0].offset
	for _, e := range s.events[1:] {
		end = math.Max(end, e.offset)
	}
	return end
}

// Duration returns the total covered time range End - Start, or 0 for an
// empty sequence.
func (s Sequence) Duration() float64 {
	if len(s.events) == 0 {
		return 0
	}
	return s.End() - s.Start()
}

// CountByLabel returns the number of events carrying each label. Labels with
// no events are absent from the result.
func (s Sequence) CountByLabel() map[Label]int {
	counts := make(map[Label]int)
	for _, e := range s.events {
		counts[e.label]++
	}
	return counts
}

// Labels returns the label of each event in onset order.
func (s Sequence) Labels() []Label {
	out := make([]Label, len(s.events))
	for i, e := range s.events {
		out[i] = e.label
	}
	return out
}
