package event

import (
	"fmt"
	"math"
)

// GapPolicy selects the label assigned to grid ticks not covered by any
// event.
type GapPolicy int

const (
	// GapUndefined labels uncovered ticks Undefined.
	GapUndefined GapPolicy = iota
	// GapNearest labels uncovered ticks with the label of the temporally
	// nearest event; ties go to the earlier event.
	GapNearest
)

// Resample discretizes the sequence onto a fixed grid spanning [start, end)
// with the given tick resolution. Each tick is labeled by the event covering
// its center, or per the gap policy when no event does. It fails with
// ErrEmptySequence when the sequence has no events and with ErrInvalidEvent
// when resolution is not positive or the range is empty.
//
// The explicit range lets two sequences be discretized onto one shared grid
// for sample-level comparison.
func (s Sequence) Resample(start, end, resolution float64, policy GapPolicy) ([]Label, error) {
	if len(s.events) == 0 {
		return nil, fmt.Errorf("%w: cannot resample zero events", ErrEmptySequence)
	}
	if resolution <= 0 || math.IsNaN(resolution) {
		return nil, fmt.Errorf("%w: resolution must be positive, got %v", ErrInvalidEvent, resolution)
	}
	if end <= start || math.IsNaN(start) || math.IsNaN(end) {
		return nil, fmt.Errorf("%w: empty resample range [%v, %v)", ErrEmptySequence, start, end)
	}

	ticks := int(math.Ceil((end - start) / resolution))
	out := make([]Label, ticks)
	for i := range out {
		center := start + (float64(i)+0.5)*resolution
		out[i] = s.labelAt(center, policy)
	}
	return out, nil
}

// ToLabels discretizes the sequence over its own covered range. Ticks in gaps
// between events are labeled Undefined, matching the usual convention for
// samples no event claims.
func (s Sequence) ToLabels(resolution float64) ([]Label, error) {
	return s.Resample(s.Start(), s.End(), resolution, GapUndefined)
}

// labelAt returns the label governing instant t.
func (s Sequence) labelAt(t float64, policy GapPolicy) Label {
	bestDist := math.Inf(1)
	best := Undefined
	for _, e := range s.events {
		if t >= e.onset && t < e.offset {
			return e.label
		}
		var d float64
		switch {
		case t < e.onset:
			d = e.onset - t
		default:
			d = t - e.offset
		}
		if d < bestDist {
			bestDist = d
			best = e.label
		}
	}
	if policy == GapNearest {
		return best
	}
	return Undefined
}
