package simulate

import (
	"math"

	"github.com/haimasree/pEYES/pkg/event"
)

// PerturbParams controls how a degraded copy of a sequence differs from its
// source.
type PerturbParams struct {
	// BoundaryJitter is the standard deviation, in the sequence's time
	// unit, of the shift applied to each boundary between adjacent
	// events.
	BoundaryJitter float64

	// LabelFlip is the probability an event's label is replaced with a
	// random different one.
	LabelFlip float64

	// Drop is the probability an event is removed entirely, leaving a
	// gap.
	Drop float64
}

// Perturb produces a degraded copy of s, simulating an imperfect second
// rater. Boundaries shared by adjacent events move together and are clamped
// so the result remains a valid sequence; the source is never modified.
func (g *Generator) Perturb(s event.Sequence, p PerturbParams) event.Sequence {
	src := s.Events()
	if len(src) == 0 {
		return s
	}

	onsets := make([]float64, len(src))
	offsets := make([]float64, len(src))
	for i, e := range src {
		onsets[i] = e.Onset()
		offsets[i] = e.Offset()
	}

	if p.BoundaryJitter > 0 {
		for i := 0; i < len(src)-1; i++ {
			if offsets[i] != onsets[i+1] {
				continue // only shared boundaries move together
			}
			shift := g.rng.NormFloat64() * p.BoundaryJitter
			// Clamp so neither neighbor collapses below a sliver.
			lo := onsets[i] - offsets[i] + 1
			hi := offsets[i+1] - offsets[i] - 1
			if lo > hi {
				continue // events too short to move this boundary
			}
			shift = math.Max(lo, math.Min(hi, shift))
			offsets[i] += shift
			onsets[i+1] += shift
		}
	}

	out := make([]event.Event, 0, len(src))
	for i, e := range src {
		if p.Drop > 0 && g.rng.Float64() < p.Drop {
			continue
		}
		label := e.Label()
		if p.LabelFlip > 0 && g.rng.Float64() < p.LabelFlip {
			label = g.otherLabel(label)
		}
		out = append(out, event.MustNew(label, onsets[i], offsets[i]))
	}
	return event.MustNewSequence(out)
}

// otherLabel picks a random recognized label different from l.
func (g *Generator) otherLabel(l event.Label) event.Label {
	all := event.AllLabels()
	for {
		candidate := all[g.rng.Intn(len(all))]
		if candidate != l && candidate != event.Undefined {
			return candidate
		}
	}
}
