package agreement

import (
	"github.com/haimasree/pEYES/pkg/event"
	"github.com/haimasree/pEYES/pkg/match"
)

// ConfusionMatrix counts (label in A, label in B) co-occurrences.
type ConfusionMatrix struct {
	counts map[[2]event.Label]int
	total  int
}

// Confusion tallies the labels of matched pairs. Unmatched events do not
// enter the matrix.
func Confusion(c *match.Correspondence, a, b event.Sequence) ConfusionMatrix {
	m := ConfusionMatrix{counts: make(map[[2]event.Label]int)}
	for _, p := range c.Pairs() {
		m.add(a.At(p.A).Label(), b.At(p.B).Label())
	}
	return m
}

// confusionFromLabels tallies two aligned label slices of equal length.
func confusionFromLabels(la, lb []event.Label) ConfusionMatrix {
	m := ConfusionMatrix{counts: make(map[[2]event.Label]int)}
	for i := range la {
		m.add(la[i], lb[i])
	}
	return m
}

func (m *ConfusionMatrix) add(la, lb event.Label) {
	m.counts[[2]event.Label{la, lb}]++
	m.total++
}

// Count returns the number of pairs observed as (la, lb).
func (m ConfusionMatrix) Count(la, lb event.Label) int {
	return m.counts[[2]event.Label{la, lb}]
}

// Total returns the number of observations in the matrix.
func (m ConfusionMatrix) Total() int { return m.total }

// Marginals returns the per-label totals on the A and B sides.
func (m ConfusionMatrix) Marginals() (byA, byB map[event.Label]int) {
	byA = make(map[event.Label]int)
	byB = make(map[event.Label]int)
	for key, n := range m.counts {
		byA[key[0]] += n
		byB[key[1]] += n
	}
	return byA, byB
}

// Kappa computes Cohen's chance-corrected agreement from the matrix using
// the standard marginal-probability formula. Degenerate inputs yield the NaN
// sentinel with a reason: an empty matrix, or marginals so concentrated that
// expected agreement equals one (a single label throughout).
func (m ConfusionMatrix) Kappa() Measure {
	if m.total == 0 {
		return undefined("no matched pairs")
	}

	agreed := 0
	for key, n := range m.counts {
		if key[0] == key[1] {
			agreed += n
		}
	}
	po := float64(agreed) / float64(m.total)

	byA, byB := m.Marginals()
	var pe float64
	for label, nA := range byA {
		pe += float64(nA) * float64(byB[label])
	}
	pe /= float64(m.total) * float64(m.total)

	if pe == 1 {
		return undefined("single label on both sides, chance agreement is total")
	}
	return Measure{Value: (po - pe) / (1 - pe)}
}
