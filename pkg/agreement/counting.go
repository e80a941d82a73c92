package agreement

import (
	"math"

	"github.com/haimasree/pEYES/pkg/event"
	"github.com/haimasree/pEYES/pkg/match"
)

// MislabeledPolicy decides how a matched pair with disagreeing labels enters
// the contingency counts. The choice is a policy, not a correctness question,
// so it is exposed as explicit configuration.
type MislabeledPolicy int

const (
	// MislabeledAsError counts a wrong-label match as one false positive
	// plus one false negative.
	MislabeledAsError MislabeledPolicy = iota
	// MislabeledSeparate keeps wrong-label matches in their own bucket,
	// outside the FP and FN tallies.
	MislabeledSeparate
)

// Counts are raw contingency tallies over a correspondence.
type Counts struct {
	TP         int
	FP         int
	FN         int
	Mislabeled int
}

// PRF carries precision, recall and F1 with their underlying counts.
// Precision is NaN when there are no predicted positives and recall is NaN
// when there are no actual positives. F1 is NaN only when both sequences are
// empty; otherwise an undefined precision or recall degrades F1 to 0 so that
// degenerate comparisons still rank below any real agreement.
type PRF struct {
	Precision float64
	Recall    float64
	F1        float64
	Counts    Counts
}

// CountingReport is the precision/recall/F1 breakdown for one comparison.
type CountingReport struct {
	Overall  PRF
	PerLabel map[event.Label]PRF
}

// Counting derives counting metrics from a correspondence. Matched pairs with
// equal labels are true positives; unmatched A events are false negatives and
// unmatched B events false positives. Wrong-label matches follow the given
// policy. Per-label values treat each label one-vs-rest: a pair matched
// across labels counts against both labels involved.
func Counting(c *match.Correspondence, a, b event.Sequence, policy MislabeledPolicy) CountingReport {
	var overall Counts
	for _, p := range c.Pairs() {
		if a.At(p.A).Label() == b.At(p.B).Label() {
			overall.TP++
			continue
		}
		if policy == MislabeledSeparate {
			overall.Mislabeled++
			continue
		}
		overall.FP++
		overall.FN++
	}
	overall.FN += len(c.UnmatchedA())
	overall.FP += len(c.UnmatchedB())

	report := CountingReport{
		Overall:  derivePRF(overall, a.Len() == 0 && b.Len() == 0),
		PerLabel: make(map[event.Label]PRF),
	}

	countsA := a.CountByLabel()
	countsB := b.CountByLabel()
	for _, label := range event.AllLabels() {
		nA, nB := countsA[label], countsB[label]
		if nA == 0 && nB == 0 {
			continue
		}
		tp := 0
		for _, p := range c.Pairs() {
			if a.At(p.A).Label() == label && b.At(p.B).Label() == label {
				tp++
			}
		}
		labelCounts := Counts{TP: tp, FN: nA - tp, FP: nB - tp}
		report.PerLabel[label] = derivePRF(labelCounts, false)
	}
	return report
}

// derivePRF turns raw counts into precision, recall and F1 under the edge
// case policy documented on PRF.
func derivePRF(counts Counts, bothEmpty bool) PRF {
	precision := math.NaN()
	if counts.TP+counts.FP > 0 {
		precision = float64(counts.TP) / float64(counts.TP+counts.FP)
	}
	recall := math.NaN()
	if counts.TP+counts.FN > 0 {
		recall = float64(counts.TP) / float64(counts.TP+counts.FN)
	}

	f1 := math.NaN()
	if !bothEmpty {
		if sum := precision + recall; sum > 0 {
			f1 = 2 * precision * recall / sum
		} else {
			f1 = 0
		}
	}
	return PRF{Precision: precision, Recall: recall, F1: f1, Counts: counts}
}
