package agreement

import (
	"fmt"
	"math"

	"github.com/haimasree/pEYES/pkg/event"
)

// SampleReport carries sample-level agreement computed on resampled label
// grids rather than on matched event pairs.
type SampleReport struct {
	Accuracy         float64
	BalancedAccuracy Measure
	MCC              Measure
	Kappa            Measure
}

// SampleLevel resamples both sequences onto one shared grid covering the
// union of their time ranges and compares the grids tick by tick. Ticks not
// covered by any event are Undefined, so coverage disagreement is scored, not
// hidden. Fails with event.ErrEmptySequence when either input has no events
// or the covered duration is zero.
func SampleLevel(a, b event.Sequence, resolution float64) (SampleReport, error) {
	if a.Len() == 0 || b.Len() == 0 {
		return SampleReport{}, fmt.Errorf("%w: sample-level metrics need events on both sides", event.ErrEmptySequence)
	}
	start := math.Min(a.Start(), b.Start())
	end := math.Max(a.End(), b.End())
	if end <= start {
		return SampleReport{}, fmt.Errorf("%w: zero covered duration", event.ErrEmptySequence)
	}

	la, err := a.Resample(start, end, resolution, event.GapUndefined)
	if err != nil {
		return SampleReport{}, err
	}
	lb, err := b.Resample(start, end, resolution, event.GapUndefined)
	if err != nil {
		return SampleReport{}, err
	}

	confusion := confusionFromLabels(la, lb)
	total := float64(confusion.Total())

	correct := 0
	for i := range la {
		if la[i] == lb[i] {
			correct++
		}
	}

	return SampleReport{
		Accuracy:         float64(correct) / total,
		BalancedAccuracy: balancedAccuracy(confusion),
		MCC:              matthews(confusion),
		Kappa:            confusion.Kappa(),
	}, nil
}

// balancedAccuracy averages per-class recall over the classes present on the
// A side.
func balancedAccuracy(m ConfusionMatrix) Measure {
	byA, _ := m.Marginals()
	if len(byA) == 0 {
		return undefined("no samples")
	}
	var sum float64
	for label, nA := range byA {
		sum += float64(m.Count(label, label)) / float64(nA)
	}
	return Measure{Value: sum / float64(len(byA))}
}

// matthews computes the multiclass Matthews correlation coefficient from the
// confusion matrix using the covariance formulation.
func matthews(m ConfusionMatrix) Measure {
	s := float64(m.Total())
	if s == 0 {
		return undefined("no samples")
	}
	byA, byB := m.Marginals()

	var c float64 // total correctly classified
	for _, label := range event.AllLabels() {
		c += float64(m.Count(label, label))
	}

	var sumTP, sumT2, sumP2 float64
	for label, nA := range byA {
		t := float64(nA)
		p := float64(byB[label])
		sumTP += t * p
		sumT2 += t * t
	}
	for _, nB := range byB {
		p := float64(nB)
		sumP2 += p * p
	}

	denom := math.Sqrt((s*s - sumP2) * (s*s - sumT2))
	if denom == 0 {
		return undefined("single class on one side")
	}
	return Measure{Value: (c*s - sumTP) / denom}
}
