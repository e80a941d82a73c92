package agreement

import (
	"fmt"
	"math"

	"github.com/haimasree/pEYES/pkg/event"
	"github.com/haimasree/pEYES/pkg/match"
)

// Correction selects the floor/ceiling adjustment applied to hit and
// false-alarm rates before the probit transform.
type Correction string

const (
	// CorrectionNone applies no adjustment; extreme rates yield the NaN
	// sentinel.
	CorrectionNone Correction = ""
	// CorrectionLogLinear adds 0.5 to both counts and 1 to both
	// denominators regardless of the observed rates.
	CorrectionLogLinear Correction = "loglinear"
	// CorrectionMacmillan replaces rates of 0 with 1/(2N) and rates of 1
	// with 1 - 1/(2N).
	CorrectionMacmillan Correction = "macmillan"
)

// DPrime computes the sensitivity index d' treating the given labels as the
// positive class. Ground-truth events of a positive label are the signal
// trials; matched pairs with a positive label on both sides are hits and the
// remaining positive predictions are false alarms.
func DPrime(c *match.Correspondence, a, b event.Sequence, positive []event.Label, corr Correction) (Measure, error) {
	switch corr {
	case CorrectionNone, CorrectionLogLinear, CorrectionMacmillan:
	default:
		return Measure{}, fmt.Errorf("%w: %q", ErrUnknownCorrection, string(corr))
	}

	isPositive := make(map[event.Label]bool, len(positive))
	for _, l := range positive {
		isPositive[l] = true
	}

	p, pp, tp := 0, 0, 0
	for _, e := range a.Events() {
		if isPositive[e.Label()] {
			p++
		}
	}
	n := a.Len() - p
	for _, e := range b.Events() {
		if isPositive[e.Label()] {
			pp++
		}
	}
	for _, pair := range c.Pairs() {
		if isPositive[a.At(pair.A).Label()] && isPositive[b.At(pair.B).Label()] {
			tp++
		}
	}

	if p == 0 {
		return undefined("no positive ground-truth events"), nil
	}
	if n == 0 {
		return undefined("no negative ground-truth events"), nil
	}

	var hitRate, faRate float64
	switch corr {
	case CorrectionLogLinear:
		hitRate = (float64(tp) + 0.5) / (float64(p) + 1)
		faRate = (float64(pp-tp) + 0.5) / (float64(n) + 1)
	case CorrectionMacmillan:
		hitRate = clampRate(float64(tp)/float64(p), p)
		faRate = clampRate(float64(pp-tp)/float64(n), n)
	default:
		hitRate = float64(tp) / float64(p)
		faRate = float64(pp-tp) / float64(n)
		if hitRate == 0 || hitRate == 1 || faRate == 0 || faRate == 1 {
			return undefined("extreme hit or false-alarm rate without correction"), nil
		}
	}

	return Measure{Value: zscore(hitRate) - zscore(faRate)}, nil
}

// clampRate applies the Macmillan & Kaplan floor/ceiling replacement.
func clampRate(rate float64, trials int) float64 {
	half := 1 / (2 * float64(trials))
	if rate <= 0 {
		return half
	}
	if rate >= 1 {
		return 1 - half
	}
	return rate
}

// zscore is the inverse standard normal CDF.
func zscore(p float64) float64 {
	return math.Sqrt2 * math.Erfinv(2*p-1)
}
