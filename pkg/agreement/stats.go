// Package agreement quantifies the agreement between two gaze event
// sequences given a correspondence between them.
//
// All functions here are pure: they never mutate their inputs and are safe to
// call concurrently. Mathematically undefined results (kappa on a single
// class, precision with no predictions) are reported as NaN with a reason
// rather than as errors, so surrounding statistics stay visible to callers.
package agreement

import (
	"math"
	"sort"
)

// Measure is a scalar metric value. Reason is non-empty exactly when Value is
// a NaN sentinel for a mathematically undefined case.
type Measure struct {
	Value  float64
	Reason string
}

// undefined builds the NaN sentinel for a given reason.
func undefined(reason string) Measure {
	return Measure{Value: math.NaN(), Reason: reason}
}

// Stats summarizes the distribution of a set of observations.
type Stats struct {
	N    int
	Mean float64
	Std  float64
	Min  float64
	Max  float64
	P25  float64
	P50  float64
	P75  float64
}

// summarize computes distribution statistics over xs. All fields are NaN for
// an empty input; Std is NaN for a single observation.
func summarize(xs []float64) Stats {
	if len(xs) == 0 {
		nan := math.NaN()
		return Stats{Mean: nan, Std: nan, Min: nan, Max: nan, P25: nan, P50: nan, P75: nan}
	}
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	var sum float64
	for _, x := range sorted {
		sum += x
	}
	mean := sum / float64(len(sorted))

	std := math.NaN()
	if len(sorted) > 1 {
		var ss float64
		for _, x := range sorted {
			d := x - mean
			ss += d * d
		}
		std = math.Sqrt(ss / float64(len(sorted)-1))
	}

	return Stats{
		N:    len(sorted),
		Mean: mean,
		Std:  std,
		Min:  sorted[0],
		Max:  sorted[len(sorted)-1],
		P25:  quantile(sorted, 0.25),
		P50:  quantile(sorted, 0.50),
		P75:  quantile(sorted, 0.75),
	}
}

// quantile interpolates linearly between the closest ranks of an already
// sorted sample.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
