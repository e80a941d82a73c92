package agreement

import (
	"fmt"
	"math"

	"github.com/haimasree/pEYES/pkg/event"
)

// EditDistance resamples both sequences onto one shared grid covering the
// union of their time ranges and returns the normalized Levenshtein distance
// between the resulting label strings. The result is in [0, 1], symmetric in
// its arguments, and independent of any correspondence, which makes it robust
// to event-boundary disagreement.
//
// The grid resolution is a required, explicit parameter: the discretization
// is a policy choice, and results are only reproducible when callers pin it.
// Grid ticks not covered by an event take the label of the nearest event.
func EditDistance(a, b event.Sequence, resolution float64) (float64, error) {
	if a.Len() == 0 || b.Len() == 0 {
		return 0, fmt.Errorf("%w: edit distance needs events on both sides", event.ErrEmptySequence)
	}
	start := math.Min(a.Start(), b.Start())
	end := math.Max(a.End(), b.End())
	if end <= start {
		return 0, fmt.Errorf("%w: zero covered duration", event.ErrEmptySequence)
	}

	la, err := a.Resample(start, end, resolution, event.GapNearest)
	if err != nil {
		return 0, err
	}
	lb, err := b.Resample(start, end, resolution, event.GapNearest)
	if err != nil {
		return 0, err
	}

	longer := len(la)
	if len(lb) > longer {
		longer = len(lb)
	}
	if longer == 0 {
		return 0, fmt.Errorf("%w: resampling produced no ticks", event.ErrEmptySequence)
	}
	return float64(levenshtein(la, lb)) / float64(longer), nil
}

// levenshtein computes the edit distance between two label strings with unit
// insert, delete and substitute costs. Two-row dynamic program.
func levenshtein(a, b []event.Label) int {
	if len(a) < len(b) {
		a, b = b, a
	}
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			sub := prev[j-1]
			if a[i-1] != b[j-1] {
				sub++
			}
			del := prev[j] + 1
			ins := cur[j-1] + 1
			cur[j] = min3(sub, del, ins)
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
