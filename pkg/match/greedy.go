package match

import (
	"math"

	"github.com/haimasree/pEYES/pkg/event"
)

// candidate is a B-side event eligible to pair with a given A-side event.
// score is the strategy's primary criterion; tiebreak is secondary with
// lower values preferred; remaining ties go to the lower B index.
type candidate struct {
	b        int
	score    float64
	tiebreak float64
}

// scorer reports whether b is an eligible counterpart for a, and how the
// pairing ranks.
type scorer func(a, b event.Event) (candidate, bool)

// maximize prefers larger scores, minimize smaller ones.
type direction int

const (
	maximize direction = iota
	minimize
)

// greedy walks A in onset order and assigns each event the best
// still-unassigned candidate. Fast and deterministic, but it may miss a
// globally better assignment; MaxOverlap exists for callers that need the
// optimum.
func greedy(a, b event.Sequence, score scorer, dir direction) *Correspondence {
	c := newCorrespondence(a.Len(), b.Len())
	for ai := 0; ai < a.Len(); ai++ {
		best := candidate{b: Unmatched}
		found := false
		for bi := 0; bi < b.Len(); bi++ {
			if c.AFor(bi) != Unmatched {
				continue
			}
			cand, ok := score(a.At(ai), b.At(bi))
			if !ok {
				continue
			}
			cand.b = bi
			if !found || prefer(cand, best, dir) {
				best = cand
				found = true
			}
		}
		if found {
			c.pair(ai, best.b, best.score)
		}
	}
	return c
}

// prefer reports whether x outranks y under the given score direction.
func prefer(x, y candidate, dir direction) bool {
	if x.score != y.score {
		if dir == maximize {
			return x.score > y.score
		}
		return x.score < y.score
	}
	if x.tiebreak != y.tiebreak {
		return x.tiebreak < y.tiebreak
	}
	return x.b < y.b
}

// overlapEligible applies the shared overlap cutoffs: a pair is a candidate
// only if the intervals truly overlap, the overlap reaches MinOverlap, and,
// when MinOverlapRatio is set, the overlap covers at least that fraction of
// the shorter event.
func overlapEligible(a, b event.Event, p Params) (float64, bool) {
	ov := a.Overlap(b)
	if ov <= 0 || ov < p.MinOverlap {
		return 0, false
	}
	if p.MinOverlapRatio > 0 {
		shorter := math.Min(a.Duration(), b.Duration())
		if shorter > 0 && ov < p.MinOverlapRatio*shorter {
			return 0, false
		}
	}
	return ov, true
}

// windowOverlapScorer ranks candidates by overlap, then onset proximity.
func windowOverlapScorer(p Params) scorer {
	return func(a, b event.Event) (candidate, bool) {
		if p.SameLabelOnly && a.Label() != b.Label() {
			return candidate{}, false
		}
		ov, ok := overlapEligible(a, b, p)
		if !ok {
			return candidate{}, false
		}
		return candidate{score: ov, tiebreak: math.Abs(a.Onset() - b.Onset())}, true
	}
}

// iouScorer ranks candidates by interval IoU, then onset proximity.
func iouScorer(p Params) scorer {
	return func(a, b event.Event) (candidate, bool) {
		if p.SameLabelOnly && a.Label() != b.Label() {
			return candidate{}, false
		}
		iou := a.IoU(b)
		if iou < p.IoUThreshold {
			return candidate{}, false
		}
		return candidate{score: iou, tiebreak: math.Abs(a.Onset() - b.Onset())}, true
	}
}

// timeWindowScorer ranks candidates by reference-timestamp proximity.
func timeWindowScorer(p Params) scorer {
	ref := func(e event.Event) float64 {
		switch p.Reference {
		case RefMidpoint:
			return e.Midpoint()
		case RefOffset:
			return e.Offset()
		default:
			return e.Onset()
		}
	}
	return func(a, b event.Event) (candidate, bool) {
		if p.SameLabelOnly && a.Label() != b.Label() {
			return candidate{}, false
		}
		diff := math.Abs(ref(a) - ref(b))
		if diff > p.MaxTimeDiff {
			return candidate{}, false
		}
		return candidate{score: diff}, true
	}
}

// onsetOverlapScorer scores eligible counterparts by their onset. Minimized
// it selects the first overlapping event, maximized the last one.
func onsetOverlapScorer(p Params) scorer {
	return func(a, b event.Event) (candidate, bool) {
		if p.SameLabelOnly && a.Label() != b.Label() {
			return candidate{}, false
		}
		if _, ok := overlapEligible(a, b, p); !ok {
			return candidate{}, false
		}
		return candidate{score: b.Onset()}, true
	}
}

// longestOverlapScorer prefers the counterpart of greatest duration.
func longestOverlapScorer(p Params) scorer {
	return func(a, b event.Event) (candidate, bool) {
		if p.SameLabelOnly && a.Label() != b.Label() {
			return candidate{}, false
		}
		if _, ok := overlapEligible(a, b, p); !ok {
			return candidate{}, false
		}
		return candidate{score: b.Duration()}, true
	}
}

// l2Scorer ranks candidates by the l2 norm of onset and offset differences.
func l2Scorer(p Params) scorer {
	return func(a, b event.Event) (candidate, bool) {
		if p.SameLabelOnly && a.Label() != b.Label() {
			return candidate{}, false
		}
		l2 := a.TimeL2(b)
		if l2 > p.MaxL2 {
			return candidate{}, false
		}
		return candidate{score: l2}, true
	}
}
