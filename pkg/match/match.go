package match

import (
	"github.com/haimasree/pEYES/pkg/event"
)

// Do computes the correspondence between sequences a and b under the given
// strategy. Parameters are validated before any matching work begins. An
// empty sequence on either side yields an all-unmatched correspondence.
func Do(a, b event.Sequence, strategy Strategy, p Params) (*Correspondence, error) {
	if err := p.Validate(strategy); err != nil {
		return nil, err
	}
	if a.Len() == 0 || b.Len() == 0 {
		return newCorrespondence(a.Len(), b.Len()), nil
	}
	switch strategy {
	case WindowOverlap:
		return greedy(a, b, windowOverlapScorer(p), maximize), nil
	case IoUThreshold:
		return greedy(a, b, iouScorer(p), maximize), nil
	case MaxOverlap:
		return maxOverlapAssign(a, b, p), nil
	case TimeWindow:
		return greedy(a, b, timeWindowScorer(p), minimize), nil
	case FirstOverlap:
		return greedy(a, b, onsetOverlapScorer(p), minimize), nil
	case LastOverlap:
		return greedy(a, b, onsetOverlapScorer(p), maximize), nil
	case LongestOverlap:
		return greedy(a, b, longestOverlapScorer(p), maximize), nil
	case L2Timing:
		return greedy(a, b, l2Scorer(p), minimize), nil
	}
	// Unreachable: Validate rejects unknown strategies first.
	return nil, ErrUnknownStrategy
}
