// Package match computes one-to-one correspondences between two gaze event
// sequences under a closed family of matching policies.
//
// Every strategy is a pure function of (A, B, Params): identical inputs
// always produce the identical Correspondence, which downstream agreement
// metrics rely on for reproducibility.
package match

import (
	"fmt"
	"math"
	"strings"
)

// Strategy names a matching policy. The set is closed: strategies are tagged
// variants selected by configuration, not an open plugin surface.
type Strategy string

// Recognized strategies.
const (
	// WindowOverlap greedily pairs events whose intervals overlap by at
	// least MinOverlap (absolute) and MinOverlapRatio (fraction of the
	// shorter event), preferring maximal overlap.
	WindowOverlap Strategy = "window-overlap"

	// IoUThreshold greedily pairs events whose interval IoU reaches
	// IoUThreshold, preferring maximal IoU.
	IoUThreshold Strategy = "iou-threshold"

	// MaxOverlap solves a global optimal one-to-one assignment maximizing
	// total overlap across all candidate pairs.
	MaxOverlap Strategy = "max-overlap"

	// TimeWindow pairs events whose reference timestamps fall within
	// MaxTimeDiff of each other, ignoring overlap entirely.
	TimeWindow Strategy = "time-window"

	// FirstOverlap pairs each event with the earliest still-unassigned
	// overlapping counterpart.
	FirstOverlap Strategy = "first-overlap"

	// LastOverlap pairs each event with the latest still-unassigned
	// overlapping counterpart.
	LastOverlap Strategy = "last-overlap"

	// LongestOverlap pairs each event with the longest still-unassigned
	// overlapping counterpart.
	LongestOverlap Strategy = "longest-overlap"

	// L2Timing pairs events by minimal l2 norm of their onset and offset
	// differences, bounded by MaxL2.
	L2Timing Strategy = "l2-timing"
)

// ParseStrategy normalizes a strategy name. Underscores and spaces are
// accepted in place of dashes.
func ParseStrategy(s string) (Strategy, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.ReplaceAll(normalized, "_", "-")
	normalized = strings.ReplaceAll(normalized, " ", "-")
	switch st := Strategy(normalized); st {
	case WindowOverlap, IoUThreshold, MaxOverlap, TimeWindow,
		FirstOverlap, LastOverlap, LongestOverlap, L2Timing:
		return st, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}

// Reference selects the representative timestamp used by TimeWindow.
type Reference int

const (
	// RefOnset compares event onsets.
	RefOnset Reference = iota
	// RefMidpoint compares event midpoints.
	RefMidpoint
	// RefOffset compares event offsets.
	RefOffset
)

// Params carries the numeric thresholds for all strategies. Each strategy
// reads only the fields relevant to it; the rest are ignored.
type Params struct {
	// MinOverlap is the minimum absolute overlap for candidate pairs of
	// the overlap-based strategies.
	MinOverlap float64

	// MinOverlapRatio is the minimum overlap as a fraction of the shorter
	// event's duration, in [0, 1]. Zero disables the ratio check.
	MinOverlapRatio float64

	// IoUThreshold is the minimum interval IoU for IoUThreshold
	// candidates, in (0, 1].
	IoUThreshold float64

	// MaxTimeDiff bounds the reference-timestamp distance for TimeWindow
	// candidates.
	MaxTimeDiff float64

	// MaxL2 bounds the timing l2 norm for L2Timing candidates.
	MaxL2 float64

	// Reference selects the timestamp compared by TimeWindow.
	Reference Reference

	// SameLabelOnly restricts candidates to pairs with identical labels.
	SameLabelOnly bool
}

// Validate checks the parameters relevant to the given strategy. It fails
// fast with ErrInvalidParameter before any matching work begins.
func (p Params) Validate(s Strategy) error {
	switch s {
	case WindowOverlap, MaxOverlap, FirstOverlap, LastOverlap, LongestOverlap:
		if p.MinOverlap < 0 || math.IsNaN(p.MinOverlap) {
			return fmt.Errorf("%w: min_overlap %v must be >= 0", ErrInvalidParameter, p.MinOverlap)
		}
		if p.MinOverlapRatio < 0 || p.MinOverlapRatio > 1 || math.IsNaN(p.MinOverlapRatio) {
			return fmt.Errorf("%w: min_overlap_ratio %v must be in [0, 1]", ErrInvalidParameter, p.MinOverlapRatio)
		}
	case IoUThreshold:
		if !(p.IoUThreshold > 0 && p.IoUThreshold <= 1) {
			return fmt.Errorf("%w: iou_threshold %v must be in (0, 1]", ErrInvalidParameter, p.IoUThreshold)
		}
	case TimeWindow:
		if p.MaxTimeDiff < 0 || math.IsNaN(p.MaxTimeDiff) {
			return fmt.Errorf("%w: max_time_diff %v must be >= 0", ErrInvalidParameter, p.MaxTimeDiff)
		}
		switch p.Reference {
		case RefOnset, RefMidpoint, RefOffset:
		default:
			return fmt.Errorf("%w: unknown reference %d", ErrInvalidParameter, int(p.Reference))
		}
	case L2Timing:
		if p.MaxL2 < 0 || math.IsNaN(p.MaxL2) {
			return fmt.Errorf("%w: max_l2 %v must be >= 0", ErrInvalidParameter, p.MaxL2)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStrategy, string(s))
	}
	return nil
}
