package agreement

import (
	"github.com/haimasree/pEYES/pkg/event"
	"github.com/haimasree/pEYES/pkg/match"
)

// LabelTiming summarizes onset and offset differences for one group of
// matched pairs.
type LabelTiming struct {
	Onset  Stats
	Offset Stats
}

// TimingReport is the distribution of timing differences for a comparison,
// overall and keyed by the A-side (ground truth) label of each pair.
type TimingReport struct {
	Overall  LabelTiming
	PerLabel map[event.Label]LabelTiming
}

// Timing computes onset and offset differences over matched pairs. The sign
// convention is prediction minus ground truth: a positive onset difference
// means the B event starts later than its A counterpart.
func Timing(c *match.Correspondence, a, b event.Sequence) TimingReport {
	var onsets, offsets []float64
	perOnsets := make(map[event.Label][]float64)
	perOffsets := make(map[event.Label][]float64)

	for _, p := range c.Pairs() {
		ea, eb := a.At(p.A), b.At(p.B)
		dOn := eb.Onset() - ea.Onset()
		dOff := eb.Offset() - ea.Offset()
		onsets = append(onsets, dOn)
		offsets = append(offsets, dOff)
		perOnsets[ea.Label()] = append(perOnsets[ea.Label()], dOn)
		perOffsets[ea.Label()] = append(perOffsets[ea.Label()], dOff)
	}

	report := TimingReport{
		Overall:  LabelTiming{Onset: summarize(onsets), Offset: summarize(offsets)},
		PerLabel: make(map[event.Label]LabelTiming),
	}
	for label := range perOnsets {
		report.PerLabel[label] = LabelTiming{
			Onset:  summarize(perOnsets[label]),
			Offset: summarize(perOffsets[label]),
		}
	}
	return report
}
