package event

import (
	"fmt"
	"strings"
)

// Label identifies the perceptual class of a gaze event. The numeric values
// follow the convention used by most eye-tracking annotation tools, where 0
// marks samples that no rater could classify.
type Label int

// Recognized event labels.
const (
	Undefined Label = iota
	Fixation
	Saccade
	PSO
	SmoothPursuit
	Blink
)

// labelNames maps labels to their canonical lowercase names.
var labelNames = map[Label]string{
	Undefined:     "undefined",
	Fixation:      "fixation",
	Saccade:       "saccade",
	PSO:           "pso",
	SmoothPursuit: "smooth_pursuit",
	Blink:         "blink",
}

// AllLabels returns every recognized label in numeric order.
func AllLabels() []Label {
	return []Label{Undefined, Fixation, Saccade, PSO, SmoothPursuit, Blink}
}

// Valid reports whether l is one of the recognized labels.
func (l Label) Valid() bool {
	_, ok := labelNames[l]
	return ok
}

// String returns the canonical lowercase name of the label.
func (l Label) String() string {
	if name, ok := labelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("label(%d)", int(l))
}

// ParseLabel converts a case-insensitive label name to a Label.
// Spaces and dashes are treated as underscores.
func ParseLabel(s string) (Label, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.ReplaceAll(normalized, " ", "_")
	normalized = strings.ReplaceAll(normalized, "-", "_")
	for l, name := range labelNames {
		if name == normalized {
			return l, nil
		}
	}
	return Undefined, fmt.Errorf("%w: unknown label %q", ErrInvalidEvent, s)
}
