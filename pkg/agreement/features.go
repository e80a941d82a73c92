package agreement

import (
	"fmt"
	"strings"

	"github.com/haimasree/pEYES/pkg/event"
	"github.com/haimasree/pEYES/pkg/match"
)

// Feature names a per-pair quantity computed over matched events.
type Feature string

// Recognized features. Difference features follow the package-wide sign
// convention of prediction minus ground truth; the remaining features are
// symmetric in the pair.
const (
	FeatureOnset          Feature = "onset"
	FeatureOffset         Feature = "offset"
	FeatureDuration       Feature = "duration"
	FeatureAmplitude      Feature = "amplitude"
	FeatureAzimuth        Feature = "azimuth"
	FeatureCenterDistance Feature = "center_distance"
	FeatureTimeOverlap    Feature = "time_overlap"
	FeatureTimeIoU        Feature = "time_iou"
	FeatureTimeL2         Feature = "time_l2"
)

// ParseFeature normalizes a feature name; a trailing "_difference" suffix is
// accepted for the difference features.
func ParseFeature(s string) (Feature, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.ReplaceAll(normalized, " ", "_")
	normalized = strings.ReplaceAll(normalized, "-", "_")
	normalized = strings.TrimSuffix(normalized, "_difference")
	switch f := Feature(normalized); f {
	case FeatureOnset, FeatureOffset, FeatureDuration, FeatureAmplitude,
		FeatureAzimuth, FeatureCenterDistance, FeatureTimeOverlap,
		FeatureTimeIoU, FeatureTimeL2:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFeature, s)
}

// FeatureDiffs evaluates the feature over every matched pair, ordered by A
// index. Events lacking an optional attribute contribute NaN.
func FeatureDiffs(c *match.Correspondence, a, b event.Sequence, feature Feature) ([]float64, error) {
	var eval func(ea, eb event.Event) float64
	switch feature {
	case FeatureOnset:
		eval = func(ea, eb event.Event) float64 { return eb.Onset() - ea.Onset() }
	case FeatureOffset:
		eval = func(ea, eb event.Event) float64 { return eb.Offset() - ea.Offset() }
	case FeatureDuration:
		eval = func(ea, eb event.Event) float64 { return eb.Duration() - ea.Duration() }
	case FeatureAmplitude:
		eval = func(ea, eb event.Event) float64 { return eb.Amplitude() - ea.Amplitude() }
	case FeatureAzimuth:
		eval = func(ea, eb event.Event) float64 { return eb.Azimuth() - ea.Azimuth() }
	case FeatureCenterDistance:
		eval = func(ea, eb event.Event) float64 { return ea.CenterDistance(eb) }
	case FeatureTimeOverlap:
		eval = func(ea, eb event.Event) float64 { return ea.Overlap(eb) }
	case FeatureTimeIoU:
		eval = func(ea, eb event.Event) float64 { return ea.IoU(eb) }
	case FeatureTimeL2:
		eval = func(ea, eb event.Event) float64 { return ea.TimeL2(eb) }
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFeature, string(feature))
	}

	pairs := c.Pairs()
	out := make([]float64, len(pairs))
	for i, p := range pairs {
		out[i] = eval(a.At(p.A), b.At(p.B))
	}
	return out, nil
}
