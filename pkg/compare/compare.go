// Package compare orchestrates event matching and agreement metrics into a
// single deterministic comparison of two gaze event sequences.
//
// Conventions:
//   - Inputs are immutable; every call produces a fresh, independently owned
//     Result, so concurrent comparisons need no locking.
//   - Configuration is validated fail-fast before any computation begins.
//   - All functions accept context.Context as the first parameter.
package compare

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/haimasree/pEYES/pkg/agreement"
	"github.com/haimasree/pEYES/pkg/event"
	"github.com/haimasree/pEYES/pkg/match"
)

// Metric names one agreement computation. The set is closed.
type Metric string

// Recognized metrics.
const (
	MetricPrecisionRecallF1 Metric = "precision_recall_f1"
	MetricKappa             Metric = "kappa"
	MetricTiming            Metric = "timing"
	MetricEditDistance      Metric = "edit_distance"
	MetricDPrime            Metric = "d_prime"
	MetricSampleLevel       Metric = "sample_level"
)

// ParseMetric normalizes a metric name.
func ParseMetric(s string) (Metric, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.ReplaceAll(normalized, " ", "_")
	normalized = strings.ReplaceAll(normalized, "-", "_")
	switch m := Metric(normalized); m {
	case MetricPrecisionRecallF1, MetricKappa, MetricTiming,
		MetricEditDistance, MetricDPrime, MetricSampleLevel:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMetric, s)
}

// Config selects the matching strategy and the metrics for one comparison.
type Config struct {
	// Strategy and Params drive matching; Params.SameLabelOnly also
	// restricts candidate pairs to identical labels.
	Strategy match.Strategy
	Params   match.Params

	// Metrics are the agreement computations to run.
	Metrics []Metric

	// Resolution is the sample grid tick size, required by
	// MetricEditDistance and MetricSampleLevel.
	Resolution float64

	// Mislabeled selects how wrong-label matches enter the counting
	// metrics.
	Mislabeled agreement.MislabeledPolicy

	// PositiveLabels is the positive class for MetricDPrime. Defaults to
	// every label except Undefined.
	PositiveLabels []event.Label

	// Correction is the d-prime floor/ceiling correction.
	Correction agreement.Correction
}

// Validate checks the configuration without touching the inputs.
func (cfg Config) Validate() error {
	if err := cfg.Params.Validate(cfg.Strategy); err != nil {
		return err
	}
	if len(cfg.Metrics) == 0 {
		return fmt.Errorf("%w: no metrics requested", ErrInvalidConfig)
	}
	needsGrid := false
	for _, m := range cfg.Metrics {
		switch m {
		case MetricPrecisionRecallF1, MetricKappa, MetricTiming, MetricDPrime:
		case MetricEditDistance, MetricSampleLevel:
			needsGrid = true
		default:
			return fmt.Errorf("%w: %q", ErrUnknownMetric, string(m))
		}
	}
	if needsGrid && cfg.Resolution <= 0 {
		return fmt.Errorf("%w: resample resolution must be positive, got %v", ErrInvalidConfig, cfg.Resolution)
	}
	switch cfg.Correction {
	case agreement.CorrectionNone, agreement.CorrectionLogLinear, agreement.CorrectionMacmillan:
	default:
		return fmt.Errorf("%w: %q", agreement.ErrUnknownCorrection, string(cfg.Correction))
	}
	return nil
}

// Result aggregates everything computed for one comparison. Metric fields
// are nil unless requested. The result is immutable once returned.
type Result struct {
	Correspondence *match.Correspondence

	Counting     *agreement.CountingReport
	Kappa        *agreement.Measure
	Timing       *agreement.TimingReport
	EditDistance *agreement.Measure
	DPrime       *agreement.Measure
	Sample       *agreement.SampleReport
}

// Compare matches a against b and computes the requested metrics. Matching
// always completes before metrics run; independent metrics then compute in a
// fixed order for reproducibility.
//
// A metric-specific failure (for example edit distance over a zero-duration
// sequence) does not abort the remaining metrics: the affected field stays
// nil and the failures are joined into the returned error alongside the
// otherwise complete Result.
func Compare(ctx context.Context, a, b event.Sequence, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	correspondence, err := match.Do(a, b, cfg.Strategy, cfg.Params)
	if err != nil {
		return nil, err
	}
	result := &Result{Correspondence: correspondence}

	var metricErrs []error
	for _, m := range cfg.Metrics {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("comparison cancelled: %w", err)
		}
		switch m {
		case MetricPrecisionRecallF1:
			report := agreement.Counting(correspondence, a, b, cfg.Mislabeled)
			result.Counting = &report
		case MetricKappa:
			kappa := agreement.Confusion(correspondence, a, b).Kappa()
			result.Kappa = &kappa
		case MetricTiming:
			report := agreement.Timing(correspondence, a, b)
			result.Timing = &report
		case MetricEditDistance:
			dist, derr := agreement.EditDistance(a, b, cfg.Resolution)
			if derr != nil {
				metricErrs = append(metricErrs, fmt.Errorf("edit distance: %w", derr))
				continue
			}
			result.EditDistance = &agreement.Measure{Value: dist}
		case MetricDPrime:
			dp, derr := agreement.DPrime(correspondence, a, b, cfg.positiveLabels(), cfg.Correction)
			if derr != nil {
				metricErrs = append(metricErrs, fmt.Errorf("d-prime: %w", derr))
				continue
			}
			result.DPrime = &dp
		case MetricSampleLevel:
			report, serr := agreement.SampleLevel(a, b, cfg.Resolution)
			if serr != nil {
				metricErrs = append(metricErrs, fmt.Errorf("sample-level: %w", serr))
				continue
			}
			result.Sample = &report
		}
	}

	return result, errors.Join(metricErrs...)
}

// positiveLabels resolves the d-prime positive class, defaulting to every
// label except Undefined.
func (cfg Config) positiveLabels() []event.Label {
	if len(cfg.PositiveLabels) > 0 {
		return cfg.PositiveLabels
	}
	labels := make([]event.Label, 0)
	for _, l := range event.AllLabels() {
		if l != event.Undefined {
			labels = append(labels, l)
		}
	}
	return labels
}
