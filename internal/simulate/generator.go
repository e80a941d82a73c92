// Package simulate produces synthetic gaze event sequences and degraded
// copies of them, for benchmarking the agreement engine without real
// recordings.
package simulate

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/haimasree/pEYES/pkg/event"
)

// Default generation parameters, in milliseconds.
const (
	defaultFixationMin = 100.0
	defaultFixationMax = 400.0
	defaultSaccadeMin  = 20.0
	defaultSaccadeMax  = 80.0
	defaultBlinkMin    = 100.0
	defaultBlinkMax    = 300.0
	defaultBlinkProb   = 0.05
)

// Generator builds synthetic event sequences from a seeded random source, so
// a fixed seed reproduces the exact benchmark inputs.
type Generator struct {
	rng *rand.Rand

	fixationMin float64
	fixationMax float64
	saccadeMin  float64
	saccadeMax  float64
	blinkMin    float64
	blinkMax    float64
	blinkProb   float64
}

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithFixationDuration sets the fixation duration range.
func WithFixationDuration(minMs, maxMs float64) Option {
	return func(g *Generator) {
		if minMs > 0 && maxMs > minMs {
			g.fixationMin = minMs
			g.fixationMax = maxMs
		}
	}
}

// WithSaccadeDuration sets the saccade duration range.
func WithSaccadeDuration(minMs, maxMs float64) Option {
	return func(g *Generator) {
		if minMs > 0 && maxMs > minMs {
			g.saccadeMin = minMs
			g.saccadeMax = maxMs
		}
	}
}

// WithBlinkProbability sets the chance a saccade slot becomes a blink.
func WithBlinkProbability(p float64) Option {
	return func(g *Generator) {
		if p >= 0 && p <= 1 {
			g.blinkProb = p
		}
	}
}

// NewGenerator creates a Generator with the given seed.
func NewGenerator(seed int64, opts ...Option) *Generator {
	g := &Generator{
		rng:         rand.New(rand.NewSource(seed)), //nolint:gosec // deterministic seed for reproducible benchmarks
		fixationMin: defaultFixationMin,
		fixationMax: defaultFixationMax,
		saccadeMin:  defaultSaccadeMin,
		saccadeMax:  defaultSaccadeMax,
		blinkMin:    defaultBlinkMin,
		blinkMax:    defaultBlinkMax,
		blinkProb:   defaultBlinkProb,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Trial generates one ground-truth sequence of roughly the requested
// duration: alternating fixations and saccades with occasional blinks.
// Returns a fresh trial ID alongside the sequence.
func (g *Generator) Trial(durationMs float64) (string, event.Sequence) {
	var events []event.Event
	t := 0.0
	fixating := true
	for t < durationMs {
		var e event.Event
		switch {
		case fixating:
			d := g.uniform(g.fixationMin, g.fixationMax)
			e = event.MustNew(event.Fixation, t, t+d)
		case g.rng.Float64() < g.blinkProb:
			d := g.uniform(g.blinkMin, g.blinkMax)
			e = event.MustNew(event.Blink, t, t+d)
		default:
			d := g.uniform(g.saccadeMin, g.saccadeMax)
			e = event.MustNew(event.Saccade, t, t+d)
		}
		events = append(events, e)
		t = e.Offset()
		fixating = !fixating
	}
	return uuid.New().String(), event.MustNewSequence(events)
}

func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}
