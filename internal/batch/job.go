// Package batch runs many sequence comparisons through a bounded queue and
// a worker pool. Each comparison is independent, so the pool parallelizes
// freely without locking; cancellation and timeouts live here, outside the
// pure comparison core.
package batch

import (
	"github.com/google/uuid"

	"github.com/haimasree/pEYES/pkg/compare"
	"github.com/haimasree/pEYES/pkg/event"
)

// Job is one comparison request: a ground-truth sequence, a predicted
// sequence, and the comparison configuration to apply.
type Job struct {
	// ID uniquely identifies the job; NewJob assigns a uuid.
	ID string

	// Labeler names the detector or rater that produced the B sequence.
	Labeler string

	// Trial identifies the recording both sequences cover.
	Trial string

	A      event.Sequence
	B      event.Sequence
	Config compare.Config
}

// NewJob builds a Job with a fresh unique ID.
func NewJob(labeler, trial string, a, b event.Sequence, cfg compare.Config) Job {
	return Job{
		ID:      uuid.New().String(),
		Labeler: labeler,
		Trial:   trial,
		A:       a,
		B:       b,
		Config:  cfg,
	}
}

// Outcome pairs a completed job with its result or failure.
type Outcome struct {
	Job    Job
	Result *compare.Result
	Err    error
}
