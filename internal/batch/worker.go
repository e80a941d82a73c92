package batch

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/haimasree/pEYES/pkg/compare"
	"github.com/haimasree/pEYES/pkg/logger"
	"github.com/haimasree/pEYES/pkg/metrics"
)

// Runner drains a job queue through a pool of comparison workers and
// delivers every Outcome on its results channel.
type Runner struct {
	queue       Queue
	workerCount int
	results     chan Outcome

	wg     sync.WaitGroup
	logger logger.Logger
}

// RunnerOption applies a configuration option to the Runner.
type RunnerOption func(*Runner)

// WithWorkerCount sets the number of worker goroutines.
func WithWorkerCount(n int) RunnerOption {
	return func(r *Runner) {
		if n > 0 {
			r.workerCount = n
		}
	}
}

// WithLogger sets a custom logger for the runner.
func WithLogger(l logger.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRunner creates a Runner over the given queue.
func NewRunner(queue Queue, opts ...RunnerOption) *Runner {
	r := &Runner{
		queue:       queue,
		workerCount: runtime.NumCPU(),
		logger:      logger.Get().Named("batch"),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.results = make(chan Outcome, r.workerCount)
	return r
}

// Start launches the worker pool. The results channel closes once the queue
// is closed and every in-flight job has finished.
func (r *Runner) Start(ctx context.Context) {
	metrics.UpdateWorkerCount(r.workerCount)
	for i := 0; i < r.workerCount; i++ {
		r.wg.Add(1)
		go r.work(ctx)
	}
	go func() {
		r.wg.Wait()
		close(r.results)
		metrics.UpdateWorkerCount(0)
	}()
}

// Results returns the channel outcomes are delivered on.
func (r *Runner) Results() <-chan Outcome {
	return r.results
}

// work processes jobs until the queue drains or ctx is cancelled.
func (r *Runner) work(ctx context.Context) {
	defer r.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-r.queue.Dequeue():
			if !ok {
				return
			}
			metrics.RecordQueueDequeue()
			metrics.UpdateQueueSize(r.queue.Len())
			outcome := r.process(ctx, job)
			select {
			case r.results <- outcome:
			case <-ctx.Done():
				return
			}
		}
	}
}

// process runs one comparison and records its metrics.
func (r *Runner) process(ctx context.Context, job Job) Outcome {
	start := time.Now()
	result, err := compare.Compare(ctx, job.A, job.B, job.Config)
	elapsed := time.Since(start)

	metrics.RecordWorkerLatency(float64(elapsed.Milliseconds()))
	if err != nil && result == nil {
		metrics.RecordWorkerError()
		metrics.RecordComparisonError()
		r.logger.Error(ctx, "comparison failed",
			logger.String("jobID", job.ID),
			logger.String("labeler", job.Labeler),
			logger.Error(err),
		)
		return Outcome{Job: job, Err: err}
	}

	metrics.RecordComparison()
	metrics.RecordComparisonLatency(float64(elapsed.Milliseconds()))
	if result != nil {
		metrics.RecordMatchedPairs(len(result.Correspondence.Pairs()))
		metrics.RecordUnmatchedEvents("a", len(result.Correspondence.UnmatchedA()))
		metrics.RecordUnmatchedEvents("b", len(result.Correspondence.UnmatchedB()))
	}
	if err != nil {
		// Partial failure: some metric was undefined for this input, the
		// rest of the result is still usable.
		r.logger.Warn(ctx, "comparison completed with metric errors",
			logger.String("jobID", job.ID),
			logger.String("labeler", job.Labeler),
			logger.Error(err),
		)
	}
	return Outcome{Job: job, Result: result, Err: err}
}
