package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/haimasree/pEYES/internal/batch"
	"github.com/haimasree/pEYES/internal/config"
	"github.com/haimasree/pEYES/internal/rank"
	"github.com/haimasree/pEYES/internal/simulate"
	"github.com/haimasree/pEYES/pkg/compare"
	"github.com/haimasree/pEYES/pkg/logger"
	"github.com/haimasree/pEYES/pkg/match"
)

// rater is one simulated labeler: a name plus how badly it degrades the
// ground truth.
type rater struct {
	name   string
	params simulate.PerturbParams
}

// raters is the fixed benchmark roster, ordered from near-perfect to
// unreliable.
var raters = []rater{
	{"careful", simulate.PerturbParams{BoundaryJitter: 2}},
	{"steady", simulate.PerturbParams{BoundaryJitter: 5, LabelFlip: 0.01, Drop: 0.01}},
	{"hasty", simulate.PerturbParams{BoundaryJitter: 10, LabelFlip: 0.05, Drop: 0.03}},
	{"drowsy", simulate.PerturbParams{BoundaryJitter: 15, LabelFlip: 0.03, Drop: 0.10}},
	{"erratic", simulate.PerturbParams{BoundaryJitter: 25, LabelFlip: 0.15, Drop: 0.08}},
}

func newRunCommand() *cobra.Command {
	var trialsFlag int
	var seedFlag int64
	var topFlag int
	var durationFlag float64

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Generate synthetic trials, compare raters against ground truth, and rank them",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := logger.Init(); err != nil {
				return err
			}
			cfg, err := config.Load(ctx)
			if err != nil {
				return err
			}
			if err := logger.SetLevelString(cfg.LogLevel); err != nil {
				return err
			}

			if cmd.Flags().Changed("trials") {
				cfg.Trials = trialsFlag
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seedFlag
			}
			if cmd.Flags().Changed("top") {
				cfg.TopN = topFlag
			}

			return runBenchmark(ctx, cfg, durationFlag, cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVar(&trialsFlag, "trials", 0, "Number of synthetic trials to run")
	cmd.Flags().Int64Var(&seedFlag, "seed", 0, "Random seed for trial generation")
	cmd.Flags().IntVar(&topFlag, "top", 0, "Number of ranking rows to print")
	cmd.Flags().Float64Var(&durationFlag, "duration", 10000, "Trial duration in milliseconds")

	return cmd
}

// runBenchmark drives the full pipeline: generate trials, degrade them per
// rater, compare every pair through the worker pool, and print the ranking.
func runBenchmark(ctx context.Context, cfg *config.Config, durationMs float64, out io.Writer) error {
	log := logger.Named("bench")

	strategy, err := match.ParseStrategy(cfg.Strategy)
	if err != nil {
		return err
	}
	cmpCfg := compare.Config{
		Strategy: strategy,
		Params: match.Params{
			MinOverlapRatio: cfg.MinOverlapRatio,
			IoUThreshold:    cfg.IoUThreshold,
			MaxTimeDiff:     cfg.MaxTimeDiff,
			SameLabelOnly:   cfg.SameLabelOnly,
		},
		Metrics:    []compare.Metric{compare.MetricPrecisionRecallF1, compare.MetricKappa},
		Resolution: cfg.Resolution,
	}
	if err := cmpCfg.Validate(); err != nil {
		return err
	}

	queue := batch.NewInMemoryQueue(batch.WithCapacity(cfg.QueueSize))
	runner := batch.NewRunner(queue, batch.WithWorkerCount(cfg.WorkerCount))
	runner.Start(ctx)

	log.Info(ctx, "benchmark starting",
		logger.Int("trials", cfg.Trials),
		logger.Int("raters", len(raters)),
		logger.String("strategy", string(strategy)),
		logger.Int("workers", cfg.WorkerCount),
	)

	go func() {
		defer queue.Close()
		gen := simulate.NewGenerator(cfg.Seed)
		for i := 0; i < cfg.Trials; i++ {
			trialID, truth := gen.Trial(durationMs)
			for _, r := range raters {
				degraded := gen.Perturb(truth, r.params)
				job := batch.NewJob(r.name, trialID, truth, degraded, cmpCfg)
				if !queue.Enqueue(ctx, job) {
					log.Warn(ctx, "job dropped, queue full or closed",
						logger.String("labeler", r.name),
						logger.String("trial", trialID),
					)
				}
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	store := rank.NewMemStore()
	var failed int
	for outcome := range runner.Results() {
		if outcome.Result == nil || outcome.Result.Counting == nil {
			failed++
			continue
		}
		if _, err := store.Record(ctx, outcome.Job.Labeler, outcome.Result.Counting.Overall.F1); err != nil {
			return err
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if failed > 0 {
		log.Warn(ctx, "some comparisons failed", logger.Int("failed", failed))
	}

	entries, err := store.TopN(ctx, cfg.TopN)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, renderRanking(entries))
	return err
}
