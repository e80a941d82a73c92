// Package config defines process configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults; Load() layers file and env.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"runtime"
)

// Config contains process configuration for the benchmark tooling. The core
// comparison packages take their parameters per call; this only configures
// the surrounding batch machinery.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// WorkerCount sets the number of batch comparison workers.
	WorkerCount int `koanf:"worker_count"`

	// QueueSize bounds the in-memory batch job queue.
	QueueSize int `koanf:"queue_size"`

	// Strategy names the default matching strategy.
	Strategy string `koanf:"strategy"`

	// MinOverlapRatio is the default overlap ratio cutoff for
	// window-overlap matching.
	MinOverlapRatio float64 `koanf:"min_overlap_ratio"`

	// IoUThreshold is the default cutoff for iou-threshold matching.
	IoUThreshold float64 `koanf:"iou_threshold"`

	// MaxTimeDiff is the default tolerance for time-window matching, in
	// milliseconds.
	MaxTimeDiff float64 `koanf:"max_time_diff"`

	// SameLabelOnly restricts matches to identical labels.
	SameLabelOnly bool `koanf:"same_label_only"`

	// Resolution is the sample grid tick size in milliseconds, used by
	// edit-distance and sample-level metrics.
	Resolution float64 `koanf:"resolution"`

	// Trials is the number of synthetic trials the benchmark runs.
	Trials int `koanf:"trials"`

	// Seed makes the synthetic benchmark reproducible.
	Seed int64 `koanf:"seed"`

	// TopN caps the ranking table printed by the benchmark.
	TopN int `koanf:"top_n"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:        "info",
		WorkerCount:     runtime.NumCPU(),
		QueueSize:       1024,
		Strategy:        "window-overlap",
		MinOverlapRatio: 0.5,
		IoUThreshold:    0.5,
		MaxTimeDiff:     20,
		SameLabelOnly:   true,
		Resolution:      2,
		Trials:          50,
		Seed:            42,
		TopN:            10,
	}
}
