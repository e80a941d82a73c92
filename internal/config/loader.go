package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, an optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if PEYES_CONFIG is set
//  3. env (prefix PEYES_)
func Load(ctx context.Context) (*Config, error) {
	_ = ctx // reserved for future providers that block

	base := New()
	k := koanf.New(".")

	if path := os.Getenv("PEYES_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: PEYES_WORKER_COUNT -> worker_count (flat keys,
	// underscores preserved to match the koanf tags on the struct).
	envProvider := env.Provider("PEYES_", ".", func(s string) string {
		return strings.TrimPrefix(strings.ToLower(s), "peyes_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if cfg.WorkerCount <= 0 {
		return nil, fmt.Errorf("%w: worker_count must be positive", ErrInvalidConfig)
	}
	if cfg.QueueSize <= 0 {
		return nil, fmt.Errorf("%w: queue_size must be positive", ErrInvalidConfig)
	}
	if cfg.Resolution <= 0 {
		return nil, fmt.Errorf("%w: resolution must be positive", ErrInvalidConfig)
	}
	return &cfg, nil
}
