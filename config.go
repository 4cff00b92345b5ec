package fzpool

import (
	"runtime"

	"github.com/ygrebnov/errorc"

	"github.com/fzpool/fzpool/fuzzy"
	"github.com/fzpool/fzpool/metrics"
)

// config holds Pool configuration.
type config struct {
	// Workers defines the number of worker goroutines. The count is fixed
	// at construction; the pool never grows or shrinks.
	// Default: runtime.GOMAXPROCS(0).
	Workers uint

	// NewSlab produces the per-worker scratch buffer. Every worker calls it
	// exactly once on entry and keeps the slab until it retires.
	// Default: fuzzy.NewDefaultSlab.
	NewSlab func() *fuzzy.Slab

	// Metrics receives pool instrumentation (tasks submitted/executed/
	// discarded, busy workers, execution durations).
	// Default: metrics.NewNoopProvider().
	Metrics metrics.Provider
}

// defaultConfig centralizes default values for config.
func defaultConfig() config {
	return config{
		Workers: uint(runtime.GOMAXPROCS(0)),
		NewSlab: fuzzy.NewDefaultSlab,
		Metrics: metrics.NewNoopProvider(),
	}
}

// validateConfig checks invariants the worker loop relies on.
func validateConfig(cfg *config) error {
	if cfg.Workers == 0 {
		return errorc.With(ErrInvalidConfig, errorc.String("", "worker count must be > 0"))
	}
	if cfg.NewSlab == nil {
		return errorc.With(ErrInvalidConfig, errorc.String("", "slab factory must not be nil"))
	}
	if cfg.Metrics == nil {
		return errorc.With(ErrInvalidConfig, errorc.String("", "metrics provider must not be nil"))
	}
	return nil
}

// Option configures a Pool. Use New(opts...) to construct a Pool via options.
type Option func(*config) error

// WithWorkers sets the number of worker goroutines (must be > 0).
func WithWorkers(n uint) Option {
	return func(cfg *config) error {
		if n == 0 {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithWorkers requires n > 0"))
		}
		cfg.Workers = n
		return nil
	}
}

// WithSlabFactory overrides how per-worker scratch slabs are produced.
func WithSlabFactory(newFn func() *fuzzy.Slab) Option {
	return func(cfg *config) error {
		if newFn == nil {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithSlabFactory requires a non-nil factory"))
		}
		cfg.NewSlab = newFn
		return nil
	}
}

// WithMetrics sets the metrics provider receiving pool instrumentation.
func WithMetrics(p metrics.Provider) Option {
	return func(cfg *config) error {
		if p == nil {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithMetrics requires a non-nil provider"))
		}
		cfg.Metrics = p
		return nil
	}
}
