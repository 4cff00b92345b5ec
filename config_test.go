package fzpool

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fzpool/fzpool/fuzzy"
	"github.com/fzpool/fzpool/metrics"
)

func TestConfig_Defaults(t *testing.T) {
	cfg := defaultConfig()

	require.EqualValues(t, runtime.GOMAXPROCS(0), cfg.Workers)
	require.NotNil(t, cfg.NewSlab)
	require.NotNil(t, cfg.Metrics)
	require.NoError(t, validateConfig(&cfg))
}

func TestConfig_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{name: "zero workers", opt: WithWorkers(0)},
		{name: "nil slab factory", opt: WithSlabFactory(nil)},
		{name: "nil metrics provider", opt: WithMetrics(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(tt.opt)
			require.Nil(t, p)
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestConfig_NilOptionSkipped(t *testing.T) {
	p, err := New(nil, WithWorkers(1))
	require.NoError(t, err)
	p.Destroy()
}

func TestConfig_OptionsApplied(t *testing.T) {
	factory := func() *fuzzy.Slab { return fuzzy.NewSlab(8) }
	provider := metrics.NewInMemory()

	cfg := defaultConfig()
	require.NoError(t, WithWorkers(7)(&cfg))
	require.NoError(t, WithSlabFactory(factory)(&cfg))
	require.NoError(t, WithMetrics(provider)(&cfg))

	require.EqualValues(t, 7, cfg.Workers)
	require.NotNil(t, cfg.NewSlab)
	require.Equal(t, provider, cfg.Metrics)
}
