// Package metrics defines the instrumentation surface the pool records
// into: monotonic counters for task accounting, an up/down counter for the
// busy-worker gauge, and a histogram for task execution durations.
//
// The default provider is a no-op; applications that want numbers (the CLI's
// -stats flag, tests) plug in the in-memory provider and read snapshots
// after the run.
package metrics

// Provider constructs instruments used to record measurements.
// Implementations must be safe for concurrent use.
type Provider interface {
	Counter(name string, opts ...InstrumentOption) Counter
	UpDownCounter(name string, opts ...InstrumentOption) UpDownCounter
	Histogram(name string, opts ...InstrumentOption) Histogram
}

// Counter records monotonic counts. Safe for concurrent use.
type Counter interface {
	Add(n int64)
}

// UpDownCounter records values that move both ways, e.g. currently busy
// workers. Safe for concurrent use.
type UpDownCounter interface {
	Add(n int64)
}

// Histogram records a distribution of float64 measurements, e.g. task
// execution seconds. Safe for concurrent use.
type Histogram interface {
	Record(v float64)
}

// InstrumentConfig carries optional, advisory instrument metadata.
type InstrumentConfig struct {
	Description string
	Unit        string
}

// InstrumentOption mutates InstrumentConfig.
type InstrumentOption func(*InstrumentConfig)

// WithDescription sets an advisory description for the instrument.
func WithDescription(desc string) InstrumentOption {
	return func(c *InstrumentConfig) { c.Description = desc }
}

// WithUnit sets an advisory unit for the instrument (e.g. "1", "seconds").
func WithUnit(unit string) InstrumentOption {
	return func(c *InstrumentConfig) { c.Unit = unit }
}
