package metrics

import (
	"sync"
	"sync/atomic"
)

// InMemory is a concurrency-safe Provider keeping all measurements in
// process memory. Instruments are created on first use and reused for the
// same name; snapshot accessors let callers read totals after a run.
type InMemory struct {
	mu         sync.RWMutex
	counters   map[string]*inMemCounter
	updowns    map[string]*inMemUpDown
	histograms map[string]*inMemHistogram
	meta       map[string]InstrumentConfig
}

// NewInMemory constructs an empty in-memory provider.
func NewInMemory() *InMemory {
	return &InMemory{
		counters:   make(map[string]*inMemCounter),
		updowns:    make(map[string]*inMemUpDown),
		histograms: make(map[string]*inMemHistogram),
		meta:       make(map[string]InstrumentConfig),
	}
}

func applyOptions(opts []InstrumentOption) InstrumentConfig {
	var cfg InstrumentConfig
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}
	return cfg
}

// Counter returns the monotonic counter registered under name, creating it
// on first use.
func (p *InMemory) Counter(name string, opts ...InstrumentOption) Counter {
	p.mu.RLock()
	c, ok := p.counters[name]
	p.mu.RUnlock()
	if ok {
		return c
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if c, ok = p.counters[name]; ok {
		return c
	}
	p.meta[name] = applyOptions(opts)
	c = &inMemCounter{}
	p.counters[name] = c
	return c
}

// UpDownCounter returns the up/down counter registered under name, creating
// it on first use.
func (p *InMemory) UpDownCounter(name string, opts ...InstrumentOption) UpDownCounter {
	p.mu.RLock()
	u, ok := p.updowns[name]
	p.mu.RUnlock()
	if ok {
		return u
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if u, ok = p.updowns[name]; ok {
		return u
	}
	p.meta[name] = applyOptions(opts)
	u = &inMemUpDown{}
	p.updowns[name] = u
	return u
}

// Histogram returns the histogram registered under name, creating it on
// first use.
func (p *InMemory) Histogram(name string, opts ...InstrumentOption) Histogram {
	p.mu.RLock()
	h, ok := p.histograms[name]
	p.mu.RUnlock()
	if ok {
		return h
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if h, ok = p.histograms[name]; ok {
		return h
	}
	p.meta[name] = applyOptions(opts)
	h = &inMemHistogram{}
	p.histograms[name] = h
	return h
}

// CounterValue reports the current total of the named counter; zero when the
// counter was never used.
func (p *InMemory) CounterValue(name string) int64 {
	p.mu.RLock()
	c, ok := p.counters[name]
	p.mu.RUnlock()
	if !ok {
		return 0
	}
	return c.val.Load()
}

// UpDownValue reports the current value of the named up/down counter.
func (p *InMemory) UpDownValue(name string) int64 {
	p.mu.RLock()
	u, ok := p.updowns[name]
	p.mu.RUnlock()
	if !ok {
		return 0
	}
	return u.val.Load()
}

// HistogramSummary reports the aggregate of the named histogram; the zero
// Summary when the histogram was never used.
func (p *InMemory) HistogramSummary(name string) Summary {
	p.mu.RLock()
	h, ok := p.histograms[name]
	p.mu.RUnlock()
	if !ok {
		return Summary{}
	}
	return h.summary()
}

type inMemCounter struct {
	val atomic.Int64
}

func (c *inMemCounter) Add(n int64) { c.val.Add(n) }

type inMemUpDown struct {
	val atomic.Int64
}

func (u *inMemUpDown) Add(n int64) { u.val.Add(n) }

// Summary is an immutable aggregate of histogram measurements.
type Summary struct {
	Count int64
	Sum   float64
	Min   float64
	Max   float64
	Mean  float64
}

// inMemHistogram tracks count, sum, min, and max. No buckets; it is a
// lightweight aggregator, not a quantile estimator.
type inMemHistogram struct {
	mu    sync.Mutex
	count int64
	sum   float64
	min   float64
	max   float64
}

func (h *inMemHistogram) Record(v float64) {
	h.mu.Lock()
	if h.count == 0 {
		h.min, h.max = v, v
	} else {
		if v < h.min {
			h.min = v
		}
		if v > h.max {
			h.max = v
		}
	}
	h.count++
	h.sum += v
	h.mu.Unlock()
}

func (h *inMemHistogram) summary() Summary {
	h.mu.Lock()
	s := Summary{Count: h.count, Sum: h.sum, Min: h.min, Max: h.max}
	h.mu.Unlock()
	if s.Count > 0 {
		s.Mean = s.Sum / float64(s.Count)
	}
	return s
}
