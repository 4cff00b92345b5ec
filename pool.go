package fzpool

import (
	"sync"
	"time"

	"github.com/fzpool/fzpool/fuzzy"
	"github.com/fzpool/fzpool/metrics"
)

// Pool is a fixed set of scoring workers pulling tasks from a shared FIFO
// queue. Methods are safe for concurrent use. Construct with New.
//
// All shared fields (queue, busy, threads, stopped) are guarded by mu and
// must never be touched without it. Invariants: busy <= threads; stopped is
// set at most once and never cleared.
type Pool struct {
	mu   sync.Mutex
	work *sync.Cond // work available: signalled on every Submit and on stop
	idle *sync.Cond // quiescent: no task executing and queue empty, or all workers retired

	queue   taskQueue
	busy    uint // workers currently executing a task (not merely holding mu)
	threads uint // workers not yet fully retired
	stopped bool

	newSlab func() *fuzzy.Slab

	destroyOnce sync.Once

	submitted metrics.Counter
	executed  metrics.Counter
	discarded metrics.Counter
	busyGauge metrics.UpDownCounter
	execSecs  metrics.Histogram
}

// New allocates the shared state and spawns the configured number of worker
// goroutines. Workers idle on the work-available condition until the first
// Submit. The pool must eventually be torn down with Destroy.
func New(opts ...Option) (*Pool, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	p := &Pool{
		threads:   cfg.Workers,
		newSlab:   cfg.NewSlab,
		submitted: cfg.Metrics.Counter("tasks_submitted", metrics.WithUnit("1")),
		executed:  cfg.Metrics.Counter("tasks_executed", metrics.WithUnit("1")),
		discarded: cfg.Metrics.Counter("tasks_discarded", metrics.WithUnit("1")),
		busyGauge: cfg.Metrics.UpDownCounter("workers_busy", metrics.WithUnit("1")),
		execSecs:  cfg.Metrics.Histogram("task_exec_seconds", metrics.WithUnit("seconds")),
	}
	p.work = sync.NewCond(&p.mu)
	p.idle = sync.NewCond(&p.mu)

	for i := uint(0); i < cfg.Workers; i++ {
		go p.worker()
	}
	return p, nil
}

// Submit appends one scoring task to the pending queue and wakes an idle
// worker. It never blocks beyond the critical section.
//
// A nil fn fails with ErrNilTaskFunc; a stopped pool fails with
// ErrPoolStopped. Both failures have no side effect.
func (p *Pool) Submit(fn TaskFunc, text string, pattern *fuzzy.Pattern) error {
	if fn == nil {
		return ErrNilTaskFunc
	}
	t := newTask(fn, text, pattern)

	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		freeTask(t)
		return ErrPoolStopped
	}
	p.queue.push(t)
	p.work.Broadcast()
	p.mu.Unlock()

	p.submitted.Add(1)
	return nil
}

// Wait blocks until the pool is quiescent or fully retired.
//
// On a live pool it returns once no task is executing and the queue is empty
// (a drain barrier: the pool stays usable afterwards). On a stopping pool it
// returns once every worker has retired (a teardown join). Wait may be
// called any number of times, from any number of goroutines.
func (p *Pool) Wait() {
	p.mu.Lock()
	for (!p.stopped && (p.busy != 0 || !p.queue.empty())) ||
		(p.stopped && p.threads != 0) {
		p.idle.Wait()
	}
	p.mu.Unlock()
}

// Destroy performs an eager shutdown: every still-pending task is discarded
// without executing, in-flight tasks run to completion, and Destroy returns
// only after all workers have retired. Callers must assume Destroy may drop
// unstarted work; Submit after Destroy begins is rejected with
// ErrPoolStopped. Extra Destroy calls are no-ops.
func (p *Pool) Destroy() {
	p.destroyOnce.Do(func() {
		p.mu.Lock()
		n := p.queue.sweep()
		p.stopped = true
		p.work.Broadcast()
		p.mu.Unlock()

		if n > 0 {
			p.discarded.Add(int64(n))
		}
		p.Wait()
	})
}

// worker is the run loop of a single pool goroutine.
//
// State machine: Idle (waiting on work) -> Running (executing a task) ->
// Idle, with a one-way Idle -> Retired transition taken only when stop is
// observed. The slab acquired on entry is exclusively owned by this worker
// and reused across every task it runs.
func (p *Pool) worker() {
	slab := p.newSlab()

	p.mu.Lock()
	for {
		for p.queue.empty() && !p.stopped {
			p.work.Wait()
		}
		if p.stopped {
			break
		}

		t := p.queue.pop()
		p.busy++
		p.mu.Unlock()

		p.busyGauge.Add(1)
		start := time.Now()
		t.fn(t.text, t.pattern, slab)
		p.execSecs.Record(time.Since(start).Seconds())
		p.busyGauge.Add(-1)
		p.executed.Add(1)
		freeTask(t)

		p.mu.Lock()
		p.busy--
		if !p.stopped && p.busy == 0 && p.queue.empty() {
			p.idle.Broadcast()
		}
	}

	// Retired: still holding mu after observing stop.
	p.threads--
	p.idle.Broadcast()
	p.mu.Unlock()
	// The slab retires with the worker; nothing else ever references it.
}
