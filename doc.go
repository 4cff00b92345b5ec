// Package fzpool provides a fixed-size pool of scoring workers fed from a
// shared FIFO queue.
//
// A Pool owns N worker goroutines, an unbounded pending queue, and the shared
// state coordinating them: one mutex and two condition variables ("work
// available" and "quiescent"). Callers submit scoring tasks with Submit,
// drain the pool with Wait, and tear it down with Destroy.
//
// Each worker acquires its own scratch slab on entry and keeps it for its
// entire lifetime, so the scorer's internal allocations are amortized across
// every task that worker executes. Task execution runs with no lock held;
// workers contend only on the brief enqueue/dequeue critical sections.
//
// Lifecycle
//   - Submit never blocks beyond the critical section. Submitting to a
//     stopped pool fails with ErrPoolStopped and has no side effect.
//   - Wait doubles as a drain barrier on a live pool (returns once no task
//     is executing and the queue is empty) and as a teardown join on a
//     stopping pool (returns once every worker has retired).
//   - Destroy is an eager shutdown: tasks already picked up by a worker run
//     to completion, tasks still sitting in the queue are discarded and
//     never execute. Destroy may therefore drop unstarted work.
//
// Ordering
// A single producer's submissions are dequeued in submission order. With
// several concurrent producers only each producer's own order is preserved.
// Completion order across workers is undefined.
package fzpool
