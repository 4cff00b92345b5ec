package fzpool

import (
	"sync"

	"github.com/fzpool/fzpool/fuzzy"
)

// TaskFunc is the canonical unit of scoring work: a candidate string, the
// shared read-only pattern, and the executing worker's private slab. The
// pattern must never be mutated; the slab must never escape the call.
type TaskFunc func(text string, pattern *fuzzy.Pattern, slab *fuzzy.Slab)

// task is a node in the pool's intrusive pending queue. Nodes are recycled
// through taskPool; the payload is released by clearing the fields before
// the node goes back.
type task struct {
	fn      TaskFunc
	text    string
	pattern *fuzzy.Pattern
	next    *task
}

var taskPool = sync.Pool{New: func() interface{} { return new(task) }}

func newTask(fn TaskFunc, text string, pattern *fuzzy.Pattern) *task {
	t := taskPool.Get().(*task)
	t.fn = fn
	t.text = text
	t.pattern = pattern
	t.next = nil
	return t
}

func freeTask(t *task) {
	t.fn = nil
	t.text = ""
	t.pattern = nil
	t.next = nil
	taskPool.Put(t)
}
