package fzpool

// taskQueue is an intrusive singly-linked FIFO of pending tasks.
// Invariant: tail is valid iff head is non-nil; a single-element queue has
// head == tail. The queue is mutated only while holding the pool's mutex.
type taskQueue struct {
	head *task
	tail *task
}

func (q *taskQueue) empty() bool { return q.head == nil }

// push appends t at the tail. O(1).
func (q *taskQueue) push(t *task) {
	if q.head == nil {
		q.head = t
		q.tail = t
		return
	}
	q.tail.next = t
	q.tail = t
}

// pop removes and returns the head, or nil when the queue is empty. O(1).
func (q *taskQueue) pop() *task {
	t := q.head
	if t == nil {
		return nil
	}
	if t.next == nil {
		q.head = nil
		q.tail = nil
	} else {
		q.head = t.next
	}
	t.next = nil
	return t
}

// sweep discards every pending task and returns how many were dropped.
// Swept tasks never execute.
func (q *taskQueue) sweep() int {
	n := 0
	for t := q.head; t != nil; {
		next := t.next
		freeTask(t)
		t = next
		n++
	}
	q.head = nil
	q.tail = nil
	return n
}
