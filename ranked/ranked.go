// Package ranked implements the descending-score result list that collects
// scored candidates for printing.
//
// The list is a singly-linked chain ordered by descending score; items with
// equal scores keep the most recently inserted one closer to the head. It is
// not safe for concurrent use; callers feeding it from several goroutines
// must serialize access themselves.
package ranked

import "iter"

type node struct {
	next  *node
	text  string
	score int
}

// List collects (text, score) pairs in descending score order.
// The zero value is ready to use; New is provided for symmetry.
type List struct {
	head *node
	len  int
}

// New returns an empty list.
func New() *List { return &List{} }

// Len reports the number of inserted items.
func (l *List) Len() int { return l.len }

// Insert places text at its rank: immediately before the first existing node
// whose score is not strictly greater than score. An item that ties an
// existing score therefore lands above the earlier entry. O(1) when the new
// score is the current maximum, O(k) otherwise.
func (l *List) Insert(text string, score int) {
	n := &node{text: text, score: score}
	l.len++

	if l.head == nil || l.head.score <= score {
		n.next = l.head
		l.head = n
		return
	}

	curr := l.head
	for curr.next != nil && curr.next.score > score {
		curr = curr.next
	}
	n.next = curr.next
	curr.next = n
}

// All returns a single-pass left-to-right traversal of the list in
// descending score order. The sequence is finite and stops early if the
// caller breaks out of the range loop.
func (l *List) All() iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.text, n.score) {
				return
			}
		}
	}
}
