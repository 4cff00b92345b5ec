package fzpool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTaskQueue_FIFO(t *testing.T) {
	var q taskQueue
	require.True(t, q.empty())

	a := newTask(noopTask, "a", nil)
	b := newTask(noopTask, "b", nil)
	c := newTask(noopTask, "c", nil)
	q.push(a)
	q.push(b)
	q.push(c)

	require.Equal(t, "a", q.pop().text)
	require.Equal(t, "b", q.pop().text)
	require.Equal(t, "c", q.pop().text)
	require.Nil(t, q.pop())
	require.True(t, q.empty())
}

func TestTaskQueue_SingleElementInvariant(t *testing.T) {
	var q taskQueue

	a := newTask(noopTask, "a", nil)
	q.push(a)
	require.Same(t, q.head, q.tail)

	got := q.pop()
	require.Same(t, a, got)
	require.Nil(t, q.head)
	require.Nil(t, q.tail)
}

func TestTaskQueue_Sweep(t *testing.T) {
	var q taskQueue
	require.Zero(t, q.sweep())

	for i := 0; i < 5; i++ {
		q.push(newTask(noopTask, "x", nil))
	}
	require.Equal(t, 5, q.sweep())
	require.True(t, q.empty())
	require.Nil(t, q.tail)
}
