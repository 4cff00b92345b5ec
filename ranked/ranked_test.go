package ranked

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func collect(l *List) (texts []string, scores []int) {
	for text, score := range l.All() {
		texts = append(texts, text)
		scores = append(scores, score)
	}
	return texts, scores
}

func TestList_Insert_DescendingWithTies(t *testing.T) {
	l := New()
	l.Insert("first-three", 3)
	l.Insert("nine", 9)
	l.Insert("second-three", 3)
	l.Insert("seven", 7)

	texts, scores := collect(l)
	require.Equal(t, []string{"nine", "seven", "second-three", "first-three"}, texts)
	require.Equal(t, []int{9, 7, 3, 3}, scores)
	require.Equal(t, 4, l.Len())
}

func TestList_Insert_TieAtHead(t *testing.T) {
	l := New()
	l.Insert("older", 5)
	l.Insert("newer", 5)

	texts, _ := collect(l)
	require.Equal(t, []string{"newer", "older"}, texts)
}

func TestList_Insert_SortedPrefixFastPath(t *testing.T) {
	l := New()
	l.Insert("c", 1)
	l.Insert("b", 2)
	l.Insert("a", 3)

	texts, scores := collect(l)
	require.Equal(t, []string{"a", "b", "c"}, texts)
	require.Equal(t, []int{3, 2, 1}, scores)
}

func TestList_All_EarlyStop(t *testing.T) {
	l := New()
	l.Insert("a", 1)
	l.Insert("b", 2)
	l.Insert("c", 3)

	seen := 0
	for range l.All() {
		seen++
		break
	}
	require.Equal(t, 1, seen)
}

func TestList_Empty(t *testing.T) {
	var l List
	require.Zero(t, l.Len())

	texts, _ := collect(&l)
	require.Empty(t, texts)
}
