package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFifo(t *testing.T) {
	q := NewFifo[string](4)
	assert.True(t, q.IsEmpty())
	assert.Equal(t, 0, q.Length())

	q.Enqueue("a")
	q.Enqueue("b")
	q.Enqueue("c")
	assert.Equal(t, 3, q.Length())

	head, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, "a", head)
	assert.Equal(t, 3, q.Length(), "peek must not remove")

	for _, want := range []string{"a", "b", "c"} {
		got, ok := q.Dequeue()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}

	_, ok = q.Dequeue()
	assert.False(t, ok)
	_, ok = q.Peek()
	assert.False(t, ok)
	assert.True(t, q.IsEmpty())
}

func TestFifo_Reset(t *testing.T) {
	q := NewFifo[int](0)
	q.Enqueue(1)
	q.Enqueue(2)

	q.Reset()
	assert.True(t, q.IsEmpty())

	q.Enqueue(3)
	got, ok := q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, 3, got)
}
