package queue

// Fifo is a slice-backed first-in-first-out queue.
// It is not goroutine-safe; callers guard it with their own lock.
type Fifo[T any] struct {
	items []T
}

// NewFifo creates a new Fifo with the given preallocated capacity.
func NewFifo[T any](prealloc int) *Fifo[T] {
	return &Fifo[T]{items: make([]T, 0, prealloc)}
}

// Enqueue adds an item to the tail of the queue.
func (q *Fifo[T]) Enqueue(item T) {
	q.items = append(q.items, item)
}

// Dequeue removes and returns the item at the head of the queue.
// It returns the zero value and false if the queue is empty.
func (q *Fifo[T]) Dequeue() (T, bool) {
	if len(q.items) == 0 {
		var zero T
		return zero, false
	}

	item := q.items[0]
	q.items = q.items[1:]

	return item, true
}

// Peek returns the item at the head of the queue without removing it.
// It returns the zero value and false if the queue is empty.
func (q *Fifo[T]) Peek() (T, bool) {
	if len(q.items) == 0 {
		var zero T
		return zero, false
	}

	return q.items[0], true
}

// Reset resets the queue to an empty state.
func (q *Fifo[T]) Reset() {
	q.items = q.items[:0] // Reslice to 0 length to reuse the underlying array
}

// IsEmpty returns true if the queue is empty, false otherwise.
func (q *Fifo[T]) IsEmpty() bool {
	return len(q.items) == 0
}

// Length returns the number of items in the queue.
func (q *Fifo[T]) Length() int {
	return len(q.items)
}
