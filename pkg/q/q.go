// Package q implements the FIFO queue backing promise callback lists and
// scheduler task loops.
package q

// Queue is a generic slice-backed FIFO queue.
type Queue[T any] []T

// Enqueue adds an item to the back of the queue.
func (q *Queue[T]) Enqueue(item T) {
	*q = append(*q, item)
}

// Dequeue removes and returns the item at the front of the queue, reporting
// false when the queue is empty.
func (q *Queue[T]) Dequeue() (T, bool) {
	if len(*q) == 0 {
		var zero T
		return zero, false
	}

	item := (*q)[0]
	*q = (*q)[1:]

	return item, true
}

// Len reports the number of queued items.
func (q Queue[T]) Len() int {
	return len(q)
}
