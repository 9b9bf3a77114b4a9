// Package queue contains a FIFO queue backed by a slice.
package queue

import (
	"errors"

	"golang.org/x/exp/slices"
)

const (
	// DefaultCompactAfter is the number of dequeued slots a Queue
	// tolerates at the front of its slice before it considers compacting.
	DefaultCompactAfter = 64
)

// ErrEmpty is returned when reading from an empty Queue.
var ErrEmpty = errors.New("dequeue from empty queue")

// Queue is a FIFO queue. It is not safe for concurrent use,
// so wrap it with a mutex if it is shared between goroutines.
//
// The zero Queue may be used immediately, with DefaultCompactAfter.
//
// Elements are appended to a slice and a head index marks the front.
// Dequeued slots stay in the slice until more than compactAfter of them
// pile up and they make up at least half of the slice. Then the live
// elements are copied into a new slice and head goes back to 0.
// Each element is copied at most once per compaction, and compactions
// get rarer as the queue grows, so Dequeue is amortized O(1).
//
// Invariant: 0 <= head <= len(data)
type Queue[T any] struct {
	data         []T
	head         int
	compactAfter int
}

// New creates a new Queue ready for use.
// If compactAfter > 0, the queue will only compact once more than
// compactAfter elements have been dequeued from the front of its slice.
// Otherwise DefaultCompactAfter is used.
func New[T any](compactAfter int) *Queue[T] {
	if compactAfter <= 0 {
		compactAfter = DefaultCompactAfter
	}

	return &Queue[T]{
		compactAfter: compactAfter,
	}
}

// Enqueue adds e to the back of the queue.
func (q *Queue[T]) Enqueue(e T) {
	q.data = append(q.data, e)
}

// Dequeue removes and returns the element at the front of the queue.
// If the queue is empty, it returns the zero T and ErrEmpty
// and the queue is not changed.
func (q *Queue[T]) Dequeue() (e T, err error) {
	if q.IsEmpty() {
		return e, ErrEmpty
	}

	// if T is a pointer, this prevents the dequeued slot
	// from keeping *T alive until the next compaction
	var zeroT T
	e, q.data[q.head] = q.data[q.head], zeroT
	q.head++

	if q.head > q.threshold() && q.head*2 >= len(q.data) {
		q.compact()
	}

	return e, nil
}

// Peek returns the element at the front of the queue without removing it.
// If the queue is empty, it returns the zero T and ErrEmpty.
func (q *Queue[T]) Peek() (e T, err error) {
	if q.IsEmpty() {
		return e, ErrEmpty
	}

	return q.data[q.head], nil
}

// IsEmpty returns true if there are no elements in the queue.
func (q *Queue[_]) IsEmpty() bool {
	return q.head >= len(q.data)
}

// Len returns the number of elements in the queue.
func (q *Queue[_]) Len() int {
	return len(q.data) - q.head
}

// threshold applies the default for the zero Queue, which skipped New.
func (q *Queue[_]) threshold() int {
	if q.compactAfter <= 0 {
		return DefaultCompactAfter
	}
	return q.compactAfter
}

// compact moves the live elements into a new slice,
// so the old one (and its dead prefix) can be collected.
func (q *Queue[T]) compact() {
	q.data = slices.Clone(q.data[q.head:])
	q.head = 0
}
