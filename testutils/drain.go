// Package testutils contains helpers shared by the tests in this module.
package testutils

import (
	"github.com/stretchr/testify/assert"
)

type TestT interface {
	Log(...any)
	Logf(string, ...any)
	Error(...any)
	Errorf(string, ...any) // also used by testify/assert
}

// Dequeuer is the part of a FIFO queue that DrainQueue needs.
type Dequeuer[T any] interface {
	Dequeue() (T, error)
	IsEmpty() bool
	Len() int
}

// DrainQueue expects to dequeue data in order from q, then expects
// q to be empty. Len is checked before every Dequeue.
// On the first failed Dequeue it stops, so a short queue doesn't
// produce a failure for every missing element.
func DrainQueue[T any](t TestT, data []T, q Dequeuer[T]) {
	t.Logf("draining: expecting %v", data)
	for i, datum := range data {
		assert.Equal(t, len(data)-i, q.Len(), "length before dequeue i=%d", i)
		assert.False(t, q.IsEmpty(), "empty before dequeue i=%d", i)

		el, err := q.Dequeue()
		if err != nil {
			t.Errorf("dequeue failed early, expecting i=%d %v: %v", i, datum, err)
			return
		}
		assert.Equal(t, datum, el)
	}

	if !q.IsEmpty() {
		t.Errorf("at the end of draining, queue still has %d elements", q.Len())
		return
	}

	if el, err := q.Dequeue(); err == nil {
		t.Errorf("queue should be empty, but dequeued: %v", el)
	}
	assert.Equal(t, 0, q.Len())
}
