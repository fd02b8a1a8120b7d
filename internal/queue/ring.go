package queue

import "errors"

// ErrEmptyQueue is returned by Dequeue on an empty queue.
var ErrEmptyQueue = errors.New("queue empty")

// RingQueue is a FIFO queue stored in a circular buffer.
//
// The buffer starts with a single slot and grows to ceil(1.5 * cap)
// whenever an Enqueue finds it full. It never shrinks. The zero value is
// an empty queue ready to use.
type RingQueue[T any] struct {
	items []T
	start int // oldest element
	end   int // next slot to write
	count int
}

// NewRingQueue creates an empty RingQueue with a single-slot buffer.
func NewRingQueue[T any]() *RingQueue[T] {
	return &RingQueue[T]{
		items: make([]T, 1),
	}
}

// Len returns the number of queued items.
func (q *RingQueue[T]) Len() int { return q.count }

// Cap returns the length of the backing buffer.
func (q *RingQueue[T]) Cap() int { return len(q.items) }

// Enqueue adds v at the tail, growing the buffer first if it is full.
func (q *RingQueue[T]) Enqueue(v T) {
	if q.count == len(q.items) {
		q.grow()
	}

	q.items[q.end] = v
	q.end++
	if q.end == len(q.items) {
		q.end = 0
	}
	q.count++
}

// TryDequeue removes and returns the oldest item.
// Returns false, without touching the queue, if it is empty.
func (q *RingQueue[T]) TryDequeue() (T, bool) {
	if q.count == 0 {
		var zero T
		return zero, false
	}
	return q.dequeue(), true
}

// Dequeue removes and returns the oldest item.
// Returns ErrEmptyQueue, without touching the queue, if it is empty.
func (q *RingQueue[T]) Dequeue() (T, error) {
	if q.count == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}
	return q.dequeue(), nil
}

func (q *RingQueue[T]) dequeue() T {
	v := q.items[q.start]

	// Avoid memory leaks if T is pointer or contains pointers.
	var zero T
	q.items[q.start] = zero

	q.start++
	if q.start == len(q.items) {
		q.start = 0
	}
	q.count--

	return v
}

// grow replaces a full buffer with one 1.5x its length (rounded up).
//
// Elements before start wrapped around and stay where they are. The run
// from start to the old end of the buffer moves right by the number of
// added slots, so the free slots open up at end, which equals start
// while the buffer is full.
func (q *RingQueue[T]) grow() {
	oldCap := len(q.items)
	if oldCap == 0 {
		q.items = make([]T, 1)
		return
	}

	newCap := oldCap + (oldCap+1)/2
	offset := newCap - oldCap

	items := make([]T, newCap)
	copy(items, q.items[:q.start])
	copy(items[q.start+offset:], q.items[q.start:])

	q.items = items
	q.start += offset
}
