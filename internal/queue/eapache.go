package queue

import (
	eq "github.com/eapache/queue"
)

// EapacheQueue adapts github.com/eapache/queue to the Queue interface.
//
// The wrapped queue keeps a power-of-two buffer that doubles when full
// and halves when a quarter full, and stores elements as interface{}.
type EapacheQueue[T any] struct {
	q *eq.Queue
}

// NewEapacheQueue creates an empty EapacheQueue.
func NewEapacheQueue[T any]() *EapacheQueue[T] {
	return &EapacheQueue[T]{q: eq.New()}
}

func (q *EapacheQueue[T]) Len() int { return q.q.Length() }

func (q *EapacheQueue[T]) Enqueue(v T) { q.q.Add(v) }

func (q *EapacheQueue[T]) TryDequeue() (T, bool) {
	if q.q.Length() == 0 {
		var zero T
		return zero, false
	}
	v, _ := q.q.Remove().(T)
	return v, true
}
