// Package queue provides an unbounded FIFO queue backed by a growable
// ring buffer, plus the implementations it is checked and benchmarked
// against.
//
// This package offers three implementations of the Queue interface:
//   - RingQueue: Circular buffer that grows by 1.5x when full
//   - ListQueue: Singly linked list, one allocation per element
//   - EapacheQueue: Typed wrapper over github.com/eapache/queue
//
// # Concurrency
//
// None of the implementations are safe for concurrent use. Callers that
// share a queue between goroutines must provide their own locking.
package queue

// Queue is an unbounded first-in-first-out queue.
//
// Enqueue never fails. TryDequeue reports false if the queue is empty,
// so a queued zero value is distinguishable from an empty queue.
type Queue[T any] interface {
	// Enqueue adds an item at the tail.
	Enqueue(T)

	// TryDequeue removes and returns the oldest item.
	// Returns false if the queue is empty.
	TryDequeue() (T, bool)

	// Len returns the number of queued items.
	Len() int
}
