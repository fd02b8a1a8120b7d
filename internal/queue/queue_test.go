package queue_test

import (
	"testing"

	"github.com/randomizedcoder/ringqueue/internal/queue"
)

func testQueue[T comparable](t *testing.T, q queue.Queue[T], vals []T, name string) {
	t.Helper()

	// Empty queue returns false
	if _, ok := q.TryDequeue(); ok {
		t.Errorf("%s: expected TryDequeue() = false on empty queue", name)
	}
	if q.Len() != 0 {
		t.Errorf("%s: expected Len() = 0 on empty queue, got %d", name, q.Len())
	}

	for i, v := range vals {
		q.Enqueue(v)
		if q.Len() != i+1 {
			t.Errorf("%s: expected Len() = %d after Enqueue, got %d", name, i+1, q.Len())
		}
	}

	// Values come back in the order they went in
	for i, want := range vals {
		got, ok := q.TryDequeue()
		if !ok {
			t.Fatalf("%s: expected TryDequeue() = true for item %d", name, i)
		}
		if got != want {
			t.Errorf("%s: FIFO violation at %d: expected %v, got %v", name, i, want, got)
		}
	}

	// Queue is empty again
	if _, ok := q.TryDequeue(); ok {
		t.Errorf("%s: expected TryDequeue() = false after draining", name)
	}
	if q.Len() != 0 {
		t.Errorf("%s: expected Len() = 0 after draining, got %d", name, q.Len())
	}
}

// Test that every implementation satisfies the interface
func TestQueueInterface(t *testing.T) {
	vals := []int{42, 0, -1, 7, 0, 1 << 20, 3, 3, 9, 11, 12}

	testCases := []struct {
		name string
		q    queue.Queue[int]
	}{
		{"RingQueue", queue.NewRingQueue[int]()},
		{"RingQueueZero", &queue.RingQueue[int]{}},
		{"ListQueue", queue.NewListQueue[int]()},
		{"EapacheQueue", queue.NewEapacheQueue[int]()},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			testQueue(t, tc.q, vals, tc.name)
		})
	}
}

// A queued nil must not read as an empty queue.
func TestQueueInterface_NilValues(t *testing.T) {
	testCases := []struct {
		name string
		q    queue.Queue[*int]
	}{
		{"RingQueue", queue.NewRingQueue[*int]()},
		{"ListQueue", queue.NewListQueue[*int]()},
		{"EapacheQueue", queue.NewEapacheQueue[*int]()},
	}

	one := 1
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			testQueue(t, tc.q, []*int{nil, &one, nil}, tc.name)
		})
	}
}

func TestQueueInterface_InterfaceValues(t *testing.T) {
	testCases := []struct {
		name string
		q    queue.Queue[any]
	}{
		{"RingQueue", queue.NewRingQueue[any]()},
		{"ListQueue", queue.NewListQueue[any]()},
		{"EapacheQueue", queue.NewEapacheQueue[any]()},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			testQueue(t, tc.q, []any{nil, "a", 1, nil}, tc.name)
		})
	}
}

func TestListQueue_Dequeue(t *testing.T) {
	q := queue.NewListQueue[string]()

	if _, err := q.Dequeue(); err != queue.ErrEmptyQueue {
		t.Errorf("expected ErrEmptyQueue, got %v", err)
	}

	q.Enqueue("a")
	got, err := q.Dequeue()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "a" {
		t.Errorf("expected %q, got %q", "a", got)
	}
	if q.Len() != 0 {
		t.Errorf("expected Len() = 0, got %d", q.Len())
	}
}
