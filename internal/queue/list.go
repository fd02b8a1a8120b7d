package queue

type listNode[T any] struct {
	next  *listNode[T]
	value T
}

// ListQueue is a FIFO queue stored as a singly linked list.
//
// Every Enqueue allocates a node. It is the reference model the ring
// implementations are checked against.
type ListQueue[T any] struct {
	head  *listNode[T]
	tail  *listNode[T]
	count int
}

// NewListQueue creates an empty ListQueue.
func NewListQueue[T any]() *ListQueue[T] {
	return &ListQueue[T]{}
}

func (q *ListQueue[T]) Len() int { return q.count }

func (q *ListQueue[T]) Enqueue(v T) {
	n := &listNode[T]{value: v}
	if q.head == nil {
		q.head = n
	} else {
		q.tail.next = n
	}
	q.tail = n
	q.count++
}

func (q *ListQueue[T]) TryDequeue() (T, bool) {
	if q.head == nil {
		var zero T
		return zero, false
	}

	n := q.head
	q.head = n.next
	if q.head == nil {
		q.tail = nil
	}
	q.count--

	return n.value, true
}

// Dequeue is TryDequeue with ErrEmptyQueue in place of false.
func (q *ListQueue[T]) Dequeue() (T, error) {
	v, ok := q.TryDequeue()
	if !ok {
		return v, ErrEmptyQueue
	}
	return v, nil
}
