package container

import "container/heap"

type pqItem[T any] struct {
	Value    T
	Priority float64
	index    int
}

// heapSlice implements heap.Interface, ordered so Pop yields the
// smallest Priority (used here as deployment_time: the earliest
// scheduled vehicle surfaces first).
type heapSlice[T any] []*pqItem[T]

func (h heapSlice[T]) Len() int            { return len(h) }
func (h heapSlice[T]) Less(i, j int) bool  { return h[i].Priority < h[j].Priority }
func (h heapSlice[T]) Swap(i, j int)       { h[i], h[j] = h[j], h[i]; h[i].index = i; h[j].index = j }
func (h *heapSlice[T]) Push(x any) {
	it := x.(*pqItem[T])
	it.index = len(*h)
	*h = append(*h, it)
}
func (h *heapSlice[T]) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.index = -1
	*h = old[:n-1]
	return it
}

// PriorityQueue is a min-heap over Priority, used by the deployment
// scheduler to pop every entry whose deployment_time has arrived.
type PriorityQueue[T any] struct {
	queue heapSlice[T]
}

func NewPriorityQueue[T any]() *PriorityQueue[T] {
	return &PriorityQueue[T]{queue: make(heapSlice[T], 0)}
}

func (q *PriorityQueue[T]) Len() int { return len(q.queue) }

// Peek returns the lowest-priority value without removing it. Callers
// must check Len() > 0 first.
func (q *PriorityQueue[T]) Peek() (T, float64) {
	return q.queue[0].Value, q.queue[0].Priority
}

// Push adds value with the given priority, maintaining heap order.
func (q *PriorityQueue[T]) Push(value T, priority float64) {
	heap.Push(&q.queue, &pqItem[T]{Value: value, Priority: priority})
}

// Pop removes and returns the lowest-priority value.
func (q *PriorityQueue[T]) Pop() (value T, priority float64) {
	it := heap.Pop(&q.queue).(*pqItem[T])
	return it.Value, it.Priority
}
