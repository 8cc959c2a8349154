package container_test

import (
	"testing"

	"github.com/fib-lab/lanesim/internal/container"
	"github.com/stretchr/testify/assert"
)

type testData struct{}

func (testData) V() float64      { return 0 }
func (testData) Length() float64 { return 0 }

func TestListInit(t *testing.T) {
	l := &container.List[testData, struct{}]{}
	assert.Nil(t, l.First())
	assert.Nil(t, l.Last())
	assert.Equal(t, 0, l.Len())
}

func TestListOperation(t *testing.T) {
	l := &container.List[testData, struct{}]{}

	n1 := &container.ListNode[testData, struct{}]{S: 1}
	l.PushBack(n1)
	n2 := &container.ListNode[testData, struct{}]{S: 2}
	l.PushFront(n2)
	n3 := &container.ListNode[testData, struct{}]{S: 3}
	n2.InsertBefore(n3)
	n4 := &container.ListNode[testData, struct{}]{S: 4}
	n1.InsertAfter(n4)
	assert.Equal(t, 4, l.Len())

	n := l.First()
	assert.Equal(t, n3, n)
	n = n.Next()
	assert.Equal(t, n2, n)
	n = n.Next()
	assert.Equal(t, n1, n)
	assert.Equal(t, n, n.Next().Prev())
	assert.Equal(t, n, n.Prev().Next())
	n = n.Next()
	assert.Equal(t, n4, n)
	assert.Equal(t, n4, l.Last())

	n0 := &container.ListNode[testData, struct{}]{S: 0}
	l.PushFront(n0)
	unsorted := l.PopUnsorted()
	assert.ElementsMatch(t, []*container.ListNode[testData, struct{}]{n2, n1}, unsorted)
	assert.Equal(t, 5-2, l.Len())

	l.Merge(unsorted)
	node := l.First()
	assert.Equal(t, n0, node)
	node = node.Next()
	assert.Equal(t, n1, node)
	node = node.Next()
	assert.Equal(t, n2, node)
	node = node.Next()
	assert.Equal(t, n3, node)
	node = node.Next()
	assert.Equal(t, n4, node)
	node = node.Next()
	assert.Nil(t, node)

	l.Remove(n4)
	assert.Equal(t, n3, l.Last())
	assert.Equal(t, 5-1, l.Len())
}

func TestListInsertSorted(t *testing.T) {
	l := &container.List[testData, struct{}]{}
	l.Insert(&container.ListNode[testData, struct{}]{S: 5})
	l.Insert(&container.ListNode[testData, struct{}]{S: 1})
	l.Insert(&container.ListNode[testData, struct{}]{S: 3})
	assert.Equal(t, []float64{1, 3, 5}, l.Keys())
}

func TestPriorityQueue(t *testing.T) {
	q := container.NewPriorityQueue[string]()
	q.Push("c", 3)
	q.Push("a", 1)
	q.Push("b", 2)
	assert.Equal(t, 3, q.Len())
	v, p := q.Pop()
	assert.Equal(t, "a", v)
	assert.Equal(t, 1.0, p)
	v, _ = q.Pop()
	assert.Equal(t, "b", v)
	v, _ = q.Pop()
	assert.Equal(t, "c", v)
	assert.Equal(t, 0, q.Len())
}
