// Package container holds the small generic data structures the
// simulator's per-lane vehicle ordering and deployment scheduler are
// built on: a position-keyed doubly-linked list and a priority queue.
package container

import (
	"fmt"
	"log"
)

// Positioned is implemented by anything a List can order: it must
// expose a velocity and a length so lane occupancy queries (MOBIL
// safety, IDM gap) can be answered straight off the node.
type Positioned interface {
	V() float64
	Length() float64
}

// ListNode is one element of a List, keyed by S (a longitudinal
// position along a lane).
type ListNode[T Positioned, E any] struct {
	parent     *List[T, E]
	prev, next *ListNode[T, E]
	S          float64
	Value      T
	Extra      E
}

func (n *ListNode[T, E]) String() string {
	return fmt.Sprintf("ListNode{S:%v, Value:%+v}", n.S, n.Value)
}

func (n *ListNode[T, E]) Prev() *ListNode[T, E] { return n.prev }
func (n *ListNode[T, E]) Next() *ListNode[T, E] { return n.next }
func (n *ListNode[T, E]) Parent() *List[T, E]   { return n.parent }
func (n *ListNode[T, E]) V() float64            { return n.Value.V() }
func (n *ListNode[T, E]) L() float64            { return n.Value.Length() }

// InsertBefore splices add immediately ahead of n.
func (n *ListNode[T, E]) InsertBefore(add *ListNode[T, E]) {
	if add.parent != nil {
		log.Panic("container: insert node already owned by a list")
	}
	add.parent = n.parent
	add.next = n
	add.prev = n.prev
	n.prev = add
	if add.prev != nil {
		add.prev.next = add
	} else {
		add.parent.head = add
	}
	n.parent.length++
}

// InsertAfter splices add immediately behind n.
func (n *ListNode[T, E]) InsertAfter(add *ListNode[T, E]) {
	if add.parent != nil {
		log.Panic("container: insert node already owned by a list")
	}
	add.parent = n.parent
	add.prev = n
	add.next = n.next
	n.next = add
	if add.next != nil {
		add.next.prev = add
	} else {
		add.parent.tail = add
	}
	n.parent.length++
}

// List is a doubly-linked list of nodes ordered by ListNode.S,
// intended for a single lane's vehicles kept sorted by longitudinal
// position so leader/follower queries are a short walk from any node.
type List[T Positioned, E any] struct {
	ID         string
	head, tail *ListNode[T, E]
	length     int
}

func (l *List[T, E]) String() string { return fmt.Sprintf("List{ID:%v, Len:%d}", l.ID, l.length) }

// Keys returns the S value of every node, in list order.
func (l *List[T, E]) Keys() []float64 {
	keys := make([]float64, 0, l.length)
	for node := l.head; node != nil; node = node.next {
		keys = append(keys, node.S)
	}
	return keys
}

// Values returns the Value of every node, in list order.
func (l *List[T, E]) Values() []T {
	values := make([]T, 0, l.length)
	for node := l.head; node != nil; node = node.next {
		values = append(values, node.Value)
	}
	return values
}

func (l *List[T, E]) Len() int { return l.length }

// PushFront inserts add as the new head, regardless of S ordering.
// Callers that need sorted insertion should use InsertBefore/After or
// Merge.
func (l *List[T, E]) PushFront(add *ListNode[T, E]) {
	if add.parent != nil {
		log.Panic("container: push node already owned by a list")
	}
	add.next = nil
	add.prev = nil
	if l.head == nil {
		add.parent = l
		l.head = add
		l.tail = add
		l.length++
	} else {
		l.head.InsertBefore(add)
		l.head = add
	}
}

// PushBack inserts add as the new tail, regardless of S ordering.
func (l *List[T, E]) PushBack(add *ListNode[T, E]) {
	if add.parent != nil {
		log.Panic("container: push node already owned by a list")
	}
	add.next = nil
	add.prev = nil
	if l.tail == nil {
		add.parent = l
		l.head = add
		l.tail = add
		l.length++
	} else {
		l.tail.InsertAfter(add)
		l.tail = add
	}
}

// Insert places add in S-sorted position, scanning from the tail
// backwards (the common case: new vehicles enter near the end of a
// lane's ordering far less often than they move forward a little each
// tick).
func (l *List[T, E]) Insert(add *ListNode[T, E]) {
	if add.parent != nil {
		log.Panic("container: insert node already owned by a list")
	}
	node := l.tail
	for node != nil && node.S > add.S {
		node = node.prev
	}
	if node == nil {
		l.PushFront(add)
	} else {
		node.InsertAfter(add)
		if l.tail == node {
			l.tail = add
		}
	}
}

// Remove detaches node from the list.
func (l *List[T, E]) Remove(node *ListNode[T, E]) {
	if node.parent != l {
		log.Panic("container: remove node from a list it is not in")
	}
	if node.prev != nil {
		node.prev.next = node.next
	} else {
		l.head = node.next
	}
	if node.next != nil {
		node.next.prev = node.prev
	} else {
		l.tail = node.prev
	}
	node.prev = nil
	node.next = nil
	node.parent = nil
	l.length--
}

func (l *List[T, E]) First() *ListNode[T, E] { return l.head }
func (l *List[T, E]) Last() *ListNode[T, E]  { return l.tail }

// PopUnsorted removes and returns every node whose S is smaller than
// its predecessor's S, restoring ascending order. Used after a batch
// of position updates that may have reordered a few nodes in place.
func (l *List[T, E]) PopUnsorted() (unsorted []*ListNode[T, E]) {
	for node := l.head; node != nil; {
		next := node.next
		if node.prev != nil && node.prev.S > node.S {
			l.Remove(node)
			unsorted = append(unsorted, node)
		}
		node = next
	}
	return unsorted
}

// Merge sorted-inserts every node in adds into the list.
func (l *List[T, E]) Merge(adds []*ListNode[T, E]) {
	for i := 0; i < len(adds)-1; i++ {
		for j := i + 1; j < len(adds); j++ {
			if adds[i].S > adds[j].S {
				adds[i], adds[j] = adds[j], adds[i]
			}
		}
	}
	node := l.head
	for _, add := range adds {
		for node != nil && node.S < add.S {
			node = node.next
		}
		if node != nil {
			node.InsertBefore(add)
		} else {
			l.PushBack(add)
		}
	}
}
