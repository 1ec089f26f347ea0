package huffman

import (
	"container/heap"
)

// Node is a node of a Huffman tree: either a *Leaf or an *Internal.
// Trees are never mutated once built.
type Node interface {
	// Frequency is the leaf count, or the sum of the children's frequencies.
	Frequency() int64
	isNode()
}

// Leaf carries one byte value.
type Leaf struct {
	Symbol byte
	Freq   int64
}

// Internal has a left (bit 0) and right (bit 1) child.
// Right is nil only at the root of a single-symbol tree.
type Internal struct {
	Freq        int64
	Left, Right Node
}

func (l *Leaf) Frequency() int64     { return l.Freq }
func (n *Internal) Frequency() int64 { return n.Freq }
func (*Leaf) isNode()                {}
func (*Internal) isNode()            {}

func newInternal(left, right Node) *Internal {
	n := &Internal{Left: left, Right: right, Freq: left.Frequency()}
	if right != nil {
		n.Freq += right.Frequency()
	}
	return n
}

// less orders nodes by frequency, then leaves before internal nodes, then by byte value.
// It depends on node content only, so a decoder holding nothing but the
// frequencies rebuilds the encoder's tree.
func less(a, b Node) bool {
	if fa, fb := a.Frequency(), b.Frequency(); fa != fb {
		return fa < fb
	}
	la, aIsLeaf := a.(*Leaf)
	lb, bIsLeaf := b.(*Leaf)
	if aIsLeaf != bIsLeaf {
		return aIsLeaf
	}
	if aIsLeaf {
		return la.Symbol < lb.Symbol
	}
	return false
}

// PriorityQueue implements a min-heap for Nodes.
type PriorityQueue []Node

func (pq *PriorityQueue) Len() int           { return len(*pq) }
func (pq *PriorityQueue) Less(i, j int) bool { return less((*pq)[i], (*pq)[j]) }
func (pq *PriorityQueue) Swap(i, j int)      { (*pq)[i], (*pq)[j] = (*pq)[j], (*pq)[i] }

// Push adds an element to the priority queue.
func (pq *PriorityQueue) Push(x interface{}) {
	*pq = append(*pq, x.(Node))
}

// Pop removes and returns the last element of the underlying slice.
func (pq *PriorityQueue) Pop() interface{} {
	n := len(*pq)
	item := (*pq)[n-1]
	(*pq)[n-1] = nil
	*pq = (*pq)[:n-1]
	return item
}

// Queue is the min-priority queue the tree builder draws from.
type Queue struct {
	pq PriorityQueue
}

// NewQueue returns an empty queue with room for capacity nodes before growing.
func NewQueue(capacity int) *Queue {
	if capacity < 4 {
		capacity = 4
	}
	return &Queue{pq: make(PriorityQueue, 0, capacity)}
}

func (q *Queue) Len() int { return q.pq.Len() }

// Insert adds n, sifting it up towards the root.
func (q *Queue) Insert(n Node) {
	if n == nil {
		panic("huffman: nil node")
	}
	heap.Push(&q.pq, n)
}

// DeleteMin removes and returns the smallest node.
// Calling it on an empty queue is a programming error and panics.
func (q *Queue) DeleteMin() Node {
	if q.pq.Len() == 0 {
		panic("huffman: DeleteMin on empty queue")
	}
	return heap.Pop(&q.pq).(Node)
}
