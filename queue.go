package huffman

import (
	"container/heap"
	"errors"
)

// ErrEmptyQueue is returned by PriorityQueue.ExtractMinimum when the queue
// holds no nodes.
var ErrEmptyQueue = errors.New("huffman: extract from empty priority queue")

// PriorityQueue is a min-priority queue of tree nodes keyed by frequency.
//
// Ties between nodes of equal frequency go to the node that was inserted
// first.  The order is total, so the sequence of extractions depends only on
// the sequence of insertions and never on the heap's internal layout.
//
// The zero value is an empty queue ready for use.
//
type PriorityQueue struct {
	h    nodeHeap
	next uint64
}

// Insert adds a node to the queue.
func (q *PriorityQueue) Insert(node *Node) {
	heap.Push(&q.h, queueEntry{node: node, seq: q.next})
	q.next++
}

// ExtractMinimum removes and returns the node with the smallest frequency.
func (q *PriorityQueue) ExtractMinimum() (*Node, error) {
	if q.h.Len() == 0 {
		return nil, ErrEmptyQueue
	}
	entry := heap.Pop(&q.h).(queueEntry)
	return entry.node, nil
}

// IsEmpty returns true iff the queue holds no nodes.
func (q *PriorityQueue) IsEmpty() bool {
	return q.h.Len() == 0
}

// Size returns the number of nodes in the queue.
func (q *PriorityQueue) Size() int {
	return q.h.Len()
}

// type queueEntry + type nodeHeap {{{

type queueEntry struct {
	node *Node
	seq  uint64
}

type nodeHeap struct {
	list []queueEntry
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.Freq != b.node.Freq {
		return a.node.Freq < b.node.Freq
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(queueEntry))
}

func (h *nodeHeap) Pop() interface{} {
	last := len(h.list) - 1
	x := h.list[last]
	h.list[last] = queueEntry{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
