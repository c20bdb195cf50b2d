package huffman

import (
	"github.com/chronos-tachyon/assert"
)

// Node is a node of a Huffman tree.
//
// A leaf holds a valid Symbol and no children.  An internal node holds
// InvalidSymbol and exactly two children.  Freq is the symbol's count for a
// leaf, or the sum of the children's Freq for an internal node.
//
type Node struct {
	Symbol Symbol
	Freq   uint64
	Left   *Node
	Right  *Node
}

// IsLeaf returns true iff n has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// BuildTree constructs the Huffman tree for the given frequencies and returns
// its root.
//
// Leaves are seeded in ascending symbol order, one per symbol with a non-zero
// count.  The two lowest-frequency nodes are then merged repeatedly, the first
// one extracted becoming the left child, until a single node remains.
//
// If no symbol has a non-zero count, BuildTree returns nil.  If exactly one
// does, the root is that symbol's leaf.
//
func BuildTree(freqs *FrequencyTable) *Node {
	var q PriorityQueue
	var numNodes int

	for symbol := Symbol(0); symbol < NumSymbols; symbol++ {
		if freq := freqs[symbol]; freq != 0 {
			q.Insert(&Node{Symbol: symbol, Freq: freq})
			numNodes++
		}
	}

	if q.IsEmpty() {
		return nil
	}

	for q.Size() > 1 {
		left := mustExtract(&q)
		right := mustExtract(&q)

		q.Insert(&Node{
			Symbol: InvalidSymbol,
			Freq:   left.Freq + right.Freq,
			Left:   left,
			Right:  right,
		})
		numNodes++
		assert.Assertf(numNodes <= MaxLiveNodes, "tree has %d nodes > MaxLiveNodes %d", numNodes, MaxLiveNodes)
	}

	return mustExtract(&q)
}

func mustExtract(q *PriorityQueue) *Node {
	node, err := q.ExtractMinimum()
	assert.Assertf(err == nil, "BUG: %v", err)
	return node
}
