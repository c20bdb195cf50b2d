package huffman

import (
	"errors"
	"testing"
)

func TestPriorityQueue_Order(t *testing.T) {
	var q PriorityQueue
	for _, freq := range []uint64{7, 3, 9, 1, 4, 4, 8, 2} {
		q.Insert(&Node{Symbol: Symbol(freq), Freq: freq})
	}

	if q.Size() != 8 {
		t.Errorf("expected size 8, got %d", q.Size())
	}

	var prev uint64
	for !q.IsEmpty() {
		node, err := q.ExtractMinimum()
		if err != nil {
			t.Fatalf("ExtractMinimum failed: %v", err)
		}
		if node.Freq < prev {
			t.Errorf("extracted %d after %d", node.Freq, prev)
		}
		prev = node.Freq
	}
}

func TestPriorityQueue_TieBreak(t *testing.T) {
	var q PriorityQueue
	for _, symbol := range []Symbol{5, 2, 9, 0, 7} {
		q.Insert(&Node{Symbol: symbol, Freq: 3})
	}
	q.Insert(&Node{Symbol: 1, Freq: 1})

	expect := []Symbol{1, 5, 2, 9, 0, 7}
	for index, expectSymbol := range expect {
		node, err := q.ExtractMinimum()
		if err != nil {
			t.Fatalf("ExtractMinimum failed: %v", err)
		}
		if node.Symbol != expectSymbol {
			t.Errorf("extraction %d: expected symbol %d, got %d", index, expectSymbol, node.Symbol)
		}
	}
}

func TestPriorityQueue_LeafBeforeInternal(t *testing.T) {
	leaf := &Node{Symbol: 'z', Freq: 2}
	internal := &Node{
		Symbol: InvalidSymbol,
		Freq:   2,
		Left:   &Node{Symbol: 'a', Freq: 1},
		Right:  &Node{Symbol: 'b', Freq: 1},
	}

	var q PriorityQueue
	q.Insert(leaf)
	q.Insert(internal)

	first, _ := q.ExtractMinimum()
	second, _ := q.ExtractMinimum()
	if first != leaf || second != internal {
		t.Errorf("expected leaf then internal node, got symbols %d then %d", first.Symbol, second.Symbol)
	}
}

func TestPriorityQueue_Empty(t *testing.T) {
	var q PriorityQueue
	if !q.IsEmpty() {
		t.Errorf("expected new queue to be empty")
	}

	node, err := q.ExtractMinimum()
	if !errors.Is(err, ErrEmptyQueue) {
		t.Errorf("expected ErrEmptyQueue, got %v", err)
	}
	if node != nil {
		t.Errorf("expected nil node, got %#v", node)
	}
}

func TestPriorityQueue_Growth(t *testing.T) {
	var q PriorityQueue
	for i := 0; i < 2*MaxLiveNodes; i++ {
		q.Insert(&Node{Symbol: InvalidSymbol, Freq: uint64(2*MaxLiveNodes - i)})
	}
	if q.Size() != 2*MaxLiveNodes {
		t.Errorf("expected size %d, got %d", 2*MaxLiveNodes, q.Size())
	}
	node, _ := q.ExtractMinimum()
	if node.Freq != 1 {
		t.Errorf("expected minimum 1, got %d", node.Freq)
	}
}
