package huffman

import (
	"bytes"
	"io"

	"github.com/chronos-tachyon/assert"
)

// CodeTable maps each symbol of an input to its Huffman code.  Only symbols
// that occur in the input have an entry.
type CodeTable struct {
	codes   [NumSymbols]Code
	present [NumSymbols]bool
	count   int
}

// DeriveCodes walks the tree rooted at root and returns the code of every
// leaf.  Descending to a left child appends '0', descending to a right child
// appends '1'.  A nil root yields an empty table; a root that is itself a leaf
// receives the empty Code.
//
func DeriveCodes(root *Node) CodeTable {
	var table CodeTable
	if root == nil {
		return table
	}

	// We walk the tree with an explicit stack, so that a badly skewed tree
	// cannot blow up the goroutine stack.  Only internal nodes are pushed.
	//
	// stackItem.x tracks where we are in the walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children
	//
	// path always holds the code of the top item's child being visited.

	type stackItem struct {
		node *Node
		x    byte
	}

	depthHint := log2int(NumSymbols)
	stack := make([]stackItem, 0, depthHint)
	path := make([]byte, 0, depthHint)

	visit := func(node *Node) {
		if node.IsLeaf() {
			table.set(node.Symbol, Code(path))
			return
		}
		assert.Assertf(node.Left != nil && node.Right != nil, "BUG: internal node with one child")
		stack = append(stack, stackItem{node: node})
	}

	visit(root)
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0:
			path = append(path, '0')
			visit(top.node.Left)
		case 1:
			path[len(path)-1] = '1'
			visit(top.node.Right)
		case 2:
			path = path[:len(path)-1]
			stack = stack[:len(stack)-1]
		}
	}

	return table
}

func (t *CodeTable) set(symbol Symbol, hc Code) {
	assert.Assertf(symbol.IsValid(), "BUG: leaf with invalid symbol %d", symbol)
	assert.Assertf(!t.present[symbol], "BUG: symbol %d reached twice", symbol)
	t.codes[symbol] = hc
	t.present[symbol] = true
	t.count++
}

// Lookup returns the code for ch.  The boolean is false iff ch did not occur
// in the input the table was built from.
func (t *CodeTable) Lookup(ch byte) (Code, bool) {
	return t.codes[ch], t.present[ch]
}

// Len returns the number of symbols with a code.
func (t *CodeTable) Len() int {
	return t.count
}

// Symbols returns the symbols with a code, in ascending order.
func (t *CodeTable) Symbols() []byte {
	out := make([]byte, 0, t.count)
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if t.present[symbol] {
			out = append(out, byte(symbol))
		}
	}
	return out
}

// WriteListing writes one "<symbol>: <code>" line per symbol with a code, in
// ascending symbol order.  The symbol is written as the raw byte.
func (t *CodeTable) WriteListing(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	for _, ch := range t.Symbols() {
		buf.WriteByte(ch)
		buf.WriteString(": ")
		buf.WriteString(string(t.codes[ch]))
		buf.WriteByte('\n')
	}
	return buf.WriteTo(w)
}
