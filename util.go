package huffman

import (
	mathbits "math/bits"
)

// log2int returns the number of bits needed to represent x, treating 0 as 1.
// It is used to size stacks for tree walks, which are about log2(n) deep for
// well-balanced trees.
func log2int(x int) int {
	if x <= 0 {
		x = 1
	}
	return mathbits.Len(uint(x))
}
