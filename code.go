package huffman

import (
	"fmt"
	"strconv"
)

// Code represents a sequence of bits as a string of '0' and '1' characters.
// The first character is the first bit.
//
// The empty Code is legal: it is the code of the only symbol in a
// single-symbol input.
//
type Code string

// Len returns the number of bits in this Code.
func (hc Code) Len() int {
	return len(hc)
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(string(hc))
}

// IsPrefixOf returns true iff hc is a prefix of other.  Every Code is a prefix
// of itself.
func (hc Code) IsPrefixOf(other Code) bool {
	return len(hc) <= len(other) && other[:len(hc)] == hc
}

var _ fmt.Stringer = Code("")
