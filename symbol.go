package huffman

// Symbol represents a symbol in the byte alphabet.  Negative symbols are not
// valid.
type Symbol int32

// NumSymbols is the size of the alphabet.
const NumSymbols = 256

// MaxLiveNodes is the largest number of nodes a single Huffman tree can hold:
// NumSymbols leaves plus NumSymbols-1 internal nodes.
const MaxLiveNodes = 2*NumSymbols - 1

// InvalidSymbol is held by internal tree nodes, which carry no symbol of their
// own.
const InvalidSymbol = Symbol(-1)

// IsValid returns true iff s is a symbol of the byte alphabet.
func (s Symbol) IsValid() bool {
	return s >= 0 && s < NumSymbols
}
