package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Encoder implements an encoder for static Huffman codes over the byte
// alphabet.
type Encoder struct {
	table   CodeTable
	minSize int
	maxSize int
}

// Init initializes this Encoder.  The argument lists the frequency (i.e. number
// of occurrences) of each symbol; symbols with a frequency of 0 receive no
// code.
//
func (e *Encoder) Init(freqs *FrequencyTable) {
	table := DeriveCodes(BuildTree(freqs))

	var minSize, maxSize int
	var hasMinMax bool
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if !table.present[symbol] {
			continue
		}
		size := table.codes[symbol].Len()
		if !hasMinMax {
			hasMinMax = true
			minSize, maxSize = size, size
		} else if minSize > size {
			minSize = size
		} else if maxSize < size {
			maxSize = size
		}
	}

	*e = Encoder{
		table:   table,
		minSize: minSize,
		maxSize: maxSize,
	}
}

// Encode returns the code for a single byte.  The boolean is false iff the byte
// has no code, i.e. its frequency was 0.
func (e *Encoder) Encode(ch byte) (Code, bool) {
	return e.table.Lookup(ch)
}

// AppendEncoded appends the codes for each byte of text, in order, to dst and
// returns the extended slice.  It returns an error if text contains a byte
// with no code.
func (e *Encoder) AppendEncoded(dst []byte, text []byte) ([]byte, error) {
	for index, ch := range text {
		hc, ok := e.table.Lookup(ch)
		if !ok {
			return dst, fmt.Errorf("huffman: byte 0x%02x at offset %d has no code", ch, index)
		}
		dst = append(dst, hc...)
	}
	return dst, nil
}

// Table returns a copy of this Encoder's code table.
func (e *Encoder) Table() CodeTable {
	return e.table
}

// MinSize is the bit length of the shortest code.
func (e *Encoder) MinSize() int {
	return e.minSize
}

// MaxSize is the bit length of the longest code.
func (e *Encoder) MaxSize() int {
	return e.maxSize
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e *Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.maxSize)
	for _, ch := range e.table.Symbols() {
		fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", ch, e.table.codes[ch])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// Result is the outcome of Encode.
type Result struct {
	// Table holds the code of every byte that occurs in the input.
	Table CodeTable

	// Bits holds the concatenated codes of the input, as '0' and '1'
	// characters, in input order.
	Bits string
}

// Encode builds the Huffman code for text from its own byte frequencies and
// encodes text with it.  An empty text yields an empty Table and empty Bits.
func Encode(text []byte) Result {
	freqs := CountFrequencies(text)

	var e Encoder
	e.Init(&freqs)

	buf := make([]byte, 0, weightedLength(&e.table, &freqs))
	buf, err := e.AppendEncoded(buf, text)
	assert.Assertf(err == nil, "BUG: %v", err)

	return Result{Table: e.table, Bits: string(buf)}
}

// WeightedLength returns the sum, over every symbol in the table, of its code
// length times its frequency in freqs.  For the frequencies a Result was built
// from, this equals len(r.Bits).
func (r *Result) WeightedLength(freqs *FrequencyTable) uint64 {
	return weightedLength(&r.Table, freqs)
}

func weightedLength(table *CodeTable, freqs *FrequencyTable) uint64 {
	var sum uint64
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if table.present[symbol] {
			sum += uint64(table.codes[symbol].Len()) * freqs[symbol]
		}
	}
	return sum
}
