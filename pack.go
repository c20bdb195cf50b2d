package huffman

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// ErrInvalidBit is wrapped by the errors Pack and WritePacked return when the
// bit string holds a character other than '0' or '1'.
var ErrInvalidBit = errors.New("huffman: invalid bit character")

// Pack converts a string of '0' and '1' characters into bytes.  Bits are packed
// most significant bit first, and the last byte is padded with zero bits.
func Pack(bits string) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(PackedSize(len(bits)))
	if _, err := WritePacked(&buf, bits); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WritePacked is like Pack, but writes the packed bytes to w.  It returns the
// number of bytes written.  If bits holds an invalid character, nothing is
// written.
func WritePacked(w io.Writer, bits string) (int64, error) {
	for index := 0; index < len(bits); index++ {
		if ch := bits[index]; ch != '0' && ch != '1' {
			return 0, fmt.Errorf("%w %q at offset %d", ErrInvalidBit, ch, index)
		}
	}

	cw := &countingWriter{w: w}
	bw := bitio.NewWriter(cw)
	for index := 0; index < len(bits); index++ {
		if err := bw.WriteBool(bits[index] == '1'); err != nil {
			return cw.n, err
		}
	}
	err := bw.Close()
	return cw.n, err
}

// countingWriter counts the bytes that reach w.  It implements io.ByteWriter
// so that bitio writes through it directly instead of adding a buffer.
type countingWriter struct {
	w   io.Writer
	n   int64
	one [1]byte
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

func (cw *countingWriter) WriteByte(b byte) error {
	cw.one[0] = b
	_, err := cw.Write(cw.one[:])
	return err
}

var _ io.ByteWriter = (*countingWriter)(nil)

// PackedSize returns the number of bytes needed to hold numBits bits.
func PackedSize(numBits int) int {
	return (numBits + 7) / 8
}
