// Command huffenc reads one line of text from standard input and prints the
// Huffman code of each character in it, followed by the encoded text.
//
// Usage:
//
//     huffenc [-packed]
//
// With -packed, the encoded text is also printed as hex bytes.
//
package main

import (
	"bufio"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	huffman "github.com/chronos-tachyon/huffcode"
)

var flagPacked = flag.Bool("packed", false, "also print the encoded text as packed hex bytes")

func main() {
	flag.Parse()

	if err := run(os.Stdin, os.Stdout, *flagPacked); err != nil {
		fmt.Fprintf(os.Stderr, "huffenc: %v\n", err)
		os.Exit(1)
	}
}

func run(in io.Reader, out io.Writer, packed bool) error {
	bw := bufio.NewWriter(out)

	bw.WriteString("Enter text to encode: ")
	if err := bw.Flush(); err != nil {
		return err
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to read input: %w", err)
	}
	line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")

	result := huffman.Encode([]byte(line))

	bw.WriteString("Character Codes:\n")
	if _, err := result.Table.WriteListing(bw); err != nil {
		return err
	}

	bw.WriteString("\nEncoded Text:\n")
	bw.WriteString(result.Bits)
	bw.WriteByte('\n')

	if packed {
		raw, err := huffman.Pack(result.Bits)
		if err != nil {
			return err
		}
		bw.WriteString("\nPacked:\n")
		bw.WriteString(hex.EncodeToString(raw))
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
