package huffman

import (
	"testing"
)

func TestCountFrequencies(t *testing.T) {
	freqs := CountFrequencies([]byte("aabbc\x00\xff\xff"))

	expect := map[int]uint64{'a': 2, 'b': 2, 'c': 1, 0x00: 1, 0xff: 2}
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if freqs[symbol] != expect[symbol] {
			t.Errorf("symbol %d: expected %d, got %d", symbol, expect[symbol], freqs[symbol])
		}
	}
	if freqs.Distinct() != 5 {
		t.Errorf("expected 5 distinct symbols, got %d", freqs.Distinct())
	}
	if freqs.Total() != 8 {
		t.Errorf("expected total 8, got %d", freqs.Total())
	}
}

func TestCountFrequencies_Empty(t *testing.T) {
	freqs := CountFrequencies(nil)
	if freqs.Distinct() != 0 || freqs.Total() != 0 {
		t.Errorf("expected all-zero table, got %d distinct, total %d", freqs.Distinct(), freqs.Total())
	}
}
