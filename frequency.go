package huffman

// FrequencyTable holds the number of occurrences of each Symbol in an input.
// Symbols that do not occur have a count of 0.
type FrequencyTable [NumSymbols]uint64

// CountFrequencies tabulates the occurrences of each byte in text.  An empty
// text yields an all-zero table.
func CountFrequencies(text []byte) FrequencyTable {
	var freqs FrequencyTable
	for _, ch := range text {
		freqs[ch]++
	}
	return freqs
}

// Distinct returns the number of symbols with a non-zero count.
func (freqs *FrequencyTable) Distinct() int {
	var n int
	for _, freq := range freqs {
		if freq != 0 {
			n++
		}
	}
	return n
}

// Total returns the sum of all counts, i.e. the length of the input.
func (freqs *FrequencyTable) Total() uint64 {
	var sum uint64
	for _, freq := range freqs {
		sum += freq
	}
	return sum
}
