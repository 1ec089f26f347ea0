package huffman

// NbSymbols is the size of the byte alphabet.
const NbSymbols = 256

// Frequencies holds the occurrence count of every byte value.
type Frequencies [NbSymbols]int64

// Count returns the frequencies of the bytes in p.
func Count(p []byte) *Frequencies {
	var f Frequencies
	f.Add(p)
	return &f
}

// Add accumulates the bytes of p into f.
func (f *Frequencies) Add(p []byte) {
	for _, b := range p {
		f[b]++
	}
}

// Total is the sum of all counts, i.e. the length of the counted input.
func (f *Frequencies) Total() int64 {
	var t int64
	for _, c := range f {
		t += c
	}
	return t
}

// Distinct is the number of byte values with a positive count.
func (f *Frequencies) Distinct() int {
	n := 0
	for _, c := range f {
		if c > 0 {
			n++
		}
	}
	return n
}
