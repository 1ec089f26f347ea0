package huffman

// BuildTree builds the Huffman tree of the given frequencies.
// It returns nil when no byte has a positive count.
// When a single byte value occurs, the root has that leaf as its left child and no right child,
// so every symbol still costs one bit.
func BuildTree(freq *Frequencies) *Internal {
	q := NewQueue(NbSymbols)

	leaves := 0
	for symbol, f := range freq {
		if f < 0 {
			panic("negative frequency")
		}
		if f > 0 {
			q.Insert(&Leaf{Symbol: byte(symbol), Freq: f})
			leaves++
		}
	}

	switch leaves {
	case 0:
		return nil
	case 1:
		return newInternal(q.DeleteMin(), nil)
	}

	// merge the two smallest nodes until one node remains
	for i := 1; i < leaves; i++ {
		left := q.DeleteMin()
		right := q.DeleteMin()
		q.Insert(newInternal(left, right))
	}

	// with at least two leaves the last node is always internal
	return q.DeleteMin().(*Internal)
}
