package huffman

import (
	"strings"

	"golang.org/x/exp/slices"
)

// MaxCodeLen bounds the depth of a tree over the byte alphabet.
const MaxCodeLen = NbSymbols - 1

// Code is a root-to-leaf path; 0 for a left edge, 1 for a right edge.
// The zero Code (Len == 0) means "no code".
type Code struct {
	words [(MaxCodeLen + 63) / 64]uint64 // bits packed most significant first
	Len   int
}

// Bit returns the i-th bit of the path, starting from the root.
func (c *Code) Bit(i int) uint8 {
	return uint8(c.words[i/64]>>(63-i%64)) & 1
}

func (c Code) appendBit(b uint8) Code {
	if b != 0 {
		c.words[c.Len/64] |= 1 << (63 - c.Len%64)
	}
	c.Len++
	return c
}

// String renders the code as a string of '0' and '1'.
func (c Code) String() string {
	var sb strings.Builder
	sb.Grow(c.Len)
	for i := 0; i < c.Len; i++ {
		sb.WriteByte('0' + c.Bit(i))
	}
	return sb.String()
}

// CodeTable maps every byte value to its code. Absent bytes have a zero Code.
type CodeTable [NbSymbols]Code

// Lookup returns the code of b, if it has one.
func (t *CodeTable) Lookup(b byte) (Code, bool) {
	c := t[b]
	return c, c.Len != 0
}

// Symbols lists the bytes that have a code, shortest code first, ties by byte value.
func (t *CodeTable) Symbols() []byte {
	keys := make([]int, 0, NbSymbols)
	for s := range t {
		if t[s].Len != 0 {
			keys = append(keys, t[s].Len<<8|s)
		}
	}
	slices.Sort(keys)
	res := make([]byte, len(keys))
	for i, k := range keys {
		res[i] = byte(k)
	}
	return res
}

// AssignCodes walks the tree depth first and records the path to every leaf.
// A nil root yields an empty table.
func AssignCodes(root *Internal) *CodeTable {
	var table CodeTable
	if root == nil {
		return &table
	}

	type frame struct {
		n    Node
		path Code
	}
	// explicit stack: a skewed tree over 256 symbols is 255 levels deep
	stack := make([]frame, 0, 2*NbSymbols)
	stack = append(stack, frame{n: root})
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch n := f.n.(type) {
		case *Leaf:
			if f.path.Len == 0 { // a bare leaf root still needs one bit
				f.path = f.path.appendBit(0)
			}
			table[n.Symbol] = f.path
		case *Internal:
			// push right first so the left subtree is visited first
			if n.Right != nil {
				stack = append(stack, frame{n.Right, f.path.appendBit(1)})
			}
			if n.Left != nil {
				stack = append(stack, frame{n.Left, f.path.appendBit(0)})
			}
		}
	}
	return &table
}
