package huffman

import (
	"errors"
	"io"

	"github.com/hufzip/compress"
	"github.com/icza/bitio"
)

// Encoder writes the code of every byte it is given to a bit stream.
type Encoder struct {
	w    *bitio.Writer
	c    *CodeTable
	bits int64
}

// NewEncoder creates an [Encoder] from a [CodeTable] and a [bitio.Writer].
// The [Encoder] will not own the writer; closing it (which pads the last byte with zeros) is up to the caller.
func NewEncoder(c *CodeTable, w *bitio.Writer) *Encoder {
	return &Encoder{c: c, w: w}
}

// Write implements [io.Writer]. A byte without a code yields an error wrapping [compress.ErrInvariant].
func (e *Encoder) Write(p []byte) (n int, err error) {
	for n = range p {
		code := &e.c[p[n]]
		if code.Len == 0 {
			return n, compress.Invariantf("byte %#02x has no code", p[n])
		}
		for i := 0; i < code.Len; i += 64 {
			k := min(64, code.Len-i)
			if err = e.w.WriteBits(code.words[i/64]>>(64-k), uint8(k)); err != nil {
				return
			}
		}
		e.bits += int64(code.Len)
	}
	return len(p), nil
}

// BitLen is the number of payload bits written so far, padding excluded.
func (e *Encoder) BitLen() int64 {
	return e.bits
}

// Decoder walks the tree one bit at a time.
type Decoder struct {
	root *Internal
	r    *bitio.Reader
}

// NewDecoder creates a [Decoder] over the tree rooted at root.
// The [Decoder] will not own the reader.
func NewDecoder(root *Internal, r *bitio.Reader) *Decoder {
	return &Decoder{root: root, r: r}
}

// Decode writes exactly n decoded bytes to w. Bits left over after the n-th byte,
// such as the padding of the last byte, are not consumed.
// Running out of bits or stepping into a missing child is reported as a [*compress.CorruptionError].
func (d *Decoder) Decode(w io.ByteWriter, n int64) (decoded int64, err error) {
	if n == 0 {
		return 0, nil
	}
	if d.root == nil {
		return 0, &compress.CorruptionError{Reason: "no symbols to decode", Want: n}
	}

	cur := d.root
	for decoded < n {
		var b uint64
		if b, err = d.r.ReadBits(1); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				err = &compress.CorruptionError{Reason: "bit stream ended early", Decoded: decoded, Want: n}
			}
			return
		}

		next := cur.Left
		if b == 1 {
			next = cur.Right
		}

		switch next := next.(type) {
		case nil:
			return decoded, &compress.CorruptionError{Reason: "descended into an absent child", Decoded: decoded, Want: n}
		case *Leaf:
			if err = w.WriteByte(next.Symbol); err != nil {
				return
			}
			decoded++
			cur = d.root
		case *Internal:
			cur = next
		}
	}
	return decoded, nil
}
