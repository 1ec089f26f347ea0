package huf

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/hufzip/compress"
	"github.com/hufzip/compress/huffman"
)

const (
	// Magic opens every container.
	Magic = "HUF1"
	// HeaderSize is the size in bytes of the magic, length and frequency table.
	HeaderSize = len(Magic) + 8 + huffman.NbSymbols*4
)

// Header is everything a decoder needs to rebuild the tree.
// No code table is stored: the frequencies determine it.
type Header struct {
	OriginalLen int64 // length in bytes of the uncompressed data
	Frequencies huffman.Frequencies
}

// Validate checks the header is self-consistent and fits the on-disk layout.
func (h *Header) Validate() error {
	if h.OriginalLen < 0 {
		return &compress.FormatError{Reason: "negative original length", Value: h.OriginalLen}
	}
	for s, c := range h.Frequencies {
		if c < 0 {
			return &compress.FormatError{Reason: fmt.Sprintf("negative count for byte %d", s), Value: c}
		}
		if c > math.MaxInt32 {
			return &compress.FormatError{Reason: fmt.Sprintf("count for byte %d overflows the header field", s), Value: c}
		}
	}
	if total := h.Frequencies.Total(); total != h.OriginalLen {
		return &compress.FormatError{Reason: fmt.Sprintf("counts sum to %d, not the original length", total), Value: h.OriginalLen}
	}
	return nil
}

func (h *Header) WriteTo(w io.Writer) (int64, error) {
	if err := h.Validate(); err != nil {
		return 0, err
	}

	var b [HeaderSize]byte
	copy(b[:], Magic)
	binary.BigEndian.PutUint64(b[4:], uint64(h.OriginalLen))
	for s, c := range h.Frequencies {
		binary.BigEndian.PutUint32(b[12+4*s:], uint32(c))
	}

	n, err := w.Write(b[:])
	return int64(n), err
}

func (h *Header) ReadFrom(r io.Reader) (int64, error) {
	var b [HeaderSize]byte

	n, err := io.ReadFull(r, b[:len(Magic)])
	if err != nil {
		return int64(n), truncated(err, n)
	}
	if string(b[:len(Magic)]) != Magic {
		return int64(n), &compress.FormatError{Reason: "bad magic", Value: fmt.Sprintf("%q", b[:len(Magic)])}
	}

	m, err := io.ReadFull(r, b[len(Magic):])
	n += m
	if err != nil {
		return int64(n), truncated(err, n)
	}

	h.OriginalLen = int64(binary.BigEndian.Uint64(b[4:]))
	for s := range h.Frequencies {
		h.Frequencies[s] = int64(int32(binary.BigEndian.Uint32(b[12+4*s:])))
	}
	return int64(n), h.Validate()
}

// truncated turns a short read into a format error; other read errors are returned unchanged.
func truncated(err error, n int) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &compress.FormatError{Reason: fmt.Sprintf("truncated header: %d of %d bytes", n, HeaderSize)}
	}
	return err
}
