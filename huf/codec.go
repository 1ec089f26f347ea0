package huf

import (
	"bufio"
	"bytes"
	"io"

	"github.com/hufzip/compress"
	"github.com/hufzip/compress/huffman"
	"github.com/icza/bitio"
	"github.com/sirupsen/logrus"
)

// Result describes one compression or decompression pass.
type Result struct {
	Frequencies   huffman.Frequencies
	Codes         *huffman.CodeTable
	OriginalLen   int64
	PayloadBits   int64 // encoded bits, padding excluded
	CompressedLen int64 // container size in bytes
	DecodedLen    int64 // bytes produced by decompression
}

// Ratio is CompressedLen / OriginalLen, 0 for an empty input.
func (r *Result) Ratio() float64 {
	if r.OriginalLen == 0 {
		return 0
	}
	return float64(r.CompressedLen) / float64(r.OriginalLen)
}

func newResult(freq *huffman.Frequencies, originalLen int64, root *huffman.Internal) *Result {
	res := &Result{Frequencies: *freq, OriginalLen: originalLen}
	res.Codes = huffman.AssignCodes(root)
	res.PayloadBits = payloadBits(freq, res.Codes)
	res.CompressedLen = int64(HeaderSize) + (res.PayloadBits+7)/8
	return res
}

func payloadBits(freq *huffman.Frequencies, codes *huffman.CodeTable) int64 {
	var bits int64
	for s, c := range freq {
		bits += c * int64(codes[s].Len)
	}
	return bits
}

// Codec compresses and decompresses containers. It holds no per-call state
// and may be shared between goroutines.
type Codec struct {
	log     logrus.FieldLogger
	bufSize int
}

type Option func(*Codec)

// WithLogger sets the logger compression passes are reported to, at debug level.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Codec) {
		c.log = l
	}
}

// WithBufferSize sets the size of the read and write buffers.
func WithBufferSize(n int) Option {
	return func(c *Codec) {
		if n > 0 {
			c.bufSize = n
		}
	}
}

func NewCodec(opts ...Option) *Codec {
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	c := &Codec{
		log:     discard,
		bufSize: compress.DefaultBufferSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultCodec = NewCodec()

// Compress returns the container for data.
func Compress(data []byte) ([]byte, *Result, error) {
	return defaultCodec.Compress(data)
}

// Decompress returns the data held in container.
func Decompress(container []byte) ([]byte, *Result, error) {
	return defaultCodec.Decompress(container)
}

func (c *Codec) Compress(data []byte) ([]byte, *Result, error) {
	var bb bytes.Buffer
	bb.Grow(HeaderSize + len(data))
	res, err := c.CompressStream(&bb, bytes.NewReader(data))
	if err != nil {
		return nil, res, err
	}
	return bb.Bytes(), res, nil
}

func (c *Codec) Decompress(container []byte) ([]byte, *Result, error) {
	var bb bytes.Buffer
	res, err := c.DecompressStream(&bb, bytes.NewReader(container))
	if err != nil {
		return nil, res, err
	}
	return bb.Bytes(), res, nil
}

// CompressStream reads r twice: once to count byte frequencies and once to encode it.
// r must yield the same bytes on both passes.
func (c *Codec) CompressStream(w io.Writer, r io.ReadSeeker) (*Result, error) {
	size, err := compress.Len(r)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, min(c.bufSize, int(size)+1))

	// first pass: frequencies
	var freq huffman.Frequencies
	n, err := compress.Scan(r, buf, func(p []byte) error {
		freq.Add(p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if n != size {
		return nil, compress.Invariantf("source reports %d bytes but yielded %d", size, n)
	}

	res := newResult(&freq, n, huffman.BuildTree(&freq))
	header := Header{OriginalLen: n, Frequencies: freq}

	cw := compress.CountingWriter{W: w}
	out := bufio.NewWriterSize(&cw, c.bufSize)
	if _, err = header.WriteTo(out); err != nil {
		return res, err
	}

	// second pass: payload
	bits := bitio.NewWriter(out)
	enc := huffman.NewEncoder(res.Codes, bits)
	m, err := compress.Scan(r, buf, func(p []byte) error {
		_, err := enc.Write(p)
		return err
	})
	if err != nil {
		return res, err
	}
	if m != n {
		return res, compress.Invariantf("source changed between passes: %d bytes, then %d", n, m)
	}
	if err = bits.Close(); err != nil {
		return res, err
	}
	if err = out.Flush(); err != nil {
		return res, err
	}

	if enc.BitLen() != res.PayloadBits || cw.N != res.CompressedLen {
		return res, compress.Invariantf("wrote %d bits in %d bytes, expected %d bits in %d bytes", enc.BitLen(), cw.N, res.PayloadBits, res.CompressedLen)
	}

	c.log.WithFields(logrus.Fields{
		"original":   res.OriginalLen,
		"compressed": res.CompressedLen,
		"symbols":    freq.Distinct(),
	}).Debug("compressed")
	return res, nil
}

// DecompressStream reads a container from r and writes the original bytes to w.
// Bytes following the padded payload are ignored.
func (c *Codec) DecompressStream(w io.Writer, r io.Reader) (*Result, error) {
	in := bufio.NewReaderSize(r, c.bufSize)

	var header Header
	if _, err := header.ReadFrom(in); err != nil {
		return nil, err
	}

	// the tree is rebuilt from the stored frequencies alone
	root := huffman.BuildTree(&header.Frequencies)
	res := newResult(&header.Frequencies, header.OriginalLen, root)

	out := bufio.NewWriterSize(w, c.bufSize)
	n, err := huffman.NewDecoder(root, bitio.NewReader(in)).Decode(out, header.OriginalLen)
	res.DecodedLen = n
	if err != nil {
		return res, err
	}
	if err = out.Flush(); err != nil {
		return res, err
	}

	c.log.WithFields(logrus.Fields{
		"original":   res.OriginalLen,
		"compressed": res.CompressedLen,
		"symbols":    header.Frequencies.Distinct(),
	}).Debug("decompressed")
	return res, nil
}

// Inspect reads and validates a container header without decoding the payload.
func Inspect(r io.Reader) (*Result, error) {
	var header Header
	if _, err := header.ReadFrom(r); err != nil {
		return nil, err
	}
	return newResult(&header.Frequencies, header.OriginalLen, huffman.BuildTree(&header.Frequencies)), nil
}
