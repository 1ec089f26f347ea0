package huffman

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/hufzip/compress"
	"github.com/icza/bitio"
	"github.com/stretchr/testify/require"
)

func TestRandomRoundTrip(t *testing.T) {
	randomRoundTrip(t, randomBytes(1000, NbSymbols))
}

func TestSkewedRoundTrip(t *testing.T) {
	randomRoundTrip(t, randomBytes(5000, 3))
}

func TestDeepCodesRoundTrip(t *testing.T) {
	// codes longer than 64 bits
	f := fibonacciFrequencies(80)
	table := AssignCodes(BuildTree(f))
	text := []byte{0, 1, 2, 79, 1, 0, 40}

	var bb bytes.Buffer
	writer := bitio.NewWriter(&bb)
	enc := NewEncoder(table, writer)
	_, err := enc.Write(text)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	var out bytes.Buffer
	n, err := NewDecoder(BuildTree(f), bitio.NewReader(&bb)).Decode(&out, int64(len(text)))
	require.NoError(t, err)
	require.Equal(t, int64(len(text)), n)
	require.Equal(t, text, out.Bytes())
}

func TestSingleSymbolBitLen(t *testing.T) {
	text := bytes.Repeat([]byte{0x41}, 1000)
	bb, bits := encode(t, text)
	require.Equal(t, int64(1000), bits)
	require.Equal(t, 125, bb.Len())
	require.Equal(t, make([]byte, 125), bb.Bytes())
}

func TestTwoSymbolsBitLen(t *testing.T) {
	bb, bits := encode(t, []byte("AAAABBB"))
	require.Equal(t, int64(7), bits)
	// A=1 B=0, padded with a zero
	require.Equal(t, []byte{0b11110000}, bb.Bytes())
}

func TestEncoderMissingCode(t *testing.T) {
	table := AssignCodes(BuildTree(Count([]byte("ab"))))
	var bb bytes.Buffer
	n, err := NewEncoder(table, bitio.NewWriter(&bb)).Write([]byte("abc"))
	require.ErrorIs(t, err, compress.ErrInvariant)
	require.Equal(t, 2, n)
}

func TestDecoderTruncated(t *testing.T) {
	text := randomBytes(100, 20)
	bb, _ := encode(t, text)
	truncated := bb.Bytes()[:bb.Len()/2]

	var out bytes.Buffer
	n, err := NewDecoder(BuildTree(Count(text)), bitio.NewReader(bytes.NewReader(truncated))).Decode(&out, int64(len(text)))
	require.ErrorIs(t, err, compress.ErrCorrupt)
	require.Less(t, n, int64(len(text)))

	var cErr *compress.CorruptionError
	require.ErrorAs(t, err, &cErr)
	require.Equal(t, n, cErr.Decoded)
	require.Equal(t, int64(len(text)), cErr.Want)
}

func TestDecoderAbsentChild(t *testing.T) {
	var f Frequencies
	f['z'] = 3
	// a set bit steps into the missing right child of a single-symbol tree
	var out bytes.Buffer
	_, err := NewDecoder(BuildTree(&f), bitio.NewReader(bytes.NewReader([]byte{0b00100000}))).Decode(&out, 3)
	require.ErrorIs(t, err, compress.ErrCorrupt)
	require.Equal(t, []byte("zz"), out.Bytes())
}

func TestDecoderStopsAtCount(t *testing.T) {
	text := []byte("abracadabra")
	bb, _ := encode(t, text)
	bb.Write([]byte{0xff, 0xff}) // trailing garbage is never read

	var out bytes.Buffer
	_, err := NewDecoder(BuildTree(Count(text)), bitio.NewReader(bb)).Decode(&out, int64(len(text)))
	require.NoError(t, err)
	require.Equal(t, text, out.Bytes())
}

func TestDecoderEmpty(t *testing.T) {
	var out bytes.Buffer
	n, err := NewDecoder(nil, bitio.NewReader(bytes.NewReader(nil))).Decode(&out, 0)
	require.NoError(t, err)
	require.Zero(t, n)

	_, err = NewDecoder(nil, bitio.NewReader(bytes.NewReader(nil))).Decode(&out, 1)
	require.ErrorIs(t, err, compress.ErrCorrupt)
}

func encode(t *testing.T, text []byte) (*bytes.Buffer, int64) {
	var bb bytes.Buffer
	writer := bitio.NewWriter(&bb)
	enc := NewEncoder(AssignCodes(BuildTree(Count(text))), writer)
	_, err := enc.Write(text)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return &bb, enc.BitLen()
}

func randomRoundTrip(t *testing.T, text []byte) {
	// write
	bb, _ := encode(t, text)

	// read back
	var out bytes.Buffer
	dec := NewDecoder(BuildTree(Count(text)), bitio.NewReader(bb))
	_, err := dec.Decode(&out, int64(len(text)))
	require.NoError(t, err)

	require.Equal(t, text, out.Bytes())
	require.LessOrEqual(t, bb.Len(), len(text))
}

func randomBytes(length, bound int) []byte {
	res := make([]byte, length)
	for i := range res {
		res[i] = byte(rand.Intn(bound)) //nolint:gosec
	}
	return res
}
