package compress

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanTwice(t *testing.T) {
	data := []byte("scan me twice, please")
	r := bytes.NewReader(data)
	buf := make([]byte, 4)

	for i := 0; i < 2; i++ {
		var got []byte
		n, err := Scan(r, buf, func(p []byte) error {
			got = append(got, p...)
			return nil
		})
		require.NoError(t, err)
		require.Equal(t, int64(len(data)), n)
		require.Equal(t, data, got)
	}
}

func TestScanStopsOnError(t *testing.T) {
	stop := errors.New("stop")
	calls := 0
	_, err := Scan(bytes.NewReader(make([]byte, 100)), make([]byte, 10), func([]byte) error {
		calls++
		if calls == 3 {
			return stop
		}
		return nil
	})
	require.ErrorIs(t, err, stop)
	require.Equal(t, 3, calls)
}

func TestScanEmptyBuffer(t *testing.T) {
	_, err := Scan(bytes.NewReader(nil), nil, func([]byte) error { return nil })
	require.Error(t, err)
}

func TestLen(t *testing.T) {
	r := bytes.NewReader([]byte("12345"))
	_, err := r.ReadByte()
	require.NoError(t, err)

	n, err := Len(r)
	require.NoError(t, err)
	require.Equal(t, int64(5), n)
	b, err := r.ReadByte()
	require.NoError(t, err)
	require.Equal(t, byte('1'), b, "Len rewinds")
}

func TestCountingWriter(t *testing.T) {
	var bb bytes.Buffer
	cw := CountingWriter{W: &bb}
	_, err := fmt.Fprintf(&cw, "%d bytes", 7)
	require.NoError(t, err)
	require.Equal(t, int64(7), cw.N)
}

func TestErrorTaxonomy(t *testing.T) {
	var err error = &FormatError{Reason: "bad magic", Value: `"HUF0"`}
	assert.ErrorIs(t, err, ErrFormat)
	assert.NotErrorIs(t, err, ErrCorrupt)
	assert.Equal(t, `malformed container: bad magic ("HUF0")`, err.Error())

	err = fmt.Errorf("decompress: %w", &CorruptionError{Reason: "bit stream ended early", Decoded: 3, Want: 10})
	assert.ErrorIs(t, err, ErrCorrupt)
	assert.Contains(t, err.Error(), "after 3 of 10 bytes")

	assert.ErrorIs(t, Invariantf("byte %d", 4), ErrInvariant)
}
