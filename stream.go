package compress

import (
	"errors"
	"io"
)

// DefaultBufferSize is the chunk size used when scanning a source.
const DefaultBufferSize = 64 * 1024

// Rewind positions s back at its first byte.
func Rewind(s io.Seeker) error {
	_, err := s.Seek(0, io.SeekStart)
	return err
}

// Scan rewinds r and feeds it to f chunk by chunk until the source is exhausted.
// It returns the number of bytes scanned.
// The chunk passed to f is only valid for the duration of the call.
func Scan(r io.ReadSeeker, buf []byte, f func(chunk []byte) error) (int64, error) {
	if len(buf) == 0 {
		return 0, errors.New("empty scan buffer")
	}
	if err := Rewind(r); err != nil {
		return 0, err
	}
	var n int64
	for {
		m, err := r.Read(buf)
		if m > 0 {
			n += int64(m)
			if fErr := f(buf[:m]); fErr != nil {
				return n, fErr
			}
		}
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, err
		}
	}
}

// Len reports the number of bytes in s, leaving it rewound.
func Len(s io.Seeker) (int64, error) {
	n, err := s.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}
	return n, Rewind(s)
}

// CountingWriter counts the bytes successfully written to W.
type CountingWriter struct {
	W io.Writer
	N int64
}

func (c *CountingWriter) Write(p []byte) (n int, err error) {
	n, err = c.W.Write(p)
	c.N += int64(n)
	return
}
