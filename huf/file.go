package huf

import (
	"errors"
	"os"
	"path/filepath"
)

// CompressFile writes the container for the file at inPath to outPath.
// On failure no partial output is left behind.
func (c *Codec) CompressFile(inPath, outPath string) (*Result, error) {
	in, err := os.Open(inPath)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	var res *Result
	err = writeFile(inPath, outPath, func(out *os.File) (err error) {
		res, err = c.CompressStream(out, in)
		return
	})
	return res, err
}

// DecompressFile restores the file at outPath from the container at inPath.
// On failure no partial output is left behind.
func (c *Codec) DecompressFile(inPath, outPath string) (*Result, error) {
	in, err := os.Open(inPath)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	var res *Result
	err = writeFile(inPath, outPath, func(out *os.File) (err error) {
		res, err = c.DecompressStream(out, in)
		return
	})
	return res, err
}

func writeFile(inPath, outPath string, f func(out *os.File) error) (err error) {
	if same, err := samePath(inPath, outPath); err != nil {
		return err
	} else if same {
		return errors.New("input and output are the same file")
	}

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer func() {
		if cErr := out.Close(); err == nil {
			err = cErr
		}
		if err != nil {
			_ = os.Remove(outPath)
		}
	}()

	return f(out)
}

func samePath(a, b string) (bool, error) {
	aa, err := filepath.Abs(a)
	if err != nil {
		return false, err
	}
	bb, err := filepath.Abs(b)
	if err != nil {
		return false, err
	}
	return aa == bb, nil
}
