package main

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hufzip/compress/huf"
)

// verify decompresses the container in memory and checks it against the original file,
// first by SHA-256 digest then byte for byte.
func verify(codec *huf.Codec, origPath, containerPath string) error {
	orig, err := os.ReadFile(origPath)
	if err != nil {
		return err
	}

	f, err := os.Open(containerPath)
	if err != nil {
		return err
	}
	defer f.Close()

	var restored bytes.Buffer
	if _, err = codec.DecompressStream(&restored, f); err != nil {
		return err
	}

	want, got := digest(bytes.NewReader(orig)), digest(bytes.NewReader(restored.Bytes()))
	if !bytes.Equal(want, got) {
		return fmt.Errorf("sha256 mismatch: %x != %x", got, want)
	}
	if !bytes.Equal(orig, restored.Bytes()) {
		return errors.New("contents differ")
	}
	return nil
}

func digest(r io.Reader) []byte {
	h := sha256.New()
	_, _ = io.Copy(h, r)
	return h.Sum(nil)
}
