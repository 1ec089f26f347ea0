package huf

import (
	"fmt"

	"github.com/hufzip/compress/huffman"
)

// Row is one line of the frequency table of a container.
type Row struct {
	Symbol    byte
	Printable string
	Count     int64
	Code      string
}

// Rows lists the bytes present in the original data, by byte value.
func (r *Result) Rows() []Row {
	rows := make([]Row, 0, r.Frequencies.Distinct())
	for s, c := range r.Frequencies {
		if c == 0 {
			continue
		}
		rows = append(rows, r.row(byte(s)))
	}
	return rows
}

// RowsByCode lists the same rows as Rows, shortest code first, ties by byte value.
func (r *Result) RowsByCode() []Row {
	symbols := r.Codes.Symbols()
	rows := make([]Row, len(symbols))
	for i, s := range symbols {
		rows[i] = r.row(s)
	}
	return rows
}

func (r *Result) row(s byte) Row {
	return Row{
		Symbol:    s,
		Printable: printable(s),
		Count:     r.Frequencies[s],
		Code:      r.Codes[s].String(),
	}
}

func printable(b byte) string {
	switch {
	case b >= 32 && b <= 126:
		return fmt.Sprintf("'%c'", b)
	case b == '\n':
		return `'\n'`
	case b == '\r':
		return `'\r'`
	case b == '\t':
		return `'\t'`
	}
	return "(non-printable)"
}

// EstimateLength is the size of the container data would compress to, without encoding it.
func EstimateLength(data []byte) int64 {
	freq := huffman.Count(data)
	return newResult(freq, int64(len(data)), huffman.BuildTree(freq)).CompressedLen
}
