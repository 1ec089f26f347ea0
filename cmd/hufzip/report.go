package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/hufzip/compress/huf"
)

// report prints the compression ratio and the code table, shortest code first.
func report(w io.Writer, res *huf.Result) error {
	ratioPct := int64(0)
	if res.OriginalLen != 0 {
		ratioPct = res.CompressedLen * 10000 / res.OriginalLen
	}
	if _, err := fmt.Fprintf(w, "%dB -> %dB compression ratio %d.%02d%%\n", res.OriginalLen, res.CompressedLen, ratioPct/100, ratioPct%100); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "byte\tchar\tfreq\tcode")
	for _, row := range res.RowsByCode() {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n", row.Symbol, row.Printable, row.Count, row.Code)
	}
	return tw.Flush()
}
