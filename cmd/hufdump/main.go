package main

import (
	"encoding/csv"
	"flag"
	"io"
	"os"
	"strconv"

	"github.com/hufzip/compress/huf"
	"github.com/sirupsen/logrus"
)

var flagIn = flag.String("i", "", "container file (required)")

// this app creates a readable csv version of a container header
func main() {
	flag.Parse()
	if *flagIn == "" {
		logrus.Fatal("no input file specified")
	}

	f, err := os.Open(*flagIn)
	if err != nil {
		logrus.Fatal(err)
	}
	defer f.Close()

	res, err := huf.Inspect(f)
	if err != nil {
		logrus.WithField("file", *flagIn).Fatal(err)
	}
	if err = dump(os.Stdout, res); err != nil {
		logrus.Fatal(err)
	}
}

func dump(w io.Writer, res *huf.Result) error {
	cw := csv.NewWriter(w)
	records := [][]string{
		{"original_length", strconv.FormatInt(res.OriginalLen, 10), "", ""},
		{"byte", "char", "freq", "code"},
	}
	for _, row := range res.Rows() {
		records = append(records, []string{
			strconv.Itoa(int(row.Symbol)),
			row.Printable,
			strconv.FormatInt(row.Count, 10),
			row.Code,
		})
	}
	return cw.WriteAll(records)
}
