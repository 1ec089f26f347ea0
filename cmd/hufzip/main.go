package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/hufzip/compress/huf"
	"github.com/sirupsen/logrus"
)

var (
	flagDecompress = flag.Bool("d", false, "decompress")
	flagIn         = flag.String("i", "", "input file (required)")
	flagOut        = flag.String("o", "", "output file")
	flagNoOut      = flag.Bool("no_out", false, "no output")
	flagReport     = flag.Bool("r", false, "report compression ratio and code table")
	flagVerify     = flag.Bool("verify", false, "decompress the written container and compare it with the input (compression only)")
	flagVerbose    = flag.Bool("v", false, "debug logging")
	flagVersion    = flag.Bool("version", false, "report executable version")
)

const (
	extension = ".huf"
	version   = "0.1.0"
)

var log = logrus.New()

func assertNoError(err error) {
	if err != nil {
		log.Fatal(err)
	}
}

func main() {
	flag.Parse()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if *flagVerbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if *flagVersion {
		fmt.Println("hufzip v" + version)
		os.Exit(0)
	}

	if *flagIn == "" {
		log.Fatal("no input file specified")
	}

	assertNoError(checkFlags(*flagOut, *flagNoOut, *flagDecompress, *flagVerify))

	if *flagOut == "" { // construct a file name from the input name
		if *flagDecompress {
			if strings.HasSuffix(*flagIn, extension) {
				*flagOut = (*flagIn)[:len(*flagIn)-len(extension)]
			} else {
				*flagOut = *flagIn + ".decompressed"
			}
		} else {
			*flagOut = *flagIn + extension
		}
	}

	codec := huf.NewCodec(huf.WithLogger(log.WithField("input", *flagIn)))

	var (
		res *huf.Result
		err error
	)
	switch {
	case *flagNoOut:
		res, err = dryRun(codec, *flagIn, *flagDecompress)
	case *flagDecompress:
		res, err = codec.DecompressFile(*flagIn, *flagOut)
	default:
		res, err = codec.CompressFile(*flagIn, *flagOut)
	}
	assertNoError(err)

	if *flagVerify {
		assertNoError(verify(codec, *flagIn, *flagOut))
		log.WithField("container", *flagOut).Info("round trip verified")
	}

	if *flagReport {
		assertNoError(report(os.Stdout, res))
	}
}

// checkFlags rejects option combinations that cannot be honored.
func checkFlags(out string, noOut, decompress, verify bool) error {
	switch {
	case out != "" && noOut:
		return errors.New("options -no_out and -o are mutually exclusive")
	case verify && noOut:
		return errors.New("options -no_out and -verify are mutually exclusive")
	case verify && decompress:
		// decoding the container again would only compare the decoder with itself
		return errors.New("option -verify needs the original input and only applies to compression")
	}
	return nil
}

// dryRun runs the codec without keeping its output.
func dryRun(codec *huf.Codec, in string, decompress bool) (*huf.Result, error) {
	f, err := os.Open(in)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if decompress {
		return codec.DecompressStream(discard{}, f)
	}
	return codec.CompressStream(discard{}, f)
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
