// Command cabac-demo round-trips a file through the coder using the
// adaptive reference model, and reports the resulting compression ratio.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"

	"github.com/mrjoshuak/cabac"
	"github.com/mrjoshuak/cabac/adaptive"
)

func main() {
	var (
		precision     int
		contextWindow int
	)
	flag.IntVar(&precision, "precision", 32, "interval precision in bits")
	flag.IntVar(&contextWindow, "window", 12, "context window width in bits")
	flag.Parse()

	for _, path := range flag.Args() {
		if err := run(path, precision, contextWindow); err != nil {
			log.Fatalf("%+v", err)
		}
	}
}

func run(path string, precision, contextWindow int) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.WithStack(err)
	}
	bitLength := len(data) * 8

	encModel := adaptive.New()
	encoded, err := cabac.EncodeBytes(data, bitLength, encModel, precision, contextWindow)
	if err != nil {
		return errors.Wrapf(err, "encoding %q", path)
	}

	decModel := adaptive.New()
	decoded, err := cabac.DecodeBytes(encoded, bitLength, decModel, precision, contextWindow)
	if err != nil {
		return errors.Wrapf(err, "decoding %q", path)
	}

	match := bytesEqual(data, decoded)
	ratio := float64(len(encoded)) / float64(max(len(data), 1))

	fmt.Printf("%s: %d bytes -> %d bytes (ratio %.4f), round-trip match: %v, contexts trained: %d\n",
		path, len(data), len(encoded), ratio, match, encModel.Seen())

	if !match {
		return errors.Errorf("%q: decoded output does not match input", path)
	}
	return nil
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
