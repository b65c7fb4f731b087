// gower calculates the Gower similarity for all pairs of individuals in a
// trait file. The file can hold many sites or just one.
//
// Output is the similarity matrix as CSV, labelled by the identifier in
// column 1. Pairs with no trait scored in both individuals are written as "-".
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/carbocation/biodistance"
	"github.com/carbocation/biodistance/compileinfo"
	"github.com/carbocation/biodistance/gower"
	"github.com/carbocation/biodistance/report"
	"github.com/carbocation/biodistance/traittable"
)

const BufferSize = 4096 * 8

var STDOUT = bufio.NewWriterSize(os.Stdout, BufferSize)

func main() {
	var mean, strict, skipBlank, version bool
	var delimiter string

	flag.BoolVar(&mean, "mean", false, "Append a column with each individual's mean similarity to all others, including itself")
	flag.StringVar(&delimiter, "delimiter", ",", "Field delimiter: a single character, 'tab', or 'auto' to detect it")
	flag.BoolVar(&strict, "strict", false, "Fail on trait cells that are not integers instead of treating them as 0")
	flag.BoolVar(&skipBlank, "skip-blank-lines", false, "Skip blank lines instead of treating the first one as the end of the data")
	flag.BoolVar(&version, "version", false, "Print build information and exit")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage:\n  %s [flags] file\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if version {
		compileinfo.Fprint(os.Stderr, "gower")
		return
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	opts := traittable.Options{Delimiter: delimiter, Strict: strict}
	if skipBlank {
		opts.BlankLines = traittable.BlankLineSkip
	}

	if err := run(context.Background(), STDOUT, flag.Arg(0), opts, mean); err != nil {
		STDOUT.Flush()
		log.Fatalln(err)
	}

	if err := STDOUT.Flush(); err != nil {
		log.Fatalln(err)
	}
}

func run(ctx context.Context, w io.Writer, path string, opts traittable.Options, mean bool) error {
	client, err := biodistance.NewStorageClientFor(ctx, path)
	if err != nil {
		return err
	}
	if client != nil {
		defer client.Close()
	}

	tbl, err := traittable.Load(ctx, path, client, opts)
	if err != nil {
		return err
	}

	m := gower.Matrix(tbl)

	var means []float64
	if mean {
		means = gower.RowMeans(m)
	}

	return report.WriteGower(w, tbl, m, means)
}
