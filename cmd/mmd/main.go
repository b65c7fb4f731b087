// mmd calculates theta values, the mean measure of divergence (MMD) and the
// MMD standard deviation for two or more trait files.
//
// Output is CSV with separate tables for thetas, MMD, sd MMD, MMD/standardized
// MMD (above/below the diagonal) and trait frequencies.
//
// Use split-input-file if you have a single file containing all sites, with a
// one-line header and site names in column 1.
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
	"github.com/carbocation/biodistance/mmd"
	"github.com/carbocation/biodistance/report"
	"github.com/carbocation/biodistance/traittable"
)

const BufferSize = 4096 * 8

var STDOUT = bufio.NewWriterSize(os.Stdout, BufferSize)

func main() {
	var zeroNoise, strict, skipBlank, version bool
	var delimiter string

	flag.BoolVar(&zeroNoise, "zero-theta-noise", true, "Report thetas between 0 and 1e-15 as exactly 0")
	flag.StringVar(&delimiter, "delimiter", ",", "Field delimiter: a single character, 'tab', or 'auto' to detect it")
	flag.BoolVar(&strict, "strict", false, "Fail on trait cells that are not integers instead of treating them as 0")
	flag.BoolVar(&skipBlank, "skip-blank-lines", false, "Skip blank lines instead of treating the first one as the end of the data")
	flag.BoolVar(&version, "version", false, "Print build information and exit")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage:\n  %s [flags] file1 file2 [file3 [...]]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if version {
		compileinfo.Fprint(os.Stderr, "mmd")
		return
	}

	if flag.NArg() < 2 {
		flag.Usage()
		os.Exit(1)
	}

	opts := traittable.Options{Delimiter: delimiter, Strict: strict, ZeroThetaNoise: zeroNoise}
	if skipBlank {
		opts.BlankLines = traittable.BlankLineSkip
	}

	if err := run(context.Background(), STDOUT, flag.Args(), opts); err != nil {
		STDOUT.Flush()
		log.Fatalln(err)
	}

	if err := STDOUT.Flush(); err != nil {
		log.Fatalln(err)
	}
}

func run(ctx context.Context, w io.Writer, paths []string, opts traittable.Options) error {
	client, err := biodistance.NewStorageClientFor(ctx, paths...)
	if err != nil {
		return err
	}
	if client != nil {
		defer client.Close()
	}

	tables, err := traittable.LoadAll(ctx, paths, client, opts)
	if err != nil {
		return err
	}

	ms, err := mmd.Compute(tables)
	if err != nil {
		return err
	}

	return report.WriteMMD(w, traittable.Names(tables), tables, ms)
}
