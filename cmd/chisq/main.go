// chisq calculates chi-square and phi values for each pair of sites for each
// trait in two or more trait files.
//
// Output is one CSV table with a row per site pair and a chi-square and phi
// column per trait, followed by a row counting, per trait, the pairs whose
// chi-square exceeds the 0.05 critical value at 1 degree of freedom.
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
	"github.com/carbocation/biodistance/chisq"
	"github.com/carbocation/biodistance/compileinfo"
	"github.com/carbocation/biodistance/report"
	"github.com/carbocation/biodistance/traittable"
)

const BufferSize = 4096 * 8

var STDOUT = bufio.NewWriterSize(os.Stdout, BufferSize)

func main() {
	var long, strict, skipBlank, version bool
	var delimiter string

	flag.BoolVar(&long, "long", false, "Write one row per site pair and trait, with contingency counts and p-values, instead of the wide table")
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
		compileinfo.Fprint(os.Stderr, "chisq")
		return
	}

	if flag.NArg() < 2 {
		flag.Usage()
		os.Exit(1)
	}

	opts := traittable.Options{Delimiter: delimiter, Strict: strict}
	if skipBlank {
		opts.BlankLines = traittable.BlankLineSkip
	}

	if err := run(context.Background(), STDOUT, flag.Args(), opts, long); err != nil {
		STDOUT.Flush()
		log.Fatalln(err)
	}

	if err := STDOUT.Flush(); err != nil {
		log.Fatalln(err)
	}
}

func run(ctx context.Context, w io.Writer, paths []string, opts traittable.Options, long bool) error {
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

	cmp, err := chisq.Compare(tables)
	if err != nil {
		return err
	}

	if long {
		return report.WriteChiSquareLong(w, traittable.Names(tables), tables[0].TraitNames, cmp)
	}

	return report.WriteChiSquare(w, traittable.Names(tables), tables[0].TraitNames, cmp)
}
