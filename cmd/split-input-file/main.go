// split-input-file converts a combined trait file into a collection of files,
// each containing one site.
//
// The input must contain a one-line header followed by one line per
// individual, with the site name in column 1. The output files are in the
// same format, including the header, with one site each: sites X, Y and Z
// produce X.csv, Y.csv and Z.csv. Several inputs are read as one stream, so
// only the first may carry the header.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/carbocation/biodistance"
	"github.com/carbocation/biodistance/compileinfo"
	"github.com/carbocation/biodistance/split"
)

func main() {
	var outDir string
	var version bool

	flag.StringVar(&outDir, "outdir", ".", "Directory in which to create one file per site")
	flag.BoolVar(&version, "version", false, "Print build information and exit")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage:\n  %s [flags] file [file2 [...]]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if version {
		compileinfo.Fprint(os.Stderr, "split-input-file")
		return
	}

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	created, err := run(context.Background(), flag.Args(), outDir)
	if err != nil {
		log.Fatalln(err)
	}

	log.Printf("Wrote %d files to %s\n", len(created), outDir)
}

func run(ctx context.Context, paths []string, outDir string) ([]string, error) {
	client, err := biodistance.NewStorageClientFor(ctx, paths...)
	if err != nil {
		return nil, err
	}
	if client != nil {
		defer client.Close()
	}

	readers := make([]io.Reader, 0, len(paths))
	for _, path := range paths {
		data, err := biodistance.ReadInput(ctx, path, client)
		if err != nil {
			return nil, err
		}
		readers = append(readers, newlineTerminated(data))
	}

	return split.Split(io.MultiReader(readers...), outDir)
}

// newlineTerminated keeps the last line of one input from running into the
// first line of the next.
func newlineTerminated(data []byte) io.Reader {
	if len(data) > 0 && data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}

	return bytes.NewReader(data)
}
