// Package split partitions a combined trait file, one row per individual with
// the site name in column 1, into one file per site. Every output file starts
// with the combined file's header.
package split

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/carbocation/pfx"
)

// Key returns the site name of a line: everything before the first comma,
// with path separators replaced so that it is safe as a file name.
func Key(line string) string {
	key := line
	if i := strings.IndexByte(line, ','); i >= 0 {
		key = line[:i]
	}

	return strings.NewReplacer("/", "_", `\`, "_").Replace(key)
}

// Split reads the header and rows from r and writes <site>.csv files into
// outDir. Blank lines are skipped. It returns the names of the files it
// created, in the order the sites were first seen.
func Split(r io.Reader, outDir string) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, pfx.Err(err)
		}
		return nil, pfx.Err(fmt.Errorf("input is empty, expected a header line"))
	}
	header := scanner.Text()

	files := make(map[string]*bufio.Writer)
	var created []string
	var closers []*os.File
	defer func() {
		for _, f := range closers {
			f.Close()
		}
	}()

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimRight(line, "\r") == "" {
			continue
		}

		key := Key(line)
		w, exists := files[key]
		if !exists {
			name := key + ".csv"
			log.Printf("New file: %s\n", name)

			f, err := os.Create(filepath.Join(outDir, name))
			if err != nil {
				return created, pfx.Err(err)
			}
			closers = append(closers, f)
			created = append(created, name)

			w = bufio.NewWriter(f)
			files[key] = w

			if _, err := fmt.Fprintln(w, header); err != nil {
				return created, pfx.Err(err)
			}
		}

		if _, err := fmt.Fprintln(w, line); err != nil {
			return created, pfx.Err(err)
		}
	}
	if err := scanner.Err(); err != nil {
		return created, pfx.Err(err)
	}

	for _, name := range created {
		if err := files[strings.TrimSuffix(name, ".csv")].Flush(); err != nil {
			return created, pfx.Err(err)
		}
	}

	for _, f := range closers {
		if err := f.Close(); err != nil {
			return created, pfx.Err(err)
		}
	}
	closers = nil

	return created, nil
}
