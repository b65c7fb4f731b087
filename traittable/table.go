// Package traittable loads trait-presence tables: one header row, one row per
// individual or site, and integer trait codes from the first column whose
// header starts with a digit.
package traittable

import (
	"bytes"
	"context"
	"io"
	"io/ioutil"
	"log"
	"regexp"

	"cloud.google.com/go/storage"
	"github.com/carbocation/biodistance"
	"github.com/carbocation/biodistance/linecsv"
	"github.com/carbocation/pfx"
)

// TraitStartPattern identifies the first trait column: its header cell
// starts with one or more digits. Every column after it is also a trait.
var TraitStartPattern = regexp.MustCompile(`^\d+`)

// BlankLinePolicy decides what a blank line in the data section means.
type BlankLinePolicy int

const (
	// BlankLineStop treats the first blank line as the end of the data.
	BlankLineStop BlankLinePolicy = iota
	// BlankLineSkip ignores blank lines and reads to the end of the input.
	BlankLineSkip
)

type Options struct {
	// Delimiter is a single character, "auto" to detect it, or empty for a
	// comma.
	Delimiter string

	// Strict rejects trait cells that are not plain integers instead of
	// coercing them with ParseCode.
	Strict bool

	BlankLines BlankLinePolicy

	// ZeroThetaNoise rounds thetas in (0, 1e-15) down to exactly 0.
	ZeroThetaNoise bool
}

// Table is an immutable trait matrix loaded from one input.
type Table struct {
	// Name labels the table in reports.
	Name string

	// StartColumn is the 0-based column where trait data begins.
	StartColumn int

	TraitNames []string

	// Labels holds column 0 of each row, verbatim.
	Labels []string

	// Rows[i][t] is the code of trait t for row i. Every row has
	// len(TraitNames) entries.
	Rows [][]int

	zeroThetaNoise bool
}

// Load reads path, which may be local or gs://, and parses it. client is only
// needed for gs:// paths.
func Load(ctx context.Context, path string, client *storage.Client, opts Options) (*Table, error) {
	data, err := biodistance.ReadInput(ctx, path, client)
	if err != nil {
		return nil, err
	}

	return Parse(path, bytes.NewReader(data), opts)
}

// Parse builds a Table from r. source names the input in diagnostics and
// errors, and its short form becomes the table's Name.
func Parse(source string, r io.Reader, opts Options) (*Table, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, &biodistance.IOError{Path: source, Err: pfx.Err(err)}
	}

	comma, err := biodistance.ParseDelimiter(opts.Delimiter, data)
	if err != nil {
		return nil, pfx.Err(err)
	}

	rdr := linecsv.NewReader(bytes.NewReader(data))
	rdr.Comma = comma

	header, _, err := rdr.Read()
	if err == io.EOF {
		return nil, &HeaderError{Source: source}
	} else if err != nil {
		return nil, &biodistance.IOError{Path: source, Err: pfx.Err(err)}
	}

	start := findTraitStart(header)
	if start < 0 {
		return nil, &HeaderError{Source: source}
	}
	log.Printf("%s: Traits start in column %d\n", source, start+1)

	tbl := &Table{
		Name:           biodistance.ShortName(source),
		StartColumn:    start,
		TraitNames:     append([]string(nil), header[start:]...),
		zeroThetaNoise: opts.ZeroThetaNoise,
	}

	for {
		record, blank, err := rdr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, &biodistance.IOError{Path: source, Err: pfx.Err(err)}
		}

		if blank {
			if opts.BlankLines == BlankLineSkip {
				continue
			}
			break
		}

		row, err := tbl.codes(source, rdr.Line(), record, opts.Strict)
		if err != nil {
			return nil, err
		}

		tbl.Labels = append(tbl.Labels, record[0])
		tbl.Rows = append(tbl.Rows, row)
	}

	return tbl, nil
}

// findTraitStart returns the index of the first header cell matching
// TraitStartPattern, or -1.
func findTraitStart(header []string) int {
	for i, cell := range header {
		if TraitStartPattern.MatchString(cell) {
			return i
		}
	}

	return -1
}

// codes converts the trait cells of one record. Missing trailing cells are
// Unscored and surplus cells are ignored.
func (t *Table) codes(source string, line int, record []string, strict bool) ([]int, error) {
	row := make([]int, len(t.TraitNames))

	for i := range row {
		col := t.StartColumn + i
		if col >= len(record) {
			row[i] = Unscored
			continue
		}

		code, ok := ParseCode(record[col])
		if !ok && strict {
			return nil, &CodeError{Source: source, Line: line, Column: col + 1, Value: record[col]}
		}
		row[i] = code
	}

	return row, nil
}

func (t *Table) NumTraits() int { return len(t.TraitNames) }

func (t *Table) NumRows() int { return len(t.Rows) }

// LoadAll loads every path in order, stopping at the first failure.
func LoadAll(ctx context.Context, paths []string, client *storage.Client, opts Options) ([]*Table, error) {
	out := make([]*Table, 0, len(paths))
	for _, path := range paths {
		tbl, err := Load(ctx, path, client, opts)
		if err != nil {
			return nil, err
		}
		out = append(out, tbl)
	}

	return out, nil
}

// Names returns the Name of each table.
func Names(tables []*Table) []string {
	out := make([]string, len(tables))
	for i, t := range tables {
		out[i] = t.Name
	}

	return out
}
