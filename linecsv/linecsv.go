// Package linecsv reads delimited records one physical line at a time. Unlike
// encoding/csv, which silently drops empty lines, it reports blank lines to
// the caller so that a blank line can act as an end-of-data marker.
package linecsv

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"io"
	"strings"
)

const maxLineBytes = 16 * 1024 * 1024

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

type Reader struct {
	// Comma, LazyQuotes and TrimLeadingSpace are passed through to the
	// encoding/csv reader that parses each line.
	Comma            rune
	LazyQuotes       bool
	TrimLeadingSpace bool

	scanner *bufio.Scanner
	line    int
}

func NewReader(r io.Reader) *Reader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	return &Reader{
		Comma:   ',',
		scanner: scanner,
	}
}

// Line is the 1-based number of the line most recently returned by Read.
func (r *Reader) Line() int {
	return r.line
}

// Read returns the next record. When blank is true the line was empty,
// whitespace only, or made up entirely of empty cells, and record holds
// whatever cells were parsed. At the end of input Read returns io.EOF.
func (r *Reader) Read() (record []string, blank bool, err error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return nil, false, err
		}
		return nil, false, io.EOF
	}
	r.line++

	b := r.scanner.Bytes()
	if r.line == 1 {
		b = bytes.TrimPrefix(b, utf8BOM)
	}

	text := strings.TrimRight(string(b), "\r")
	if strings.TrimSpace(text) == "" {
		return nil, true, nil
	}

	record, err = r.parse(text)
	if err != nil {
		return nil, false, err
	}

	return record, allEmpty(record), nil
}

func (r *Reader) parse(text string) ([]string, error) {
	csvr := csv.NewReader(strings.NewReader(text))
	csvr.Comma = r.Comma
	csvr.LazyQuotes = r.LazyQuotes
	csvr.TrimLeadingSpace = r.TrimLeadingSpace
	csvr.FieldsPerRecord = -1

	record, err := csvr.Read()
	if err != nil {
		if pe, ok := err.(*csv.ParseError); ok {
			pe.StartLine = r.line
			pe.Line = r.line
		}
		return nil, err
	}

	return record, nil
}

func allEmpty(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}
