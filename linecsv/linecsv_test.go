package linecsv

import (
	"io"
	"strings"
	"testing"
)

type readResult struct {
	record []string
	blank  bool
}

func readAll(t *testing.T, r *Reader) []readResult {
	t.Helper()

	var out []readResult
	for {
		record, blank, err := r.Read()
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatal(err)
		}
		out = append(out, readResult{record, blank})
	}
}

func TestReadReportsBlankLines(t *testing.T) {
	input := "\xef\xbb\xbfID,1A\r\nx,1\r\n\r\n,,\n  \ny,\"0\"\n"
	got := readAll(t, NewReader(strings.NewReader(input)))

	if len(got) != 6 {
		t.Fatalf("Expected 6 lines, got %d: %v", len(got), got)
	}

	if got[0].blank || got[0].record[0] != "ID" || got[0].record[1] != "1A" {
		t.Fatalf("Header not parsed cleanly: %+v", got[0])
	}

	for i, wantBlank := range []bool{false, false, true, true, true, false} {
		if got[i].blank != wantBlank {
			t.Fatalf("Line %d: blank=%v, expected %v", i+1, got[i].blank, wantBlank)
		}
	}

	if last := got[5].record; len(last) != 2 || last[1] != "0" {
		t.Fatalf("Quoted cell not unquoted: %v", last)
	}
}

func TestReadDelimiter(t *testing.T) {
	r := NewReader(strings.NewReader("a;b;c\n"))
	r.Comma = ';'

	record, blank, err := r.Read()
	if err != nil {
		t.Fatal(err)
	}
	if blank || len(record) != 3 || record[2] != "c" {
		t.Fatalf("Unexpected record %v", record)
	}
	if r.Line() != 1 {
		t.Fatalf("Expected line 1, got %d", r.Line())
	}
}

func TestReadParseErrorLine(t *testing.T) {
	r := NewReader(strings.NewReader("a,b\n\"unterminated,c\n"))
	if _, _, err := r.Read(); err != nil {
		t.Fatal(err)
	}
	if _, _, err := r.Read(); err == nil {
		t.Fatal("Expected a parse error for an unterminated quote")
	}
}
