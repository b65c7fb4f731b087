package biodistance

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/csimplestring/go-csv/detector"
)

// DelimiterAuto asks ParseDelimiter to sniff the delimiter from the data.
const DelimiterAuto = "auto"

// DetermineDelimiter returns the single most likely rune that would delimit the
// values in the reader, assuming a CSV-like file.
func DetermineDelimiter(r io.Reader) rune {
	d := detector.New()
	delimiters := d.DetectDelimiter(r, '"')

	if len(delimiters) > 0 && len(delimiters[0]) > 0 {
		return rune(delimiters[0][0])
	}

	return ','
}

// ParseDelimiter interprets a -delimiter flag value. "auto" detects the
// delimiter from data, "\t" and "tab" mean a tab, and anything else must be a
// single character.
func ParseDelimiter(value string, data []byte) (rune, error) {
	switch value {
	case "":
		return ',', nil
	case DelimiterAuto:
		return DetermineDelimiter(bytes.NewReader(data)), nil
	case `\t`, "tab":
		return '\t', nil
	}

	if utf8.RuneCountInString(value) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character or %q, got %q", DelimiterAuto, value)
	}

	r, _ := utf8.DecodeRuneInString(value)
	if r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError {
		return 0, fmt.Errorf("%q cannot be used as a delimiter", value)
	}

	return r, nil
}
