// Package report writes the CSV tables produced by the biodistance tools.
package report

import (
	"encoding/csv"
	"math"
	"strconv"
	"strings"

	"github.com/carbocation/pfx"
)

// Placeholder marks a cell whose value is undefined.
const Placeholder = "-"

// FormatFloat renders v in its shortest round-trip form, keeping a trailing
// ".0" on integral values so that every statistic reads as a real number.
// Very large and very small magnitudes use exponent notation. NaN and
// infinities become Placeholder.
func FormatFloat(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Placeholder
	}

	abs := math.Abs(v)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}

func formatFloats(vs []float64) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = FormatFloat(v)
	}

	return out
}

func flush(cw *csv.Writer) error {
	cw.Flush()
	if err := cw.Error(); err != nil {
		return pfx.Err(err)
	}

	return nil
}
