package report

import (
	"encoding/csv"
	"io"

	"github.com/carbocation/biodistance/traittable"
	"github.com/carbocation/pfx"
	"gonum.org/v1/gonum/mat"
)

// WriteGower writes the similarity matrix m of t, labelled by row label in
// both directions. Undefined similarities are written as Placeholder. When
// means is non-nil a trailing "Mean" column holds each row's mean.
func WriteGower(w io.Writer, t *traittable.Table, m *mat.SymDense, means []float64) error {
	cw := csv.NewWriter(w)

	header := append([]string{""}, t.Labels...)
	if means != nil {
		header = append(header, "Mean")
	}
	if err := cw.Write(header); err != nil {
		return pfx.Err(err)
	}

	for i, label := range t.Labels {
		row := make([]string, 0, len(header))
		row = append(row, label)
		for j := range t.Labels {
			row = append(row, FormatFloat(m.At(i, j)))
		}
		if means != nil {
			row = append(row, FormatFloat(means[i]))
		}

		if err := cw.Write(row); err != nil {
			return pfx.Err(err)
		}
	}

	return flush(cw)
}
