// Package gower computes Gower similarity coefficients between the
// individuals of a trait table.
package gower

import (
	"math"

	"github.com/carbocation/biodistance/traittable"
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/mat"
)

// Similarity is the fraction of trait positions, among those scored in both
// x and y, at which x and y agree. Positions where either value is
// traittable.Unscored are ignored. If no position is usable the result is NaN.
func Similarity(x, y []int) float64 {
	valid, same := 0, 0

	for i := range x {
		if x[i] == traittable.Unscored || y[i] == traittable.Unscored {
			continue
		}

		valid++
		if x[i] == y[i] {
			same++
		}
	}

	if valid == 0 {
		return math.NaN()
	}

	return float64(same) / float64(valid)
}

// Matrix computes the similarity of every pair of rows, including each row
// with itself. It returns nil for a table without rows.
func Matrix(t *traittable.Table) *mat.SymDense {
	n := t.NumRows()
	if n == 0 {
		return nil
	}

	out := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			out.SetSym(i, j, Similarity(t.Rows[i], t.Rows[j]))
		}
	}

	return out
}

// RowMeans averages the defined similarities of each row of m. Rows with no
// defined similarity get NaN.
func RowMeans(m *mat.SymDense) []float64 {
	if m == nil {
		return nil
	}

	n := m.Symmetric()
	out := make([]float64, n)

	for i := 0; i < n; i++ {
		row := make(stats.Float64Data, 0, n)
		for j := 0; j < n; j++ {
			if v := m.At(i, j); !math.IsNaN(v) {
				row = append(row, v)
			}
		}

		mean, err := stats.Mean(row)
		if err != nil {
			mean = math.NaN()
		}
		out[i] = mean
	}

	return out
}
