package mmd

import (
	"fmt"

	"github.com/carbocation/biodistance/traittable"
	"github.com/carbocation/pfx"
	"gonum.org/v1/gonum/mat"
)

// Matrices holds every pairwise statistic for a set of tables.
type Matrices struct {
	MMD *mat.SymDense
	SD  *mat.SymDense
}

// Compute fills the MMD and SD matrices for every pair of tables.
func Compute(tables []*traittable.Table) (*Matrices, error) {
	if len(tables) == 0 {
		return nil, pfx.Err(fmt.Errorf("no tables to compare"))
	}

	if err := traittable.CheckTraitCounts(tables...); err != nil {
		return nil, err
	}

	n := len(tables)
	out := &Matrices{
		MMD: mat.NewSymDense(n, nil),
		SD:  mat.NewSymDense(n, nil),
	}

	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			m, err := MMD(tables[i], tables[j])
			if err != nil {
				return nil, err
			}

			sd, err := SD(tables[i], tables[j])
			if err != nil {
				return nil, err
			}

			out.MMD.SetSym(i, j, m)
			out.SD.SetSym(i, j, sd)
		}
	}

	return out, nil
}

// Standardized is MMD(i,j)/SD(i,j).
func (m *Matrices) Standardized(i, j int) float64 {
	return m.MMD.At(i, j) / m.SD.At(i, j)
}

// Combined lays out the matrix reported as "MMD/Standardized MMD": the
// standardized MMD below the diagonal, raw MMD above it. ok is false on the
// diagonal, which has no value.
func (m *Matrices) Combined(i, j int) (v float64, ok bool) {
	switch {
	case j < i:
		return m.Standardized(i, j), true
	case j == i:
		return 0, false
	default:
		return m.MMD.At(i, j), true
	}
}

// Frequency is the trait frequency summary of one table for one trait.
type Frequency struct {
	Yes, Measured int
	Percent       float64
}

func (f Frequency) String() string {
	return fmt.Sprintf("%d/%d=%.1f", f.Yes, f.Measured, f.Percent)
}

// Frequencies returns, for each trait, the frequency summary in each table.
// The tables must have equal trait counts.
func Frequencies(tables []*traittable.Table) [][]Frequency {
	if len(tables) == 0 {
		return nil
	}

	out := make([][]Frequency, tables[0].NumTraits())
	for t := range out {
		out[t] = make([]Frequency, len(tables))
		for i, tbl := range tables {
			out[t][i] = Frequency{
				Yes:      tbl.YesCount(t),
				Measured: tbl.MeasuredCount(t),
				Percent:  tbl.Frequency(t),
			}
		}
	}

	return out
}
