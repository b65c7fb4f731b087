package report

import (
	"encoding/csv"
	"io"

	"github.com/carbocation/biodistance/mmd"
	"github.com/carbocation/biodistance/traittable"
	"github.com/carbocation/pfx"
	"gonum.org/v1/gonum/mat"
)

// WriteMMD writes the stacked MMD report: thetas per table, the MMD matrix,
// the sd MMD matrix, the combined MMD/standardized MMD matrix and the trait
// frequency table, separated by blank lines.
func WriteMMD(w io.Writer, names []string, tables []*traittable.Table, ms *mmd.Matrices) error {
	cw := csv.NewWriter(w)

	rows := [][]string{append([]string{"Thetas"}, tables[0].TraitNames...)}
	for i, tbl := range tables {
		rows = append(rows, append([]string{names[i]}, formatFloats(tbl.Thetas())...))
	}

	rows = append(rows, []string{})
	rows = append(rows, squareTable("MMDs", names, ms.MMD)...)

	rows = append(rows, []string{})
	rows = append(rows, squareTable("sd MMDs", names, ms.SD)...)

	rows = append(rows, []string{}, append([]string{"MMD/Standardized MMD"}, names...))
	for i := range names {
		row := []string{names[i]}
		for j := range names {
			v, ok := ms.Combined(i, j)
			if !ok {
				row = append(row, Placeholder)
				continue
			}
			row = append(row, FormatFloat(v))
		}
		rows = append(rows, row)
	}

	rows = append(rows, []string{}, []string{"Trait frequencies"}, append([]string{"Trait"}, names...))
	for t, freqs := range mmd.Frequencies(tables) {
		row := []string{tables[0].TraitNames[t]}
		for _, f := range freqs {
			row = append(row, f.String())
		}
		rows = append(rows, row)
	}

	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return pfx.Err(err)
		}
	}

	return flush(cw)
}

func squareTable(title string, names []string, m *mat.SymDense) [][]string {
	rows := [][]string{append([]string{title}, names...)}
	for i := range names {
		row := []string{names[i]}
		for j := range names {
			row = append(row, FormatFloat(m.At(i, j)))
		}
		rows = append(rows, row)
	}

	return rows
}
