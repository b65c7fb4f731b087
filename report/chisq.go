package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/carbocation/biodistance/chisq"
	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"
)

// PairName labels the comparison of two tables.
func PairName(names []string, i, j int) string {
	return names[i] + "/" + names[j]
}

// WriteChiSquare writes one row per pair of tables with a chi-square and phi
// column per trait, followed by a "Significant" row counting, per trait, the
// pairs whose chi-square exceeded the critical value. Undefined tests are left
// empty.
func WriteChiSquare(w io.Writer, names, traitNames []string, cmp *chisq.Comparison) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, 1+2*len(traitNames))
	header = append(header, "")
	for _, trait := range traitNames {
		header = append(header, trait, "")
	}
	if err := cw.Write(header); err != nil {
		return pfx.Err(err)
	}

	for _, pair := range cmp.Pairs {
		row := make([]string, 0, len(header))
		row = append(row, PairName(names, pair.I, pair.J))

		for _, res := range pair.Results {
			if !res.Defined {
				row = append(row, "", "")
				continue
			}
			row = append(row, FormatFloat(res.ChiSquare), FormatFloat(res.Phi))
		}

		if err := cw.Write(row); err != nil {
			return pfx.Err(err)
		}
	}

	significant := make([]string, 0, len(header))
	significant = append(significant, "Significant")
	for _, count := range cmp.SignificantCounts {
		significant = append(significant, strconv.Itoa(count), "")
	}
	if err := cw.Write(significant); err != nil {
		return pfx.Err(err)
	}

	return flush(cw)
}

// ChiSquareRecord is one pair and trait of a chi-square comparison in long
// format.
type ChiSquareRecord struct {
	Pair        string `csv:"pair"`
	Trait       string `csv:"trait"`
	A           int    `csv:"a"`
	B           int    `csv:"b"`
	C           int    `csv:"c"`
	D           int    `csv:"d"`
	ChiSquare   string `csv:"chi_square"`
	Phi         string `csv:"phi"`
	P           string `csv:"p"`
	Significant bool   `csv:"significant"`
}

// ChiSquareRecords flattens a comparison into one record per pair and trait.
func ChiSquareRecords(names, traitNames []string, cmp *chisq.Comparison) []*ChiSquareRecord {
	out := make([]*ChiSquareRecord, 0, len(cmp.Pairs)*len(traitNames))

	for _, pair := range cmp.Pairs {
		for t, res := range pair.Results {
			rec := &ChiSquareRecord{
				Pair:        PairName(names, pair.I, pair.J),
				Trait:       traitNames[t],
				A:           int(res.A),
				B:           int(res.B),
				C:           int(res.C),
				D:           int(res.D),
				Significant: res.Significant,
			}
			if res.Defined {
				rec.ChiSquare = FormatFloat(res.ChiSquare)
				rec.Phi = FormatFloat(res.Phi)
				rec.P = FormatFloat(res.P)
			}
			out = append(out, rec)
		}
	}

	return out
}

// WriteChiSquareLong writes the comparison with one row per pair and trait,
// including the contingency counts and a p-value.
func WriteChiSquareLong(w io.Writer, names, traitNames []string, cmp *chisq.Comparison) error {
	if err := gocsv.Marshal(ChiSquareRecords(names, traitNames, cmp), w); err != nil {
		return pfx.Err(err)
	}

	return nil
}
