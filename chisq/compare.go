package chisq

import (
	"fmt"

	"github.com/carbocation/biodistance/traittable"
	"github.com/carbocation/pfx"
)

// PairResult holds the per-trait tests between tables I and J (I < J).
type PairResult struct {
	I, J    int
	Results []Result
}

type Comparison struct {
	Pairs []PairResult

	// SignificantCounts[t] is the number of pairs in which trait t was
	// significant.
	SignificantCounts []int
}

// ContingencyFor builds the 2x2 table for trait t between two populations.
func ContingencyFor(x, y *traittable.Table, trait int) Contingency {
	a := float64(x.YesCount(trait))
	c := float64(y.YesCount(trait))

	return Contingency{
		A: a,
		B: float64(x.MeasuredCount(trait)) - a,
		C: c,
		D: float64(y.MeasuredCount(trait)) - c,
	}
}

// Compare tests every trait for every unordered pair of tables, in the order
// (0,1), (0,2), ..., (1,2), ...
func Compare(tables []*traittable.Table) (*Comparison, error) {
	if len(tables) < 2 {
		return nil, pfx.Err(fmt.Errorf("at least 2 tables are needed, got %d", len(tables)))
	}

	if err := traittable.CheckTraitCounts(tables...); err != nil {
		return nil, err
	}

	ntraits := tables[0].NumTraits()
	out := &Comparison{
		SignificantCounts: make([]int, ntraits),
	}

	for i := range tables {
		for j := i + 1; j < len(tables); j++ {
			pr := PairResult{I: i, J: j, Results: make([]Result, ntraits)}

			for t := 0; t < ntraits; t++ {
				res := Test(ContingencyFor(tables[i], tables[j], t))
				if res.Significant {
					out.SignificantCounts[t]++
				}
				pr.Results[t] = res
			}

			out.Pairs = append(out.Pairs, pr)
		}
	}

	return out, nil
}
