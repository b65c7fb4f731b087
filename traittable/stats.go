package traittable

import (
	"math"

	"github.com/BenLubar/memoize"
)

// thetaNoise is the largest positive theta treated as floating-point noise
// when ZeroThetaNoise is set.
const thetaNoise = 1e-15

var memoizedTheta = memoize.Memoize(theta)

// countThat counts the rows for which keep returns true.
func countThat(rows [][]int, keep func(row []int) bool) int {
	n := 0
	for _, row := range rows {
		if keep(row) {
			n++
		}
	}

	return n
}

// MeasuredCount is the number of rows where the trait was scored 0 or 1.
func (t *Table) MeasuredCount(trait int) int {
	return countThat(t.Rows, func(row []int) bool { return Measured(row[trait]) })
}

// YesCount is the number of rows where the trait is present.
func (t *Table) YesCount(trait int) int {
	return countThat(t.Rows, func(row []int) bool { return row[trait] == Present })
}

// Theta is the angular transformation of the trait's frequency used by the
// mean measure of divergence.
func (t *Table) Theta(trait int) float64 {
	ret := memoizedTheta.(func(int, int) float64)(t.YesCount(trait), t.MeasuredCount(trait))

	if t.zeroThetaNoise && ret > 0 && ret < thetaNoise {
		return 0
	}

	return ret
}

func (t *Table) Thetas() []float64 {
	out := make([]float64, t.NumTraits())
	for i := range out {
		out[i] = t.Theta(i)
	}

	return out
}

// Frequency is the percentage of measured rows in which the trait is present,
// or 0 if it was never measured.
func (t *Table) Frequency(trait int) float64 {
	n := t.MeasuredCount(trait)
	if n == 0 {
		return 0
	}

	return 100 * float64(t.YesCount(trait)) / float64(n)
}

// theta computes 0.5*asin(1-2k/(n+1)) + 0.5*asin(1-2(k+1)/(n+1)) for k
// present out of n measured. Both arguments stay within [-1, 1] whenever
// 0 <= k <= n, so it is defined for k=0 and k=n.
func theta(k, n int) float64 {
	K, N := float64(k), float64(n)

	return 0.5*math.Asin(1-2*K/(N+1)) + 0.5*math.Asin(1-2*(K+1)/(N+1))
}
