// Package chisq implements the 2x2 chi-square test of association and the
// phi coefficient, applied trait by trait to pairs of trait tables.
package chisq

import (
	"math"

	"github.com/tokenme/probab/dst"
)

// CriticalValue is the chi-square value for p = 0.05 at 1 degree of freedom.
// Pairs above it count as significant.
const CriticalValue = 3.84146

// Contingency is a 2x2 table. A and B are the present and absent counts in the
// first population, C and D in the second.
type Contingency struct {
	A, B, C, D float64
}

func (c Contingency) N() float64 {
	return c.A + c.B + c.C + c.D
}

// Defined reports whether every marginal sum is positive. Otherwise the
// statistic would divide by zero.
func (c Contingency) Defined() bool {
	return c.A+c.B > 0 && c.C+c.D > 0 && c.A+c.C > 0 && c.B+c.D > 0
}

type Result struct {
	Contingency

	// Defined is false when a marginal is empty, in which case the remaining
	// fields are zero and should be reported as missing.
	Defined bool

	ChiSquare float64
	Phi       float64

	// P is the upper tail probability of ChiSquare at 1 degree of freedom.
	P float64

	Significant bool
}

// Test computes chi-square and phi for c.
func Test(c Contingency) Result {
	res := Result{Contingency: c}

	if !c.Defined() {
		return res
	}

	res.Defined = true
	res.ChiSquare = ChiSquare(c)
	res.Phi = math.Sqrt(res.ChiSquare / c.N())
	res.P = PValue(res.ChiSquare)
	res.Significant = res.ChiSquare > CriticalValue

	return res
}

// ChiSquare returns (ad-bc)^2 n / ((a+b)(c+d)(a+c)(b+d)). The caller must
// check Defined first.
func ChiSquare(c Contingency) float64 {
	return math.Pow(c.A*c.D-c.B*c.C, 2) * c.N() /
		((c.A + c.B) * (c.C + c.D) * (c.A + c.C) * (c.B + c.D))
}

// PValue returns the upper tail probability of a chi-square statistic with 1
// degree of freedom. It is NaN if the distribution cannot be evaluated.
func PValue(chiSquare float64) (p float64) {
	p = math.NaN()
	defer func() { recover() }()

	p = 1.0 - dst.ChiSquareCDF(1)(chiSquare)

	return
}
