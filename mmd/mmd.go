// Package mmd computes Smith's Mean Measure of Divergence between trait
// tables, together with its variance and standard deviation.
package mmd

import (
	"math"

	"github.com/carbocation/biodistance/traittable"
	"gonum.org/v1/gonum/floats"
)

// correction is 1/(n1+0.5) + 1/(n2+0.5), the small-sample bias term for one
// trait measured n1 and n2 times.
func correction(a, b *traittable.Table, trait int) float64 {
	return 1/(float64(a.MeasuredCount(trait))+0.5) + 1/(float64(b.MeasuredCount(trait))+0.5)
}

// MMD is the mean over traits of (thetaA - thetaB)^2 minus the bias
// correction. A table compared with itself is 0 by definition.
func MMD(a, b *traittable.Table) (float64, error) {
	if err := traittable.CheckTraitCounts(a, b); err != nil {
		return 0, err
	}
	if a == b {
		return 0, nil
	}

	terms := make([]float64, a.NumTraits())
	for t := range terms {
		terms[t] = math.Pow(a.Theta(t)-b.Theta(t), 2) - correction(a, b, t)
	}

	return floats.Sum(terms) / float64(len(terms)), nil
}

// Variance is 2/T^2 times the sum over the T traits of the squared bias
// correction. A table compared with itself is 0 by definition.
func Variance(a, b *traittable.Table) (float64, error) {
	if err := traittable.CheckTraitCounts(a, b); err != nil {
		return 0, err
	}
	if a == b {
		return 0, nil
	}

	terms := make([]float64, a.NumTraits())
	for t := range terms {
		terms[t] = math.Pow(correction(a, b, t), 2)
	}

	ntraits := float64(len(terms))

	return 2 / (ntraits * ntraits) * floats.Sum(terms), nil
}

// SD is the square root of Variance.
func SD(a, b *traittable.Table) (float64, error) {
	v, err := Variance(a, b)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(v), nil
}

// Standardized is MMD divided by SD. For a table compared with itself this
// is NaN (0/0); reports show a placeholder there instead.
func Standardized(a, b *traittable.Table) (float64, error) {
	m, err := MMD(a, b)
	if err != nil {
		return 0, err
	}

	sd, err := SD(a, b)
	if err != nil {
		return 0, err
	}

	return m / sd, nil
}
