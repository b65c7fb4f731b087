package traittable

import (
	"math"
	"strings"
	"testing"
)

type thetaExpectation struct {
	k, n  int
	theta float64
}

func TestTheta(t *testing.T) {
	for _, v := range []thetaExpectation{
		{0, 0, 0},
		{0, 1, math.Pi / 4},
		{1, 1, -math.Pi / 4},
		{2, 4, 0},
		{0, 3, 0.5*math.Asin(1) + 0.5*math.Asin(0.5)},
	} {
		if got := theta(v.k, v.n); math.Abs(got-v.theta) > 1e-12 {
			t.Fatalf("theta(%d, %d) = %.15f, expected %.15f", v.k, v.n, got, v.theta)
		}
	}
}

func TestThetaRowOrderInvariant(t *testing.T) {
	forward := mustParse(t, "ID,1a,2b\nA,1,0\nB,0,2\nC,1,1\nD,2,1\n", Options{})
	reversed := mustParse(t, "ID,1a,2b\nD,2,1\nC,1,1\nB,0,2\nA,1,0\n", Options{})

	f, r := forward.Thetas(), reversed.Thetas()
	for i := range f {
		if f[i] != r[i] {
			t.Fatalf("Trait %d: theta %f vs %f after reordering rows", i, f[i], r[i])
		}
	}
}

func TestZeroThetaNoise(t *testing.T) {
	orig := memoizedTheta
	defer func() { memoizedTheta = orig }()
	memoizedTheta = func(k, n int) float64 { return 1e-16 }

	input := "ID,1a\nA,1\n"

	noisy, err := Parse("x.csv", strings.NewReader(input), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if got := noisy.Theta(0); got != 1e-16 {
		t.Fatalf("Expected the raw theta without noise zeroing, got %g", got)
	}

	zeroed, err := Parse("x.csv", strings.NewReader(input), Options{ZeroThetaNoise: true})
	if err != nil {
		t.Fatal(err)
	}
	if got := zeroed.Theta(0); got != 0 {
		t.Fatalf("Expected noise to be zeroed, got %g", got)
	}
}
