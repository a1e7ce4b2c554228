package libturan

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/raphaelyuster/turan-inducibility/turan"
)

func TestGCD(t *testing.T) {
	cases := [][3]int64{
		{12, 18, 6},
		{18, 12, 6},
		{7, 0, 7},
		{0, 7, 7},
		{1, 1, 1},
		{17, 5, 1},
		{72 * 1000, 125 * 1000, 1000},
	}
	for _, c := range cases {
		g := GCD(big.NewInt(c[0]), big.NewInt(c[1]))
		if g.Int64() != c[2] {
			t.Fatalf("gcd(%d,%d): expected %d, got %v", c[0], c[1], c[2], g)
		}
	}

	a, b := big.NewInt(84), big.NewInt(36)
	GCD(a, b)
	if a.Int64() != 84 || b.Int64() != 36 {
		t.Fatal("GCD modified its inputs")
	}
}

func TestReduceProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500

	properties := gopter.NewProperties(parameters)

	properties.Property("reduced pair is coprime and equal as a rational", prop.ForAll(
		func(num, den, scale int64) bool {
			n := new(big.Int).Mul(big.NewInt(num), big.NewInt(scale))
			d := new(big.Int).Mul(big.NewInt(den), big.NewInt(scale))
			rn, rd := Reduce(n, d)

			if GCD(rn, rd).Cmp(bigOne) != 0 {
				return false
			}
			if rd.Sign() <= 0 || rn.Sign() < 0 {
				return false
			}
			return new(big.Rat).SetFrac(rn, rd).Cmp(new(big.Rat).SetFrac(n, d)) == 0
		},
		gen.Int64Range(0, 1<<40),
		gen.Int64Range(1, 1<<40),
		gen.Int64Range(1, 1<<20),
	))

	properties.Property("GCD matches math/big", prop.ForAll(
		func(a, b int64) bool {
			x, y := big.NewInt(a), big.NewInt(b)
			return GCD(x, y).Cmp(new(big.Int).GCD(nil, nil, x, y)) == 0
		},
		gen.Int64Range(1, 1<<50),
		gen.Int64Range(1, 1<<50),
	))

	properties.Property("Compute is pure and reduced", prop.ForAll(
		func(s, r int) bool {
			if r >= s {
				r = s - 1
			}
			X := ComputeWith(turan.T(s, r), turan.DefaultComputeOpts)
			Y := ComputeWith(turan.T(s, r), turan.DefaultComputeOpts)
			if !X.IsEqual(&Y) {
				return false
			}
			if !X.IsKnown() {
				return true
			}
			return X.Den.Sign() > 0 && X.Num.Sign() >= 0 && GCD(X.Num, X.Den).Cmp(bigOne) == 0
		},
		gen.IntRange(3, 40),
		gen.IntRange(2, 39),
	))

	properties.TestingRun(t)
}
