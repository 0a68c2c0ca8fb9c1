package geom

import "math/big"

// Fraction is the rational value obtained by evaluating the y-coordinate of
// an edge at a fixed x: a degree-2 numerator over a degree-1 denominator.
// Comparisons between two Fractions are done by cross-multiplication so that
// no division, and therefore no rounding, ever occurs.
//
// The denominator's sign carries meaning (it is the signed run of the edge
// along x), so every operation normalizes to a positive denominator on
// construction.
type Fraction struct {
	num Scalar2
	den Scalar1 // always > 0 for a finite Fraction
	inf int     // 0 for finite, -1 for -infinity, +1 for +infinity
}

// NewFraction builds num/den, normalizing the sign of the denominator. den
// must be non-zero.
func NewFraction(num Scalar2, den Scalar1) Fraction {
	if den < 0 {
		return Fraction{num: num.Neg(), den: -den}
	}
	return Fraction{num: num, den: den}
}

// PositiveInfinity is the sentinel used for a vertical extension's opposite
// edge when the extension runs off to infinity (exterior decomposition
// only): it compares greater than every finite Fraction.
func PositiveInfinity() Fraction { return Fraction{inf: 1} }

// NegativeInfinity is the symmetric sentinel, comparing less than every
// finite Fraction.
func NegativeInfinity() Fraction { return Fraction{inf: -1} }

// IsInfinite reports whether f is one of the ±∞ sentinels.
func (f Fraction) IsInfinite() bool { return f.inf != 0 }

// Cmp returns -1, 0 or 1 as f is less than, equal to, or greater than g.
func (f Fraction) Cmp(g Fraction) int {
	if f.inf != 0 || g.inf != 0 {
		switch {
		case f.inf < g.inf:
			return -1
		case f.inf > g.inf:
			return 1
		default:
			return 0
		}
	}
	left := mulScalar2ByScalar1(f.num, g.den)
	right := mulScalar2ByScalar1(g.num, f.den)
	return left.Cmp(right)
}

func mulScalar2ByScalar1(a Scalar2, b Scalar1) Scalar2 {
	return Scalar2{new(big.Int).Mul(a.big(), big.NewInt(int64(b)))}
}
