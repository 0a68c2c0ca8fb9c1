// Package geom provides the exact-arithmetic scalar stack and the Point2
// type that the vertical-decomposition core is built on. Coordinates are
// fixed-point integers; products of coordinates (as used by orientation
// tests and edge-at-x comparisons) are carried in arbitrary-precision form
// so that no comparison in vdecomp ever rounds.
//
// The layering follows dida/math: a degree-1 scalar is a raw coordinate, a
// degree-2 scalar is what you get by multiplying two degree-1 values or
// summing several such products (e.g. a cross product), and Fraction is the
// rational form needed to compare the y-coordinate of an edge at a given x
// without ever dividing.
package geom

import "math/big"

// Scalar1 is a degree-1 exact scalar: a single fixed-point coordinate value.
// It is the unit dida's Point2 components are expressed in.
type Scalar1 int64

// Add returns a+b. Two degree-1 scalars always sum to a degree-1 scalar.
func (a Scalar1) Add(b Scalar1) Scalar1 { return a + b }

// Sub returns a-b.
func (a Scalar1) Sub(b Scalar1) Scalar1 { return a - b }

// Neg returns -a.
func (a Scalar1) Neg() Scalar1 { return -a }

// Cmp returns -1, 0 or 1 as a is less than, equal to, or greater than b.
func (a Scalar1) Cmp(b Scalar1) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Mul returns the exact degree-2 product of a and b.
func (a Scalar1) Mul(b Scalar1) Scalar2 {
	return Scalar2{new(big.Int).Mul(big.NewInt(int64(a)), big.NewInt(int64(b)))}
}

// Scalar2 is a degree-2 exact scalar: the result of a product of two
// degree-1 scalars, or a sum of such products (as in a cross product or a
// 2x2 determinant). Backed by math/big so that orientation tests on
// arbitrarily large fixed-point coordinates never overflow and never round.
type Scalar2 struct {
	v *big.Int
}

// NewScalar2FromInt64 lifts a plain int64 into degree-2 (useful for zero
// values and small constants).
func NewScalar2FromInt64(v int64) Scalar2 {
	return Scalar2{big.NewInt(v)}
}

func (a Scalar2) big() *big.Int {
	if a.v == nil {
		return new(big.Int)
	}
	return a.v
}

// Add returns a+b.
func (a Scalar2) Add(b Scalar2) Scalar2 {
	return Scalar2{new(big.Int).Add(a.big(), b.big())}
}

// Sub returns a-b.
func (a Scalar2) Sub(b Scalar2) Scalar2 {
	return Scalar2{new(big.Int).Sub(a.big(), b.big())}
}

// Neg returns -a.
func (a Scalar2) Neg() Scalar2 {
	return Scalar2{new(big.Int).Neg(a.big())}
}

// Sign returns -1, 0 or 1 as a is negative, zero, or positive.
func (a Scalar2) Sign() int { return a.big().Sign() }

// Cmp returns -1, 0 or 1 as a is less than, equal to, or greater than b.
func (a Scalar2) Cmp(b Scalar2) int { return a.big().Cmp(b.big()) }

// IsZero reports whether a is exactly zero.
func (a Scalar2) IsZero() bool { return a.big().Sign() == 0 }

// String renders the underlying integer, mostly for test failure output.
func (a Scalar2) String() string { return a.big().String() }
