// Package algorithms implements the error-free floating-point
// transformations underlying double-word arithmetic: exact two-sums and
// two-products, the Veltkamp mantissa split and a correctly-rounded fused
// multiply-add. Each transform returns a twofloat.Two holding the rounded
// result in Hi and the exact rounding error in Lo, so that Hi + Lo equals
// the mathematical result exactly.
package algorithms

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/L30nardoSV/twofloat"
)

// TwoSum returns (s, e) with s = round(a+b) and a + b = s + e exactly.
// Valid for any finite a and b (Knuth's branch-free algorithm).
func TwoSum[T constraints.Float](a, b T) twofloat.Two[T] {
	s := a + b
	bb := s - a
	e := (a - (s - bb)) + (b - bb)
	return twofloat.Two[T]{Hi: s, Lo: e}
}

// TwoDiff returns (s, e) with s = round(a-b) and a - b = s + e exactly.
func TwoDiff[T constraints.Float](a, b T) twofloat.Two[T] {
	s := a - b
	bb := s - a
	e := (a - (s - bb)) - (b + bb)
	return twofloat.Two[T]{Hi: s, Lo: e}
}

// FastTwoSum returns (s, e) with s = round(a+b) and a + b = s + e exactly.
// Requires |a| >= |b| or a == 0; the error term is silently wrong
// otherwise. Three operations instead of TwoSum's six.
func FastTwoSum[T constraints.Float](a, b T) twofloat.Two[T] {
	s := a + b
	e := b - (s - a)
	return twofloat.Two[T]{Hi: s, Lo: e}
}

// Split decomposes x into hi + lo where both halves carry at most half of
// the mantissa bits, so products of halves are exact (Veltkamp splitting).
// Overflows for |x| within a factor 2^27 (2^12 for float32) of the largest
// finite value; the arithmetic kernel never calls it in that range.
func Split[T constraints.Float](x T) twofloat.Two[T] {
	t := splitter[T]() * x
	hi := t - (t - x)
	lo := x - hi
	return twofloat.Two[T]{Hi: hi, Lo: lo}
}

// TwoProd returns (p, e) with p = round(a*b) and a*b = p + e exactly,
// using Dekker's split-based algorithm. Works on any hardware; prefer
// TwoProdFMA where a fused multiply-add is acceptable.
func TwoProd[T constraints.Float](a, b T) twofloat.Two[T] {
	p := a * b
	aa := Split(a)
	bb := Split(b)
	e := ((aa.Hi*bb.Hi - p) + aa.Hi*bb.Lo + aa.Lo*bb.Hi) + aa.Lo*bb.Lo
	return twofloat.Two[T]{Hi: p, Lo: e}
}

// TwoProdFMA returns (p, e) with p = round(a*b) and a*b = p + e exactly,
// computing the error term with a single fused multiply-add. Bit-identical
// to TwoProd on inputs where neither overflows internally.
func TwoProdFMA[T constraints.Float](a, b T) twofloat.Two[T] {
	p := a * b
	e := FMA(a, b, -p)
	return twofloat.Two[T]{Hi: p, Lo: e}
}

// TwoSqr returns (p, e) with p = round(x*x) and x*x = p + e exactly.
// The split-based error term needs one multiplication fewer than
// TwoProd(x, x) but yields the same pair.
func TwoSqr[T constraints.Float](x T) twofloat.Two[T] {
	p := x * x
	s := Split(x)
	e := ((s.Hi*s.Hi - p) + 2*s.Hi*s.Lo) + s.Lo*s.Lo
	return twofloat.Two[T]{Hi: p, Lo: e}
}

// FMA returns round(a*b + c) with a single rounding.
//
// The computation runs in float64: for 64-bit operands this is math.FMA
// itself, and for 32-bit operands the product is exact in float64 and the
// 53-bit intermediate is wide enough (53 >= 2*24 + 2) that the final
// conversion cannot double-round.
func FMA[T constraints.Float](a, b, c T) T {
	return T(math.FMA(float64(a), float64(b), float64(c)))
}
