/*
Package twofloat provides double-word ("double-double") extended-precision
floating-point arithmetic in pure Go: a high-precision real value is stored as
the unevaluated sum of two native floating-point numbers, and the arithmetic
and elementary-function kernels operating on it carry provably bounded
relative error at roughly twice the precision of the native type.

The root package holds only the double-word value type. The error-free
transformations (exact sum, exact product, mantissa split, fused multiply-add)
live in the algorithms package, and the arithmetic kernel together with the
transcendental layer (square root, range-reduced sine) lives in the doubleword
package.
*/
package twofloat

import (
	"golang.org/x/exp/constraints"
)

// Two is a double-word floating point number: the unevaluated sum Hi + Lo.
//
// Values produced by the doubleword package are normalized: Hi is the
// correctly-rounded native approximation of the represented value and
// |Lo| <= ulp(Hi)/2. Raw construction with New does not enforce this.
// A pair of quiet NaNs denotes an undefined result (domain error).
type Two[T constraints.Float] struct {
	Hi, Lo T
}

// New returns the double-word number hi + lo. The components are stored
// as given; no normalization is performed.
func New[T constraints.Float](hi, lo T) Two[T] {
	return Two[T]{Hi: hi, Lo: lo}
}

// FromFloat returns the double-word number x + 0.
func FromFloat[T constraints.Float](x T) Two[T] {
	return Two[T]{Hi: x}
}

// Eval collapses x to a single native value. The result is only a native
// approximation; it is intended for threshold comparisons and short-circuit
// tests, not as a numerical result.
func (x Two[T]) Eval() T {
	return x.Hi + x.Lo
}

// Neg returns -x. Negation of both components is exact.
func (x Two[T]) Neg() Two[T] {
	return Two[T]{Hi: -x.Hi, Lo: -x.Lo}
}

// IsNaN reports whether x is a NaN pair, the encoding used for domain
// errors such as the square root of a negative number.
func (x Two[T]) IsNaN() bool {
	return x.Hi != x.Hi
}

// IsZero reports whether x evaluates to zero.
func (x Two[T]) IsZero() bool {
	return x.Eval() == 0
}
