// Package doubleword implements the double-word arithmetic of Joldes,
// Muller and Popescu, "Tight and rigorous error bounds for basic building
// blocks of double-word arithmetic" (2017), together with a transcendental
// layer (square root, table-assisted range-reduced sine) derived from the
// QD library of Hida, Li and Bailey.
//
// Every operation is a pure function over twofloat.Two values and is safe
// for concurrent use. The precision mode and the use of a fused
// multiply-add are selected statically by the function name: for example
// MulFast, MulFastFMA and MulAccurateFMA are the three supported
// double-word by double-word products. Combinations with no function, such
// as an accurate double-word product without FMA, are not supported by the
// underlying algorithms and therefore cannot be expressed.
//
// Division by zero and NaN or infinite operands follow IEEE-754
// propagation; no operation panics on numeric input.
package doubleword

import (
	"golang.org/x/exp/constraints"

	"github.com/L30nardoSV/twofloat"
	"github.com/L30nardoSV/twofloat/algorithms"
)

// AddFP returns x + y. Algorithm DWPlusFP; the relative error is below
// 2u^2 regardless of operand signs.
func AddFP[T constraints.Float](x twofloat.Two[T], y T) twofloat.Two[T] {
	s := algorithms.TwoSum(x.Hi, y)
	v := x.Lo + s.Lo
	return algorithms.FastTwoSum(s.Hi, v)
}

// SubFP returns x - y, derived from DWPlusFP.
func SubFP[T constraints.Float](x twofloat.Two[T], y T) twofloat.Two[T] {
	s := algorithms.TwoDiff(x.Hi, y)
	v := x.Lo + s.Lo
	return algorithms.FastTwoSum(s.Hi, v)
}

// SubFromFP returns x - y, derived from DWPlusFP.
func SubFromFP[T constraints.Float](x T, y twofloat.Two[T]) twofloat.Two[T] {
	s := algorithms.TwoDiff(x, y.Hi)
	v := s.Lo - y.Lo
	return algorithms.FastTwoSum(s.Hi, v)
}

// AddSloppy returns x + y using SloppyDWPlusDW: the low words are combined
// without error compensation. The relative error is only bounded when x.Hi
// and y.Hi have the same sign; callers accepting opposite signs must use
// AddAccurate.
func AddSloppy[T constraints.Float](x, y twofloat.Two[T]) twofloat.Two[T] {
	s := algorithms.TwoSum(x.Hi, y.Hi)
	v := x.Lo + y.Lo
	w := s.Lo + v
	return algorithms.FastTwoSum(s.Hi, w)
}

// AddAccurate returns x + y using AccurateDWPlusDW: both word pairs are
// combined with error-free transforms and two chained renormalizations.
// The relative error is below 3u^2 + 13u^3 unconditionally, at roughly
// twice the cost of AddSloppy.
func AddAccurate[T constraints.Float](x, y twofloat.Two[T]) twofloat.Two[T] {
	s := algorithms.TwoSum(x.Hi, y.Hi)
	t := algorithms.TwoSum(x.Lo, y.Lo)
	c := s.Lo + t.Hi
	v := algorithms.FastTwoSum(s.Hi, c)
	w := t.Lo + v.Lo
	return algorithms.FastTwoSum(v.Hi, w)
}

// SubSloppy returns x - y; see AddSloppy for the sign restriction, which
// here applies to x.Hi and -y.Hi.
func SubSloppy[T constraints.Float](x, y twofloat.Two[T]) twofloat.Two[T] {
	s := algorithms.TwoDiff(x.Hi, y.Hi)
	v := x.Lo - y.Lo
	w := s.Lo + v
	return algorithms.FastTwoSum(s.Hi, w)
}

// SubAccurate returns x - y with the unconditional AccurateDWPlusDW bound.
func SubAccurate[T constraints.Float](x, y twofloat.Two[T]) twofloat.Two[T] {
	s := algorithms.TwoDiff(x.Hi, y.Hi)
	t := algorithms.TwoDiff(x.Lo, y.Lo)
	c := s.Lo + t.Hi
	v := algorithms.FastTwoSum(s.Hi, c)
	w := t.Lo + v.Lo
	return algorithms.FastTwoSum(v.Hi, w)
}

// MulFPFMA returns x * y using DWTimesFP3. With a fused multiply-add the
// fast and accurate variants collapse into one algorithm that matches the
// accurate bound at the fast cost; this is the preferred double-word by
// native product.
func MulFPFMA[T constraints.Float](x twofloat.Two[T], y T) twofloat.Two[T] {
	c := algorithms.TwoProdFMA(x.Hi, y)
	cl := algorithms.FMA(x.Lo, y, c.Lo)
	return algorithms.FastTwoSum(c.Hi, cl)
}

// MulFPFast returns x * y using DWTimesFP2: the low-word product is folded
// in without compensation. Cheapest non-FMA variant, error below 3u^2.
func MulFPFast[T constraints.Float](x twofloat.Two[T], y T) twofloat.Two[T] {
	c := algorithms.TwoProd(x.Hi, y)
	cl := x.Lo * y
	return algorithms.FastTwoSum(c.Hi, c.Lo+cl)
}

// MulFPAccurate returns x * y using DWTimesFP1: the low-word product is
// folded through two chained renormalizations, tightening the bound to
// 1.5u^2 without requiring FMA.
func MulFPAccurate[T constraints.Float](x twofloat.Two[T], y T) twofloat.Two[T] {
	c := algorithms.TwoProd(x.Hi, y)
	cl := x.Lo * y
	t := algorithms.FastTwoSum(c.Hi, cl)
	tl := t.Lo + c.Lo
	return algorithms.FastTwoSum(t.Hi, tl)
}

// MulFast returns x * y using DWTimesDW1, the only double-word product
// available without FMA (Dekker 1971).
func MulFast[T constraints.Float](x, y twofloat.Two[T]) twofloat.Two[T] {
	c := algorithms.TwoProd(x.Hi, y.Hi)
	tl1 := x.Hi * y.Lo
	tl2 := x.Lo * y.Hi
	cl := c.Lo + (tl1 + tl2)
	return algorithms.FastTwoSum(c.Hi, cl)
}

// MulFastFMA returns x * y using DWTimesDW2: the two cross terms are
// accumulated with one fused multiply-add, saving a rounding over MulFast.
func MulFastFMA[T constraints.Float](x, y twofloat.Two[T]) twofloat.Two[T] {
	c := algorithms.TwoProdFMA(x.Hi, y.Hi)
	tl := x.Hi * y.Lo
	cl := algorithms.FMA(x.Lo, y.Hi, tl)
	return algorithms.FastTwoSum(c.Hi, c.Lo+cl)
}

// MulAccurateFMA returns x * y using DWTimesDW3, which also folds in the
// low-by-low term. Tightest product bound (below 5u^2); requires FMA.
func MulAccurateFMA[T constraints.Float](x, y twofloat.Two[T]) twofloat.Two[T] {
	c := algorithms.TwoProdFMA(x.Hi, y.Hi)
	tl0 := x.Lo * y.Lo
	tl1 := algorithms.FMA(x.Hi, y.Lo, tl0)
	cl := algorithms.FMA(x.Lo, y.Hi, tl1)
	return algorithms.FastTwoSum(c.Hi, c.Lo+cl)
}

// DivFP returns x / y using DWDivFP3 with the split-based exact product:
// an approximate quotient of the high words is corrected by the measured
// residual of quotient * divisor against the dividend.
func DivFP[T constraints.Float](x twofloat.Two[T], y T) twofloat.Two[T] {
	th := x.Hi / y
	p := algorithms.TwoProd(th, y)
	dh := x.Hi - p.Hi
	dt := dh - p.Lo
	d := dt + x.Lo
	tl := d / y
	return algorithms.FastTwoSum(th, tl)
}

// DivFPFMA returns x / y using DWDivFP3 with the FMA-based exact product.
func DivFPFMA[T constraints.Float](x twofloat.Two[T], y T) twofloat.Two[T] {
	th := x.Hi / y
	p := algorithms.TwoProdFMA(th, y)
	dh := x.Hi - p.Hi
	dt := dh - p.Lo
	d := dt + x.Lo
	tl := d / y
	return algorithms.FastTwoSum(th, tl)
}

// DivFast returns x / y using DWDivDW2: one Newton-like correction of the
// high-word quotient, with the residual measured by an accurate
// double-word by native product.
func DivFast[T constraints.Float](x, y twofloat.Two[T]) twofloat.Two[T] {
	th := x.Hi / y.Hi
	r := MulFPAccurate(y, th)
	ph := x.Hi - r.Hi
	dl := x.Lo - r.Lo
	d := ph + dl
	tl := d / y.Hi
	return algorithms.FastTwoSum(th, tl)
}

// DivFastFMA is DivFast with the residual product computed through FMA.
func DivFastFMA[T constraints.Float](x, y twofloat.Two[T]) twofloat.Two[T] {
	th := x.Hi / y.Hi
	r := MulFPFMA(y, th)
	ph := x.Hi - r.Hi
	dl := x.Lo - r.Lo
	d := ph + dl
	tl := d / y.Hi
	return algorithms.FastTwoSum(th, tl)
}

// DivAccurateFMA returns x / y using DWDivDW3: a double-word reciprocal of
// the divisor is built from one Newton step whose residual 1 - y.Hi*th is
// computed exactly with FMA, then multiplied by the dividend. Roughly
// twice the cost of DivFast for a materially tighter bound (below 10u^2).
// There is no accurate division without FMA.
func DivAccurateFMA[T constraints.Float](x, y twofloat.Two[T]) twofloat.Two[T] {
	th := 1 / y.Hi
	rh := algorithms.FMA(-y.Hi, th, 1)
	rl := -(y.Lo * th)
	e := algorithms.FastTwoSum(rh, rl)
	d := MulFPFMA(e, th)
	m := AddFP(d, th)
	return MulFastFMA(x, m)
}
