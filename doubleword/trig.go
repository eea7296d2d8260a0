package doubleword

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/L30nardoSV/twofloat"
	"github.com/L30nardoSV/twofloat/algorithms"
)

func abs[T constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

func floor[T constraints.Float](x T) T {
	return T(math.Floor(float64(x)))
}

// nint rounds x to the nearest integer, halves away from the nearest
// smaller integer.
func nint[T constraints.Float](x T) T {
	f := floor(x)
	if x == f {
		return x
	}
	return floor(x + T(0.5))
}

// MulPwr2 returns x * b for b an exact power of two. Both component
// products are exact, so no renormalization is needed.
func MulPwr2[T constraints.Float](x twofloat.Two[T], b T) twofloat.Two[T] {
	return twofloat.Two[T]{Hi: x.Hi * b, Lo: x.Lo * b}
}

// Sqr returns x * x. Exploiting the symmetry of the cross terms makes
// this cheaper than MulFast(x, x).
func Sqr[T constraints.Float](x twofloat.Two[T]) twofloat.Two[T] {
	p := algorithms.TwoSqr(x.Hi)
	e := p.Lo + 2*x.Hi*x.Lo
	e += x.Lo * x.Lo
	return algorithms.FastTwoSum(p.Hi, e)
}

// Nint rounds x to the nearest integer. When the high word is already
// integral the low word is rounded and the pair renormalized; otherwise a
// half-way high word is tie-broken by the sign of the low word.
func Nint[T constraints.Float](x twofloat.Two[T]) twofloat.Two[T] {
	hi := nint(x.Hi)

	if hi == x.Hi {
		// High word is an integer already; round the low word and
		// renormalize, needed when e.g. hi = n and lo = 1/2.
		return algorithms.FastTwoSum(hi, nint(x.Lo))
	}

	if abs(hi-x.Hi) == T(0.5) && x.Lo < 0 {
		// The high word alone ties between two integers; the low word
		// breaks the tie downward. Subtracting one is exact here.
		hi--
	}
	return twofloat.Two[T]{Hi: hi}
}

// Sqrt returns the square root of x, which must be non-negative: zero
// input returns zero and negative input returns a NaN pair.
//
// Karp's trick: with x0 a native approximation of 1/sqrt(a), the value
// a*x0 + (a - (a*x0)^2)*x0/2 approximates sqrt(a) to twice the accuracy
// of x0, and both multiplications by x0 may run in native precision.
func Sqrt[T constraints.Float](x twofloat.Two[T]) twofloat.Two[T] {
	if x.IsZero() {
		return twofloat.Two[T]{}
	}
	if x.Hi < 0 {
		return nanPair[T]()
	}

	x0 := 1 / T(math.Sqrt(float64(x.Hi)))
	ax := x.Hi * x0
	res := SubAccurate(x, algorithms.TwoSqr(ax))
	return algorithms.TwoSum(ax, res.Hi*x0*T(0.5))
}

// sinTaylor evaluates the sine Taylor series around zero. Assumes
// |a| <= pi/32; the caller establishes this by range reduction. The series
// stops after at most 8 terms or once a term drops below
// 0.5*|a|*epsSq, whichever comes first.
func sinTaylor[T constraints.Float](a twofloat.Two[T]) twofloat.Two[T] {
	if a.IsZero() {
		return twofloat.Two[T]{}
	}

	thresh := T(0.5) * abs(a.Eval()) * epsSq[T]()
	x := Sqr(a).Neg()
	s := a
	r := a

	i := 0
	for {
		r = MulAccurateFMA(r, x)
		t := MulAccurateFMA(r, twoConst[T](invFact[i]))
		s = AddAccurate(s, t)
		i += 2
		if i >= nInvFact || abs(t.Eval()) <= thresh {
			break
		}
	}
	return s
}

// cosTaylor evaluates the cosine Taylor series around zero. Assumes
// |a| <= pi/32.
func cosTaylor[T constraints.Float](a twofloat.Two[T]) twofloat.Two[T] {
	if a.IsZero() {
		return twofloat.Two[T]{Hi: 1}
	}

	thresh := T(0.5) * epsSq[T]()
	x := Sqr(a).Neg()
	r := x
	s := AddFP(MulPwr2(r, T(0.5)), T(1))

	i := 1
	for {
		r = MulAccurateFMA(r, x)
		t := MulAccurateFMA(r, twoConst[T](invFact[i]))
		s = AddAccurate(s, t)
		i += 2
		if i >= nInvFact || abs(t.Eval()) <= thresh {
			break
		}
	}
	return s
}

// sincosTaylor returns sin(a) and cos(a) for |a| <= pi/32. The cosine is
// derived from the sine as sqrt(1 - sin^2); cosine is non-negative on the
// reduced interval, so the root's sign is unambiguous.
func sincosTaylor[T constraints.Float](a twofloat.Two[T]) (sin, cos twofloat.Two[T]) {
	if a.IsZero() {
		return twofloat.Two[T]{}, twofloat.Two[T]{Hi: 1}
	}
	sin = sinTaylor(a)
	cos = Sqrt(SubFromFP(T(1), Sqr(sin)))
	return
}

// Sin returns the sine of x for any finite double-word argument.
//
// The argument is reduced modulo 2*pi, then pi/2 (quotient j) and pi/16
// (quotient k), leaving |t| <= pi/32 for the Taylor kernels; the final
// value is recombined from the k*pi/16 sine/cosine tables via the angle
// addition identity, with the sign and operand order fixed by j and the
// sign of k. A NaN pair is returned when the reduction quotients fall
// outside |j| <= 2, |k| <= 4; this cannot happen for moderate arguments
// but guards the huge inputs for which the 2*pi reduction has lost every
// significant bit.
func Sin[T constraints.Float](x twofloat.Two[T]) twofloat.Two[T] {
	if x.IsZero() {
		return twofloat.Two[T]{}
	}

	tau := twoConst[T](twoPi)
	halfPi := twoConst[T](piBy2)
	sixteenthPi := twoConst[T](piBy16)

	// Reduce modulo 2*pi.
	z := Nint(DivAccurateFMA(x, tau))
	r := SubAccurate(x, MulAccurateFMA(tau, z))

	// Reduce modulo pi/2 and then pi/16. The quotients only matter as
	// small integers, so native precision suffices; each is bounds-checked
	// before conversion (a NaN quotient fails both comparisons).
	q := floor(r.Hi/halfPi.Hi + T(0.5))
	t := SubAccurate(r, MulFPFMA(halfPi, q))
	if !(q >= -2 && q <= 2) {
		return nanPair[T]()
	}
	j := int(q)

	q = floor(t.Hi/sixteenthPi.Hi + T(0.5))
	t = SubAccurate(t, MulFPFMA(sixteenthPi, q))
	if !(q >= -4 && q <= 4) {
		return nanPair[T]()
	}
	k := int(q)
	absK := k
	if absK < 0 {
		absK = -absK
	}

	if k == 0 {
		switch j {
		case 0:
			return sinTaylor(t)
		case 1:
			return cosTaylor(t)
		case -1:
			return cosTaylor(t).Neg()
		default:
			return sinTaylor(t).Neg()
		}
	}

	u := twoConst[T](cosTable[absK-1])
	v := twoConst[T](sinTable[absK-1])
	sinT, cosT := sincosTaylor(t)

	// sin(j*pi/2 + (k*pi/16 + t)) by the angle addition identity,
	// nine cases over j and the sign of k.
	switch {
	case j == 0 && k > 0:
		r = AddAccurate(MulAccurateFMA(u, sinT), MulAccurateFMA(v, cosT))
	case j == 0:
		r = SubAccurate(MulAccurateFMA(u, sinT), MulAccurateFMA(v, cosT))
	case j == 1 && k > 0:
		r = SubAccurate(MulAccurateFMA(u, cosT), MulAccurateFMA(v, sinT))
	case j == 1:
		r = AddAccurate(MulAccurateFMA(u, cosT), MulAccurateFMA(v, sinT))
	case j == -1 && k > 0:
		r = SubAccurate(MulAccurateFMA(v, sinT), MulAccurateFMA(u, cosT))
	case j == -1:
		r = SubAccurate(MulAccurateFMA(u, cosT).Neg(), MulAccurateFMA(v, sinT))
	case k > 0:
		r = SubAccurate(MulAccurateFMA(u, sinT).Neg(), MulAccurateFMA(v, cosT))
	default:
		r = SubAccurate(MulAccurateFMA(v, cosT), MulAccurateFMA(u, sinT))
	}
	return r
}
