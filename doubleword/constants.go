package doubleword

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/L30nardoSV/twofloat"
)

// Double-word constants and trigonometric tables, from the QD library
// (dd_const.cpp, dd_real.cpp). Stored once as float64 pairs; twoConst
// derives the narrower decomposition when instantiated at float32.
var (
	twoPi  = [2]float64{6.283185307179586232e+00, 2.449293598294706414e-16}
	piBy2  = [2]float64{1.570796326794896558e+00, 6.123233995736766036e-17}
	piBy16 = [2]float64{1.963495408493620697e-01, 7.654042494670957545e-18}
)

// nInvFact bounds the Taylor series of the trigonometric kernels to 15
// terms regardless of input.
const nInvFact = 15

// invFact[i] is 1/(i+3)! as a double-word pair. The sine kernel consumes
// the even rows (1/3!, 1/5!, ...), the cosine kernel the odd rows.
var invFact = [nInvFact][2]float64{
	{1.66666666666666657e-01, 9.25185853854297066e-18},
	{4.16666666666666644e-02, 2.31296463463574266e-18},
	{8.33333333333333322e-03, 1.15648231731787138e-19},
	{1.38888888888888894e-03, -5.30054395437357706e-20},
	{1.98412698412698413e-04, 1.72095582934207053e-22},
	{2.48015873015873016e-05, 2.15119478667758816e-23},
	{2.75573192239858925e-06, -1.85839327404647208e-22},
	{2.75573192239858883e-07, 2.37677146222502973e-23},
	{2.50521083854417202e-08, -1.44881407093591197e-24},
	{2.08767569878681002e-09, -1.20734505911325997e-25},
	{1.60590438368216133e-10, 1.25852945887520981e-26},
	{1.14707455977297245e-11, 2.06555127528307454e-28},
	{7.64716373181981641e-13, 7.03872877733453001e-30},
	{4.77947733238738525e-14, 4.39920548583408126e-31},
	{2.81145725434552060e-15, 1.65088427308614326e-31},
}

// cosTable[k-1] and sinTable[k-1] hold cos(k*pi/16) and sin(k*pi/16) for
// k = 1..4. Negative multiples are handled by sign logic at the use site,
// never by a negative lookup.
var cosTable = [4][2]float64{
	{9.807852804032304306e-01, 1.854693999782500573e-17},
	{9.238795325112867385e-01, 1.764504708433667706e-17},
	{8.314696123025452357e-01, 1.407385698472802389e-18},
	{7.071067811865475727e-01, -4.833646656726456726e-17},
}

var sinTable = [4][2]float64{
	{1.950903220161282758e-01, -7.991079068461731263e-18},
	{3.826834323650897818e-01, -1.005077269646158761e-17},
	{5.555702330196021776e-01, 4.709410940561676821e-17},
	{7.071067811865475727e-01, -4.833646656726456726e-17},
}

// twoConst converts a float64 constant pair to a double-word of width T.
// For float64 this is the identity. For float32 the high word is rounded
// and the low word re-derived from the rounding residual, so the pair
// remains the best double-word approximation the narrower type can hold;
// float32 is exactly representable in float64, so the residual is exact.
func twoConst[T constraints.Float](c [2]float64) twofloat.Two[T] {
	hi := T(c[0])
	lo := T((c[0] - float64(hi)) + c[1])
	return twofloat.Two[T]{Hi: hi, Lo: lo}
}

// maxFloat is a variable so the conversion below is a runtime conversion.
var maxFloat = math.MaxFloat64

// epsSq returns the squared machine epsilon of a double-word of width T:
// 2^-104 for float64 pairs, 2^-48 for float32 pairs. It scales the
// truncation thresholds of the Taylor kernels.
func epsSq[T constraints.Float]() T {
	if math.IsInf(float64(T(maxFloat)), 1) {
		return T(0x1p-48)
	}
	return T(0x1p-104)
}

func nanPair[T constraints.Float]() twofloat.Two[T] {
	n := T(math.NaN())
	return twofloat.Two[T]{Hi: n, Lo: n}
}
