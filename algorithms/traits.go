package algorithms

import (
	"math"

	"golang.org/x/exp/constraints"
)

// maxFloat is a variable so that the conversion in single is a runtime
// conversion; converting the constant would not compile for 32-bit T.
var maxFloat = math.MaxFloat64

// single reports whether T is a 32-bit floating point type. The largest
// finite float64 overflows to +Inf when converted to any such type.
func single[T constraints.Float]() bool {
	return math.IsInf(float64(T(maxFloat)), 1)
}

// splitter returns Veltkamp's constant 2^ceil(p/2) + 1 for the mantissa
// width p of T: 2^27 + 1 for float64, 2^12 + 1 for float32.
func splitter[T constraints.Float]() T {
	if single[T]() {
		return T(4097)
	}
	return T(134217729)
}
