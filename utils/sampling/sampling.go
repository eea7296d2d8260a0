package sampling

import (
	"encoding/binary"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/L30nardoSV/twofloat"
	"github.com/L30nardoSV/twofloat/algorithms"
)

// RandUint64 returns a random value between 0 and 0xFFFFFFFFFFFFFFFF.
func RandUint64(prng PRNG) uint64 {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := prng.Read(b); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(b)
}

// RandFloat64 returns a random float between min and max.
func RandFloat64(prng PRNG, min, max float64) float64 {
	f := float64(RandUint64(prng)) / 1.8446744073709552e+19
	return min + f*(max-min)
}

// maxFloat is a variable so the conversion in RandTwo is a runtime
// conversion.
var maxFloat = math.MaxFloat64

// RandTwo returns a normalized random double-word whose high word lies
// between min and max. The low word is drawn below half an ulp of the high
// word and the pair is renormalized, so the non-overlap invariant holds by
// construction.
func RandTwo[T constraints.Float](prng PRNG, min, max float64) twofloat.Two[T] {
	hi := T(RandFloat64(prng, min, max))

	// Scale of the low word: a quarter ulp of the high word.
	scale := T(0x1p-54)
	if math.IsInf(float64(T(maxFloat)), 1) {
		scale = T(0x1p-25)
	}
	lo := hi * scale * T(RandFloat64(prng, -1, 1))
	return algorithms.FastTwoSum(hi, lo)
}
