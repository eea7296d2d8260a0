// Package precision measures the accuracy of computed double-word values
// against arbitrary-precision references, expressed as correct bits
// (log2 of the inverse error), and aggregates per-sample measurements into
// summary statistics.
package precision

import (
	"fmt"
	"math/big"

	"github.com/montanaflynn/stats"
	"golang.org/x/exp/constraints"

	"github.com/L30nardoSV/twofloat"
	"github.com/L30nardoSV/twofloat/utils/bignum"
)

// capBits is reported when the error vanishes entirely; it exceeds any
// precision the double-word formats can reach.
const capBits = 300

// Bits returns the number of correct bits of got with respect to want:
// -log2 of the relative error, or of the absolute error when want is
// zero. The logarithm is taken in arbitrary precision so errors outside
// the float64 exponent range are still measured.
func Bits[T constraints.Float](got twofloat.Two[T], want *big.Float) float64 {
	prec := want.Prec()
	if prec == 0 {
		prec = 256
	}

	diff := bignum.ToFloat(got, prec)
	diff.Sub(diff, want)
	if diff.Sign() == 0 {
		return capBits
	}
	diff.Abs(diff)

	if want.Sign() != 0 {
		diff.Quo(diff, new(big.Float).Abs(want))
	}

	l := bignum.Log(diff)
	l.Quo(l, bignum.Ln2(prec))
	f, _ := l.Float64()
	if bits := -f; bits < capBits {
		return bits
	}
	return capBits
}

// Stats summarizes a set of per-sample precision measurements, in bits.
type Stats struct {
	Min, Max, Mean, Median float64
}

// Aggregate computes summary statistics over per-sample bit counts.
func Aggregate(bits []float64) (s Stats) {
	s.Min, _ = stats.Min(bits)
	s.Max, _ = stats.Max(bits)
	s.Mean, _ = stats.Mean(bits)
	s.Median, _ = stats.Median(bits)
	return
}

func (s Stats) String() string {
	return fmt.Sprintf("MIN %6.2f | MAX %6.2f | AVG %6.2f | MED %6.2f (bits)",
		s.Min, s.Max, s.Mean, s.Median)
}
