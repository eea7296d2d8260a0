package doubleword_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/L30nardoSV/twofloat"
	"github.com/L30nardoSV/twofloat/doubleword"
	"github.com/L30nardoSV/twofloat/utils/bignum"
	"github.com/L30nardoSV/twofloat/utils/precision"
	"github.com/L30nardoSV/twofloat/utils/sampling"
)

const (
	nSamples = 128
	refPrec  = 256
)

var testKey = []byte{0x7f, 0x11, 0xd2, 0x08, 0x4c, 0xa9, 0x30, 0x66}

func newPRNG(t *testing.T) *sampling.KeyedPRNG {
	prng, err := sampling.NewKeyedPRNG(testKey)
	require.NoError(t, err)
	return prng
}

func toBig[T interface{ ~float32 | ~float64 }](x twofloat.Two[T]) *big.Float {
	return bignum.ToFloat(x, refPrec)
}

// ulp64 returns the unit in the last place of h.
func ulp64(h float64) float64 {
	h = math.Abs(h)
	return math.Nextafter(h, math.Inf(1)) - h
}

// requireNonOverlap checks the double-word invariant |lo| <= ulp(hi),
// with the one-ulp slack the sloppy variants are allowed.
func requireNonOverlap(t *testing.T, x twofloat.Two[float64]) {
	t.Helper()
	if x.Hi == 0 || x.IsNaN() {
		return
	}
	require.LessOrEqual(t, math.Abs(x.Lo), ulp64(x.Hi))
}

func TestAdditiveIdentity(t *testing.T) {
	prng := newPRNG(t)
	zero := twofloat.Two[float64]{}

	for i := 0; i < nSamples; i++ {
		x := sampling.RandTwo[float64](prng, -1e8, 1e8)

		require.Equal(t, x, doubleword.AddAccurate(x, zero))
		require.Equal(t, x, doubleword.AddSloppy(x, zero))
		require.Equal(t, x, doubleword.AddFP(x, 0))
		require.Equal(t, x, doubleword.SubFP(x, 0))
	}
}

func TestCommutativity(t *testing.T) {
	prng := newPRNG(t)

	for i := 0; i < nSamples; i++ {
		x := sampling.RandTwo[float64](prng, -1e6, 1e6)
		y := sampling.RandTwo[float64](prng, -1e6, 1e6)

		// The additions and the split-based product are symmetric in
		// their operands, so commutativity is bit-exact.
		require.Equal(t, doubleword.AddAccurate(x, y), doubleword.AddAccurate(y, x))
		require.Equal(t, doubleword.AddSloppy(x, y), doubleword.AddSloppy(y, x))
		require.Equal(t, doubleword.MulFast(x, y), doubleword.MulFast(y, x))

		// The FMA products fold the cross terms in operand order, so the
		// two orders may differ in the last few bits of the low word.
		xy := doubleword.MulFastFMA(x, y)
		require.Greater(t, precision.Bits(xy, toBig(doubleword.MulFastFMA(y, x))), 100.0)

		xy = doubleword.MulAccurateFMA(x, y)
		require.Greater(t, precision.Bits(xy, toBig(doubleword.MulAccurateFMA(y, x))), 100.0)
	}
}

func TestNonOverlap(t *testing.T) {
	prng := newPRNG(t)

	for i := 0; i < nSamples; i++ {
		x := sampling.RandTwo[float64](prng, -1e6, 1e6)
		y := sampling.RandTwo[float64](prng, -1e6, 1e6)
		p := sampling.RandTwo[float64](prng, 1, 1e6)
		q := sampling.RandTwo[float64](prng, 1, 1e6)
		f := sampling.RandFloat64(prng, -1e3, 1e3)

		requireNonOverlap(t, doubleword.AddAccurate(x, y))
		requireNonOverlap(t, doubleword.SubAccurate(x, y))
		requireNonOverlap(t, doubleword.AddSloppy(p, q))
		requireNonOverlap(t, doubleword.AddFP(x, f))
		requireNonOverlap(t, doubleword.SubFP(x, f))
		requireNonOverlap(t, doubleword.SubFromFP(f, x))
		requireNonOverlap(t, doubleword.MulFast(x, y))
		requireNonOverlap(t, doubleword.MulFastFMA(x, y))
		requireNonOverlap(t, doubleword.MulAccurateFMA(x, y))
		requireNonOverlap(t, doubleword.MulFPFast(x, f))
		requireNonOverlap(t, doubleword.MulFPAccurate(x, f))
		requireNonOverlap(t, doubleword.MulFPFMA(x, f))
		requireNonOverlap(t, doubleword.DivFast(x, q))
		requireNonOverlap(t, doubleword.DivFastFMA(x, q))
		requireNonOverlap(t, doubleword.DivAccurateFMA(x, q))
		requireNonOverlap(t, doubleword.DivFP(x, f))
		requireNonOverlap(t, doubleword.DivFPFMA(x, f))
		requireNonOverlap(t, doubleword.Sqr(x))
	}
}

// TestAccurateVersusSloppy builds sums whose high words cancel, the case
// the sloppy addition's error bound does not cover, and checks that the
// accurate variant both stays within its unconditional bound and is
// clearly more precise on aggregate.
func TestAccurateVersusSloppy(t *testing.T) {
	prng := newPRNG(t)

	accBits := make([]float64, nSamples)
	slpBits := make([]float64, nSamples)

	for i := 0; i < nSamples; i++ {
		x := sampling.RandTwo[float64](prng, 1, 2)
		y := sampling.RandTwo[float64](prng, 1e-11, 1e-10)
		y.Hi = -x.Hi + y.Hi

		want := toBig(x)
		want.Add(want, toBig(y))

		accBits[i] = precision.Bits(doubleword.AddAccurate(x, y), want)
		slpBits[i] = precision.Bits(doubleword.AddSloppy(x, y), want)

		// The accurate bound holds per sample regardless of signs.
		require.Greater(t, accBits[i], 95.0)
	}

	acc := precision.Aggregate(accBits)
	slp := precision.Aggregate(slpBits)
	t.Logf("%s: %v", doubleword.Accurate, acc)
	t.Logf("%s: %v", doubleword.Sloppy, slp)

	require.Greater(t, acc.Mean, slp.Mean+10)
}

func TestMulDivInverse(t *testing.T) {
	prng := newPRNG(t)

	sign := func(i int) float64 {
		if i%2 == 0 {
			return 1
		}
		return -1
	}

	for i := 0; i < nSamples; i++ {
		x := sampling.RandTwo[float64](prng, -1e3, 1e3)
		y := sampling.RandTwo[float64](prng, 0.5, 100)
		y.Hi *= sign(i)
		y.Lo *= sign(i)
		f := sampling.RandFloat64(prng, 0.5, 100) * sign(i)

		want := toBig(x)

		m := doubleword.MulAccurateFMA(doubleword.DivFast(x, y), y)
		require.Greater(t, precision.Bits(m, want), 92.0)

		m = doubleword.MulAccurateFMA(doubleword.DivFastFMA(x, y), y)
		require.Greater(t, precision.Bits(m, want), 92.0)

		m = doubleword.MulAccurateFMA(doubleword.DivAccurateFMA(x, y), y)
		require.Greater(t, precision.Bits(m, want), 92.0)

		m = doubleword.MulFPAccurate(doubleword.DivFP(x, f), f)
		require.Greater(t, precision.Bits(m, want), 92.0)

		m = doubleword.MulFPFMA(doubleword.DivFPFMA(x, f), f)
		require.Greater(t, precision.Bits(m, want), 92.0)
	}
}

func TestDivisionByZero(t *testing.T) {
	x := twofloat.New(1.5, 1e-17)

	// Division by zero propagates through the native semantics of the
	// correction steps; no branch intercepts it and nothing panics.
	require.True(t, doubleword.DivFP(x, 0).IsNaN())
	require.True(t, doubleword.DivFPFMA(x, 0).IsNaN())
	require.True(t, doubleword.DivFast(x, twofloat.Two[float64]{}).IsNaN())
	require.True(t, doubleword.DivFastFMA(x, twofloat.Two[float64]{}).IsNaN())
	require.True(t, doubleword.DivAccurateFMA(x, twofloat.Two[float64]{}).IsNaN())
}

func TestNint(t *testing.T) {
	type testCase struct {
		name string
		in   twofloat.Two[float64]
		want twofloat.Two[float64]
	}

	for _, tc := range []testCase{
		{"integer", twofloat.New(3.0, 0.0), twofloat.New(3.0, 0.0)},
		{"round down", twofloat.New(2.25, 0.0), twofloat.New(2.0, 0.0)},
		{"round up", twofloat.New(2.75, 0.0), twofloat.New(3.0, 0.0)},
		{"tie low word negative", twofloat.New(2.5, -1e-20), twofloat.New(2.0, 0.0)},
		{"tie low word zero", twofloat.New(2.5, 0.0), twofloat.New(3.0, 0.0)},
		{"negative tie", twofloat.New(-2.5, 0.0), twofloat.New(-2.0, 0.0)},
		{"integer high half low", twofloat.New(3.0, 0.5), twofloat.New(4.0, 0.0)},
		{"integer high negative low", twofloat.New(7.0, -0.25), twofloat.New(7.0, 0.0)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, doubleword.Nint(tc.in))
		})
	}
}

func TestMulPwr2(t *testing.T) {
	prng := newPRNG(t)

	for i := 0; i < nSamples; i++ {
		x := sampling.RandTwo[float64](prng, -1e6, 1e6)

		half := doubleword.MulPwr2(x, 0.5)
		want := toBig(x)
		want.Quo(want, big.NewFloat(2))
		require.Zero(t, toBig(half).Cmp(want))

		// Scaling by a power of two is exact, so scaling back restores
		// the operand bit for bit.
		require.Equal(t, x, doubleword.MulPwr2(half, 2))
	}
}

func TestFloat32Kernel(t *testing.T) {
	prng := newPRNG(t)

	for i := 0; i < nSamples; i++ {
		x := sampling.RandTwo[float32](prng, -1e3, 1e3)
		y := sampling.RandTwo[float32](prng, 0.5, 100)

		s := doubleword.AddAccurate(x, y)
		want := toBig(x)
		want.Add(want, toBig(y))
		require.Greater(t, precision.Bits(s, want), 40.0)

		m := doubleword.MulAccurateFMA(doubleword.DivAccurateFMA(x, y), y)
		require.Greater(t, precision.Bits(m, toBig(x)), 38.0)
	}
}
