package precision_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/L30nardoSV/twofloat"
	"github.com/L30nardoSV/twofloat/utils/bignum"
	"github.com/L30nardoSV/twofloat/utils/precision"
)

func TestBits(t *testing.T) {
	t.Run("Exact", func(t *testing.T) {
		got := twofloat.New(0.5, 0.0)
		require.Equal(t, 300.0, precision.Bits(got, bignum.NewFloat(0.5, 128)))
	})

	t.Run("RelativeError", func(t *testing.T) {
		// got = 0.5 * (1 + 2^-20): exactly 20 bits of agreement.
		got := twofloat.New(0.5+0.5*0x1p-20, 0.0)
		require.InDelta(t, 20.0, precision.Bits(got, bignum.NewFloat(0.5, 128)), 1e-9)
	})

	t.Run("AbsoluteErrorAtZero", func(t *testing.T) {
		got := twofloat.New(0x1p-30, 0.0)
		require.InDelta(t, 30.0, precision.Bits(got, bignum.NewFloat(0.0, 128)), 1e-9)
	})
}

func TestAggregate(t *testing.T) {
	s := precision.Aggregate([]float64{10, 20, 30, 40})

	require.Equal(t, 10.0, s.Min)
	require.Equal(t, 40.0, s.Max)
	require.Equal(t, 25.0, s.Mean)
	require.Equal(t, 25.0, s.Median)

	require.True(t, strings.Contains(s.String(), "AVG"))
}
