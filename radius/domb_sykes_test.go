package radius

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/powser/errs"
)

func TestEstimate(t *testing.T) {
	t.Run("GeometricOnes", func(t *testing.T) {
		// 1 + x + x² + ... = 1/(1-x), radius 1. All ratios are exactly 1,
		// so the fitted line is flat and the extrapolated ratio is 1.
		coeffs := make([]float64, 10)
		for i := range coeffs {
			coeffs[i] = 1
		}

		r, err := Estimate(coeffs)
		require.NoError(t, err)
		require.InDelta(t, 1.0, r, 1e-12)
	})

	t.Run("GeometricRatioTwo", func(t *testing.T) {
		// c_i = 2^i, i.e. 1/(1-2x), radius 0.5.
		coeffs := make([]float64, 10)
		coeffs[0] = 1
		for i := 1; i < len(coeffs); i++ {
			coeffs[i] = coeffs[i-1] * 2
		}

		r, err := Estimate(coeffs)
		require.NoError(t, err)
		require.InDelta(t, 0.5, r, 1e-12)
	})

	t.Run("NegativeRatio", func(t *testing.T) {
		// Alternating signs give a negative extrapolated ratio. The
		// estimate is returned as-is; interpreting it is the caller's job.
		coeffs := make([]float64, 10)
		coeffs[0] = 1
		for i := 1; i < len(coeffs); i++ {
			coeffs[i] = coeffs[i-1] * -4
		}

		r, err := Estimate(coeffs)
		require.NoError(t, err)
		require.InDelta(t, -0.25, r, 1e-12)
	})

	t.Run("ExponentialSeries", func(t *testing.T) {
		// c_n = 1/n! converges everywhere. Its ratios 1/n curve toward zero
		// faster than a straight line, so the linear extrapolation lands
		// below zero and the estimate comes out negative (inconclusive).
		coeffs := make([]float64, 10)
		coeffs[0] = 1
		for i := 1; i < len(coeffs); i++ {
			coeffs[i] = coeffs[i-1] / float64(i)
		}

		r, err := Estimate(coeffs)
		require.NoError(t, err)
		require.Less(t, r, 0.0)
	})

	t.Run("MinimumSample", func(t *testing.T) {
		// Three coefficients produce exactly two ratio points, the minimum
		// for a line fit.
		r, err := Estimate([]float64{1, 1, 1})
		require.NoError(t, err)
		require.InDelta(t, 1.0, r, 1e-12)
	})

	t.Run("InsufficientSamples", func(t *testing.T) {
		for _, coeffs := range [][]float64{nil, {}, {1}, {1, 2}} {
			_, err := Estimate(coeffs)
			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrInsufficientSamples)
		}
	})

	t.Run("ZeroCoefficient", func(t *testing.T) {
		_, err := Estimate([]float64{1, 0, 3, 4})
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrZeroCoefficient)

		// A zero leading coefficient breaks the very first ratio.
		_, err = Estimate([]float64{0, 1, 2})
		require.ErrorIs(t, err, errs.ErrZeroCoefficient)
	})
}
