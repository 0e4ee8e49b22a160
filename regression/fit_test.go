package regression

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/powser/errs"
)

func TestFit(t *testing.T) {
	t.Run("ExactLine", func(t *testing.T) {
		// y = x + 4, a perfect fit.
		line, err := Fit([]float64{1, 2, 3, 4}, []float64{5, 6, 7, 8})
		require.NoError(t, err)
		require.InDelta(t, 4.0, line.Intercept, 1e-12)
		require.InDelta(t, 1.0, line.Slope, 1e-12)
		require.InDelta(t, 13.0, line.At(9), 1e-12)
	})

	t.Run("ScatteredSamples", func(t *testing.T) {
		// Best fit is y = 0.8x + 4.5.
		line, err := Fit([]float64{1, 3, 2, 4}, []float64{5, 6, 7, 8})
		require.NoError(t, err)
		require.InDelta(t, 4.5, line.Intercept, 1e-12)
		require.InDelta(t, 0.8, line.Slope, 1e-12)
		require.InDelta(t, 11.7, line.At(9), 1e-12)
	})

	t.Run("TwoPoints", func(t *testing.T) {
		line, err := Fit([]float64{0, 2}, []float64{1, 5})
		require.NoError(t, err)
		require.InDelta(t, 1.0, line.Intercept, 1e-12)
		require.InDelta(t, 2.0, line.Slope, 1e-12)
	})

	t.Run("EmptyInput", func(t *testing.T) {
		_, err := Fit(nil, nil)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrEmptyInput)

		_, err = Fit([]float64{}, []float64{})
		require.ErrorIs(t, err, errs.ErrEmptyInput)
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		_, err := Fit([]float64{1, 2, 3}, []float64{1, 2})
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrLengthMismatch)
	})

	t.Run("IdenticalXValues", func(t *testing.T) {
		// Vertical scatter has no defined slope; this must surface as a
		// typed error, not an Inf/NaN line.
		_, err := Fit([]float64{2, 2, 2, 2}, []float64{1, 2, 3, 4})
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrDegenerateFit)
	})

	t.Run("SinglePoint", func(t *testing.T) {
		// One sample has zero x variance as well.
		_, err := Fit([]float64{1}, []float64{5})
		require.ErrorIs(t, err, errs.ErrDegenerateFit)
	})
}

func TestLine(t *testing.T) {
	line := Line{Intercept: 4.5, Slope: 0.8}

	require.InDelta(t, 4.5, line.At(0), 1e-12)
	require.InDelta(t, 5.3, line.At(1), 1e-12)
	require.Equal(t, []float64{4.5, 0.8}, line.Coefficients())
	require.Equal(t, "y = 4.5 + 0.8*x", line.String())
}

func TestRSquared(t *testing.T) {
	t.Run("PerfectFit", func(t *testing.T) {
		xs := []float64{1, 2, 3, 4}
		ys := []float64{5, 6, 7, 8}
		line, err := Fit(xs, ys)
		require.NoError(t, err)
		require.InDelta(t, 1.0, RSquared(line, xs, ys), 1e-12)
	})

	t.Run("ImperfectFit", func(t *testing.T) {
		xs := []float64{1, 3, 2, 4}
		ys := []float64{5, 6, 7, 8}
		line, err := Fit(xs, ys)
		require.NoError(t, err)

		r2 := RSquared(line, xs, ys)
		require.Greater(t, r2, 0.0)
		require.Less(t, r2, 1.0)
	})

	t.Run("EmptySamples", func(t *testing.T) {
		require.Zero(t, RSquared(Line{}, nil, nil))
	})
}

func TestRMSE(t *testing.T) {
	t.Run("PerfectFit", func(t *testing.T) {
		xs := []float64{1, 2, 3, 4}
		ys := []float64{5, 6, 7, 8}
		line, err := Fit(xs, ys)
		require.NoError(t, err)
		require.InDelta(t, 0.0, RMSE(line, xs, ys), 1e-12)
	})

	t.Run("ConstantOffset", func(t *testing.T) {
		// Every prediction off by exactly 1.
		line := Line{Intercept: 1, Slope: 1}
		xs := []float64{1, 2, 3}
		ys := []float64{3, 4, 5}
		require.InDelta(t, 1.0, RMSE(line, xs, ys), 1e-12)
	})

	t.Run("EmptySamples", func(t *testing.T) {
		require.Zero(t, RMSE(Line{}, nil, nil))
	})
}
