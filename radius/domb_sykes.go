package radius

import (
	"fmt"

	"github.com/arloliu/powser/errs"
	"github.com/arloliu/powser/regression"
)

// MinSamples is the smallest coefficient sample that yields the two ratio
// points needed for a line fit.
const MinSamples = 3

// Estimate derives a radius-of-convergence estimate from the leading
// coefficients c_0..c_{k-1} of a power series.
//
// For each n in 1..k-1 it forms the Domb-Sykes sample (1/(n+1), c_n/c_{n-1}),
// fits a least-squares line through the samples, and returns the reciprocal
// of the line's value at 0 (the extrapolated ratio for n → ∞).
//
// Parameters:
//   - coeffs: At least MinSamples leading coefficients, in index order
//
// Returns:
//   - float64: The estimated radius; negative or very large values mean the
//     ratio test is inconclusive in that direction
//   - error: errs.ErrInsufficientSamples, errs.ErrZeroCoefficient,
//     errs.ErrZeroIntercept, or a wrapped fit error
func Estimate(coeffs []float64) (float64, error) {
	if len(coeffs) < MinSamples {
		return 0, fmt.Errorf("%w: need at least %d coefficients, got %d",
			errs.ErrInsufficientSamples, MinSamples, len(coeffs))
	}

	xs := make([]float64, 0, len(coeffs)-1)
	ys := make([]float64, 0, len(coeffs)-1)
	for n := 1; n < len(coeffs); n++ {
		prev := coeffs[n-1]
		if prev == 0 {
			return 0, fmt.Errorf("%w: coefficient %d", errs.ErrZeroCoefficient, n-1)
		}
		xs = append(xs, 1/float64(n+1))
		ys = append(ys, coeffs[n]/prev)
	}

	line, err := regression.Fit(xs, ys)
	if err != nil {
		return 0, fmt.Errorf("ratio extrapolation failed: %w", err)
	}

	limit := line.At(0)
	if limit == 0 {
		return 0, errs.ErrZeroIntercept
	}

	return 1 / limit, nil
}
