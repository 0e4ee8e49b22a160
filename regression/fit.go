package regression

import (
	"fmt"
	"math"

	"github.com/arloliu/powser/errs"
)

// Fit computes the least-squares line through the samples (xs[i], ys[i]).
//
// It uses the closed-form formulas:
//
//	slope     = Σ(x-x̄)(y-ȳ) / Σ(x-x̄)²
//	intercept = ȳ - slope*x̄
//
// Parameters:
//   - xs: Independent variable samples
//   - ys: Dependent variable samples, same length as xs
//
// Returns:
//   - Line: The fitted line
//   - error: errs.ErrEmptyInput, errs.ErrLengthMismatch, or
//     errs.ErrDegenerateFit when all xs are identical
func Fit(xs, ys []float64) (Line, error) {
	if len(xs) == 0 || len(ys) == 0 {
		return Line{}, errs.ErrEmptyInput
	}
	if len(xs) != len(ys) {
		return Line{}, fmt.Errorf("%w: %d x values vs %d y values", errs.ErrLengthMismatch, len(xs), len(ys))
	}

	n := float64(len(xs))

	var sumX, sumY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX := sumX / n
	meanY := sumY / n

	// Centered sums; sxx == 0 means the slope divisor vanishes, which is
	// reported as a degenerate fit rather than allowed to produce Inf/NaN.
	var sxx, sxy float64
	for i := range xs {
		dx := xs[i] - meanX
		sxx += dx * dx
		sxy += dx * (ys[i] - meanY)
	}

	if sxx == 0 {
		return Line{}, errs.ErrDegenerateFit
	}

	slope := sxy / sxx

	return Line{
		Intercept: meanY - slope*meanX,
		Slope:     slope,
	}, nil
}

// RSquared calculates the coefficient of determination of line against the
// observed samples. Values close to 1 indicate a good fit. Returns 0 when the
// samples are empty, mismatched, or have zero variance in y.
func RSquared(line Line, xs, ys []float64) float64 {
	if len(xs) == 0 || len(xs) != len(ys) {
		return 0
	}

	var sumY float64
	for _, y := range ys {
		sumY += y
	}
	meanY := sumY / float64(len(ys))

	ssTot := 0.0 // Total sum of squares
	ssRes := 0.0 // Residual sum of squares
	for i := range ys {
		ssTot += (ys[i] - meanY) * (ys[i] - meanY)
		res := ys[i] - line.At(xs[i])
		ssRes += res * res
	}

	if ssTot == 0 {
		return 0
	}

	return 1.0 - (ssRes / ssTot)
}

// RMSE calculates the root mean square error of line against the observed
// samples. Lower values indicate a better fit. Returns 0 when the samples are
// empty or mismatched.
func RMSE(line Line, xs, ys []float64) float64 {
	if len(xs) == 0 || len(xs) != len(ys) {
		return 0
	}

	sumSq := 0.0
	for i := range ys {
		diff := ys[i] - line.At(xs[i])
		sumSq += diff * diff
	}

	return math.Sqrt(sumSq / float64(len(ys)))
}
