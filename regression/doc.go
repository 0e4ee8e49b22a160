// Package regression provides closed-form ordinary least squares fitting of a
// straight line to paired observations.
//
// The package is intentionally small: powser only needs simple linear
// regression to extrapolate coefficient ratios for the Domb-Sykes radius
// estimate, but the fitter is a self-contained, reusable contract.
//
// # Basic Usage
//
//	line, err := regression.Fit([]float64{1, 2, 3, 4}, []float64{5, 6, 7, 8})
//	if err != nil {
//	    return err
//	}
//	y := line.At(9) // 13, the line is y = 4 + x
//
// # Goodness of Fit
//
// RSquared and RMSE score a fitted line against the observed samples:
//
//	r2 := regression.RSquared(line, xs, ys)
//	rmse := regression.RMSE(line, xs, ys)
//
// # Error Conditions
//
// Fit returns errs.ErrEmptyInput for empty sequences, errs.ErrLengthMismatch
// when the sequences differ in length, and errs.ErrDegenerateFit when all x
// values are identical (the slope is undefined). The degenerate case is
// detected before dividing, so it never surfaces as an arithmetic fault.
package regression
