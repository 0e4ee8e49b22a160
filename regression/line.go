package regression

import "fmt"

// Line is a fitted straight line y = Intercept + Slope*x.
//
// A Line is immutable once produced by Fit; it is evaluated with At and
// carries no reference to the samples it was fitted from.
type Line struct {
	// Intercept is the value of the line at x = 0.
	Intercept float64
	// Slope is the rate of change of the line.
	Slope float64
}

// At evaluates the line at x.
func (l Line) At(x float64) float64 {
	return l.Intercept + l.Slope*x
}

// Coefficients returns the line parameters as [intercept, slope].
func (l Line) Coefficients() []float64 {
	return []float64{l.Intercept, l.Slope}
}

// String returns a human-readable formula for the line.
func (l Line) String() string {
	return fmt.Sprintf("y = %.4g + %.4g*x", l.Intercept, l.Slope)
}
