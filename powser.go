// Package powser evaluates real power series c_0 + c_1*x + c_2*x² + ... at a
// point x.
//
// Two evaluation paths exist, and the caller declares which one applies by
// choosing the input type:
//
//   - Finite coefficient slices are summed exactly, term by term.
//   - Streaming coefficient sources (potentially infinite) are summed
//     approximately, guarded by a Domb-Sykes radius-of-convergence estimate:
//     points outside the estimated interval of convergence are refused
//     instead of summed to a meaningless number.
//
// # Basic Usage
//
// Evaluating a finite series:
//
//	import "github.com/arloliu/powser"
//
//	// 1 + 2x + 3x² + 4x³ at x = 5
//	v, err := powser.Evaluate([]float64{1, 2, 3, 4}, 5) // 586
//
// Evaluating an infinite series from a streaming source:
//
//	// 1 + x + x² + ... = 1/(1-x)
//	ones := series.NewFuncSource(func(int) float64 { return 1 })
//	v, err := powser.EvaluateStream(ones, 0.9) // ≈ 10
//
// Evaluating the same source at 1.1 fails with errs.ErrOutOfRadius: the
// estimated radius is 1 and the series diverges there.
//
// # Tuning
//
// The streaming path accepts the options of package series:
//
//	v, err := powser.EvaluateStream(src, x,
//	    series.WithSampleCount(16),
//	    series.WithConvergenceThreshold(1e-9),
//	    series.WithMaxIterations(10000),
//	)
//
// # Package Structure
//
// This package provides thin wrappers over the topic packages: series holds
// the evaluator and the streaming source abstraction, radius the Domb-Sykes
// estimator, regression the least-squares line fitter, table a binary codec
// for persisting coefficient tables, and errs the shared sentinel errors.
package powser

import (
	"github.com/arloliu/powser/regression"
	"github.com/arloliu/powser/series"
)

// Evaluate computes the exact value of the finite power series with the
// given coefficients at x.
func Evaluate(coeffs []float64, x float64) (float64, error) {
	eval, err := series.New()
	if err != nil {
		return 0, err
	}

	return eval.Evaluate(coeffs, x)
}

// EvaluateStream approximates the value at x of the power series whose
// coefficients src produces, applying the given options over the defaults.
//
// The source is consumed; evaluating the same logical series again requires
// a fresh source.
func EvaluateStream(src series.Source, x float64, opts ...series.EvalOption) (float64, error) {
	eval, err := series.New(opts...)
	if err != nil {
		return 0, err
	}

	return eval.EvaluateStream(src, x)
}

// FitLine fits a least-squares line through the samples (xs[i], ys[i]).
func FitLine(xs, ys []float64) (regression.Line, error) {
	return regression.Fit(xs, ys)
}
