// Package series evaluates real power series c_0 + c_1*x + c_2*x² + ... at a
// point x.
//
// Two kinds of coefficient input are supported, and the caller declares which
// one it has:
//
//   - A finite coefficient slice, evaluated exactly by direct summation with
//     Evaluator.Evaluate.
//   - A streaming Source producing coefficients on demand, potentially
//     without end, evaluated approximately with Evaluator.EvaluateStream.
//
// The streaming path first pulls a fixed sample of leading coefficients,
// estimates the radius of convergence with the Domb-Sykes method (package
// radius), and refuses evaluation points outside the estimated interval of
// convergence. Inside the interval it sums terms until consecutive partial
// sums agree within a configurable threshold, or fails with
// errs.ErrConvergenceTimeout once an iteration cap is reached.
//
// # Basic Usage
//
//	eval, _ := series.New()
//
//	// Finite series: exact.
//	v, err := eval.Evaluate([]float64{1, 2, 3, 4}, 5) // 586
//
//	// Infinite series: truncated sum, guarded by the radius estimate.
//	ones := series.NewFuncSource(func(int) float64 { return 1 })
//	v, err = eval.EvaluateStream(ones, 0.9) // ≈ 10, the series is 1/(1-x)
//
// # Streaming Contract
//
// A Source is a one-shot, forward-only stream: values cannot be re-read once
// pulled, and a Source must not be shared between evaluations. The evaluator
// caches the sample it pulls for the radius estimate and reuses the cached
// values as the first terms of the sum, so each coefficient is consumed
// exactly once. Re-evaluating the same logical series at another point
// requires a fresh Source.
//
// Evaluations are self-contained: all running state lives in the call, and
// nothing is shared between calls, so an Evaluator may be reused freely.
package series
