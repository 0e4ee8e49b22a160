package series

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/arloliu/powser/errs"
	"github.com/arloliu/powser/internal/options"
	"github.com/arloliu/powser/radius"
)

// Evaluator evaluates power series at a point. The zero value is not usable;
// create one with New.
//
// An Evaluator holds only tuning parameters and a logger. All per-evaluation
// state (sample cache, running sum) is local to a single call, so a single
// Evaluator may be reused for any number of evaluations.
type Evaluator struct {
	sampleCount int
	threshold   float64
	maxIter     int
	logger      *slog.Logger
}

// New creates an Evaluator with the given options applied over the defaults.
//
// Returns:
//   - *Evaluator: The configured evaluator.
//   - error: An option validation error, if any.
func New(opts ...EvalOption) (*Evaluator, error) {
	e := &Evaluator{
		sampleCount: DefaultSampleCount,
		threshold:   DefaultConvergenceThreshold,
		maxIter:     DefaultMaxIterations,
		logger:      slog.New(slog.DiscardHandler),
	}

	if err := options.Apply(e, opts...); err != nil {
		return nil, err
	}

	return e, nil
}

// Evaluate computes the exact value of the finite power series with the
// given coefficients at x:
//
//	coeffs[0] + coeffs[1]*x + coeffs[2]*x² + ...
//
// Terms are accumulated in index order. The only error condition is an empty
// coefficient slice.
func (e *Evaluator) Evaluate(coeffs []float64, x float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, fmt.Errorf("%w: no coefficients", errs.ErrEmptyInput)
	}

	sum := coeffs[0]
	pow := 1.0
	for _, c := range coeffs[1:] {
		pow *= x
		sum += c * pow
	}

	return sum, nil
}

// EvaluateStream approximates the value at x of the power series whose
// coefficients src produces.
//
// It pulls the first sampleCount coefficients into a retained cache and
// estimates the radius of convergence r from them (the source is one-shot,
// so the cached values are later reused as the leading terms of the sum).
// When r > 0 and x lies outside the open interval (-r, r), evaluation is
// refused with errs.ErrOutOfRadius. When r <= 0 the estimate is treated as
// inconclusive and the summation proceeds.
//
// The sum then runs until consecutive partial sums agree within the
// convergence threshold, failing with errs.ErrConvergenceTimeout if the
// iteration cap is reached first. A source that ends during sampling is
// reported as errs.ErrInsufficientSamples; a source that ends during the
// extended summation simply terminates the series, and the exact partial
// sum is returned.
func (e *Evaluator) EvaluateStream(src Source, x float64) (float64, error) {
	if src == nil {
		return 0, fmt.Errorf("%w: nil source", errs.ErrEmptyInput)
	}

	seed := make([]float64, 0, e.sampleCount)
	for len(seed) < e.sampleCount {
		c, err := src.Next()
		if err != nil {
			if errors.Is(err, errs.ErrSourceExhausted) {
				return 0, fmt.Errorf("%w: stream ended after %d of %d coefficients",
					errs.ErrInsufficientSamples, len(seed), e.sampleCount)
			}

			return 0, fmt.Errorf("pulling coefficient %d: %w", len(seed), err)
		}
		seed = append(seed, c)
	}

	r, err := radius.Estimate(seed)
	if err != nil {
		return 0, fmt.Errorf("radius estimation: %w", err)
	}

	e.logger.Debug("estimated radius of convergence",
		slog.Float64("radius", r), slog.Float64("x", x), slog.Int("samples", len(seed)))

	if r > 0 && (x <= -r || x >= r) {
		return 0, fmt.Errorf("%w: x=%g, estimated interval (-%g, %g)", errs.ErrOutOfRadius, x, r, r)
	}

	sum, err := Sum(src, seed, x, e.threshold, e.maxIter)
	if err != nil {
		return 0, err
	}

	e.logger.Debug("series summation finished", slog.Float64("sum", sum))

	return sum, nil
}
