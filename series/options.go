package series

import (
	"fmt"
	"log/slog"

	"github.com/arloliu/powser/internal/options"
	"github.com/arloliu/powser/radius"
)

// Default tuning parameters for the streaming evaluation path.
const (
	// DefaultSampleCount is the number of leading coefficients pulled for
	// the radius-of-convergence estimate.
	DefaultSampleCount = 10

	// DefaultConvergenceThreshold is the largest difference between
	// consecutive partial sums that counts as convergence.
	DefaultConvergenceThreshold = 1e-7

	// DefaultMaxIterations caps the number of terms summed beyond the
	// initial sample before the evaluation fails with
	// errs.ErrConvergenceTimeout.
	DefaultMaxIterations = 1000
)

// EvalOption is a functional option for configuring an Evaluator.
type EvalOption = options.Option[*Evaluator]

// WithSampleCount sets how many leading coefficients are pulled from the
// stream for the radius estimate. The count must be at least
// radius.MinSamples.
func WithSampleCount(n int) EvalOption {
	return options.New(func(e *Evaluator) error {
		if n < radius.MinSamples {
			return fmt.Errorf("sample count %d is below the minimum of %d", n, radius.MinSamples)
		}
		e.sampleCount = n

		return nil
	})
}

// WithConvergenceThreshold sets the convergence threshold for the truncated
// summation. The threshold must be positive.
func WithConvergenceThreshold(threshold float64) EvalOption {
	return options.New(func(e *Evaluator) error {
		if threshold <= 0 {
			return fmt.Errorf("convergence threshold must be positive, got %g", threshold)
		}
		e.threshold = threshold

		return nil
	})
}

// WithMaxIterations caps the number of terms summed beyond the initial
// sample. The cap must not be negative; zero means the sample itself must
// already satisfy the convergence threshold.
func WithMaxIterations(n int) EvalOption {
	return options.New(func(e *Evaluator) error {
		if n < 0 {
			return fmt.Errorf("max iterations must not be negative, got %d", n)
		}
		e.maxIter = n

		return nil
	})
}

// WithLogger injects a logger for per-evaluation diagnostics (sampled
// coefficients, radius estimate, final sum). A nil logger disables logging,
// which is also the default.
func WithLogger(logger *slog.Logger) EvalOption {
	return options.NoError(func(e *Evaluator) {
		if logger == nil {
			logger = slog.New(slog.DiscardHandler)
		}
		e.logger = logger
	})
}
