package series

import (
	"errors"
	"fmt"
	"math"

	"github.com/arloliu/powser/errs"
)

// summation holds the running state of a truncated power-series sum. It is
// created fresh per evaluation and discarded at return; nothing about it is
// shared or persisted.
type summation struct {
	sum   float64
	prev  float64
	pow   float64 // x^i for the next term
	terms int
}

func newSummation() summation {
	return summation{pow: 1}
}

// add folds the next coefficient into the running sum.
func (s *summation) add(c, x float64) {
	s.prev = s.sum
	s.sum += c * s.pow
	s.pow *= x
	s.terms++
}

// converged reports whether the last term moved the partial sum by no more
// than threshold.
func (s *summation) converged(threshold float64) bool {
	return math.Abs(s.sum-s.prev) <= threshold
}

// Sum accumulates the power series Σ c_i x^i until consecutive partial sums
// agree within threshold, or fails with errs.ErrConvergenceTimeout once
// maxTerms coefficients have been pulled from src beyond the seed.
//
// The seed holds coefficients already consumed from src (the radius-estimate
// sample); they are folded in as terms 0..len(seed)-1 before anything further
// is pulled. The seed must not be empty.
//
// Each iteration checks convergence first and the cap second: a sum that
// converges on the very term that exhausts the cap still succeeds, and the
// cap is the unconditional escape hatch when convergence never happens. A
// source that signals exhaustion ends the series naturally, and the partial
// sum accumulated so far is returned as the exact value.
func Sum(src Source, seed []float64, x, threshold float64, maxTerms int) (float64, error) {
	if len(seed) == 0 {
		return 0, fmt.Errorf("%w: empty seed", errs.ErrEmptyInput)
	}
	if src == nil {
		src = NewSliceSource(nil)
	}

	st := newSummation()
	for _, c := range seed {
		st.add(c, x)
	}

	for extra := 0; ; extra++ {
		if st.converged(threshold) {
			return st.sum, nil
		}
		if extra >= maxTerms {
			return 0, fmt.Errorf("%w: %d additional terms, last delta %g",
				errs.ErrConvergenceTimeout, maxTerms, math.Abs(st.sum-st.prev))
		}

		c, err := src.Next()
		if err != nil {
			if errors.Is(err, errs.ErrSourceExhausted) {
				return st.sum, nil
			}

			return 0, fmt.Errorf("pulling term %d: %w", st.terms, err)
		}
		st.add(c, x)
	}
}
