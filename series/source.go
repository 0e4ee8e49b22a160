package series

import "github.com/arloliu/powser/errs"

// Source produces the coefficients of a power series in index order.
//
// A Source is a single-consumer, forward-only stream: every Next call
// consumes one coefficient, and consumed values cannot be re-read. Sources
// are not safe for concurrent use.
type Source interface {
	// Next returns the next coefficient. It returns errs.ErrSourceExhausted
	// once the sequence ends; a truly infinite source never returns it.
	Next() (float64, error)
}

// SliceSource streams a fixed coefficient slice. It exists mainly for tests
// and for replaying precomputed coefficient tables through the streaming
// path; finite data is normally evaluated exactly with Evaluator.Evaluate.
type SliceSource struct {
	coeffs []float64
	pos    int
}

var _ Source = (*SliceSource)(nil)

// NewSliceSource creates a Source over coeffs. The slice is not copied; the
// caller must not modify it while the source is in use.
func NewSliceSource(coeffs []float64) *SliceSource {
	return &SliceSource{coeffs: coeffs}
}

// Next returns the next coefficient, or errs.ErrSourceExhausted past the end.
func (s *SliceSource) Next() (float64, error) {
	if s.pos >= len(s.coeffs) {
		return 0, errs.ErrSourceExhausted
	}

	c := s.coeffs[s.pos]
	s.pos++

	return c, nil
}

// FuncSource generates an unbounded coefficient stream from an index
// function: the i-th Next call returns fn(i), starting at i = 0.
type FuncSource struct {
	fn func(i int) float64
	i  int
}

var _ Source = (*FuncSource)(nil)

// NewFuncSource creates an infinite Source from fn.
func NewFuncSource(fn func(i int) float64) *FuncSource {
	return &FuncSource{fn: fn}
}

// Next returns fn(i) for the next index i. It never signals exhaustion.
func (s *FuncSource) Next() (float64, error) {
	c := s.fn(s.i)
	s.i++

	return c, nil
}

// Generate adapts a pull function to a Source. Each call to next should
// return the following coefficient and true, or anything and false once the
// sequence ends.
func Generate(next func() (float64, bool)) Source {
	return generatorSource{next: next}
}

type generatorSource struct {
	next func() (float64, bool)
}

func (s generatorSource) Next() (float64, error) {
	c, ok := s.next()
	if !ok {
		return 0, errs.ErrSourceExhausted
	}

	return c, nil
}
