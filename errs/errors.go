// Package errs defines the sentinel errors shared across powser packages.
//
// All errors are exported as package-level variables so callers can match
// them with errors.Is, even when they arrive wrapped with additional context.
package errs

import "errors"

// Regression fitting errors.
var (
	// ErrEmptyInput indicates an empty input sequence was passed where at
	// least one element is required.
	ErrEmptyInput = errors.New("empty input sequence")

	// ErrLengthMismatch indicates the x and y sequences passed to the fitter
	// have different lengths.
	ErrLengthMismatch = errors.New("sequence length mismatch")

	// ErrDegenerateFit indicates the x values have zero variance, leaving the
	// slope of the least-squares line undefined.
	ErrDegenerateFit = errors.New("degenerate fit: zero variance in x values")
)

// Radius estimation errors.
var (
	// ErrInsufficientSamples indicates too few coefficients were available to
	// form the ratio samples needed by the radius estimate.
	ErrInsufficientSamples = errors.New("insufficient coefficient samples")

	// ErrZeroCoefficient indicates a sampled coefficient is zero, making the
	// ratio of consecutive coefficients undefined.
	ErrZeroCoefficient = errors.New("zero coefficient in ratio sample")

	// ErrZeroIntercept indicates the extrapolated coefficient ratio is zero,
	// so no finite radius can be derived from it.
	ErrZeroIntercept = errors.New("zero intercept in ratio extrapolation")
)

// Series evaluation errors.
var (
	// ErrOutOfRadius indicates the evaluation point lies outside the
	// estimated interval of convergence, so the sum is refused.
	ErrOutOfRadius = errors.New("evaluation point outside estimated radius of convergence")

	// ErrConvergenceTimeout indicates the truncated summation failed to meet
	// the convergence threshold within the iteration cap.
	ErrConvergenceTimeout = errors.New("summation did not converge within iteration cap")

	// ErrSourceExhausted signals the end of a coefficient source. It is a
	// control-flow sentinel, not a failure: sources return it from Next once
	// no further coefficients exist.
	ErrSourceExhausted = errors.New("coefficient source exhausted")
)

// Coefficient table codec errors.
var (
	// ErrInvalidMagic indicates the table data does not start with the
	// expected magic number.
	ErrInvalidMagic = errors.New("invalid table magic number")

	// ErrUnsupportedVersion indicates the table was written with a format
	// version this library does not understand.
	ErrUnsupportedVersion = errors.New("unsupported table format version")

	// ErrInvalidCompression indicates an unknown compression type, either in
	// encoder options or in a decoded table header.
	ErrInvalidCompression = errors.New("invalid compression type")

	// ErrInvalidTableSize indicates the table data is truncated or its
	// payload size disagrees with the header.
	ErrInvalidTableSize = errors.New("invalid table size")

	// ErrChecksumMismatch indicates the payload checksum does not match the
	// header, meaning the table data is corrupted.
	ErrChecksumMismatch = errors.New("table checksum mismatch")
)
