// Package radius estimates the radius of convergence of a power series from
// a finite sample of its coefficients using the Domb-Sykes ratio method.
//
// The method plots the consecutive-coefficient ratios c_n/c_{n-1} against
// 1/(n+1) and extrapolates the ratio to n → ∞ with a least-squares line. The
// reciprocal of the extrapolated ratio is the radius estimate:
//
//	r = 1 / line(0)
//
// This is a heuristic, not a proof: the estimate may come out negative or
// arbitrarily large when the ratio sequence carries no usable signal, and
// callers are expected to treat such values as inconclusive.
//
// See https://en.wikipedia.org/wiki/Radius_of_convergence for background on
// the Domb-Sykes plot.
package radius
