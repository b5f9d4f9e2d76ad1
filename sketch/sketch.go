// Package sketch builds the public secure-sketch for a set of field
// elements: a fixed window of the high coefficients of the set's
// vanishing polynomial, excluding the monic leading term.
package sketch

import (
	"github.com/kepler-labs/fuzzyvault/field"
	"github.com/kepler-labs/fuzzyvault/vaulterr"
)

// Compute returns the t coefficients (sigma_0 .. sigma_{t-1}) of degrees
// n-t .. n-1 of the monic polynomial whose roots are words. t must be
// even; words need not be sorted, but must be distinct (the caller
// validates this — duplicate roots would silently give the vanishing
// polynomial a repeated root).
func Compute(f *field.Field, words []field.Element, t int) ([]field.Element, error) {
	if t%2 != 0 {
		return nil, vaulterr.New(vaulterr.BadErrorThreshold, "error threshold %d is odd", t)
	}
	n := len(words)
	if t < 0 || t > n {
		return nil, vaulterr.New(vaulterr.BadErrorThreshold, "error threshold %d out of range for set size %d", t, n)
	}
	vanishing := field.FromRoots(f, words)
	coeffs := vanishing.Coeffs()
	window := make([]field.Element, t)
	copy(window, coeffs[n-t:n])
	return window, nil
}

// Reconstruct rebuilds p_high = z^n + sum sigma_j * z^(n-t+j), the
// partial vanishing polynomial with its n-t hidden low coefficients set
// to zero.
func Reconstruct(f *field.Field, sigma []field.Element, n int) *field.Poly {
	t := len(sigma)
	coeffs := make([]field.Element, n+1)
	copy(coeffs[n-t:n], sigma)
	coeffs[n] = 1
	return field.NewPoly(f, coeffs)
}
