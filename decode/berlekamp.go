// Package decode implements the Berlekamp-Welch decoder and the
// recovery driver that composes it with the secure sketch and the
// field package's root finder to turn a recovery guess back into the
// original set.
package decode

import (
	"github.com/kepler-labs/fuzzyvault/field"
	"github.com/kepler-labs/fuzzyvault/linalg"
	"github.com/kepler-labs/fuzzyvault/vaulterr"
)

// BerlekampWelch recovers the low-degree polynomial p_low of degree < k
// that agrees with (a, b) outside of up to tErr error positions. It
// fails with vaulterr.DecodeFailed both when the assembled linear system
// has no solution and when the reconstructed Q/E division leaves a
// nonzero remainder.
func BerlekampWelch(f *field.Field, a, b []field.Element, k, tErr int) (*field.Poly, error) {
	n := len(a)
	if n < 1 || len(b) != n {
		return nil, vaulterr.New(vaulterr.DecodeFailed, "evaluation points and values must be equal length and nonempty")
	}
	if k < 1 || tErr < 1 {
		return nil, vaulterr.New(vaulterr.DecodeFailed, "k=%d and tErr=%d are not consistent", k, tErr)
	}
	if n != k+2*tErr {
		return nil, vaulterr.New(vaulterr.DecodeFailed, "n=%d does not equal k+2*tErr=%d", n, k+2*tErr)
	}

	m := make([][]field.Element, n)
	y := make([]field.Element, n)
	for i := 0; i < n; i++ {
		powers := powersOf(f, a[i], k+tErr)
		row := make([]field.Element, n)
		for j := 0; j < k+tErr; j++ {
			row[j] = powers[j]
		}
		for j := 0; j < tErr; j++ {
			row[k+tErr+j] = f.Neg(f.Mul(b[i], powers[j]))
		}
		m[i] = row
		y[i] = f.Mul(b[i], powers[tErr])
	}

	x, err := linalg.Solve(f, m, y)
	if err != nil {
		return nil, vaulterr.New(vaulterr.DecodeFailed, "no solution to the Berlekamp-Welch system: %s", err.Error())
	}

	qCoeffs := x[:k+tErr]
	eCoeffs := append(append([]field.Element{}, x[k+tErr:]...), 1)

	Q := field.NewPoly(f, qCoeffs)
	E := field.NewPoly(f, eCoeffs)

	quotient, remainder, err := Q.DivMod(E)
	if err != nil {
		return nil, vaulterr.New(vaulterr.DecodeFailed, "error locator division failed: %s", err.Error())
	}
	if !remainder.IsZero() {
		return nil, vaulterr.New(vaulterr.DecodeFailed, "error locator does not divide Q evenly")
	}
	return quotient, nil
}

// powersOf returns [a^0, a^1, ..., a^upto] (upto+1 entries), computed
// incrementally rather than by repeated Field.Pow calls.
func powersOf(f *field.Field, a field.Element, upto int) []field.Element {
	powers := make([]field.Element, upto+1)
	powers[0] = field.Element(1 % f.P)
	for i := 1; i <= upto; i++ {
		powers[i] = f.Mul(powers[i-1], a)
	}
	return powers
}
