package decode

import (
	"github.com/kepler-labs/fuzzyvault/field"
	"github.com/kepler-labs/fuzzyvault/sketch"
	"github.com/kepler-labs/fuzzyvault/vaulterr"
)

// Recover reconstructs the original set of words from a public sketch
// and a recovery guess: given the sketch coefficients sigma, the
// original set size n, the correct threshold c, and a guess of n
// candidate words, it rebuilds p_high from the sketch, decodes it
// against the guess with Berlekamp-Welch, and returns the roots of the
// recovered vanishing polynomial.
//
// k = n - t is the degree bound on the recovered low polynomial and
// tErr = t/2 is the number of sign-symmetric errors Berlekamp-Welch can
// correct, where t = 2*(n-c) is the error threshold derived from n and
// c. t is never transmitted in the public state; it is always
// recomputed from n and c.
func Recover(f *field.Field, sigma []field.Element, n, c int, guess []field.Element) ([]field.Element, error) {
	t := 2 * (n - c)
	if t <= 0 || t > n {
		return nil, vaulterr.New(vaulterr.BadErrorThreshold, "derived error threshold %d out of range for n=%d", t, n)
	}
	if len(sigma) != t {
		return nil, vaulterr.New(vaulterr.BadLength, "sketch has %d coefficients, want %d", len(sigma), t)
	}
	if len(guess) != n {
		return nil, vaulterr.New(vaulterr.BadLength, "recovery guess has %d elements, want %d", len(guess), n)
	}

	pHigh := sketch.Reconstruct(f, sigma, n)

	a := make([]field.Element, len(guess))
	b := make([]field.Element, len(guess))
	copy(a, guess)
	for i, x := range a {
		b[i] = pHigh.Eval(x)
	}

	k := n - t
	tErr := t / 2
	pLow, err := BerlekampWelch(f, a, b, k, tErr)
	if err != nil {
		return nil, err
	}

	pDiff := pHigh.Sub(pLow)
	repeated, err := field.HasRepeatedRoots(pDiff)
	if err != nil {
		return nil, err
	}
	if repeated {
		return nil, vaulterr.New(vaulterr.RepeatedRoots, "recovered polynomial has repeated roots")
	}

	return field.RootsOfSquarefree(pDiff)
}
