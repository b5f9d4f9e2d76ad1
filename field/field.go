// Package field implements modular integer arithmetic and dense
// univariate polynomials over a prime field GF(p), the algebraic
// substrate the secure sketch and Berlekamp-Welch decoder are built on.
//
// p is supplied at runtime (it tracks the size of the caller's corpus,
// not a fixed curve modulus), so elements are plain uint64s scoped to a
// *Field rather than a code-generated fixed-modulus type. p is assumed
// to fit in a uint64; multiplication uses the standard double-width
// mul/divmod pair from math/bits to avoid overflow regardless of how
// close p gets to that bound.
package field

import (
	"math/big"
	"math/bits"

	"github.com/kepler-labs/fuzzyvault/vaulterr"
)

// Element is a residue in [0, p) for some Field. Elements are only
// meaningful relative to the Field that produced them; this package
// never checks that two Elements share a Field, matching how the
// teacher's gnark-crypto-based code treats field elements as bare
// values scoped by convention to one curve's scalar field.
type Element uint64

// Field is a prime field GF(p).
type Field struct {
	P uint64
}

// New returns the field GF(p), failing with vaulterr.NotPrime if p is
// not prime. p = 2 is accepted.
func New(p uint64) (*Field, error) {
	if !IsPrime(p) {
		return nil, vaulterr.New(vaulterr.NotPrime, "%d is not prime", p)
	}
	return &Field{P: p}, nil
}

// IsPrime reports whether n is prime, using big.Int's Miller-Rabin test.
func IsPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	return new(big.Int).SetUint64(n).ProbablyPrime(32)
}

// FirstPrimeGreaterThan returns the least prime strictly greater than k.
func FirstPrimeGreaterThan(k uint64) uint64 {
	candidate := k + 1
	for !IsPrime(candidate) {
		candidate++
	}
	return candidate
}

// Elem reduces v into [0, p).
func (f *Field) Elem(v uint64) Element {
	return Element(v % f.P)
}

// Add returns a+b mod p.
func (f *Field) Add(a, b Element) Element {
	s := uint64(a) + uint64(b)
	if s >= f.P {
		s -= f.P
	}
	return Element(s)
}

// Sub returns a-b mod p.
func (f *Field) Sub(a, b Element) Element {
	if a >= b {
		return Element(uint64(a) - uint64(b))
	}
	return Element(f.P - uint64(b) + uint64(a))
}

// Neg returns -a mod p.
func (f *Field) Neg(a Element) Element {
	if a == 0 {
		return 0
	}
	return Element(f.P - uint64(a))
}

// Mul returns a*b mod p.
func (f *Field) Mul(a, b Element) Element {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi == 0 {
		return Element(lo % f.P)
	}
	_, rem := bits.Div64(hi, lo, f.P)
	return Element(rem)
}

// Inv returns the multiplicative inverse of a via Fermat's little
// theorem (a^(p-2) mod p), which holds for any odd prime p and any
// nonzero a.
func (f *Field) Inv(a Element) (Element, error) {
	if a == 0 {
		return 0, vaulterr.New(vaulterr.NotPrime, "division by zero in GF(%d)", f.P)
	}
	return f.Pow(a, f.P-2), nil
}

// Div returns a/b mod p.
func (f *Field) Div(a, b Element) (Element, error) {
	inv, err := f.Inv(b)
	if err != nil {
		return 0, err
	}
	return f.Mul(a, inv), nil
}

// Pow returns a^n mod p via square-and-multiply.
func (f *Field) Pow(a Element, n uint64) Element {
	result := Element(1 % f.P)
	base := a
	for n > 0 {
		if n&1 == 1 {
			result = f.Mul(result, base)
		}
		base = f.Mul(base, base)
		n >>= 1
	}
	return result
}
