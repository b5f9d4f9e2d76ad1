package field

import "github.com/kepler-labs/fuzzyvault/vaulterr"

// HasRepeatedRoots reports whether p fails to split into distinct linear
// factors over GF(p). Since z^p - z is exactly the product of (z-a) over
// every a in GF(p), each with multiplicity one, (z^p - z) mod p is zero
// iff p is a product of distinct linear factors; a nonzero remainder
// means p has a repeated root or an irreducible factor of degree >= 2.
func HasRepeatedRoots(p *Poly) (bool, error) {
	f := p.F
	z := NewPoly(f, []Element{0, 1})
	zp, err := PowMod(z, f.P, p)
	if err != nil {
		return false, err
	}
	_, diff, err := zp.Sub(z).DivMod(p)
	if err != nil {
		return false, err
	}
	return !diff.IsZero(), nil
}

// RootsOfSquarefree returns the distinct roots of p in GF(p), assuming
// the caller guarantees p is squarefree (the recovery driver only calls
// this after HasRepeatedRoots has returned false). It is a deterministic
// equal-degree split over GF(p)[z], specialised to degree-1 factors,
// adapted from the Cantor-Zassenhaus algorithm used for rational
// reconstruction in cmars/conflux's Poly.factor. Unlike the textbook
// algorithm this trial sequence is deterministic (1, 2, 3, ...) rather
// than drawn from crypto/rand, so that recovery never consumes entropy
// beyond what went into building the original parameters.
func RootsOfSquarefree(p *Poly) ([]Element, error) {
	factors, err := splitIntoLinearFactors(p)
	if err != nil {
		return nil, err
	}
	roots := make([]Element, 0, len(factors))
	for _, factor := range factors {
		m := factor.Monic()
		roots = append(roots, m.F.Neg(m.Coeffs()[0]))
	}
	return roots, nil
}

func splitIntoLinearFactors(p *Poly) ([]*Poly, error) {
	if p.Degree() <= 0 {
		return nil, nil
	}
	if p.Degree() == 1 {
		return []*Poly{p}, nil
	}
	f := p.F
	exp := (f.P - 1) / 2
	for a := uint64(1); a < f.P; a++ {
		r := NewPoly(f, []Element{Element(a), 1}) // z + a
		h, err := PowMod(r, exp, p)
		if err != nil {
			return nil, err
		}
		hMinus1 := h.Sub(NewPoly(f, []Element{1}))
		g, err := GCD(p, hMinus1)
		if err != nil {
			return nil, err
		}
		if g.Degree() <= 0 || g.Degree() >= p.Degree() {
			continue
		}
		quotient, remainder, err := p.DivMod(g)
		if err != nil {
			return nil, err
		}
		if !remainder.IsZero() {
			return nil, vaulterr.New(vaulterr.DecodeFailed, "split factor does not divide polynomial")
		}
		left, err := splitIntoLinearFactors(g)
		if err != nil {
			return nil, err
		}
		right, err := splitIntoLinearFactors(quotient)
		if err != nil {
			return nil, err
		}
		return append(left, right...), nil
	}
	return nil, vaulterr.New(vaulterr.DecodeFailed, "polynomial of degree %d did not split into linear factors", p.Degree())
}

// BruteForceRoots returns the roots of p by evaluating every element of
// GF(p), a simple alternative viable for small p. It is retained to
// cross-check RootsOfSquarefree in tests: both strategies must agree.
func BruteForceRoots(p *Poly) []Element {
	var roots []Element
	for x := uint64(0); x < p.F.P; x++ {
		if p.Eval(Element(x)) == 0 {
			roots = append(roots, Element(x))
		}
	}
	return roots
}
