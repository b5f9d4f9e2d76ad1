package field

// PowMod computes base^exponent mod modulus via square-and-multiply,
// reducing after every step so intermediate polynomials never grow past
// twice modulus's degree. It is the polynomial analogue of Field.Pow and
// backs both HasRepeatedRoots (z^p mod P) and the equal-degree root
// split in RootsOfSquarefree.
func PowMod(base *Poly, exponent uint64, modulus *Poly) (*Poly, error) {
	f := base.F
	result := NewPoly(f, []Element{1})
	b := base
	e := exponent
	for e > 0 {
		if e&1 == 1 {
			prod := result.Mul(b)
			_, r, err := prod.DivMod(modulus)
			if err != nil {
				return nil, err
			}
			result = r
		}
		e >>= 1
		if e == 0 {
			break
		}
		sq := b.Mul(b)
		_, r, err := sq.DivMod(modulus)
		if err != nil {
			return nil, err
		}
		b = r
	}
	return result, nil
}
