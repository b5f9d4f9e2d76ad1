package field

// GCD returns the monic greatest common divisor of a and b via the
// Euclidean algorithm, the same construction the secure-sketch pack
// uses for rational-function reconstruction (cmars/conflux's PolyGcd).
func GCD(a, b *Poly) (*Poly, error) {
	for !b.IsZero() {
		_, r, err := a.DivMod(b)
		if err != nil {
			return nil, err
		}
		a, b = b, r
	}
	if a.IsZero() {
		return a, nil
	}
	return a.Monic(), nil
}
