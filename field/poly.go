package field

import "github.com/kepler-labs/fuzzyvault/vaulterr"

// Poly is a dense univariate polynomial over a Field, stored low-degree
// coefficient first: Coeffs()[i] is the coefficient of z^i.
type Poly struct {
	F      *Field
	coeffs []Element
}

// NewPoly builds a polynomial from coefficients in low-to-high order,
// trimming trailing zero coefficients so that Degree() == len(Coeffs())-1.
func NewPoly(f *Field, coeffs []Element) *Poly {
	c := make([]Element, len(coeffs))
	copy(c, coeffs)
	return &Poly{F: f, coeffs: trim(c)}
}

// Zero returns the zero polynomial over f.
func Zero(f *Field) *Poly {
	return &Poly{F: f, coeffs: nil}
}

func trim(c []Element) []Element {
	n := len(c)
	for n > 0 && c[n-1] == 0 {
		n--
	}
	return c[:n]
}

// Coeffs returns the trimmed, low-to-high coefficient slice. The
// returned slice must not be mutated by the caller.
func (p *Poly) Coeffs() []Element {
	return p.coeffs
}

// Degree returns len(Coeffs())-1, or -1 for the zero polynomial.
func (p *Poly) Degree() int {
	return len(p.coeffs) - 1
}

// IsZero reports whether p is the zero polynomial.
func (p *Poly) IsZero() bool {
	return len(p.coeffs) == 0
}

func (p *Poly) coeff(i int) Element {
	if i < 0 || i >= len(p.coeffs) {
		return 0
	}
	return p.coeffs[i]
}

// Add returns p+q.
func (p *Poly) Add(q *Poly) *Poly {
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}
	out := make([]Element, n)
	for i := 0; i < n; i++ {
		out[i] = p.F.Add(p.coeff(i), q.coeff(i))
	}
	return NewPoly(p.F, out)
}

// Sub returns p-q.
func (p *Poly) Sub(q *Poly) *Poly {
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}
	out := make([]Element, n)
	for i := 0; i < n; i++ {
		out[i] = p.F.Sub(p.coeff(i), q.coeff(i))
	}
	return NewPoly(p.F, out)
}

// Neg returns -p.
func (p *Poly) Neg() *Poly {
	out := make([]Element, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = p.F.Neg(c)
	}
	return NewPoly(p.F, out)
}

// Scale returns c*p for a scalar field element c.
func (p *Poly) Scale(c Element) *Poly {
	out := make([]Element, len(p.coeffs))
	for i, v := range p.coeffs {
		out[i] = p.F.Mul(v, c)
	}
	return NewPoly(p.F, out)
}

// Mul returns p*q.
func (p *Poly) Mul(q *Poly) *Poly {
	if p.IsZero() || q.IsZero() {
		return Zero(p.F)
	}
	out := make([]Element, len(p.coeffs)+len(q.coeffs)-1)
	for i, a := range p.coeffs {
		if a == 0 {
			continue
		}
		for j, b := range q.coeffs {
			out[i+j] = p.F.Add(out[i+j], p.F.Mul(a, b))
		}
	}
	return NewPoly(p.F, out)
}

// MulLinear returns p * (z - root), the operation used to build a
// vanishing polynomial one root at a time.
func (p *Poly) MulLinear(root Element) *Poly {
	linear := NewPoly(p.F, []Element{p.F.Neg(root), 1})
	return p.Mul(linear)
}

// Eval returns p(x) mod p.F.P via Horner's method.
func (p *Poly) Eval(x Element) Element {
	if p.IsZero() {
		return 0
	}
	out := p.coeffs[len(p.coeffs)-1]
	for i := len(p.coeffs) - 2; i >= 0; i-- {
		out = p.F.Add(p.F.Mul(out, x), p.coeffs[i])
	}
	return out
}

// DivMod performs Euclidean division, returning (q, r) such that
// p = q*divisor + r with deg(r) < deg(divisor) or r == 0. Fails when
// divisor is the zero polynomial.
func (p *Poly) DivMod(divisor *Poly) (q *Poly, r *Poly, err error) {
	if divisor.IsZero() {
		return nil, nil, vaulterr.New(vaulterr.NoSolution, "division by the zero polynomial")
	}
	remainder := NewPoly(p.F, p.coeffs)
	divDeg := divisor.Degree()
	leadInv, err := p.F.Inv(divisor.coeffs[divDeg])
	if err != nil {
		return nil, nil, err
	}
	quotient := make([]Element, max(0, p.Degree()-divDeg+1))
	for remainder.Degree() >= divDeg && !remainder.IsZero() {
		shift := remainder.Degree() - divDeg
		factor := p.F.Mul(remainder.coeffs[remainder.Degree()], leadInv)
		quotient[shift] = factor
		term := make([]Element, shift+divDeg+1)
		for i, c := range divisor.coeffs {
			term[i+shift] = p.F.Mul(c, factor)
		}
		remainder = remainder.Sub(NewPoly(p.F, term))
	}
	return NewPoly(p.F, quotient), remainder, nil
}

// Equal reports whether p and q have identical trimmed coefficients.
func (p *Poly) Equal(q *Poly) bool {
	if len(p.coeffs) != len(q.coeffs) {
		return false
	}
	for i := range p.coeffs {
		if p.coeffs[i] != q.coeffs[i] {
			return false
		}
	}
	return true
}

// Monic returns p scaled so its leading coefficient is 1. It panics if p
// is the zero polynomial; all callers in this module only monicize
// nonzero factors produced by gcd/split steps.
func (p *Poly) Monic() *Poly {
	lead := p.coeffs[p.Degree()]
	inv, err := p.F.Inv(lead)
	if err != nil {
		panic("Monic called on a polynomial with zero leading coefficient")
	}
	return p.Scale(inv)
}

// FromRoots builds the monic polynomial whose roots are exactly roots,
// i.e. prod (z - roots[i]). This is the vanishing-polynomial construction
// the secure sketch is built from.
func FromRoots(f *Field, roots []Element) *Poly {
	p := NewPoly(f, []Element{1})
	for _, r := range roots {
		p = p.MulLinear(r)
	}
	return p
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
