// Package ring implements arithmetic in the polynomial ring Z_q[x]/(x^n+1)
// that underlies the PLWE scheme: ring-element addition, multiplication,
// scalar multiplication, reduction modulo f(x)=x^n+1 and modulo q, the
// centered mod-t reduction used at decryption, and uniform/Gaussian
// sampling of ring elements.
package ring

import (
	"fmt"
	"math/big"
)

// Poly is an element of Z_q[x]/(x^n+1): a dense coefficient vector of
// length n (or, before normalization, possibly more). Coefficients are not
// guaranteed to lie in [0, q) or to have degree < n until Normalize has
// been called; arithmetic operations may produce such "dirty" values and
// expect the caller to normalize before persisting or comparing them.
type Poly struct {
	Coeffs []*big.Int
}

// NewPoly returns a zero polynomial with n coefficients.
func NewPoly(n int) *Poly {
	p := &Poly{Coeffs: make([]*big.Int, n)}
	for i := range p.Coeffs {
		p.Coeffs[i] = new(big.Int)
	}
	return p
}

// NewPolyDegree returns a zero-valued backing array with deg coefficients;
// used for the intermediate, possibly-longer-than-n results of a raw Mul.
func NewPolyDegree(deg int) *Poly {
	return NewPoly(deg)
}

// N returns the number of allocated coefficients.
func (p *Poly) N() int {
	return len(p.Coeffs)
}

// Copy returns a deep copy of p.
func (p *Poly) Copy() *Poly {
	out := NewPoly(len(p.Coeffs))
	for i, c := range p.Coeffs {
		out.Coeffs[i].Set(c)
	}
	return out
}

// CopyValues overwrites the receiver's coefficients from src. The receiver
// is resized if needed.
func (p *Poly) CopyValues(src *Poly) {
	if len(p.Coeffs) != len(src.Coeffs) {
		p.Coeffs = make([]*big.Int, len(src.Coeffs))
		for i := range p.Coeffs {
			p.Coeffs[i] = new(big.Int)
		}
	}
	for i, c := range src.Coeffs {
		p.Coeffs[i].Set(c)
	}
}

// Zero sets every coefficient of p to 0.
func (p *Poly) Zero() {
	for _, c := range p.Coeffs {
		c.SetInt64(0)
	}
}

// Equal reports whether p and q have identical coefficient vectors. Callers
// typically Normalize both operands first so the comparison is meaningful.
func (p *Poly) Equal(q *Poly) bool {
	if len(p.Coeffs) != len(q.Coeffs) {
		return false
	}
	for i := range p.Coeffs {
		if p.Coeffs[i].Cmp(q.Coeffs[i]) != 0 {
			return false
		}
	}
	return true
}

// String renders p as a sum of monomials, skipping zero coefficients.
func (p *Poly) String() string {
	s := ""
	for i, c := range p.Coeffs {
		if c.Sign() == 0 {
			continue
		}
		if s != "" {
			s += " + "
		}
		switch i {
		case 0:
			s += c.String()
		case 1:
			s += fmt.Sprintf("%s*x", c.String())
		default:
			s += fmt.Sprintf("%s*x^%d", c.String(), i)
		}
	}
	if s == "" {
		return "0"
	}
	return s
}
