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

// Ring establishes the ring Z_q[x]/(x^n+1): it fixes the degree n (a power
// of two) and the coefficient modulus q, and is shared, read-only, by every
// Poly that belongs to it. Arithmetic on Poly values is always expressed
// relative to one Ring.
type Ring struct {
	n     int
	q     *big.Int
	qBits int
}

// NewRing validates n and q and returns the ring Z_q[x]/(x^n+1). n must be
// a power of two and q must be a positive modulus.
func NewRing(n int, q *big.Int) (*Ring, error) {
	if n <= 0 || n&(n-1) != 0 {
		return nil, fmt.Errorf("ring: NewRing: n=%d is not a power of two", n)
	}
	if q == nil || q.Sign() <= 0 {
		return nil, fmt.Errorf("ring: NewRing: q must be a positive modulus")
	}

	return &Ring{
		n:     n,
		q:     new(big.Int).Set(q),
		qBits: q.BitLen(),
	}, nil
}

// N returns the ring degree.
func (r *Ring) N() int { return r.n }

// Q returns the coefficient modulus (not a copy; callers must treat the
// result as read-only).
func (r *Ring) Q() *big.Int { return r.q }

// QBits returns ceil(log2(q)).
func (r *Ring) QBits() int { return r.qBits }

// NewPoly returns a new zero Poly with n coefficients belonging to this ring.
func (r *Ring) NewPoly() *Poly {
	return NewPoly(r.n)
}

// Add sets dst = a + b coefficient-wise, without normalizing. Aliasing dst
// with a or b is permitted.
func (r *Ring) Add(dst, a, b *Poly) {
	r.ensureLen(dst, maxInt(len(a.Coeffs), len(b.Coeffs)))
	for i := range dst.Coeffs {
		var av, bv big.Int
		if i < len(a.Coeffs) {
			av.Set(a.Coeffs[i])
		}
		if i < len(b.Coeffs) {
			bv.Set(b.Coeffs[i])
		}
		dst.Coeffs[i].Add(&av, &bv)
	}
}

// Sub sets dst = a - b coefficient-wise, without normalizing.
func (r *Ring) Sub(dst, a, b *Poly) {
	r.ensureLen(dst, maxInt(len(a.Coeffs), len(b.Coeffs)))
	for i := range dst.Coeffs {
		var av, bv big.Int
		if i < len(a.Coeffs) {
			av.Set(a.Coeffs[i])
		}
		if i < len(b.Coeffs) {
			bv.Set(b.Coeffs[i])
		}
		dst.Coeffs[i].Sub(&av, &bv)
	}
}

// Mul sets dst = a * b as a raw polynomial product: the schoolbook
// convolution, negacyclically folded modulo x^n+1 as terms are
// accumulated (coefficient i picks up a sign flip each time the exponent
// wraps past n), but NOT reduced modulo q. Callers must call Normalize
// before relying on the coefficients lying in [0, q).
//
// dst may alias a or b: an internal accumulator is used so that both
// operands are fully read before dst is written.
func (r *Ring) Mul(dst, a, b *Poly) {
	n := r.n
	acc := make([]big.Int, n)

	var term big.Int
	for i, av := range a.Coeffs {
		if av.Sign() == 0 {
			continue
		}
		for j, bv := range b.Coeffs {
			if bv.Sign() == 0 {
				continue
			}
			term.Mul(av, bv)

			k := i + j
			if k < n {
				acc[k].Add(&acc[k], &term)
			} else {
				// x^n == -1 (mod x^n+1), so x^k == -x^(k-n).
				acc[k-n].Sub(&acc[k-n], &term)
			}
		}
	}

	r.ensureLen(dst, n)
	for i := 0; i < n; i++ {
		dst.Coeffs[i].Set(&acc[i])
	}
}

// ScalarMulUI sets dst = a * scalar for an unsigned scalar.
func (r *Ring) ScalarMulUI(dst, a *Poly, scalar uint64) {
	s := new(big.Int).SetUint64(scalar)
	r.scalarMul(dst, a, s)
}

// ScalarMulSI sets dst = a * scalar for a signed scalar.
func (r *Ring) ScalarMulSI(dst, a *Poly, scalar int64) {
	s := big.NewInt(scalar)
	r.scalarMul(dst, a, s)
}

// ScalarMulBig sets dst = a * scalar for an arbitrary-precision scalar.
func (r *Ring) ScalarMulBig(dst, a *Poly, scalar *big.Int) {
	r.scalarMul(dst, a, scalar)
}

func (r *Ring) scalarMul(dst, a *Poly, scalar *big.Int) {
	r.ensureLen(dst, len(a.Coeffs))
	for i, c := range a.Coeffs {
		dst.Coeffs[i].Mul(c, scalar)
	}
}

// Normalize reduces p modulo f(x)=x^n+1 (folding any coefficients at
// indices >= n back in with a sign flip) and then reduces every
// coefficient into the canonical range [0, q). This is the "pmod"
// operation: after it, the invariants of a Poly hold (degree < n,
// coefficients in [0, q)). Idempotent: calling it twice in a row is
// equivalent to calling it once.
func (r *Ring) Normalize(p *Poly) {
	n := r.n

	if len(p.Coeffs) > n {
		folded := make([]big.Int, n)
		for i := 0; i < n && i < len(p.Coeffs); i++ {
			folded[i].Set(p.Coeffs[i])
		}
		for i := n; i < len(p.Coeffs); i++ {
			folded[i%n].Sub(&folded[i%n], p.Coeffs[i])
		}
		p.Coeffs = make([]*big.Int, n)
		for i := 0; i < n; i++ {
			p.Coeffs[i] = new(big.Int).Set(&folded[i])
		}
	}

	for _, c := range p.Coeffs {
		c.Mod(c, r.q)
	}
}

// ModT applies the centered mod-t reduction used during decryption: each
// coefficient c (already reduced into [0, q)) is first centered around
// zero by subtracting q if c > q/2, then reduced mod t, then re-centered
// into (-t/2, t/2] by subtracting t if the result exceeds t/2. The
// receiver poly is overwritten in place.
func (r *Ring) ModT(p *Poly, t uint64) {
	tBig := new(big.Int).SetUint64(t)
	halfQ := new(big.Int).Rsh(r.q, 1)
	halfT := new(big.Int).Rsh(tBig, 1)

	for _, c := range p.Coeffs {
		v := new(big.Int).Set(c)

		if v.Cmp(halfQ) > 0 {
			v.Sub(v, r.q)
		}

		v.Mod(v, tBig)

		if v.Cmp(halfT) > 0 {
			v.Sub(v, tBig)
		}

		c.Set(v)
	}
}

func (r *Ring) ensureLen(p *Poly, n int) {
	if len(p.Coeffs) == n {
		return
	}
	coeffs := make([]*big.Int, n)
	for i := range coeffs {
		if i < len(p.Coeffs) {
			coeffs[i] = p.Coeffs[i]
		} else {
			coeffs[i] = new(big.Int)
		}
	}
	p.Coeffs = coeffs
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
