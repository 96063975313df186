package she

import (
	"math/big"

	"github.com/plwe-she/she/ring"
)

// Evaluator performs the scheme's homomorphic operations: ciphertext-
// ciphertext addition and multiplication, ciphertext-plaintext combination,
// and relinearization.
type Evaluator struct {
	settings *Settings
	ring     *ring.Ring
}

// NewEvaluator builds an Evaluator for settings.
func NewEvaluator(settings *Settings) (*Evaluator, error) {
	r, err := settings.Ring()
	if err != nil {
		return nil, err
	}
	return &Evaluator{settings: settings, ring: r}, nil
}

// EvalAdd returns c1 + c2, element-wise. The shorter operand is treated as
// zero-padded up to the longer operand's length, so the result always has
// length max(len(c1), len(c2)): neither ciphertext's high-order elements
// are dropped.
func (ev *Evaluator) EvalAdd(c1, c2 *Ciphertext) *Ciphertext {
	r := ev.ring

	n := len(c1.C)
	if len(c2.C) > n {
		n = len(c2.C)
	}

	result := newCiphertext(ev.settings.D())
	for i := 0; i < n; i++ {
		sum := r.NewPoly()
		switch {
		case i < len(c1.C) && i < len(c2.C):
			r.Add(sum, c1.C[i], c2.C[i])
		case i < len(c1.C):
			sum.CopyValues(c1.C[i])
		default:
			sum.CopyValues(c2.C[i])
		}
		r.Normalize(sum)
		result.C = append(result.C, sum)
	}
	return result
}

// EvalAddPlain returns c with a plaintext ring element added into its
// constant (c0) slot.
func (ev *Evaluator) EvalAddPlain(c *Ciphertext, plain *ring.Poly) *Ciphertext {
	r := ev.ring

	result := c.Copy()
	r.Add(result.C[0], result.C[0], plain)
	r.Normalize(result.C[0])
	return result
}

// EvalMul returns the convolution product of c1 and c2: the result has
// length len(c1)+len(c2)-1, with
//
//	result[k] = sum_{i+j=k} c1[i]*c2[j]
//
// Both operands must already have length >= 2, and the product length must
// not exceed the scheme's D.
func (ev *Evaluator) EvalMul(c1, c2 *Ciphertext) (*Ciphertext, error) {
	if len(c1.C) < 2 || len(c2.C) < 2 {
		return nil, ErrLengthUnsupported
	}

	resultLen := len(c1.C) + len(c2.C) - 1
	if resultLen > c1.D {
		return nil, ErrLengthUnsupported
	}

	r := ev.ring
	acc := make([]*ring.Poly, resultLen)
	for i := range acc {
		acc[i] = r.NewPoly()
	}

	term := r.NewPoly()
	for i, a := range c1.C {
		for j, b := range c2.C {
			r.Mul(term, a, b)
			r.Add(acc[i+j], acc[i+j], term)
		}
	}

	result := newCiphertext(c1.D)
	for _, p := range acc {
		r.Normalize(p)
		result.C = append(result.C, p)
	}
	return result, nil
}

// EvalMulPlain returns c with every element multiplied by a plaintext ring
// element.
func (ev *Evaluator) EvalMulPlain(c *Ciphertext, plain *ring.Poly) *Ciphertext {
	r := ev.ring

	result := newCiphertext(c.D)
	for _, p := range c.C {
		out := r.NewPoly()
		r.Mul(out, p, plain)
		r.Normalize(out)
		result.C = append(result.C, out)
	}
	return result
}

// Relinearize shrinks a length-3 ciphertext (c0, c1, c2) back down to
// length 2 using evalKey. c2's coefficients are digit-decomposed in base
// evalKey.T into evalKey.L+1 digit polynomials c2i[0..L] (coefficient d of
// c2i[i] is digit i of coefficient d of c2, least significant first), and
// the result is:
//
//	c0' = c0 + sum_i ek0[i]*c2i[i]
//	c1' = c1 + sum_i ek1[i]*c2i[i]
func (ev *Evaluator) Relinearize(c *Ciphertext, evalKey *EvalKey) (*Ciphertext, error) {
	if len(c.C) != 3 {
		return nil, ErrLengthUnsupported
	}

	r := ev.ring
	n := r.N()
	t := big.NewInt(int64(evalKey.T))

	c2i := make([]*ring.Poly, evalKey.L+1)
	for i := range c2i {
		c2i[i] = r.NewPoly()
	}

	coeff := new(big.Int)
	for d := 0; d < n; d++ {
		coeff.Set(c.C[2].Coeffs[d])
		for i := 0; i <= evalKey.L; i++ {
			digit := new(big.Int)
			digit.Mod(coeff, t)
			c2i[i].Coeffs[d].Set(digit)
			coeff.Div(coeff, t)
		}
	}

	c0 := c.C[0].Copy()
	c1 := c.C[1].Copy()

	term := r.NewPoly()
	for i := 0; i <= evalKey.L; i++ {
		r.Mul(term, evalKey.Ek0[i], c2i[i])
		r.Add(c0, c0, term)

		r.Mul(term, evalKey.Ek1[i], c2i[i])
		r.Add(c1, c1, term)
	}

	r.Normalize(c0)
	r.Normalize(c1)

	result := newCiphertext(c.D)
	result.C = append(result.C, c0, c1)
	return result, nil
}
