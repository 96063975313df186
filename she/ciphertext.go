package she

import "github.com/plwe-she/she/ring"

// Ciphertext is a variable-length tuple of ring elements (c0, c1, ..., cL-1)
// that decrypts, by evaluation at the secret key s, to
// c0 + c1*s + c2*s^2 + ... + c(L-1)*s^(L-1). A freshly encrypted ciphertext
// has length 2; EvalMul grows the length, and Relinearize shrinks a
// length-3 ciphertext back to length 2. D bounds how long a ciphertext is
// allowed to grow.
type Ciphertext struct {
	C []*ring.Poly
	D int
}

// newCiphertext allocates an empty ciphertext with capacity D.
func newCiphertext(d int) *Ciphertext {
	return &Ciphertext{C: make([]*ring.Poly, 0, d), D: d}
}

// Len returns the ciphertext's current length.
func (c *Ciphertext) Len() int {
	return len(c.C)
}

// Copy returns a deep copy of the ciphertext.
func (c *Ciphertext) Copy() *Ciphertext {
	out := &Ciphertext{C: make([]*ring.Poly, len(c.C)), D: c.D}
	for i, p := range c.C {
		out.C[i] = p.Copy()
	}
	return out
}
