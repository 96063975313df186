package she

import "github.com/plwe-she/she/ring"

// Decryptor recovers the plaintext ring element encrypted in a Ciphertext.
type Decryptor struct {
	settings *Settings
	ring     *ring.Ring
	key      *Key
}

// NewDecryptor builds a Decryptor that decrypts with key's secret key.
func NewDecryptor(settings *Settings, key *Key) (*Decryptor, error) {
	r, err := settings.Ring()
	if err != nil {
		return nil, err
	}
	return &Decryptor{settings: settings, ring: r, key: key}, nil
}

// Decrypt evaluates c0 + c1*s + c2*s^2 + ... + c(L-1)*s^(L-1) at the
// decryptor's secret key, then applies the centered mod-t reduction that
// recovers the encoded plaintext.
func (d *Decryptor) Decrypt(ct *Ciphertext) *ring.Poly {
	r := d.ring
	s := d.key.Sk

	m := ct.C[0].Copy()

	if len(ct.C) > 1 {
		product := r.NewPoly()
		r.Mul(product, ct.C[1], s)
		r.Add(m, m, product)
	}

	sPow := s.Copy()
	for i := 2; i < len(ct.C); i++ {
		next := r.NewPoly()
		r.Mul(next, sPow, s)
		sPow = next
		r.Normalize(sPow)

		product := r.NewPoly()
		r.Mul(product, ct.C[i], sPow)
		r.Add(m, m, product)
	}

	r.Normalize(m)
	r.ModT(m, d.settings.T())
	return m
}
