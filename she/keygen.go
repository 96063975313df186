package she

import (
	"math/big"

	"github.com/plwe-she/she/ring"
	"github.com/plwe-she/she/sampling"
)

// KeyGenerator draws key material for one Settings: it owns the uniform and
// Gaussian samplers that GenKey and GenEvalKey both need. Like the
// underlying samplers it wraps, a KeyGenerator is not safe for concurrent
// use.
type KeyGenerator struct {
	settings *Settings
	ring     *ring.Ring
	uniform  *ring.UniformSampler
	gauss    *ring.GaussianSampler
}

// NewKeyGenerator builds a KeyGenerator for settings, drawing its Gaussian
// noise from floatSampler (a Ziggurat, Box-Muller or Polar sampler).
func NewKeyGenerator(settings *Settings, floatSampler sampling.Sampler) (*KeyGenerator, error) {
	r, err := settings.Ring()
	if err != nil {
		return nil, err
	}

	return &KeyGenerator{
		settings: settings,
		ring:     r,
		uniform:  ring.NewUniformSampler(r),
		gauss:    ring.NewGaussianSampler(r, floatSampler, settings.Sigma()),
	}, nil
}

// GenKey draws a fresh secret key s and its matching public key
// pk = (a0, b0 = a0*s + t*e0).
func (kg *KeyGenerator) GenKey() *Key {
	r := kg.ring
	t := kg.settings.T()

	sk := kg.gauss.ReadNew()
	a0 := kg.uniform.ReadNew()
	e0 := kg.gauss.ReadNew()

	b0 := r.NewPoly()
	r.Mul(b0, a0, sk)

	te0 := r.NewPoly()
	r.ScalarMulUI(te0, e0, t)

	r.Add(b0, b0, te0)
	r.Normalize(b0)

	return &Key{Settings: kg.settings, Sk: sk, PkA: a0, PkB: b0}
}

// GenEvalKey builds the base-T relinearization ladder for key: for
// i = 0..L, (ek0[i], ek1[i]) is a symmetric encryption, under key.Sk, of
// T^i * s^2. L is the number of base-T digits needed to represent q, so the
// L+1 rungs cover every digit a digit-decomposed c2 coefficient (below q)
// can produce, with one rung to spare: its top digit is always zero.
func (kg *KeyGenerator) GenEvalKey(key *Key, t int) (*EvalKey, error) {
	if t < 2 || t > 62 {
		return nil, ErrInvalidBase
	}

	r := kg.ring

	l := digitCount(kg.settings.Q(), t)

	s2 := r.NewPoly()
	r.Mul(s2, key.Sk, key.Sk)
	r.Normalize(s2)

	ek0 := make([]*ring.Poly, l+1)
	ek1 := make([]*ring.Poly, l+1)

	tBase := big.NewInt(int64(t))
	tPow := big.NewInt(1)
	enc := NewEncryptor(kg.settings, kg.gauss, nil, kg.uniform)

	for i := 0; i <= l; i++ {
		m := r.NewPoly()
		r.ScalarMulBig(m, s2, tPow)

		c, err := enc.encryptSymmetricPoly(key, m)
		if err != nil {
			return nil, err
		}
		ek0[i] = c.C[0]
		ek1[i] = c.C[1]

		tPow = new(big.Int).Mul(tPow, tBase)
	}

	return &EvalKey{T: t, L: l, Ek0: ek0, Ek1: ek1}, nil
}

// digitCount returns the number of base-b digits needed to represent the
// positive integer v (the exact analogue of GMP's mpz_sizeinbase / FLINT's
// fmpz_sizeinbase for the bases this scheme supports).
func digitCount(v *big.Int, b int) int {
	return len(v.Text(b))
}
