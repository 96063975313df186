package she

import (
	"github.com/plwe-she/she/ring"
	"github.com/plwe-she/she/sampling"
)

// Encryptor produces fresh length-2 ciphertexts, either asymmetrically
// (against a Key's public half) or symmetrically (against its secret
// half). It owns the Gaussian and uniform samplers the two encryption
// modes draw their randomness from, so, like those samplers, it is not
// safe for concurrent use: callers that need to encrypt from more than one
// goroutine should construct one Encryptor per goroutine.
type Encryptor struct {
	settings *Settings
	ring     *ring.Ring

	gauss      *ring.GaussianSampler // sigma: v, e', e (symmetric noise)
	gaussPrime *ring.GaussianSampler // sigmaPrime: e'' (asymmetric second noise term)
	uniform    *ring.UniformSampler
}

// NewEncryptor builds an Encryptor for settings. gaussPrime may be nil if
// the caller only ever uses EncryptSymmetric (it is unused on that path).
func NewEncryptor(settings *Settings, gauss, gaussPrime *ring.GaussianSampler, uniform *ring.UniformSampler) *Encryptor {
	r, _ := settings.Ring()
	return &Encryptor{settings: settings, ring: r, gauss: gauss, gaussPrime: gaussPrime, uniform: uniform}
}

// NewEncryptorWithSamplers is a convenience constructor that builds the
// Gaussian samplers from a single underlying float sampler plus its
// sigma-prime counterpart, and a fresh uniform sampler.
func NewEncryptorWithSamplers(settings *Settings, floatSampler, floatSamplerPrime sampling.Sampler) (*Encryptor, error) {
	r, err := settings.Ring()
	if err != nil {
		return nil, err
	}
	gauss := ring.NewGaussianSampler(r, floatSampler, settings.Sigma())
	var gaussPrime *ring.GaussianSampler
	if floatSamplerPrime != nil {
		gaussPrime = ring.NewGaussianSampler(r, floatSamplerPrime, settings.SigmaPrime())
	}
	return NewEncryptor(settings, gauss, gaussPrime, ring.NewUniformSampler(r)), nil
}

// Encrypt asymmetrically encrypts a plaintext ring element m under key's
// public key:
//
//	v, e'  <- gauss(sigma)
//	e''    <- gauss(sigmaPrime)
//	a = pkA*v + t*e'
//	b = pkB*v + t*e''
//	c0 = b + m
//	c1 = -a
func (e *Encryptor) Encrypt(key *Key, m *ring.Poly) (*Ciphertext, error) {
	if e.gaussPrime == nil {
		return nil, ErrLengthUnsupported
	}
	if e.settings.D() < 2 {
		return nil, ErrCiphertextFull
	}

	r := e.ring
	t := e.settings.T()

	v := e.gauss.ReadNew()

	a := r.NewPoly()
	r.Mul(a, key.PkA, v)
	b := r.NewPoly()
	r.Mul(b, key.PkB, v)

	ePrime := e.gauss.ReadNew()
	tEPrime := r.NewPoly()
	r.ScalarMulUI(tEPrime, ePrime, t)
	r.Add(a, a, tEPrime)

	ePrime2 := e.gaussPrime.ReadNew()
	tEPrime2 := r.NewPoly()
	r.ScalarMulUI(tEPrime2, ePrime2, t)
	r.Add(b, b, tEPrime2)

	c0 := r.NewPoly()
	r.Add(c0, b, m)
	c1 := r.NewPoly()
	r.ScalarMulSI(c1, a, -1)

	r.Normalize(c0)
	r.Normalize(c1)

	ct := newCiphertext(e.settings.D())
	ct.C = append(ct.C, c0, c1)
	return ct, nil
}

// EncryptSymmetric symmetrically encrypts a plaintext ring element m under
// key's secret key:
//
//	a <- uniform
//	e <- gauss(sigma)
//	c0 = a*s + t*e + m
//	c1 = -a
func (e *Encryptor) EncryptSymmetric(key *Key, m *ring.Poly) (*Ciphertext, error) {
	ct, err := e.encryptSymmetricPoly(key, m)
	if err != nil {
		return nil, err
	}
	return ct, nil
}

func (e *Encryptor) encryptSymmetricPoly(key *Key, m *ring.Poly) (*Ciphertext, error) {
	if e.settings.D() < 2 {
		return nil, ErrCiphertextFull
	}

	r := e.ring
	t := e.settings.T()

	a := e.uniform.ReadNew()

	te := r.NewPoly()
	r.ScalarMulUI(te, e.gauss.ReadNew(), t)

	as := r.NewPoly()
	r.Mul(as, key.Sk, a)

	c0 := r.NewPoly()
	r.Add(c0, as, te)
	r.Add(c0, c0, m)

	c1 := r.NewPoly()
	r.ScalarMulSI(c1, a, -1)

	r.Normalize(c0)
	r.Normalize(c1)

	ct := newCiphertext(e.settings.D())
	ct.C = append(ct.C, c0, c1)
	return ct, nil
}
