// Package she implements the somewhat-homomorphic encryption scheme built
// on top of the PLWE ring: key generation, asymmetric and symmetric
// encryption, the homomorphic evaluation operations (addition,
// multiplication, plaintext combination), decryption, and the
// digit-decomposition relinearization that shrinks a degree-2 ciphertext
// back down to degree-1 using an evaluation key.
package she

import (
	"fmt"
	"math/big"

	"github.com/plwe-she/she/ring"
)

// Sigma is the fixed standard deviation of the small error distribution.
const Sigma = 8.0

// Settings bundles the scheme parameters (n, q, t, b, D) plus the two
// derived Gaussian standard deviations. Once constructed, a Settings is
// immutable and shared, read-only, by every Key, Ciphertext and operation
// built on top of it.
type Settings struct {
	n     int
	q     *big.Int
	qBits int
	t     uint64
	b     int
	d     int

	sigma      float64
	sigmaPrime float64
}

// NewSettings derives a Settings from (n, q, t, b, D) and validates it:
// n must be a power of two, q must be a prime strictly greater than t, and
// b must be at least 2. sigma is fixed at 8.0 and sigmaPrime (the error
// scale used for one of the public-key encryption noise terms) is derived
// as n*sigma.
func NewSettings(n int, q *big.Int, t uint64, b int, d int) (*Settings, error) {
	s := &Settings{
		n:     n,
		q:     new(big.Int).Set(q),
		qBits: q.BitLen(),
		t:     t,
		b:     b,
		d:     d,

		sigma:      Sigma,
		sigmaPrime: Sigma * float64(n),
	}

	if code := s.Check(); code != 0 {
		return nil, fmt.Errorf("she: NewSettings: invalid settings (code %d): %s", code, checkCodeMessage(code))
	}

	return s, nil
}

// N returns the ring degree.
func (s *Settings) N() int { return s.n }

// Q returns the coefficient modulus.
func (s *Settings) Q() *big.Int { return s.q }

// QBits returns ceil(log2(q)).
func (s *Settings) QBits() int { return s.qBits }

// T returns the plaintext modulus.
func (s *Settings) T() uint64 { return s.t }

// B returns the encoding base.
func (s *Settings) B() int { return s.b }

// D returns the maximum ciphertext length.
func (s *Settings) D() int { return s.d }

// Sigma returns the small-error standard deviation.
func (s *Settings) Sigma() float64 { return s.sigma }

// SigmaPrime returns the large-error standard deviation (n*sigma) used for
// one of the asymmetric-encryption noise terms.
func (s *Settings) SigmaPrime() float64 { return s.sigmaPrime }

// Ring constructs the Z_q[x]/(x^n+1) ring these settings describe.
func (s *Settings) Ring() (*ring.Ring, error) {
	return ring.NewRing(s.n, s.q)
}

// Settings invalidity codes, matching the scheme's error contract: 0 means
// OK, any other value identifies which invariant failed.
const (
	CheckOK                = 0
	CheckNNotPowerOfTwo    = 1
	CheckQBitsInconsistent = 2
	CheckQNotPrime         = 3
	CheckTNotLessThanQ     = 4
	CheckBaseTooSmall      = 5
)

// Check validates the receiver's invariants and returns 0 if it is valid,
// or one of the CheckXxx codes identifying the first violated invariant.
func (s *Settings) Check() int {
	if s.n == 0 || (s.n&(s.n-1)) != 0 {
		return CheckNNotPowerOfTwo
	}

	if s.q.BitLen() != s.qBits {
		return CheckQBitsInconsistent
	}

	if !s.q.ProbablyPrime(50) {
		return CheckQNotPrime
	}

	tBig := new(big.Int).SetUint64(s.t)
	if s.q.Cmp(tBig) <= 0 {
		return CheckTNotLessThanQ
	}

	if s.b < 2 {
		return CheckBaseTooSmall
	}

	return CheckOK
}

func checkCodeMessage(code int) string {
	switch code {
	case CheckNNotPowerOfTwo:
		return "n is not a power of two"
	case CheckQBitsInconsistent:
		return "stored qBits does not match bit length of q"
	case CheckQNotPrime:
		return "q is not prime"
	case CheckTNotLessThanQ:
		return "t is not less than q"
	case CheckBaseTooSmall:
		return "b is less than 2"
	default:
		return "ok"
	}
}
