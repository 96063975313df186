// Package bigint provides the arbitrary-precision integer and random-bit
// primitives the PLWE ring layer is built on: uniformly random bit strings
// and prime generation, both backed by math/big and crypto/rand.
package bigint

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// RandomBits draws a uniformly random non-negative integer with at most
// bits significant bits: it reads ceil(bits/8) random bytes and masks off
// the bits above the requested width, mirroring the word-oriented
// mask-and-import approach of a C urandom-backed get_random.
func RandomBits(bits int) (*big.Int, error) {
	if bits <= 0 {
		return nil, fmt.Errorf("bigint: RandomBits: bits must be positive, got %d", bits)
	}

	nbytes := (bits + 7) / 8

	buf := make([]byte, nbytes)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("bigint: RandomBits: %w", err)
	}

	// Mask off the high bits of the most significant byte above the
	// requested bit width.
	excess := nbytes*8 - bits
	if excess > 0 {
		buf[0] &= 0xff >> uint(excess)
	}

	z := new(big.Int).SetBytes(buf)
	return z, nil
}

// GeneratePrime samples a random prime of exactly the requested bit length.
// It repeatedly draws a random candidate and advances it with NextPrime
// until the resulting prime's bit length matches bits exactly.
func GeneratePrime(bits int) (*big.Int, error) {
	if bits <= 0 {
		return nil, fmt.Errorf("bigint: GeneratePrime: bits must be positive, got %d", bits)
	}

	for {
		cand, err := RandomBits(bits)
		if err != nil {
			return nil, err
		}

		p := NextPrime(cand)
		if p.BitLen() == bits {
			return p, nil
		}
	}
}

// GeneratePrimeCongruentMod2N generates a prime of at least bits bits
// satisfying q ≡ 1 (mod 2n). It first produces a prime of the requested
// size and then advances it with NextPrime until the congruence holds.
func GeneratePrimeCongruentMod2N(bits, n int) (*big.Int, error) {
	p, err := GeneratePrime(bits)
	if err != nil {
		return nil, err
	}
	return AdvanceToCongruentMod2N(p, n), nil
}

// NextPrime returns the smallest prime greater than or equal to n,
// found by probabilistic primality testing (Baillie-PSW via big.Int.ProbablyPrime).
func NextPrime(n *big.Int) *big.Int {
	cand := new(big.Int).Set(n)

	// Probing for an odd prime candidate; if n <= 2 start the search at 2.
	if cand.Cmp(big.NewInt(2)) <= 0 {
		return big.NewInt(2)
	}

	if cand.Bit(0) == 0 {
		cand.Add(cand, big.NewInt(1))
	}

	two := big.NewInt(2)
	for !cand.ProbablyPrime(40) {
		cand.Add(cand, two)
	}
	return cand
}

// AdvanceToCongruentMod2N walks forward from p through successive primes
// (via NextPrime) until it finds one congruent to 1 modulo 2n. The search
// is unbounded; AdvanceToCongruentMod2NBounded caps the number of candidates.
func AdvanceToCongruentMod2N(p *big.Int, n int) *big.Int {
	return advanceToCongruentMod2N(p, n, -1)
}

// AdvanceToCongruentMod2NBounded behaves like AdvanceToCongruentMod2N but
// tries at most limit additional candidates (limit == -1 means unbounded).
// It returns the best candidate reached and whether the congruence was
// actually achieved.
func AdvanceToCongruentMod2NBounded(p *big.Int, n, limit int) (*big.Int, bool) {
	q := advanceToCongruentMod2N(p, n, limit)
	return q, isCongruentMod2N(q, n)
}

func advanceToCongruentMod2N(p *big.Int, n, limit int) *big.Int {
	cur := new(big.Int).Set(p)
	count := 0
	for !isCongruentMod2N(cur, n) {
		if limit >= 0 && count >= limit {
			break
		}
		cur = NextPrime(new(big.Int).Add(cur, big.NewInt(1)))
		count++
	}
	return cur
}

func isCongruentMod2N(p *big.Int, n int) bool {
	twoN := big.NewInt(int64(2 * n))
	r := new(big.Int).Mod(p, twoN)
	return r.Cmp(big.NewInt(1)) == 0
}

// Center maps v, assumed to lie in [0, m), to its centered representative
// in (-m/2, m/2].
func Center(v, m *big.Int) *big.Int {
	half := new(big.Int).Rsh(m, 1)
	c := new(big.Int).Set(v)
	if c.Cmp(half) > 0 {
		c.Sub(c, m)
	}
	return c
}
