// Package sampling implements the discrete Gaussian error distribution used
// throughout the PLWE scheme. Three interchangeable algorithms are provided:
// Ziggurat (the reference choice), Box-Muller and Polar. Each one keeps
// module-level-style mutable state (rejection tables, cached second
// variates, PRNG seeds) scoped to its own instance rather than to package
// globals, so that concurrent evaluations can each own a private sampler.
package sampling

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// Sampler draws IID samples from a centered Gaussian distribution N(0, sigma^2).
//
// Implementations are NOT safe for concurrent use: each keeps per-instance
// mutable state (a cached variate, a table walk, an internal PRNG seed).
// Callers that need Gaussian samples from more than one goroutine must
// construct one Sampler per goroutine.
type Sampler interface {
	Sample(sigma float64) float64
}

// uniformUint32 reads 4 bytes from the system CSPRNG and interprets them as
// a big-endian uint32. It is the Go analogue of reading 32 bits from
// /dev/urandom.
func uniformUint32() (uint32, error) {
	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("sampling: uniformUint32: %w", err)
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}

// uniformOpenUnit returns a uniformly random float64 in (0, 1), read fresh
// from the CSPRNG. 32 bits of randomness is sufficient precision for the
// standard deviations this scheme uses (sigma = 8, or n*8); the bound is on
// the distribution's shape, not on security, which rests entirely on the
// ring-LWE hardness assumption.
func uniformOpenUnit() float64 {
	const max = float64(1<<32 + 1)
	v, err := uniformUint32()
	if err != nil {
		// The CSPRNG is assumed never to fail in this environment; a
		// failure here means the OS entropy source itself is broken.
		panic(fmt.Errorf("sampling: CSPRNG failure: %w", err))
	}
	return (float64(v) + 1) / max
}

// uniformSigned returns a uniformly random float64 in (-1, 1).
func uniformSigned() float64 {
	return uniformOpenUnit()*2.0 - 1.0
}
