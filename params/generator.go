package params

import (
	"fmt"
	"math"
	"math/big"

	"github.com/ALTree/bigfloat"

	"github.com/plwe-she/she/bigint"
	"github.com/plwe-she/she/she"
)

// floatPrec is the working precision, in bits, for the arbitrary-precision
// float arithmetic used while searching for q: q itself can run to several
// hundred bits, and raising an n^1.5-sized base to the D+2 power would
// overflow float64 long before q does, so every computation here is done
// in a big.Float wide enough to hold the final modulus with headroom.
const floatPrec = 4096

// GenerateParameters runs the scheme's parameter search (Algorithm 1 of the
// generator): starting from n=2 and doubling, it picks the smallest
// encoding base b that keeps root's estimated polynomial degree under n,
// derives the plaintext modulus t and ciphertext capacity D from the
// tree's shape, searches for a modulus q large enough to keep the
// decryption noise bound beneath q/2 after D multiplications, and repeats
// with a larger n until the resulting parameters meet securityLevel bits
// of security.
//
// improvementsFactor bounds how many extra candidate primes are tried,
// beyond the first one found, in search of a q congruent to 1 mod 2n
// (which keeps the ring's arithmetic friendly to further optimization);
// -1 means unbounded.
func GenerateParameters(root *Node, securityLevel int, improvementsFactor int) (*she.Settings, error) {
	maxM := maxLeafM(root)
	if maxM <= 0 {
		return nil, fmt.Errorf("params: GenerateParameters: tree has no positive-valued leaves")
	}

	var (
		n int64 = 1
		t uint64
		b int
		d int
		q *big.Int
	)

	const stdDeviation = 8.0

	currentSecurityLevel := securityLevel - 1
	for currentSecurityLevel < securityLevel {
		n <<= 1

		b = max2(int(math.Ceil(math.Pow(float64(maxM), 1.0/float64(n)))), 2) - 1
		for {
			b++
			estimatePoly(root, n, b)
			if root.Degree < uint64(n) {
				break
			}
		}

		t = nextPowerOfTwoAbove(root.InfNorm)

		d = 2 + computeD(root)

		q = candidateModulus(t, stdDeviation, n, d, root.InfNorm)
		q = bigint.NextPrime(q)

		if improved, ok := bigint.AdvanceToCongruentMod2NBounded(q, int(n), improvementsFactor); ok {
			q = improved
		}

		currentSecurityLevel = estimateSecurityLevel(n, root.InfNorm, q)
	}

	return she.NewSettings(int(n), q, t, b, d)
}

// candidateModulus computes 2 * l_inf * (t * sigma * n^1.5)^(D+2), the
// reference generator's lower bound on q, in arbitrary-precision
// floating point.
func candidateModulus(t uint64, sigma float64, n int64, d int, infNorm uint64) *big.Int {
	base := new(big.Float).SetPrec(floatPrec).SetUint64(t)
	base.Mul(base, new(big.Float).SetPrec(floatPrec).SetFloat64(sigma))

	nPow := bigfloat.Pow(
		new(big.Float).SetPrec(floatPrec).SetInt64(n),
		new(big.Float).SetPrec(floatPrec).SetFloat64(1.5),
	)
	base.Mul(base, nPow)

	res := bigfloat.Pow(base, new(big.Float).SetPrec(floatPrec).SetInt64(int64(d+2)))
	res.Mul(res, new(big.Float).SetPrec(floatPrec).SetUint64(infNorm))
	res.Mul(res, new(big.Float).SetPrec(floatPrec).SetInt64(2))

	q, _ := res.Int(nil)
	if q.Sign() <= 0 {
		q = big.NewInt(2)
	}
	return q
}

// estimateSecurityLevel approximates the achieved security level, in bits,
// as (1.8 * (2n + l)^2) / (n * qBits) - 140, where l is the bit length of
// the tree's infinity norm bound.
func estimateSecurityLevel(n int64, infNorm uint64, q *big.Int) int {
	l := float64(bitLen(infNorm))
	twoN := float64(2 * n)
	qBits := float64(q.BitLen())

	res := 1.8 * (twoN + l) * (twoN + l)
	res /= float64(n) * qBits
	res -= 140

	return int(res)
}

// nextPowerOfTwoAbove returns a power of two strictly greater than v:
// 1 << (1 + floor(log2(v+1))), i.e. 1 << bitLen(v+1), the smallest power of
// two strictly greater than v+1 (so v = 3 gives 8, not 4).
func nextPowerOfTwoAbove(v uint64) uint64 {
	return 1 << uint(bitLen(v+1))
}

func bitLen(v uint64) int {
	n := 0
	for v > 0 {
		n++
		v >>= 1
	}
	return n
}

