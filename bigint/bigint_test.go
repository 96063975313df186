package bigint_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/plwe-she/she/bigint"
)

func TestRandomBitsRange(t *testing.T) {
	for _, bits := range []int{1, 8, 17, 64, 513} {
		v, err := bigint.RandomBits(bits)
		require.NoError(t, err)
		require.True(t, v.Sign() >= 0)
		require.LessOrEqual(t, v.BitLen(), bits)
	}
}

func TestGeneratePrimeBitLength(t *testing.T) {
	p, err := bigint.GeneratePrime(64)
	require.NoError(t, err)
	require.Equal(t, 64, p.BitLen())
	require.True(t, p.ProbablyPrime(40))
}

func TestGeneratePrimeCongruentMod2N(t *testing.T) {
	const n = 16
	p, err := bigint.GeneratePrimeCongruentMod2N(64, n)
	require.NoError(t, err)
	require.True(t, p.ProbablyPrime(40))

	r := new(big.Int).Mod(p, big.NewInt(2*n))
	require.Equal(t, int64(1), r.Int64())
}

func TestCenter(t *testing.T) {
	q := big.NewInt(100)

	require.Equal(t, big.NewInt(40), bigint.Center(big.NewInt(40), q))
	require.Equal(t, big.NewInt(-1), bigint.Center(big.NewInt(99), q))
	require.Equal(t, big.NewInt(50), bigint.Center(big.NewInt(50), q))
}
