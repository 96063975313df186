package encoding_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/plwe-she/she/encoding"
	"github.com/plwe-she/she/ring"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	r, err := ring.NewRing(64, big.NewInt(1000003))
	require.NoError(t, err)

	for _, x := range []int64{0, 1, 42, 1000, 1<<40 - 1} {
		p, err := encoding.Encode(r, big.NewInt(x), 2)
		require.NoError(t, err)

		got, err := encoding.Decode(p, 2)
		require.NoError(t, err)

		require.Equal(t, big.NewInt(x), got)
	}
}

func TestEncode42Base2MatchesSpec(t *testing.T) {
	// 42 = x + x^3 + x^5 in base 2 (evaluated at x = 2).
	r, err := ring.NewRing(8, big.NewInt(97))
	require.NoError(t, err)

	p, err := encoding.Encode(r, big.NewInt(42), 2)
	require.NoError(t, err)

	expected := []int64{0, 1, 0, 1, 0, 1, 0, 0}
	for i, e := range expected {
		require.Equal(t, e, p.Coeffs[i].Int64(), "coefficient %d", i)
	}
}

func TestEncodeRejectsInvalidBase(t *testing.T) {
	r, err := ring.NewRing(8, big.NewInt(97))
	require.NoError(t, err)

	_, err = encoding.Encode(r, big.NewInt(5), 1)
	require.Error(t, err)

	_, err = encoding.Encode(r, big.NewInt(5), 63)
	require.Error(t, err)
}

func TestEncodeRejectsNegative(t *testing.T) {
	r, err := ring.NewRing(8, big.NewInt(97))
	require.NoError(t, err)

	_, err = encoding.Encode(r, big.NewInt(-1), 2)
	require.Error(t, err)
}

func TestEncodeOverflowsRingDegree(t *testing.T) {
	r, err := ring.NewRing(4, big.NewInt(97))
	require.NoError(t, err)

	_, err = encoding.Encode(r, big.NewInt(1<<10), 2)
	require.Error(t, err)
}
