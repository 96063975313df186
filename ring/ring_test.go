package ring_test

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/plwe-she/she/ring"
	"github.com/plwe-she/she/sampling"
)

// coeffStrings renders a Poly's coefficients as decimal strings, so
// mismatches show up per-coefficient under cmp.Diff instead of as an
// opaque "not equal".
func coeffStrings(p *ring.Poly) []string {
	out := make([]string, len(p.Coeffs))
	for i, c := range p.Coeffs {
		out[i] = c.String()
	}
	return out
}

func testRing(t *testing.T, n int, q int64) *ring.Ring {
	t.Helper()
	r, err := ring.NewRing(n, big.NewInt(q))
	require.NoError(t, err)
	return r
}

func TestNewRingRejectsBadDegree(t *testing.T) {
	_, err := ring.NewRing(3, big.NewInt(97))
	require.Error(t, err)
}

func TestAddSub(t *testing.T) {
	r := testRing(t, 4, 97)

	a := r.NewPoly()
	b := r.NewPoly()
	a.Coeffs[0].SetInt64(10)
	a.Coeffs[1].SetInt64(20)
	b.Coeffs[0].SetInt64(5)
	b.Coeffs[2].SetInt64(3)

	sum := r.NewPoly()
	r.Add(sum, a, b)
	r.Normalize(sum)

	require.Equal(t, int64(15), sum.Coeffs[0].Int64())
	require.Equal(t, int64(20), sum.Coeffs[1].Int64())
	require.Equal(t, int64(3), sum.Coeffs[2].Int64())

	diff := r.NewPoly()
	r.Sub(diff, a, b)
	r.Normalize(diff)
	require.Equal(t, int64(5), diff.Coeffs[0].Int64())
}

func TestMulNegacyclicReduction(t *testing.T) {
	// In Z_97[x]/(x^4+1): x^3 * x^2 = x^5 = -x.
	r := testRing(t, 4, 97)

	a := r.NewPoly()
	a.Coeffs[3].SetInt64(1)

	b := r.NewPoly()
	b.Coeffs[2].SetInt64(1)

	out := r.NewPoly()
	r.Mul(out, a, b)
	r.Normalize(out)

	expected := r.NewPoly()
	expected.Coeffs[1].SetInt64(96) // -1 mod 97

	require.True(t, out.Equal(expected))
}

func TestMulNegacyclicReductionCoefficients(t *testing.T) {
	r := testRing(t, 4, 97)

	a := r.NewPoly()
	a.Coeffs[3].SetInt64(1)
	b := r.NewPoly()
	b.Coeffs[2].SetInt64(1)

	out := r.NewPoly()
	r.Mul(out, a, b)
	r.Normalize(out)

	want := []string{"0", "96", "0", "0"}
	if diff := cmp.Diff(want, coeffStrings(out)); diff != "" {
		t.Errorf("x^3*x^2 coefficients mismatch (-want +got):\n%s", diff)
	}
}

func TestMulAliasing(t *testing.T) {
	r := testRing(t, 4, 97)

	a := r.NewPoly()
	a.Coeffs[0].SetInt64(2)
	a.Coeffs[1].SetInt64(3)

	expected := r.NewPoly()
	r.Mul(expected, a, a)
	r.Normalize(expected)

	// Aliasing dst with a must not corrupt the operands mid-computation.
	aliased := a.Copy()
	r.Mul(aliased, aliased, aliased)
	r.Normalize(aliased)

	require.True(t, aliased.Equal(expected))
}

func TestScalarMul(t *testing.T) {
	r := testRing(t, 4, 97)

	a := r.NewPoly()
	a.Coeffs[0].SetInt64(10)

	out := r.NewPoly()
	r.ScalarMulUI(out, a, 5)
	r.Normalize(out)
	require.Equal(t, int64(50), out.Coeffs[0].Int64())

	r.ScalarMulSI(out, a, -1)
	r.Normalize(out)
	require.Equal(t, int64(87), out.Coeffs[0].Int64())
}

func TestNormalizeIdempotent(t *testing.T) {
	r := testRing(t, 4, 97)

	p := r.NewPoly()
	p.Coeffs[0].SetInt64(250)
	p.Coeffs[3].SetInt64(-5)

	r.Normalize(p)
	once := p.Copy()
	r.Normalize(p)

	require.True(t, once.Equal(p))
}

func TestModTCenteredRange(t *testing.T) {
	r := testRing(t, 4, 1009)

	p := r.NewPoly()
	p.Coeffs[0].SetInt64(1008) // q-1, centers to -1
	p.Coeffs[1].SetInt64(3)
	p.Coeffs[2].SetInt64(500)

	r.ModT(p, 10)

	for _, c := range p.Coeffs {
		v := c.Int64()
		require.True(t, v > -5 && v <= 5, "coefficient %d out of centered range", v)
	}
}

func TestUniformSamplerRange(t *testing.T) {
	r := testRing(t, 8, 1009)
	s := ring.NewUniformSampler(r)

	p := s.ReadNew()
	require.Equal(t, 8, p.N())
	for _, c := range p.Coeffs {
		require.True(t, c.Sign() >= 0)
		require.True(t, c.Cmp(r.Q()) < 0)
	}
}

func TestGaussianSamplerNormalizes(t *testing.T) {
	r := testRing(t, 8, 1009)
	z, err := sampling.NewZigguratSampler()
	require.NoError(t, err)

	g := ring.NewGaussianSampler(r, z, 8.0)
	p := g.ReadNew()
	for _, c := range p.Coeffs {
		require.True(t, c.Sign() >= 0)
		require.True(t, c.Cmp(r.Q()) < 0)
	}
}
