package sampling_test

import (
	"testing"

	"github.com/montanaflynn/stats"
	"github.com/stretchr/testify/require"

	"github.com/plwe-she/she/sampling"
)

// TestZigguratMoments checks that a large batch of Ziggurat samples at
// sigma=8 has empirical mean and standard deviation within a few standard
// errors of the target distribution.
func TestZigguratMoments(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping large-sample statistical test in -short mode")
	}

	z, err := sampling.NewZigguratSampler()
	require.NoError(t, err)

	const (
		n     = 1_000_000
		sigma = 8.0
	)

	samples := make(stats.Float64Data, n)
	for i := range samples {
		samples[i] = z.Sample(sigma)
	}

	mean, err := samples.Mean()
	require.NoError(t, err)

	stddev, err := samples.StandardDeviation()
	require.NoError(t, err)

	require.InDelta(t, 0.0, mean, 0.1)
	require.InDelta(t, sigma, stddev, 0.08)
}

func TestSamplersProduceVariedOutput(t *testing.T) {
	samplers := map[string]sampling.Sampler{
		"ziggurat":   mustZiggurat(t),
		"box-muller": sampling.NewBoxMullerSampler(),
		"polar":      sampling.NewPolarSampler(),
	}

	for name, s := range samplers {
		s := s
		t.Run(name, func(t *testing.T) {
			seen := make(map[float64]bool)
			for i := 0; i < 64; i++ {
				seen[s.Sample(8.0)] = true
			}
			require.Greater(t, len(seen), 1, "sampler produced a constant stream")
		})
	}
}

func mustZiggurat(t *testing.T) *sampling.ZigguratSampler {
	t.Helper()
	z, err := sampling.NewZigguratSampler()
	require.NoError(t, err)
	return z
}
