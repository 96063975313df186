package ring

import (
	"math"

	"github.com/plwe-she/she/sampling"
)

// GaussianSampler draws ring elements with coefficients independently
// sampled from a discrete Gaussian: each coefficient is round(N(0,
// sigma^2)), truncated to a signed integer and reduced into [0, q) by
// normalization. It wraps a sampling.Sampler (Ziggurat, Box-Muller, or
// Polar), so it inherits that sampler's statefulness: a GaussianSampler is
// not safe for concurrent use.
type GaussianSampler struct {
	ring    *Ring
	sampler sampling.Sampler
	sigma   float64
}

// NewGaussianSampler returns a sampler that draws ring elements from
// N(0, sigma^2) using the given underlying float sampler.
func NewGaussianSampler(r *Ring, sampler sampling.Sampler, sigma float64) *GaussianSampler {
	return &GaussianSampler{ring: r, sampler: sampler, sigma: sigma}
}

// Read fills p with Gaussian-distributed coefficients and normalizes it.
func (g *GaussianSampler) Read(p *Poly) {
	n := g.ring.N()
	if len(p.Coeffs) != n {
		*p = *g.ring.NewPoly()
	}

	for i := 0; i < n; i++ {
		v := int64(math.Round(g.sampler.Sample(g.sigma)))
		p.Coeffs[i].SetInt64(v)
	}

	g.ring.Normalize(p)
}

// ReadNew allocates and returns a fresh Gaussian-distributed ring element.
func (g *GaussianSampler) ReadNew() *Poly {
	p := g.ring.NewPoly()
	g.Read(p)
	return p
}
