package ring

import (
	"fmt"

	"github.com/plwe-she/she/bigint"
)

// UniformSampler draws ring elements with coefficients uniform over
// [0, 2^qBits). The reference C implementation drew each coefficient with a
// do-while loop that rejected the value 0, which biases the distribution
// away from zero; this implementation produces a proper uniform sample
// instead, as the specification recommends.
type UniformSampler struct {
	ring *Ring
}

// NewUniformSampler returns a sampler for ring elements uniform over
// [0, 2^qBits) before normalization (normalization then folds everything
// into [0, q)).
func NewUniformSampler(r *Ring) *UniformSampler {
	return &UniformSampler{ring: r}
}

// Read fills p with uniformly random coefficients and normalizes it.
func (u *UniformSampler) Read(p *Poly) {
	n := u.ring.N()
	if len(p.Coeffs) != n {
		*p = *u.ring.NewPoly()
	}

	for i := 0; i < n; i++ {
		c, err := bigint.RandomBits(u.ring.QBits())
		if err != nil {
			panic(fmt.Errorf("ring: UniformSampler.Read: %w", err))
		}
		p.Coeffs[i].Set(c)
	}

	u.ring.Normalize(p)
}

// ReadNew allocates and returns a fresh uniformly random ring element.
func (u *UniformSampler) ReadNew() *Poly {
	p := u.ring.NewPoly()
	u.Read(p)
	return p
}
