package ring

// Sampler draws a random Poly belonging to a Ring.
type Sampler interface {
	Read(p *Poly)
	ReadNew() *Poly
}
