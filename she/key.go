package she

import "github.com/plwe-she/she/ring"

// Key is a secret/public key pair for the scheme: Sk is the secret ring
// element, and (PkA, PkB) is the corresponding public key, satisfying
// PkB = PkA*Sk + t*e0 (mod q, f) for some small error e0 sampled at
// generation time.
type Key struct {
	Settings *Settings
	Sk       *ring.Poly
	PkA      *ring.Poly
	PkB      *ring.Poly
}

// EvalKey is the relinearization ladder: for a digit-decomposition base T
// and ladder length L = len(Ek0)-1, Ek0[i]/Ek1[i] is a symmetric
// encryption of T^i * s^2, for i = 0..L.
type EvalKey struct {
	T   int
	L   int
	Ek0 []*ring.Poly
	Ek1 []*ring.Poly
}
