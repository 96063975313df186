// Package encoding converts between arbitrary-precision non-negative
// integers and the base-b digit polynomials the PLWE scheme encrypts.
package encoding

import (
	"fmt"
	"math/big"

	"github.com/plwe-she/she/ring"
)

// MinBase and MaxBase bound the supported encoding base, per the scheme's
// restriction to non-negative bases.
const (
	MinBase = 2
	MaxBase = 62
)

// ValidateBase reports an error if b lies outside [MinBase, MaxBase].
func ValidateBase(b int) error {
	if b < MinBase || b > MaxBase {
		return fmt.Errorf("encoding: base %d outside supported range [%d, %d]", b, MinBase, MaxBase)
	}
	return nil
}

// Encode writes the base-b digit expansion of x (least-significant digit
// first) into the coefficients of a ring element: coefficient i equals
// floor(x / b^i) mod b. x must be non-negative, and its digit count
// (ceil(log_b(x+1))) must not exceed the ring degree, or decoding will not
// invert the encoding.
func Encode(r *ring.Ring, x *big.Int, b int) (*ring.Poly, error) {
	if err := ValidateBase(b); err != nil {
		return nil, err
	}
	if x.Sign() < 0 {
		return nil, fmt.Errorf("encoding: Encode: x must be non-negative, got %s", x.String())
	}

	p := r.NewPoly()

	base := big.NewInt(int64(b))
	scalar := new(big.Int).Set(x)
	remainder := new(big.Int)

	for i := 0; i < r.N() && scalar.Sign() != 0; i++ {
		scalar.QuoRem(scalar, base, remainder)
		p.Coeffs[i].Set(remainder)
	}

	if scalar.Sign() != 0 {
		return nil, fmt.Errorf("encoding: Encode: value %s needs more than %d base-%d digits", x.String(), r.N(), b)
	}

	return p, nil
}

// Decode reconstructs an integer from a ring element's coefficients,
// interpreted as signed (centered) digits: sum_i coeff_i * b^i. Feeding it
// the centered representatives produced by a decryption's mod-t reduction
// allows negative results to come out in a two's-complement-like fashion
// when b=2.
func Decode(p *ring.Poly, b int) (*big.Int, error) {
	if err := ValidateBase(b); err != nil {
		return nil, err
	}

	out := new(big.Int)
	base := big.NewInt(int64(b))
	power := big.NewInt(1)

	term := new(big.Int)
	for _, c := range p.Coeffs {
		term.Mul(c, power)
		out.Add(out, term)
		power.Mul(power, base)
	}

	return out, nil
}
