package gcd

import (
	"fmt"

	"github.com/cronokirby/saferith"
	"github.com/taurusgroup/polygcd/pkg/math/polynomial"
)

// witness is a coprime factorization C ≡ g⋅cofactor (mod p) of one operand,
// together with the Bezout relation s⋅g + t⋅cofactor = 1 over ℤₚ.
type witness struct {
	image *image
	// dividend is the operand C being factored.
	dividend    *polynomial.Integer
	g, cofactor *polynomial.Modular
	s, t        *polynomial.Modular
}

// witness computes the monic gcd of the image and pairs it with a cofactor it is coprime to,
// trying r first and q second.
//
// constant is true when the gcd modulo p is a constant, in which case the inputs are coprime.
func (im *image) witness(ops *operands) (w *witness, constant bool, err error) {
	f := im.field
	g, err := polynomial.Gcd[*saferith.Nat](f, im.r, im.q)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", errBadPrime, err)
	}
	if g.IsConstant() {
		return nil, true, nil
	}
	candidates := []struct {
		dividend *polynomial.Integer
		image    *polynomial.Modular
	}{
		{ops.r, im.r},
		{ops.q, im.q},
	}
	for _, c := range candidates {
		cofactor, _, err := polynomial.DivRem[*saferith.Nat](f, c.image, g)
		if err != nil {
			return nil, false, fmt.Errorf("%w: %v", errBadPrime, err)
		}
		one, s, t, err := polynomial.ExtendedGcd[*saferith.Nat](f, g, cofactor)
		if err != nil {
			return nil, false, fmt.Errorf("%w: %v", errBadPrime, err)
		}
		if one.IsOne() {
			return &witness{
				image:    im,
				dividend: c.dividend,
				g:        g,
				cofactor: cofactor,
				s:        s,
				t:        t,
			}, false, nil
		}
	}
	return nil, false, fmt.Errorf("%w: gcd modulo %d shares a factor with both cofactors", errBadPrime, im.prime)
}
