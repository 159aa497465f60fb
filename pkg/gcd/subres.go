package gcd

import (
	"fmt"
	"math/big"

	"github.com/taurusgroup/polygcd/pkg/math/arith"
	"github.com/taurusgroup/polygcd/pkg/math/polynomial"
)

// Subresultant computes gcds with the subresultant polynomial remainder sequence.
type Subresultant struct{}

// Gcd implements Algorithm.
func (Subresultant) Gcd(P, S *polynomial.Integer) (*polynomial.Integer, error) {
	if S.IsZero() {
		return P, nil
	}
	if P.IsZero() {
		return S, nil
	}
	if err := checkInputs(P, S); err != nil {
		return nil, err
	}
	a, b := polynomial.Abs(P), polynomial.Abs(S)
	if b.Degree(0) > a.Degree(0) {
		a, b = b, a
	}
	ca, cb := polynomial.Content(a), polynomial.Content(b)
	c := arith.Gcd(ca, cb)
	a, _ = polynomial.QuoScalar(a, ca)
	b, _ = polynomial.QuoScalar(b, cb)
	if a.IsOne() || b.IsOne() {
		return constant(c), nil
	}

	g, h := big.NewInt(1), big.NewInt(1)
	for !b.IsZero() {
		delta := a.Degree(0) - b.Degree(0)
		r := a.PseudoRemainder(b)
		a = b
		if r.IsZero() {
			break
		}
		z := new(big.Int).Mul(g, arith.Pow(h, delta))
		var err error
		if b, err = polynomial.QuoScalar(r, z); err != nil {
			return nil, fmt.Errorf("gcd: subresultant: %w", err)
		}
		g = a.LeadingCoefficient()
		if delta > 0 {
			hn, ok := arith.Z.Divide(arith.Pow(g, delta), arith.Pow(h, delta-1))
			if !ok {
				return nil, fmt.Errorf("gcd: subresultant: %w: %v by %v", polynomial.ErrInexact, g, h)
			}
			h = hn
		}
	}
	return polynomial.Abs(polynomial.PrimitivePart(a).Scale(c)), nil
}
