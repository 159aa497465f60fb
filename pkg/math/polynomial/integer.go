package polynomial

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/cronokirby/saferith"
	"github.com/taurusgroup/polygcd/pkg/math/arith"
	"github.com/taurusgroup/polygcd/pkg/math/modulus"
)

// ErrInexact is returned when a scalar division leaves a remainder.
var ErrInexact = errors.New("polynomial: inexact division")

// Integer is a polynomial with coefficients in ℤ.
type Integer = Polynomial[*big.Int]

// Modular is a polynomial with coefficients in some ℤₘ.
type Modular = Polynomial[*saferith.Nat]

// Ints returns the univariate integer polynomial a₀ + a₁⋅x + … + aₙ⋅xⁿ.
func Ints(coefficients ...int64) *Integer {
	cs := make([]*big.Int, len(coefficients))
	for i, c := range coefficients {
		cs[i] = big.NewInt(c)
	}
	return Univariate[*big.Int](arith.Z, cs...)
}

// Content returns the non-negative gcd of the coefficients of p, or 0 for p = 0.
func Content(p *Integer) *big.Int {
	c := new(big.Int)
	for _, t := range p.terms {
		c = arith.Gcd(c, t.Coefficient)
		if c.Cmp(big.NewInt(1)) == 0 {
			break
		}
	}
	return c
}

// Abs returns p or -p, whichever has a positive leading coefficient.
func Abs(p *Integer) *Integer {
	if p.LeadingCoefficient().Sign() < 0 {
		return p.Neg()
	}
	return p
}

// PrimitivePart returns p divided by its content, with a positive leading coefficient.
func PrimitivePart(p *Integer) *Integer {
	if p.IsZero() {
		return p
	}
	c := Content(p)
	if p.LeadingCoefficient().Sign() < 0 {
		c.Neg(c)
	}
	pp, _ := QuoScalar(p, c)
	return pp
}

// QuoScalar returns p / c, or ErrInexact if c does not divide every coefficient.
func QuoScalar(p *Integer, c *big.Int) (*Integer, error) {
	if c.Sign() == 0 {
		panic("polynomial.QuoScalar: division by zero")
	}
	out := Zero[*big.Int](arith.Z, p.nvar)
	out.terms = make([]Term[*big.Int], len(p.terms))
	for i, t := range p.terms {
		q, ok := arith.Z.Divide(t.Coefficient, c)
		if !ok {
			return nil, fmt.Errorf("%w: %v by %v", ErrInexact, t.Coefficient, c)
		}
		out.terms[i] = Term[*big.Int]{Exponent: t.Exponent, Coefficient: q}
	}
	return out, nil
}

// MaxNorm returns the largest absolute value of the coefficients of p.
func MaxNorm(p *Integer) *big.Int {
	n := new(big.Int)
	for _, t := range p.terms {
		if t.Coefficient.CmpAbs(n) > 0 {
			n.Abs(t.Coefficient)
		}
	}
	return n
}

// Reduce maps p to ℤₘ[x] coefficient-wise.
func Reduce(p *Integer, r *modulus.Ring) *Modular {
	return Map[*big.Int, *saferith.Nat](p, r, r.FromInt)
}

// Lift maps p ∈ ℤₘ[x] to ℤ[x] using the symmetric representatives in (-m/2, m/2].
func Lift(p *Modular, r *modulus.Ring) *Integer {
	return Map[*saferith.Nat, *big.Int](p, arith.Z, r.Symmetric)
}
