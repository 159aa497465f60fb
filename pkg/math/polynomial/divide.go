package polynomial

import (
	"errors"
	"fmt"
)

// ErrNotInvertible is returned when a division needs the inverse of a leading
// coefficient which is not a unit of the coefficient ring.
var ErrNotInvertible = errors.New("polynomial: leading coefficient is not invertible")

func (p *Polynomial[E]) assertUnivariate(op string) {
	if p.nvar != 1 {
		panic(fmt.Sprintf("polynomial.%s: polynomial in %d variables is not univariate", op, p.nvar))
	}
}

// leading returns the degree and coefficient of the leading term of a nonzero
// univariate polynomial.
func (p *Polynomial[E]) leading() (uint32, E) {
	t := p.terms[0]
	return t.Exponent[0], t.Coefficient
}

// DivRem divides univariate polynomials over f, returning q and r with
// a = q⋅b + r and deg r < deg b.
//
// It panics if b = 0, and returns ErrNotInvertible when lc(b) is not a unit.
func DivRem[E any](f Field[E], a, b *Polynomial[E]) (q, r *Polynomial[E], err error) {
	a.assertUnivariate("DivRem")
	b.assertUnivariate("DivRem")
	if b.IsZero() {
		panic("polynomial.DivRem: division by zero")
	}
	db, lb := b.leading()
	inv, err := f.Inverse(lb)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrNotInvertible, err)
	}
	q = Zero[E](f, 1)
	r = a
	for !r.IsZero() {
		dr, lr := r.leading()
		if dr < db {
			break
		}
		c := f.Mul(lr, inv)
		e := Exponent{dr - db}
		q = q.Add(Monomial[E](f, c, e))
		r = r.Sub(b.MulTerm(c, e))
	}
	return q, r, nil
}

// Monic returns a / lc(a) over f. The zero polynomial is returned unchanged.
func Monic[E any](f Field[E], a *Polynomial[E]) (*Polynomial[E], error) {
	if a.IsZero() {
		return a, nil
	}
	inv, err := f.Inverse(a.LeadingCoefficient())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotInvertible, err)
	}
	return a.Scale(inv), nil
}

// PseudoDivRem computes q and r with lc(b)^(δ+1)⋅p = q⋅b + r and deg r < deg b,
// where δ = deg p - deg b. When deg p < deg b, q = 0 and r = p.
//
// Only ring operations are used, so this works over any integral domain.
// p and b must be univariate, and b nonzero.
func (p *Polynomial[E]) PseudoDivRem(b *Polynomial[E]) (q, r *Polynomial[E]) {
	p.assertUnivariate("PseudoDivRem")
	b.assertUnivariate("PseudoDivRem")
	if b.IsZero() {
		panic("polynomial.PseudoDivRem: division by zero")
	}
	ring := p.ring
	q = Zero(ring, 1)
	r = p
	if p.IsZero() {
		return q, r
	}
	db, lb := b.leading()
	dp, _ := p.leading()
	if dp < db {
		return q, r
	}
	e := int(dp-db) + 1
	for !r.IsZero() {
		dr, lr := r.leading()
		if dr < db {
			break
		}
		s := Monomial(ring, lr, Exponent{dr - db})
		q = q.Scale(lb).Add(s)
		r = r.Scale(lb).Sub(b.Mul(s))
		e--
	}
	if e > 0 {
		k := ring.One()
		for i := 0; i < e; i++ {
			k = ring.Mul(k, lb)
		}
		q = q.Scale(k)
		r = r.Scale(k)
	}
	return q, r
}

// PseudoRemainder returns the r of PseudoDivRem.
func (p *Polynomial[E]) PseudoRemainder(b *Polynomial[E]) *Polynomial[E] {
	_, r := p.PseudoDivRem(b)
	return r
}

// PseudoQuotient returns the q of PseudoDivRem.
func (p *Polynomial[E]) PseudoQuotient(b *Polynomial[E]) *Polynomial[E] {
	q, _ := p.PseudoDivRem(b)
	return q
}
