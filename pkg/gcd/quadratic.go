package gcd

import (
	"fmt"
	"math/big"

	"github.com/cronokirby/saferith"
	"github.com/taurusgroup/polygcd/pkg/math/modulus"
	"github.com/taurusgroup/polygcd/pkg/math/polynomial"
)

// quadraticState is a factorization C ≡ g⋅h (mod m) with h monic and
// s⋅g + t⋅h ≡ 1 (mod m), where deg s < deg h and deg t < deg g.
type quadraticState struct {
	ring       *modulus.Ring
	g, h, s, t *polynomial.Modular
}

// factors returns the symmetric lifts of lc(C)⋅h and g.
func (st *quadraticState) factors(l *big.Int) (a, b *polynomial.Integer) {
	a = polynomial.Lift(st.h.Scale(st.ring.FromInt(l)), st.ring)
	b = polynomial.Lift(st.g, st.ring)
	return a, b
}

// quadraticLifter squares the modulus at every round.
type quadraticLifter struct {
	prime  uint64
	c      *polynomial.Integer
	target *polynomial.Integer
	l      *big.Int
	limit  *big.Int
	trace  tracer
}

func newQuadraticLifter(w *witness, bound *big.Int, tr tracer) (*quadraticLifter, *quadraticState) {
	c := w.dividend
	l := c.LeadingCoefficient()
	ql := &quadraticLifter{
		prime:  w.image.prime,
		c:      c,
		target: c.Scale(l),
		l:      l,
		limit:  new(big.Int).Lsh(bound, 1),
		trace:  tr,
	}
	// w.s multiplies the gcd image, which plays the part of h here.
	st := &quadraticState{
		ring: w.image.field,
		g:    w.cofactor,
		h:    w.g,
		s:    w.t,
		t:    w.s,
	}
	return ql, st
}

// step lifts st from m to m².
func (ql *quadraticLifter) step(st *quadraticState, round int) (*quadraticState, error) {
	m := st.ring.Modulus()
	r := modulus.New(new(big.Int).Mul(m, m))
	up := func(p *polynomial.Modular) *polynomial.Modular {
		return polynomial.Reduce(polynomial.Lift(p, st.ring), r)
	}
	g, h, s, t := up(st.g), up(st.h), up(st.s), up(st.t)

	e := polynomial.Reduce(ql.c, r).Sub(g.Mul(h))
	q, rem, err := polynomial.DivRem[*saferith.Nat](r, s.Mul(e), h)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvariant, err)
	}
	dg := t.Mul(e).Add(q.Mul(g))
	gs := g.Add(dg)
	hs := h.Add(rem)

	one := polynomial.Constant[*saferith.Nat](r, 1, r.One())
	b := s.Mul(gs).Add(t.Mul(hs)).Sub(one)
	c, d, err := polynomial.DivRem[*saferith.Nat](r, s.Mul(b), hs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvariant, err)
	}
	next := &quadraticState{
		ring: r,
		g:    gs,
		h:    hs,
		s:    s.Sub(d),
		t:    t.Sub(t.Mul(b)).Sub(c.Mul(gs)),
	}
	ql.trace.round(RoundEvent{
		Lifting:          Quadratic,
		Prime:            ql.prime,
		Round:            round,
		Modulus:          r.Modulus(),
		ErrorBits:        polynomial.MaxNorm(polynomial.Lift(e, r)).BitLen(),
		CorrectionDegree: correctionDegree(dg, rem),
	})
	return next, nil
}

// lift runs rounds until the lifted factors multiply out to lc(C)⋅C, or the
// modulus exceeds 2M, and returns the factor congruent to lc(C)⋅h.
func (ql *quadraticLifter) lift(st *quadraticState) (*polynomial.Integer, error) {
	degree := ql.c.Degree(0)
	for round := 1; ; round++ {
		a, b := st.factors(ql.l)
		if a.Degree(0)+b.Degree(0) > degree {
			return nil, fmt.Errorf("%w: deg A + deg B = %d > %d", errInvariant, a.Degree(0)+b.Degree(0), degree)
		}
		if ql.target.Sub(a.Mul(b)).IsZero() || st.ring.Modulus().Cmp(ql.limit) > 0 {
			return a, nil
		}
		var err error
		if st, err = ql.step(st, round); err != nil {
			return nil, err
		}
	}
}

// liftQuadratic lifts w and returns the factor A, congruent to lc(C)⋅g.
func liftQuadratic(w *witness, bound *big.Int, tr tracer) (*polynomial.Integer, error) {
	ql, st := newQuadraticLifter(w, bound, tr)
	return ql.lift(st)
}
