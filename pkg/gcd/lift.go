package gcd

import (
	"fmt"
	"math/big"

	"github.com/cronokirby/saferith"
	"github.com/taurusgroup/polygcd/pkg/math/arith"
	"github.com/taurusgroup/polygcd/pkg/math/modulus"
	"github.com/taurusgroup/polygcd/pkg/math/polynomial"
)

// Bound returns M = 2⋅|C|∞⋅|lc(C)|.
//
// Once the lifting modulus exceeds 2M, the symmetric representatives of the
// lifted factors of lc(C)⋅C are their true integer coefficients.
func Bound(c *polynomial.Integer) *big.Int {
	m := new(big.Int).Mul(polynomial.MaxNorm(c), new(big.Int).Abs(c.LeadingCoefficient()))
	return m.Lsh(m, 1)
}

// LiftState is the progress of a lifting attempt: A⋅B ≡ lc(C)⋅C (mod Q).
type LiftState struct {
	Q    *big.Int
	A, B *polynomial.Integer
}

// withLeading returns p with its leading coefficient replaced by l.
func withLeading(p *polynomial.Integer, l *big.Int) *polynomial.Integer {
	e := p.DegreeVector()
	return p.
		Sub(polynomial.Monomial[*big.Int](arith.Z, p.LeadingCoefficient(), e)).
		Add(polynomial.Monomial[*big.Int](arith.Z, l, e))
}

// linearLifter lifts a witness one factor of p at a time.
type linearLifter struct {
	prime uint64
	field *modulus.Ring
	// target is lc(C)⋅C.
	target *polynomial.Integer
	degree int
	// aImage and bImage are A and B modulo p, with s⋅aImage + t⋅bImage = 1.
	aImage, bImage *polynomial.Modular
	s, t           *polynomial.Modular
	limit          *big.Int
	trace          tracer
}

// newLinearLifter normalizes the witness so that both factors carry lc(C) as leading
// coefficient, and returns the initial state modulo p.
func newLinearLifter(w *witness, bound *big.Int, tr tracer) (*linearLifter, LiftState, error) {
	f := w.image.field
	c := w.dividend
	l := c.LeadingCoefficient()
	lp := f.FromInt(l)
	linv, err := f.Inverse(lp)
	if err != nil {
		return nil, LiftState{}, fmt.Errorf("%w: %v", errBadPrime, err)
	}
	// g is monic, so lc(cofactor) ≡ l already.
	aImage := w.g.Scale(lp)
	bImage := w.cofactor
	lf := &linearLifter{
		prime:  w.image.prime,
		field:  f,
		target: c.Scale(l),
		degree: c.Degree(0),
		aImage: aImage,
		bImage: bImage,
		s:      w.s.Scale(linv),
		t:      w.t,
		limit:  new(big.Int).Lsh(bound, 1),
		trace:  tr,
	}
	st := LiftState{
		Q: new(big.Int).SetUint64(w.image.prime),
		A: withLeading(polynomial.Lift(aImage, f), l),
		B: withLeading(polynomial.Lift(bImage, f), l),
	}
	return lf, st, nil
}

// step performs one round. done is true when A⋅B = lc(C)⋅C exactly, or the
// new modulus exceeds 2M.
func (lf *linearLifter) step(st LiftState, round int) (next LiftState, done bool, err error) {
	f := lf.field
	e := lf.target.Sub(st.A.Mul(st.B))
	if e.IsZero() {
		return st, true, nil
	}
	eq, err := polynomial.QuoScalar(e, st.Q)
	if err != nil {
		return st, false, fmt.Errorf("%w: error is not divisible by the modulus: %v", errInvariant, err)
	}
	ep := polynomial.Reduce(eq, f)
	// aImage⋅ap + bImage⋅bp = ep, where ap corrects B and bp corrects A.
	ap := lf.s.Mul(ep)
	bp := lf.t.Mul(ep)
	quo, rem, err := polynomial.DivRem[*saferith.Nat](f, ap, lf.bImage)
	if err != nil {
		return st, false, fmt.Errorf("%w: %v", errInvariant, err)
	}
	ap = rem
	bp = bp.Add(quo.Mul(lf.aImage))

	next = LiftState{
		Q: new(big.Int).Mul(st.Q, new(big.Int).SetUint64(lf.prime)),
		A: st.A.Add(polynomial.Lift(bp, f).Scale(st.Q)),
		B: st.B.Add(polynomial.Lift(ap, f).Scale(st.Q)),
	}
	if next.A.Degree(0)+next.B.Degree(0) > lf.degree {
		return st, false, fmt.Errorf("%w: deg A + deg B = %d > %d",
			errInvariant, next.A.Degree(0)+next.B.Degree(0), lf.degree)
	}
	lf.trace.round(RoundEvent{
		Lifting:          Linear,
		Prime:            lf.prime,
		Round:            round,
		Modulus:          next.Q,
		ErrorBits:        polynomial.MaxNorm(e).BitLen(),
		CorrectionDegree: correctionDegree(ap, bp),
	})
	return next, next.Q.Cmp(lf.limit) > 0, nil
}

// lift runs rounds until step reports completion.
func (lf *linearLifter) lift(st LiftState) (LiftState, error) {
	for round := 1; ; round++ {
		next, done, err := lf.step(st, round)
		if err != nil {
			return st, err
		}
		st = next
		if done {
			return st, nil
		}
	}
}

// liftLinear lifts w and returns the factor A, congruent to lc(C)⋅g.
func liftLinear(w *witness, bound *big.Int, tr tracer) (*polynomial.Integer, error) {
	lf, st, err := newLinearLifter(w, bound, tr)
	if err != nil {
		return nil, err
	}
	st, err = lf.lift(st)
	if err != nil {
		return nil, err
	}
	return st.A, nil
}
