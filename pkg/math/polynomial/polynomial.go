package polynomial

import (
	"fmt"
	"sort"
	"strings"
)

// Term is a single monomial c⋅x^e of a Polynomial.
type Term[E any] struct {
	Exponent    Exponent
	Coefficient E
}

// Polynomial is a sparse polynomial in a fixed number of variables with
// coefficients in a Ring.
//
// Terms are kept in strictly decreasing lexicographic order of their
// exponents and no zero coefficient is ever stored. A Polynomial is
// immutable: every operation returns a new value.
type Polynomial[E any] struct {
	ring  Ring[E]
	nvar  int
	terms []Term[E]
}

// Zero returns the zero polynomial in nvar variables.
func Zero[E any](r Ring[E], nvar int) *Polynomial[E] {
	return &Polynomial[E]{ring: r, nvar: nvar}
}

// Constant returns the constant polynomial c in nvar variables.
func Constant[E any](r Ring[E], nvar int, c E) *Polynomial[E] {
	return Monomial(r, c, make(Exponent, nvar))
}

// Monomial returns c⋅x^e, in len(e) variables.
func Monomial[E any](r Ring[E], c E, e Exponent) *Polynomial[E] {
	p := Zero(r, len(e))
	if !r.IsZero(c) {
		p.terms = []Term[E]{{Exponent: NewExponent(e...), Coefficient: c}}
	}
	return p
}

// New creates a polynomial in nvar variables from arbitrary terms.
//
// Terms with equal exponents are summed, and zero coefficients dropped.
func New[E any](r Ring[E], nvar int, terms ...Term[E]) *Polynomial[E] {
	acc := make(map[string]Term[E], len(terms))
	for _, t := range terms {
		if len(t.Exponent) != nvar {
			panic(fmt.Sprintf("polynomial.New: exponent %v does not have %d variables", t.Exponent, nvar))
		}
		k := t.Exponent.key()
		if prev, ok := acc[k]; ok {
			acc[k] = Term[E]{Exponent: prev.Exponent, Coefficient: r.Add(prev.Coefficient, t.Coefficient)}
		} else {
			acc[k] = Term[E]{Exponent: NewExponent(t.Exponent...), Coefficient: t.Coefficient}
		}
	}
	return fromMap(r, nvar, acc)
}

// Univariate returns a₀ + a₁⋅x + … + aₙ⋅xⁿ in one variable.
func Univariate[E any](r Ring[E], coefficients ...E) *Polynomial[E] {
	p := Zero(r, 1)
	for i := len(coefficients) - 1; i >= 0; i-- {
		if r.IsZero(coefficients[i]) {
			continue
		}
		p.terms = append(p.terms, Term[E]{Exponent: Exponent{uint32(i)}, Coefficient: coefficients[i]})
	}
	return p
}

func fromMap[E any](r Ring[E], nvar int, acc map[string]Term[E]) *Polynomial[E] {
	p := Zero(r, nvar)
	p.terms = make([]Term[E], 0, len(acc))
	for _, t := range acc {
		if !r.IsZero(t.Coefficient) {
			p.terms = append(p.terms, t)
		}
	}
	sort.Slice(p.terms, func(i, j int) bool {
		return p.terms[i].Exponent.Cmp(p.terms[j].Exponent) > 0
	})
	return p
}

// Ring returns the coefficient ring of p.
func (p *Polynomial[E]) Ring() Ring[E] {
	return p.ring
}

// NumVars returns the number of variables of p.
func (p *Polynomial[E]) NumVars() int {
	return p.nvar
}

// Len returns the number of nonzero terms of p.
func (p *Polynomial[E]) Len() int {
	return len(p.terms)
}

// Terms returns the terms of p in decreasing order.
func (p *Polynomial[E]) Terms() []Term[E] {
	out := make([]Term[E], len(p.terms))
	for i, t := range p.terms {
		out[i] = Term[E]{Exponent: NewExponent(t.Exponent...), Coefficient: t.Coefficient}
	}
	return out
}

// IsZero reports whether p = 0.
func (p *Polynomial[E]) IsZero() bool {
	return len(p.terms) == 0
}

// IsConstant reports whether p has no term of positive degree.
func (p *Polynomial[E]) IsConstant() bool {
	return len(p.terms) == 0 || (len(p.terms) == 1 && p.terms[0].Exponent.IsZero())
}

// IsOne reports whether p = 1.
func (p *Polynomial[E]) IsOne() bool {
	return len(p.terms) == 1 && p.terms[0].Exponent.IsZero() && p.ring.Equal(p.terms[0].Coefficient, p.ring.One())
}

// LeadingCoefficient returns the coefficient of the leading term, or 0 for p = 0.
func (p *Polynomial[E]) LeadingCoefficient() E {
	if len(p.terms) == 0 {
		return p.ring.Zero()
	}
	return p.terms[0].Coefficient
}

// DegreeVector returns the exponent of the leading term, or the zero vector for p = 0.
func (p *Polynomial[E]) DegreeVector() Exponent {
	if len(p.terms) == 0 {
		return make(Exponent, p.nvar)
	}
	return NewExponent(p.terms[0].Exponent...)
}

// Degree returns the largest exponent of xᵢ in p, and 0 for p = 0.
func (p *Polynomial[E]) Degree(i int) int {
	d := uint32(0)
	for _, t := range p.terms {
		if t.Exponent[i] > d {
			d = t.Exponent[i]
		}
	}
	return int(d)
}

// Coefficient returns the coefficient of x^e in p.
func (p *Polynomial[E]) Coefficient(e Exponent) E {
	i := sort.Search(len(p.terms), func(i int) bool {
		return p.terms[i].Exponent.Cmp(e) <= 0
	})
	if i < len(p.terms) && p.terms[i].Exponent.Cmp(e) == 0 {
		return p.terms[i].Coefficient
	}
	return p.ring.Zero()
}

// Equal reports whether p and q have the same terms.
func (p *Polynomial[E]) Equal(q *Polynomial[E]) bool {
	if p.nvar != q.nvar || len(p.terms) != len(q.terms) {
		return false
	}
	for i := range p.terms {
		if !p.terms[i].Exponent.Equal(q.terms[i].Exponent) ||
			!p.ring.Equal(p.terms[i].Coefficient, q.terms[i].Coefficient) {
			return false
		}
	}
	return true
}

func (p *Polynomial[E]) assertCompatible(q *Polynomial[E]) {
	if p.nvar != q.nvar {
		panic(fmt.Sprintf("polynomial: mismatched number of variables %d and %d", p.nvar, q.nvar))
	}
}

// merge computes p + sign⋅q by merging the two sorted term lists.
func (p *Polynomial[E]) merge(q *Polynomial[E], negate bool) *Polynomial[E] {
	p.assertCompatible(q)
	r := p.ring
	out := Zero(r, p.nvar)
	out.terms = make([]Term[E], 0, len(p.terms)+len(q.terms))
	i, j := 0, 0
	for i < len(p.terms) || j < len(q.terms) {
		var c int
		switch {
		case i == len(p.terms):
			c = -1
		case j == len(q.terms):
			c = 1
		default:
			c = p.terms[i].Exponent.Cmp(q.terms[j].Exponent)
		}
		switch {
		case c > 0:
			out.terms = append(out.terms, p.terms[i])
			i++
		case c < 0:
			b := q.terms[j].Coefficient
			if negate {
				b = r.Neg(b)
			}
			out.terms = append(out.terms, Term[E]{Exponent: q.terms[j].Exponent, Coefficient: b})
			j++
		default:
			var sum E
			if negate {
				sum = r.Sub(p.terms[i].Coefficient, q.terms[j].Coefficient)
			} else {
				sum = r.Add(p.terms[i].Coefficient, q.terms[j].Coefficient)
			}
			if !r.IsZero(sum) {
				out.terms = append(out.terms, Term[E]{Exponent: p.terms[i].Exponent, Coefficient: sum})
			}
			i++
			j++
		}
	}
	return out
}

// Add returns p + q.
func (p *Polynomial[E]) Add(q *Polynomial[E]) *Polynomial[E] {
	return p.merge(q, false)
}

// Sub returns p - q.
func (p *Polynomial[E]) Sub(q *Polynomial[E]) *Polynomial[E] {
	return p.merge(q, true)
}

// Neg returns -p.
func (p *Polynomial[E]) Neg() *Polynomial[E] {
	out := Zero(p.ring, p.nvar)
	out.terms = make([]Term[E], len(p.terms))
	for i, t := range p.terms {
		out.terms[i] = Term[E]{Exponent: t.Exponent, Coefficient: p.ring.Neg(t.Coefficient)}
	}
	return out
}

// Scale returns c⋅p.
func (p *Polynomial[E]) Scale(c E) *Polynomial[E] {
	return p.MulTerm(c, make(Exponent, p.nvar))
}

// MulTerm returns c⋅x^e⋅p.
func (p *Polynomial[E]) MulTerm(c E, e Exponent) *Polynomial[E] {
	out := Zero(p.ring, p.nvar)
	if p.ring.IsZero(c) {
		return out
	}
	out.terms = make([]Term[E], 0, len(p.terms))
	for _, t := range p.terms {
		// the product may vanish when the ring has zero divisors
		coeff := p.ring.Mul(c, t.Coefficient)
		if p.ring.IsZero(coeff) {
			continue
		}
		out.terms = append(out.terms, Term[E]{Exponent: t.Exponent.Add(e), Coefficient: coeff})
	}
	return out
}

// Mul returns p⋅q.
func (p *Polynomial[E]) Mul(q *Polynomial[E]) *Polynomial[E] {
	p.assertCompatible(q)
	if p.IsZero() || q.IsZero() {
		return Zero(p.ring, p.nvar)
	}
	r := p.ring
	acc := make(map[string]Term[E], len(p.terms)*len(q.terms))
	for _, a := range p.terms {
		for _, b := range q.terms {
			e := a.Exponent.Add(b.Exponent)
			c := r.Mul(a.Coefficient, b.Coefficient)
			k := e.key()
			if prev, ok := acc[k]; ok {
				c = r.Add(prev.Coefficient, c)
			}
			acc[k] = Term[E]{Exponent: e, Coefficient: c}
		}
	}
	return fromMap(r, p.nvar, acc)
}

// Map applies f to every coefficient of p, producing a polynomial over r.
// Coefficients mapped to zero are dropped.
func Map[E, F any](p *Polynomial[E], r Ring[F], f func(E) F) *Polynomial[F] {
	out := Zero(r, p.nvar)
	out.terms = make([]Term[F], 0, len(p.terms))
	for _, t := range p.terms {
		c := f(t.Coefficient)
		if r.IsZero(c) {
			continue
		}
		out.terms = append(out.terms, Term[F]{Exponent: t.Exponent, Coefficient: c})
	}
	return out
}

// String returns p in the variable x for univariate polynomials, and x1, …, xn otherwise.
func (p *Polynomial[E]) String() string {
	if p.IsZero() {
		return "0"
	}
	var b strings.Builder
	for i, t := range p.terms {
		c := p.ring.Text(t.Coefficient)
		switch {
		case i == 0:
		case strings.HasPrefix(c, "-"):
			b.WriteString(" - ")
			c = c[1:]
		default:
			b.WriteString(" + ")
		}
		if i == 0 && strings.HasPrefix(c, "-") && !t.Exponent.IsZero() {
			b.WriteString("-")
			c = c[1:]
		}
		mono := p.monomialString(t.Exponent)
		switch {
		case mono == "":
			b.WriteString(c)
		case c == "1":
			b.WriteString(mono)
		default:
			b.WriteString(c)
			b.WriteString("*")
			b.WriteString(mono)
		}
	}
	return b.String()
}

func (p *Polynomial[E]) monomialString(e Exponent) string {
	parts := make([]string, 0, len(e))
	for i, d := range e {
		if d == 0 {
			continue
		}
		v := "x"
		if p.nvar > 1 {
			v = fmt.Sprintf("x%d", i+1)
		}
		if d > 1 {
			v = fmt.Sprintf("%s^%d", v, d)
		}
		parts = append(parts, v)
	}
	return strings.Join(parts, "*")
}
