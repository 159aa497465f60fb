package polynomial

import (
	"math/big"
	mrand "math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taurusgroup/polygcd/pkg/math/arith"
)

func randomInts(rng *mrand.Rand, degree int, bound int64) *Integer {
	cs := make([]int64, degree+1)
	for i := range cs {
		cs[i] = rng.Int63n(2*bound+1) - bound
	}
	// keep the requested degree
	for cs[degree] == 0 {
		cs[degree] = rng.Int63n(2*bound+1) - bound
	}
	return Ints(cs...)
}

func TestPolynomial_String(t *testing.T) {
	tests := []struct {
		name string
		p    *Integer
		want string
	}{
		{"zero", Ints(), "0"},
		{"constant", Ints(-5), "-5"},
		{"scenario", Ints(-17, 0, 0, 0, 6), "6*x^4 - 17"},
		{"negative leading", Ints(1, 0, -1), "-x^2 + 1"},
		{"linear", Ints(-5, -7, 6), "6*x^2 - 7*x - 5"},
		{"bivariate", New[*big.Int](arith.Z, 2,
			Term[*big.Int]{Exponent: NewExponent(1, 2), Coefficient: big.NewInt(3)},
			Term[*big.Int]{Exponent: NewExponent(0, 1), Coefficient: big.NewInt(-1)},
		), "3*x1*x2^2 - x2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.p.String())
		})
	}
}

func TestNew_Normalizes(t *testing.T) {
	p := New[*big.Int](arith.Z, 1,
		Term[*big.Int]{Exponent: NewExponent(1), Coefficient: big.NewInt(2)},
		Term[*big.Int]{Exponent: NewExponent(3), Coefficient: big.NewInt(1)},
		Term[*big.Int]{Exponent: NewExponent(1), Coefficient: big.NewInt(-2)},
		Term[*big.Int]{Exponent: NewExponent(0), Coefficient: big.NewInt(0)},
	)
	require.Equal(t, 1, p.Len())
	assert.True(t, p.Equal(Ints(0, 0, 0, 1)))
	assert.Equal(t, 3, p.Degree(0))
	assert.Equal(t, NewExponent(3), p.DegreeVector())

	assert.Panics(t, func() {
		New[*big.Int](arith.Z, 2, Term[*big.Int]{Exponent: NewExponent(1), Coefficient: big.NewInt(1)})
	})
}

func TestPolynomial_Predicates(t *testing.T) {
	assert.True(t, Ints().IsZero())
	assert.True(t, Ints().IsConstant())
	assert.True(t, Ints(7).IsConstant())
	assert.False(t, Ints(7).IsOne())
	assert.True(t, Ints(1).IsOne())
	assert.False(t, Ints(1, 1).IsConstant())
	assert.Equal(t, int64(0), Ints().LeadingCoefficient().Int64())
	assert.Equal(t, int64(-3), Ints(1, 2, -3).LeadingCoefficient().Int64())
	assert.Equal(t, int64(2), Ints(1, 2, -3).Coefficient(NewExponent(1)).Int64())
	assert.Equal(t, int64(0), Ints(1, 0, -3).Coefficient(NewExponent(1)).Int64())
	assert.Equal(t, int64(0), Ints(1, 0, -3).Coefficient(NewExponent(7)).Int64())
}

func TestPolynomial_Arithmetic(t *testing.T) {
	a := Ints(1, 1)  // x + 1
	b := Ints(-1, 1) // x - 1
	assert.True(t, a.Mul(b).Equal(Ints(-1, 0, 1)))
	assert.True(t, a.Add(b).Equal(Ints(0, 2)))
	assert.True(t, a.Sub(b).Equal(Ints(2)))
	assert.True(t, a.Sub(a).IsZero())
	assert.True(t, a.Neg().Add(a).IsZero())
	assert.True(t, a.Scale(big.NewInt(3)).Equal(Ints(3, 3)))
	assert.True(t, a.Scale(big.NewInt(0)).IsZero())
	assert.True(t, a.MulTerm(big.NewInt(2), NewExponent(2)).Equal(Ints(0, 0, 2, 2)))
	assert.True(t, a.Mul(Ints()).IsZero())

	rng := mrand.New(mrand.NewSource(1))
	for i := 0; i < 20; i++ {
		x := randomInts(rng, rng.Intn(5), 50)
		y := randomInts(rng, rng.Intn(5), 50)
		z := randomInts(rng, rng.Intn(5), 50)
		assert.True(t, x.Mul(y.Add(z)).Equal(x.Mul(y).Add(x.Mul(z))), "distributivity")
		assert.True(t, x.Mul(y).Equal(y.Mul(x)), "commutativity")
		assert.Equal(t, x.Degree(0)+y.Degree(0), x.Mul(y).Degree(0))
	}
}

func TestPolynomial_Multivariate(t *testing.T) {
	x := Monomial[*big.Int](arith.Z, big.NewInt(1), Var(2, 0, 1))
	y := Monomial[*big.Int](arith.Z, big.NewInt(1), Var(2, 1, 1))
	one := Constant[*big.Int](arith.Z, 2, big.NewInt(1))
	p := x.Add(y).Mul(x.Sub(y)).Add(one) // x² - y² + 1
	assert.Equal(t, 3, p.Len())
	assert.Equal(t, NewExponent(2, 0), p.DegreeVector())
	assert.Equal(t, 2, p.Degree(1))
	assert.Equal(t, int64(-1), p.Coefficient(NewExponent(0, 2)).Int64())
	assert.Panics(t, func() { p.Add(Ints(1)) })
	assert.Panics(t, func() { p.PseudoRemainder(p) })
}

func TestExponent(t *testing.T) {
	e, f := NewExponent(1, 2), NewExponent(1, 3)
	assert.Equal(t, -1, e.Cmp(f))
	assert.Equal(t, 1, NewExponent(2, 0).Cmp(f))
	assert.True(t, e.Divides(f))
	assert.False(t, f.Divides(e))
	assert.Equal(t, NewExponent(0, 1), f.Sub(e))
	assert.Equal(t, NewExponent(2, 5), f.Add(e))
	assert.Equal(t, 4, f.Total())
	assert.Panics(t, func() { e.Sub(f) })
}
