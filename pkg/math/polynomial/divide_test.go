package polynomial

import (
	mrand "math/rand"
	"testing"

	"github.com/cronokirby/saferith"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taurusgroup/polygcd/pkg/math/arith"
	"github.com/taurusgroup/polygcd/pkg/math/modulus"
)

func TestDivRem(t *testing.T) {
	f := modulus.NewPrime(101)
	rng := mrand.New(mrand.NewSource(2))
	for i := 0; i < 50; i++ {
		a := Reduce(randomInts(rng, rng.Intn(8), 1000), f)
		b := Reduce(randomInts(rng, rng.Intn(5), 1000), f)
		if b.IsZero() {
			continue
		}
		q, r, err := DivRem[*saferith.Nat](f, a, b)
		require.NoError(t, err)
		assert.True(t, q.Mul(b).Add(r).Equal(a), "a = q*b + r")
		if !r.IsZero() {
			assert.Less(t, r.Degree(0), b.Degree(0))
		}
	}
	assert.Panics(t, func() { _, _, _ = DivRem[*saferith.Nat](f, Reduce(Ints(1, 1), f), Zero[*saferith.Nat](f, 1)) })
}

func TestDivRem_NotInvertible(t *testing.T) {
	r := modulus.NewPrimePower(5, 2)
	a := Reduce(Ints(1, 0, 1), r)
	b := Reduce(Ints(1, 5), r)
	_, _, err := DivRem[*saferith.Nat](r, a, b)
	assert.ErrorIs(t, err, ErrNotInvertible)

	_, err = Monic[*saferith.Nat](r, b)
	assert.ErrorIs(t, err, ErrNotInvertible)
}

func TestPseudoDivRem(t *testing.T) {
	check := func(a, b *Integer) {
		q, r := a.PseudoDivRem(b)
		delta := a.Degree(0) - b.Degree(0)
		if a.IsZero() || delta < 0 {
			assert.True(t, q.IsZero())
			assert.True(t, r.Equal(a))
			return
		}
		k := arith.Pow(b.LeadingCoefficient(), delta+1)
		assert.True(t, a.Scale(k).Equal(q.Mul(b).Add(r)), "lc(b)^(δ+1)⋅a = q⋅b + r for %v, %v", a, b)
		if !r.IsZero() {
			assert.Less(t, r.Degree(0), b.Degree(0))
		}
	}

	check(Ints(-17, 0, 0, 0, 6), Ints(-5, -7, 6))
	check(Ints(1, 1), Ints(1, 0, 1))
	check(Ints(), Ints(3, 2))
	check(Ints(6, 5, 1), Ints(2, 1))

	rng := mrand.New(mrand.NewSource(3))
	for i := 0; i < 50; i++ {
		check(randomInts(rng, rng.Intn(7), 30), randomInts(rng, rng.Intn(4), 30))
	}

	// exact division leaves no pseudo remainder
	a := Ints(2, 3).Mul(Ints(-1, 0, 5))
	assert.True(t, a.PseudoRemainder(Ints(2, 3)).IsZero())
	assert.False(t, a.PseudoQuotient(Ints(2, 3)).IsZero())
	assert.Panics(t, func() { a.PseudoRemainder(Ints()) })
}
