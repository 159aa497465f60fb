package polynomial

import (
	"math/big"
	mrand "math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taurusgroup/polygcd/pkg/math/modulus"
)

func TestContent(t *testing.T) {
	assert.Equal(t, int64(6), Content(Ints(6, 0, 6)).Int64())
	assert.Equal(t, int64(3), Content(Ints(-3, 9, -12)).Int64())
	assert.Equal(t, int64(1), Content(Ints(-5, -7, 6)).Int64())
	assert.Equal(t, int64(0), Content(Ints()).Int64())

	pp := PrimitivePart(Ints(6, 0, -12))
	assert.True(t, pp.Equal(Ints(-1, 0, 2)), "got %v", pp)
	assert.True(t, PrimitivePart(Ints()).IsZero())

	assert.True(t, Abs(Ints(1, -2)).Equal(Ints(-1, 2)))
	assert.True(t, Abs(Ints(1, 2)).Equal(Ints(1, 2)))
}

func TestQuoScalar(t *testing.T) {
	q, err := QuoScalar(Ints(6, -9), big.NewInt(-3))
	require.NoError(t, err)
	assert.True(t, q.Equal(Ints(-2, 3)))

	_, err = QuoScalar(Ints(6, -9), big.NewInt(2))
	assert.ErrorIs(t, err, ErrInexact)
	assert.Panics(t, func() { _, _ = QuoScalar(Ints(1), big.NewInt(0)) })
}

func TestMaxNorm(t *testing.T) {
	assert.Equal(t, int64(17), MaxNorm(Ints(-17, 0, 0, 0, 6)).Int64())
	assert.Equal(t, int64(0), MaxNorm(Ints()).Int64())
}

func TestReduceLift(t *testing.T) {
	r := modulus.NewPrime(10007)
	rng := mrand.New(mrand.NewSource(5))
	for i := 0; i < 20; i++ {
		p := randomInts(rng, rng.Intn(6), 5000)
		assert.True(t, Lift(Reduce(p, r), r).Equal(p), "symmetric lift recovers small coefficients")
	}
	// coefficients divisible by the modulus vanish
	p := Ints(10007, 1, 0, 20014)
	assert.True(t, Reduce(p, r).Equal(Reduce(Ints(0, 1), r)))
	assert.Equal(t, 1, Reduce(p, r).Degree(0))
}
