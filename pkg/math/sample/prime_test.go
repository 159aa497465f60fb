package sample

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taurusgroup/polygcd/internal/params"
)

func assertPrimes(t *testing.T, ps []uint64, bits int) {
	t.Helper()
	seen := make(map[uint64]bool, len(ps))
	for _, p := range ps {
		assert.True(t, new(big.Int).SetUint64(p).ProbablyPrime(params.PrimalityIterations), "%d is not prime", p)
		assert.NotEqual(t, uint64(2), p, "primes must be odd")
		assert.False(t, seen[p], "%d repeated", p)
		seen[p] = true
		if bits > 0 {
			assert.Less(t, p, uint64(1)<<bits)
		}
	}
}

func TestPrimes(t *testing.T) {
	ps := primes(50)
	assert.Equal(t, []uint32{3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47}, ps)
}

func TestBelow(t *testing.T) {
	assert.Equal(t, []uint64{47, 43, 41}, Below(50).Primes(3))
	assert.Len(t, Below(50).Primes(100), 14)
	assert.Empty(t, Below(3).Primes(5))
}

func TestMedium(t *testing.T) {
	ps := DefaultPrimes.Primes(params.PrimeTrials)
	require.Len(t, ps, params.PrimeTrials)
	assertPrimes(t, ps, params.PrimeBits)
	for i := 1; i < len(ps); i++ {
		assert.Greater(t, ps[i-1], ps[i], "descending order")
	}
	// 2^28 - 57 is the largest prime below 2^28
	assert.Equal(t, uint64(1<<28-57), ps[0])
	assert.Equal(t, ps[:5], DefaultPrimes.Primes(5), "prefix stable")

	assert.Panics(t, func() { Medium{Bits: 2}.Primes(1) })
}

func TestSeeded(t *testing.T) {
	a := NewSeeded([]byte("alpha"), 31).Primes(20)
	require.Len(t, a, 20)
	assertPrimes(t, a, 31)
	for _, p := range a {
		assert.GreaterOrEqual(t, p, uint64(1)<<30, "primes keep their width")
	}

	assert.Equal(t, a, NewSeeded([]byte("alpha"), 31).Primes(20), "deterministic")
	assert.Equal(t, a[:7], NewSeeded([]byte("alpha"), 31).Primes(7), "prefix stable")
	assert.NotEqual(t, a, NewSeeded([]byte("beta"), 31).Primes(20))

	small := NewSeeded([]byte("gamma"), 10).Primes(30)
	assertPrimes(t, small, 10)

	assert.Panics(t, func() { NewSeeded(nil, 63) })
}

func TestSeeded_Exhausted(t *testing.T) {
	// [128, 256) holds 23 primes.
	ps := NewSeeded([]byte("x"), params.MinPrimeBits).Primes(50)
	require.NotEmpty(t, ps)
	assert.LessOrEqual(t, len(ps), 23)
	assertPrimes(t, ps, params.MinPrimeBits)
	for _, p := range ps {
		assert.GreaterOrEqual(t, p, uint64(128))
	}
	assert.Equal(t, ps, NewSeeded([]byte("x"), params.MinPrimeBits).Primes(50), "deterministic")
}
