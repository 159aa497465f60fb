package arith

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGcd(t *testing.T) {
	tests := []struct {
		a, b, want int64
	}{
		{0, 0, 0},
		{0, 5, 5},
		{-12, 18, 6},
		{12, -18, 6},
		{-7, -21, 7},
		{17, 5, 1},
	}
	for _, tt := range tests {
		got := Gcd(big.NewInt(tt.a), big.NewInt(tt.b))
		assert.Equal(t, tt.want, got.Int64(), "gcd(%d, %d)", tt.a, tt.b)
	}
	assert.True(t, IsCoprime(big.NewInt(9), big.NewInt(10)))
	assert.False(t, IsCoprime(big.NewInt(9), big.NewInt(12)))
}

func TestSymmetricMod(t *testing.T) {
	m := big.NewInt(7)
	want := map[int64]int64{0: 0, 1: 1, 3: 3, 4: -3, 6: -1, 7: 0, -1: -1, -4: 3, 10: 3}
	for x, w := range want {
		assert.Equal(t, w, SymmetricMod(big.NewInt(x), m).Int64(), "x = %d", x)
	}
	m = big.NewInt(10)
	assert.Equal(t, int64(5), SymmetricMod(big.NewInt(5), m).Int64())
	assert.Equal(t, int64(-4), SymmetricMod(big.NewInt(6), m).Int64())
}

func TestPow(t *testing.T) {
	assert.Equal(t, int64(1), Pow(big.NewInt(5), 0).Int64())
	assert.Equal(t, int64(-125), Pow(big.NewInt(-5), 3).Int64())
	assert.Panics(t, func() { Pow(big.NewInt(2), -1) })
}

func TestIntegers_Divide(t *testing.T) {
	q, ok := Z.Divide(big.NewInt(-12), big.NewInt(4))
	assert.True(t, ok)
	assert.Equal(t, int64(-3), q.Int64())
	_, ok = Z.Divide(big.NewInt(13), big.NewInt(4))
	assert.False(t, ok)
	_, ok = Z.Divide(big.NewInt(13), big.NewInt(0))
	assert.False(t, ok)
}
