package arith

import "math/big"

// Integers is the ring ℤ, with elements represented as *big.Int.
//
// Elements are never modified in place; every operation returns a fresh value.
type Integers struct{}

// Z is the ring of integers.
var Z Integers

func (Integers) Zero() *big.Int { return new(big.Int) }

func (Integers) One() *big.Int { return big.NewInt(1) }

func (Integers) IsZero(a *big.Int) bool { return a.Sign() == 0 }

func (Integers) Equal(a, b *big.Int) bool { return a.Cmp(b) == 0 }

func (Integers) Add(a, b *big.Int) *big.Int { return new(big.Int).Add(a, b) }

func (Integers) Sub(a, b *big.Int) *big.Int { return new(big.Int).Sub(a, b) }

func (Integers) Neg(a *big.Int) *big.Int { return new(big.Int).Neg(a) }

func (Integers) Mul(a, b *big.Int) *big.Int { return new(big.Int).Mul(a, b) }

func (Integers) Text(a *big.Int) string { return a.String() }

// Divide returns a / b when the division is exact.
func (Integers) Divide(a, b *big.Int) (*big.Int, bool) {
	if b.Sign() == 0 {
		return nil, false
	}
	q, r := new(big.Int).QuoRem(a, b, new(big.Int))
	if r.Sign() != 0 {
		return nil, false
	}
	return q, true
}
