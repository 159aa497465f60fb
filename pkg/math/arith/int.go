package arith

import "math/big"

var one = big.NewInt(1)

// IsCoprime returns true if gcd(a,b) = 1.
func IsCoprime(a, b *big.Int) bool {
	return Gcd(a, b).Cmp(one) == 0
}

// Gcd returns the non-negative greatest common divisor of a and b.
//
// Unlike (*big.Int).GCD, negative inputs are accepted, and Gcd(0, 0) = 0.
func Gcd(a, b *big.Int) *big.Int {
	x := new(big.Int).Abs(a)
	y := new(big.Int).Abs(b)
	return x.GCD(nil, nil, x, y)
}

// Pow returns xᵉ for e ≥ 0.
func Pow(x *big.Int, e int) *big.Int {
	if e < 0 {
		panic("arith.Pow: negative exponent")
	}
	return new(big.Int).Exp(x, big.NewInt(int64(e)), nil)
}

// SymmetricMod returns the representative of x (mod m) in (-m/2, m/2].
func SymmetricMod(x, m *big.Int) *big.Int {
	r := new(big.Int).Mod(x, m)
	// r > m/2  ⇔  2r > m
	twice := new(big.Int).Lsh(r, 1)
	if twice.Cmp(m) > 0 {
		r.Sub(r, m)
	}
	return r
}
