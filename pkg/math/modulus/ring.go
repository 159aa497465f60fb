package modulus

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/cronokirby/saferith"
	"github.com/taurusgroup/polygcd/pkg/math/arith"
)

// ErrNotInvertible is returned when inverting an element which is not a unit.
var ErrNotInvertible = errors.New("modulus: element is not invertible")

// Ring is ℤₘ, the integers modulo an odd m > 1.
//
// When m is prime every nonzero element is a unit and Ring is a field.
// When m is a prime power pᵏ only elements coprime to p can be inverted.
// Elements are *saferith.Nat values in [0, m), never modified in place.
type Ring struct {
	m     *saferith.Modulus
	n     *big.Int
	half  *big.Int
	prime bool
}

// NewPrime returns the field ℤₚ.
// p must be an odd prime; this is not checked.
func NewPrime(p uint64) *Ring {
	if p < 3 || p%2 == 0 {
		panic(fmt.Sprintf("modulus.NewPrime: %d is not an odd prime", p))
	}
	return newRing(new(big.Int).SetUint64(p), true)
}

// New returns the ring ℤₘ for an odd modulus m > 1.
func New(m *big.Int) *Ring {
	if m.Cmp(big.NewInt(3)) < 0 || m.Bit(0) == 0 {
		panic(fmt.Sprintf("modulus.New: unsupported modulus %v", m))
	}
	return newRing(new(big.Int).Set(m), false)
}

// NewPrimePower returns the ring ℤₘ for m = pᵏ.
func NewPrimePower(p uint64, k int) *Ring {
	if k < 1 {
		panic("modulus.NewPrimePower: exponent must be positive")
	}
	if k == 1 {
		return NewPrime(p)
	}
	return New(arith.Pow(new(big.Int).SetUint64(p), k))
}

func newRing(n *big.Int, prime bool) *Ring {
	nat := new(saferith.Nat).SetBig(n, n.BitLen())
	return &Ring{
		m:     saferith.ModulusFromNat(nat),
		n:     n,
		half:  new(big.Int).Rsh(n, 1),
		prime: prime,
	}
}

// Modulus returns m. The result must not be modified.
func (r *Ring) Modulus() *big.Int {
	return r.n
}

// Prime reports whether the ring was constructed as a prime field.
func (r *Ring) Prime() bool {
	return r.prime
}

func (r *Ring) String() string {
	return fmt.Sprintf("ℤ/%v", r.n)
}

// FromInt maps an integer x to x (mod m).
func (r *Ring) FromInt(x *big.Int) *saferith.Nat {
	v := new(big.Int).Mod(x, r.n)
	return new(saferith.Nat).SetBig(v, r.n.BitLen())
}

// FromUint64 maps x to x (mod m).
func (r *Ring) FromUint64(x uint64) *saferith.Nat {
	return new(saferith.Nat).Mod(new(saferith.Nat).SetUint64(x), r.m)
}

// Symmetric returns the integer representative of a in (-m/2, m/2].
func (r *Ring) Symmetric(a *saferith.Nat) *big.Int {
	v := a.Big()
	if v.Cmp(r.half) > 0 {
		v.Sub(v, r.n)
	}
	return v
}

func (r *Ring) Zero() *saferith.Nat {
	return r.FromUint64(0)
}

func (r *Ring) One() *saferith.Nat {
	return r.FromUint64(1)
}

func (r *Ring) IsZero(a *saferith.Nat) bool {
	return a.EqZero() == 1
}

func (r *Ring) Equal(a, b *saferith.Nat) bool {
	return a.Eq(b) == 1
}

func (r *Ring) Add(a, b *saferith.Nat) *saferith.Nat {
	return new(saferith.Nat).ModAdd(a, b, r.m)
}

func (r *Ring) Sub(a, b *saferith.Nat) *saferith.Nat {
	return new(saferith.Nat).ModSub(a, b, r.m)
}

func (r *Ring) Neg(a *saferith.Nat) *saferith.Nat {
	return new(saferith.Nat).ModNeg(a, r.m)
}

func (r *Ring) Mul(a, b *saferith.Nat) *saferith.Nat {
	return new(saferith.Nat).ModMul(a, b, r.m)
}

// Text formats an element by its symmetric representative.
func (r *Ring) Text(a *saferith.Nat) string {
	return r.Symmetric(a).String()
}

// IsUnit reports whether a is invertible in ℤₘ.
func (r *Ring) IsUnit(a *saferith.Nat) bool {
	return a.IsUnit(r.m) == 1
}

// Inverse returns a⁻¹ (mod m), or ErrNotInvertible.
func (r *Ring) Inverse(a *saferith.Nat) (*saferith.Nat, error) {
	if !r.IsUnit(a) {
		return nil, fmt.Errorf("%w: %s in %v", ErrNotInvertible, r.Text(a), r)
	}
	return new(saferith.Nat).ModInverse(a, r.m), nil
}

// ExtendedGcd returns (g, s, t) with s⋅a + t⋅b = g, where g is 1 if either
// element is a unit and 0 when both are zero.
//
// For composite moduli a pair of nonzero non-units yields ErrNotInvertible.
func (r *Ring) ExtendedGcd(a, b *saferith.Nat) (g, s, t *saferith.Nat, err error) {
	if r.IsUnit(a) {
		inv, _ := r.Inverse(a)
		return r.One(), inv, r.Zero(), nil
	}
	if r.IsUnit(b) {
		inv, _ := r.Inverse(b)
		return r.One(), r.Zero(), inv, nil
	}
	if r.IsZero(a) && r.IsZero(b) {
		return r.Zero(), r.Zero(), r.Zero(), nil
	}
	return nil, nil, nil, fmt.Errorf("%w: no bezout relation for %s, %s", ErrNotInvertible, r.Text(a), r.Text(b))
}
