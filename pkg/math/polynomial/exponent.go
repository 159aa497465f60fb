package polynomial

import (
	"strconv"
	"strings"
)

// Exponent is the exponent vector (e₀, …, eₙ₋₁) of the monomial x₀^e₀⋯xₙ₋₁^eₙ₋₁.
//
// Exponents are compared lexicographically, with x₀ the most significant variable.
type Exponent []uint32

// NewExponent returns the exponent vector of x₀^e₀⋯xₙ₋₁^eₙ₋₁.
func NewExponent(e ...uint32) Exponent {
	out := make(Exponent, len(e))
	copy(out, e)
	return out
}

// Var returns the exponent vector of xᵢ^d in n variables.
func Var(n, i int, d uint32) Exponent {
	e := make(Exponent, n)
	e[i] = d
	return e
}

// Cmp returns -1, 0, +1 when e < f, e = f, e > f lexicographically.
func (e Exponent) Cmp(f Exponent) int {
	for i := range e {
		switch {
		case e[i] < f[i]:
			return -1
		case e[i] > f[i]:
			return 1
		}
	}
	return 0
}

// Equal reports whether e = f.
func (e Exponent) Equal(f Exponent) bool {
	if len(e) != len(f) {
		return false
	}
	return e.Cmp(f) == 0
}

// Add returns e + f.
func (e Exponent) Add(f Exponent) Exponent {
	out := make(Exponent, len(e))
	for i := range e {
		out[i] = e[i] + f[i]
	}
	return out
}

// Sub returns e - f; it panics unless f divides e.
func (e Exponent) Sub(f Exponent) Exponent {
	if !f.Divides(e) {
		panic("polynomial.Exponent.Sub: negative exponent")
	}
	out := make(Exponent, len(e))
	for i := range e {
		out[i] = e[i] - f[i]
	}
	return out
}

// Divides reports whether the monomial of e divides the monomial of f.
func (e Exponent) Divides(f Exponent) bool {
	for i := range e {
		if e[i] > f[i] {
			return false
		}
	}
	return true
}

// IsZero reports whether e is the exponent of the constant monomial.
func (e Exponent) IsZero() bool {
	for _, d := range e {
		if d != 0 {
			return false
		}
	}
	return true
}

// Total returns the total degree e₀ + ⋯ + eₙ₋₁.
func (e Exponent) Total() int {
	t := 0
	for _, d := range e {
		t += int(d)
	}
	return t
}

func (e Exponent) key() string {
	var b strings.Builder
	for i, d := range e {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(uint64(d), 10))
	}
	return b.String()
}
