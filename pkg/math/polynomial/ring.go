package polynomial

// Ring is a commutative coefficient ring.
//
// Implementations must treat elements as immutable values: every operation
// returns a fresh element and never modifies its arguments.
type Ring[E any] interface {
	Zero() E
	One() E
	IsZero(a E) bool
	Equal(a, b E) bool
	Add(a, b E) E
	Sub(a, b E) E
	Neg(a E) E
	Mul(a, b E) E
	// Text returns a human readable representation of a.
	Text(a E) string
}

// Field is a Ring whose nonzero elements can be inverted.
//
// Rings with zero divisors may still be used as a Field, as long as the
// elements being inverted are units; Inverse reports an error otherwise.
type Field[E any] interface {
	Ring[E]
	Inverse(a E) (E, error)
}
