package polynomial

// Gcd returns the monic greatest common divisor of univariate a and b over f.
//
// Gcd(0, 0) = 0.
func Gcd[E any](f Field[E], a, b *Polynomial[E]) (*Polynomial[E], error) {
	a.assertUnivariate("Gcd")
	b.assertUnivariate("Gcd")
	for !b.IsZero() {
		_, r, err := DivRem(f, a, b)
		if err != nil {
			return nil, err
		}
		a, b = b, r
	}
	return Monic(f, a)
}

// ExtendedGcd returns g, s and t with s⋅a + t⋅b = g, where g is the monic gcd
// of univariate a and b over f.
//
// When neither input is constant, deg s < deg b - deg g and deg t < deg a - deg g.
// ExtendedGcd(0, 0) returns three zero polynomials.
func ExtendedGcd[E any](f Field[E], a, b *Polynomial[E]) (g, s, t *Polynomial[E], err error) {
	a.assertUnivariate("ExtendedGcd")
	b.assertUnivariate("ExtendedGcd")
	r0, r1 := a, b
	s0, s1 := Constant[E](f, 1, f.One()), Zero[E](f, 1)
	t0, t1 := Zero[E](f, 1), Constant[E](f, 1, f.One())
	for !r1.IsZero() {
		q, r, err := DivRem(f, r0, r1)
		if err != nil {
			return nil, nil, nil, err
		}
		r0, r1 = r1, r
		s0, s1 = s1, s0.Sub(q.Mul(s1))
		t0, t1 = t1, t0.Sub(q.Mul(t1))
	}
	if r0.IsZero() {
		return r0, Zero[E](f, 1), Zero[E](f, 1), nil
	}
	inv, err := f.Inverse(r0.LeadingCoefficient())
	if err != nil {
		return nil, nil, nil, err
	}
	return r0.Scale(inv), s0.Scale(inv), t0.Scale(inv), nil
}
