// Package gcd computes greatest common divisors of univariate integer polynomials
// by Hensel lifting a gcd computed modulo a prime.
package gcd

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/rs/zerolog"
	"github.com/taurusgroup/polygcd/internal/params"
	"github.com/taurusgroup/polygcd/pkg/math/arith"
	"github.com/taurusgroup/polygcd/pkg/math/polynomial"
	"github.com/taurusgroup/polygcd/pkg/math/sample"
	"github.com/taurusgroup/polygcd/pkg/pool"
)

// Algorithm computes greatest common divisors in ℤ[x].
type Algorithm interface {
	// Gcd returns the gcd of P and S with a positive leading coefficient.
	// Gcd(0, B) = B and Gcd(A, 0) = A.
	Gcd(P, S *polynomial.Integer) (*polynomial.Integer, error)
}

// Hensel is the modular gcd algorithm. It is safe for concurrent use.
type Hensel struct {
	trials   int
	primes   sample.Source
	lifting  Lifting
	pool     *pool.Pool
	fallback Algorithm
	log      zerolog.Logger
	trace    func(RoundEvent)
}

// NewHensel returns a Hensel algorithm trying params.PrimeTrials primes of
// sample.DefaultPrimes with linear lifting, and falling back to Subresultant.
func NewHensel(opts ...Option) *Hensel {
	h := &Hensel{
		trials:   params.PrimeTrials,
		primes:   sample.DefaultPrimes,
		lifting:  Linear,
		fallback: Subresultant{},
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Gcd implements Algorithm.
//
// When the modular path fails, the fallback algorithm runs on the original
// inputs and its result is returned as is.
func (h *Hensel) Gcd(P, S *polynomial.Integer) (*polynomial.Integer, error) {
	if S.IsZero() {
		return P, nil
	}
	if P.IsZero() {
		return S, nil
	}
	if err := checkInputs(P, S); err != nil {
		return nil, err
	}
	ops, trivial := prepare(P, S)
	if trivial != nil {
		return trivial, nil
	}

	res := h.search(ops)
	switch {
	case res.err != nil:
		return h.fallbackGcd(P, S, res.err)
	case res.constant:
		return constant(ops.content), nil
	}
	if !P.PseudoRemainder(res.candidate).IsZero() || !S.PseudoRemainder(res.candidate).IsZero() {
		return h.fallbackGcd(P, S, fmt.Errorf("%w: %v modulo %d", errVerification, res.candidate, res.prime))
	}
	h.log.Debug().Uint64("prime", res.prime).Int("degree", res.candidate.Degree(0)).Msg("hensel gcd")
	return res.candidate, nil
}

func (h *Hensel) fallbackGcd(P, S *polynomial.Integer, reason error) (*polynomial.Integer, error) {
	h.log.Info().Err(reason).Msg("hensel gcd falling back")
	return h.fallback.Gcd(P, S)
}

// prepare normalizes signs, orders the inputs by degree and splits off their content.
// trivial is set when one primitive part is 1.
func prepare(P, S *polynomial.Integer) (ops *operands, trivial *polynomial.Integer) {
	r, q := polynomial.Abs(P), polynomial.Abs(S)
	if q.Degree(0) > r.Degree(0) {
		r, q = q, r
	}
	a, b := polynomial.Content(r), polynomial.Content(q)
	c := arith.Gcd(a, b)
	r, _ = polynomial.QuoScalar(r, a)
	q, _ = polynomial.QuoScalar(q, b)
	if r.IsOne() || q.IsOne() {
		return nil, constant(c)
	}
	return &operands{
		r:       r,
		q:       q,
		content: c,
		rdeg:    r.DegreeVector(),
		qdeg:    q.DegreeVector(),
	}, nil
}

func constant(c *big.Int) *polynomial.Integer {
	return polynomial.Constant[*big.Int](arith.Z, 1, c)
}

// outcome is the result of one prime attempt.
type outcome struct {
	prime     uint64
	constant  bool
	candidate *polynomial.Integer
	err       error
}

// search tries the primes in order and returns the first outcome which is not
// a bad prime. With a pool, batches of primes are attempted at once, and the
// outcomes of a batch are still examined in prime order.
func (h *Hensel) search(ops *operands) *outcome {
	primes := h.primes.Primes(h.trials)
	batch := h.pool.Workers()
	for start := 0; start < len(primes); start += batch {
		end := min(start+batch, len(primes))
		results := h.pool.Parallelize(end-start, func(i int) interface{} {
			return h.attempt(ops, primes[start+i])
		})
		for _, r := range results {
			res := r.(*outcome)
			if errors.Is(res.err, errBadPrime) {
				h.log.Debug().Uint64("prime", res.prime).Err(res.err).Msg("rejected prime")
				continue
			}
			return res
		}
	}
	return &outcome{err: fmt.Errorf("%w: after %d primes", errPrimesExhausted, len(primes))}
}

// attempt runs the modular path for a single prime.
func (h *Hensel) attempt(ops *operands, p uint64) *outcome {
	res := &outcome{prime: p}
	im, err := ops.reduce(p)
	if err != nil {
		res.err = err
		return res
	}
	w, constant, err := im.witness(ops)
	if err != nil {
		res.err = err
		return res
	}
	if constant {
		res.constant = true
		return res
	}

	tr := tracer{log: h.log, hook: h.trace}
	bound := Bound(w.dividend)
	var a *polynomial.Integer
	switch h.lifting {
	case Quadratic:
		a, err = liftQuadratic(w, bound, tr)
	default:
		a, err = liftLinear(w, bound, tr)
	}
	if err != nil {
		res.err = err
		return res
	}
	res.candidate = polynomial.Abs(polynomial.PrimitivePart(a).Scale(ops.content))
	return res
}
