package gcd

import (
	"github.com/rs/zerolog"
	"github.com/taurusgroup/polygcd/pkg/math/sample"
	"github.com/taurusgroup/polygcd/pkg/pool"
)

// Lifting selects the Hensel lifting variant.
type Lifting int

const (
	// Linear lifting gains one p-adic digit per round, reusing the Bezout
	// relation computed modulo p.
	Linear Lifting = iota
	// Quadratic lifting squares the modulus each round and refreshes the
	// Bezout relation at every new precision.
	Quadratic
)

func (l Lifting) String() string {
	switch l {
	case Linear:
		return "linear"
	case Quadratic:
		return "quadratic"
	default:
		return "unknown"
	}
}

// Option configures a Hensel algorithm.
type Option func(*Hensel)

// WithTrials sets the number of candidate primes tried before falling back.
func WithTrials(n int) Option {
	return func(h *Hensel) {
		if n > 0 {
			h.trials = n
		}
	}
}

// WithPrimes sets the source of candidate primes.
func WithPrimes(src sample.Source) Option {
	return func(h *Hensel) {
		h.primes = src
	}
}

// WithLifting selects the lifting variant.
func WithLifting(l Lifting) Option {
	return func(h *Hensel) {
		h.lifting = l
	}
}

// WithPool lets the driver try pl.Workers() candidate primes at once.
// The result is the same as with sequential trials.
func WithPool(pl *pool.Pool) Option {
	return func(h *Hensel) {
		h.pool = pl
	}
}

// WithFallback replaces the algorithm used when the modular path fails.
func WithFallback(a Algorithm) Option {
	return func(h *Hensel) {
		h.fallback = a
	}
}

// WithLogger sets the logger receiving prime rejections, lifting rounds and fallbacks.
func WithLogger(l zerolog.Logger) Option {
	return func(h *Hensel) {
		h.log = l
	}
}

// WithTrace registers a hook called after every lifting round.
//
// When a pool is configured, the hook may be called concurrently, including
// for attempts whose result ends up discarded.
func WithTrace(f func(RoundEvent)) Option {
	return func(h *Hensel) {
		h.trace = f
	}
}
