package gcd

import (
	"math/big"

	"github.com/rs/zerolog"
	"github.com/taurusgroup/polygcd/pkg/math/polynomial"
)

// RoundEvent describes one Hensel lifting round.
type RoundEvent struct {
	Lifting Lifting
	// Prime is the base prime of the attempt.
	Prime uint64
	// Round counts from 1.
	Round int
	// Modulus is the precision reached at the end of the round.
	Modulus *big.Int
	// ErrorBits is the bit length of the largest coefficient of the lifting error.
	ErrorBits int
	// CorrectionDegree is the largest degree of the correction terms, or -1 if they vanish.
	CorrectionDegree int
}

type tracer struct {
	log  zerolog.Logger
	hook func(RoundEvent)
}

func (t tracer) round(ev RoundEvent) {
	t.log.Debug().
		Str("lifting", ev.Lifting.String()).
		Uint64("prime", ev.Prime).
		Int("round", ev.Round).
		Int("modulus_bits", ev.Modulus.BitLen()).
		Int("error_bits", ev.ErrorBits).
		Int("correction_degree", ev.CorrectionDegree).
		Msg("hensel round")
	if t.hook != nil {
		t.hook(ev)
	}
}

// correctionDegree returns the largest degree among nonzero ps, or -1.
func correctionDegree(ps ...*polynomial.Modular) int {
	d := -1
	for _, p := range ps {
		if !p.IsZero() && p.Degree(0) > d {
			d = p.Degree(0)
		}
	}
	return d
}
