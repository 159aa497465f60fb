package gcd

import (
	"errors"
	"fmt"

	"github.com/taurusgroup/polygcd/pkg/math/polynomial"
)

var (
	// ErrNotUnivariate is returned when an input is not a polynomial in exactly one variable.
	ErrNotUnivariate = errors.New("gcd: polynomial is not univariate")
	// ErrArity is returned when the inputs have different numbers of variables.
	ErrArity = errors.New("gcd: mismatched number of variables")
)

// Failures of a single modular attempt. They are handled by the driver and
// never returned to callers of Gcd.
var (
	errBadPrime        = errors.New("gcd: bad prime")
	errPrimesExhausted = errors.New("gcd: prime list exhausted")
	errVerification    = errors.New("gcd: candidate does not divide the inputs")
	errInvariant       = errors.New("gcd: lifting invariant violated")
)

func checkInputs(P, S *polynomial.Integer) error {
	if P.NumVars() != S.NumVars() {
		return fmt.Errorf("%w: %d and %d", ErrArity, P.NumVars(), S.NumVars())
	}
	if P.NumVars() != 1 {
		return fmt.Errorf("%w: %d variables", ErrNotUnivariate, P.NumVars())
	}
	return nil
}
