package gcd

import (
	"fmt"
	"math/big"

	"github.com/taurusgroup/polygcd/pkg/math/modulus"
	"github.com/taurusgroup/polygcd/pkg/math/polynomial"
)

// operands are the primitive parts fed to the modular path, with deg r ≥ deg q.
type operands struct {
	r, q *polynomial.Integer
	// content is the gcd of the contents of both inputs.
	content    *big.Int
	rdeg, qdeg polynomial.Exponent
}

// image holds the operands reduced modulo an admissible prime.
type image struct {
	prime uint64
	field *modulus.Ring
	r, q  *polynomial.Modular
}

// reduce returns the reduction of ops modulo p.
//
// The prime is rejected with errBadPrime when it divides a leading coefficient
// or when the reduction lowers a degree.
func (ops *operands) reduce(p uint64) (*image, error) {
	field := modulus.NewPrime(p)
	for _, x := range []*polynomial.Integer{ops.r, ops.q} {
		if field.IsZero(field.FromInt(x.LeadingCoefficient())) {
			return nil, fmt.Errorf("%w: %d divides leading coefficient %v", errBadPrime, p, x.LeadingCoefficient())
		}
	}
	rm := polynomial.Reduce(ops.r, field)
	qm := polynomial.Reduce(ops.q, field)
	if !rm.DegreeVector().Equal(ops.rdeg) || !qm.DegreeVector().Equal(ops.qdeg) {
		return nil, fmt.Errorf("%w: degree drops modulo %d", errBadPrime, p)
	}
	return &image{prime: p, field: field, r: rm, q: qm}, nil
}
