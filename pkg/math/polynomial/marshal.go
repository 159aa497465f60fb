package polynomial

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/fxamacker/cbor/v2"
	"github.com/taurusgroup/polygcd/pkg/math/arith"
)

type termMarshal struct {
	Exponent    []uint32
	Coefficient string
}

type integerMarshal struct {
	Vars  int
	Terms []termMarshal
}

// MarshalIntegers encodes an integer polynomial as CBOR.
func MarshalIntegers(p *Integer) ([]byte, error) {
	if p == nil {
		return nil, errors.New("polynomial.MarshalIntegers: polynomial is nil")
	}
	pm := integerMarshal{
		Vars:  p.nvar,
		Terms: make([]termMarshal, len(p.terms)),
	}
	for i, t := range p.terms {
		pm.Terms[i] = termMarshal{
			Exponent:    []uint32(t.Exponent),
			Coefficient: t.Coefficient.String(),
		}
	}
	return cbor.Marshal(&pm)
}

// UnmarshalIntegers decodes an integer polynomial produced by MarshalIntegers.
func UnmarshalIntegers(data []byte) (*Integer, error) {
	var pm integerMarshal
	if err := cbor.Unmarshal(data, &pm); err != nil {
		return nil, fmt.Errorf("polynomial.UnmarshalIntegers: %w", err)
	}
	if pm.Vars < 0 {
		return nil, fmt.Errorf("polynomial.UnmarshalIntegers: invalid number of variables %d", pm.Vars)
	}
	terms := make([]Term[*big.Int], len(pm.Terms))
	for i, t := range pm.Terms {
		if len(t.Exponent) != pm.Vars {
			return nil, fmt.Errorf("polynomial.UnmarshalIntegers: term %d has %d variables, expected %d", i, len(t.Exponent), pm.Vars)
		}
		c, ok := new(big.Int).SetString(t.Coefficient, 10)
		if !ok {
			return nil, fmt.Errorf("polynomial.UnmarshalIntegers: invalid coefficient %q", t.Coefficient)
		}
		terms[i] = Term[*big.Int]{Exponent: Exponent(t.Exponent), Coefficient: c}
	}
	return New[*big.Int](arith.Z, pm.Vars, terms...), nil
}
