package sample

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"math/big"

	"github.com/taurusgroup/polygcd/internal/hash"
	"github.com/taurusgroup/polygcd/internal/params"
)

// Source yields candidate primes for modular algorithms.
//
// A Source must be deterministic: the sequence it returns depends only on the
// Source itself, so that calls share no state and results are reproducible.
type Source interface {
	// Primes returns the first n primes of the sequence, in iteration order.
	// Fewer than n primes are returned when the sequence is exhausted.
	Primes(n int) []uint64
}

// primes generates an array containing all the odd prime numbers < below
func primes(below uint32) []uint32 {
	sieve := make([]bool, below)
	// Initially, all numbers starting from 2 are considered prime
	for i := 2; i < len(sieve); i++ {
		sieve[i] = true
	}
	// Now, we remove the multiples of every prime number we encounter
	for p := 2; p*p < len(sieve); p++ {
		if !sieve[p] {
			continue
		}
		for i := p << 1; i < len(sieve); i += p {
			sieve[i] = false
		}
	}
	// It is believed that there are approximately N / log N primes below N, so this
	// bounds is a decent estimate of our output size
	nF := float64(below)
	out := make([]uint32, 0, int(nF/math.Log(nF))+1)
	for p := uint32(3); p < below; p++ {
		if sieve[p] {
			out = append(out, p)
		}
	}

	return out
}

// Below is the sequence of odd primes smaller than a bound, in descending order.
//
// The primes are sieved on each call, so the bound should stay small; it is
// mostly useful for exercising many lifting rounds.
type Below uint32

// Primes implements Source.
func (b Below) Primes(n int) []uint64 {
	if b < 4 {
		return nil
	}
	ps := primes(uint32(b))
	out := make([]uint64, 0, n)
	for i := len(ps) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, uint64(ps[i]))
	}
	return out
}

// Medium is the sequence of the largest primes below 2^Bits, in descending order.
type Medium struct {
	Bits int
}

// DefaultPrimes is the prime source used by the Hensel driver unless configured otherwise.
var DefaultPrimes = Medium{Bits: params.PrimeBits}

// Primes implements Source.
func (m Medium) Primes(n int) []uint64 {
	checkBits(m.Bits)
	out := make([]uint64, 0, n)
	candidate := new(big.Int)
	// 2^Bits - 1 is odd
	for x := uint64(1)<<m.Bits - 1; x > 2 && len(out) < n; x -= 2 {
		if candidate.SetUint64(x).ProbablyPrime(params.PrimalityIterations) {
			out = append(out, x)
		}
	}
	return out
}

// Seeded is a pseudo-random sequence of distinct primes of a given width,
// derived deterministically from a seed.
type Seeded struct {
	seed []byte
	bits int
}

// NewSeeded creates a seeded source of bits-wide primes.
func NewSeeded(seed []byte, bits int) *Seeded {
	checkBits(bits)
	s := make([]byte, len(seed))
	copy(s, seed)
	return &Seeded{seed: s, bits: bits}
}

// Primes implements Source.
//
// Each prime is the smallest prime at or above a bits-wide odd number read
// from the seeded digest stream; candidates running past 2^bits are redrawn.
// The sequence ends after params.SeededMaxMisses draws in a row bring no new
// prime, so narrow widths return fewer than n primes.
func (s *Seeded) Primes(n int) []uint64 {
	h := hash.New(params.SeededPrimeDomain)
	if err := h.WriteAny(s.seed, uint64(s.bits)); err != nil {
		panic(fmt.Sprintf("sample.Seeded: %v", err))
	}
	stream := h.Digest()

	var (
		buf       [8]byte
		candidate = new(big.Int)
		top       = uint64(1) << s.bits
		mask      = top - 1
		seen      = make(map[uint64]bool, n)
		out       = make([]uint64, 0, n)
		misses    = 0
	)
	for len(out) < n && misses < params.SeededMaxMisses {
		if _, err := io.ReadFull(stream, buf[:]); err != nil {
			panic(fmt.Sprintf("sample.Seeded: internal hash failure: %v", err))
		}
		x := binary.BigEndian.Uint64(buf[:])&mask | top>>1 | 1
		for ; x < top; x += 2 {
			if candidate.SetUint64(x).ProbablyPrime(params.PrimalityIterations) {
				break
			}
		}
		if x >= top || seen[x] {
			misses++
			continue
		}
		misses = 0
		seen[x] = true
		out = append(out, x)
	}
	return out
}

func checkBits(bits int) {
	if bits < params.MinPrimeBits || bits > params.MaxPrimeBits {
		panic(fmt.Sprintf("sample: prime width %d out of range [%d, %d]", bits, params.MinPrimeBits, params.MaxPrimeBits))
	}
}
