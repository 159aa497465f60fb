package params

const (
	// PrimeTrials is the number of candidate primes the Hensel driver tries
	// before giving up on the modular path.
	PrimeTrials = 50

	// PrimeBits is the width of the default prime range: candidates are the
	// largest odd primes below 2^PrimeBits.
	PrimeBits = 28

	// MinPrimeBits is the smallest width accepted for seeded prime sequences.
	MinPrimeBits = 8
	// MaxPrimeBits keeps primes within a machine word.
	MaxPrimeBits = 62

	// PrimalityIterations is the number of Miller-Rabin rounds used when
	// testing candidates.
	PrimalityIterations = 20

	// SeededMaxMisses is the number of consecutive draws without a new prime
	// after which a seeded sequence is considered exhausted.
	SeededMaxMisses = 1 << 10

	// SeededPrimeDomain separates seeded prime streams from any other use of the hash.
	SeededPrimeDomain = "polygcd/sample.Seeded"
)
