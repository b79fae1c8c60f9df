package rng

// LCG is a linear congruential generator producing a deterministic,
// reproducible pseudo-random stream from a fixed seed.
//
// Parameters (Knuth MMIX):
//
//	Multiplier: 6364136223846793005
//	Increment:  1442695040888963407
//	Modulus:    2^64 (implicit via uint64 overflow)
type LCG struct {
	state uint64
}

// New creates a new LCG with the given seed.
func New(seed int64) *LCG {
	return &LCG{state: uint64(seed)}
}

// Next advances the state and returns the next pseudo-random uint64.
func (l *LCG) Next() uint64 {
	l.state = l.state*6364136223846793005 + 1442695040888963407
	return l.state
}

// Float64 returns a pseudo-random float64 in [0.0, 1.0).
// The top 53 bits of the state are used, matching float64 precision.
func (l *LCG) Float64() float64 {
	return float64(l.Next()>>11) / (1 << 53)
}

// Intn returns a pseudo-random int in [0, n).
// Returns 0 if n <= 0.
func (l *LCG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(l.Next() % uint64(n))
}

// Source returns a nullary function yielding the generator's [0,1) stream.
// The returned function shares this LCG's state.
func (l *LCG) Source() func() float64 {
	return l.Float64
}

// Constant returns a source that always yields v. Useful for tests and
// noise-free generation where draw order must still be exercised.
func Constant(v float64) func() float64 {
	return func() float64 { return v }
}
