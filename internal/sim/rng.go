package sim

// defaultSeed replaces a zero seed, which is a fixpoint of xorshift.
const defaultSeed uint64 = 0x9E3779B97F4A7C15

// Rand is a small deterministic xorshift64 generator.
// It is reproducible for a given seed and not suitable for anything
// beyond gameplay jitter.
type Rand struct {
	state uint64
}

// NewRand creates a generator seeded with seed.
func NewRand(seed int64) Rand {
	var r Rand
	r.Seed(seed)
	return r
}

// Seed resets the generator state.
func (r *Rand) Seed(seed int64) {
	r.state = uint64(seed)
	if r.state == 0 {
		r.state = defaultSeed
	}
}

// Uint64 advances the state and returns it.
func (r *Rand) Uint64() uint64 {
	if r.state == 0 {
		r.state = defaultSeed
	}
	x := r.state
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	r.state = x
	return x
}

// Float64 returns a value in [0, 1).
func (r *Rand) Float64() float64 {
	// Top 53 bits map exactly onto the float64 mantissa.
	return float64(r.Uint64()>>11) / (1 << 53)
}

// Range returns a value in [lo, hi). If hi <= lo it returns lo.
func (r *Rand) Range(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + r.Float64()*(hi-lo)
}
