package bass

import "github.com/cwbudde/algo-bass/dsp/core"

// XorShift32 is Marsaglia's 32-bit xorshift generator.
type XorShift32 struct {
	state uint32
}

// NewXorShift32 returns a generator seeded with seed. A zero seed is
// replaced by core.DefaultSeed since the generator never leaves zero.
func NewXorShift32(seed uint32) XorShift32 {
	var r XorShift32
	r.Seed(seed)
	return r
}

// Seed resets the generator state.
func (r *XorShift32) Seed(seed uint32) {
	if seed == 0 {
		seed = core.DefaultSeed
	}
	r.state = seed
}

// Next advances the generator and returns the new state.
func (r *XorShift32) Next() uint32 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}
