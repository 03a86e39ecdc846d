package core

import "math/rand/v2"

// DefaultSeed seeds the generator when the caller does not pick one.
const DefaultSeed int64 = 2463534242

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
// A single instance is owned by the driver and advanced on every use.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic PCG-backed RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.Uint64()&1 == 1
}

// Int63 returns a non-negative random int64, used to derive child seeds.
func (r *RNG) Int63() int64 {
	return r.r.Int64()
}

// FillBinary fills the buffer with 0/1 values using the RNG.
func (r *RNG) FillBinary(buf []uint8) {
	for i := range buf {
		if r.Bool() {
			buf[i] = 1
			continue
		}
		buf[i] = 0
	}
}
