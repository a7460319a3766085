package loop

import (
	"math/rand/v2"
	"time"
)

// RandomNumberInRange returns a random integer in [min, max].
// This is a pure function for easy testing.
func RandomNumberInRange(rng *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + rng.IntN(max-min+1)
}

// NewRng returns a PCG-backed generator. A zero seed seeds from the clock.
func NewRng(seed uint64) *rand.Rand {
	if seed == 0 {
		now := uint64(time.Now().UnixNano())
		return rand.New(rand.NewPCG(now, now>>32))
	}
	return rand.New(rand.NewPCG(seed, seed>>32))
}
