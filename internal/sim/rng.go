package sim

import (
	"math/rand"
	"time"
)

// Source is the randomness the simulation draws from.
// *rand.Rand satisfies it; tests inject scripted sources.
type Source interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// Intn returns a value in [0, n). n is always positive.
	Intn(n int) int
}

// NewSource returns a seeded pseudo-random source.
// A zero seed selects a time-based seed.
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Between returns an integer uniformly drawn from [lo, hi].
func Between(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.Intn(hi-lo+1)
}

// Pick returns a uniformly chosen element of a non-empty slice.
func Pick[T any](src Source, items []T) T {
	return items[src.Intn(len(items))]
}
