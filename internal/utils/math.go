package utils

import (
	"math/rand"
	"time"
)

// NewRand returns a seeded game RNG. A zero seed picks one from the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	//nolint:gosec // G404: math/rand is acceptable for game mechanics, not for cryptographic purposes
	return rand.New(rand.NewSource(seed))
}

// RollRange returns a random integer between min and max (inclusive)
func RollRange(rng *rand.Rand, min, max int) int {
	if min >= max {
		return min
	}
	return rng.Intn(max-min+1) + min
}

// Chance returns true with probability p
func Chance(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}

// Uniform returns a float64 in [lo, hi)
func Uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// Pick returns a uniformly chosen element. It panics on an empty slice.
func Pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.Intn(len(items))]
}

// Weighted is one outcome of a weighted draw.
type Weighted[T any] struct {
	Value  T
	Weight int
}

// PickWeighted draws one value proportionally to its weight.
func PickWeighted[T any](rng *rand.Rand, table []Weighted[T]) T {
	total := 0
	for _, w := range table {
		total += w.Weight
	}
	roll := rng.Intn(total)
	for _, w := range table {
		if roll < w.Weight {
			return w.Value
		}
		roll -= w.Weight
	}
	return table[len(table)-1].Value
}
