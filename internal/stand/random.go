package stand

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

// RandomSource yields uniform draws in [0, 1).
// *rand.Rand satisfies it; tests use scripted sources.
type RandomSource interface {
	Float64() float64
}

// NewRNG returns a deterministic generator for the given seed.
func NewRNG(seed int64) *rand.Rand {
	// Non-cryptographic PRNG is intentional for reproducible games.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "stand"), seedWord(seed, "events")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}
