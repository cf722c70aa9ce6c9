// SPDX-License-Identifier: MIT
// Package matrix - random source helpers shared by random constructors.
//
// Goals:
//   - Injectable: every random draw goes through a *rand.Rand owned by the matrix config.
//   - Determinism on request: same seed ⇒ identical matrices across runs.
//   - No package-level generator; an unseeded matrix gets its own time-seeded stream.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share one source across goroutines.
package matrix

import (
	"math/rand"
	"time"
)

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// newTimeRNG returns a source seeded from the wall clock.
func newTimeRNG() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// uniformInclusive draws from [0, bound]. bound must be >= 0.
func uniformInclusive(r *rand.Rand, bound int) int32 {
	return int32(r.Intn(bound + 1))
}

// randomDim draws a dimension from [1, maxDim].
func randomDim(r *rand.Rand, maxDim int) int {
	return 1 + r.Intn(maxDim)
}

// fillUniform overwrites buf with draws from [0, bound] in index order.
// Complexity: O(len(buf)).
func fillUniform(buf []int32, r *rand.Rand, bound int) {
	for i := range buf {
		buf[i] = uniformInclusive(r, bound)
	}
}
