// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for constructors.
// This file defines:
//   - Option (functional option over the unexported config),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - newConfig helper (internal) that resolves the random source.
//
// Design goals:
//   - No global state: every Matrix owns (or is given) its random source.
//   - Deterministic when asked: WithSeed/WithRand make random constructors reproducible.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Options only affect randomness and random bounds. Shape and values are
//     always passed explicitly to constructors.
//   - Derived matrices (Clone, Add, Mul, Transpose, ...) share the receiver's random source.
package matrix

import (
	"math"
	"math/rand"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxValue is the inclusive upper bound of randomly generated elements.
	// Random fill draws uniformly from [0, DefaultMaxValue].
	DefaultMaxValue = 9999

	// DefaultMaxDim is the inclusive upper bound of randomly chosen dimensions.
	// Random shapes draw uniformly from [1, DefaultMaxDim].
	DefaultMaxDim = 100
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicMaxValueInvalid = "matrix: WithMaxValue: bound must be in [0, MaxInt32]"
	panicMaxDimInvalid   = "matrix: WithMaxDim: bound must be >= 1"
	panicRandNil         = "matrix: WithRand: source must be non-nil"
)

// Option mutates the constructor configuration. Later options override earlier ones.
type Option func(*config)

// config is the effective configuration after applying Option setters.
// It is unexported; public entry points accept ...Option.
type config struct {
	rng      *rand.Rand // random source; nil until resolved by newConfig
	maxValue int        // inclusive element bound for random fill
	maxDim   int        // inclusive dimension bound for random shapes
}

// WithRand injects an explicit random source.
//
// Behavior highlights:
//   - The source is shared, not copied: matrices built from the same *rand.Rand
//     advance the same stream. *rand.Rand is NOT goroutine-safe.
//
// Errors:
//   - Panics when r is nil (programmer error).
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic(panicRandNil)
	}

	return func(c *config) { c.rng = r }
}

// WithSeed makes random construction reproducible.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed is used verbatim.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rngFromSeed(seed) }
}

// WithMaxValue sets the inclusive upper bound for random element values.
// Panics when bound < 0 or bound > math.MaxInt32.
func WithMaxValue(bound int) Option {
	if bound < 0 || bound > math.MaxInt32 {
		panic(panicMaxValueInvalid)
	}

	return func(c *config) { c.maxValue = bound }
}

// WithMaxDim sets the inclusive upper bound for randomly chosen row/column counts.
// Panics when bound < 1, since random shapes are never empty.
func WithMaxDim(bound int) Option {
	if bound < 1 {
		panic(panicMaxDimInvalid)
	}

	return func(c *config) { c.maxDim = bound }
}

// newConfig applies opts over the defaults and resolves a missing random
// source to a fresh time-seeded one.
// Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	cfg := config{
		maxValue: DefaultMaxValue,
		maxDim:   DefaultMaxDim,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = newTimeRNG()
	}

	return cfg
}
