// SPDX-License-Identifier: MIT
// Package: spanviz/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generate itself never panics.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes the generator by mutating a builderConfig
// instance before graph construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and examples to lock outcomes.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
// Complexity: O(1) time, O(1) space.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithConnectionChance sets the probability that each candidate lattice
// edge is placed. Panics if p is outside [0,1].
// Complexity: O(1) time, O(1) space.
func WithConnectionChance(p float64) BuilderOption {
	if !(p >= MinProbability && p <= MaxProbability) {
		panic(fmt.Sprintf("builder: WithConnectionChance(%g) outside [0,1]", p))
	}

	return func(c *builderConfig) {
		c.connectionChance = p
	}
}

// WithShuffle toggles the final random permutation of the edge sequence.
// Disabling it yields edges in generation order, which golden tests use.
// Complexity: O(1) time, O(1) space.
func WithShuffle(on bool) BuilderOption {
	return func(c *builderConfig) {
		c.shuffle = on
	}
}
