// SPDX-License-Identifier: MIT
// Package: spanviz/builder
//
// config.go — internal configuration and defaults.
//
// Design:
//   • builderConfig is the single source of truth for all generator knobs.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Defaults:
//   • rng              = time-seeded source (set WithSeed for reproducible graphs)
//   • weightFn         = DefaultWeightFn    (uniform [1,101))
//   • connectionChance = 0.85
//   • shuffle          = true               (final edge order is permuted)

package builder

import (
	"math/rand"
	"time"
)

// builderConfig aggregates all knobs used by the generator.
// It is passed by VALUE to the shape implementations.
type builderConfig struct {
	// RNG for edge placement, weights, and the final permutation.
	rng *rand.Rand
	// Weight generator for placed edges.
	weightFn WeightFn
	// Probability that a candidate lattice edge is placed.
	connectionChance float64
	// Whether to permute the edge order before returning.
	shuffle bool
}

// newBuilderConfig constructs a config with defaults and applies all
// options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weightFn:         DefaultWeightFn,
		connectionChance: DefaultConnectionChance,
		shuffle:          true,
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return cfg
}
