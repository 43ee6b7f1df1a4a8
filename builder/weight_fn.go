// Package builder provides helper functions and types for configuring
// edge-weight distributions in the generator.
package builder

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
)

// WeightFn produces an edge weight from the generator's RNG.
// It must be deterministic for a given RNG seed and must return values > 0.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn samples uniformly in [DefaultMinWeight, DefaultMaxWeight).
// Complexity: O(1) time, O(1) space. Never panics.
func DefaultWeightFn(rng *rand.Rand) float64 {
	return DefaultMinWeight + rng.Float64()*(DefaultMaxWeight-DefaultMinWeight)
}

// ConstantWeightFn returns a WeightFn that always yields the provided value.
// Panics if value <= 0.
// Complexity: O(1) time, O(1) space.
func ConstantWeightFn(value float64) WeightFn {
	if !(value > 0) {
		panic(fmt.Sprintf("ConstantWeightFn: value must be > 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max).
// Panics if min <= 0 or max < min.
// Complexity: O(1) time, O(1) space.
func UniformWeightFn(min, max float64) WeightFn {
	if !(min > 0) || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 < min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if max == min {
			// Degenerate interval: constant
			return min
		}
		// Continuous uniform on [min, max) (Float64() returns [0,1))
		return min + rng.Float64()*(max-min)
	}
}

// IntegerWeightFn returns a WeightFn sampling integers uniformly in
// [min, max]. Integer weights make ties common, which is what the
// tie-breaking catalog entries are for.
// Panics if min < 1 or max < min.
// Complexity: O(1) time, O(1) space.
func IntegerWeightFn(min, max int) WeightFn {
	if min < 1 || max < min {
		panic(fmt.Sprintf("IntegerWeightFn: require 1 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) float64 {
		return float64(min + rng.Intn(max-min+1))
	}
}

// ExponentialWeightFn returns a WeightFn sampling 1 + Exp(rate), so the
// weight is strictly positive. Panics if rate ≤ 0.
// Complexity: O(1) time, O(1) space.
func ExponentialWeightFn(rate float64) WeightFn {
	if rate <= 0 {
		panic(fmt.Sprintf("ExponentialWeightFn: rate must be > 0, got %f", rate))
	}

	return func(rng *rand.Rand) float64 {
		return 1 + math.Abs(rng.ExpFloat64()/rate)
	}
}

// WithConstantWeight sets a fixed edge weight via ConstantWeightFn.
// Complexity: O(1).
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets weights ∼ U[min,max) via UniformWeightFn.
// Complexity: O(1).
func WithUniformWeight(min, max float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithIntegerWeight sets integer weights ∼ U{min..max} via IntegerWeightFn.
// Complexity: O(1).
func WithIntegerWeight(min, max int) BuilderOption {
	return WithWeightFn(IntegerWeightFn(min, max))
}

// WithExponentialWeight sets weights ∼ 1+Exp(rate) via ExponentialWeightFn.
// Complexity: O(1).
func WithExponentialWeight(rate float64) BuilderOption {
	return WithWeightFn(ExponentialWeightFn(rate))
}

// Weight profile names accepted by WeightProfile.
const (
	WeightsUniform     = "uniform"
	WeightsInteger     = "integer"
	WeightsConstant    = "constant"
	WeightsExponential = "exponential"
)

// Parameters of the named weight profiles.
const (
	// IntegerWeightMax bounds the integer profile to U{1..IntegerWeightMax};
	// a small range makes equal weights frequent.
	IntegerWeightMax = 20
	// ConstantWeight is the weight of every edge under the constant profile.
	ConstantWeight = 1.0
	// ExponentialRate gives the exponential profile a mean of 1 + 1/rate.
	ExponentialRate = 0.05
)

var weightProfiles = []string{WeightsUniform, WeightsInteger, WeightsConstant, WeightsExponential}

// WeightProfiles returns the names accepted by WeightProfile.
func WeightProfiles() []string {
	out := make([]string, len(weightProfiles))
	copy(out, weightProfiles)

	return out
}

// WeightProfile maps a case-insensitive profile name to the option that
// installs its weight function. Returns ErrUnknownWeights for other names.
func WeightProfile(name string) (BuilderOption, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case WeightsUniform:
		return WithUniformWeight(DefaultMinWeight, DefaultMaxWeight), nil
	case WeightsInteger:
		return WithIntegerWeight(1, IntegerWeightMax), nil
	case WeightsConstant:
		return WithConstantWeight(ConstantWeight), nil
	case WeightsExponential:
		return WithExponentialWeight(ExponentialRate), nil
	default:
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownWeights)
	}
}
