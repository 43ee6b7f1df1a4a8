// Package builder defines shared constants used by the generator, ensuring
// consistent defaults and validation across every shape.
package builder

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors with the entry point for context.
//-----------------------------------------------------------------------------

const (
	// MethodGenerate is the canonical name for the Generate entry point.
	MethodGenerate = "Generate"
	// MethodFromEdges is the canonical name for the FromEdges constructor.
	MethodFromEdges = "FromEdges"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
)

//-----------------------------------------------------------------------------
// Sizes
//-----------------------------------------------------------------------------

// MinSize is the smallest lattice side length Generate accepts.
// A 1×1 lattice has no edges and nothing to animate.
const MinSize = 2

// MinPathNodes is the smallest meaningful size for a simple path.
const MinPathNodes = 2

//-----------------------------------------------------------------------------
// Default Weights and Probability Bounds
//-----------------------------------------------------------------------------

// DefaultConnectionChance is the probability that a candidate lattice edge
// is placed before back-filling.
const DefaultConnectionChance = 0.85

// DefaultMinWeight and DefaultMaxWeight bound the default uniform weight
// draw: w = DefaultMinWeight + U[0,1)·(DefaultMaxWeight-DefaultMinWeight).
const (
	DefaultMinWeight = 1.0
	DefaultMaxWeight = 101.0
)

// MinProbability is the lower bound for the connection chance, inclusive.
const MinProbability = 0.0

// MaxProbability is the upper bound for the connection chance, inclusive.
const MaxProbability = 1.0
