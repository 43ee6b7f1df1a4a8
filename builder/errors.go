// SPDX-License-Identifier: MIT
// Package: spanviz/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach method context with %w.
//   • Generation never panics at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates a lattice size below MinSize.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrEmptyShape indicates the shape mask kept zero lattice cells.
var ErrEmptyShape = errors.New("builder: shape yields no nodes")

// ErrUnknownShape indicates a shape value outside core.Shapes().
var ErrUnknownShape = errors.New("builder: unknown shape")

// ErrUnknownWeights indicates a weight profile name outside WeightProfiles().
var ErrUnknownWeights = errors.New("builder: unknown weight profile")

// ErrInvalidProbability indicates a connection chance outside [0,1]
// reaching a runtime entry point (options panic instead).
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrInvalidGraph indicates explicit nodes/edges handed to FromEdges that
// violate a core.Graph invariant. The underlying core sentinel is wrapped
// as well, so errors.Is works against both.
var ErrInvalidGraph = errors.New("builder: invalid graph data")
