// SPDX-License-Identifier: MIT
// Package: spanviz/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - Generate is the one stochastic entry point; FromEdges and Path build
//     explicit fixtures.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same size, shape, options, and seed ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors wrapped with method context.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spanviz/core"
	"github.com/katalvlaran/spanviz/gridgraph"
)

// Generate produces a random weighted graph on a size×size lattice masked
// to shape.
//
// Steps:
//  1. Validate size (≥ MinSize) and shape.
//  2. Keep every lattice cell the shape mask accepts; ids are assigned in
//     row-major order.
//  3. Place each right/bottom edge between kept cells with the configured
//     connection chance, weighted by the configured WeightFn.
//  4. Back-fill: the first row and first column for grid, successive
//     lattice-adjacent nodes for every other shape.
//  5. Flag boundary edges, then permute the edge order (unless disabled).
//
// Connectivity is best effort: a sparse mask or a low connection chance
// can still yield a disconnected graph.
//
// Errors:
//   - ErrTooFewVertices if size < MinSize.
//   - ErrUnknownShape if shape is not declared in core.
//   - ErrEmptyShape if the mask keeps no cells.
//
// Complexity: O(size²) time and memory.
func Generate(size int, shape core.Shape, opts ...BuilderOption) (*core.Graph, error) {
	// 1. Validate parameters before touching the RNG.
	if size < MinSize {
		return nil, fmt.Errorf("%s: size=%d, min %d: %w", MethodGenerate, size, MinSize, ErrTooFewVertices)
	}
	if !shape.Valid() {
		return nil, fmt.Errorf("%s: %v: %w", MethodGenerate, shape, ErrUnknownShape)
	}
	cfg := newBuilderConfig(opts...)

	// 2. Evaluate the mask and place nodes.
	mask, err := gridgraph.NewMask(size, shape, gridgraph.DefaultMaskOptions())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodGenerate, err)
	}
	if mask.Count() == 0 {
		return nil, fmt.Errorf("%s: %v size=%d: %w", MethodGenerate, shape, size, ErrEmptyShape)
	}
	g, ids := placeNodes(mask)

	// 3-4. Random placement, then the shape's back-fill policy.
	set := newEdgeSet(2 * mask.Count())
	placeLatticeEdges(cfg, mask, ids, set)
	if shape == core.ShapeGrid {
		backfillGrid(cfg, size, set)
	} else {
		backfillLinear(cfg, g.Nodes, set)
	}

	// 5. Rendering hint and final order.
	markBoundary(set.edges, g.Nodes, mask)
	if cfg.shuffle {
		cfg.rng.Shuffle(len(set.edges), func(i, j int) {
			set.edges[i], set.edges[j] = set.edges[j], set.edges[i]
		})
	}
	g.Edges = set.edges

	return g, nil
}

// FromEdges builds a validated graph from explicit nodes and edges.
// Inputs are copied. Size is derived from the largest row/col seen.
//
// Errors: ErrInvalidGraph wrapping the violated core sentinel.
// Complexity: O(V + E).
func FromEdges(nodes []core.Node, edges []core.Edge) (*core.Graph, error) {
	return fromEdges(MethodFromEdges, nodes, edges)
}

// Path builds the path 0-1-…-n on a single lattice row, where edge i
// (i → i+1) carries weights[i]. It needs at least one weight.
//
// Errors: ErrTooFewVertices if no weights are given; ErrInvalidGraph if a
// weight is not strictly positive.
// Complexity: O(len(weights)).
func Path(weights ...float64) (*core.Graph, error) {
	return buildPath(weights)
}
