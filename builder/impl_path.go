// SPDX-License-Identifier: MIT
// Package: spanviz/builder
//
// impl_path.go - explicit fixtures: FromEdges and Path.
//
// Contract:
//   - Inputs are copied; the caller keeps ownership of its slices.
//   - The result satisfies core.Graph.Validate or an error is returned.
//   - Edge order is preserved exactly (no permutation).
//
// Complexity:
//   - Time: O(V + E).
//   - Space: O(V + E).

package builder

import (
	"fmt"

	"github.com/katalvlaran/spanviz/core"
)

// fromEdges copies nodes and edges into a graph, derives Size, and
// validates the result under method's name.
func fromEdges(method string, nodes []core.Node, edges []core.Edge) (*core.Graph, error) {
	g := &core.Graph{
		Nodes: make([]core.Node, len(nodes)),
		Edges: make([]core.Edge, len(edges)),
		Shape: core.ShapeGrid,
	}
	copy(g.Nodes, nodes)
	copy(g.Edges, edges)

	for _, n := range g.Nodes {
		if n.Row+1 > g.Size {
			g.Size = n.Row + 1
		}
		if n.Col+1 > g.Size {
			g.Size = n.Col + 1
		}
	}

	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", method, ErrInvalidGraph, err)
	}

	return g, nil
}

// buildPath lays len(weights)+1 nodes along row 0 and joins neighbours.
func buildPath(weights []float64) (*core.Graph, error) {
	n := len(weights) + 1
	if n < MinPathNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewVertices)
	}

	nodes := make([]core.Node, n)
	for i := range nodes {
		nodes[i] = core.Node{ID: i, Row: 0, Col: i}
	}
	edges := make([]core.Edge, len(weights))
	for i, w := range weights {
		edges[i] = core.Edge{From: i, To: i + 1, Weight: w}
	}

	return fromEdges(MethodPath, nodes, edges)
}
