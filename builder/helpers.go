// Package builder provides internal helper functions used by the shape
// implementations.
//
// Design principles:
//   - Single Responsibility: each helper does one well-defined job.
//   - Performance: edges are deduplicated by canonical key, never by scan.
package builder

import (
	"github.com/katalvlaran/spanviz/core"
	"github.com/katalvlaran/spanviz/gridgraph"
)

// edgeSet accumulates undirected edges in insertion order and rejects
// duplicate pairs.
type edgeSet struct {
	edges []core.Edge
	keys  map[core.EdgeKey]struct{}
}

// newEdgeSet returns an empty set sized for about capHint edges.
func newEdgeSet(capHint int) *edgeSet {
	return &edgeSet{
		edges: make([]core.Edge, 0, capHint),
		keys:  make(map[core.EdgeKey]struct{}, capHint),
	}
}

// has reports whether the pair (a, b) is already present.
// Complexity: O(1).
func (s *edgeSet) has(a, b core.NodeID) bool {
	_, ok := s.keys[core.KeyOf(a, b)]

	return ok
}

// add appends (a, b, w) unless the pair is present; reports whether it did.
// Complexity: O(1) amortised.
func (s *edgeSet) add(a, b core.NodeID, w float64) bool {
	k := core.KeyOf(a, b)
	if _, ok := s.keys[k]; ok {
		return false
	}
	s.keys[k] = struct{}{}
	s.edges = append(s.edges, core.Edge{From: a, To: b, Weight: w})

	return true
}

// placeNodes creates one node per inside cell in row-major order and
// returns the lattice-index → node-id table (-1 for outside cells).
// Complexity: O(size²).
func placeNodes(mask *gridgraph.Mask) (*core.Graph, []core.NodeID) {
	ids := make([]core.NodeID, mask.Size*mask.Size)
	for i := range ids {
		ids[i] = -1
	}
	g := &core.Graph{
		Nodes: make([]core.Node, 0, mask.Count()),
		Shape: mask.Shape,
		Size:  mask.Size,
	}
	for _, idx := range mask.Cells() {
		row, col := mask.Coordinate(idx)
		id := len(g.Nodes)
		ids[idx] = id
		g.Nodes = append(g.Nodes, core.Node{ID: id, Row: row, Col: col})
	}

	return g, ids
}

// placeLatticeEdges visits kept cells in row-major order and places the
// right then the bottom edge, each with probability cfg.connectionChance.
// The chance draw precedes the weight draw so a fixed seed is stable.
// Complexity: O(size²).
func placeLatticeEdges(cfg builderConfig, mask *gridgraph.Mask, ids []core.NodeID, set *edgeSet) {
	size := mask.Size
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			from := ids[row*size+col]
			if from < 0 {
				continue
			}
			if col+1 < size {
				if to := ids[row*size+col+1]; to >= 0 && cfg.rng.Float64() < cfg.connectionChance {
					set.add(from, to, cfg.weightFn(cfg.rng))
				}
			}
			if row+1 < size {
				if to := ids[(row+1)*size+col]; to >= 0 && cfg.rng.Float64() < cfg.connectionChance {
					set.add(from, to, cfg.weightFn(cfg.rng))
				}
			}
		}
	}
}

// latticeAdjacent reports whether a and b are orthogonal lattice neighbours.
func latticeAdjacent(a, b core.Node) bool {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}

	return dr+dc == 1
}

// markBoundary sets IsBoundary on every edge with an endpoint whose cell
// has an outside 4-neighbour.
// Complexity: O(E).
func markBoundary(edges []core.Edge, nodes []core.Node, mask *gridgraph.Mask) {
	for i := range edges {
		a, b := nodes[edges[i].From], nodes[edges[i].To]
		edges[i].IsBoundary = mask.OnBoundary(a.Row, a.Col) || mask.OnBoundary(b.Row, b.Col)
	}
}
