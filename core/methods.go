package core

import (
	"fmt"

	"github.com/katalvlaran/spanviz/dsu"
)

// NodeCount returns |V|.
// Complexity: O(1).
func (g *Graph) NodeCount() int { return len(g.Nodes) }

// EdgeCount returns |E|.
// Complexity: O(1).
func (g *Graph) EdgeCount() int { return len(g.Edges) }

// HasNode reports whether id is a valid node id of g.
// Complexity: O(1).
func (g *Graph) HasNode(id NodeID) bool { return id >= 0 && id < len(g.Nodes) }

// TotalWeight returns the sum of all edge weights.
// Complexity: O(E).
func (g *Graph) TotalWeight() float64 {
	var total float64
	for _, e := range g.Edges {
		total += e.Weight
	}

	return total
}

// Validate checks the structural invariants of g:
//  1. at least one node, ids dense 0..N-1 in order;
//  2. every edge references existing ids and is not a self-loop;
//  3. every weight is strictly positive;
//  4. no two edges share the same canonical key.
//
// Returns the first violation found, wrapped with its position.
// Complexity: O(V + E) time, O(E) memory.
func (g *Graph) Validate() error {
	if g == nil || len(g.Nodes) == 0 {
		return ErrNoNodes
	}
	for i, n := range g.Nodes {
		if n.ID != i {
			return fmt.Errorf("node[%d] has id %d: %w", i, n.ID, ErrNodeIDNotDense)
		}
	}

	seen := make(map[EdgeKey]struct{}, len(g.Edges))
	for i, e := range g.Edges {
		if !g.HasNode(e.From) || !g.HasNode(e.To) {
			return fmt.Errorf("edge[%d] %d-%d: %w", i, e.From, e.To, ErrNodeNotFound)
		}
		if e.From == e.To {
			return fmt.Errorf("edge[%d] %d-%d: %w", i, e.From, e.To, ErrSelfLoop)
		}
		if !(e.Weight > 0) {
			return fmt.Errorf("edge[%d] %d-%d w=%g: %w", i, e.From, e.To, e.Weight, ErrBadWeight)
		}
		k := e.Key()
		if _, dup := seen[k]; dup {
			return fmt.Errorf("edge[%d] %s: %w", i, k, ErrDuplicateEdge)
		}
		seen[k] = struct{}{}
	}

	return nil
}

// Incidence returns, for every node id, the indices into g.Edges of the
// edges touching it. Indices appear in edge order.
// Complexity: O(V + E).
func (g *Graph) Incidence() [][]int {
	inc := make([][]int, len(g.Nodes))
	for i, e := range g.Edges {
		inc[e.From] = append(inc[e.From], i)
		inc[e.To] = append(inc[e.To], i)
	}

	return inc
}

// EdgeIndex maps every canonical key to its index in g.Edges.
// Complexity: O(E).
func (g *Graph) EdgeIndex() map[EdgeKey]int {
	idx := make(map[EdgeKey]int, len(g.Edges))
	for i, e := range g.Edges {
		idx[e.Key()] = i
	}

	return idx
}

// Components returns the number of connected components of g.
// An empty graph has zero components.
// Complexity: O(V + E·α(V)).
func (g *Graph) Components() int {
	if len(g.Nodes) == 0 {
		return 0
	}
	set := dsu.New(len(g.Nodes))
	for _, e := range g.Edges {
		set.Union(e.From, e.To)
	}

	return set.Count()
}

// IsConnected reports whether every node is reachable from every other.
// Complexity: O(V + E·α(V)).
func (g *Graph) IsConnected() bool { return g.Components() == 1 }

// Centroid returns the mean (col, row) position of all nodes.
// Complexity: O(V).
func (g *Graph) Centroid() (x, y float64) {
	if len(g.Nodes) == 0 {
		return 0, 0
	}
	for _, n := range g.Nodes {
		x += float64(n.Col)
		y += float64(n.Row)
	}
	count := float64(len(g.Nodes))

	return x / count, y / count
}
