package mst

import (
	"fmt"

	"github.com/katalvlaran/spanviz/core"
	"github.com/katalvlaran/spanviz/dsu"
)

// Verify checks that edges form a forest inside g: every edge exists in g
// with the same weight and no edge closes a cycle. It returns the number
// of trees the forest leaves (1 means spanning tree).
//
// It is independent of the engines and backs the tarjan-verification
// catalog entry as well as tests.
// Complexity: O(V + E·α(V)).
func Verify(g *core.Graph, edges []core.Edge) (components int, err error) {
	const method = "Verify"
	if g == nil {
		return 0, fmt.Errorf("%s: %w", method, ErrNilGraph)
	}

	index := g.EdgeIndex()
	set := dsu.New(g.NodeCount())
	for i, e := range edges {
		at, ok := index[e.Key()]
		if !ok || g.Edges[at].Weight != e.Weight {
			return 0, fmt.Errorf("%s: edge[%d] %s: %w", method, i, e, ErrForeignEdge)
		}
		if !set.Union(e.From, e.To) {
			return 0, fmt.Errorf("%s: edge[%d] %s: %w", method, i, e, ErrCycle)
		}
	}

	return set.Count(), nil
}

// ReferenceWeight returns the weight of a minimum spanning forest of g,
// computed without pacing or notifications.
// Complexity: O(E log E).
func ReferenceWeight(g *core.Graph) float64 {
	set := dsu.New(g.NodeCount())
	var total float64
	for _, ei := range byWeight(g) {
		e := g.Edges[ei]
		if set.Union(e.From, e.To) {
			total += e.Weight
		}
	}

	return total
}
