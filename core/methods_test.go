package core_test

import (
	"testing"

	"github.com/katalvlaran/spanviz/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// square returns the 4-cycle 0-1-2-3-0 on a 2×2 lattice.
func square() *core.Graph {
	return &core.Graph{
		Nodes: []core.Node{{ID: 0}, {ID: 1, Col: 1}, {ID: 2, Row: 1, Col: 1}, {ID: 3, Row: 1}},
		Edges: []core.Edge{
			{From: 0, To: 1, Weight: 1},
			{From: 1, To: 2, Weight: 5},
			{From: 2, To: 3, Weight: 2},
			{From: 0, To: 3, Weight: 10},
		},
		Size: 2,
	}
}

// TestValidate covers every invariant violation.
func TestValidate(t *testing.T) {
	require.NoError(t, square().Validate())

	tests := []struct {
		name   string
		mutate func(g *core.Graph)
		want   error
	}{
		{"no nodes", func(g *core.Graph) { g.Nodes = nil }, core.ErrNoNodes},
		{"sparse ids", func(g *core.Graph) { g.Nodes[2].ID = 5 }, core.ErrNodeIDNotDense},
		{"missing endpoint", func(g *core.Graph) { g.Edges[0].To = 4 }, core.ErrNodeNotFound},
		{"negative endpoint", func(g *core.Graph) { g.Edges[0].From = -1 }, core.ErrNodeNotFound},
		{"self loop", func(g *core.Graph) { g.Edges[1].To = 1 }, core.ErrSelfLoop},
		{"zero weight", func(g *core.Graph) { g.Edges[2].Weight = 0 }, core.ErrBadWeight},
		{"duplicate pair", func(g *core.Graph) { g.Edges[3] = core.Edge{From: 1, To: 0, Weight: 3} }, core.ErrDuplicateEdge},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := square()
			tc.mutate(g)
			assert.ErrorIs(t, g.Validate(), tc.want)
		})
	}

	var nilGraph *core.Graph
	assert.ErrorIs(t, nilGraph.Validate(), core.ErrNoNodes)
}

// TestCounts covers the O(1)/O(E) accessors.
func TestCounts(t *testing.T) {
	g := square()
	assert.Equal(t, 4, g.NodeCount())
	assert.Equal(t, 4, g.EdgeCount())
	assert.True(t, g.HasNode(3))
	assert.False(t, g.HasNode(4))
	assert.InDelta(t, 18.0, g.TotalWeight(), 1e-9)
}

// TestIncidence lists incident edge indices in edge order.
func TestIncidence(t *testing.T) {
	inc := square().Incidence()
	require.Len(t, inc, 4)
	assert.Equal(t, []int{0, 3}, inc[0])
	assert.Equal(t, []int{0, 1}, inc[1])
	assert.Equal(t, []int{1, 2}, inc[2])
	assert.Equal(t, []int{2, 3}, inc[3])

	idx := square().EdgeIndex()
	assert.Equal(t, 3, idx[core.KeyOf(3, 0)])
}

// TestComponents covers connected, split, and empty graphs.
func TestComponents(t *testing.T) {
	g := square()
	assert.Equal(t, 1, g.Components())
	assert.True(t, g.IsConnected())

	g.Edges = []core.Edge{{From: 0, To: 1, Weight: 1}}
	assert.Equal(t, 3, g.Components())
	assert.False(t, g.IsConnected())

	assert.Equal(t, 0, (&core.Graph{}).Components())
}

// TestCentroid averages (col, row).
func TestCentroid(t *testing.T) {
	x, y := square().Centroid()
	assert.InDelta(t, 0.5, x, 1e-12)
	assert.InDelta(t, 0.5, y, 1e-12)

	x, y = (&core.Graph{}).Centroid()
	assert.Zero(t, x)
	assert.Zero(t, y)
}
