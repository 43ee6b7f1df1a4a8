package mst

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/spanviz/core"
)

func orderFixture() *core.Graph {
	return &core.Graph{
		Nodes: []core.Node{{ID: 0}, {ID: 1, Col: 1}, {ID: 2, Row: 1}, {ID: 3, Row: 1, Col: 1}},
		Edges: []core.Edge{
			{From: 2, To: 3, Weight: 2.5},
			{From: 0, To: 1, Weight: 2.5},
			{From: 1, To: 3, Weight: 1.75},
			{From: 0, To: 2, Weight: 2.25},
			{From: 0, To: 3, Weight: 9},
		},
	}
}

func weights(g *core.Graph, idx []int) []float64 {
	out := make([]float64, len(idx))
	for i, ei := range idx {
		out[i] = g.Edges[ei].Weight
	}

	return out
}

func isPermutation(idx []int, m int) bool {
	cp := append([]int(nil), idx...)
	sort.Ints(cp)
	for i, v := range cp {
		if v != i {
			return false
		}
	}

	return len(cp) == m
}

func TestOrders_AscendingWeight(t *testing.T) {
	g := orderFixture()
	for name, ord := range map[string]order{
		OrderWeight:        byWeight,
		OrderIntegerBucket: byIntegerBucket,
		OrderShuffleWeight: shuffledByWeight,
		OrderEndpointSum:   byWeightEndpointSum,
	} {
		idx := ord(g)
		assert.True(t, isPermutation(idx, g.EdgeCount()), name)
		assert.IsNonDecreasing(t, weights(g, idx), name)
	}
}

func TestOrders_TieBreaks(t *testing.T) {
	g := orderFixture()

	// Stable: equal weights keep edge order.
	assert.Equal(t, []int{2, 3, 0, 1, 4}, byWeight(g))

	// Endpoint sum: 0-1 (1) before 2-3 (5).
	assert.Equal(t, []int{2, 3, 1, 0, 4}, byWeightEndpointSum(g))

	// Buckets hold 1.75 | 2.25 2.5 2.5 | 9 and sort inside.
	assert.Equal(t, []int{2, 3, 0, 1, 4}, byIntegerBucket(g))
}

func TestIntegerBucket_WideRangeFallsBack(t *testing.T) {
	g := &core.Graph{
		Nodes: []core.Node{{ID: 0}, {ID: 1}, {ID: 2}},
		Edges: []core.Edge{
			{From: 0, To: 1, Weight: 5e9},
			{From: 1, To: 2, Weight: 1},
		},
	}
	assert.Equal(t, []int{1, 0}, byIntegerBucket(g))
	assert.Nil(t, byIntegerBucket(&core.Graph{Nodes: g.Nodes}))
}

func TestIntegerBucket_HugeWeightsFallBack(t *testing.T) {
	for _, huge := range []float64{1e19, 1 << 53, math.MaxFloat64, math.Inf(1)} {
		g := &core.Graph{
			Nodes: []core.Node{{ID: 0}, {ID: 1}, {ID: 2}},
			Edges: []core.Edge{
				{From: 0, To: 1, Weight: huge},
				{From: 1, To: 2, Weight: 2},
			},
		}
		assert.NotPanics(t, func() {
			assert.Equal(t, []int{1, 0}, byIntegerBucket(g), "weight %g", huge)
		})
	}

	// Just under the exact-int limit the buckets still apply.
	g := &core.Graph{
		Nodes: []core.Node{{ID: 0}, {ID: 1}, {ID: 2}},
		Edges: []core.Edge{
			{From: 0, To: 1, Weight: 1<<53 - 1},
			{From: 1, To: 2, Weight: 1<<53 - 2},
		},
	}
	assert.Equal(t, []int{1, 0}, byIntegerBucket(g))
}

func TestByAngle_GroupsSectors(t *testing.T) {
	g := orderFixture()
	idx := byAngle(g)
	assert.True(t, isPermutation(idx, g.EdgeCount()))

	// Sectors around the centroid (0.5, 0.5): 0-1 → 15, 1-3 and 0-3 → 31
	// (then by weight), 2-3 → 47, 0-2 → 62.
	cx, cy := g.Centroid()
	assert.Equal(t, 0.5, cx)
	assert.Equal(t, 0.5, cy)
	assert.Equal(t, []int{1, 2, 4, 0, 3}, idx)
}
