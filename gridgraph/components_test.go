package gridgraph_test

import (
	"testing"

	"github.com/katalvlaran/spanviz/core"
	"github.com/katalvlaran/spanviz/gridgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConnectedComponents_Grid expects one region covering every cell.
func TestConnectedComponents_Grid(t *testing.T) {
	m, err := gridgraph.NewMask(4, core.ShapeGrid, gridgraph.DefaultMaskOptions())
	require.NoError(t, err)

	comps := m.ConnectedComponents()
	require.Len(t, comps, 1)
	assert.Len(t, comps[0], 16)
	assert.Equal(t, 0, comps[0][0], "BFS starts at the first inside cell")
}

// TestConnectedComponents_Empty expects no regions for an empty mask.
func TestConnectedComponents_Empty(t *testing.T) {
	m, err := gridgraph.NewMask(2, core.ShapeCircle, gridgraph.DefaultMaskOptions())
	require.NoError(t, err)
	assert.Empty(t, m.ConnectedComponents())
}

// TestConnectedComponents_CoverInside checks that the regions partition
// the inside cells and that diagonal connectivity never adds regions.
func TestConnectedComponents_CoverInside(t *testing.T) {
	for _, s := range core.Shapes() {
		m4, err := gridgraph.NewMask(11, s, gridgraph.DefaultMaskOptions())
		require.NoError(t, err)
		m8, err := gridgraph.NewMask(11, s, gridgraph.MaskOptions{Conn: gridgraph.Conn8})
		require.NoError(t, err)

		c4 := m4.ConnectedComponents()
		total := 0
		seen := make(map[int]bool)
		for _, comp := range c4 {
			for _, idx := range comp {
				assert.False(t, seen[idx], "%v: cell %d in two regions", s, idx)
				seen[idx] = true
			}
			total += len(comp)
		}
		assert.Equal(t, m4.Count(), total, "%v", s)
		assert.LessOrEqual(t, len(m8.ConnectedComponents()), len(c4), "%v", s)
	}
}

// TestCountRegions matches both connectivities against the mask itself.
func TestCountRegions(t *testing.T) {
	r, err := gridgraph.CountRegions(5, core.ShapeGrid)
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Regions{Orthogonal: 1, Diagonal: 1}, r)
	assert.False(t, r.Split())

	r, err = gridgraph.CountRegions(2, core.ShapeCircle)
	require.NoError(t, err)
	assert.Zero(t, r.Orthogonal)

	for _, s := range core.Shapes() {
		r, err := gridgraph.CountRegions(11, s)
		require.NoError(t, err)
		m, err := gridgraph.NewMask(11, s, gridgraph.DefaultMaskOptions())
		require.NoError(t, err)
		assert.Equal(t, len(m.ConnectedComponents()), r.Orthogonal, "%v", s)
		assert.LessOrEqual(t, r.Diagonal, r.Orthogonal, "%v", s)
		assert.Equal(t, r.Orthogonal > 1, r.Split(), "%v", s)
	}

	_, err = gridgraph.CountRegions(0, core.ShapeGrid)
	assert.ErrorIs(t, err, gridgraph.ErrBadSize)
}
