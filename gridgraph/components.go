package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/spanviz/core"
)

// ConnectedComponents finds all contiguous regions of inside cells
// according to m.Conn connectivity.
// Returns a slice of components; each component is a slice of cell indices
// (row-major) in BFS order, and components appear in order of their first
// cell.
//
// To convert an index back to (row, col), use Coordinate.
//
// Time:   O(size²·d), where d = 4 or 8.
// Memory: O(size²) for visited flags and output.
func (m *Mask) ConnectedComponents() [][]int {
	seen := make([]bool, len(m.inside))
	var comps [][]int
	offsets := m.NeighborOffsets()

	for i0, in := range m.inside {
		if !in || seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		var comp []int

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			ur, uc := m.Coordinate(u)
			for _, d := range offsets {
				vr, vc := ur+d[0], uc+d[1]
				if !m.Inside(vr, vc) {
					continue
				}
				vi := m.index(vr, vc)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps
}

// Regions counts the contiguous areas of a mask.
type Regions struct {
	// Orthogonal counts 4-connected regions. Generated edges never join two
	// of them, so each is at least one component of the graph.
	Orthogonal int
	// Diagonal counts 8-connected regions. When it is lower than Orthogonal
	// some regions meet only at a corner and look joined when drawn.
	Diagonal int
}

// Split reports whether the mask has more than one orthogonal region, in
// which case no generated graph can be connected.
func (r Regions) Split() bool { return r.Orthogonal > 1 }

// CountRegions builds the mask of shape on a size×size lattice and counts
// its regions under both connectivities.
// Errors: as NewMask.
// Complexity: O(size²).
func CountRegions(size int, shape core.Shape) (Regions, error) {
	m4, err := NewMask(size, shape, MaskOptions{Conn: Conn4})
	if err != nil {
		return Regions{}, fmt.Errorf("CountRegions: %w", err)
	}
	m8, err := NewMask(size, shape, MaskOptions{Conn: Conn8})
	if err != nil {
		return Regions{}, fmt.Errorf("CountRegions: %w", err)
	}

	return Regions{
		Orthogonal: len(m4.ConnectedComponents()),
		Diagonal:   len(m8.ConnectedComponents()),
	}, nil
}
