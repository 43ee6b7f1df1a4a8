package gridgraph

import "github.com/katalvlaran/spanviz/core"

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// MaskOptions contains tunable parameters for a Mask.
type MaskOptions struct {
	// Conn chooses 4- or 8-directional connectivity for ConnectedComponents.
	Conn Connectivity
}

// DefaultMaskOptions returns MaskOptions with Conn=Conn4, the adjacency
// used for generated edges.
func DefaultMaskOptions() MaskOptions {
	return MaskOptions{Conn: Conn4}
}

// Mask is the set of cells of a Size×Size lattice that lie inside Shape.
// It is immutable once built. Cells are addressed by (row, col) or by the
// row-major index row*Size + col.
type Mask struct {
	Size  int
	Shape core.Shape
	Conn  Connectivity

	inside          []bool
	count           int
	neighborOffsets [][2]int // (dRow, dCol)
}

// conn4Offsets lists N, E, S, W as (dRow, dCol).
var conn4Offsets = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// conn8Offsets lists N, NE, E, SE, S, SW, W, NW as (dRow, dCol).
var conn8Offsets = [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
