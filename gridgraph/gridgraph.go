package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/spanviz/core"
)

// NewMask evaluates shape over every cell of a size×size lattice.
// Returns ErrBadSize if size < 1 and ErrUnknownShape for an undeclared shape.
// A mask with zero inside cells is valid; callers decide whether that is an error.
// Complexity: O(size²) time and memory.
func NewMask(size int, shape core.Shape, opts MaskOptions) (*Mask, error) {
	const method = "NewMask"
	if size < 1 {
		return nil, fmt.Errorf("%s: size=%d: %w", method, size, ErrBadSize)
	}
	if !shape.Valid() {
		return nil, fmt.Errorf("%s: %v: %w", method, shape, ErrUnknownShape)
	}

	m := &Mask{
		Size:   size,
		Shape:  shape,
		Conn:   opts.Conn,
		inside: make([]bool, size*size),
	}
	if opts.Conn == Conn8 {
		m.neighborOffsets = conn8Offsets
	} else {
		m.neighborOffsets = conn4Offsets
	}

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if Contains(shape, size, row, col) {
				m.inside[m.index(row, col)] = true
				m.count++
			}
		}
	}

	return m, nil
}

// InBounds reports whether (row, col) lies on the lattice.
// Complexity: O(1).
func (m *Mask) InBounds(row, col int) bool {
	return row >= 0 && row < m.Size && col >= 0 && col < m.Size
}

// Inside reports whether (row, col) is on the lattice and inside the shape.
// Off-lattice cells are outside.
// Complexity: O(1).
func (m *Mask) Inside(row, col int) bool {
	return m.InBounds(row, col) && m.inside[m.index(row, col)]
}

// Count returns the number of inside cells.
func (m *Mask) Count() int { return m.count }

// NeighborOffsets returns the precomputed (dRow, dCol) offsets for m.Conn.
// Complexity: O(1).
func (m *Mask) NeighborOffsets() [][2]int {
	return m.neighborOffsets
}

// OnBoundary reports whether (row, col) is inside and at least one of its
// four orthogonal neighbours is outside (off-lattice included).
// Complexity: O(1).
func (m *Mask) OnBoundary(row, col int) bool {
	if !m.Inside(row, col) {
		return false
	}
	for _, d := range conn4Offsets {
		if !m.Inside(row+d[0], col+d[1]) {
			return true
		}
	}

	return false
}

// Cells returns the row-major indices of every inside cell in ascending order.
// Complexity: O(size²).
func (m *Mask) Cells() []int {
	out := make([]int, 0, m.count)
	for i, in := range m.inside {
		if in {
			out = append(out, i)
		}
	}

	return out
}

// index maps (row, col) to a row-major index.
// Complexity: O(1).
func (m *Mask) index(row, col int) int {
	return row*m.Size + col
}

// Coordinate converts a row-major index back to (row, col).
// Complexity: O(1).
func (m *Mask) Coordinate(idx int) (row, col int) {
	return idx / m.Size, idx % m.Size
}
