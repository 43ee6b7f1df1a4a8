// Package gridgraph masks a size×size lattice to a boundary shape.
//
// What:
//
//   - Contains evaluates one shape predicate for one cell in normalised
//     coordinates centred on the lattice.
//   - Mask caches the predicate for every cell and answers Inside,
//     OnBoundary, InBounds, and Coordinate queries in O(1).
//   - ConnectedComponents groups inside cells into contiguous regions;
//     CountRegions counts them under 4- and 8-connectivity.
//
// Why:
//
//   - The graph generator includes a node iff its cell is inside, links
//     lattice-adjacent inside cells, and flags edges near the outline.
//   - Component analysis shows whether a mask can possibly yield a
//     connected graph before any edge is drawn.
//
// Shapes:
//
//   - grid:      every cell.
//   - diamond:   |x|+|y| ≤ 1.
//   - circle:    x²+y² ≤ 1.
//   - heart:     (X²+Y²-1)³ - X²Y³ ≤ 0 with X = 1.2x, Y = 0.2 - 1.2y.
//   - triangle:  |x| ≤ (y+1)/2, apex on the top row.
//   - pentagon, hexagon, star: angular-sector apothem test against a
//     polygon around the centre (star inner radius 0.45).
//
// Complexity:
//
//   - NewMask:             O(size²), Memory: O(size²).
//   - ConnectedComponents: O(size²·d), Memory: O(size²)    (d = 4 or 8).
//
// Errors:
//
//   - ErrBadSize: size < 1.
//   - ErrUnknownShape: shape outside core.Shapes().
package gridgraph
