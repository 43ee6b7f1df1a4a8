package gridgraph

import (
	"math"

	"github.com/katalvlaran/spanviz/core"
)

// eps admits cells that sit exactly on an outline despite float rounding.
const eps = 1e-9

// starInnerRadius is the radius of the star's concave vertices relative to
// its tips.
const starInnerRadius = 0.45

// Contains reports whether lattice cell (row, col) of a size×size lattice
// lies inside shape. Off-lattice cells and undeclared shapes are outside.
//
// The test runs in normalised coordinates centred on the lattice:
//
//	c = (size-1)/2, h = max(c, 0.5)
//	x = (col-c)/h, y = (row-c)/h   // both in [-1, 1], y grows downwards
//
// Complexity: O(1).
func Contains(shape core.Shape, size, row, col int) bool {
	if row < 0 || col < 0 || row >= size || col >= size {
		return false
	}
	c := float64(size-1) / 2
	h := math.Max(c, 0.5)
	x := (float64(col) - c) / h
	y := (float64(row) - c) / h

	switch shape {
	case core.ShapeGrid:
		return true
	case core.ShapeDiamond:
		return math.Abs(x)+math.Abs(y) <= 1+eps
	case core.ShapeCircle:
		return x*x+y*y <= 1+eps
	case core.ShapeHeart:
		return inHeart(x, y)
	case core.ShapeTriangle:
		return inTriangle(x, y)
	case core.ShapePentagon:
		return inStarPolygon(x, y, pentagon)
	case core.ShapeHexagon:
		return inStarPolygon(x, y, hexagon)
	case core.ShapeStar:
		return inStarPolygon(x, y, star)
	default:
		return false
	}
}

// inHeart evaluates the implicit heart curve (X²+Y²-1)³ - X²Y³ ≤ 0 with
// the lattice flipped so the lobes are on top.
func inHeart(x, y float64) bool {
	X := 1.2 * x
	Y := 0.2 - 1.2*y
	s := X*X + Y*Y - 1

	return s*s*s-X*X*Y*Y*Y <= eps
}

// inTriangle keeps cells whose |x| fits the half-width of an upward
// triangle: zero on the top row, one on the bottom row.
func inTriangle(x, y float64) bool {
	half := (y + 1) / 2

	return math.Abs(x) <= half+eps
}

// polygon is a closed outline that is star-shaped around the origin, with
// vertices listed by increasing angle starting from the top.
type polygon struct {
	vx, vy []float64
}

var (
	pentagon = regularPolygon(5, func(int) float64 { return 1 })
	hexagon  = regularPolygon(6, func(int) float64 { return 1 })
	star     = regularPolygon(10, func(k int) float64 {
		if k%2 == 0 {
			return 1
		}

		return starInnerRadius
	})
)

// regularPolygon places m vertices at equal angular steps, the first one
// pointing up (negative y), with per-vertex radius r(k).
func regularPolygon(m int, r func(k int) float64) polygon {
	p := polygon{vx: make([]float64, m), vy: make([]float64, m)}
	for k := 0; k < m; k++ {
		theta := -math.Pi/2 + 2*math.Pi*float64(k)/float64(m)
		p.vx[k] = r(k) * math.Cos(theta)
		p.vy[k] = r(k) * math.Sin(theta)
	}

	return p
}

// inStarPolygon is the angular-sector apothem test: the sector holding
// (x, y) selects one polygon edge, and the point is inside iff it lies on
// the same side of that edge as the origin.
func inStarPolygon(x, y float64, p polygon) bool {
	if x == 0 && y == 0 {
		return true
	}
	m := len(p.vx)
	step := 2 * math.Pi / float64(m)

	// 1. Angle measured from the first vertex, normalised to [0, 2π).
	phi := math.Atan2(y, x) + math.Pi/2
	phi = math.Mod(phi, 2*math.Pi)
	if phi < 0 {
		phi += 2 * math.Pi
	}
	k := int(phi/step) % m

	// 2. Edge v[k] → v[k+1].
	ax, ay := p.vx[k], p.vy[k]
	bx, by := p.vx[(k+1)%m], p.vy[(k+1)%m]
	ex, ey := bx-ax, by-ay

	// 3. Same side as the origin (or on the edge).
	side := ex*(y-ay) - ey*(x-ax)
	origin := ex*(0-ay) - ey*(0-ax)

	return side*origin >= -eps
}
