package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownShape indicates a shape name that ParseShape does not recognise.
var ErrUnknownShape = errors.New("core: unknown shape")

// Shape selects the boundary mask applied to the lattice during generation.
type Shape int

const (
	// ShapeGrid keeps every lattice cell.
	ShapeGrid Shape = iota
	// ShapeHeart keeps cells under an implicit heart curve.
	ShapeHeart
	// ShapeDiamond keeps cells inside a Manhattan ball.
	ShapeDiamond
	// ShapeTriangle keeps cells inside an upward triangle.
	ShapeTriangle
	// ShapeHexagon keeps cells inside a regular hexagon.
	ShapeHexagon
	// ShapeStar keeps cells inside a five-point star.
	ShapeStar
	// ShapeCircle keeps cells inside a Euclidean ball.
	ShapeCircle
	// ShapePentagon keeps cells inside a regular pentagon.
	ShapePentagon
)

var shapeNames = [...]string{
	ShapeGrid:     "grid",
	ShapeHeart:    "heart",
	ShapeDiamond:  "diamond",
	ShapeTriangle: "triangle",
	ShapeHexagon:  "hexagon",
	ShapeStar:     "star",
	ShapeCircle:   "circle",
	ShapePentagon: "pentagon",
}

// Shapes returns every shape in declaration order.
func Shapes() []Shape {
	out := make([]Shape, len(shapeNames))
	for i := range shapeNames {
		out[i] = Shape(i)
	}

	return out
}

// ShapeNames returns the names of every shape in declaration order.
func ShapeNames() []string {
	out := make([]string, len(shapeNames))
	copy(out, shapeNames[:])

	return out
}

// String returns the lower-case name of s.
func (s Shape) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Shape(%d)", int(s))
	}

	return shapeNames[s]
}

// Valid reports whether s is one of the declared shapes.
func (s Shape) Valid() bool { return s >= 0 && int(s) < len(shapeNames) }

// ParseShape maps a case-insensitive name to its Shape.
func ParseShape(name string) (Shape, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, candidate := range shapeNames {
		if candidate == n {
			return Shape(i), nil
		}
	}

	return ShapeGrid, fmt.Errorf("%q: %w", name, ErrUnknownShape)
}
