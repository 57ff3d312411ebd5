package render

import (
	"fmt"
	"math"
	"strings"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"tinyrender/mesh"
	"tinyrender/raster"
)

// Projection selects the object-to-screen mapping.
type Projection uint8

const (
	// ProjectAspect maps x in [-aspect, aspect] and y in [-1, 1] onto the
	// buffer, aspect = width/height, so the model keeps its proportions.
	ProjectAspect Projection = iota
	// ProjectUnit maps x and y in [-1, 1] onto the full buffer.
	ProjectUnit
)

func (p Projection) String() string {
	switch p {
	case ProjectAspect:
		return "aspect"
	case ProjectUnit:
		return "unit"
	default:
		return fmt.Sprintf("Projection(%d)", uint8(p))
	}
}

// ParseProjection parses "aspect" or "unit".
func ParseProjection(s string) (Projection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "aspect":
		return ProjectAspect, nil
	case "unit":
		return ProjectUnit, nil
	}
	return 0, fmt.Errorf("unknown projection %q (want aspect|unit)", s)
}

// Matrix returns the affine map from object-space (x, y) to continuous
// screen coordinates for a width×height buffer.
func (p Projection) Matrix(width, height int) matrix.Matrix {
	w, h := float64(width), float64(height)
	sx := w / 2
	if p == ProjectAspect && height > 0 {
		aspect := w / h
		sx = w / (2 * aspect)
	}
	return matrix.Matrix{sx, 0, 0, h / 2, w / 2, h / 2}
}

// Project maps v to a screen pixel. Coordinates are rounded half away from
// zero and saturate at 0, so points left of or below the screen land on its
// edge row or column.
func Project(m matrix.Matrix, v mesh.Vertex) raster.Point {
	p := apply(m, vec.Vec2{X: float64(v.X), Y: float64(v.Y)})
	return raster.Point{X: screenCoord(p.X), Y: screenCoord(p.Y)}
}

func apply(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}

func screenCoord(f float64) int {
	r := math.Round(f)
	switch {
	case math.IsNaN(r) || r <= 0:
		return 0
	case r >= math.MaxInt32:
		return math.MaxInt32
	}
	return int(r)
}
