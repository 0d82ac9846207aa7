// Package sphere tessellates UV spheres into flat triangle lists.
package sphere

import (
	"errors"
	"fmt"
	gomath "math"
)

// Layout of the generated vertex data.
const (
	FloatsPerVertex   = 3
	FloatsPerTriangle = 3 * FloatsPerVertex
	// Each grid cell is split into two triangles.
	FloatsPerCell = 2 * FloatsPerTriangle
)

// ErrInvalidTessellation is returned when sectors or stacks is not positive.
var ErrInvalidTessellation = errors.New("sphere: sectors and stacks must be positive")

// Generate tessellates a sphere of the given radius into a triangle list of
// x, y, z positions.
//
// Stacks run from the +Z pole (stack angle +π/2) down to the -Z pole and
// sectors sweep 0..2π around Z. Every cell emits triangles (v1, v3, v2) and
// (v2, v3, v4), where v1/v2 are the upper corners and v3/v4 the lower ones.
// Vertices are not shared between triangles.
func Generate(radius float32, sectors, stacks int) ([]float32, error) {
	if sectors <= 0 || stacks <= 0 {
		return nil, fmt.Errorf("%w: sectors=%d stacks=%d", ErrInvalidTessellation, sectors, stacks)
	}

	vertices := make([]float32, 0, FloatCount(sectors, stacks))

	sectorStep := 2 * gomath.Pi / float64(sectors)
	stackStep := gomath.Pi / float64(stacks)

	for i := range stacks {
		stackAngle1 := gomath.Pi/2 - float64(i)*stackStep
		stackAngle2 := gomath.Pi/2 - float64(i+1)*stackStep

		for j := range sectors {
			sectorAngle1 := float64(j) * sectorStep
			sectorAngle2 := float64(j+1) * sectorStep

			v1 := point(radius, stackAngle1, sectorAngle1)
			v2 := point(radius, stackAngle1, sectorAngle2)
			v3 := point(radius, stackAngle2, sectorAngle1)
			v4 := point(radius, stackAngle2, sectorAngle2)

			vertices = appendTriangle(vertices, v1, v3, v2)
			vertices = appendTriangle(vertices, v2, v3, v4)
		}
	}

	return vertices, nil
}

// FloatCount returns the number of floats Generate produces.
func FloatCount(sectors, stacks int) int {
	if sectors <= 0 || stacks <= 0 {
		return 0
	}
	return sectors * stacks * FloatsPerCell
}

// VertexCount returns the number of vertices Generate produces.
func VertexCount(sectors, stacks int) int {
	return FloatCount(sectors, stacks) / FloatsPerVertex
}

// point evaluates the sphere surface at the given stack and sector angles.
func point(radius float32, stackAngle, sectorAngle float64) [3]float32 {
	r := float64(radius)
	xy := r * gomath.Cos(stackAngle)
	return [3]float32{
		float32(xy * gomath.Cos(sectorAngle)),
		float32(xy * gomath.Sin(sectorAngle)),
		float32(r * gomath.Sin(stackAngle)),
	}
}

func appendTriangle(dst []float32, a, b, c [3]float32) []float32 {
	return append(dst,
		a[0], a[1], a[2],
		b[0], b[1], b[2],
		c[0], c[1], c[2],
	)
}
