// SPDX-License-Identifier: MIT

package scene

import (
	"fmt"

	"github.com/katalvlaran/lvmath/linalg"
)

// Mesh is a wireframe: vertex positions in model space and index pairs
// connecting them.
type Mesh struct {
	Vertices []linalg.Vec3d
	Edges    [][2]int
}

// Cube returns an axis-aligned cube of edge length size centred on the origin.
func Cube(size float64) Mesh {
	h := size / 2
	m := Mesh{Vertices: make([]linalg.Vec3d, 0, 8)}
	// vertex i has x from bit 0, y from bit 1, z from bit 2
	for i := 0; i < 8; i++ {
		x, y, z := -h, -h, -h
		if i&1 != 0 {
			x = h
		}
		if i&2 != 0 {
			y = h
		}
		if i&4 != 0 {
			z = h
		}
		m.Vertices = append(m.Vertices, linalg.NewVec3(x, y, z))
	}
	for i := 0; i < 8; i++ {
		for bit := 1; bit <= 4; bit <<= 1 {
			if i&bit == 0 {
				m.Edges = append(m.Edges, [2]int{i, i | bit})
			}
		}
	}

	return m
}

// Axes returns three unit-direction segments of the given length from the
// origin: X, Y and Z in that order.
func Axes(length float64) Mesh {
	return Mesh{
		Vertices: []linalg.Vec3d{
			{},
			linalg.NewVec3(length, 0, 0),
			linalg.NewVec3(0, length, 0),
			linalg.NewVec3(0, 0, length),
		},
		Edges: [][2]int{{0, 1}, {0, 2}, {0, 3}},
	}
}

// Validate reports the first edge that references a missing vertex.
func (m Mesh) Validate() error {
	n := len(m.Vertices)
	for i, e := range m.Edges {
		if e[0] < 0 || e[0] >= n || e[1] < 0 || e[1] >= n {
			return fmt.Errorf("edge %d (%d,%d) with %d vertices: %w", i, e[0], e[1], n, ErrEdgeOutOfRange)
		}
	}

	return nil
}
