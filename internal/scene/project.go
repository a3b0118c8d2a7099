// SPDX-License-Identifier: MIT

package scene

import (
	"fmt"

	"github.com/katalvlaran/lvmath/linalg"
)

// Point is a projected vertex in screen pixels (origin top-left, y down).
// Depth is the NDC z in [-1, 1]. Visible is false for vertices behind the
// camera or outside the near/far range; X and Y are then zero.
type Point struct {
	X, Y, Depth float64
	Visible     bool
}

// Segment is a drawable edge in screen pixels.
type Segment struct {
	X0, Y0, X1, Y1 float64
}

// Project maps every vertex of mesh through model, the camera view and the
// camera projection onto a width×height viewport.
//
// Errors:
//   - ErrInvalidViewport when width or height is not positive.
//   - ErrEdgeOutOfRange when the mesh is malformed.
//   - the camera's View error for a degenerate camera.
func Project(mesh Mesh, model linalg.Mat4d, cam Camera, width, height int) ([]Point, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("project %dx%d: %w", width, height, ErrInvalidViewport)
	}
	if err := mesh.Validate(); err != nil {
		return nil, fmt.Errorf("project: %w", err)
	}
	view, err := cam.View()
	if err != nil {
		return nil, fmt.Errorf("project: %w", err)
	}
	w, h := float64(width), float64(height)
	mvp := linalg.Mul(cam.Projection(w/h), linalg.Mul(view, model))

	pts := make([]Point, len(mesh.Vertices))
	for i, v := range mesh.Vertices {
		clip := linalg.MulVec(mvp, linalg.Homogeneous(v, 1))
		cw, _ := clip.At(3)
		if cw <= 0 {
			continue
		}
		ndc := linalg.XYZ(clip).DivScalar(cw)
		x, _ := ndc.At(0)
		y, _ := ndc.At(1)
		z, _ := ndc.At(2)
		if z < -1 || z > 1 {
			continue
		}
		pts[i] = Point{
			X:       (x + 1) / 2 * w,
			Y:       (1 - y) / 2 * h,
			Depth:   z,
			Visible: true,
		}
	}

	return pts, nil
}

// Segments returns the edges of mesh whose endpoints are both visible in
// pts, which must come from Project on the same mesh.
func Segments(mesh Mesh, pts []Point) []Segment {
	out := make([]Segment, 0, len(mesh.Edges))
	for _, e := range mesh.Edges {
		if e[0] < 0 || e[1] < 0 || e[0] >= len(pts) || e[1] >= len(pts) {
			continue
		}
		a, b := pts[e[0]], pts[e[1]]
		if !a.Visible || !b.Visible {
			continue
		}
		out = append(out, Segment{X0: a.X, Y0: a.Y, X1: b.X, Y1: b.Y})
	}

	return out
}
