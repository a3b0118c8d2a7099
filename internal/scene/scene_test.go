// SPDX-License-Identifier: MIT
package scene_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvmath/internal/scene"
	"github.com/katalvlaran/lvmath/linalg"
	"github.com/stretchr/testify/require"
)

const tol = 1e-6

// TestCubeTopology checks vertex and edge counts and edge lengths.
func TestCubeTopology(t *testing.T) {
	c := scene.Cube(2)
	require.Len(t, c.Vertices, 8)
	require.Len(t, c.Edges, 12)
	require.NoError(t, c.Validate())
	for _, e := range c.Edges {
		require.InDelta(t, 2.0, c.Vertices[e[0]].Distance(c.Vertices[e[1]]), tol)
	}

	a := scene.Axes(3)
	require.Len(t, a.Edges, 3)
	require.Equal(t, linalg.NewVec3(0.0, 3, 0), a.Vertices[2])
}

// TestMeshValidate rejects dangling edges.
func TestMeshValidate(t *testing.T) {
	m := scene.Mesh{Vertices: []linalg.Vec3d{{}}, Edges: [][2]int{{0, 1}}}
	require.ErrorIs(t, m.Validate(), scene.ErrEdgeOutOfRange)
}

// TestTransformMatrix composes T·R·S and recovers it.
func TestTransformMatrix(t *testing.T) {
	tr := scene.Identity()
	require.Equal(t, linalg.Identity[linalg.D4, float64](), tr.Matrix())

	tr.Translation = linalg.NewVec3(1.0, 2, 3)
	tr.Scale = linalg.NewVec3(2.0, 1, 0.5)
	require.NoError(t, tr.Spin(linalg.NewVec3(0.0, 1, 0), math.Pi/2))

	p := linalg.MulVec(tr.Matrix(), linalg.NewVec4(1.0, 0, 0, 1)) // x scaled to 2, turned to -z, moved
	require.InDeltaSlice(t, []float64{1, 2, 1, 1}, p.Slice(), tol)

	back, err := scene.FromMatrix(tr.Matrix())
	require.NoError(t, err)
	require.InDeltaSlice(t, tr.Translation.Slice(), back.Translation.Slice(), tol)
	require.InDeltaSlice(t, tr.Scale.Slice(), back.Scale.Slice(), tol)
	require.InDeltaSlice(t, tr.Rotation.Slice(), back.Rotation.Slice(), tol)

	require.ErrorIs(t, tr.Spin(linalg.Vec3d{}, 1), linalg.ErrInvalidOperation)

	flat := scene.Identity()
	flat.Scale = linalg.NewVec3(1.0, 0, 1)
	_, err = scene.FromMatrix(flat.Matrix())
	require.ErrorIs(t, err, linalg.ErrInvalidOperation)
}

// TestInterpolate blends transforms, including the equal-rotation case.
func TestInterpolate(t *testing.T) {
	a := scene.Identity()
	b := scene.Identity()
	b.Translation = linalg.NewVec3(2.0, 0, 0)

	mid := scene.Interpolate(a, b, 0.5)
	require.Equal(t, linalg.NewVec3(1.0, 0, 0), mid.Translation)
	require.InDeltaSlice(t, a.Rotation.Slice(), mid.Rotation.Slice(), tol) // no NaN

	require.NoError(t, b.Spin(linalg.NewVec3(0.0, 0, 1), math.Pi/2))
	b.Rotation = b.Rotation.Neg() // same rotation, other hemisphere
	mid = scene.Interpolate(a, b, 0.5)
	want, err := linalg.QuatFromAxisAngle(linalg.NewVec3(0.0, 0, 1), math.Pi/4)
	require.NoError(t, err)
	require.InDeltaSlice(t, want.Slice(), mid.Rotation.Slice(), tol)
}

// TestCameraOrbitAndZoom keeps the distance on orbit and clamps zoom.
func TestCameraOrbitAndZoom(t *testing.T) {
	cam := scene.NewCamera(linalg.NewVec3(0.0, 0, 5), linalg.Vec3d{})
	require.NoError(t, cam.Orbit(math.Pi/2, 0))
	require.InDeltaSlice(t, []float64{5, 0, 0}, cam.Eye.Slice(), tol) // +Z swings to +X

	require.NoError(t, cam.Orbit(0, 0.3))
	require.InDelta(t, 5.0, cam.Eye.Length(), tol)

	cam.Zoom(0.5)
	require.InDelta(t, 2.5, cam.Eye.Length(), tol)
	cam.Zoom(1000) // beyond Far: ignored
	require.InDelta(t, 2.5, cam.Eye.Length(), tol)

	_, err := cam.View()
	require.NoError(t, err)

	bad := scene.NewCamera(linalg.Vec3d{}, linalg.Vec3d{})
	_, err = bad.View()
	require.ErrorIs(t, err, linalg.ErrInvalidOperation)
}

// TestProjectCentre puts the target in the middle of the viewport.
func TestProjectCentre(t *testing.T) {
	cam := scene.NewCamera(linalg.NewVec3(0.0, 0, 5), linalg.Vec3d{})
	mesh := scene.Mesh{Vertices: []linalg.Vec3d{{}, linalg.NewVec3(0.0, 0, 10)}}

	pts, err := scene.Project(mesh, linalg.Identity[linalg.D4, float64](), cam, 800, 600)
	require.NoError(t, err)
	require.True(t, pts[0].Visible)
	require.InDelta(t, 400.0, pts[0].X, tol)
	require.InDelta(t, 300.0, pts[0].Y, tol)
	require.False(t, pts[1].Visible) // behind the camera
}

// TestProjectCubeSegments draws all twelve edges of a cube in view.
func TestProjectCubeSegments(t *testing.T) {
	cam := scene.NewCamera(linalg.NewVec3(3.0, 2, 4), linalg.Vec3d{})
	cube := scene.Cube(1)
	tr := scene.Identity()
	require.NoError(t, tr.Spin(linalg.NewVec3(1.0, 1, 0), 0.6))

	pts, err := scene.Project(cube, tr.Matrix(), cam, 640, 480)
	require.NoError(t, err)
	segs := scene.Segments(cube, pts)
	require.Len(t, segs, 12)
	for _, s := range segs {
		require.True(t, s.X0 >= 0 && s.X0 <= 640 && s.Y0 >= 0 && s.Y0 <= 480)
	}

	// a far camera pushes the cube past the far plane
	far := scene.NewCamera(linalg.NewVec3(0.0, 0, 500), linalg.Vec3d{})
	pts, err = scene.Project(cube, tr.Matrix(), far, 640, 480)
	require.NoError(t, err)
	require.Empty(t, scene.Segments(cube, pts))
}

// TestProjectErrors covers the viewport and mesh checks.
func TestProjectErrors(t *testing.T) {
	cam := scene.NewCamera(linalg.NewVec3(0.0, 0, 5), linalg.Vec3d{})
	id := linalg.Identity[linalg.D4, float64]()

	_, err := scene.Project(scene.Cube(1), id, cam, 0, 10)
	require.ErrorIs(t, err, scene.ErrInvalidViewport)

	bad := scene.Mesh{Edges: [][2]int{{0, 1}}}
	_, err = scene.Project(bad, id, cam, 10, 10)
	require.ErrorIs(t, err, scene.ErrEdgeOutOfRange)
}
