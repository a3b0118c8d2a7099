// SPDX-License-Identifier: MIT

// Package scene is a tiny wireframe rendering pipeline built only from linalg
// operations.
//
// A Mesh (vertices and edges) is placed in the world by a Transform
// (translation, quaternion rotation, scale), viewed through a Camera
// (LookAt + Perspective) and projected to screen pixels by Project. Segments
// turns the projected points back into drawable line segments, dropping edges
// whose endpoints fall behind the camera or outside the depth range.
//
// The package performs no drawing itself; cmd/wireframe feeds the segments to
// ebiten.
package scene
