// SPDX-License-Identifier: MIT

// Package linalg: shape marker types and named aliases.
// This file contains ONLY the dimension markers, the Dim constraint and the
// convenience aliases for common sizes; containers live in vec.go, mat.go and
// quat.go.
package linalg

// maxDim bounds every fixed-size dimension. Vec storage holds maxDim
// components and Mat storage maxDim*maxDim elements; unused trailing slots are
// always zero so built-in == stays an exact value comparison.
const maxDim = 4

// D1 marks a dimension of length 1.
type D1 struct{}

// D2 marks a dimension of length 2.
type D2 struct{}

// D3 marks a dimension of length 3.
type D3 struct{}

// D4 marks a dimension of length 4.
type D4 struct{}

// Len returns 1.
func (D1) Len() int { return 1 }

// Len returns 2.
func (D2) Len() int { return 2 }

// Len returns 3.
func (D3) Len() int { return 3 }

// Len returns 4.
func (D4) Len() int { return 4 }

// Dim is the sealed set of dimension markers.
type Dim interface {
	D1 | D2 | D3 | D4
	Len() int
}

// dimOf returns the length encoded by the marker type D.
func dimOf[D Dim]() int {
	var d D

	return d.Len()
}

// Vector aliases.
type (
	Vec1f = Vec[D1, float32]
	Vec2f = Vec[D2, float32]
	Vec3f = Vec[D3, float32]
	Vec4f = Vec[D4, float32]

	Vec1d = Vec[D1, float64]
	Vec2d = Vec[D2, float64]
	Vec3d = Vec[D3, float64]
	Vec4d = Vec[D4, float64]

	// Unsigned vectors carry comparison masks (1 = true, 0 = false).
	Vec2u = Vec[D2, uint32]
	Vec3u = Vec[D3, uint32]
	Vec4u = Vec[D4, uint32]
)

// Matrix aliases.
type (
	Mat1f = Mat[D1, D1, float32]
	Mat2f = Mat[D2, D2, float32]
	Mat3f = Mat[D3, D3, float32]
	Mat4f = Mat[D4, D4, float32]

	Mat1d = Mat[D1, D1, float64]
	Mat2d = Mat[D2, D2, float64]
	Mat3d = Mat[D3, D3, float64]
	Mat4d = Mat[D4, D4, float64]

	Mat2u = Mat[D2, D2, uint32]
	Mat3u = Mat[D3, D3, uint32]
	Mat4u = Mat[D4, D4, uint32]
)

// Quaternion aliases.
type (
	Quatf = Quat[float32]
	Quatd = Quat[float64]
)
