// SPDX-License-Identifier: MIT

// Package linalg - view and projection builders.
//
// All builders use the right-handed OpenGL conventions: the camera looks down
// -Z, near and far are positive distances, and clip-space z maps the near
// plane to -1 and the far plane to +1 after the perspective divide.
package linalg

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmath/numeric"
)

// LookAt returns the view matrix of a camera at eye looking at target.
//
// Basis:
//
//	forward = normalize(target - eye)
//	right   = normalize(forward × normalize(up))
//	trueUp  = right × forward
//
// Errors:
//   - ErrInvalidOperation when eye == target, up is zero, or up is parallel
//     to the viewing direction.
func LookAt[T numeric.Float](eye, target, up Vec[D3, T]) (Mat[D4, D4, T], error) {
	f, err := target.Sub(eye).Normalize()
	if err != nil {
		return Identity[D4, T](), fmt.Errorf("%s: forward: %w", opLookAt, err)
	}
	upN, err := up.Normalize()
	if err != nil {
		return Identity[D4, T](), fmt.Errorf("%s: up: %w", opLookAt, err)
	}
	s, err := Cross(f, upN).Normalize()
	if err != nil {
		return Identity[D4, T](), fmt.Errorf("%s: up parallel to forward: %w", opLookAt, err)
	}
	u := Cross(s, f)

	return NewMat4(
		s.e[0], u.e[0], -f.e[0], 0,
		s.e[1], u.e[1], -f.e[1], 0,
		s.e[2], u.e[2], -f.e[2], 0,
		-s.Dot(eye), -u.Dot(eye), f.Dot(eye), 1,
	), nil
}

// Perspective returns the symmetric perspective projection for a vertical
// field of view fovY (radians), aspect = width/height and positive near/far
// distances. Degenerate input (fovY = 0, near = far) yields Inf/NaN.
func Perspective[T numeric.Float](fovY, aspect, near, far T) Mat[D4, D4, T] {
	f := T(1 / math.Tan(float64(fovY)/2))

	return NewMat4(
		f/aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far+near)/(near-far), -1,
		0, 0, (2*far*near)/(near-far), 0,
	)
}

// PerspectiveFrustum returns the perspective projection for the explicit
// frustum bounds [left,right]×[bottom,top] on the near plane.
func PerspectiveFrustum[T numeric.Float](left, right, bottom, top, near, far T) Mat[D4, D4, T] {
	return NewMat4(
		2*near/(right-left), 0, 0, 0,
		0, 2*near/(top-bottom), 0, 0,
		(right+left)/(right-left), (top+bottom)/(top-bottom), -(far+near)/(far-near), -1,
		0, 0, -2*far*near/(far-near), 0,
	)
}

// Orthographic returns the orthographic projection of the box
// [left,right]×[bottom,top]×[-far,-near] onto the clip cube.
func Orthographic[T numeric.Float](left, right, bottom, top, near, far T) Mat[D4, D4, T] {
	return NewMat4(
		2/(right-left), 0, 0, 0,
		0, 2/(top-bottom), 0, 0,
		0, 0, -2/(far-near), 0,
		-(right+left)/(right-left), -(top+bottom)/(top-bottom), -(far+near)/(far-near), 1,
	)
}
