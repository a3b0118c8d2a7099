// SPDX-License-Identifier: MIT

// Package linalg - 3D vector geometry.
// Cross, Project and Rotate exist only for Vec[D3, T]; they are free functions
// so calling them with another length is a compile error.
package linalg

import (
	"math"

	"github.com/katalvlaran/lvmath/numeric"
)

// Cross returns the 3D cross product a × b:
// (a1*b2-a2*b1, a2*b0-a0*b2, a0*b1-a1*b0).
func Cross[T numeric.Number](a, b Vec[D3, T]) Vec[D3, T] {
	return NewVec3(
		a.e[1]*b.e[2]-a.e[2]*b.e[1],
		a.e[2]*b.e[0]-a.e[0]*b.e[2],
		a.e[0]*b.e[1]-a.e[1]*b.e[0],
	)
}

// Project returns the projection of v onto onto: onto * (v·onto / |onto|²).
// A zero onto vector yields NaN components for floats.
func Project[T numeric.Number](v, onto Vec[D3, T]) Vec[D3, T] {
	return onto.Scale(v.Dot(onto) / onto.Length2())
}

// Rotate rotates v by radian about axis using Rodrigues' formula in the form
//
//	(1-cos θ)(k·v)k + cos θ·v + sin θ·(v × k)
//
// where k is axis normalized. A zero axis yields ErrInvalidOperation.
func Rotate[T numeric.Float](v Vec[D3, T], radian T, axis Vec[D3, T]) (Vec[D3, T], error) {
	k, err := axis.Normalize()
	if err != nil {
		return v, linalgErrorf(opRotate, err)
	}
	c := T(math.Cos(float64(radian)))
	s := T(math.Sin(float64(radian)))

	along := k.Scale((1 - c) * k.Dot(v))

	return along.Add(v.Scale(c)).Add(Cross(v, k).Scale(s)), nil
}

// Homogeneous extends a 3-vector with w.
func Homogeneous[T numeric.Number](v Vec[D3, T], w T) Vec[D4, T] {
	return NewVec4(v.e[0], v.e[1], v.e[2], w)
}

// XYZ drops the fourth component of a 4-vector.
func XYZ[T numeric.Number](v Vec[D4, T]) Vec[D3, T] {
	return NewVec3(v.e[0], v.e[1], v.e[2])
}

// XY drops the third component of a 3-vector.
func XY[T numeric.Number](v Vec[D3, T]) Vec[D2, T] {
	return NewVec2(v.e[0], v.e[1])
}
