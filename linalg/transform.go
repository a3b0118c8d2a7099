// SPDX-License-Identifier: MIT

// Package linalg - affine transform builders.
//
// Conventions:
//   - Column vectors, column-major storage: a transform M maps p to M·p, and
//     A·B applies B first.
//   - Right-handed rotations: a positive angle turns counter-clockwise when
//     looking down the axis toward the origin.
//   - Translate* right-multiply (m·T); Rotate* left-multiply (R·m).
package linalg

import (
	"math"

	"github.com/katalvlaran/lvmath/numeric"
)

// sincos returns sin and cos of radian converted to T.
func sincos[T numeric.Float](radian T) (s, c T) {
	sf, cf := math.Sincos(float64(radian))

	return T(sf), T(cf)
}

// Translation2 returns the 3×3 homogeneous translation by v.
func Translation2[T numeric.Number](v Vec[D2, T]) Mat[D3, D3, T] {
	m := Identity[D3, T]()
	m.e[6], m.e[7] = v.e[0], v.e[1]

	return m
}

// Translation3 returns the 4×4 homogeneous translation by v.
func Translation3[T numeric.Number](v Vec[D3, T]) Mat[D4, D4, T] {
	m := Identity[D4, T]()
	m.e[12], m.e[13], m.e[14] = v.e[0], v.e[1], v.e[2]

	return m
}

// Scale2 returns the 3×3 homogeneous scale by v.
func Scale2[T numeric.Number](v Vec[D2, T]) Mat[D3, D3, T] {
	m := Identity[D3, T]()
	m.e[0], m.e[4] = v.e[0], v.e[1]

	return m
}

// Scale3 returns the 4×4 homogeneous scale by v.
func Scale3[T numeric.Number](v Vec[D3, T]) Mat[D4, D4, T] {
	m := Identity[D4, T]()
	m.e[0], m.e[5], m.e[10] = v.e[0], v.e[1], v.e[2]

	return m
}

// Rotation2 returns the 2×2 counter-clockwise rotation by radian.
func Rotation2[T numeric.Float](radian T) Mat[D2, D2, T] {
	s, c := sincos(radian)

	return NewMat2(c, s, -s, c)
}

// Rotation2H returns Rotation2 embedded in a 3×3 homogeneous matrix.
func Rotation2H[T numeric.Float](radian T) Mat[D3, D3, T] {
	s, c := sincos(radian)

	return NewMat3(
		c, s, 0,
		-s, c, 0,
		0, 0, 1,
	)
}

// Rotation returns the 3×3 rotation by radian about axis (normalized
// internally). A zero axis yields ErrInvalidOperation.
func Rotation[T numeric.Float](radian T, axis Vec[D3, T]) (Mat[D3, D3, T], error) {
	u, err := axis.Normalize()
	if err != nil {
		return Identity[D3, T](), linalgErrorf(opRotate, err)
	}
	s, c := sincos(radian)
	t := 1 - c
	x, y, z := u.e[0], u.e[1], u.e[2]

	return NewMat3(
		x*x*t+c, x*y*t+z*s, x*z*t-y*s,
		x*y*t-z*s, y*y*t+c, y*z*t+x*s,
		x*z*t+y*s, y*z*t-x*s, z*z*t+c,
	), nil
}

// EulerX returns the rotation by radian about +X.
func EulerX[T numeric.Float](radian T) Mat[D3, D3, T] {
	s, c := sincos(radian)

	return NewMat3(
		1, 0, 0,
		0, c, s,
		0, -s, c,
	)
}

// EulerY returns the rotation by radian about +Y.
func EulerY[T numeric.Float](radian T) Mat[D3, D3, T] {
	s, c := sincos(radian)

	return NewMat3(
		c, 0, -s,
		0, 1, 0,
		s, 0, c,
	)
}

// EulerZ returns the rotation by radian about +Z.
func EulerZ[T numeric.Float](radian T) Mat[D3, D3, T] {
	s, c := sincos(radian)

	return NewMat3(
		c, s, 0,
		-s, c, 0,
		0, 0, 1,
	)
}

// Euler returns Rz·Ry·Rx: X is applied first, then Y, then Z.
func Euler[T numeric.Float](x, y, z T) Mat[D3, D3, T] {
	return Mul(EulerZ(z), Mul(EulerY(y), EulerX(x)))
}

// ToHomogeneous embeds m into the upper-left block of a 4×4 identity.
func ToHomogeneous[T numeric.Number](m Mat[D3, D3, T]) Mat[D4, D4, T] {
	out := Identity[D4, T]()
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			out.e[col*4+row] = m.e[col*3+row]
		}
	}

	return out
}

// ToMat3 returns the upper-left 3×3 block of m.
func ToMat3[T numeric.Number](m Mat[D4, D4, T]) Mat[D3, D3, T] {
	var out Mat[D3, D3, T]
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			out.e[col*3+row] = m.e[col*4+row]
		}
	}

	return out
}

// Translate2 returns m·Translation2(v).
func Translate2[T numeric.Number](m Mat[D3, D3, T], v Vec[D2, T]) Mat[D3, D3, T] {
	return Mul(m, Translation2(v))
}

// Translate3 returns m·Translation3(v).
func Translate3[T numeric.Number](m Mat[D4, D4, T], v Vec[D3, T]) Mat[D4, D4, T] {
	return Mul(m, Translation3(v))
}

// Rotate2 returns Rotation2(radian)·m.
func Rotate2[T numeric.Float](m Mat[D2, D2, T], radian T) Mat[D2, D2, T] {
	return Mul(Rotation2(radian), m)
}

// Rotate2H returns Rotation2H(radian)·m.
func Rotate2H[T numeric.Float](m Mat[D3, D3, T], radian T) Mat[D3, D3, T] {
	return Mul(Rotation2H(radian), m)
}

// Rotate3 returns Rotation(radian, axis)·m.
func Rotate3[T numeric.Float](m Mat[D3, D3, T], radian T, axis Vec[D3, T]) (Mat[D3, D3, T], error) {
	r, err := Rotation(radian, axis)
	if err != nil {
		return m, err
	}

	return Mul(r, m), nil
}

// Rotate4 rotates the transform m by radian about the line through pivot
// along axis: T(pivot)·R·T(-pivot)·m.
func Rotate4[T numeric.Float](m Mat[D4, D4, T], radian T, axis, pivot Vec[D3, T]) (Mat[D4, D4, T], error) {
	r, err := Rotation(radian, axis)
	if err != nil {
		return m, err
	}
	about := Mul(Translation3(pivot), Mul(ToHomogeneous(r), Translation3(pivot.Neg())))

	return Mul(about, m), nil
}
