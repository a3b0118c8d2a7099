// SPDX-License-Identifier: MIT

// Package linalg - GLSL-style common functions lifted to vectors.
// Each function applies the matching numeric helper component by component.
package linalg

import (
	"math"

	"github.com/katalvlaran/lvmath/numeric"
)

// Abs returns |v| componentwise.
func Abs[N Dim, T numeric.Number](v Vec[N, T]) Vec[N, T] {
	n := dimOf[N]()
	ewMap(v.e[:n], v.e[:n], numeric.Abs[T])

	return v
}

// Min returns the componentwise minimum.
func Min[N Dim, T numeric.Number](a, b Vec[N, T]) Vec[N, T] {
	for i := 0; i < dimOf[N](); i++ {
		a.e[i] = min(a.e[i], b.e[i])
	}

	return a
}

// Max returns the componentwise maximum.
func Max[N Dim, T numeric.Number](a, b Vec[N, T]) Vec[N, T] {
	for i := 0; i < dimOf[N](); i++ {
		a.e[i] = max(a.e[i], b.e[i])
	}

	return a
}

// Clamp limits each component of v to [lo[i], hi[i]].
func Clamp[N Dim, T numeric.Number](v, lo, hi Vec[N, T]) Vec[N, T] {
	for i := 0; i < dimOf[N](); i++ {
		v.e[i] = numeric.Clamp(v.e[i], lo.e[i], hi.e[i])
	}

	return v
}

// ClampScalar limits each component of v to [lo, hi].
func ClampScalar[N Dim, T numeric.Number](v Vec[N, T], lo, hi T) Vec[N, T] {
	return Clamp(v, Broadcast[N](lo), Broadcast[N](hi))
}

// Saturate clamps each component to [0, 1].
func Saturate[N Dim, T numeric.Number](v Vec[N, T]) Vec[N, T] {
	n := dimOf[N]()
	ewMap(v.e[:n], v.e[:n], numeric.Saturate[T])

	return v
}

// Mix interpolates a*(1-t) + b*t componentwise with a scalar t.
func Mix[N Dim, T numeric.Float](a, b Vec[N, T], t T) Vec[N, T] {
	for i := 0; i < dimOf[N](); i++ {
		a.e[i] = numeric.Mix(a.e[i], b.e[i], t)
	}

	return a
}

// Step returns 0 where v[i] < edge[i] and 1 elsewhere.
func Step[N Dim, T numeric.Number](edge, v Vec[N, T]) Vec[N, T] {
	for i := 0; i < dimOf[N](); i++ {
		v.e[i] = numeric.Step(edge.e[i], v.e[i])
	}

	return v
}

// SmoothStep applies Hermite smoothing between scalar edges componentwise.
func SmoothStep[N Dim, T numeric.Float](edge0, edge1 T, v Vec[N, T]) Vec[N, T] {
	for i := 0; i < dimOf[N](); i++ {
		v.e[i] = numeric.SmoothStep(edge0, edge1, v.e[i])
	}

	return v
}

// Radians converts every component from degrees to radians.
func Radians[N Dim, T numeric.Float](deg Vec[N, T]) Vec[N, T] {
	n := dimOf[N]()
	ewMap(deg.e[:n], deg.e[:n], numeric.ToRadian[T])

	return deg
}

// Degrees converts every component from radians to degrees.
func Degrees[N Dim, T numeric.Float](rad Vec[N, T]) Vec[N, T] {
	n := dimOf[N]()
	ewMap(rad.e[:n], rad.e[:n], numeric.ToDegree[T])

	return rad
}

// Reflect reflects the incident vector i about the normal n:
// i - 2(n·i)n. n should be unit length.
func Reflect[N Dim, T numeric.Float](i, n Vec[N, T]) Vec[N, T] {
	return i.Sub(n.Scale(2 * n.Dot(i)))
}

// Refract returns the refraction of the incident vector i through a surface
// with unit normal n and ratio of indices eta. Total internal reflection
// yields the zero vector.
func Refract[N Dim, T numeric.Float](i, n Vec[N, T], eta T) Vec[N, T] {
	d := n.Dot(i)
	k := 1 - eta*eta*(1-d*d)
	if k < 0 {
		return Vec[N, T]{}
	}

	return i.Scale(eta).Sub(n.Scale(eta*d + T(math.Sqrt(float64(k)))))
}
