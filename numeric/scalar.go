// SPDX-License-Identifier: MIT

// Package numeric - scalar helpers.
//
// Purpose:
//   - Provide the single-value kernels (angle conversion, clamping, interpolation,
//     modulo) that linalg lifts into elementwise container operations.
//   - Keep integer and floating-point behavior explicit: Mod dispatches on the
//     element kind instead of silently routing integers through float64.
//
// Complexity quicksheet:
//   - Every function is O(1), allocation-free.
package numeric

import "math"

// degPerRad is the number of degrees in one radian, kept as a constant so
// ToRadian/ToDegree stay exact inverses of each other up to rounding.
const degPerRad = 180 / math.Pi

// ToRadian converts an angle expressed in degrees to radians.
// Complexity: O(1).
func ToRadian[T Float](degree T) T {
	return T(float64(degree) / degPerRad)
}

// ToDegree converts an angle expressed in radians to degrees.
// Complexity: O(1).
func ToDegree[T Float](radian T) T {
	return T(float64(radian) * degPerRad)
}

// Clamp limits x to the closed range [lo, hi].
// When lo > hi the result is hi, matching min(max(x, lo), hi).
func Clamp[T Number](x, lo, hi T) T {
	return min(max(x, lo), hi)
}

// Saturate clamps x to [0, 1].
func Saturate[T Number](x T) T {
	return Clamp(x, 0, 1)
}

// Mix linearly interpolates between a and b: a*(1-t) + b*t.
// t is not clamped; t outside [0,1] extrapolates.
func Mix[T Float](a, b, t T) T {
	return a*(1-t) + b*t
}

// Step returns 0 when x < edge and 1 otherwise.
func Step[T Number](edge, x T) T {
	if x < edge {
		return 0
	}

	return 1
}

// SmoothStep performs Hermite interpolation between 0 and 1 when
// edge0 < x < edge1. Equal edges yield NaN from 0/0, as in GLSL.
func SmoothStep[T Float](edge0, edge1, x T) T {
	t := Saturate((x - edge0) / (edge1 - edge0))

	return t * t * (3 - 2*t)
}

// Abs returns |x|. Unsigned values are returned unchanged.
func Abs[T Number](x T) T {
	if x < 0 {
		return -x
	}

	return x
}

// Sign returns -1, 0 or +1 according to the sign of x (NaN stays NaN).
func Sign[T SignedNumber](x T) T {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return x
	}
}

// Sqrt returns the square root of x computed in float64 and converted back
// to T. Integer results are truncated toward zero.
func Sqrt[T Number](x T) T {
	return T(math.Sqrt(float64(x)))
}

// Mod returns the remainder of a/b with the sign of a (truncated division),
// which is Go's % for integers and math.Mod for floats.
//
// Behavior highlights:
//   - Integer kinds use native % so large 64-bit values stay exact.
//   - Integer b == 0 panics exactly like the built-in operator.
//   - Float b == 0 yields NaN.
func Mod[T Number](a, b T) T {
	if !IsInteger[T]() {
		return T(math.Mod(float64(a), float64(b)))
	}
	if IsUnsigned[T]() {
		return T(uint64(a) % uint64(b))
	}

	return T(int64(a) % int64(b))
}

// IsInteger reports whether T is an integer kind.
// Integer division truncates 1/2 to zero; float division does not.
func IsInteger[T Number]() bool {
	var one T = 1

	return one/2 == 0
}

// IsUnsigned reports whether T is an unsigned integer kind.
func IsUnsigned[T Number]() bool {
	var zero T

	return zero-1 > 0
}

// ApproxEqual reports whether |a-b| <= eps. NaN is never approximately
// equal to anything, including NaN.
func ApproxEqual[T Number](a, b T, eps float64) bool {
	return math.Abs(float64(a)-float64(b)) <= eps
}
