// SPDX-License-Identifier: MIT
// Package: linalg
//
// Purpose:
//   - Provide small, *private* elementwise kernels (ew*) shared by Vec, Mat,
//     Quat and Dense so the tight loops exist exactly once.
//
// Design:
//   - Kernels take flat slices already cut to the logical length; callers
//     slice their fixed arrays (v.e[:n]) so padding slots are never touched.
//   - dst may alias a or b (in-place compound assignment relies on this).
//
// Complexity:
//   - O(n) time, no allocations.

package linalg

import "github.com/katalvlaran/lvmath/numeric"

// ewAdd computes dst[i] = a[i] + b[i].
func ewAdd[T numeric.Number](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// ewSub computes dst[i] = a[i] - b[i].
func ewSub[T numeric.Number](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

// ewMul computes dst[i] = a[i] * b[i].
func ewMul[T numeric.Number](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

// ewDiv computes dst[i] = a[i] / b[i].
func ewDiv[T numeric.Number](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] / b[i]
	}
}

// ewMod computes dst[i] = a[i] mod b[i] (numeric.Mod semantics).
func ewMod[T numeric.Number](dst, a, b []T) {
	for i := range dst {
		dst[i] = numeric.Mod(a[i], b[i])
	}
}

// ewScale computes dst[i] = a[i] * s.
func ewScale[T numeric.Number](dst, a []T, s T) {
	for i := range dst {
		dst[i] = a[i] * s
	}
}

// ewDivScalar computes dst[i] = a[i] / s.
func ewDivScalar[T numeric.Number](dst, a []T, s T) {
	for i := range dst {
		dst[i] = a[i] / s
	}
}

// ewModScalar computes dst[i] = a[i] mod s.
func ewModScalar[T numeric.Number](dst, a []T, s T) {
	for i := range dst {
		dst[i] = numeric.Mod(a[i], s)
	}
}

// ewNeg computes dst[i] = -a[i].
func ewNeg[T numeric.Number](dst, a []T) {
	for i := range dst {
		dst[i] = -a[i]
	}
}

// ewDot returns Σ a[i]*b[i] accumulated in T.
func ewDot[T numeric.Number](a, b []T) T {
	var sum T
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum
}

// Comparison kinds for ewCompare.
const (
	cmpEq = iota
	cmpNe
	cmpLt
	cmpGt
	cmpLe
	cmpGe
)

// ewCompare writes 1 into dst[i] when a[i] <op> b[i] holds and 0 otherwise.
func ewCompare[T numeric.Number](dst []uint32, a, b []T, op int) {
	for i := range dst {
		var ok bool
		switch op {
		case cmpEq:
			ok = a[i] == b[i]
		case cmpNe:
			ok = a[i] != b[i]
		case cmpLt:
			ok = a[i] < b[i]
		case cmpGt:
			ok = a[i] > b[i]
		case cmpLe:
			ok = a[i] <= b[i]
		case cmpGe:
			ok = a[i] >= b[i]
		}
		if ok {
			dst[i] = 1
		} else {
			dst[i] = 0
		}
	}
}

// ewAll reports whether every element is non-zero.
func ewAll[T numeric.Number](a []T) bool {
	for _, x := range a {
		if x == 0 {
			return false
		}
	}

	return true
}

// ewAny reports whether at least one element is non-zero.
func ewAny[T numeric.Number](a []T) bool {
	for _, x := range a {
		if x != 0 {
			return true
		}
	}

	return false
}

// ewAllClose reports whether |a[i]-b[i]| <= eps for every i.
func ewAllClose[T numeric.Number](a, b []T, eps float64) bool {
	for i := range a {
		if !numeric.ApproxEqual(a[i], b[i], eps) {
			return false
		}
	}

	return true
}

// ewMap computes dst[i] = f(a[i]).
func ewMap[T numeric.Number](dst, a []T, f func(T) T) {
	for i := range dst {
		dst[i] = f(a[i])
	}
}
