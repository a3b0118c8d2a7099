// SPDX-License-Identifier: MIT

// Package numeric defines the element-type constraints and scalar helpers
// shared by the lvmath containers.
//
// What & Why:
//
//	Every container in linalg is generic over its element type. The
//	constraints here (Number, Float, Integer, ...) describe which Go numeric
//	types may be stored, and the scalar helpers (ToRadian, Clamp, Mix, Mod,
//	...) are the single-value building blocks that linalg lifts to
//	elementwise vector operations.
//
// Numeric policy:
//
//	Helpers never panic on numeric input. Floating-point degeneracies
//	(division by zero, acos outside [-1,1]) surface as IEEE-754 Inf/NaN.
//	Integer division by zero keeps Go's native run-time panic.
//
// Complexity:
//
//	All helpers are O(1).
package numeric
