// SPDX-License-Identifier: MIT

// Package linalg - Vec arithmetic, metrics and comparisons.
//
// Naming:
//   - Hadamard is the elementwise product; there is no vector "Mul".
//   - Scale / DivScalar / ModScalar broadcast a scalar.
//   - *Assign variants mutate the receiver and return it for chaining.
//   - Comparison methods return a Vec[N, uint32] mask (1 true, 0 false).
package linalg

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmath/numeric"
)

// Add returns v + w.
func (v Vec[N, T]) Add(w Vec[N, T]) Vec[N, T] {
	n := dimOf[N]()
	ewAdd(v.e[:n], v.e[:n], w.e[:n])

	return v
}

// Sub returns v - w.
func (v Vec[N, T]) Sub(w Vec[N, T]) Vec[N, T] {
	n := dimOf[N]()
	ewSub(v.e[:n], v.e[:n], w.e[:n])

	return v
}

// Hadamard returns the elementwise product v ∘ w.
func (v Vec[N, T]) Hadamard(w Vec[N, T]) Vec[N, T] {
	n := dimOf[N]()
	ewMul(v.e[:n], v.e[:n], w.e[:n])

	return v
}

// Div returns the elementwise quotient v / w.
func (v Vec[N, T]) Div(w Vec[N, T]) Vec[N, T] {
	n := dimOf[N]()
	ewDiv(v.e[:n], v.e[:n], w.e[:n])

	return v
}

// Mod returns the elementwise remainder (truncated division).
func (v Vec[N, T]) Mod(w Vec[N, T]) Vec[N, T] {
	n := dimOf[N]()
	ewMod(v.e[:n], v.e[:n], w.e[:n])

	return v
}

// Scale returns v * s.
func (v Vec[N, T]) Scale(s T) Vec[N, T] {
	n := dimOf[N]()
	ewScale(v.e[:n], v.e[:n], s)

	return v
}

// DivScalar returns v / s.
func (v Vec[N, T]) DivScalar(s T) Vec[N, T] {
	n := dimOf[N]()
	ewDivScalar(v.e[:n], v.e[:n], s)

	return v
}

// ModScalar returns the componentwise remainder of v by s.
func (v Vec[N, T]) ModScalar(s T) Vec[N, T] {
	n := dimOf[N]()
	ewModScalar(v.e[:n], v.e[:n], s)

	return v
}

// Neg returns -v.
func (v Vec[N, T]) Neg() Vec[N, T] {
	n := dimOf[N]()
	ewNeg(v.e[:n], v.e[:n])

	return v
}

// AddAssign performs v += w.
func (v *Vec[N, T]) AddAssign(w Vec[N, T]) *Vec[N, T] {
	*v = v.Add(w)
	return v
}

// SubAssign performs v -= w.
func (v *Vec[N, T]) SubAssign(w Vec[N, T]) *Vec[N, T] {
	*v = v.Sub(w)
	return v
}

// HadamardAssign performs v *= w elementwise.
func (v *Vec[N, T]) HadamardAssign(w Vec[N, T]) *Vec[N, T] {
	*v = v.Hadamard(w)
	return v
}

// DivAssign performs v /= w elementwise.
func (v *Vec[N, T]) DivAssign(w Vec[N, T]) *Vec[N, T] {
	*v = v.Div(w)
	return v
}

// ModAssign performs v %= w elementwise.
func (v *Vec[N, T]) ModAssign(w Vec[N, T]) *Vec[N, T] {
	*v = v.Mod(w)
	return v
}

// ScaleAssign performs v *= s.
func (v *Vec[N, T]) ScaleAssign(s T) *Vec[N, T] {
	*v = v.Scale(s)
	return v
}

// DivScalarAssign performs v /= s.
func (v *Vec[N, T]) DivScalarAssign(s T) *Vec[N, T] {
	*v = v.DivScalar(s)
	return v
}

// ModScalarAssign performs v %= s.
func (v *Vec[N, T]) ModScalarAssign(s T) *Vec[N, T] {
	*v = v.ModScalar(s)
	return v
}

// Dot returns Σ v[i]*w[i].
func (v Vec[N, T]) Dot(w Vec[N, T]) T {
	n := dimOf[N]()

	return ewDot(v.e[:n], w.e[:n])
}

// Length2 returns the squared Euclidean norm; use it for comparisons to avoid
// the square root.
func (v Vec[N, T]) Length2() T {
	return v.Dot(v)
}

// Length returns the Euclidean norm. Integer vectors truncate toward zero.
func (v Vec[N, T]) Length() T {
	return numeric.Sqrt(v.Length2())
}

// Normalize returns v / |v|.
// A zero-length vector yields ErrInvalidOperation; use NormalizeOrZero to
// degrade to the zero vector instead.
func (v Vec[N, T]) Normalize() (Vec[N, T], error) {
	l := v.Length()
	if l == 0 {
		return v, fmt.Errorf("%s: %v: %w", opNormalize, v, ErrInvalidOperation)
	}

	return v.DivScalar(l), nil
}

// NormalizeOrZero returns v / |v|, or the zero vector when |v| == 0.
func (v Vec[N, T]) NormalizeOrZero() Vec[N, T] {
	l := v.Length()
	if l == 0 {
		return Vec[N, T]{}
	}

	return v.DivScalar(l)
}

// Angle returns acos(v·w / (|v||w|)) in radians.
// A zero-length operand yields NaN (0/0); the result is not guarded.
func (v Vec[N, T]) Angle(w Vec[N, T]) T {
	den := math.Sqrt(float64(v.Length2())) * math.Sqrt(float64(w.Length2()))

	return T(math.Acos(float64(v.Dot(w)) / den))
}

// Distance returns |v - w|.
func (v Vec[N, T]) Distance(w Vec[N, T]) T {
	return v.Sub(w).Length()
}

// Distance2 returns |v - w|².
func (v Vec[N, T]) Distance2(w Vec[N, T]) T {
	return v.Sub(w).Length2()
}

// ---------- comparisons & reductions ----------

func (v Vec[N, T]) compare(w Vec[N, T], op int) Vec[N, uint32] {
	var out Vec[N, uint32]
	n := dimOf[N]()
	ewCompare(out.e[:n], v.e[:n], w.e[:n], op)

	return out
}

// Equal returns the mask v[i] == w[i].
func (v Vec[N, T]) Equal(w Vec[N, T]) Vec[N, uint32] { return v.compare(w, cmpEq) }

// NotEqual returns the mask v[i] != w[i].
func (v Vec[N, T]) NotEqual(w Vec[N, T]) Vec[N, uint32] { return v.compare(w, cmpNe) }

// Less returns the mask v[i] < w[i].
func (v Vec[N, T]) Less(w Vec[N, T]) Vec[N, uint32] { return v.compare(w, cmpLt) }

// Greater returns the mask v[i] > w[i].
func (v Vec[N, T]) Greater(w Vec[N, T]) Vec[N, uint32] { return v.compare(w, cmpGt) }

// LessEqual returns the mask v[i] <= w[i].
func (v Vec[N, T]) LessEqual(w Vec[N, T]) Vec[N, uint32] { return v.compare(w, cmpLe) }

// GreaterEqual returns the mask v[i] >= w[i].
func (v Vec[N, T]) GreaterEqual(w Vec[N, T]) Vec[N, uint32] { return v.compare(w, cmpGe) }

// All reports whether every component is non-zero. This is the vector's
// boolean value.
func (v Vec[N, T]) All() bool {
	return ewAll(v.e[:dimOf[N]()])
}

// Any reports whether at least one component is non-zero.
func (v Vec[N, T]) Any() bool {
	return ewAny(v.e[:dimOf[N]()])
}

// None reports whether every component is zero.
func (v Vec[N, T]) None() bool {
	return !v.Any()
}

// AllEqual reports whether a and b are equal in every component.
// For exact equality the built-in == gives the same answer.
func AllEqual[N Dim, T numeric.Number](a, b Vec[N, T]) bool {
	return a.Equal(b).All()
}

// AnyTrue reports whether any lane of a comparison mask is set.
func AnyTrue[N Dim](mask Vec[N, uint32]) bool {
	return mask.Any()
}

// ApproxEqual reports whether |a[i]-b[i]| <= eps in every component
// (eps from WithEpsilon, DefaultEpsilon otherwise).
func ApproxEqual[N Dim, T numeric.Number](a, b Vec[N, T], opts ...Option) bool {
	o := gatherOptions(opts...)
	n := dimOf[N]()

	return ewAllClose(a.e[:n], b.e[:n], o.eps)
}
