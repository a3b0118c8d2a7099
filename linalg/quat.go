// SPDX-License-Identifier: MIT

// Package linalg - quaternion storage & Hamilton algebra.
//
// Layout:
//   - e = (w, x, y, z): scalar part first, then the i, j, k coefficients.
//   - Mul is the Hamilton product; Hadamard is the elementwise product.
package linalg

import (
	"fmt"

	"github.com/katalvlaran/lvmath/numeric"
)

// Quat is a quaternion w + xi + yj + zk.
// The zero value is the zero quaternion; QuatIdentity returns (1, 0, 0, 0).
type Quat[T numeric.Number] struct {
	e [4]T
}

// NewQuat returns w + xi + yj + zk.
func NewQuat[T numeric.Number](w, x, y, z T) Quat[T] {
	return Quat[T]{e: [4]T{w, x, y, z}}
}

// QuatOf builds a quaternion from exactly four components (w, x, y, z).
// Any other count yields ErrInvalidArgument.
func QuatOf[T numeric.Number](vals ...T) (Quat[T], error) {
	var q Quat[T]
	if len(vals) != 4 {
		return q, fmt.Errorf("%s: %d components for Quat: %w", opNew, len(vals), ErrInvalidArgument)
	}
	copy(q.e[:], vals)

	return q, nil
}

// QuatFromParts returns real + v.x i + v.y j + v.z k.
func QuatFromParts[T numeric.Number](real T, v Vec[D3, T]) Quat[T] {
	return NewQuat(real, v.e[0], v.e[1], v.e[2])
}

// QuatIdentity returns (1, 0, 0, 0).
func QuatIdentity[T numeric.Number]() Quat[T] {
	return NewQuat[T](1, 0, 0, 0)
}

// QuatFromAxisAngle returns the unit quaternion rotating by radian about
// axis (normalized internally). A zero axis yields ErrInvalidOperation.
func QuatFromAxisAngle[T numeric.Float](axis Vec[D3, T], radian T) (Quat[T], error) {
	u, err := axis.Normalize()
	if err != nil {
		return QuatIdentity[T](), linalgErrorf(opRotate, err)
	}
	s, c := sincos(radian / 2)

	return QuatFromParts(c, u.Scale(s)), nil
}

// At returns component i (0 = w).
func (q Quat[T]) At(i int) (T, error) {
	if i < 0 || i >= 4 {
		var zero T
		return zero, indexErrorf(opAt, i, 4)
	}

	return q.e[i], nil
}

// Set assigns component i (0 = w).
func (q *Quat[T]) Set(i int, x T) error {
	if i < 0 || i >= 4 {
		return indexErrorf(opSet, i, 4)
	}
	q.e[i] = x

	return nil
}

// Scalar returns the real part w.
func (q Quat[T]) Scalar() T { return q.e[0] }

// Vector returns the imaginary part (x, y, z).
func (q Quat[T]) Vector() Vec[D3, T] { return NewVec3(q.e[1], q.e[2], q.e[3]) }

// Vec4 returns (w, x, y, z) as a vector.
func (q Quat[T]) Vec4() Vec[D4, T] { return NewVec4(q.e[0], q.e[1], q.e[2], q.e[3]) }

// Slice returns a copy of (w, x, y, z).
func (q Quat[T]) Slice() []T {
	return []T{q.e[0], q.e[1], q.e[2], q.e[3]}
}

// Add returns q + p.
func (q Quat[T]) Add(p Quat[T]) Quat[T] {
	ewAdd(q.e[:], q.e[:], p.e[:])

	return q
}

// Sub returns q - p.
func (q Quat[T]) Sub(p Quat[T]) Quat[T] {
	ewSub(q.e[:], q.e[:], p.e[:])

	return q
}

// Hadamard returns the elementwise product. For the quaternion product use
// Mul.
func (q Quat[T]) Hadamard(p Quat[T]) Quat[T] {
	ewMul(q.e[:], q.e[:], p.e[:])

	return q
}

// Scale returns q * s.
func (q Quat[T]) Scale(s T) Quat[T] {
	ewScale(q.e[:], q.e[:], s)

	return q
}

// DivScalar returns q / s.
func (q Quat[T]) DivScalar(s T) Quat[T] {
	ewDivScalar(q.e[:], q.e[:], s)

	return q
}

// Div returns the elementwise quotient q / p.
func (q Quat[T]) Div(p Quat[T]) Quat[T] {
	ewDiv(q.e[:], q.e[:], p.e[:])

	return q
}

// Mod returns the elementwise remainder q mod p (numeric.Mod semantics).
func (q Quat[T]) Mod(p Quat[T]) Quat[T] {
	ewMod(q.e[:], q.e[:], p.e[:])

	return q
}

// ModScalar returns q mod s componentwise.
func (q Quat[T]) ModScalar(s T) Quat[T] {
	ewModScalar(q.e[:], q.e[:], s)

	return q
}

// Neg returns -q.
func (q Quat[T]) Neg() Quat[T] {
	ewNeg(q.e[:], q.e[:])

	return q
}

// AddAssign performs q += p.
func (q *Quat[T]) AddAssign(p Quat[T]) *Quat[T] {
	*q = q.Add(p)
	return q
}

// SubAssign performs q -= p.
func (q *Quat[T]) SubAssign(p Quat[T]) *Quat[T] {
	*q = q.Sub(p)
	return q
}

// HadamardAssign performs the elementwise q *= p.
func (q *Quat[T]) HadamardAssign(p Quat[T]) *Quat[T] {
	*q = q.Hadamard(p)
	return q
}

// DivAssign performs the elementwise q /= p.
func (q *Quat[T]) DivAssign(p Quat[T]) *Quat[T] {
	*q = q.Div(p)
	return q
}

// ModAssign performs the elementwise q %= p.
func (q *Quat[T]) ModAssign(p Quat[T]) *Quat[T] {
	*q = q.Mod(p)
	return q
}

// ScaleAssign performs q *= s.
func (q *Quat[T]) ScaleAssign(s T) *Quat[T] {
	*q = q.Scale(s)
	return q
}

// DivScalarAssign performs q /= s.
func (q *Quat[T]) DivScalarAssign(s T) *Quat[T] {
	*q = q.DivScalar(s)
	return q
}

// ModScalarAssign performs q %= s.
func (q *Quat[T]) ModScalarAssign(s T) *Quat[T] {
	*q = q.ModScalar(s)
	return q
}

// Mul returns the Hamilton product q·p.
func (q Quat[T]) Mul(p Quat[T]) Quat[T] {
	a, b := q.e, p.e

	return NewQuat(
		a[0]*b[0]-a[1]*b[1]-a[2]*b[2]-a[3]*b[3],
		a[0]*b[1]+a[1]*b[0]+a[2]*b[3]-a[3]*b[2],
		a[0]*b[2]+a[2]*b[0]+a[3]*b[1]-a[1]*b[3],
		a[0]*b[3]+a[3]*b[0]+a[1]*b[2]-a[2]*b[1],
	)
}

// Dot returns the 4-component dot product.
func (q Quat[T]) Dot(p Quat[T]) T {
	return ewDot(q.e[:], p.e[:])
}

// Conjugate returns (w, -x, -y, -z).
func (q Quat[T]) Conjugate() Quat[T] {
	return NewQuat(q.e[0], -q.e[1], -q.e[2], -q.e[3])
}

// Length2 returns the squared norm.
func (q Quat[T]) Length2() T { return q.Dot(q) }

// Length returns the norm.
func (q Quat[T]) Length() T { return numeric.Sqrt(q.Length2()) }

// Normalize returns q / |q|. A zero quaternion yields ErrInvalidOperation.
func (q Quat[T]) Normalize() (Quat[T], error) {
	l := q.Length()
	if l == 0 {
		return q, fmt.Errorf("%s: %v: %w", opNormalize, q, ErrInvalidOperation)
	}

	return q.DivScalar(l), nil
}

// NormalizeOrZero returns q / |q|, or the zero quaternion when |q| == 0.
func (q Quat[T]) NormalizeOrZero() Quat[T] {
	l := q.Length()
	if l == 0 {
		return Quat[T]{}
	}

	return q.DivScalar(l)
}

// NormalizeOrOne returns q / |q|, or the identity when |q| == 0.
func (q Quat[T]) NormalizeOrOne() Quat[T] {
	l := q.Length()
	if l == 0 {
		return QuatIdentity[T]()
	}

	return q.DivScalar(l)
}

// Inverse returns Conjugate() / Length2(). The zero quaternion yields NaN.
func (q Quat[T]) Inverse() Quat[T] {
	return q.Conjugate().DivScalar(q.Length2())
}

// RotateVec rotates v by q·(0,v)·q⁻¹ using the unit form of q.
func (q Quat[T]) RotateVec(v Vec[D3, T]) Vec[D3, T] {
	u := q.NormalizeOrOne()

	return u.Mul(QuatFromParts(0, v)).Mul(u.Conjugate()).Vector()
}

func (q Quat[T]) compare(p Quat[T], op int) Vec[D4, uint32] {
	var out Vec[D4, uint32]
	ewCompare(out.e[:4], q.e[:], p.e[:], op)

	return out
}

// Equal returns the componentwise mask q == p.
func (q Quat[T]) Equal(p Quat[T]) Vec[D4, uint32] { return q.compare(p, cmpEq) }

// NotEqual returns the componentwise mask q != p.
func (q Quat[T]) NotEqual(p Quat[T]) Vec[D4, uint32] { return q.compare(p, cmpNe) }

// Less returns the componentwise mask q < p.
func (q Quat[T]) Less(p Quat[T]) Vec[D4, uint32] { return q.compare(p, cmpLt) }

// Greater returns the componentwise mask q > p.
func (q Quat[T]) Greater(p Quat[T]) Vec[D4, uint32] { return q.compare(p, cmpGt) }

// LessEqual returns the componentwise mask q <= p.
func (q Quat[T]) LessEqual(p Quat[T]) Vec[D4, uint32] { return q.compare(p, cmpLe) }

// GreaterEqual returns the componentwise mask q >= p.
func (q Quat[T]) GreaterEqual(p Quat[T]) Vec[D4, uint32] { return q.compare(p, cmpGe) }

// Not returns the componentwise logical negation: 1 where a component is
// zero, 0 elsewhere.
func (q Quat[T]) Not() Vec[D4, uint32] { return q.compare(Quat[T]{}, cmpEq) }

// All reports whether every component is non-zero.
func (q Quat[T]) All() bool { return ewAll(q.e[:]) }

// Any reports whether at least one component is non-zero.
func (q Quat[T]) Any() bool { return ewAny(q.e[:]) }

// None reports whether every component is zero.
func (q Quat[T]) None() bool { return !q.Any() }

// ApproxEqualQuat reports whether every component pair differs by at most
// eps.
func ApproxEqualQuat[T numeric.Number](a, b Quat[T], opts ...Option) bool {
	o := gatherOptions(opts...)

	return ewAllClose(a.e[:], b.e[:], o.eps)
}

// String renders the quaternion as "Quat(w, x, y, z)".
func (q Quat[T]) String() string {
	return fmt.Sprintf("Quat(%v, %v, %v, %v)", q.e[0], q.e[1], q.e[2], q.e[3])
}
