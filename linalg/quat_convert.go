// SPDX-License-Identifier: MIT

// Package linalg - quaternion/matrix conversion & interpolation.
package linalg

import (
	"math"

	"github.com/katalvlaran/lvmath/numeric"
)

// ToMat3 returns the rotation matrix of the unit form of q (NormalizeOrOne),
// so a non-unit q still yields a rotation.
func (q Quat[T]) ToMat3() Mat[D3, D3, T] {
	u := q.NormalizeOrOne()
	w, x, y, z := u.e[0], u.e[1], u.e[2], u.e[3]

	return NewMat3(
		1-2*(y*y+z*z), 2*(x*y+w*z), 2*(x*z-w*y),
		2*(x*y-w*z), 1-2*(x*x+z*z), 2*(y*z+w*x),
		2*(x*z+w*y), 2*(y*z-w*x), 1-2*(x*x+y*y),
	)
}

// ToMat4 returns ToMat3 embedded in a homogeneous 4×4 matrix.
func (q Quat[T]) ToMat4() Mat[D4, D4, T] {
	return ToHomogeneous(q.ToMat3())
}

// QuatFromMat3 extracts the unit quaternion of the rotation matrix m.
//
// Implementation (Sarabandi & Thomas, "Accurate Computation of Quaternions
// from Rotation Matrices", 2019):
//   - Stage 1: each of |w|, |x|, |y|, |z| is computed on its own. When its
//     diagonal combination (trace, r00-r11-r22, ...) exceeds the threshold
//     the direct sqrt form is used, otherwise the off-diagonal form.
//   - Stage 2: the largest component is taken positive and the others get
//     their signs from the pair products (4wx = r21-r12, 4xy = r01+r10, ...).
//   - Stage 3: the result is canonicalized to w >= 0.
//
// The threshold is set with WithThreshold (DefaultThreshold otherwise).
func QuatFromMat3[T numeric.Float](m Mat[D3, D3, T], opts ...Option) Quat[T] {
	o := gatherOptions(opts...)
	eta := o.threshold
	r := func(row, col int) float64 { return float64(m.e[col*3+row]) }
	r00, r01, r02 := r(0, 0), r(0, 1), r(0, 2)
	r10, r11, r12 := r(1, 0), r(1, 1), r(1, 2)
	r20, r21, r22 := r(2, 0), r(2, 1), r(2, 2)

	// pair terms, each proportional to a product of two components
	wx, wy, wz := r21-r12, r02-r20, r10-r01
	xy, xz, yz := r01+r10, r02+r20, r12+r21

	component := func(diag, num, den float64) float64 {
		if diag > eta {
			return 0.5 * math.Sqrt(1+diag)
		}

		return 0.5 * math.Sqrt(num/den)
	}
	tr := r00 + r11 + r22
	w := component(tr, wx*wx+wy*wy+wz*wz, 3-tr)
	x := component(r00-r11-r22, wx*wx+xy*xy+xz*xz, 3-r00+r11+r22)
	y := component(-r00+r11-r22, wy*wy+xy*xy+yz*yz, 3+r00-r11+r22)
	z := component(-r00-r11+r22, wz*wz+xz*xz+yz*yz, 3+r00+r11-r22)

	sign := func(v float64) float64 {
		if v < 0 {
			return -1
		}

		return 1
	}
	switch {
	case w >= x && w >= y && w >= z:
		x, y, z = sign(wx)*x, sign(wy)*y, sign(wz)*z
	case x >= y && x >= z:
		w, y, z = sign(wx)*w, sign(xy)*y, sign(xz)*z
	case y >= z:
		w, x, z = sign(wy)*w, sign(xy)*x, sign(yz)*z
	default:
		w, x, y = sign(wz)*w, sign(xz)*x, sign(yz)*y
	}
	if w < 0 {
		w, x, y, z = -w, -x, -y, -z
	}

	return NewQuat(T(w), T(x), T(y), T(z))
}

// QuatFromMat4 extracts the rotation of the upper-left 3×3 block of m.
func QuatFromMat4[T numeric.Float](m Mat[D4, D4, T], opts ...Option) Quat[T] {
	return QuatFromMat3(ToMat3(m), opts...)
}

// Slerp interpolates between the unit quaternions a and b:
//
//	angle = acos(a·b)
//	slerp = a·sin((1-t)·angle)/sin(angle) + b·sin(t·angle)/sin(angle)
//
// t = 0 returns a and t = 1 returns b. Parallel or antiparallel inputs
// (|a·b| within a few units of roundoff of 1) have no defined arc: the result
// is the NaN quaternion unless WithSlerpFallback is set, in which case the
// normalized linear interpolation is returned whenever the inputs are
// degenerate or sin(angle) <= eps. No shortest-arc flip is applied.
func Slerp[T numeric.Float](a, b Quat[T], t T, opts ...Option) Quat[T] {
	o := gatherOptions(opts...)
	d := float64(a.Dot(b))
	degenerate := math.IsNaN(d) || 1-math.Abs(d) <= 4*unitRoundoff[T]()
	angle := math.Acos(math.Max(-1, math.Min(1, d)))
	s := math.Sin(angle)
	if o.slerpFallback && (degenerate || s <= o.eps) {
		return a.Scale(1 - t).Add(b.Scale(t)).NormalizeOrOne()
	}
	if degenerate {
		nan := T(math.NaN())
		return Quat[T]{e: [4]T{nan, nan, nan, nan}}
	}
	tf := float64(t)
	ka := T(math.Sin((1-tf)*angle) / s)
	kb := T(math.Sin(tf*angle) / s)

	return a.Scale(ka).Add(b.Scale(kb))
}

// unitRoundoff returns the gap between 1 and the next representable T.
func unitRoundoff[T numeric.Float]() float64 {
	var big T = 1 << 24
	if big+1 == big {
		return 0x1p-23
	}

	return 0x1p-52
}
