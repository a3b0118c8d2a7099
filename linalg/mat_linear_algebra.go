// SPDX-License-Identifier: MIT

// Package linalg - square-matrix algebra over fixed-size matrices.
//
// Purpose:
//   - Expose Determinant, Adjoint, Inverse and Trace for Mat[N,N,T] with the
//     square shape enforced by the type system.
//   - Delegate the cofactor recursion to Dense so the algorithm exists once.
//
// Complexity:
//   - Determinant/Adjoint/Inverse: O(n!) cofactor expansion, n <= 4.
package linalg

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmath/numeric"
)

// SubMatrixAt returns the (R-1)×(C-1) matrix obtained by deleting column col
// and row row. The result is runtime-shaped; convert it back with FromDense.
//
// Errors:
//   - ErrInvalidArgument when m has a single row or column.
//   - ErrIndexOutOfRange (alias ErrOutOfRange) when col >= C or row >= R.
func (m Mat[R, C, T]) SubMatrixAt(col, row int) (*Dense[T], error) {
	return m.Dense().SubMatrixAt(col, row)
}

// Determinant computes det(m) by Laplace expansion along the first row.
// Base cases: 1×1 returns the sole element, 2×2 returns ad - bc.
func Determinant[N Dim, T numeric.Number](m Mat[N, N, T]) T {
	return cofactorDet(m.Dense())
}

// Adjoint returns the transposed matrix of signed cofactors.
// The adjoint of a 1×1 matrix is [1].
func Adjoint[N Dim, T numeric.Number](m Mat[N, N, T]) Mat[N, N, T] {
	adj, _ := m.Dense().Adjoint() // square by construction
	out, _ := FromDense[N, N](adj)

	return out
}

// Inverse returns Adjoint(m) / Determinant(m).
//
// No singularity guard is applied: a zero determinant yields ±Inf/NaN
// elements. Use InverseChecked to detect singular input.
func Inverse[N Dim, T numeric.Float](m Mat[N, N, T]) Mat[N, N, T] {
	return Adjoint(m).DivScalar(Determinant(m))
}

// InverseChecked is Inverse with a singularity test.
//
// Errors:
//   - ErrSingular when |det| <= eps (WithEpsilon, default DefaultEpsilon) or
//     the determinant is NaN.
func InverseChecked[N Dim, T numeric.Float](m Mat[N, N, T], opts ...Option) (Mat[N, N, T], error) {
	o := gatherOptions(opts...)
	det := float64(Determinant(m))
	if math.IsNaN(det) || math.Abs(det) <= o.eps {
		return m, fmt.Errorf("%s: det=%g: %w", opInverse, det, ErrSingular)
	}

	return Inverse(m), nil
}

// Trace returns the sum of the diagonal of m.
func Trace[N Dim, T numeric.Number](m Mat[N, N, T]) T {
	var sum T
	n := dimOf[N]()
	for i := 0; i < n; i++ {
		sum += m.e[i*n+i]
	}

	return sum
}

// Diagonal returns the main diagonal of m as a vector.
func Diagonal[N Dim, T numeric.Number](m Mat[N, N, T]) Vec[N, T] {
	var v Vec[N, T]
	n := dimOf[N]()
	for i := 0; i < n; i++ {
		v.e[i] = m.e[i*n+i]
	}

	return v
}
