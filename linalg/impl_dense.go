// SPDX-License-Identifier: MIT

// Package linalg - Dense storage (column-major) & cofactor algebra.
//
// Purpose:
//   - Provide a runtime-shaped matrix for the shapes the type system cannot
//     spell: SubMatrixAt shrinks a matrix by one row and one column, and the
//     cofactor determinant recurses through every smaller size.
//   - Use the same column-major index formula as Mat: col*rows + row.
//   - Guarantee safety at the public surface: At/Set return errors instead of
//     panicking; shape violations return sentinels.
//
// Complexity quicksheet:
//   - NewDense: O(r*c); At/Set: O(1); Clone: O(r*c);
//   - SubMatrixAt: O(r*c); Determinant/Adjoint/Inverse: O(n!) by cofactor
//     expansion (sizes here are tiny by design).
package linalg

import (
	"fmt"

	"github.com/katalvlaran/lvmath/numeric"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a runtime-shaped column-major matrix.
//   - r,c hold dimensions (rows, cols), both > 0.
//   - data is a flat buffer of length r*c (offset = col*r + row).
type Dense[T numeric.Number] struct {
	r, c int
	data []T
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense[float64])(nil)

// NewDense creates an r×c zero matrix.
//
// Errors:
//   - ErrInvalidDimensions when rows <= 0 or cols <= 0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T numeric.Number](rows, cols int) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// NewDenseFrom creates an r×c matrix from values listed column by column.
// A value count other than r*c yields ErrInvalidArgument.
func NewDenseFrom[T numeric.Number](rows, cols int, vals ...T) (*Dense[T], error) {
	d, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, err
	}
	if len(vals) != rows*cols {
		return nil, fmt.Errorf("%s: %d values for Dense %dx%d: %w", opNew, len(vals), rows, cols, ErrInvalidArgument)
	}
	copy(d.data, vals)

	return d, nil
}

// Rows returns the number of rows.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense[T]) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfRange.
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfRange)
	}

	return col*m.r + row, nil
}

// At retrieves the element at (row, col).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf(opAt, row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf(opSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy that shares no storage with m.
func (m *Dense[T]) Clone() *Dense[T] {
	data := make([]T, len(m.data))
	copy(data, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: data}
}

// Slice returns a copy of the elements in column-major order.
func (m *Dense[T]) Slice() []T {
	return m.Clone().data
}

// String renders one bracketed row per line.
func (m *Dense[T]) String() string {
	return formatColumnMajor(m.data, m.r, m.c)
}

// Transpose returns the c×r transpose.
func (m *Dense[T]) Transpose() *Dense[T] {
	out := &Dense[T]{r: m.c, c: m.r, data: make([]T, len(m.data))}
	for col := 0; col < m.c; col++ {
		for row := 0; row < m.r; row++ {
			out.data[row*m.c+col] = m.data[col*m.r+row]
		}
	}

	return out
}

// Mul returns the matrix product m·b.
// Errors: ErrDimensionMismatch when m.Cols() != b.Rows().
// Complexity: O(r*k*c).
func (m *Dense[T]) Mul(b *Dense[T]) (*Dense[T], error) {
	if b == nil || m.c != b.r {
		return nil, linalgErrorf(opMul, ErrDimensionMismatch)
	}
	out := &Dense[T]{r: m.r, c: b.c, data: make([]T, m.r*b.c)}
	for col := 0; col < b.c; col++ {
		for row := 0; row < m.r; row++ {
			var sum T
			for k := 0; k < m.c; k++ {
				sum += m.data[k*m.r+row] * b.data[col*b.r+k]
			}
			out.data[col*m.r+row] = sum
		}
	}

	return out, nil
}

// SubMatrixAt returns the (r-1)×(c-1) matrix obtained by deleting column col
// and row row.
//
// Errors:
//   - ErrInvalidArgument when m has a single row or column (cannot shrink).
//   - ErrIndexOutOfRange when col ∉ [0,c) or row ∉ [0,r).
//
// Complexity:
//   - Time O(r*c), Space O((r-1)*(c-1)).
func (m *Dense[T]) SubMatrixAt(col, row int) (*Dense[T], error) {
	if m.r <= 1 || m.c <= 1 {
		return nil, fmt.Errorf("%s: %dx%d matrix is too small: %w", opSubMatrix, m.r, m.c, ErrInvalidArgument)
	}
	if col < 0 || col >= m.c || row < 0 || row >= m.r {
		return nil, denseErrorf(opSubMatrix, row, col, ErrIndexOutOfRange)
	}

	sr, sc := m.r-1, m.c-1
	out := &Dense[T]{r: sr, c: sc, data: make([]T, sr*sc)}
	for n := 0; n < sc; n++ {
		srcCol := n
		if n >= col {
			srcCol++
		}
		for k := 0; k < sr; k++ {
			srcRow := k
			if k >= row {
				srcRow++
			}
			out.data[n*sr+k] = m.data[srcCol*m.r+srcRow]
		}
	}

	return out, nil
}

// Determinant computes det(m) by Laplace expansion along the first row.
//
// Implementation:
//   - 1×1: the sole element.
//   - 2×2: ad - bc.
//   - n×n: Σ_j (-1)^j · m(0,j) · det(SubMatrixAt(j, 0)).
//
// Errors:
//   - ErrNonSquare for non-square input.
//
// Complexity:
//   - Time O(n!), Space O(n²) per recursion level.
func (m *Dense[T]) Determinant() (T, error) {
	if m.r != m.c {
		var zero T
		return zero, linalgErrorf(opDeterminant, ErrNonSquare)
	}

	return cofactorDet(m), nil
}

// cofactorDet is the recursive kernel behind Determinant; m is square.
func cofactorDet[T numeric.Number](m *Dense[T]) T {
	switch m.r {
	case 1:
		return m.data[0]
	case 2:
		// m00*m11 - m01*m10
		return m.data[0]*m.data[3] - m.data[2]*m.data[1]
	}

	var sum T
	for col := 0; col < m.c; col++ {
		sub, _ := m.SubMatrixAt(col, 0) // m is at least 3×3 here
		term := m.data[col*m.r] * cofactorDet(sub)
		if col%2 == 0 {
			sum += term
		} else {
			sum -= term
		}
	}

	return sum
}

// Adjoint returns the adjugate: the transposed matrix of signed cofactors
// (-1)^(row+col) · det(SubMatrixAt(col, row)).
// The adjoint of a 1×1 matrix is [1].
//
// Errors:
//   - ErrNonSquare for non-square input.
func (m *Dense[T]) Adjoint() (*Dense[T], error) {
	if m.r != m.c {
		return nil, linalgErrorf(opAdjoint, ErrNonSquare)
	}
	if m.r == 1 {
		return &Dense[T]{r: 1, c: 1, data: []T{1}}, nil
	}

	cof := &Dense[T]{r: m.r, c: m.c, data: make([]T, len(m.data))}
	for col := 0; col < m.c; col++ {
		for row := 0; row < m.r; row++ {
			sub, _ := m.SubMatrixAt(col, row) // indices are in range, m ≥ 2×2
			det := cofactorDet(sub)
			if (row+col)%2 == 1 {
				det = -det
			}
			cof.data[col*m.r+row] = det
		}
	}

	return cof.Transpose(), nil
}

// Inverse returns Adjoint()/Determinant().
//
// Behavior highlights:
//   - No singularity guard: a zero determinant yields ±Inf/NaN for floats
//     (and Go's divide-by-zero panic for integer element types).
//   - Use InverseChecked on fixed-size matrices for a guarded variant.
//
// Errors:
//   - ErrNonSquare for non-square input.
func (m *Dense[T]) Inverse() (*Dense[T], error) {
	adj, err := m.Adjoint()
	if err != nil {
		return nil, linalgErrorf(opInverse, err)
	}
	det := cofactorDet(m)
	ewDivScalar(adj.data, adj.data, det)

	return adj, nil
}

// Trace returns the sum of the diagonal.
// Errors: ErrNonSquare for non-square input.
func (m *Dense[T]) Trace() (T, error) {
	var sum T
	if m.r != m.c {
		return sum, linalgErrorf(opTrace, ErrNonSquare)
	}
	for i := 0; i < m.r; i++ {
		sum += m.data[i*m.r+i]
	}

	return sum, nil
}
