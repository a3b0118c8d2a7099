// SPDX-License-Identifier: MIT

// Package linalg - Mat storage (column-major) & safe accessors.
//
// Purpose:
//   - Provide an R×C value matrix whose shape is part of its type.
//   - Use the explicit column-major index formula col*R + row everywhere.
//   - Guarantee safety at the public surface: At/Set/AtIndex/SetIndex return
//     ErrIndexOutOfRange instead of panicking.
//
// Complexity quicksheet:
//   - Constructors: O(R*C); At/Set: O(1); Columns/Slice/Dense: O(R*C) with
//     one allocation.
package linalg

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvmath/numeric"
)

// Mat is an R-row by C-column matrix stored column-major.
//   - R, C are dimension markers (D1..D4).
//   - e holds R*C elements, element (row, col) at e[col*R+row]; the tail
//     e[R*C:] is always zero.
//
// The zero value is the zero matrix.
type Mat[R, C Dim, T numeric.Number] struct {
	e [maxDim * maxDim]T
}

// size returns R*C.
func (m Mat[R, C, T]) size() int {
	return dimOf[R]() * dimOf[C]()
}

// Full returns an R×C matrix with every element set to x.
func Full[R, C Dim, T numeric.Number](x T) Mat[R, C, T] {
	var m Mat[R, C, T]
	for i := 0; i < m.size(); i++ {
		m.e[i] = x
	}

	return m
}

// Identity returns the N×N identity matrix.
func Identity[N Dim, T numeric.Number]() Mat[N, N, T] {
	var m Mat[N, N, T]
	n := dimOf[N]()
	for i := 0; i < n; i++ {
		m.e[i*n+i] = 1
	}

	return m
}

// MatOf builds a matrix from R*C values listed column by column.
// A list of any other length yields ErrInvalidArgument.
func MatOf[R, C Dim, T numeric.Number](vals ...T) (Mat[R, C, T], error) {
	var m Mat[R, C, T]
	if len(vals) != m.size() {
		return m, fmt.Errorf("%s: %d values for Mat%dx%d: %w",
			opNew, len(vals), dimOf[R](), dimOf[C](), ErrInvalidArgument)
	}
	copy(m.e[:], vals)

	return m, nil
}

// FromColumns builds a matrix from exactly C column vectors.
// A list of any other length yields ErrInvalidArgument.
func FromColumns[R, C Dim, T numeric.Number](cols ...Vec[R, T]) (Mat[R, C, T], error) {
	var m Mat[R, C, T]
	r, c := dimOf[R](), dimOf[C]()
	if len(cols) != c {
		return m, fmt.Errorf("%s: %d columns for Mat%dx%d: %w", opNew, len(cols), r, c, ErrInvalidArgument)
	}
	for j, col := range cols {
		copy(m.e[j*r:(j+1)*r], col.e[:r])
	}

	return m, nil
}

// ColumnMatrix copies v into an N×1 matrix.
func ColumnMatrix[N Dim, T numeric.Number](v Vec[N, T]) Mat[N, D1, T] {
	var m Mat[N, D1, T]
	copy(m.e[:], v.e[:dimOf[N]()])

	return m
}

// RowMatrix copies v into a 1×N matrix.
func RowMatrix[N Dim, T numeric.Number](v Vec[N, T]) Mat[D1, N, T] {
	var m Mat[D1, N, T]
	copy(m.e[:], v.e[:dimOf[N]()])

	return m
}

// NewMat2 builds a 2×2 matrix from four values listed column by column.
func NewMat2[T numeric.Number](c0r0, c0r1, c1r0, c1r1 T) Mat[D2, D2, T] {
	return Mat[D2, D2, T]{e: [maxDim * maxDim]T{c0r0, c0r1, c1r0, c1r1}}
}

// NewMat3 builds a 3×3 matrix from nine values listed column by column.
func NewMat3[T numeric.Number](a0, a1, a2, b0, b1, b2, c0, c1, c2 T) Mat[D3, D3, T] {
	return Mat[D3, D3, T]{e: [maxDim * maxDim]T{a0, a1, a2, b0, b1, b2, c0, c1, c2}}
}

// NewMat4 builds a 4×4 matrix from sixteen values listed column by column.
func NewMat4[T numeric.Number](a0, a1, a2, a3, b0, b1, b2, b3, c0, c1, c2, c3, d0, d1, d2, d3 T) Mat[D4, D4, T] {
	return Mat[D4, D4, T]{e: [maxDim * maxDim]T{a0, a1, a2, a3, b0, b1, b2, b3, c0, c1, c2, c3, d0, d1, d2, d3}}
}

// Rows returns R.
func (m Mat[R, C, T]) Rows() int { return dimOf[R]() }

// Cols returns C.
func (m Mat[R, C, T]) Cols() int { return dimOf[C]() }

// At returns element (row, col) or ErrIndexOutOfRange.
func (m Mat[R, C, T]) At(row, col int) (T, error) {
	r, c := dimOf[R](), dimOf[C]()
	if row < 0 || row >= r || col < 0 || col >= c {
		var zero T
		return zero, fmt.Errorf("%s(%d,%d) shape %dx%d: %w", opAt, row, col, r, c, ErrIndexOutOfRange)
	}

	return m.e[col*r+row], nil
}

// Set assigns element (row, col) or returns ErrIndexOutOfRange.
func (m *Mat[R, C, T]) Set(row, col int, x T) error {
	r, c := dimOf[R](), dimOf[C]()
	if row < 0 || row >= r || col < 0 || col >= c {
		return fmt.Errorf("%s(%d,%d) shape %dx%d: %w", opSet, row, col, r, c, ErrIndexOutOfRange)
	}
	m.e[col*r+row] = x

	return nil
}

// AtIndex returns the element at flat column-major index i.
func (m Mat[R, C, T]) AtIndex(i int) (T, error) {
	if i < 0 || i >= m.size() {
		var zero T
		return zero, indexErrorf(opAt, i, m.size())
	}

	return m.e[i], nil
}

// SetIndex assigns the element at flat column-major index i.
func (m *Mat[R, C, T]) SetIndex(i int, x T) error {
	if i < 0 || i >= m.size() {
		return indexErrorf(opSet, i, m.size())
	}
	m.e[i] = x

	return nil
}

// Column returns column col as a vector.
func (m Mat[R, C, T]) Column(col int) (Vec[R, T], error) {
	var v Vec[R, T]
	r := dimOf[R]()
	if col < 0 || col >= dimOf[C]() {
		return v, indexErrorf(opColumn, col, dimOf[C]())
	}
	copy(v.e[:r], m.e[col*r:(col+1)*r])

	return v, nil
}

// Row returns row row as a vector.
func (m Mat[R, C, T]) Row(row int) (Vec[C, T], error) {
	var v Vec[C, T]
	r := dimOf[R]()
	if row < 0 || row >= r {
		return v, indexErrorf(opRow, row, r)
	}
	for j := 0; j < dimOf[C](); j++ {
		v.e[j] = m.e[j*r+row]
	}

	return v, nil
}

// Columns splits the matrix into its C column vectors.
func (m Mat[R, C, T]) Columns() []Vec[R, T] {
	r, c := dimOf[R](), dimOf[C]()
	out := make([]Vec[R, T], c)
	for j := range out {
		copy(out[j].e[:r], m.e[j*r:(j+1)*r])
	}

	return out
}

// Slice returns a copy of the R*C elements in column-major order.
func (m Mat[R, C, T]) Slice() []T {
	out := make([]T, m.size())
	copy(out, m.e[:])

	return out
}

// Dense returns a runtime-shaped copy of m.
func (m Mat[R, C, T]) Dense() *Dense[T] {
	return &Dense[T]{r: dimOf[R](), c: dimOf[C](), data: m.Slice()}
}

// FromDense converts d to an R×C matrix.
// d == nil or a shape other than R×C yields ErrDimensionMismatch.
func FromDense[R, C Dim, T numeric.Number](d *Dense[T]) (Mat[R, C, T], error) {
	var m Mat[R, C, T]
	r, c := dimOf[R](), dimOf[C]()
	if d == nil || d.r != r || d.c != c {
		return m, linalgErrorf(opFromDense, ErrDimensionMismatch)
	}
	copy(m.e[:], d.data)

	return m, nil
}

// String renders one bracketed row per line: "[1, 3]\n[2, 4]\n".
func (m Mat[R, C, T]) String() string {
	return formatColumnMajor(m.e[:m.size()], dimOf[R](), dimOf[C]())
}

// formatColumnMajor renders a column-major buffer row by row.
func formatColumnMajor[T numeric.Number](data []T, rows, cols int) string {
	var sb strings.Builder
	for i := 0; i < rows; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < cols; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%v", data[j*rows+i])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
