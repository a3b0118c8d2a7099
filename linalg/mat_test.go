// SPDX-License-Identifier: MIT
// Package linalg_test contains unit tests for Mat construction, access,
// elementwise arithmetic and the matrix product.
package linalg_test

import (
	"testing"

	"github.com/katalvlaran/lvmath/linalg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMatOfLength ensures MatOf and FromColumns reject wrong-length input.
func TestMatOfLength(t *testing.T) {
	_, err := linalg.MatOf[linalg.D2, linalg.D2](1.0, 2, 3) // 3 values for 2x2
	require.ErrorIs(t, err, linalg.ErrInvalidArgument)

	_, err = linalg.FromColumns[linalg.D3, linalg.D2](linalg.NewVec3(1.0, 2, 3)) // 1 column for 3x2
	require.ErrorIs(t, err, linalg.ErrInvalidArgument)

	m, err := linalg.FromColumns[linalg.D3, linalg.D2](linalg.NewVec3(1.0, 2, 3), linalg.NewVec3(4.0, 5, 6))
	require.NoError(t, err)
	require.Equal(t, MustMat[linalg.D3, linalg.D2](t, 1.0, 2, 3, 4, 5, 6), m)
}

// TestMatColumnMajorAccess verifies the col*R+row layout through every accessor.
func TestMatColumnMajorAccess(t *testing.T) {
	m := MustMat[linalg.D2, linalg.D3](t, 0.0, 1, 2, 3, 4, 5) // columns (0,1) (2,3) (4,5)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	x, err := m.At(1, 2) // row 1, column 2 → index 2*2+1
	require.NoError(t, err)
	require.Equal(t, 5.0, x)

	x, err = m.AtIndex(3)
	require.NoError(t, err)
	require.Equal(t, 3.0, x)

	row, err := m.Row(0)
	require.NoError(t, err)
	require.Equal(t, linalg.NewVec3(0.0, 2, 4), row)

	col, err := m.Column(1)
	require.NoError(t, err)
	require.Equal(t, linalg.NewVec2(2.0, 3), col)

	require.NoError(t, m.Set(0, 1, 9))
	require.NoError(t, m.SetIndex(5, 8))
	require.Equal(t, []float64{0, 1, 9, 3, 4, 8}, m.Slice())
}

// TestMatOutOfRange ensures every accessor reports ErrIndexOutOfRange.
func TestMatOutOfRange(t *testing.T) {
	var m linalg.Mat2d

	_, err := m.At(2, 0)
	require.ErrorIs(t, err, linalg.ErrIndexOutOfRange)
	_, err = m.At(0, -1)
	require.ErrorIs(t, err, linalg.ErrIndexOutOfRange)
	require.ErrorIs(t, m.Set(0, 2, 1), linalg.ErrIndexOutOfRange)
	_, err = m.AtIndex(4)
	require.ErrorIs(t, err, linalg.ErrIndexOutOfRange)
	require.ErrorIs(t, m.SetIndex(-1, 1), linalg.ErrIndexOutOfRange)
	_, err = m.Column(2)
	require.ErrorIs(t, err, linalg.ErrIndexOutOfRange)
	_, err = m.Row(3)
	require.ErrorIs(t, err, linalg.ErrIndexOutOfRange)
}

// TestIdentityAndFull checks the square identity and the broadcast constructor.
func TestIdentityAndFull(t *testing.T) {
	require.Equal(t, linalg.NewMat3(1.0, 0, 0, 0, 1, 0, 0, 0, 1), linalg.Identity[linalg.D3, float64]())
	require.Equal(t, linalg.NewMat2(7, 7, 7, 7), linalg.Full[linalg.D2, linalg.D2](7))
}

// TestColumns splits matrices into their column vectors.
func TestColumns(t *testing.T) {
	m3 := linalg.NewMat3[float32](1, 2, 3, 4, 5, 6, 7, 8, 9)
	cols := m3.Columns()
	require.Len(t, cols, 3)
	require.Equal(t, linalg.NewVec3[float32](1, 2, 3), cols[0])
	require.Equal(t, linalg.NewVec3[float32](4, 5, 6), cols[1])
	require.Equal(t, linalg.NewVec3[float32](7, 8, 9), cols[2])

	m32 := MustMat[linalg.D3, linalg.D2](t, float32(1), 2, 3, 4, 5, 6)
	require.Equal(t, []linalg.Vec3f{linalg.NewVec3[float32](1, 2, 3), linalg.NewVec3[float32](4, 5, 6)}, m32.Columns())
}

// TestTranspose checks the shape swap and the involution property.
func TestTranspose(t *testing.T) {
	m := MustMat[linalg.D2, linalg.D3](t, 0.0, 1, 2, 3, 4, 5)
	want := MustMat[linalg.D3, linalg.D2](t, 0.0, 2, 4, 1, 3, 5)
	require.Equal(t, want, m.Transpose())
	require.Equal(t, m, m.Transpose().Transpose())

	sq := linalg.NewMat4(1.0, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16)
	require.Equal(t, sq, sq.Transpose().Transpose())
}

// TestMul checks the true matrix product against hand-computed values.
func TestMul(t *testing.T) {
	a := linalg.NewMat2(0.0, 1, 2, 3)

	v := MustMat[linalg.D2, linalg.D1](t, 1.0, 2)
	require.Equal(t, MustMat[linalg.D2, linalg.D1](t, 4.0, 7), linalg.Mul(a, v))
	require.Equal(t, linalg.NewVec2(4.0, 7), linalg.MulVec(a, linalg.NewVec2(1.0, 2)))

	require.Equal(t, linalg.NewMat2(2.0, 7, -2, -1), linalg.Mul(a, linalg.NewMat2(4.0, 1, 2, -1)))

	a3 := linalg.NewMat3(3.0, 2, -6, 7, 8, 1, 1, 0, -2)
	b3 := linalg.NewMat3(1.0, -1, 7, 0, 0, -2, 5, 1, 2)
	require.Equal(t, linalg.NewMat3(3.0, -6, -21, -2, 0, 4, 24, 18, -33), linalg.Mul(a3, b3))

	// rectangular: 2x3 · 3x2 → 2x2
	l := MustMat[linalg.D2, linalg.D3](t, 1.0, 4, 2, 5, 3, 6) // rows (1,2,3) (4,5,6)
	r := MustMat[linalg.D3, linalg.D2](t, 7.0, 9, 11, 8, 10, 12) // rows (7,8) (9,10) (11,12)
	require.Equal(t, linalg.NewMat2(58.0, 139, 64, 154), linalg.Mul(l, r))

	require.Equal(t, a, linalg.Mul(a, linalg.Identity[linalg.D2, float64]()))
}

// TestHadamardIsNotMul keeps the elementwise and the true product apart.
func TestHadamardIsNotMul(t *testing.T) {
	a := linalg.NewMat2(1.0, 2, 3, 4)
	b := linalg.NewMat2(5.0, 6, 7, 8)
	require.Equal(t, linalg.NewMat2(5.0, 12, 21, 32), a.Hadamard(b))
	require.NotEqual(t, a.Hadamard(b), linalg.Mul(a, b))
}

// TestMatElementwise covers the remaining elementwise and scalar operators.
func TestMatElementwise(t *testing.T) {
	a := linalg.NewMat2(2.0, 4, 6, 8)
	b := linalg.NewMat2(1.0, 2, 3, 4)

	assert.Equal(t, linalg.NewMat2(3.0, 6, 9, 12), a.Add(b))
	assert.Equal(t, linalg.NewMat2(1.0, 2, 3, 4), a.Sub(b))
	assert.Equal(t, linalg.NewMat2(2.0, 2, 2, 2), a.Div(b))
	assert.Equal(t, linalg.NewMat2(1.0, 2, 3, 4), a.DivScalar(2))
	assert.Equal(t, linalg.NewMat2(4.0, 8, 12, 16), a.Scale(2))
	assert.Equal(t, linalg.NewMat2(-2.0, -4, -6, -8), a.Neg())

	ints := linalg.NewMat2(7, 8, 9, 10)
	assert.Equal(t, linalg.NewMat2(1, 2, 0, 1), ints.ModScalar(3))
	assert.Equal(t, linalg.NewMat2(1, 0, 4, 4), ints.Mod(linalg.NewMat2(3, 4, 5, 6)))

	c := a
	c.AddAssign(b).ScaleAssign(2).SubAssign(b)
	assert.Equal(t, linalg.NewMat2(5.0, 10, 15, 20), c)
	c.HadamardAssign(b).DivAssign(b).DivScalarAssign(5)
	assert.Equal(t, linalg.NewMat2(1.0, 2, 3, 4), c)
	ints.ModAssign(linalg.NewMat2(4, 5, 6, 7)).ModScalarAssign(2)
	assert.Equal(t, linalg.NewMat2(1, 1, 1, 1), ints)
	assert.Equal(t, linalg.NewMat2(2.0, 4, 6, 8), a) // value receivers never mutate
}

// TestMatMasks checks comparison masks and reductions.
func TestMatMasks(t *testing.T) {
	a := linalg.NewMat2(1.0, 5, 3, 0)
	b := linalg.NewMat2(0.0, 5, 4, 0)

	require.Equal(t, linalg.NewMat2[uint32](0, 1, 0, 1), a.Equal(b))
	require.Equal(t, linalg.NewMat2[uint32](1, 0, 1, 0), a.NotEqual(b))
	require.Equal(t, linalg.NewMat2[uint32](0, 0, 1, 0), a.Less(b))
	require.Equal(t, linalg.NewMat2[uint32](1, 0, 0, 0), a.Greater(b))
	require.Equal(t, linalg.NewMat2[uint32](0, 1, 1, 1), a.LessEqual(b))
	require.Equal(t, linalg.NewMat2[uint32](1, 1, 0, 1), a.GreaterEqual(b))

	require.False(t, a.All())
	require.True(t, a.Any())
	require.True(t, linalg.Mat2d{}.None())
	require.True(t, linalg.ApproxEqualMat(a, a.Add(linalg.Full[linalg.D2, linalg.D2](1e-9))))
}

// TestOuterProduct multiplies a column by a row.
func TestOuterProduct(t *testing.T) {
	got := linalg.OuterProduct(linalg.NewVec2(1.0, 2), linalg.NewVec2(3.0, 4))
	require.Equal(t, linalg.NewMat2(3.0, 6, 4, 8), got)

	require.Equal(t, MustMat[linalg.D3, linalg.D1](t, 1.0, 2, 3), linalg.ColumnMatrix(linalg.NewVec3(1.0, 2, 3)))
	require.Equal(t, MustMat[linalg.D1, linalg.D3](t, 1.0, 2, 3), linalg.RowMatrix(linalg.NewVec3(1.0, 2, 3)))
}

// TestDenseRoundTrip converts a fixed matrix to Dense and back.
func TestDenseRoundTrip(t *testing.T) {
	m := MustMat[linalg.D3, linalg.D2](t, 1.0, 2, 3, 4, 5, 6)
	d := m.Dense()
	require.Equal(t, 3, d.Rows())
	require.Equal(t, 2, d.Cols())

	back, err := linalg.FromDense[linalg.D3, linalg.D2](d)
	require.NoError(t, err)
	require.Equal(t, m, back)

	_, err = linalg.FromDense[linalg.D2, linalg.D3](d)
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)
	_, err = linalg.FromDense[linalg.D2, linalg.D2, float64](nil)
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)
}

// TestMatString renders one row per line.
func TestMatString(t *testing.T) {
	require.Equal(t, "[1, 3]\n[2, 4]\n", linalg.NewMat2(1, 2, 3, 4).String())
}
