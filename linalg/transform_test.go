// SPDX-License-Identifier: MIT
package linalg_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvmath/linalg"
	"github.com/stretchr/testify/require"
)

// TestTranslationAndScale applies the homogeneous builders to points.
func TestTranslationAndScale(t *testing.T) {
	p := linalg.NewVec4(1.0, 1, 1, 1)
	tr := linalg.Translation3(linalg.NewVec3(1.0, -2, 3))
	require.Equal(t, linalg.NewVec4(2.0, -1, 4, 1), linalg.MulVec(tr, p))
	require.Equal(t, linalg.NewVec4(1.0, 1, 1, 0), linalg.MulVec(tr, linalg.NewVec4(1.0, 1, 1, 0))) // directions ignore translation

	sc := linalg.Scale3(linalg.NewVec3(2.0, 3, 4))
	require.Equal(t, linalg.NewVec4(2.0, 3, 4, 1), linalg.MulVec(sc, p))

	p2 := linalg.NewVec3(1.0, 1, 1)
	require.Equal(t, linalg.NewVec3(4.0, 6, 1), linalg.MulVec(linalg.Translation2(linalg.NewVec2(3.0, 5)), p2))
	require.Equal(t, linalg.NewVec3(3.0, 5, 1), linalg.MulVec(linalg.Scale2(linalg.NewVec2(3.0, 5)), p2))
}

// TestTranslateRightMultiplies checks Translate3(m, v) == m·T(v).
func TestTranslateRightMultiplies(t *testing.T) {
	v := linalg.NewVec3(1.0, 2, 3)
	id := linalg.Identity[linalg.D4, float64]()
	require.Equal(t, linalg.Translation3(v), linalg.Translate3(id, v))

	sc := linalg.Scale3(linalg.NewVec3(2.0, 2, 2))
	got := linalg.MulVec(linalg.Translate3(sc, v), linalg.NewVec4(0.0, 0, 0, 1))
	require.Equal(t, linalg.NewVec4(2.0, 4, 6, 1), got) // translation happens before the scale

	require.Equal(t, linalg.Translation2(linalg.NewVec2(1.0, 2)), linalg.Translate2(linalg.Identity[linalg.D3, float64](), linalg.NewVec2(1.0, 2)))
}

// TestRotation2 turns counter-clockwise.
func TestRotation2(t *testing.T) {
	got := linalg.MulVec(linalg.Rotation2(math.Pi/2), linalg.NewVec2(1.0, 0))
	RequireVecInDelta(t, linalg.NewVec2(0.0, 1), got)

	got3 := linalg.MulVec(linalg.Rotation2H(math.Pi/2), linalg.NewVec3(1.0, 0, 1))
	RequireVecInDelta(t, linalg.NewVec3(0.0, 1, 1), got3)

	RequireMatInDelta(t, linalg.Rotation2(0.7), linalg.Rotate2(linalg.Identity[linalg.D2, float64](), 0.7))
	RequireMatInDelta(t, linalg.Rotation2H(0.7), linalg.Rotate2H(linalg.Identity[linalg.D3, float64](), 0.7))
}

// TestRotationAxisAngle checks the right-handed axis-angle matrix.
func TestRotationAxisAngle(t *testing.T) {
	rz, err := linalg.Rotation(math.Pi/2, linalg.NewVec3(0.0, 0, 2))
	require.NoError(t, err)
	RequireVecInDelta(t, linalg.NewVec3(0.0, 1, 0), linalg.MulVec(rz, linalg.NewVec3(1.0, 0, 0)))

	for _, angle := range []float64{-2.1, 0.3, math.Pi / 3} {
		rx, err := linalg.Rotation(angle, linalg.NewVec3(1.0, 0, 0))
		require.NoError(t, err)
		RequireMatInDelta(t, linalg.EulerX(angle), rx)

		ry, err := linalg.Rotation(angle, linalg.NewVec3(0.0, 1, 0))
		require.NoError(t, err)
		RequireMatInDelta(t, linalg.EulerY(angle), ry)

		rz, err := linalg.Rotation(angle, linalg.NewVec3(0.0, 0, 1))
		require.NoError(t, err)
		RequireMatInDelta(t, linalg.EulerZ(angle), rz)
	}

	_, err = linalg.Rotation(1.0, linalg.Vec3d{})
	require.ErrorIs(t, err, linalg.ErrInvalidOperation)
}

// TestRotationMatchesVecRotate relates the matrix to Rodrigues' vector form,
// which turns the opposite way (v × axis).
func TestRotationMatchesVecRotate(t *testing.T) {
	axis := linalg.NewVec3(1.0, 2, -1)
	v := linalg.NewVec3(0.5, -3, 2)
	r, err := linalg.Rotation(0.9, axis)
	require.NoError(t, err)

	want, err := linalg.Rotate(v, -0.9, axis)
	require.NoError(t, err)
	RequireVecInDelta(t, want, linalg.MulVec(r, v))
}

// TestEulerOrder checks Euler(x,y,z) == Rz·Ry·Rx and orthonormality.
func TestEulerOrder(t *testing.T) {
	x, y, z := 0.4, -1.2, 2.5
	want := linalg.Mul(linalg.EulerZ(z), linalg.Mul(linalg.EulerY(y), linalg.EulerX(x)))
	e := linalg.Euler(x, y, z)
	RequireMatInDelta(t, want, e)
	RequireMatInDelta(t, linalg.Identity[linalg.D3, float64](), linalg.Mul(e, e.Transpose()))
	require.InDelta(t, 1.0, linalg.Determinant(e), tol)
}

// TestToHomogeneous embeds and extracts the 3x3 block.
func TestToHomogeneous(t *testing.T) {
	m := linalg.NewMat3(0.0, 1, 2, 3, 4, 5, 6, 7, 8)
	h := linalg.ToHomogeneous(m)
	require.Equal(t, linalg.NewMat4(0.0, 1, 2, 0, 3, 4, 5, 0, 6, 7, 8, 0, 0, 0, 0, 1), h)
	require.Equal(t, m, linalg.ToMat3(h))
}

// TestRotate3And4 covers left-multiplied rotations and the pivot form.
func TestRotate3And4(t *testing.T) {
	axis := linalg.NewVec3(0.0, 0, 1)
	s := linalg.NewMat3(2.0, 0, 0, 0, 2, 0, 0, 0, 2)
	got, err := linalg.Rotate3(s, math.Pi/2, axis)
	require.NoError(t, err)
	r, err := linalg.Rotation(math.Pi/2, axis)
	require.NoError(t, err)
	RequireMatInDelta(t, linalg.Mul(r, s), got)

	pivot := linalg.NewVec3(1.0, 1, 0)
	id := linalg.Identity[linalg.D4, float64]()
	m, err := linalg.Rotate4(id, math.Pi/2, axis, pivot)
	require.NoError(t, err)
	RequireVecInDelta(t, linalg.NewVec4(1.0, 1, 0, 1), linalg.MulVec(m, linalg.Homogeneous(pivot, 1))) // pivot is fixed
	RequireVecInDelta(t, linalg.NewVec4(1.0, 2, 0, 1), linalg.MulVec(m, linalg.NewVec4(2.0, 1, 0, 1)))

	_, err = linalg.Rotate4(id, 1, linalg.Vec3d{}, pivot)
	require.ErrorIs(t, err, linalg.ErrInvalidOperation)
	_, err = linalg.Rotate3(s, 1, linalg.Vec3d{})
	require.ErrorIs(t, err, linalg.ErrInvalidOperation)
}
