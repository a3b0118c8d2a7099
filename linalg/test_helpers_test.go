// SPDX-License-Identifier: MIT
// Package linalg_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures and tolerance-aware assertions.
//   - Keep all data finite and well-formed unless a test targets degeneracy.

package linalg_test

import (
	"testing"

	"github.com/katalvlaran/lvmath/linalg"
	"github.com/katalvlaran/lvmath/numeric"
	"github.com/stretchr/testify/require"
)

// tol is the float tolerance used by InDelta-style comparisons.
const tol = 1e-5

// MustMat builds an R×C matrix from column-major values or fails the test.
func MustMat[R, C linalg.Dim, T numeric.Number](t *testing.T, vals ...T) linalg.Mat[R, C, T] {
	t.Helper()
	m, err := linalg.MatOf[R, C](vals...)
	require.NoError(t, err)

	return m
}

// MustDense builds a runtime-shaped matrix from column-major values or fails
// the test.
func MustDense(t *testing.T, rows, cols int, vals ...float64) *linalg.Dense[float64] {
	t.Helper()
	d, err := linalg.NewDenseFrom(rows, cols, vals...)
	require.NoError(t, err)

	return d
}

// RequireMatInDelta compares two matrices element by element within tol.
func RequireMatInDelta[R, C linalg.Dim](t *testing.T, want, got linalg.Mat[R, C, float64]) {
	t.Helper()
	require.InDeltaSlice(t, want.Slice(), got.Slice(), tol, "want\n%vgot\n%v", want, got)
}

// RequireMat32InDelta is RequireMatInDelta for float32 matrices.
func RequireMat32InDelta[R, C linalg.Dim](t *testing.T, want, got linalg.Mat[R, C, float32]) {
	t.Helper()
	require.InDeltaSlice(t, want.Slice(), got.Slice(), tol, "want\n%vgot\n%v", want, got)
}

// RequireVecInDelta compares two vectors component by component within tol.
func RequireVecInDelta[N linalg.Dim](t *testing.T, want, got linalg.Vec[N, float64]) {
	t.Helper()
	require.InDeltaSlice(t, want.Slice(), got.Slice(), tol, "want %v got %v", want, got)
}

// RequireQuatInDelta compares two quaternions component by component within tol.
func RequireQuatInDelta(t *testing.T, want, got linalg.Quatd) {
	t.Helper()
	require.InDeltaSlice(t, want.Slice(), got.Slice(), tol, "want %v got %v", want, got)
}

// isNaN reports whether x is NaN.
func isNaN(x float64) bool { return x != x }
