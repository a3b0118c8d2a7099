// SPDX-License-Identifier: MIT
// Package linalg: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the linalg
// package. Functions MUST return these sentinels (optionally wrapped with an
// operation tag) and tests MUST check them via errors.Is. No function panics
// on user-triggered error conditions.

package linalg

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "linalg: ..." for consistency. When context
// is essential, wrap with linalgErrorf(op, ErrX); callers still match with
// errors.Is.

var (
	// ErrIndexOutOfRange indicates that an element, row or column index is
	// outside [0, size).
	ErrIndexOutOfRange = errors.New("linalg: index out of range")

	// ErrInvalidArgument indicates a malformed construction (wrong-length
	// component list) or a structurally invalid request such as asking for
	// the submatrix of a matrix that cannot shrink.
	ErrInvalidArgument = errors.New("linalg: invalid argument")

	// ErrInvalidOperation is returned by the strict normalization forms when
	// the operand has zero length.
	ErrInvalidOperation = errors.New("linalg: invalid operation")

	// ErrDimensionMismatch indicates incompatible runtime shapes (Dense) or a
	// Dense whose shape does not match the requested fixed-size type.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("linalg: matrix is not square")

	// ErrInvalidDimensions indicates non-positive Dense dimensions.
	ErrInvalidDimensions = errors.New("linalg: dimensions must be > 0")

	// ErrSingular is returned by InverseChecked when |det| <= eps.
	ErrSingular = errors.New("linalg: singular matrix")
)

// ErrOutOfRange is the name used by SubMatrixAt documentation.
// It aliases ErrIndexOutOfRange so errors.Is matches either.
var ErrOutOfRange = ErrIndexOutOfRange

// Operation name constants for uniform error wrapping.
const (
	opAt          = "At"
	opSet         = "Set"
	opColumn      = "Column"
	opRow         = "Row"
	opNew         = "New"
	opSwizzle     = "Swizzle"
	opNormalize   = "Normalize"
	opRotate      = "Rotate"
	opSubMatrix   = "SubMatrixAt"
	opDeterminant = "Determinant"
	opAdjoint     = "Adjoint"
	opInverse     = "Inverse"
	opTrace       = "Trace"
	opMul         = "Mul"
	opFromDense   = "FromDense"
	opDecompose   = "Decompose"
	opLookAt      = "LookAt"
)

// linalgErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func linalgErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// indexErrorf reports an out-of-range index together with the valid size.
func indexErrorf(op string, i, size int) error {
	return fmt.Errorf("%s(%d) size %d: %w", op, i, size, ErrIndexOutOfRange)
}
