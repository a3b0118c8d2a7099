// SPDX-License-Identifier: MIT

// Package linalg provides fixed-size vectors, matrices and quaternions for
// 2D/3D graphics, simulation and game code.
//
// The linalg package provides:
//
//   - Vec[N,T]: an N-component value (N = 1..4) with elementwise arithmetic,
//     dot/cross products, normalization, projection and Rodrigues rotation.
//   - Mat[R,C,T]: an R×C column-major matrix with elementwise arithmetic,
//     true matrix product (Mul), transpose, cofactor determinant, adjoint,
//     inverse, affine transform builders and camera/projection matrices.
//   - Quat[T]: a (scalar, i, j, k) quaternion with the Hamilton product,
//     conjugate/inverse, matrix conversion and Slerp.
//   - Dense[T]: a runtime-shaped column-major matrix used by the cofactor
//     algorithms and for shapes the type system cannot spell (SubMatrixAt).
//
// Shapes are type parameters. D1..D4 are marker types, so adding a Vec3 to a
// Vec4 or multiplying incompatible matrices does not compile. Operations that
// only exist for one shape are free functions over that shape (Cross,
// Determinant, Inverse, LookAt, ...).
//
// Every container is a plain value backed by a fixed array: assignment copies,
// nothing aliases, and values are safe to pass between goroutines.
//
// Elementwise vs. product: Hadamard is always the elementwise product; Mul is
// always the true matrix / Hamilton product. Comparison methods (Equal, Less,
// ...) return an unsigned mask of the same shape; All/Any/None reduce a mask.
//
// Errors are package sentinels (see errors.go) matched with errors.Is.
// Floating-point degeneracies (inverse of a singular matrix, Angle or Slerp of
// degenerate input) surface as IEEE-754 Inf/NaN rather than errors.
package linalg
