// SPDX-License-Identifier: MIT

// Package lvmath is a small, dependency-light linear-algebra toolkit for
// real-time 3D work: fixed-size vectors, matrices and quaternions whose
// dimensions are checked by the type system.
//
// Layout:
//
//   - numeric: scalar constraints (Integer, Float, Number) and the small
//     scalar helpers every other package builds on (Abs, Clamp, Mix, Sign...).
//   - linalg: Vec[N,T], Mat[R,C,T] (column-major) and Quat[T], elementwise
//     and algebraic operations, determinant/adjoint/inverse, affine
//     transforms, camera matrices, decomposition, slerp and the runtime-shaped
//     Dense matrix used by the cofactor algorithms.
//   - internal/scene: camera, mesh and projection helpers that turn linalg
//     values into screen-space segments.
//   - cmd/wireframe: an ebiten demo that renders a spinning wireframe cube.
//
// Conventions: right-handed coordinates, OpenGL clip space (z in [-1,1]),
// angles in radians, column vectors (M·v).
//
// Quick start:
//
//	axis := linalg.NewVec3(0.0, 1.0, 0.0)
//	q, _ := linalg.QuatFromAxisAngle(axis, math.Pi/2)
//	v := q.RotateVec(linalg.NewVec3(1.0, 0.0, 0.0)) // ≈ (0, 0, -1)
//
// Errors are sentinels in linalg (ErrSingular, ErrInvalidOperation, ...)
// wrapped with operation context; test them with errors.Is.
package lvmath
