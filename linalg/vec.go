// SPDX-License-Identifier: MIT

// Package linalg - Vec storage, construction & safe accessors.
//
// Purpose:
//   - Provide an N-component value type whose length is part of its type.
//   - Guarantee safety at the public surface: At/Set return errors instead of
//     panicking on bad indices.
//   - Keep copy semantics: the backing store is an array, never a slice.
//
// Complexity quicksheet:
//   - Constructors, At, Set: O(N); all allocation-free except Slice and String.
package linalg

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvmath/numeric"
)

// Vec is a fixed-length numeric tuple of N components of type T.
//   - N is a dimension marker (D1..D4); the length never changes.
//   - e holds the components in e[:N]; e[N:] is always zero.
//
// The zero value is the zero vector.
type Vec[N Dim, T numeric.Number] struct {
	e [maxDim]T
}

// Broadcast returns a vector with every component set to x.
func Broadcast[N Dim, T numeric.Number](x T) Vec[N, T] {
	var v Vec[N, T]
	for i := 0; i < dimOf[N](); i++ {
		v.e[i] = x
	}

	return v
}

// VecOf builds a vector from an explicit component list.
// The list length must equal N, otherwise ErrInvalidArgument is returned.
//
// Example:
//
//	v, err := linalg.VecOf[linalg.D3](1.0, 2, 3)
func VecOf[N Dim, T numeric.Number](vals ...T) (Vec[N, T], error) {
	var v Vec[N, T]
	if n := dimOf[N](); len(vals) != n {
		return v, fmt.Errorf("%s: %d components for Vec%d: %w", opNew, len(vals), n, ErrInvalidArgument)
	}
	copy(v.e[:], vals)

	return v, nil
}

// VecFromSlice copies the first N values of buf into a new vector.
// buf shorter than N yields ErrInvalidArgument; extra values are ignored.
func VecFromSlice[N Dim, T numeric.Number](buf []T) (Vec[N, T], error) {
	var v Vec[N, T]
	n := dimOf[N]()
	if len(buf) < n {
		return v, fmt.Errorf("%s: buffer of %d for Vec%d: %w", opNew, len(buf), n, ErrInvalidArgument)
	}
	copy(v.e[:n], buf)

	return v, nil
}

// NewVec2 returns (x, y).
func NewVec2[T numeric.Number](x, y T) Vec[D2, T] {
	return Vec[D2, T]{e: [maxDim]T{x, y}}
}

// NewVec3 returns (x, y, z).
func NewVec3[T numeric.Number](x, y, z T) Vec[D3, T] {
	return Vec[D3, T]{e: [maxDim]T{x, y, z}}
}

// NewVec4 returns (x, y, z, w).
func NewVec4[T numeric.Number](x, y, z, w T) Vec[D4, T] {
	return Vec[D4, T]{e: [maxDim]T{x, y, z, w}}
}

// Len returns N.
func (v Vec[N, T]) Len() int {
	return dimOf[N]()
}

// At returns component i or ErrIndexOutOfRange.
// Complexity: O(1).
func (v Vec[N, T]) At(i int) (T, error) {
	if i < 0 || i >= dimOf[N]() {
		var zero T
		return zero, indexErrorf(opAt, i, dimOf[N]())
	}

	return v.e[i], nil
}

// Set assigns component i or returns ErrIndexOutOfRange leaving v untouched.
func (v *Vec[N, T]) Set(i int, x T) error {
	if i < 0 || i >= dimOf[N]() {
		return indexErrorf(opSet, i, dimOf[N]())
	}
	v.e[i] = x

	return nil
}

// Slice returns a freshly allocated copy of the N components.
func (v Vec[N, T]) Slice() []T {
	out := make([]T, dimOf[N]())
	copy(out, v.e[:])

	return out
}

// Swizzle builds a vector of length M from the components of v at the given
// indices, e.g. Swizzle[D4](v3, 0, 1, 2, 2).
// len(idx) != M yields ErrInvalidArgument; an index outside [0,N) yields
// ErrIndexOutOfRange.
func Swizzle[M, N Dim, T numeric.Number](v Vec[N, T], idx ...int) (Vec[M, T], error) {
	var out Vec[M, T]
	if m := dimOf[M](); len(idx) != m {
		return out, fmt.Errorf("%s: %d indices for Vec%d: %w", opSwizzle, len(idx), m, ErrInvalidArgument)
	}
	n := dimOf[N]()
	for k, i := range idx {
		if i < 0 || i >= n {
			return out, indexErrorf(opSwizzle, i, n)
		}
		out.e[k] = v.e[i]
	}

	return out, nil
}

// String renders the vector as "Vec3(1, 2, 3)".
func (v Vec[N, T]) String() string {
	n := dimOf[N]()
	var sb strings.Builder
	fmt.Fprintf(&sb, "Vec%d(", n)
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", v.e[i])
	}
	sb.WriteByte(')')

	return sb.String()
}
