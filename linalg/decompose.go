// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"

	"github.com/katalvlaran/lvmath/numeric"
)

// Decomposition holds the factors of an affine transform M = T·R·S as
// homogeneous 4×4 matrices.
type Decomposition[T numeric.Float] struct {
	Translation Mat[D4, D4, T]
	Rotation    Mat[D4, D4, T]
	Scale       Mat[D4, D4, T]
}

// Compose returns Translation·Rotation·Scale.
func (d Decomposition[T]) Compose() Mat[D4, D4, T] {
	return Mul(d.Translation, Mul(d.Rotation, d.Scale))
}

// Decompose splits m into translation, rotation and scale.
//
// Implementation:
//   - Stage 1: the translation is the xyz part of the last column.
//   - Stage 2: each scale factor is the length of the matching basis column.
//   - Stage 3: the rotation columns are the basis columns divided by their
//     scale.
//
// The result is exact for T·R·S products with positive scale, and for T·S·R
// when the scale is uniform. Shear and mirrored (negative) scale are not
// recovered.
//
// Errors:
//   - ErrInvalidOperation when a basis column has zero length.
func Decompose[T numeric.Float](m Mat[D4, D4, T]) (Decomposition[T], error) {
	d := Decomposition[T]{
		Translation: Translation3(NewVec3(m.e[12], m.e[13], m.e[14])),
		Rotation:    Identity[D4, T](),
		Scale:       Identity[D4, T](),
	}
	for col := 0; col < 3; col++ {
		basis := NewVec3(m.e[col*4], m.e[col*4+1], m.e[col*4+2])
		unit, err := basis.Normalize()
		if err != nil {
			return d, fmt.Errorf("%s: basis column %d: %w", opDecompose, col, err)
		}
		d.Scale.e[col*4+col] = basis.Length()
		copy(d.Rotation.e[col*4:col*4+3], unit.e[:3])
	}

	return d, nil
}
