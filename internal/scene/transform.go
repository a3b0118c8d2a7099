// SPDX-License-Identifier: MIT

package scene

import (
	"fmt"

	"github.com/katalvlaran/lvmath/linalg"
)

// Transform places a mesh in the world: scale first, then rotate, then
// translate.
type Transform struct {
	Translation linalg.Vec3d
	Rotation    linalg.Quatd
	Scale       linalg.Vec3d
}

// Identity returns the transform that leaves a mesh where it is.
func Identity() Transform {
	return Transform{
		Rotation: linalg.QuatIdentity[float64](),
		Scale:    linalg.NewVec3(1.0, 1, 1),
	}
}

// Matrix returns T·R·S.
func (t Transform) Matrix() linalg.Mat4d {
	return linalg.Mul(
		linalg.Translation3(t.Translation),
		linalg.Mul(t.Rotation.ToMat4(), linalg.Scale3(t.Scale)),
	)
}

// Spin rotates the transform by radians about the world axis.
func (t *Transform) Spin(axis linalg.Vec3d, radians float64) error {
	q, err := linalg.QuatFromAxisAngle(axis, radians)
	if err != nil {
		return fmt.Errorf("spin: %w", err)
	}
	t.Rotation = q.Mul(t.Rotation).NormalizeOrOne()

	return nil
}

// FromMatrix recovers a Transform from a T·R·S matrix with positive scale.
func FromMatrix(m linalg.Mat4d) (Transform, error) {
	d, err := linalg.Decompose(m)
	if err != nil {
		return Transform{}, fmt.Errorf("transform from matrix: %w", err)
	}
	col, _ := d.Translation.Column(3) // 4x4 always has column 3

	return Transform{
		Translation: linalg.XYZ(col),
		Rotation:    linalg.QuatFromMat4(d.Rotation),
		Scale:       linalg.XYZ(linalg.Diagonal(d.Scale)),
	}, nil
}

// Interpolate blends a and b: slerp for the rotation, linear for the rest.
// The rotation takes the shorter arc; equal rotations fall back to linear
// blending instead of producing NaN.
func Interpolate(a, b Transform, t float64) Transform {
	qb := b.Rotation
	if a.Rotation.Dot(qb) < 0 {
		qb = qb.Neg()
	}

	return Transform{
		Translation: linalg.Mix(a.Translation, b.Translation, t),
		Rotation:    linalg.Slerp(a.Rotation, qb, t, linalg.WithSlerpFallback()),
		Scale:       linalg.Mix(a.Scale, b.Scale, t),
	}
}
