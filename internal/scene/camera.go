// SPDX-License-Identifier: MIT

package scene

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmath/linalg"
)

// Camera defaults.
const (
	DefaultFovY = math.Pi / 3
	DefaultNear = 0.1
	DefaultFar  = 100.0

	minPolarAngle = 0.05
)

// Camera is a perspective camera at Eye looking at Target.
type Camera struct {
	Eye, Target, Up linalg.Vec3d
	FovY            float64 // vertical field of view, radians
	Near, Far       float64 // positive distances
}

// NewCamera returns a camera with +Y up and the default lens.
func NewCamera(eye, target linalg.Vec3d) Camera {
	return Camera{
		Eye:    eye,
		Target: target,
		Up:     linalg.NewVec3(0.0, 1, 0),
		FovY:   DefaultFovY,
		Near:   DefaultNear,
		Far:    DefaultFar,
	}
}

// View returns the world-to-camera matrix.
func (c Camera) View() (linalg.Mat4d, error) {
	v, err := linalg.LookAt(c.Eye, c.Target, c.Up)
	if err != nil {
		return v, fmt.Errorf("camera view: %w", err)
	}

	return v, nil
}

// Projection returns the perspective matrix for the given width/height ratio.
func (c Camera) Projection(aspect float64) linalg.Mat4d {
	return linalg.Perspective(c.FovY, aspect, c.Near, c.Far)
}

// Orbit swings the eye around the target by yaw radians about Up and by
// pitch radians about the camera's right axis.
func (c *Camera) Orbit(yaw, pitch float64) error {
	offset := c.Eye.Sub(c.Target)
	offset, err := linalg.Rotate(offset, -yaw, c.Up) // Rotate turns clockwise for positive angles
	if err != nil {
		return fmt.Errorf("camera orbit: %w", err)
	}
	if pitch != 0 {
		right := linalg.Cross(c.Up, offset)
		tilted, err := linalg.Rotate(offset, -pitch, right)
		if err != nil {
			return fmt.Errorf("camera orbit: %w", err)
		}
		// stop short of the poles so Up never becomes parallel to the view
		if a := tilted.Angle(c.Up); a > minPolarAngle && a < math.Pi-minPolarAngle {
			offset = tilted
		}
	}
	c.Eye = c.Target.Add(offset)

	return nil
}

// Zoom scales the eye-target distance by factor, keeping it within
// (Near, Far).
func (c *Camera) Zoom(factor float64) {
	offset := c.Eye.Sub(c.Target).Scale(factor)
	d := offset.Length()
	if d <= c.Near || d >= c.Far {
		return
	}
	c.Eye = c.Target.Add(offset)
}
