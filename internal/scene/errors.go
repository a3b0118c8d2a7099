// SPDX-License-Identifier: MIT

package scene

import "errors"

var (
	// ErrInvalidViewport indicates a non-positive screen width or height.
	ErrInvalidViewport = errors.New("scene: viewport must be > 0")

	// ErrEdgeOutOfRange indicates an edge referencing a missing vertex.
	ErrEdgeOutOfRange = errors.New("scene: edge vertex out of range")
)
