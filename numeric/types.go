// SPDX-License-Identifier: MIT

// Package numeric: element-type constraints.
// This file contains ONLY constraint interfaces; helpers live in scalar.go.
package numeric

import "golang.org/x/exp/constraints"

// Signed is satisfied by every signed integer type (and named types over them).
type Signed interface {
	constraints.Signed
}

// Unsigned is satisfied by every unsigned integer type.
type Unsigned interface {
	constraints.Unsigned
}

// Integer is satisfied by signed and unsigned integer types.
type Integer interface {
	constraints.Integer
}

// Float is satisfied by float32 and float64.
type Float interface {
	constraints.Float
}

// SignedNumber is satisfied by the types that can represent -1.
type SignedNumber interface {
	constraints.Signed | constraints.Float
}

// Number is the element constraint of every linalg container.
type Number interface {
	constraints.Integer | constraints.Float
}
