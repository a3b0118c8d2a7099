// SPDX-License-Identifier: MIT
package linalg_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvmath/linalg"
	"github.com/stretchr/testify/require"
)

// TestDefaultOptions_Documented verifies that NewOptions() equals the documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := linalg.NewOptions()
	require.Equal(t, linalg.DefaultEpsilon, o.Epsilon())
	require.Equal(t, linalg.DefaultThreshold, o.Threshold())
	require.Equal(t, linalg.DefaultSlerpFallback, o.SlerpFallback())
}

// TestOptions_OrderAndNil ensures last writer wins and nil setters are skipped.
func TestOptions_OrderAndNil(t *testing.T) {
	o := linalg.NewOptions(linalg.WithEpsilon(1e-3), nil, linalg.WithEpsilon(1e-9), linalg.WithThreshold(-0.25), linalg.WithSlerpFallback())
	require.Equal(t, 1e-9, o.Epsilon())
	require.Equal(t, -0.25, o.Threshold())
	require.True(t, o.SlerpFallback())
}

// TestOptions_Panics pins the stable panic messages of invalid settings.
func TestOptions_Panics(t *testing.T) {
	const epsMsg = "linalg: WithEpsilon: eps must be finite, non-negative"
	require.PanicsWithValue(t, epsMsg, func() { linalg.WithEpsilon(-1) })
	require.PanicsWithValue(t, epsMsg, func() { linalg.WithEpsilon(math.NaN()) })
	require.PanicsWithValue(t, epsMsg, func() { linalg.WithEpsilon(math.Inf(1)) })
	require.PanicsWithValue(t, "linalg: WithThreshold: threshold must be finite", func() { linalg.WithThreshold(math.Inf(-1)) })
	require.NotPanics(t, func() { linalg.WithEpsilon(0) })
}
