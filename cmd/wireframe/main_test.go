// SPDX-License-Identifier: MIT
package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	require.Equal(t, 960, cfg.width)
	require.Equal(t, "info", cfg.logLevel)

	cfg, err = parseFlags([]string{"-width", "320", "-speed", "2"})
	require.NoError(t, err)
	require.Equal(t, 320, cfg.width)
	require.Equal(t, 2.0, cfg.speed)

	_, err = parseFlags([]string{"-height", "0"})
	require.Error(t, err)
	_, err = parseFlags([]string{"-size", "-1"})
	require.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	for _, lvl := range []string{"", "debug", "INFO", "warn", "error"} {
		l, err := newLogger(lvl)
		require.NoError(t, err, lvl)
		require.NotNil(t, l)
	}
	_, err := newLogger("loud")
	require.Error(t, err)
}

func TestSegmentsFromGame(t *testing.T) {
	log, err := newLogger("error")
	require.NoError(t, err)
	g := NewGame(config{width: 320, height: 240, size: 1, speed: 1}, log)

	segs, err := segments(g.cube, g.model.Matrix(), g.cam, g.W, g.H)
	require.NoError(t, err)
	require.Len(t, segs, 12)

	w, h := g.Layout(1, 1)
	require.Equal(t, 320, w)
	require.Equal(t, 240, h)
}
