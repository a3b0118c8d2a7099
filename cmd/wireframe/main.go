// SPDX-License-Identifier: MIT

// Command wireframe renders a spinning wireframe cube through the
// internal/scene pipeline.
//
// Usage:
//
//	wireframe [-width 960] [-height 640] [-size 1.5] [-speed 0.8] [-log-level info]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

type config struct {
	width, height int
	size          float64
	speed         float64
	logLevel      string
}

func parseFlags(args []string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("wireframe", flag.ContinueOnError)
	fs.IntVar(&cfg.width, "width", 960, "window width in pixels")
	fs.IntVar(&cfg.height, "height", 640, "window height in pixels")
	fs.Float64Var(&cfg.size, "size", 1.5, "cube edge length")
	fs.Float64Var(&cfg.speed, "speed", 0.8, "spin speed in radians per second")
	fs.StringVar(&cfg.logLevel, "log-level", "info", "debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.width <= 0 || cfg.height <= 0 {
		return cfg, fmt.Errorf("window size %dx%d must be positive", cfg.width, cfg.height)
	}
	if cfg.size <= 0 {
		return cfg, fmt.Errorf("cube size %g must be positive", cfg.size)
	}

	return cfg, nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log, err := newLogger(cfg.logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	game := NewGame(cfg, log)
	ebiten.SetWindowSize(game.W, game.H)
	ebiten.SetWindowTitle("lvmath wireframe")
	log.Info("starting viewer", "width", cfg.width, "height", cfg.height, "size", cfg.size, "speed", cfg.speed)
	if err := ebiten.RunGame(game); err != nil {
		log.Error("viewer stopped", "err", err)
		os.Exit(1)
	}
}
