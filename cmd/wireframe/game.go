// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"image/color"
	"log/slog"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/katalvlaran/lvmath/internal/scene"
	"github.com/katalvlaran/lvmath/linalg"
)

const (
	tickSeconds = 1.0 / 60.0 // ebiten Update runs at 60 TPS
	orbitSpeed  = math.Pi / 2
	zoomStep    = 1.02
)

var (
	background = color.RGBA{0x0D, 0x0D, 0x10, 0xFF}
	cubeColor  = color.RGBA{0xE0, 0xE0, 0xF0, 0xFF}
	axisColors = []color.Color{
		color.RGBA{0xFF, 0x55, 0x55, 0xFF},
		color.RGBA{0x55, 0xFF, 0x55, 0xFF},
		color.RGBA{0x66, 0x66, 0xFF, 0xFF},
	}
)

// Game holds the viewer state.
type Game struct {
	W, H int

	cam    scene.Camera
	cube   scene.Mesh
	axes   scene.Mesh
	model  scene.Transform
	spin   linalg.Vec3d // spin axis
	speed  float64      // radians per second
	paused bool

	cubeSegs []scene.Segment
	axisSegs []scene.Segment

	log *slog.Logger
}

// NewGame builds the scene described by cfg.
func NewGame(cfg config, log *slog.Logger) *Game {
	return &Game{
		W:     cfg.width,
		H:     cfg.height,
		cam:   scene.NewCamera(linalg.NewVec3(3.0, 2.5, 4), linalg.Vec3d{}),
		cube:  scene.Cube(cfg.size),
		axes:  scene.Axes(cfg.size),
		model: scene.Identity(),
		spin:  linalg.NewVec3(0.3, 1, 0.2),
		speed: cfg.speed,
		log:   log,
	}
}

// Update advances the spin and handles input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		g.log.Debug("toggle spin", "paused", g.paused)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.model = scene.Identity()
		g.log.Info("reset model")
	}

	var yaw, pitch float64
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		yaw -= orbitSpeed * tickSeconds
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		yaw += orbitSpeed * tickSeconds
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		pitch -= orbitSpeed * tickSeconds
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		pitch += orbitSpeed * tickSeconds
	}
	if yaw != 0 || pitch != 0 {
		if err := g.cam.Orbit(yaw, pitch); err != nil {
			g.log.Warn("orbit rejected", "err", err)
		}
	}
	if ebiten.IsKeyPressed(ebiten.KeyEqual) {
		g.cam.Zoom(1 / zoomStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyMinus) {
		g.cam.Zoom(zoomStep)
	}

	if !g.paused {
		if err := g.model.Spin(g.spin, g.speed*tickSeconds); err != nil {
			return fmt.Errorf("spin: %w", err)
		}
	}

	cubeSegs, err := segments(g.cube, g.model.Matrix(), g.cam, g.W, g.H)
	if err != nil {
		return err
	}
	axisSegs, err := segments(g.axes, linalg.Identity[linalg.D4, float64](), g.cam, g.W, g.H)
	if err != nil {
		return err
	}
	g.cubeSegs, g.axisSegs = cubeSegs, axisSegs

	return nil
}

func segments(m scene.Mesh, model linalg.Mat4d, cam scene.Camera, w, h int) ([]scene.Segment, error) {
	pts, err := scene.Project(m, model, cam, w, h)
	if err != nil {
		return nil, fmt.Errorf("project: %w", err)
	}

	return scene.Segments(m, pts), nil
}

// Draw strokes the projected edges.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	for i, s := range g.axisSegs {
		vector.StrokeLine(screen, float32(s.X0), float32(s.Y0), float32(s.X1), float32(s.Y1), 1, axisColors[i%len(axisColors)], true)
	}
	for _, s := range g.cubeSegs {
		vector.StrokeLine(screen, float32(s.X0), float32(s.Y0), float32(s.X1), float32(s.Y1), 1.5, cubeColor, true)
	}

	msg := fmt.Sprintf("TPS %.0f  edges %d\narrows: orbit  +/-: zoom  space: pause  r: reset\n%v",
		ebiten.ActualTPS(), len(g.cubeSegs), g.model.Rotation)
	ebitenutil.DebugPrint(screen, msg)
}

// Layout keeps a fixed logical resolution.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.W, g.H
}
