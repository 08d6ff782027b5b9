// Package game implements the main demo loop.
package game

import (
	"fmt"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Patryk0329/DayNightSimulation/internal/config"
	"github.com/Patryk0329/DayNightSimulation/internal/engine/debug"
	"github.com/Patryk0329/DayNightSimulation/internal/engine/input"
	"github.com/Patryk0329/DayNightSimulation/internal/engine/scene"
	"github.com/Patryk0329/DayNightSimulation/internal/engine/window"
	"github.com/Patryk0329/DayNightSimulation/internal/logger"
	"github.com/Patryk0329/DayNightSimulation/internal/sim"
)

// Game owns the window, renderer, input handler and simulation state.
type Game struct {
	config  *config.Config
	running bool

	window      *window.Window
	scene       *scene.Scene
	input       *input.Input
	state       *sim.State
	screenshots *debug.ScreenshotCapture
}

// New creates the demo: window and GL context first, then the scene and
// the simulation state.
func New(cfg *config.Config) (*Game, error) {
	g := &Game{config: cfg}

	var err error
	g.window, err = window.New(window.Config{
		Title:      "Day/Night Terrain",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	g.scene, err = scene.New(scene.Config{
		Width:           cfg.Graphics.Width,
		Height:          cfg.Graphics.Height,
		TerrainHalfSize: cfg.World.TerrainHalfSize,
		GrassTexture:    cfg.World.GrassTexture,
	})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}

	g.input = input.New()

	g.state = sim.New(sim.Options{
		TerrainHalfSize: cfg.World.TerrainHalfSize,
		CameraBorder:    cfg.World.CameraBorder,
		MinHeight:       cfg.World.MinHeight,
		MaxHeight:       cfg.World.MaxHeight,
		StarCount:       cfg.World.StarCount,
		CloudCount:      cfg.World.CloudCount,
		StartHour:       cfg.Simulation.StartHour,
		TimeScale:       cfg.Simulation.TimeScale,
		Seed:            cfg.Simulation.Seed,
	})

	g.screenshots = debug.NewScreenshotCapture("screenshots", "daynight")

	logger.Info("demo initialized",
		zap.Int("stars", len(g.state.Stars)),
		zap.Int("clouds", len(g.state.Clouds)),
		zap.Int64("seed", cfg.Simulation.Seed),
	)

	return g, nil
}

// Run starts the main loop: input, update, render, swap.
func (g *Game) Run() error {
	g.running = true

	printLegend(g.state)

	var frameBudget time.Duration
	if g.config.Graphics.FPSLimit > 0 {
		frameBudget = time.Second / time.Duration(g.config.Graphics.FPSLimit)
	}

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	for g.running {
		frameStart := time.Now()
		dt := float32(frameStart.Sub(lastTime).Seconds())
		lastTime = frameStart

		if g.input.Update() {
			break
		}

		for _, event := range g.input.Events() {
			switch event.Type {
			case input.EventWindowResize:
				g.scene.Resize(event.Width, event.Height)
			case input.EventKeyDown:
				switch event.Key {
				case sdl.SCANCODE_ESCAPE:
					g.running = false
				case sdl.SCANCODE_F12:
					g.captureScreenshot()
				}
			}
		}

		g.state.Update(g.input.Intent(), dt)

		g.scene.Render(g.state)
		printStatus(g.state)

		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.String("clock", g.state.Clock.String()),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}

		if frameBudget > 0 {
			if elapsed := time.Since(frameStart); elapsed < frameBudget {
				time.Sleep(frameBudget - elapsed)
			}
		}
	}

	fmt.Println()
	return nil
}

// captureScreenshot reads the framebuffer and writes it as a PNG.
func (g *Game) captureScreenshot() {
	width, height := g.window.Size()
	pixels := make([]byte, width*height*4)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	path, err := g.screenshots.CaptureFromPixels(pixels, width, height)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// Close cleans up all resources.
func (g *Game) Close() {
	if g.scene != nil {
		g.scene.Destroy()
	}
	if g.window != nil {
		g.window.Close()
	}
}
