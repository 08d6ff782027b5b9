// Package sim holds the demo's simulation model: the time-of-day clock,
// the sky/lighting formulas, the free-fly camera, the fixed scene catalog
// and the procedurally generated stars and clouds. It performs no
// rendering and has no OpenGL dependency, so every formula is unit
// testable in isolation.
package sim

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
)

// Intent is the per-frame snapshot of held keys, decoupled from the
// windowing layer.
type Intent struct {
	Forward, Back bool
	Left, Right   bool
	Up, Down      bool

	LookLeft, LookRight bool
	LookUp, LookDown    bool

	TimeForward, TimeBack bool
}

// Options configures a new simulation state.
type Options struct {
	TerrainHalfSize float32
	CameraBorder    float32
	MinHeight       float32
	MaxHeight       float32

	StarCount  int
	CloudCount int

	StartHour float32
	TimeScale float32 // hours per real second while a clock key is held
	Seed      int64
}

// State owns all mutable simulation data. It is created once, mutated by
// Update on the loop goroutine, and read by the renderer.
type State struct {
	Clock   Clock
	Camera  Camera
	Stars   []Star
	Clouds  []Cloud
	Catalog []Object

	timeScale float32
	rng       *rand.Rand
}

// New builds the simulation state: fixed catalog placements plus seeded
// star and cloud generation.
func New(opts Options) *State {
	rng := rand.New(rand.NewSource(opts.Seed))

	bounds := Bounds{
		HalfSize:  opts.TerrainHalfSize,
		Border:    opts.CameraBorder,
		MinHeight: opts.MinHeight,
		MaxHeight: opts.MaxHeight,
	}

	return &State{
		Clock:     Clock{Hour: opts.StartHour},
		Camera:    NewCamera(mgl32.Vec3{0, 3, 20}, bounds),
		Stars:     GenerateStars(rng, opts.StarCount),
		Clouds:    GenerateClouds(rng, opts.CloudCount),
		Catalog:   BuildCatalog(),
		timeScale: opts.TimeScale,
		rng:       rng,
	}
}

// Update advances one frame: camera pose, clock direction keys, cloud drift.
func (s *State) Update(in Intent, dt float32) {
	s.Camera.Update(in, dt)

	if in.TimeForward {
		s.Clock.Advance(s.timeScale * dt)
	}
	if in.TimeBack {
		s.Clock.Advance(-s.timeScale * dt)
	}

	UpdateClouds(s.Clouds, s.rng, dt)
}
