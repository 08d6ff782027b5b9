package scene

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Patryk0329/DayNightSimulation/internal/sim"
)

// Marker sizes for the sky bodies.
const (
	starSize = 0.15
	sunSize  = 3.0
	moonSize = 3.5 // slightly larger than the sun marker
)

// drawSkyBodies draws stars, the sun marker and the moon marker. All
// three render with the depth test disabled so they are never occluded
// by scene geometry.
func (s *Scene) drawSkyBodies(stars []sim.Star, hour float32) {
	night := sim.DayFactor(hour) < 0.1

	gl.Disable(gl.DEPTH_TEST)
	defer gl.Enable(gl.DEPTH_TEST)

	if night {
		s.drawStars(stars, hour)
	}

	if sun := sim.SunPosition(hour); sun.Y() > 0 {
		s.setFlags(false, true, 1.0)
		s.setMaterial(sim.SunMaterial)
		s.setModel(sun, mgl32.Vec3{sunSize, sunSize, sunSize})
		s.cube.Draw()
	}

	if moon := sim.MoonPosition(hour); night && moon.Y() > 0 {
		s.setFlags(false, true, 1.0)
		s.setMaterial(sim.MoonMaterial)
		s.setModel(moon, mgl32.Vec3{moonSize, moonSize, moonSize})
		s.cube.Draw()
	}
}

// drawStars draws the star field with the time-driven intensity boost
// applied to the star color.
func (s *Scene) drawStars(stars []sim.Star, hour float32) {
	intensity := sim.StarIntensity(hour)
	base := sim.StarMaterial

	s.setFlags(false, true, 1.0)
	gl.Uniform3f(s.locMatDiffuse,
		base.Diffuse.X()*intensity,
		base.Diffuse.Y()*intensity,
		base.Diffuse.Z()*intensity,
	)

	scale := mgl32.Vec3{starSize, starSize, starSize}
	for i := range stars {
		s.setModel(stars[i].Position, scale)
		s.cube.Draw()
	}
}
