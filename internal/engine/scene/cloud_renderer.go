package scene

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Patryk0329/DayNightSimulation/internal/sim"
)

// drawClouds draws the drifting cloud boxes, blended and unlit. Alpha
// follows the time of day and each cloud's density dims its color.
func (s *Scene) drawClouds(clouds []sim.Cloud, hour float32) {
	alpha := sim.CloudAlpha(hour)
	base := sim.CloudMaterial

	s.setFlags(false, true, alpha)

	for i := range clouds {
		c := &clouds[i]

		gl.Uniform3f(s.locMatDiffuse,
			base.Diffuse.X()*c.Density,
			base.Diffuse.Y()*c.Density,
			base.Diffuse.Z()*c.Density,
		)
		gl.Uniform1f(s.locAlpha, alpha*c.Density)

		s.setModel(c.Position, c.Scale)
		s.cube.Draw()
	}
}
