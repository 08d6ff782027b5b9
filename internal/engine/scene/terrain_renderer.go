package scene

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Patryk0329/DayNightSimulation/internal/sim"
)

// drawTerrain draws the textured ground quad, opaque and lit.
func (s *Scene) drawTerrain() {
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, s.grassTex)
	gl.Uniform1i(s.locTexture, 0)

	s.setFlags(true, false, 1.0)
	s.setMaterial(sim.TerrainMaterial)
	s.setModel(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 1})

	s.terrain.Draw()
}
