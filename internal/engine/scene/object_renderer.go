package scene

import (
	"github.com/Patryk0329/DayNightSimulation/internal/sim"
)

// drawObjects draws the fixed decorations, opaque and lit, one cube per
// template part with the part's category material.
func (s *Scene) drawObjects(catalog []sim.Object) {
	s.setFlags(false, false, 1.0)

	for i := range catalog {
		for _, part := range catalog[i].WorldParts() {
			s.setMaterial(part.Material)
			s.setModel(part.Position, part.Scale)
			s.cube.Draw()
		}
	}
}
