package game

import (
	"fmt"

	"github.com/Patryk0329/DayNightSimulation/internal/sim"
)

// printLegend writes the one-time startup banner: controls, camera
// bounds and generated object counts.
func printLegend(s *sim.State) {
	limit := s.Camera.Bounds.HalfSize - s.Camera.Bounds.Border

	fmt.Println("Controls:")
	fmt.Println("  W/A/S/D   move       Q/E  up/down")
	fmt.Println("  arrows    look       P/O  advance/reverse time")
	fmt.Println("  F12       screenshot ESC  quit")
	fmt.Printf("Camera bounds: |X|,|Z| <= %.1f, height %.1f..%.1f\n",
		limit, s.Camera.Bounds.MinHeight, s.Camera.Bounds.MaxHeight)
	fmt.Printf("Generated %d stars, %d clouds\n", len(s.Stars), len(s.Clouds))
}

// printStatus rewrites the in-place status line with the simulation
// clock and camera coordinates.
func printStatus(s *sim.State) {
	p := s.Camera.Position
	fmt.Printf("\r[%s] camera (%6.1f, %5.1f, %6.1f)   ", s.Clock.String(), p.X(), p.Y(), p.Z())
}
