package sim

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
)

// Sampling volumes for the generated star field and cloud band.
const (
	StarExtent = 80.0 // stars span +-extent on X/Z
	StarMinY   = 25.0
	StarMaxY   = 45.0

	CloudExtent = 70.0 // clouds drift within +-extent on X, wrap past it
	CloudMinY   = 12.0
	CloudMaxY   = 18.0
)

// Star is a fixed point in the night sky.
type Star struct {
	Position mgl32.Vec3
}

// Cloud drifts along +X and wraps back to the far edge.
type Cloud struct {
	Position mgl32.Vec3
	Scale    mgl32.Vec3
	Speed    float32
	Density  float32 // in [0.5,1.0], scales cloud color and alpha
}

// GenerateStars samples n star positions uniformly within the star volume.
func GenerateStars(rng *rand.Rand, n int) []Star {
	stars := make([]Star, n)
	for i := range stars {
		stars[i].Position = mgl32.Vec3{
			uniform(rng, -StarExtent, StarExtent),
			uniform(rng, StarMinY, StarMaxY),
			uniform(rng, -StarExtent, StarExtent),
		}
	}
	return stars
}

// GenerateClouds samples n clouds with randomized placement, size, drift
// speed and density.
func GenerateClouds(rng *rand.Rand, n int) []Cloud {
	clouds := make([]Cloud, n)
	for i := range clouds {
		clouds[i] = Cloud{
			Position: mgl32.Vec3{
				uniform(rng, -CloudExtent, CloudExtent),
				uniform(rng, CloudMinY, CloudMaxY),
				uniform(rng, -CloudExtent, CloudExtent),
			},
			Scale: mgl32.Vec3{
				uniform(rng, 4, 10),
				uniform(rng, 1, 3),
				uniform(rng, 3, 7),
			},
			Speed:   uniform(rng, 0.2, 1.0),
			Density: uniform(rng, 0.5, 1.0),
		}
	}
	return clouds
}

// UpdateClouds advances every cloud along X. A cloud leaving the visible
// band re-enters at the far edge with a fresh Z, keeping the field drifting
// without unbounded growth.
func UpdateClouds(clouds []Cloud, rng *rand.Rand, dt float32) {
	for i := range clouds {
		c := &clouds[i]
		c.Position[0] += c.Speed * dt
		if c.Position[0] > CloudExtent {
			c.Position[0] = -CloudExtent
			c.Position[2] = uniform(rng, -CloudExtent, CloudExtent)
		}
	}
}

func uniform(rng *rand.Rand, min, max float32) float32 {
	return min + rng.Float32()*(max-min)
}
