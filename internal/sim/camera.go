package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera movement and rotation rates.
const (
	MoveSpeed  = 4.0  // units per second
	YawSpeed   = 80.0 // degrees per second
	PitchSpeed = 50.0 // degrees per second
)

// Bounds is the axis-aligned box the camera is clamped into each frame.
type Bounds struct {
	HalfSize  float32 // terrain extent on X/Z
	Border    float32 // margin kept between camera and terrain edge
	MinHeight float32
	MaxHeight float32
}

// Camera is a free-fly camera driven by held keys. Angles are in degrees.
type Camera struct {
	Position mgl32.Vec3
	Yaw      float32
	Pitch    float32 // clamped to [-89,89]
	Bounds   Bounds
}

var worldUp = mgl32.Vec3{0, 1, 0}

// NewCamera creates a camera at the given position looking along -Z.
func NewCamera(position mgl32.Vec3, bounds Bounds) Camera {
	c := Camera{
		Position: position,
		Yaw:      -90,
		Pitch:    0,
		Bounds:   bounds,
	}
	c.Position = c.clampPosition(c.Position)
	return c
}

// Update applies one frame of held-key input: rotation first, then
// movement along the derived axes, then the boundary clamp.
func (c *Camera) Update(in Intent, dt float32) {
	if in.LookLeft {
		c.Yaw -= YawSpeed * dt
	}
	if in.LookRight {
		c.Yaw += YawSpeed * dt
	}
	if in.LookUp {
		c.Pitch += PitchSpeed * dt
	}
	if in.LookDown {
		c.Pitch -= PitchSpeed * dt
	}
	c.Pitch = mgl32.Clamp(c.Pitch, -89, 89)

	front := c.Front()
	right := front.Cross(worldUp).Normalize()
	velocity := float32(MoveSpeed) * dt

	if in.Forward {
		c.Position = c.Position.Add(front.Mul(velocity))
	}
	if in.Back {
		c.Position = c.Position.Sub(front.Mul(velocity))
	}
	if in.Left {
		c.Position = c.Position.Sub(right.Mul(velocity))
	}
	if in.Right {
		c.Position = c.Position.Add(right.Mul(velocity))
	}
	if in.Up {
		c.Position = c.Position.Add(worldUp.Mul(velocity))
	}
	if in.Down {
		c.Position = c.Position.Sub(worldUp.Mul(velocity))
	}

	c.Position = c.clampPosition(c.Position)
}

// Front derives the unit forward vector from yaw and pitch.
func (c *Camera) Front() mgl32.Vec3 {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))

	front := mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}
	return front.Normalize()
}

// ViewMatrix returns the look-at view matrix for the current pose.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front()), worldUp)
}

// clampPosition clamps each axis independently into the bounds box.
func (c *Camera) clampPosition(p mgl32.Vec3) mgl32.Vec3 {
	limit := c.Bounds.HalfSize - c.Bounds.Border
	return mgl32.Vec3{
		mgl32.Clamp(p.X(), -limit, limit),
		mgl32.Clamp(p.Y(), c.Bounds.MinHeight, c.Bounds.MaxHeight),
		mgl32.Clamp(p.Z(), -limit, limit),
	}
}
