package sim

import (
	"fmt"
	"math"
)

// Clock tracks the simulated time of day in hours, wrapping at 24.
type Clock struct {
	Hour float32 // always in [0,24)
}

// Advance moves the clock by dh hours (negative to reverse), wrapping circularly.
func (c *Clock) Advance(dh float32) {
	h := math.Mod(float64(c.Hour+dh), 24)
	if h < 0 {
		h += 24
	}
	c.Hour = float32(h)
}

// String formats the clock as HH:MM.
func (c *Clock) String() string {
	h := int(c.Hour)
	m := int((c.Hour - float32(h)) * 60)
	return fmt.Sprintf("%02d:%02d", h, m)
}
