package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Sky geometry constants. The sun travels a vertical circle of SunRadius
// units at a fixed depth offset; the moon mirrors it through the origin.
const (
	SunRadius = 40.0
	SkyDepth  = -20.0
)

// Key sky colors at band endpoints.
var (
	NightColor = mgl32.Vec3{0.05, 0.05, 0.2}
	DawnColor  = mgl32.Vec3{1.0, 0.6, 0.3}
	DayColor   = mgl32.Vec3{0.8, 0.9, 1.0}
	DuskColor  = mgl32.Vec3{0.45, 0.25, 0.45}
)

// Light is the active light source uploaded to the shader each frame.
type Light struct {
	Position mgl32.Vec3
	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3
}

// Warm sun tint and cool moon tint, weighted per channel in ActiveLight.
var (
	sunTint  = mgl32.Vec3{1.0, 0.95, 0.8}
	moonTint = mgl32.Vec3{0.6, 0.7, 1.0}
)

// SunPosition returns the sun's world position for the given hour.
// The sun sits at its lowest point at hour 0 and at zenith at hour 12.
func SunPosition(hour float32) mgl32.Vec3 {
	angle := float64(mgl32.DegToRad(hour/24*360 - 90))
	return mgl32.Vec3{
		SunRadius * float32(math.Cos(angle)),
		SunRadius * float32(math.Sin(angle)),
		SkyDepth,
	}
}

// MoonPosition is the point reflection of the sun through the vertical
// and horizontal axes, at the same depth offset.
func MoonPosition(hour float32) mgl32.Vec3 {
	sun := SunPosition(hour)
	return mgl32.Vec3{-sun.X(), -sun.Y(), sun.Z()}
}

// DayFactor is a normalized 0..1 measure of how "daytime" the lighting is,
// derived from the sun's height.
func DayFactor(hour float32) float32 {
	return mgl32.Clamp(SunPosition(hour).Y()/SunRadius, 0, 1)
}

// dayFactorThreshold switches the active light between sun and moon.
const dayFactorThreshold = 0.1

// ActiveLight returns the sun light while DayFactor exceeds the day
// threshold, and the moon light otherwise.
func ActiveLight(hour float32) Light {
	if DayFactor(hour) > dayFactorThreshold {
		return Light{
			Position: SunPosition(hour),
			Ambient:  sunTint.Mul(0.2),
			Diffuse:  sunTint.Mul(0.8),
			Specular: sunTint.Mul(1.0),
		}
	}
	return Light{
		Position: MoonPosition(hour),
		Ambient:  moonTint.Mul(0.15),
		Diffuse:  moonTint.Mul(0.4),
		Specular: moonTint.Mul(0.3),
	}
}

// SkyColor returns the clear color for the given hour. Six bands with
// smoothstep-eased transitions, continuous across every boundary and
// wrapping at 0/24:
//
//	22-04 flat night, 04-07 night to dawn, 07-09 dawn to day,
//	09-17 flat day, 17-20 day to dusk, 20-22 dusk to night.
func SkyColor(hour float32) mgl32.Vec3 {
	h := float32(math.Mod(float64(hour), 24))
	if h < 0 {
		h += 24
	}

	switch {
	case h >= 4 && h < 7:
		return lerpColor(NightColor, DawnColor, smoothstep((h-4)/3))
	case h >= 7 && h < 9:
		return lerpColor(DawnColor, DayColor, smoothstep((h-7)/2))
	case h >= 9 && h < 17:
		return DayColor
	case h >= 17 && h < 20:
		return lerpColor(DayColor, DuskColor, smoothstep((h-17)/3))
	case h >= 20 && h < 22:
		return lerpColor(DuskColor, NightColor, smoothstep((h-20)/2))
	default: // 22-24 and 0-4
		return NightColor
	}
}

// StarIntensity is the star brightness multiplier. The 2.5 boost and the
// 1.5 ceiling deliberately over-saturate the field for visual punch; the
// renderer only draws stars while DayFactor is below the day threshold.
func StarIntensity(hour float32) float32 {
	base := 1 - mgl32.Clamp((hour-20)/4, 0, 1)
	return mgl32.Clamp(base*2.5, 0, 1.5)
}

// CloudAlpha returns cloud opacity: strongest at local noon, floored at
// 0.3 toward dawn and dusk.
func CloudAlpha(hour float32) float32 {
	return mgl32.Clamp(1-float32(math.Abs(float64(hour-12)))/6, 0.3, 0.8)
}

// smoothstep applies the cubic 3t^2-2t^3 easing to t in [0,1].
func smoothstep(t float32) float32 {
	t = mgl32.Clamp(t, 0, 1)
	return t * t * (3 - 2*t)
}

func lerpColor(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return mgl32.Vec3{
		a.X() + (b.X()-a.X())*t,
		a.Y() + (b.Y()-a.Y())*t,
		a.Z() + (b.Z()-a.Z())*t,
	}
}
