// Package lighting provides the directional light used to shade the road.
package lighting

import (
	gomath "math"

	"github.com/Faultbox/roadspline/pkg/math"
)

// Sun is a directional light given by compass angles in degrees.
type Sun struct {
	Azimuth   float32 // rotation around Y, 0 faces +Z
	Elevation float32 // angle above the horizon, 0..90

	Ambient [3]float32
	Diffuse [3]float32
}

// DefaultSun returns a high afternoon sun.
func DefaultSun() Sun {
	return Sun{
		Azimuth:   135,
		Elevation: 50,
		Ambient:   [3]float32{0.35, 0.35, 0.4},
		Diffuse:   [3]float32{0.75, 0.72, 0.65},
	}
}

// Direction returns the normalized vector pointing towards the sun.
func (s Sun) Direction() math.Vec3 {
	return SunDirection(s.Azimuth, s.Elevation)
}

// SunDirection converts azimuth and elevation in degrees to a unit vector
// pointing towards the light.
func SunDirection(azimuth, elevation float32) math.Vec3 {
	az := float64(azimuth) * gomath.Pi / 180.0
	el := float64(elevation) * gomath.Pi / 180.0

	return math.Vec3{
		X: float32(gomath.Cos(el) * gomath.Sin(az)),
		Y: float32(gomath.Sin(el)),
		Z: float32(gomath.Cos(el) * gomath.Cos(az)),
	}
}
