package road

import (
	"fmt"
	"math"
)

// Settings configure mesh density and extrusion.
type Settings struct {
	// Width is the distance from the centre line to each edge, so the
	// ribbon is 2*Width across.
	Width float32

	// UVScaling multiplies the running length to produce the V coordinate.
	UVScaling float32

	// Smoothness divides the estimated curve length when picking segment
	// counts. Larger values give fewer segments.
	Smoothness float32
}

// MinSmoothness is the smallest accepted Smoothness.
const MinSmoothness = 1e-3

// DefaultSettings returns unit width, UV scale and smoothness.
func DefaultSettings() Settings {
	return Settings{
		Width:      1,
		UVScaling:  1,
		Smoothness: 1,
	}
}

// Validate reports settings that would break mesh generation.
func (s Settings) Validate() error {
	for _, f := range []struct {
		name string
		v    float32
	}{
		{"width", s.Width},
		{"uv_scaling", s.UVScaling},
		{"smoothness", s.Smoothness},
	} {
		if math.IsNaN(float64(f.v)) || math.IsInf(float64(f.v), 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidSettings, f.name)
		}
	}
	if s.Width < 0 {
		return fmt.Errorf("%w: width %v is negative", ErrInvalidSettings, s.Width)
	}
	if s.UVScaling < 0 {
		return fmt.Errorf("%w: uv_scaling %v is negative", ErrInvalidSettings, s.UVScaling)
	}
	if s.Smoothness < MinSmoothness {
		return fmt.Errorf("%w: smoothness %v is below %v", ErrInvalidSettings, s.Smoothness, MinSmoothness)
	}
	return nil
}
