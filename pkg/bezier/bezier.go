// Package bezier evaluates cubic Bézier segments in 3D.
//
// A segment is described by its start point P0, two handles P1 and P2, and
// its end point P3. The parameter t runs from 0 at P0 to 1 at P3.
package bezier

import "github.com/Faultbox/roadspline/pkg/math"

// DefaultArcLengthSamples is the chord count used for length estimates when
// callers have no better figure.
const DefaultArcLengthSamples = 100

// CubicPosition returns the point at t on the cubic segment.
func CubicPosition(p0, p1, p2, p3 math.Vec3, t float32) math.Vec3 {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return p0.Scale(a).Add(p1.Scale(b)).Add(p2.Scale(c)).Add(p3.Scale(d))
}

// CubicDerivative returns the first derivative at t. The result is not
// normalized.
func CubicDerivative(p0, p1, p2, p3 math.Vec3, t float32) math.Vec3 {
	mt := 1 - t
	d01 := p1.Sub(p0).Scale(3 * mt * mt)
	d12 := p2.Sub(p1).Scale(6 * mt * t)
	d23 := p3.Sub(p2).Scale(3 * t * t)
	return d01.Add(d12).Add(d23)
}

// ArcLength estimates the segment length by summing the chords between
// sampleCount+1 evenly spaced parameter values. Counts below 1 are treated
// as 1, which measures the straight P0-P3 chord.
func ArcLength(p0, p1, p2, p3 math.Vec3, sampleCount int) float32 {
	if sampleCount < 1 {
		sampleCount = 1
	}

	var length float32
	prev := p0
	step := 1 / float32(sampleCount)
	for i := 1; i <= sampleCount; i++ {
		t := float32(i) * step
		if i == sampleCount {
			t = 1
		}
		p := CubicPosition(p0, p1, p2, p3, t)
		length += p.Distance(prev)
		prev = p
	}
	return length
}

// Cubic is a cubic Bézier segment.
type Cubic struct {
	P0, P1, P2, P3 math.Vec3
}

// Eval returns the point at t.
func (c Cubic) Eval(t float32) math.Vec3 {
	return CubicPosition(c.P0, c.P1, c.P2, c.P3, t)
}

// Derivative returns the unnormalized tangent at t.
func (c Cubic) Derivative(t float32) math.Vec3 {
	return CubicDerivative(c.P0, c.P1, c.P2, c.P3, t)
}

// Length estimates the arc length with sampleCount chords.
func (c Cubic) Length(sampleCount int) float32 {
	return ArcLength(c.P0, c.P1, c.P2, c.P3, sampleCount)
}
