package road

import (
	"github.com/Faultbox/roadspline/pkg/math"
)

// resample walks ordered and evaluates every edge at its segment count.
//
// The head is emitted first, then steps+1 samples per edge including both
// ends. The start of each edge therefore repeats the previous sample; the
// mesh builder relies on that count for its index arithmetic.
func resample(ordered []*ControlPoint, points map[PointID]*ControlPoint) []Sample {
	if len(ordered) == 0 {
		return nil
	}

	head := ordered[0]
	total := 1
	for _, a := range ordered[:len(ordered)-1] {
		total += a.SegmentsToNext + points[a.Next].SegmentsToPrevious + 1
	}

	out := make([]Sample, 0, total)
	out = append(out, Sample{
		Position:    head.Position,
		Orientation: head.Orientation,
		From:        head.ID,
		To:          head.ID,
	})
	if len(ordered) < 2 {
		return out
	}

	for _, a := range ordered[:len(ordered)-1] {
		b := points[a.Next]
		out = appendEdge(out, a, b)
	}
	return out
}

func appendEdge(out []Sample, a, b *ControlPoint) []Sample {
	curve := edgeCurve(a, b)
	steps := a.SegmentsToNext + b.SegmentsToPrevious

	rollA := math.QuatFromAxisAngle(math.Forward, a.Orientation.Roll())
	rollB := math.QuatFromAxisAngle(math.Forward, b.Orientation.Roll())

	fallback := b.Position.Sub(a.Position)
	if fallback.Length() == 0 {
		fallback = a.Orientation.Rotate(math.Forward)
	}

	for i := 0; i <= steps; i++ {
		t := float32(i) / float32(steps)

		tangent := curve.Derivative(t).Normalize()
		if tangent == (math.Vec3{}) {
			tangent = fallback
		}
		look := math.QuatLookRotation(tangent, math.Up)

		out = append(out, Sample{
			Position:    curve.Eval(t),
			Orientation: look.Mul(rollA.Slerp(rollB, t)),
			From:        a.ID,
			To:          b.ID,
		})
	}
	return out
}
