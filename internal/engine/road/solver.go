package road

import (
	gomath "math"

	"github.com/Faultbox/roadspline/pkg/bezier"
	"github.com/Faultbox/roadspline/pkg/math"
)

// DistanceStep sets handle length as a fraction of the chord: each handle
// reaches 1/DistanceStep of the way to the neighbour.
const DistanceStep = 3

// segmentEpsilon is a float32 rounding tolerance, not part of the density
// formula: it keeps chord sums that land a hair under an integer from
// flooring down.
const segmentEpsilon = 1e-4

// MaxSegments caps the segment count of one side of an edge.
const MaxSegments = 4096

// resolve solves both edges touching cp and clears its dirty flag.
func (p *Path) resolve(cp *ControlPoint) {
	if prev, ok := p.points[cp.Previous]; ok {
		p.solveEdge(prev, cp)
	}
	if next, ok := p.points[cp.Next]; ok {
		p.solveEdge(cp, next)
	}
	cp.dirty = false
}

// resolveDirty resolves every point edited since its last solve.
func (p *Path) resolveDirty() {
	for _, cp := range p.ordered() {
		if cp.dirty {
			p.resolve(cp)
		}
	}
}

// solveEdge derives the handles and segment counts for the edge a -> b.
func (p *Path) solveEdge(a, b *ControlPoint) {
	handle := a.Position.Distance(b.Position) / DistanceStep
	a.ForwardTangent = a.Position.Add(a.Orientation.Rotate(math.Forward).Scale(handle))
	b.BackwardTangent = b.Position.Add(b.Orientation.Rotate(math.Back).Scale(handle))

	halfLength := bezier.ArcLength(a.Position, a.ForwardTangent, b.BackwardTangent, b.Position, bezier.DefaultArcLengthSamples) / 2
	edge := math.QuatLookRotation(b.Position.Sub(a.Position), math.Up)

	a.SegmentsToNext = segmentCount(halfLength, p.settings.Smoothness, rotationFactor(a.Orientation, edge))
	b.SegmentsToPrevious = segmentCount(halfLength, p.settings.Smoothness, rotationFactor(b.Orientation, edge))
}

// rotationFactor maps the agreement between a point's orientation and the
// edge direction to [0, 1]; 1 means the point already faces along the edge.
// q and -q are the same rotation, so the sign of the dot product is dropped.
func rotationFactor(orientation, edge math.Quat) float32 {
	d := orientation.Dot(edge)
	if d < 0 {
		d = -d
	}
	f := (d + 1) / 2
	return max(0, min(1, f))
}

// segmentCount returns max(1, floor(length / smoothness * factor)), capped
// at MaxSegments.
func segmentCount(length, smoothness, factor float32) int {
	n := gomath.Floor(float64(length)/float64(smoothness)*float64(factor) + segmentEpsilon)
	switch {
	case gomath.IsNaN(n) || n < 1:
		return 1
	case n > MaxSegments:
		return MaxSegments
	}
	return int(n)
}

func edgeCurve(a, b *ControlPoint) bezier.Cubic {
	return bezier.Cubic{
		P0: a.Position,
		P1: a.ForwardTangent,
		P2: b.BackwardTangent,
		P3: b.Position,
	}
}
