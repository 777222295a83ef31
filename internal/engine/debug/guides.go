package debug

import (
	"github.com/Faultbox/roadspline/internal/engine/road"
	"github.com/Faultbox/roadspline/pkg/math"
)

// DefaultGuideSteps is the polyline resolution of each guide curve.
const DefaultGuideSteps = 24

// AxisLength is the length of the orientation gizmo drawn at each point.
const AxisLength = 1.5

// CurveLines traces each segment's Bézier curve as a polyline of steps
// lines. Steps below 1 are treated as 1.
func CurveLines(segments []road.Segment, steps int) []LineVertex {
	if steps < 1 {
		steps = 1
	}
	out := make([]LineVertex, 0, len(segments)*steps*2)
	for _, seg := range segments {
		prev := seg.Curve.Eval(0)
		for i := 1; i <= steps; i++ {
			next := seg.Curve.Eval(float32(i) / float32(steps))
			out = line(out, prev, next, CurveColor)
			prev = next
		}
	}
	return out
}

// HandleLines draws each point's Bézier handles. End points only have the
// handle on their linked side.
func HandleLines(points []road.ControlPoint) []LineVertex {
	out := make([]LineVertex, 0, len(points)*4)
	for _, cp := range points {
		if cp.Next != road.NoPoint {
			out = line(out, cp.Position, cp.ForwardTangent, HandleColor)
		}
		if cp.Previous != road.NoPoint {
			out = line(out, cp.Position, cp.BackwardTangent, HandleColor)
		}
	}
	return out
}

// AxisLines draws a forward and up gizmo at each point. The selected point
// is drawn in SelectedColor; pass road.NoPoint to highlight nothing.
func AxisLines(points []road.ControlPoint, selected road.PointID) []LineVertex {
	out := make([]LineVertex, 0, len(points)*4)
	for _, cp := range points {
		fwd, up := ForwardColor, UpColor
		if cp.ID == selected {
			fwd, up = SelectedColor, SelectedColor
		}
		out = line(out, cp.Position, cp.Position.Add(cp.Orientation.Rotate(math.Forward).Scale(AxisLength)), fwd)
		out = line(out, cp.Position, cp.Position.Add(cp.Orientation.Rotate(math.Up).Scale(AxisLength/2)), up)
	}
	return out
}

// Guides combines curve, handle and axis lines for a path.
func Guides(p *road.Path, steps int, selected road.PointID) []LineVertex {
	points := p.Points()
	out := CurveLines(p.Segments(), steps)
	out = append(out, HandleLines(points)...)
	return append(out, AxisLines(points, selected)...)
}
