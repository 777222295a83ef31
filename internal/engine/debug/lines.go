// Package debug builds overlay geometry and previews for inspecting a road.
package debug

import "github.com/Faultbox/roadspline/pkg/math"

// LineVertex is one end of a coloured line segment.
type LineVertex struct {
	X, Y, Z float32 // Position
	R, G, B float32 // Color
}

// FloatsPerLineVertex is the number of floats Flatten writes per vertex.
const FloatsPerLineVertex = 6

// Color is an RGB triple in [0, 1].
type Color [3]float32

// Overlay colours.
var (
	GridColor     = Color{0.35, 0.35, 0.35}
	CurveColor    = Color{1.0, 0.85, 0.2}
	HandleColor   = Color{0.3, 0.7, 1.0}
	ForwardColor  = Color{0.2, 0.9, 0.3}
	UpColor       = Color{0.9, 0.3, 0.3}
	SelectedColor = Color{1.0, 1.0, 1.0}
	BoundsColor   = Color{0.8, 0.4, 0.9}
)

func vertex(p math.Vec3, c Color) LineVertex {
	return LineVertex{p.X, p.Y, p.Z, c[0], c[1], c[2]}
}

func line(out []LineVertex, a, b math.Vec3, c Color) []LineVertex {
	return append(out, vertex(a, c), vertex(b, c))
}

// Flatten packs vertices as [x, y, z, r, g, b] for a GL_LINES draw.
func Flatten(vertices []LineVertex) []float32 {
	out := make([]float32, 0, len(vertices)*FloatsPerLineVertex)
	for _, v := range vertices {
		out = append(out, v.X, v.Y, v.Z, v.R, v.G, v.B)
	}
	return out
}
