package debug

import "github.com/Faultbox/roadspline/pkg/math"

// BBoxWireframeVertexCount is the number of vertices for a bbox wireframe (12 edges × 2).
const BBoxWireframeVertexCount = 24

// DefaultBBoxPadding is the default padding around a mesh's bounds.
const DefaultBBoxPadding = 0.25

// BBoxWireframe creates line vertices for a wireframe box around lo..hi,
// expanded by padding on all sides. Inverted corners are swapped.
func BBoxWireframe(lo, hi math.Vec3, padding float32) []LineVertex {
	lo, hi = lo.Min(hi), hi.Max(lo)
	pad := math.Vec3{X: padding, Y: padding, Z: padding}
	lo = lo.Sub(pad)
	hi = hi.Add(pad)

	corner := func(x, y, z float32) math.Vec3 { return math.Vec3{X: x, Y: y, Z: z} }
	c := BoundsColor
	v := make([]LineVertex, 0, BBoxWireframeVertexCount)

	// Bottom face
	v = line(v, corner(lo.X, lo.Y, lo.Z), corner(hi.X, lo.Y, lo.Z), c)
	v = line(v, corner(hi.X, lo.Y, lo.Z), corner(hi.X, lo.Y, hi.Z), c)
	v = line(v, corner(hi.X, lo.Y, hi.Z), corner(lo.X, lo.Y, hi.Z), c)
	v = line(v, corner(lo.X, lo.Y, hi.Z), corner(lo.X, lo.Y, lo.Z), c)
	// Top face
	v = line(v, corner(lo.X, hi.Y, lo.Z), corner(hi.X, hi.Y, lo.Z), c)
	v = line(v, corner(hi.X, hi.Y, lo.Z), corner(hi.X, hi.Y, hi.Z), c)
	v = line(v, corner(hi.X, hi.Y, hi.Z), corner(lo.X, hi.Y, hi.Z), c)
	v = line(v, corner(lo.X, hi.Y, hi.Z), corner(lo.X, hi.Y, lo.Z), c)
	// Vertical edges
	v = line(v, corner(lo.X, lo.Y, lo.Z), corner(lo.X, hi.Y, lo.Z), c)
	v = line(v, corner(hi.X, lo.Y, lo.Z), corner(hi.X, hi.Y, lo.Z), c)
	v = line(v, corner(hi.X, lo.Y, hi.Z), corner(hi.X, hi.Y, hi.Z), c)
	v = line(v, corner(lo.X, lo.Y, hi.Z), corner(lo.X, hi.Y, hi.Z), c)

	return v
}
