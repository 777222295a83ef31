package debug

import "github.com/Faultbox/roadspline/pkg/math"

// GroundGrid generates line vertices for a square grid on the XZ plane,
// centred on center and snapped to multiples of spacing.
// Returns nil for a non-positive spacing or extent.
func GroundGrid(center math.Vec3, halfExtent, spacing, height float32) []LineVertex {
	if spacing <= 0 || halfExtent <= 0 {
		return nil
	}

	cells := int(halfExtent / spacing)
	if cells < 1 {
		cells = 1
	}
	cx := float32(int(center.X/spacing)) * spacing
	cz := float32(int(center.Z/spacing)) * spacing
	extent := float32(cells) * spacing

	vertices := make([]LineVertex, 0, (2*cells+1)*4)

	// Lines along Z
	for i := -cells; i <= cells; i++ {
		x := cx + float32(i)*spacing
		vertices = line(vertices,
			math.Vec3{X: x, Y: height, Z: cz - extent},
			math.Vec3{X: x, Y: height, Z: cz + extent},
			GridColor)
	}

	// Lines along X
	for i := -cells; i <= cells; i++ {
		z := cz + float32(i)*spacing
		vertices = line(vertices,
			math.Vec3{X: cx - extent, Y: height, Z: z},
			math.Vec3{X: cx + extent, Y: height, Z: z},
			GridColor)
	}

	return vertices
}
