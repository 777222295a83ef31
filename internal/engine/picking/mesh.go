package picking

import (
	"github.com/Faultbox/roadspline/internal/engine/road"
	"github.com/Faultbox/roadspline/pkg/math"
)

// Hit is the nearest triangle of a road mesh under a ray.
type Hit struct {
	Triangle int
	Distance float32
	Point    math.Vec3 // world space

	// From and To name the edge that produced the triangle.
	From, To road.PointID
}

// PickMesh finds the nearest triangle of mesh hit by r. origin is the
// world position of the mesh's local frame.
func PickMesh(r Ray, mesh *road.MeshData, origin math.Vec3) (Hit, bool) {
	if mesh == nil || len(mesh.Triangles) == 0 {
		return Hit{}, false
	}

	// Work in the mesh's local frame.
	local := Ray{Origin: r.Origin.Sub(origin), Direction: r.Direction}

	lo, hi := mesh.Bounds()
	if _, ok := local.IntersectAABB(lo, hi); !ok {
		return Hit{}, false
	}

	best := Hit{Triangle: -1}
	for i := 0; i+2 < len(mesh.Triangles); i += 3 {
		t, ok := local.IntersectTriangle(
			mesh.Vertices[mesh.Triangles[i]],
			mesh.Vertices[mesh.Triangles[i+1]],
			mesh.Vertices[mesh.Triangles[i+2]],
		)
		if ok && (best.Triangle < 0 || t < best.Distance) {
			best.Triangle = i / 3
			best.Distance = t
		}
	}
	if best.Triangle < 0 {
		return Hit{}, false
	}

	best.Point = r.At(best.Distance)
	best.From, best.To, _ = mesh.EdgeAt(best.Triangle)
	return best, true
}
