// Package road builds ribbon meshes (roads, rivers) from a sparse sequence of
// oriented control points.
//
// The pipeline runs in four stages: the tangent solver derives Bézier
// handles and tessellation counts for every edge, the resampler walks the
// edges and emits a dense sequence of samples, and the mesh builder extrudes
// those samples into a strip with continuous UVs.
package road

import (
	"github.com/Faultbox/roadspline/pkg/bezier"
	"github.com/Faultbox/roadspline/pkg/math"
)

// PointID is a stable handle to a control point. IDs are never reused
// within a Path.
type PointID uint64

// NoPoint marks a missing neighbour at an open end of the path.
const NoPoint PointID = 0

// ControlPoint is a user-placed anchor of the path.
//
// Position and Orientation are authored. The tangent and segment fields are
// derived from the point and its neighbours and are only valid after the
// point has been resolved.
type ControlPoint struct {
	ID          PointID
	Position    math.Vec3 // local to the path origin
	Orientation math.Quat // forward/right/up basis; roll banks the ribbon

	ForwardTangent  math.Vec3 // handle toward Next
	BackwardTangent math.Vec3 // handle toward Previous

	SegmentsToNext     int
	SegmentsToPrevious int

	Previous PointID
	Next     PointID

	dirty bool
}

// Sample is one resampled point along the path. Samples only live for the
// duration of a mesh build.
type Sample struct {
	Position    math.Vec3
	Orientation math.Quat

	// From and To identify the edge the sample was taken on. The seed
	// sample at the head of the path has From == To.
	From, To PointID
}

// Segment is the Bézier curve between two linked control points.
type Segment struct {
	From, To PointID
	Curve    bezier.Cubic
	Steps    int // samples taken on this edge minus one
}

// Span is the range of triangles produced by one edge.
type Span struct {
	From, To      PointID
	FirstTriangle int
	TriangleCount int
}

// MeshData holds ribbon buffers ready for GPU upload. The caller owns the
// slices; the builder keeps no reference after returning.
type MeshData struct {
	Vertices  []math.Vec3 // left/right pairs, one pair per sample
	Normals   []math.Vec3
	UVs       []math.Vec2
	Triangles []uint32 // six indices per quad joining consecutive samples
	Spans     []Span
}
