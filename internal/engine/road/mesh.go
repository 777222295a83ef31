package road

import (
	"github.com/Faultbox/roadspline/pkg/math"
)

// FloatsPerVertex is the interleaved layout produced by Interleaved:
// position (3), normal (3), uv (2).
const FloatsPerVertex = 8

// BuildMesh extrudes samples into a ribbon.
//
// Every sample contributes a left and a right vertex, each Width from the
// centre line. Normals are always up, whatever the roll. V grows with the
// distance walked along the samples so the texture never stretches where
// tessellation density changes.
func BuildMesh(samples []Sample, s Settings) *MeshData {
	n := len(samples)
	m := &MeshData{
		Vertices: make([]math.Vec3, 0, 2*n),
		Normals:  make([]math.Vec3, 0, 2*n),
		UVs:      make([]math.Vec2, 0, 2*n),
	}
	if n > 1 {
		m.Triangles = make([]uint32, 0, 6*(n-1))
	}

	var distance float32
	var cursor uint32
	for i, sample := range samples {
		if i > 0 {
			distance += sample.Position.Distance(samples[i-1].Position)
		}

		left := sample.Orientation.Rotate(math.Left).Scale(s.Width)
		right := sample.Orientation.Rotate(math.Right).Scale(s.Width)
		m.Vertices = append(m.Vertices, sample.Position.Add(left), sample.Position.Add(right))
		m.Normals = append(m.Normals, math.Up, math.Up)

		v := distance * s.UVScaling
		m.UVs = append(m.UVs, math.Vec2{X: 0, Y: v}, math.Vec2{X: 1, Y: v})

		if i > 0 {
			m.Triangles = append(m.Triangles,
				cursor-2, cursor, cursor-1,
				cursor, cursor+1, cursor-1,
			)
			m.addSpan(sample.From, sample.To)
		}
		cursor += 2
	}
	return m
}

// addSpan extends the current span by one quad, starting a new span when
// the edge changes.
func (m *MeshData) addSpan(from, to PointID) {
	first := m.TriangleCount() - 2
	if k := len(m.Spans) - 1; k >= 0 && m.Spans[k].From == from && m.Spans[k].To == to {
		m.Spans[k].TriangleCount += 2
		return
	}
	m.Spans = append(m.Spans, Span{From: from, To: to, FirstTriangle: first, TriangleCount: 2})
}

// VertexCount returns the number of vertices.
func (m *MeshData) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of triangles.
func (m *MeshData) TriangleCount() int {
	return len(m.Triangles) / 3
}

// EdgeAt returns the edge that produced the given triangle, for example one
// hit by a viewport ray. The result can be passed to InsertControlPoint.
func (m *MeshData) EdgeAt(triangle int) (from, to PointID, ok bool) {
	for _, span := range m.Spans {
		if triangle >= span.FirstTriangle && triangle < span.FirstTriangle+span.TriangleCount {
			return span.From, span.To, true
		}
	}
	return NoPoint, NoPoint, false
}

// Bounds returns the axis-aligned box around all vertices. An empty mesh
// has zero bounds.
func (m *MeshData) Bounds() (lo, hi math.Vec3) {
	if len(m.Vertices) == 0 {
		return lo, hi
	}
	lo, hi = m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		lo = lo.Min(v)
		hi = hi.Max(v)
	}
	return lo, hi
}

// Interleaved packs the vertex attributes into a single float slice with
// FloatsPerVertex floats per vertex.
func (m *MeshData) Interleaved() []float32 {
	out := make([]float32, 0, len(m.Vertices)*FloatsPerVertex)
	for i, v := range m.Vertices {
		nrm := m.Normals[i]
		uv := m.UVs[i]
		out = append(out, v.X, v.Y, v.Z, nrm.X, nrm.Y, nrm.Z, uv.X, uv.Y)
	}
	return out
}
