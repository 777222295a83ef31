package road

import (
	"testing"

	"github.com/Faultbox/roadspline/pkg/math"
)

func TestBuildMeshStraightScenario(t *testing.T) {
	p := straightPath(t, 2)
	samples := p.Resample()
	mesh := p.BuildMesh()

	// 1 seed sample + (5 + 5) segments + 1
	if len(samples) != 12 {
		t.Fatalf("len(samples) = %d, want 12", len(samples))
	}
	if len(mesh.Vertices) != 24 {
		t.Errorf("len(Vertices) = %d, want 24", len(mesh.Vertices))
	}
	if len(mesh.Triangles) != 66 {
		t.Errorf("len(Triangles) = %d, want 66", len(mesh.Triangles))
	}

	for i := 0; i < len(mesh.Vertices); i += 2 {
		left, right := mesh.Vertices[i], mesh.Vertices[i+1]
		center := samples[i/2].Position

		if !near(left.X, center.X, 1e-4) || !near(right.X, center.X, 1e-4) {
			t.Errorf("pair %d: X = %v/%v, want %v", i/2, left.X, right.X, center.X)
		}
		if !near(left.Z, 1, 1e-4) || !near(right.Z, -1, 1e-4) {
			t.Errorf("pair %d: lateral offsets %v/%v, want +1/-1", i/2, left.Z, right.Z)
		}
		if !near(left.Y, 0, 1e-4) || !near(right.Y, 0, 1e-4) {
			t.Errorf("pair %d: Y = %v/%v, want 0", i/2, left.Y, right.Y)
		}
	}

	lo, hi := mesh.Bounds()
	diff(t, math.Vec3{X: 0, Y: 0, Z: -1}, lo, approx)
	diff(t, math.Vec3{X: 10, Y: 0, Z: 1}, hi, approx)
}

func TestBuildMeshSinglePoint(t *testing.T) {
	mesh := newPath(t, DefaultSettings()).BuildMesh()

	if len(mesh.Triangles) != 0 {
		t.Errorf("len(Triangles) = %d, want 0", len(mesh.Triangles))
	}
	if len(mesh.Vertices) > 2 {
		t.Errorf("len(Vertices) = %d, want at most 2", len(mesh.Vertices))
	}
	if len(mesh.Spans) != 0 {
		t.Errorf("len(Spans) = %d, want 0", len(mesh.Spans))
	}
}

func TestBuildMeshEmpty(t *testing.T) {
	mesh := BuildMesh(nil, DefaultSettings())
	if mesh.VertexCount() != 0 || mesh.TriangleCount() != 0 {
		t.Errorf("empty input produced %d vertices, %d triangles", mesh.VertexCount(), mesh.TriangleCount())
	}
	lo, hi := mesh.Bounds()
	if lo != (math.Vec3{}) || hi != (math.Vec3{}) {
		t.Errorf("empty bounds = %v..%v, want zero", lo, hi)
	}
}

func TestBuildMeshInvariants(t *testing.T) {
	paths := map[string]*Path{
		"straight 2": straightPath(t, 2),
		"straight 5": straightPath(t, 5),
		"curvy":      curvyPath(t),
	}

	for name, p := range paths {
		t.Run(name, func(t *testing.T) {
			samples := p.Resample()
			mesh := BuildMesh(samples, p.Settings())
			n := len(samples)

			if len(mesh.Vertices) != 2*n {
				t.Errorf("len(Vertices) = %d, want %d", len(mesh.Vertices), 2*n)
			}
			if len(mesh.Normals) != 2*n || len(mesh.UVs) != 2*n {
				t.Errorf("normals/uvs = %d/%d, want %d", len(mesh.Normals), len(mesh.UVs), 2*n)
			}
			if len(mesh.Triangles) != 6*(n-1) {
				t.Errorf("len(Triangles) = %d, want %d", len(mesh.Triangles), 6*(n-1))
			}

			for i, nrm := range mesh.Normals {
				if nrm != math.Up {
					t.Errorf("normal %d = %v, want up", i, nrm)
				}
			}

			for i, uv := range mesh.UVs {
				if want := float32(i % 2); uv.X != want {
					t.Errorf("uv %d: U = %v, want %v", i, uv.X, want)
				}
				if i >= 2 && uv.Y < mesh.UVs[i-2].Y {
					t.Errorf("uv %d: V decreased from %v to %v", i, mesh.UVs[i-2].Y, uv.Y)
				}
			}

			for i, idx := range mesh.Triangles {
				if int(idx) >= len(mesh.Vertices) {
					t.Fatalf("index %d = %d out of range", i, idx)
				}
			}

			covered := 0
			for _, span := range mesh.Spans {
				if span.FirstTriangle != covered {
					t.Errorf("span %+v starts at %d, want %d", span, span.FirstTriangle, covered)
				}
				covered += span.TriangleCount
			}
			if covered != mesh.TriangleCount() {
				t.Errorf("spans cover %d triangles, mesh has %d", covered, mesh.TriangleCount())
			}
		})
	}
}

func TestBuildMeshQuadIndices(t *testing.T) {
	mesh := straightPath(t, 2).BuildMesh()
	diff(t, []uint32{0, 2, 1, 2, 3, 1}, mesh.Triangles[:6])
	diff(t, []uint32{2, 4, 3, 4, 5, 3}, mesh.Triangles[6:12])
}

func TestBuildMeshWidth(t *testing.T) {
	p := straightPath(t, 2)
	if err := p.SetSettings(Settings{Width: 3, UVScaling: 1, Smoothness: 1}); err != nil {
		t.Fatal(err)
	}
	mesh := p.BuildMesh()
	for i := 0; i < len(mesh.Vertices); i += 2 {
		// Width is measured from the centre, so the ribbon is twice as wide
		if d := mesh.Vertices[i].Distance(mesh.Vertices[i+1]); !near(d, 6, 1e-4) {
			t.Errorf("pair %d is %v wide, want 6", i/2, d)
		}
	}
}

func TestBuildMeshUVScaling(t *testing.T) {
	p := straightPath(t, 2)
	if err := p.SetSettings(Settings{Width: 1, UVScaling: 0.25, Smoothness: 1}); err != nil {
		t.Fatal(err)
	}
	mesh := p.BuildMesh()

	if v := mesh.UVs[0].Y; v != 0 {
		t.Errorf("first V = %v, want 0", v)
	}
	if v := mesh.UVs[len(mesh.UVs)-1].Y; !near(v, 2.5, 1e-3) {
		t.Errorf("last V = %v, want 2.5", v)
	}
}

func TestBuildMeshRollAffectsPositionsOnly(t *testing.T) {
	p := straightPath(t, 2)
	const roll = 0.5
	for _, cp := range p.Points() {
		if err := p.SetOrientation(cp.ID, cp.Orientation.Mul(math.QuatFromAxisAngle(math.Forward, roll))); err != nil {
			t.Fatal(err)
		}
	}
	mesh := p.BuildMesh()

	for i := 0; i < len(mesh.Vertices); i += 2 {
		left, right := mesh.Vertices[i], mesh.Vertices[i+1]
		if left.Y >= 0 || right.Y <= 0 {
			t.Errorf("pair %d is not banked: left.Y=%v right.Y=%v", i/2, left.Y, right.Y)
		}
		if !near(left.Y, -right.Y, 1e-4) {
			t.Errorf("pair %d banks unevenly: %v vs %v", i/2, left.Y, right.Y)
		}
	}
	for i, nrm := range mesh.Normals {
		if nrm != math.Up {
			t.Errorf("normal %d = %v, want up", i, nrm)
		}
	}
}

func TestEdgeAt(t *testing.T) {
	p := straightPath(t, 3)
	pts := p.Points()
	mesh := p.BuildMesh()

	from, to, ok := mesh.EdgeAt(0)
	if !ok || from != pts[0].ID || to != pts[1].ID {
		t.Errorf("EdgeAt(0) = %d, %d, %v; want %d, %d", from, to, ok, pts[0].ID, pts[1].ID)
	}

	from, to, ok = mesh.EdgeAt(mesh.TriangleCount() - 1)
	if !ok || from != pts[1].ID || to != pts[2].ID {
		t.Errorf("EdgeAt(last) = %d, %d, %v; want %d, %d", from, to, ok, pts[1].ID, pts[2].ID)
	}

	if _, _, ok := mesh.EdgeAt(mesh.TriangleCount()); ok {
		t.Error("EdgeAt past the end should fail")
	}

	// A picked triangle leads straight to an insert
	if _, err := p.InsertControlPoint(from, to, math.Vec3{X: 15, Z: 1}); err != nil {
		t.Errorf("InsertControlPoint from EdgeAt: %v", err)
	}
}

func TestInterleaved(t *testing.T) {
	mesh := straightPath(t, 2).BuildMesh()
	data := mesh.Interleaved()

	if len(data) != len(mesh.Vertices)*FloatsPerVertex {
		t.Fatalf("len(Interleaved()) = %d, want %d", len(data), len(mesh.Vertices)*FloatsPerVertex)
	}
	v, n, uv := mesh.Vertices[3], mesh.Normals[3], mesh.UVs[3]
	diff(t, []float32{v.X, v.Y, v.Z, n.X, n.Y, n.Z, uv.X, uv.Y}, data[3*FloatsPerVertex:4*FloatsPerVertex])
}
