package picking

import (
	gomath "math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/Faultbox/roadspline/internal/engine/road"
	"github.com/Faultbox/roadspline/pkg/math"
)

var approx = cmpopts.EquateApprox(0, 1e-3)

func down(x, z float32) Ray {
	return Ray{Origin: math.Vec3{X: x, Y: 10, Z: z}, Direction: math.Down}
}

func TestScreenToRayCentre(t *testing.T) {
	eye := math.Vec3{X: 0, Y: 10, Z: 10}
	view := math.LookAt(eye, math.Vec3{}, math.Up)
	proj := math.Perspective(float32(gomath.Pi/4), 1, 0.1, 1000)
	inv := proj.Mul(view).Inverse()

	r := ScreenToRay(400, 400, 800, 800, inv)

	want := math.Vec3{}.Sub(eye).Normalize()
	if d := cmp.Diff(want, r.Direction, approx); d != "" {
		t.Errorf("direction: %s", d)
	}
	p, ok := r.IntersectPlaneY(0)
	if !ok {
		t.Fatal("centre ray should hit the ground")
	}
	if d := cmp.Diff(math.Vec3{}, p, cmpopts.EquateApprox(0, 1e-2)); d != "" {
		t.Errorf("ground hit: %s", d)
	}
}

func TestIntersectPlaneY(t *testing.T) {
	tests := []struct {
		name string
		ray  Ray
		want math.Vec3
		ok   bool
	}{
		{"straight down", down(3, 4), math.Vec3{X: 3, Y: 2, Z: 4}, true},
		{"parallel", Ray{Direction: math.Right}, math.Vec3{}, false},
		{"behind", Ray{Origin: math.Vec3{Y: 1}, Direction: math.Up}, math.Vec3{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.ray.IntersectPlaneY(2)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if d := cmp.Diff(tt.want, got, approx); d != "" {
				t.Error(d)
			}
		})
	}
}

func TestIntersectAABB(t *testing.T) {
	lo, hi := math.Vec3{X: -1, Y: -1, Z: -1}, math.Vec3{X: 1, Y: 1, Z: 1}

	if tt, ok := down(0, 0).IntersectAABB(lo, hi); !ok || tt != 9 {
		t.Errorf("outside hit = %v, %v; want 9, true", tt, ok)
	}
	if _, ok := down(2, 0).IntersectAABB(lo, hi); ok {
		t.Error("ray beside the box should miss")
	}
	inside := Ray{Direction: math.Up}
	if tt, ok := inside.IntersectAABB(lo, hi); !ok || tt != 1 {
		t.Errorf("inside hit = %v, %v; want 1, true", tt, ok)
	}
}

func TestIntersectTriangle(t *testing.T) {
	a := math.Vec3{X: 0, Z: 0}
	b := math.Vec3{X: 2, Z: 0}
	c := math.Vec3{X: 0, Z: 2}

	if tt, ok := down(0.5, 0.5).IntersectTriangle(a, b, c); !ok || tt != 10 {
		t.Errorf("hit = %v, %v; want 10, true", tt, ok)
	}
	// Either winding counts.
	if _, ok := down(0.5, 0.5).IntersectTriangle(a, c, b); !ok {
		t.Error("reversed winding should still hit")
	}
	if _, ok := down(1.5, 1.5).IntersectTriangle(a, b, c); ok {
		t.Error("point past the hypotenuse should miss")
	}
	if _, ok := (Ray{Origin: math.Vec3{Y: 1}, Direction: math.Right}).IntersectTriangle(a, b, c); ok {
		t.Error("ray parallel to the triangle should miss")
	}
}

func TestPickMesh(t *testing.T) {
	p, err := road.New(road.DefaultSettings())
	if err != nil {
		t.Fatal(err)
	}
	tail := p.AddControlPoint(math.Vec3{X: 10})
	mesh := p.BuildMesh()

	hit, ok := PickMesh(down(5, 0.25), mesh, math.Vec3{})
	if !ok {
		t.Fatal("expected a hit on the road")
	}
	if hit.From != p.Head() || hit.To != tail {
		t.Errorf("edge = %d -> %d, want %d -> %d", hit.From, hit.To, p.Head(), tail)
	}
	if d := cmp.Diff(math.Vec3{X: 5, Z: 0.25}, hit.Point, approx); d != "" {
		t.Errorf("point: %s", d)
	}
	if hit.Triangle < 0 || hit.Triangle >= mesh.TriangleCount() {
		t.Errorf("triangle %d out of range", hit.Triangle)
	}

	if _, ok := PickMesh(down(5, 3), mesh, math.Vec3{}); ok {
		t.Error("ray beside the road should miss")
	}
	if _, ok := PickMesh(down(5, 0), nil, math.Vec3{}); ok {
		t.Error("nil mesh should miss")
	}
}

func TestPickMeshOrigin(t *testing.T) {
	p, err := road.New(road.DefaultSettings())
	if err != nil {
		t.Fatal(err)
	}
	p.AddControlPoint(math.Vec3{X: 10})
	mesh := p.BuildMesh()
	origin := math.Vec3{X: 100, Y: 5, Z: 100}

	hit, ok := PickMesh(down(105, 100), mesh, origin)
	if !ok {
		t.Fatal("expected a hit on the shifted road")
	}
	if d := cmp.Diff(math.Vec3{X: 105, Y: 5, Z: 100}, hit.Point, approx); d != "" {
		t.Errorf("point: %s", d)
	}
	if _, ok := PickMesh(down(5, 0), mesh, origin); ok {
		t.Error("the untranslated position should miss")
	}
}
