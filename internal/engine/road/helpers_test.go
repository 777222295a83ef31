package road

import (
	"errors"
	gomath "math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/Faultbox/roadspline/pkg/math"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var (
	approx      = cmpopts.EquateApprox(0, 1e-4)
	ignoreDirty = cmpopts.IgnoreUnexported(ControlPoint{})
)

func near(a, b, eps float32) bool {
	return gomath.Abs(float64(a-b)) <= float64(eps)
}

func newPath(t *testing.T, s Settings, opts ...Option) *Path {
	t.Helper()
	p, err := New(s, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return p
}

// straightPath returns a path along +X with points every 10 units.
func straightPath(t *testing.T, n int) *Path {
	t.Helper()
	p := newPath(t, DefaultSettings())
	for i := 1; i < n; i++ {
		p.AddControlPoint(math.Vec3{X: float32(10 * i)})
	}
	return p
}

// curvyPath has turns, height changes and a banked point.
func curvyPath(t *testing.T) *Path {
	t.Helper()
	p := newPath(t, Settings{Width: 2, UVScaling: 0.5, Smoothness: 0.75})
	p.AddControlPoint(math.Vec3{X: 10, Y: 1, Z: 4})
	mid := p.AddControlPoint(math.Vec3{X: 14, Y: 2, Z: 15})
	p.AddControlPoint(math.Vec3{X: 4, Y: 0, Z: 22})
	p.AddControlPoint(math.Vec3{X: -6, Y: -1, Z: 18})

	cp, _ := p.Point(mid)
	if err := p.SetOrientation(mid, cp.Orientation.Mul(math.QuatFromAxisAngle(math.Forward, 0.4))); err != nil {
		t.Fatalf("SetOrientation() error = %v", err)
	}
	return p
}

// checkLinks verifies that every link points at a live neighbour that
// links back, and that the chain from head reaches every point once.
func checkLinks(t *testing.T, p *Path) {
	t.Helper()

	head := p.points[p.head]
	if head == nil || head.Previous != NoPoint {
		t.Fatalf("head %d is missing or has a previous link", p.head)
	}
	tail := p.points[p.tail]
	if tail == nil || tail.Next != NoPoint {
		t.Fatalf("tail %d is missing or has a next link", p.tail)
	}

	seen := 0
	for id := p.head; id != NoPoint; {
		cp, ok := p.points[id]
		if !ok {
			t.Fatalf("dangling link to %d", id)
		}
		if cp.Next != NoPoint {
			next, ok := p.points[cp.Next]
			if !ok {
				t.Fatalf("point %d links to removed point %d", cp.ID, cp.Next)
			}
			if next.Previous != cp.ID {
				t.Fatalf("point %d -> %d is not linked back", cp.ID, next.ID)
			}
		}
		seen++
		if seen > len(p.points) {
			t.Fatal("link cycle")
		}
		id = cp.Next
	}
	if seen != len(p.points) {
		t.Fatalf("reached %d points from head, path has %d", seen, len(p.points))
	}
}

func wantErr(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Errorf("error = %v, want %v", err, target)
	}
}
