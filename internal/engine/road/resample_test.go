package road

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/roadspline/pkg/math"
)

func TestResampleSinglePoint(t *testing.T) {
	p := newPath(t, DefaultSettings())
	samples := p.Resample()

	if len(samples) != 1 {
		t.Fatalf("len(samples) = %d, want 1", len(samples))
	}
	head, _ := p.Point(p.Head())
	diff(t, head.Position, samples[0].Position)
	diff(t, head.Orientation, samples[0].Orientation)
}

func TestResampleCounts(t *testing.T) {
	p := curvyPath(t)
	samples := p.Resample()

	want := 1
	for _, s := range p.Segments() {
		want += s.Steps + 1
	}
	if len(samples) != want {
		t.Errorf("len(samples) = %d, want %d", len(samples), want)
	}
}

func TestResampleEndpointsAndJoints(t *testing.T) {
	p := straightPath(t, 3)
	pts := p.Points()
	samples := p.Resample()

	diff(t, pts[0].Position, samples[0].Position)
	diff(t, pts[2].Position, samples[len(samples)-1].Position, approx)

	// Each edge starts by repeating the previous sample
	first := pts[0].SegmentsToNext + pts[1].SegmentsToPrevious
	diff(t, samples[0].Position, samples[1].Position, approx)
	joint := 1 + first
	diff(t, pts[1].Position, samples[joint].Position, approx)
	diff(t, samples[joint].Position, samples[joint+1].Position, approx)

	if samples[joint].To != pts[1].ID || samples[joint+1].From != pts[1].ID {
		t.Errorf("joint samples carry edges %d->%d and %d->%d", samples[joint].From, samples[joint].To, samples[joint+1].From, samples[joint+1].To)
	}
}

func TestResampleStraightOrientation(t *testing.T) {
	p := straightPath(t, 2)
	for i, s := range p.Resample() {
		diff(t, math.Right, s.Orientation.Rotate(math.Forward), approx)
		if !near(s.Position.Y, 0, 1e-4) || !near(s.Position.Z, 0, 1e-4) {
			t.Errorf("sample %d left the straight line: %v", i, s.Position)
		}
	}
}

func TestResampleInterpolatesRoll(t *testing.T) {
	p := straightPath(t, 2)
	tail, _ := p.Point(p.Tail())
	const roll = 0.6
	if err := p.SetOrientation(tail.ID, tail.Orientation.Mul(math.QuatFromAxisAngle(math.Forward, roll))); err != nil {
		t.Fatal(err)
	}

	samples := p.Resample()
	steps := len(samples) - 2
	for i := 0; i <= steps; i++ {
		want := roll * float32(i) / float32(steps)
		if got := samples[1+i].Orientation.Roll(); !near(got, want, 1e-3) {
			t.Errorf("sample %d roll = %v, want %v", i, got, want)
		}
	}
}

func TestResampleRollTakesShortArc(t *testing.T) {
	p := straightPath(t, 2)
	const ten = 10 * gomath.Pi / 180

	// 350 degrees at the head, 10 at the tail: the blend must pass through 0, not 180
	for _, end := range []struct {
		id   PointID
		roll float32
	}{{p.Head(), -ten}, {p.Tail(), ten}} {
		cp, _ := p.Point(end.id)
		if err := p.SetOrientation(end.id, cp.Orientation.Mul(math.QuatFromAxisAngle(math.Forward, end.roll))); err != nil {
			t.Fatal(err)
		}
	}

	samples := p.Resample()
	for i, s := range samples {
		if r := s.Orientation.Roll(); r < -ten-1e-3 || r > ten+1e-3 {
			t.Errorf("sample %d roll = %v, want within [-%v, %v]", i, r, ten, ten)
		}
	}
	mid := samples[1+(len(samples)-2)/2]
	if r := mid.Orientation.Roll(); !near(r, 0, 1e-3) {
		t.Errorf("middle roll = %v, want 0", r)
	}
}

func TestResampleMonotonicAlongStraightPath(t *testing.T) {
	p := straightPath(t, 4)
	samples := p.Resample()
	for i := 1; i < len(samples); i++ {
		if samples[i].Position.X+1e-4 < samples[i-1].Position.X {
			t.Errorf("sample %d moved backwards: %v after %v", i, samples[i].Position.X, samples[i-1].Position.X)
		}
	}
}
