package math

import (
	"math"
	"testing"
)

func vecNear(a, b Vec3, eps float32) bool {
	return a.Sub(b).Length() <= eps
}

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Errorf("Identity quaternion should be (0,0,0,1), got (%v,%v,%v,%v)", q.X, q.Y, q.Z, q.W)
	}
}

func TestQuatNormalize(t *testing.T) {
	q := Quat{X: 1, Y: 2, Z: 3, W: 4}
	n := q.Normalize()

	length := float32(math.Sqrt(float64(n.X*n.X + n.Y*n.Y + n.Z*n.Z + n.W*n.W)))
	if math.Abs(float64(length-1.0)) > 0.0001 {
		t.Errorf("Normalized quaternion length should be 1, got %v", length)
	}
}

func TestQuatSlerp(t *testing.T) {
	q1 := QuatIdentity()
	q2 := QuatFromAxisAngle(Up, float32(math.Pi/2))

	result0 := q1.Slerp(q2, 0)
	if math.Abs(float64(result0.W-q1.W)) > 0.001 {
		t.Errorf("Slerp at t=0 should equal q1")
	}

	result1 := q1.Slerp(q2, 1)
	if math.Abs(float64(result1.W-q2.W)) > 0.001 {
		t.Errorf("Slerp at t=1 should equal q2")
	}

	// For a 90 degree rotation, halfway is 45 degrees
	result5 := q1.Slerp(q2, 0.5)
	expectedW := float32(math.Cos(float64(math.Pi / 8)))
	if math.Abs(float64(result5.W-expectedW)) > 0.01 {
		t.Errorf("Slerp at t=0.5: expected W ~%v, got %v", expectedW, result5.W)
	}
}

func TestQuatRotate(t *testing.T) {
	q := QuatFromAxisAngle(Up, float32(math.Pi/2))

	if got := q.Rotate(Forward); !vecNear(got, Right, 1e-5) {
		t.Errorf("yaw 90 should map forward to right, got %v", got)
	}
	if got := q.Rotate(Right); !vecNear(got, Back, 1e-5) {
		t.Errorf("yaw 90 should map right to back, got %v", got)
	}
	if got := q.Rotate(Up); !vecNear(got, Up, 1e-5) {
		t.Errorf("yaw should leave up unchanged, got %v", got)
	}
}

func TestQuatLookRotation(t *testing.T) {
	tests := []struct {
		name    string
		forward Vec3
	}{
		{"forward", Forward},
		{"right", Right},
		{"back", Back},
		{"left", Left},
		{"diagonal", Vec3{1, 0.5, -2}},
		{"straight up", Up},
		{"straight down", Down},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := QuatLookRotation(tt.forward, Up)
			got := q.Rotate(Forward)
			want := tt.forward.Normalize()
			if !vecNear(got, want, 1e-4) {
				t.Errorf("LookRotation(%v) maps forward to %v, want %v", tt.forward, got, want)
			}
		})
	}
}

func TestQuatLookRotationKeepsUp(t *testing.T) {
	q := QuatLookRotation(Right, Up)
	if got := q.Rotate(Up); !vecNear(got, Up, 1e-5) {
		t.Errorf("horizontal look rotation should keep up, got %v", got)
	}
	if got := q.Rotate(Right); !vecNear(got, Back, 1e-5) {
		t.Errorf("looking along +X should turn the right side to -Z, got %v", got)
	}
}

func TestQuatLookRotationZero(t *testing.T) {
	if got := QuatLookRotation(Vec3{}, Up); got != QuatIdentity() {
		t.Errorf("zero forward should give identity, got %v", got)
	}
}

func TestQuatEulerRoundTrip(t *testing.T) {
	pitch, yaw, roll := float32(0.3), float32(-1.2), float32(0.7)
	q := QuatFromEuler(pitch, yaw, roll)

	p, y, r := q.EulerAngles()
	if math.Abs(float64(p-pitch)) > 1e-4 || math.Abs(float64(y-yaw)) > 1e-4 || math.Abs(float64(r-roll)) > 1e-4 {
		t.Errorf("EulerAngles() = (%v, %v, %v), want (%v, %v, %v)", p, y, r, pitch, yaw, roll)
	}
}

func TestQuatRollOfLookRotation(t *testing.T) {
	q := QuatLookRotation(Vec3{3, 0, 4}, Up)
	if r := q.Roll(); math.Abs(float64(r)) > 1e-5 {
		t.Errorf("level look rotation should have no roll, got %v", r)
	}

	banked := q.Mul(QuatFromAxisAngle(Forward, 0.25))
	if r := banked.Roll(); math.Abs(float64(r-0.25)) > 1e-4 {
		t.Errorf("Roll() = %v, want 0.25", r)
	}
}

func TestQuatFromAxisAngle(t *testing.T) {
	q := QuatFromAxisAngle(Up, float32(math.Pi/2))

	expectedW := float32(math.Cos(math.Pi / 4))
	expectedY := float32(math.Sin(math.Pi / 4))

	if math.Abs(float64(q.W-expectedW)) > 0.001 {
		t.Errorf("QuatFromAxisAngle W: expected %v, got %v", expectedW, q.W)
	}
	if math.Abs(float64(q.Y-expectedY)) > 0.001 {
		t.Errorf("QuatFromAxisAngle Y: expected %v, got %v", expectedY, q.Y)
	}
}
