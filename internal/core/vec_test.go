package core

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestNormalize(t *testing.T) {
	v := Normalize(V3(3, 0, 4))
	if !near(v.Len(), 1) {
		t.Errorf("Normalize length = %f, expected 1", v.Len())
	}
	if !near(v.X(), 0.6) || !near(v.Z(), 0.8) {
		t.Errorf("Normalize(3,0,4) = %v, expected (0.6, 0, 0.8)", v)
	}
}

func TestNormalizeDegenerate(t *testing.T) {
	tests := []Vec3{
		V3(0, 0, 0),
		V3(1e-7, 0, 0),
		V3(0, -5e-7, 5e-7),
	}

	for _, in := range tests {
		got := Normalize(in)
		if got != (Vec3{}) {
			t.Errorf("Normalize(%v) = %v, expected zero vector", in, got)
		}
		for i := range 3 {
			if math.IsNaN(got[i]) {
				t.Fatalf("Normalize(%v) produced NaN", in)
			}
		}
	}
}

func TestForward(t *testing.T) {
	tests := []struct {
		yaw  float64
		x, z float64
	}{
		{0, 0, -1},
		{90, 1, 0},
		{180, 0, 1},
		{-90, -1, 0},
		{360, 0, -1},
	}

	for _, tc := range tests {
		f := Forward(tc.yaw)
		if !near(f.X(), tc.x) || !near(f.Z(), tc.z) || f.Y() != 0 {
			t.Errorf("Forward(%v) = %v, expected (%v, 0, %v)", tc.yaw, f, tc.x, tc.z)
		}
		if !near(f.Len(), 1) {
			t.Errorf("Forward(%v) length = %f, expected 1", tc.yaw, f.Len())
		}
	}
}

func TestRightIsPerpendicular(t *testing.T) {
	for yaw := -720.0; yaw <= 720.0; yaw += 17.5 {
		f := Forward(yaw)
		r := Right(f)
		if !near(f.Dot(r), 0) {
			t.Errorf("yaw %v: forward·right = %f, expected 0", yaw, f.Dot(r))
		}
		if !near(r.Len(), 1) {
			t.Errorf("yaw %v: |right| = %f, expected 1", yaw, r.Len())
		}
		// Right must equal the heading 90 degrees clockwise.
		want := Forward(yaw + 90)
		if !near(r.X(), want.X()) || !near(r.Z(), want.Z()) {
			t.Errorf("yaw %v: Right = %v, expected %v", yaw, r, want)
		}
	}
}

func TestHorizontal(t *testing.T) {
	if got := Horizontal(V3(1, 2, 3)); got != V3(1, 0, 3) {
		t.Errorf("Horizontal = %v, expected (1, 0, 3)", got)
	}
}
