package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is a value-type 3D vector used for positions, directions and velocities.
// Add, Sub, Mul (scale), Dot and Len come from mgl64.
type Vec3 = mgl64.Vec3

// NormalizeEpsilon is the length below which Normalize yields the zero vector.
const NormalizeEpsilon = 1e-6

// V3 builds a vector from its components.
func V3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// Normalize returns v scaled to unit length.
// Vectors shorter than NormalizeEpsilon normalize to the zero vector,
// so callers must not assume a unit-length result.
func Normalize(v Vec3) Vec3 {
	l := v.Len()
	if l < NormalizeEpsilon {
		return Vec3{}
	}
	return v.Mul(1.0 / l)
}

// Forward returns the unit heading in the horizontal plane for a yaw in degrees.
// Yaw 0 points along -Z; increasing yaw turns clockwise seen from above.
func Forward(yawDeg float64) Vec3 {
	r := yawDeg * math.Pi / 180.0
	return Vec3{math.Sin(r), 0, -math.Cos(r)}
}

// Right returns the horizontal vector perpendicular to fwd, 90° clockwise of it.
func Right(fwd Vec3) Vec3 {
	return Vec3{-fwd.Z(), 0, fwd.X()}
}

// Horizontal drops the vertical component.
func Horizontal(v Vec3) Vec3 {
	return Vec3{v.X(), 0, v.Z()}
}
