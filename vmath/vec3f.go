package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3F is a float64 3D vector used by flight and obstacle state
type Vec3F struct {
	X, Y, Z float64
}

// Forward is the aircraft's nose direction in its own frame (flight is along -Z)
var Forward = Vec3F{0, 0, -1}

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FSub(a, b Vec3F) Vec3F {
	return Vec3F{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

func V3FMagSq(v Vec3F) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3FMag(v Vec3F) float64 {
	return math.Sqrt(V3FMagSq(v))
}

func V3FNormalize(v Vec3F) Vec3F {
	mag := V3FMag(v)
	if mag == 0 {
		return Vec3F{}
	}
	inv := 1.0 / mag
	return Vec3F{v.X * inv, v.Y * inv, v.Z * inv}
}

// V3FIsFinite reports whether no component is NaN or Inf
func V3FIsFinite(v Vec3F) bool {
	return IsFinite(v.X) && IsFinite(v.Y) && IsFinite(v.Z)
}

// IsFinite reports whether f is neither NaN nor Inf
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// RotateEuler rotates v by Euler angles applied in XYZ order (R = Rx·Ry·Rz)
// Angles are radians, euler.X = pitch, euler.Y = yaw, euler.Z = roll
func RotateEuler(v, euler Vec3F) Vec3F {
	if euler == (Vec3F{}) {
		return v
	}
	q := mgl64.AnglesToQuat(euler.X, euler.Y, euler.Z, mgl64.XYZ)
	r := q.Rotate(mgl64.Vec3{v.X, v.Y, v.Z})
	return Vec3F{r[0], r[1], r[2]}
}

// V3FLerp moves a toward b by t
func V3FLerp(a, b Vec3F, t float64) Vec3F {
	return Vec3F{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t, a.Z + (b.Z-a.Z)*t}
}

// Clamp limits f to [lo, hi]
func Clamp(f, lo, hi float64) float64 {
	if f < lo {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}
