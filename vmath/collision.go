package vmath

import "math"

// AABB is an axis-aligned bounding box in world units
// Min must be component-wise <= Max
type AABB struct {
	Min, Max Vec3F
}

// BoxFromHalfExtents returns a box centered at the origin
func BoxFromHalfExtents(hx, hy, hz float64) AABB {
	return AABB{
		Min: Vec3F{-hx, -hy, -hz},
		Max: Vec3F{hx, hy, hz},
	}
}

// BoxFromPoints returns the tightest box containing all points
// Zero points yields the empty box at the origin
func BoxFromPoints(points ...Vec3F) AABB {
	if len(points) == 0 {
		return AABB{}
	}
	b := AABB{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		b.Min.X = math.Min(b.Min.X, p.X)
		b.Min.Y = math.Min(b.Min.Y, p.Y)
		b.Min.Z = math.Min(b.Min.Z, p.Z)
		b.Max.X = math.Max(b.Max.X, p.X)
		b.Max.Y = math.Max(b.Max.Y, p.Y)
		b.Max.Z = math.Max(b.Max.Z, p.Z)
	}
	return b
}

// Intersects reports overlap on all three axes, touching faces count as overlap
func (b AABB) Intersects(o AABB) bool {
	return b.Min.X <= o.Max.X && b.Max.X >= o.Min.X &&
		b.Min.Y <= o.Max.Y && b.Max.Y >= o.Min.Y &&
		b.Min.Z <= o.Max.Z && b.Max.Z >= o.Min.Z
}

// Contains reports whether p lies inside or on the box
func (b AABB) Contains(p Vec3F) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Translate shifts the box by v
func (b AABB) Translate(v Vec3F) AABB {
	return AABB{Min: V3FAdd(b.Min, v), Max: V3FAdd(b.Max, v)}
}

// Union returns the smallest box containing both
func (b AABB) Union(o AABB) AABB {
	return BoxFromPoints(b.Min, b.Max, o.Min, o.Max)
}

// Center returns the box midpoint
func (b AABB) Center() Vec3F {
	return V3FScale(V3FAdd(b.Min, b.Max), 0.5)
}

// Size returns edge lengths per axis
func (b AABB) Size() Vec3F {
	return V3FSub(b.Max, b.Min)
}

// Corners returns the 8 box vertices
func (b AABB) Corners() [8]Vec3F {
	return [8]Vec3F{
		{b.Min.X, b.Min.Y, b.Min.Z},
		{b.Max.X, b.Min.Y, b.Min.Z},
		{b.Min.X, b.Max.Y, b.Min.Z},
		{b.Max.X, b.Max.Y, b.Min.Z},
		{b.Min.X, b.Min.Y, b.Max.Z},
		{b.Max.X, b.Min.Y, b.Max.Z},
		{b.Min.X, b.Max.Y, b.Max.Z},
		{b.Max.X, b.Max.Y, b.Max.Z},
	}
}

// RotatedBounds returns the axis-aligned box of b's corners rotated by euler about the origin
func RotatedBounds(b AABB, euler Vec3F) AABB {
	if euler == (Vec3F{}) {
		return b
	}
	corners := b.Corners()
	for i := range corners {
		corners[i] = RotateEuler(corners[i], euler)
	}
	return BoxFromPoints(corners[:]...)
}
