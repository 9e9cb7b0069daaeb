package component

import (
	"github.com/lixenwraith/sky-dodger/vmath"
)

// ShapeKind tags the obstacle variant
type ShapeKind uint8

const (
	ShapeRing ShapeKind = iota
	ShapeWall
	ShapePoly
	ShapeCombined

	ShapeKindCount = 4
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeRing:
		return "ring"
	case ShapeWall:
		return "wall"
	case ShapePoly:
		return "poly"
	case ShapeCombined:
		return "combined"
	default:
		return "unknown"
	}
}

// RingShape is a torus lying in the XZ plane
type RingShape struct {
	InnerRadius float64 // Visual only, the hole does not exempt from collision
	OuterRadius float64
	Tube        float64
}

// WallShape is a flat slab facing the aircraft
type WallShape struct {
	Width, Height, Depth float64
}

// ObstacleComponent is a single obstacle in the field
// Shape data is fixed at spawn, only Position changes afterwards
type ObstacleComponent struct {
	ID       uint64
	Kind     ShapeKind
	Position vmath.Vec3F

	// Local is the bounding box relative to Position
	Local vmath.AABB

	// Exactly one of Ring, Wall or Parts is populated, matching Kind
	// Poly carries a single part with zero offset
	Ring  *RingShape
	Wall  *WallShape
	Parts []Shape
}

// Bounds returns the world-space bounding box at the current position
func (o *ObstacleComponent) Bounds() vmath.AABB {
	return o.Local.Translate(o.Position)
}

// Clone returns a deep copy safe to hand to readers
func (o ObstacleComponent) Clone() ObstacleComponent {
	c := o
	if o.Ring != nil {
		r := *o.Ring
		c.Ring = &r
	}
	if o.Wall != nil {
		w := *o.Wall
		c.Wall = &w
	}
	if o.Parts != nil {
		c.Parts = append([]Shape(nil), o.Parts...)
	}
	return c
}

// RingBounds returns the local box of a flat torus
func RingBounds(r RingShape) vmath.AABB {
	extent := r.OuterRadius + r.Tube
	return vmath.BoxFromHalfExtents(extent, r.Tube, extent)
}

// WallBounds returns the local box of a slab
func WallBounds(w WallShape) vmath.AABB {
	return vmath.BoxFromHalfExtents(w.Width/2, w.Height/2, w.Depth/2)
}
