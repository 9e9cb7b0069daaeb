package component

import (
	"github.com/lixenwraith/sky-dodger/vmath"
)

// PolyKind selects the solid used by poly obstacles and decorations
type PolyKind uint8

const (
	PolyDodecahedron PolyKind = iota
	PolyIcosahedron
	PolyOctahedron
	PolyTetrahedron
	PolyCone
	PolyCylinder

	PolyKindCount = 6
)

func (k PolyKind) String() string {
	switch k {
	case PolyDodecahedron:
		return "dodecahedron"
	case PolyIcosahedron:
		return "icosahedron"
	case PolyOctahedron:
		return "octahedron"
	case PolyTetrahedron:
		return "tetrahedron"
	case PolyCone:
		return "cone"
	case PolyCylinder:
		return "cylinder"
	default:
		return "unknown"
	}
}

// Shape is one solid, positioned relative to its owner
type Shape struct {
	Poly     PolyKind
	Size     float64
	Offset   vmath.Vec3F
	Rotation vmath.Vec3F
}

// Bounds returns the shape's box in its owner's frame
// Platonic solids are bounded by their circumsphere so rotation does not matter
// Cone and cylinder use the rotated box of their upright extents
func (s Shape) Bounds() vmath.AABB {
	var local vmath.AABB
	switch s.Poly {
	case PolyCone:
		r, h := s.Size*0.8, s.Size*1.5
		local = vmath.RotatedBounds(vmath.BoxFromHalfExtents(r, h/2, r), s.Rotation)
	case PolyCylinder:
		r, h := s.Size*0.7, s.Size*2
		local = vmath.RotatedBounds(vmath.BoxFromHalfExtents(r, h/2, r), s.Rotation)
	default:
		local = vmath.BoxFromHalfExtents(s.Size, s.Size, s.Size)
	}
	return local.Translate(s.Offset)
}

// PartsBounds returns the union of all part boxes
func PartsBounds(parts []Shape) vmath.AABB {
	if len(parts) == 0 {
		return vmath.AABB{}
	}
	b := parts[0].Bounds()
	for _, p := range parts[1:] {
		b = b.Union(p.Bounds())
	}
	return b
}
