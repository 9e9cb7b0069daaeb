package system

import (
	"math"

	"github.com/lixenwraith/sky-dodger/component"
	"github.com/lixenwraith/sky-dodger/parameter"
	"github.com/lixenwraith/sky-dodger/vmath"
)

// shapeFactory builds an obstacle's shape and local bounds, position is assigned by the caller
type shapeFactory func(rng *vmath.FastRand) component.ObstacleComponent

// shapeFactories is indexed by kind, one entry per variant
var shapeFactories = [component.ShapeKindCount]shapeFactory{
	component.ShapeRing:     newRing,
	component.ShapeWall:     newWall,
	component.ShapePoly:     newPoly,
	component.ShapeCombined: newCombined,
}

func newRing(rng *vmath.FastRand) component.ObstacleComponent {
	inner := span(rng, parameter.RingInnerMin, parameter.RingInnerSpan)
	ring := component.RingShape{
		InnerRadius: inner,
		OuterRadius: inner + span(rng, parameter.RingWidthMin, parameter.RingWidthSpan),
		Tube:        span(rng, parameter.RingTubeMin, parameter.RingTubeSpan),
	}
	return component.ObstacleComponent{
		Kind:  component.ShapeRing,
		Ring:  &ring,
		Local: component.RingBounds(ring),
	}
}

func newWall(rng *vmath.FastRand) component.ObstacleComponent {
	wall := component.WallShape{
		Width:  span(rng, parameter.WallSideMin, parameter.WallSideSpan),
		Height: span(rng, parameter.WallSideMin, parameter.WallSideSpan),
		Depth:  span(rng, parameter.WallDepthMin, parameter.WallDepthSpan),
	}
	return component.ObstacleComponent{
		Kind:  component.ShapeWall,
		Wall:  &wall,
		Local: component.WallBounds(wall),
	}
}

func newPoly(rng *vmath.FastRand) component.ObstacleComponent {
	parts := []component.Shape{randomSolid(rng)}
	return component.ObstacleComponent{
		Kind:  component.ShapePoly,
		Parts: parts,
		Local: component.PartsBounds(parts),
	}
}

func newCombined(rng *vmath.FastRand) component.ObstacleComponent {
	n := parameter.CombinedPartsMin + rng.Intn(parameter.CombinedPartsSpan)
	parts := make([]component.Shape, n)
	for i := range parts {
		s := randomSolid(rng)
		s.Offset = vmath.Vec3F{
			X: (rng.Float64() - 0.5) * parameter.CombinedSpread,
			Y: (rng.Float64() - 0.5) * parameter.CombinedSpread,
			Z: (rng.Float64() - 0.5) * parameter.CombinedSpread,
		}
		parts[i] = s
	}
	return component.ObstacleComponent{
		Kind:  component.ShapeCombined,
		Parts: parts,
		Local: component.PartsBounds(parts),
	}
}

func randomSolid(rng *vmath.FastRand) component.Shape {
	return component.Shape{
		Poly: component.PolyKind(rng.Intn(component.PolyKindCount)),
		Size: span(rng, parameter.PolySizeMin, parameter.PolySizeSpan),
		Rotation: vmath.Vec3F{
			X: rng.Range(0, math.Pi),
			Y: rng.Range(0, math.Pi),
			Z: rng.Range(0, math.Pi),
		},
	}
}

func span(rng *vmath.FastRand, lo, width float64) float64 {
	return rng.Range(lo, lo+width)
}
