package terrain

import (
	"math"

	"github.com/lixenwraith/sky-dodger/component"
	"github.com/lixenwraith/sky-dodger/parameter"
	"github.com/lixenwraith/sky-dodger/vmath"
)

// DecorationKind separates trees from rocks
type DecorationKind uint8

const (
	DecorationTree DecorationKind = iota
	DecorationRock
)

// Decoration is static scenery, drawn but never collided with
type Decoration struct {
	Kind     DecorationKind
	Position vmath.Vec3F // Base on the terrain surface
	Shape    component.Shape

	// Trunk is the tree trunk height, zero for rocks
	Trunk float64
}

// ScatterConfig controls decoration placement
type ScatterConfig struct {
	Size       float64
	TreeCount  int
	RockCount  int
	ClearHalfX float64 // Corridor around the start kept empty
	ClearHalfZ float64
}

// DefaultScatterConfig matches the default mesh
func DefaultScatterConfig() ScatterConfig {
	return ScatterConfig{
		Size:       parameter.TerrainMeshSize,
		TreeCount:  parameter.ScatterTreeCount,
		RockCount:  parameter.ScatterRockCount,
		ClearHalfX: parameter.ScatterClearHalfX,
		ClearHalfZ: parameter.ScatterClearHalfZ,
	}
}

var (
	treeTops   = [...]component.PolyKind{component.PolyCone, component.PolyDodecahedron, component.PolyIcosahedron}
	rockShapes = [...]component.PolyKind{component.PolyDodecahedron, component.PolyIcosahedron, component.PolyOctahedron}
)

// Scatter places trees and rocks over the square, once per session
// Candidates inside the clear corridor or outside the height band for their kind are dropped
func Scatter(s Sampler, rng *vmath.FastRand, cfg ScatterConfig) []Decoration {
	out := make([]Decoration, 0, cfg.TreeCount+cfg.RockCount)

	for i := 0; i < cfg.TreeCount; i++ {
		x, z, ok := scatterCandidate(rng, cfg)
		if !ok {
			continue
		}
		h := s.HeightAt(x, z)
		if h <= parameter.TreeMinHeight || h >= parameter.TreeMaxHeight {
			continue
		}
		out = append(out, Decoration{
			Kind:     DecorationTree,
			Position: vmath.Vec3F{X: x, Y: h, Z: z},
			Trunk:    rng.Range(parameter.TreeTrunkMin, parameter.TreeTrunkMin+parameter.TreeTrunkSpan),
			Shape: component.Shape{
				Poly: treeTops[rng.Intn(len(treeTops))],
				Size: rng.Range(parameter.TreeTopMin, parameter.TreeTopMin+parameter.TreeTopSpan),
			},
		})
	}

	for i := 0; i < cfg.RockCount; i++ {
		x, z, ok := scatterCandidate(rng, cfg)
		if !ok {
			continue
		}
		h := s.HeightAt(x, z)
		if h <= parameter.RockMinHeight || h >= parameter.RockMaxHeight {
			continue
		}
		out = append(out, Decoration{
			Kind:     DecorationRock,
			Position: vmath.Vec3F{X: x, Y: h, Z: z},
			Shape: component.Shape{
				Poly: rockShapes[rng.Intn(len(rockShapes))],
				Size: rng.Range(parameter.RockSizeMin, parameter.RockSizeMin+parameter.RockSizeSpan),
				Rotation: vmath.Vec3F{
					X: rng.Range(0, math.Pi),
					Y: rng.Range(0, math.Pi),
					Z: rng.Range(0, math.Pi),
				},
			},
		})
	}

	return out
}

func scatterCandidate(rng *vmath.FastRand, cfg ScatterConfig) (x, z float64, ok bool) {
	x = (rng.Float64() - 0.5) * cfg.Size
	z = (rng.Float64() - 0.5) * cfg.Size
	if math.Abs(x) < cfg.ClearHalfX && math.Abs(z) < cfg.ClearHalfZ {
		return x, z, false
	}
	return x, z, true
}
