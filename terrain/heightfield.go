package terrain

import (
	"math"

	"github.com/ojrac/opensimplex-go"

	"github.com/lixenwraith/sky-dodger/parameter"
	"github.com/lixenwraith/sky-dodger/vmath"
)

// Sampler answers terrain height queries
// Mesh generation and collision must share one Sampler so geometry and physics agree
type Sampler interface {
	HeightAt(x, z float64) float64
}

// HeightField is layered simplex noise flattened toward the edge of the falloff radius
// The noise source is seeded once at construction and never mutated
type HeightField struct {
	seed  int64
	noise opensimplex.Noise
}

// New builds a height field from seed, same seed gives same terrain
func New(seed int64) *HeightField {
	return &HeightField{
		seed:  seed,
		noise: opensimplex.New(seed),
	}
}

func (h *HeightField) Seed() int64 {
	return h.seed
}

// HeightAt sums three octaves scaled by a radial falloff
// Non-finite coordinates yield 0
func (h *HeightField) HeightAt(x, z float64) float64 {
	if !vmath.IsFinite(x) || !vmath.IsFinite(z) {
		return 0
	}

	falloff := Falloff(x, z)
	if falloff == 0 {
		return 0
	}

	height := 0.0
	for i, freq := range parameter.TerrainOctaveFrequencies {
		height += h.noise.Eval2(x*freq, z*freq) * parameter.TerrainOctaveAmplitudes[i] * falloff
	}
	return height
}

// Falloff is 1 at the origin, fading linearly to 0 at the falloff radius and beyond
func Falloff(x, z float64) float64 {
	dist := math.Sqrt(x*x + z*z)
	return math.Max(0, (parameter.TerrainFalloffRadius-dist)/parameter.TerrainFalloffRadius)
}

// Flat is a constant-height sampler
type Flat struct {
	Height float64
}

func (f Flat) HeightAt(x, z float64) float64 {
	return f.Height
}
