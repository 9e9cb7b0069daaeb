package terrain

import (
	"math"
)

// Mesh is a square height grid centered at the origin, sampled once
type Mesh struct {
	Size       float64
	Resolution int
	Heights    []float64 // (Resolution+1)² row-major, row = z index
	MinHeight  float64
	MaxHeight  float64
}

// NewMesh samples s over a size×size square with resolution cells per edge
func NewMesh(s Sampler, size float64, resolution int) *Mesh {
	if resolution < 1 {
		resolution = 1
	}
	n := resolution + 1
	m := &Mesh{
		Size:       size,
		Resolution: resolution,
		Heights:    make([]float64, n*n),
		MinHeight:  math.Inf(1),
		MaxHeight:  math.Inf(-1),
	}

	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			x, z := m.WorldXZ(i, j)
			h := s.HeightAt(x, z)
			m.Heights[j*n+i] = h
			m.MinHeight = math.Min(m.MinHeight, h)
			m.MaxHeight = math.Max(m.MaxHeight, h)
		}
	}
	return m
}

// Step is the world distance between adjacent vertices
func (m *Mesh) Step() float64 {
	return m.Size / float64(m.Resolution)
}

// WorldXZ returns the world coordinates of vertex (i, j)
func (m *Mesh) WorldXZ(i, j int) (x, z float64) {
	half := m.Size / 2
	step := m.Step()
	return -half + float64(i)*step, -half + float64(j)*step
}

// At returns the height of vertex (i, j), out-of-range indices are clamped
func (m *Mesh) At(i, j int) float64 {
	n := m.Resolution + 1
	i = clampIndex(i, n)
	j = clampIndex(j, n)
	return m.Heights[j*n+i]
}

// Nearest returns the vertex indices closest to (x, z), clamped to the grid
func (m *Mesh) Nearest(x, z float64) (i, j int) {
	half := m.Size / 2
	step := m.Step()
	n := m.Resolution + 1
	i = clampIndex(int(math.Round((x+half)/step)), n)
	j = clampIndex(int(math.Round((z+half)/step)), n)
	return i, j
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
