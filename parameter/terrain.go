package parameter

// Terrain noise octaves, frequency and amplitude pairs
var (
	TerrainOctaveFrequencies = [3]float64{0.001, 0.002, 0.004}
	TerrainOctaveAmplitudes  = [3]float64{40, 20, 10}
)

const (
	// TerrainFalloffRadius is the distance from origin at which noise amplitude reaches zero
	TerrainFalloffRadius = 500.0

	// TerrainMeshSize is the edge length of the square mesh centered at origin
	TerrainMeshSize = 2000.0

	// TerrainMeshResolution is the number of cells per mesh edge
	TerrainMeshResolution = 200
)

// Decorative scatter
const (
	ScatterTreeCount = 2000
	ScatterRockCount = 1000

	// Clear corridor around the start position
	ScatterClearHalfX = 50.0
	ScatterClearHalfZ = 100.0

	TreeMinHeight, TreeMaxHeight = 5.0, 120.0
	RockMinHeight, RockMaxHeight = 0.0, 100.0

	TreeTrunkMin, TreeTrunkSpan = 10.0, 10.0
	TreeTopMin, TreeTopSpan     = 5.0, 5.0
	RockSizeMin, RockSizeSpan   = 5.0, 8.0
)
