package parameter

// Obstacle spawn ramp
const (
	ObstacleInitialInterval = 1.5  // seconds between spawns at start
	ObstacleMinInterval     = 0.8  // interval floor
	ObstacleIntervalDecay   = 0.98 // interval multiplier per spawn
	ObstacleInitialSpeed    = 100.0
	ObstacleMaxSpeed        = 200.0
	ObstacleSpeedGrowth     = 1.01 // speed multiplier per spawn
)

// Obstacle placement
const (
	// ObstacleSpawnDistance is how far ahead of the aircraft obstacles appear
	ObstacleSpawnDistance = 1000.0

	// ObstacleCullMargin is how far behind the aircraft an obstacle may drift before removal
	ObstacleCullMargin = 50.0

	// ObstacleSpawnHalfX/Y bound the random lateral offset
	ObstacleSpawnHalfX = 50.0
	ObstacleSpawnHalfY = 40.0
)

// Obstacle shape ranges, [min, min+span)
const (
	RingInnerMin, RingInnerSpan = 20.0, 10.0
	RingWidthMin, RingWidthSpan = 5.0, 5.0
	RingTubeMin, RingTubeSpan   = 2.0, 2.0

	WallSideMin, WallSideSpan   = 10.0, 40.0
	WallDepthMin, WallDepthSpan = 2.0, 2.0

	PolySizeMin, PolySizeSpan = 5.0, 10.0

	CombinedPartsMin, CombinedPartsSpan = 2, 3
	CombinedSpread                      = 50.0
)

// Leaderboard
const (
	LeaderboardCapacity = 5

	// ScoreTimestampLayout formats leaderboard timestamps
	ScoreTimestampLayout = "2006-01-02 15:04:05"
)
