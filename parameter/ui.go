package parameter

// Layout
const (
	// HUDRows is the number of top rows reserved for score and speed
	HUDRows = 1

	// LeaderboardWidth is the right-side panel width in cells
	LeaderboardWidth = 24
)

// Starfield
const (
	StarCount = 120
	StarRune  = '.'
)

// Glyphs
const (
	AircraftRune = '^'
	TerrainRune  = '.'
	TreeRune     = '♣'
	RockRune     = '▲'
	RingRune     = 'O'
	WallRune     = '█'
	PolyRune     = '◆'
	ComboRune    = '✦'
)

// Overlay text
const (
	GameOverTitle = " GAME OVER "
	RestartHint   = "r: restart   esc: quit"
	PausedBanner  = " PAUSED "
)
