package parameter

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the rendering and simulation tick interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps a single tick's dt in seconds, a stalled terminal must not inject a huge step
	MaxFrameDelta = 0.1

	// EventChannelSize buffers terminal events between poller and main loop
	EventChannelSize = 64
)

// Input
const (
	// InputHoldWindow is how long a key press keeps its axis active, terminals report no key release
	// Must exceed the auto-repeat delay (commonly 250-660ms) so a held key does not stutter
	// A tap still steers for the full window
	InputHoldWindow = 700 * time.Millisecond
)

// Logging
const (
	LogFileName = "sky-dodger.log"

	// LogMaxSize triggers rotation to a timestamped backup at startup
	LogMaxSize = 10 * 1024 * 1024
)
