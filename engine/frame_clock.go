package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/sky-dodger/parameter"
)

// FrameClock turns wall time into per-frame dt with pause support
// Paused time is never reported, and a single dt never exceeds maxDelta
type FrameClock struct {
	mu sync.Mutex

	provider TimeProvider
	maxDelta float64
	last     time.Time
	paused   bool

	// Cumulative pause duration
	pausedTotal time.Duration
	pauseStart  time.Time
}

// NewFrameClock starts the clock at provider.Now()
// Zero or negative maxDelta falls back to parameter.MaxFrameDelta
func NewFrameClock(provider TimeProvider, maxDelta float64) *FrameClock {
	if maxDelta <= 0 {
		maxDelta = parameter.MaxFrameDelta
	}
	return &FrameClock{
		provider: provider,
		maxDelta: maxDelta,
		last:     provider.Now(),
	}
}

// Tick returns seconds since the previous Tick, 0 while paused
func (c *FrameClock) Tick() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.provider.Now()
	if c.paused {
		return 0
	}

	dt := now.Sub(c.last).Seconds()
	c.last = now
	if dt < 0 {
		return 0
	}
	if dt > c.maxDelta {
		return c.maxDelta
	}
	return dt
}

// Pause stops dt accumulation, repeated calls are ignored
func (c *FrameClock) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.paused {
		return
	}
	c.paused = true
	c.pauseStart = c.provider.Now()
}

// Resume continues from now, the paused interval is discarded
func (c *FrameClock) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.paused {
		return
	}
	now := c.provider.Now()
	c.pausedTotal += now.Sub(c.pauseStart)
	c.pauseStart = time.Time{}
	c.paused = false
	c.last = now
}

// Toggle flips pause state and returns the new state
func (c *FrameClock) Toggle() bool {
	if c.IsPaused() {
		c.Resume()
		return false
	}
	c.Pause()
	return true
}

func (c *FrameClock) IsPaused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}

// TotalPauseDuration includes the current pause if any
func (c *FrameClock) TotalPauseDuration() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := c.pausedTotal
	if c.paused {
		total += c.provider.Now().Sub(c.pauseStart)
	}
	return total
}
