package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameClockDelta(t *testing.T) {
	mock := NewMockTimeProvider(testEpoch)
	clock := NewFrameClock(mock, 0.1)

	mock.Advance(16 * time.Millisecond)
	assert.InDelta(t, 0.016, clock.Tick(), 1e-9)

	mock.Advance(40 * time.Millisecond)
	assert.InDelta(t, 0.040, clock.Tick(), 1e-9)

	// No time passed
	assert.Zero(t, clock.Tick())
}

func TestFrameClockClampsStall(t *testing.T) {
	mock := NewMockTimeProvider(testEpoch)
	clock := NewFrameClock(mock, 0.1)

	mock.Advance(5 * time.Second)
	assert.Equal(t, 0.1, clock.Tick())
}

func TestFrameClockBackwardsTime(t *testing.T) {
	mock := NewMockTimeProvider(testEpoch)
	clock := NewFrameClock(mock, 0.1)

	mock.SetTime(testEpoch.Add(-time.Second))
	assert.Zero(t, clock.Tick())

	mock.Advance(20 * time.Millisecond)
	assert.InDelta(t, 0.020, clock.Tick(), 1e-9)
}

func TestFrameClockPause(t *testing.T) {
	mock := NewMockTimeProvider(testEpoch)
	clock := NewFrameClock(mock, 0)

	assert.True(t, clock.Toggle())
	assert.True(t, clock.IsPaused())

	mock.Advance(3 * time.Second)
	assert.Zero(t, clock.Tick())
	assert.Equal(t, 3*time.Second, clock.TotalPauseDuration())

	assert.False(t, clock.Toggle())
	mock.Advance(10 * time.Millisecond)
	assert.InDelta(t, 0.010, clock.Tick(), 1e-9, "paused interval discarded")
	assert.Equal(t, 3*time.Second, clock.TotalPauseDuration())

	// Repeated pause and resume are idempotent
	clock.Resume()
	clock.Pause()
	clock.Pause()
	mock.Advance(time.Second)
	clock.Resume()
	assert.Equal(t, 4*time.Second, clock.TotalPauseDuration())
}

func TestFrameClockDefaultMaxDelta(t *testing.T) {
	mock := NewMockTimeProvider(testEpoch)
	clock := NewFrameClock(mock, -1)
	mock.Advance(time.Hour)
	assert.Equal(t, 0.1, clock.Tick())
}
