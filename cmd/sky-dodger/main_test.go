package main

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/sky-dodger/engine"
	"github.com/lixenwraith/sky-dodger/input"
	"github.com/lixenwraith/sky-dodger/parameter"
	"github.com/lixenwraith/sky-dodger/physics"
	"github.com/lixenwraith/sky-dodger/render"
	"github.com/lixenwraith/sky-dodger/score"
	"github.com/lixenwraith/sky-dodger/system"
	"github.com/lixenwraith/sky-dodger/terrain"
	"github.com/lixenwraith/sky-dodger/vmath"
)

func newTestHost(t *testing.T) *host {
	t.Helper()

	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 30)
	t.Cleanup(screen.Fini)

	sim, err := engine.NewSimulation(context.Background(), engine.Dependencies{
		Flight:  physics.DefaultFlightConfig(),
		Field:   system.DefaultFieldConfig(),
		Terrain: terrain.Flat{},
		Store:   score.NewMemoryStore(),
		Rand:    vmath.NewFastRand(1),
		Logger:  zerolog.Nop(),
	})
	require.NoError(t, err)

	return &host{
		screen:    screen,
		sim:       sim,
		collector: input.NewCollector(nil, parameter.InputHoldWindow),
		clock:     engine.NewFrameClock(engine.NewMockTimeProvider(time.Unix(1_700_000_000, 0)), 0),
		renderer:  render.NewTerminalRenderer(screen, nil, nil, render.Options{}),
		maxSpeed:  physics.DefaultFlightConfig().MaxSpeed,
		log:       zerolog.Nop(),
	}
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestHandleEventQuit(t *testing.T) {
	h := newTestHost(t)
	assert.True(t, h.handleEvent(key('w')))
	assert.False(t, h.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
}

func TestHandleEventPauseToggle(t *testing.T) {
	h := newTestHost(t)

	h.handleEvent(key('p'))
	assert.True(t, h.clock.IsPaused())
	h.handleEvent(key('p'))
	assert.False(t, h.clock.IsPaused())
}

func TestHandleEventRestartAfterCrash(t *testing.T) {
	h := newTestHost(t)

	h.sim.ForcePosition(vmath.Vec3F{Y: 0})
	res := h.sim.Tick(physics.ControlInput{}, 0.016)
	require.Equal(t, engine.PhaseGameOver, res.Phase)

	h.handleEvent(key('p'))
	h.handleEvent(key('r'))
	assert.Equal(t, engine.PhaseRunning, h.sim.Phase())
	assert.False(t, h.clock.IsPaused(), "restart resumes a paused clock")
}

func TestFrameRendersWithoutSound(t *testing.T) {
	h := newTestHost(t)
	h.frame()
	h.frame()
	assert.Equal(t, engine.PhaseRunning, h.sim.Phase())
}

func TestHandleEventResize(t *testing.T) {
	h := newTestHost(t)
	assert.True(t, h.handleEvent(tcell.NewEventResize(120, 40)))
	assert.Equal(t, 120, h.renderer.Camera().Width)
}
