package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/sky-dodger/audio"
	"github.com/lixenwraith/sky-dodger/config"
	"github.com/lixenwraith/sky-dodger/engine"
	"github.com/lixenwraith/sky-dodger/input"
	"github.com/lixenwraith/sky-dodger/logging"
	"github.com/lixenwraith/sky-dodger/parameter"
	"github.com/lixenwraith/sky-dodger/render"
	"github.com/lixenwraith/sky-dodger/score"
	"github.com/lixenwraith/sky-dodger/terrain"
	"github.com/lixenwraith/sky-dodger/vmath"
)

var (
	configFlag = flag.String("config", "", "Path to a YAML config file")
	debugFlag  = flag.Bool("debug", false, "Enable debug logging to file")
	seedFlag   = flag.Int64("seed", 0, "Terrain seed, 0 uses the config value or the clock")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "sky-dodger: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	if *debugFlag {
		cfg.Log.Enabled = true
		cfg.Log.Level = zerolog.DebugLevel.String()
	}

	logger, logCloser, err := logging.Setup(cfg.Log)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	seed := cfg.Terrain.Seed
	if *seedFlag != 0 {
		seed = *seedFlag
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info().Int64("seed", seed).Msg("Generating terrain")

	heights := terrain.New(seed)
	mesh := terrain.NewMesh(heights, cfg.Terrain.MeshSize, cfg.Terrain.MeshResolution)
	scatterCfg := terrain.DefaultScatterConfig()
	scatterCfg.Size = cfg.Terrain.MeshSize
	scatterCfg.TreeCount = cfg.Terrain.TreeCount
	scatterCfg.RockCount = cfg.Terrain.RockCount
	decorations := terrain.Scatter(heights, vmath.NewFastRand(uint64(seed)), scatterCfg)

	store, err := score.Open(cfg.Scores)
	if err != nil {
		return err
	}
	defer func() {
		if err := score.Close(store); err != nil {
			logger.Error().Err(err).Msg("Closing score store")
		}
	}()

	deps := engine.Dependencies{
		Flight:  cfg.Flight,
		Field:   cfg.Obstacles,
		Terrain: heights,
		Store:   store,
		Logger:  logger,
	}

	if cfg.Metrics.Enabled {
		rm := newRunMetrics()
		defer rm.Shutdown(context.Background(), logger)
		deps.Meter = rm.Meter()
	}

	var sound *audio.SoundManager
	if cfg.Audio.Enabled {
		sound = audio.NewSoundManager()
		if err := sound.Initialize(); err != nil {
			logger.Warn().Err(err).Msg("Audio unavailable, continuing silent")
		}
		defer sound.Cleanup()
		sound.SetMuted(cfg.Audio.Muted)
		deps.Listener = sound
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sim, err := engine.NewSimulation(ctx, deps)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: restore the terminal before the trace is printed
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			logger.Error().Interface("panic", r).Str("stack", string(debug.Stack())).Msg("Crashed")
			fmt.Fprintf(os.Stderr, "\n\x1b[31mSKY-DODGER CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	screen.HideCursor()

	game := &host{
		screen:    screen,
		sim:       sim,
		sound:     sound,
		collector: input.NewCollector(input.DefaultKeyTable(), cfg.Input.HoldWindow),
		clock:     engine.NewFrameClock(engine.NewMonotonicTimeProvider(), parameter.MaxFrameDelta),
		renderer: render.NewTerminalRenderer(screen, mesh, decorations, render.Options{
			Stars:       cfg.Render.Stars,
			Decorations: cfg.Render.ShowDecorations,
			Seed:        uint64(seed),
		}),
		maxSpeed: cfg.Flight.MaxSpeed,
		log:      logger,
	}
	if sound != nil {
		sound.StartEngine()
	}

	return game.loop(ctx, cfg.FrameInterval())
}

// host owns the simulation on the main goroutine, restart is serialized with ticks
type host struct {
	screen    tcell.Screen
	sim       *engine.Simulation
	sound     *audio.SoundManager
	collector *input.Collector
	clock     *engine.FrameClock
	renderer  *render.TerminalRenderer
	maxSpeed  float64
	log       zerolog.Logger
}

func (h *host) loop(ctx context.Context, interval time.Duration) error {
	screen := h.screen
	eventChan := make(chan tcell.Event, parameter.EventChannelSize)
	quit := make(chan struct{})
	defer close(quit)

	// Input polling uses raw goroutine as it interacts directly with terminal
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := screen.PollEvent()
			// Nil event means the screen was finalized
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-quit:
				return
			}
		}
	}()

	frameTicker := time.NewTicker(interval)
	defer frameTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			h.log.Info().Msg("Interrupted")
			return nil

		case ev := <-eventChan:
			if !h.handleEvent(ev) {
				h.log.Info().Msg("Quit")
				return nil
			}

		case <-frameTicker.C:
			h.frame()
		}
	}
}

// handleEvent returns false when the game should exit
func (h *host) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, hgt := ev.Size()
		h.renderer.Resize(w, hgt)
		h.screen.Sync()
	case *tcell.EventKey:
		switch h.collector.Handle(ev, time.Now()) {
		case input.CommandQuit:
			return false
		case input.CommandRestart:
			h.sim.Restart()
			h.collector.Reset()
			h.renderer.ResetCamera()
			if h.clock.IsPaused() {
				h.clock.Resume()
			}
		case input.CommandTogglePause:
			paused := h.clock.Toggle()
			h.log.Debug().Bool("paused", paused).Msg("Pause toggled")
		case input.CommandToggleMute:
			if h.sound != nil {
				muted := h.sound.ToggleMute()
				h.log.Debug().Bool("muted", muted).Msg("Mute toggled")
			}
		}
	}
	return true
}

func (h *host) frame() {
	dt := h.clock.Tick()
	if !h.clock.IsPaused() {
		res := h.sim.Tick(h.collector.Input(time.Now()), dt)
		if res.GameOver {
			h.collector.Reset()
		}
	}

	snap := h.sim.Snapshot()
	if h.sound != nil && h.maxSpeed > 0 {
		h.sound.SetEngineSpeed(vmath.V3FMag(snap.Velocity) / h.maxSpeed)
	}

	overlay := render.Overlay{Paused: h.clock.IsPaused()}
	if h.sound != nil {
		overlay.Muted = h.sound.IsMuted()
	}
	h.renderer.RenderFrame(snap, overlay)
}
