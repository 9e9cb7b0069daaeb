package engine

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/metric"

	"github.com/lixenwraith/sky-dodger/component"
	"github.com/lixenwraith/sky-dodger/parameter"
	"github.com/lixenwraith/sky-dodger/physics"
	"github.com/lixenwraith/sky-dodger/score"
	"github.com/lixenwraith/sky-dodger/system"
	"github.com/lixenwraith/sky-dodger/terrain"
	"github.com/lixenwraith/sky-dodger/vmath"
)

// Listener receives simulation events, called with the simulation lock held
// Implementations must not call back into the Simulation
type Listener interface {
	OnSpawn(o component.ObstacleComponent)
	OnCrash(c system.Collision, finalScore int)
	OnRestart()
}

// Dependencies wires a Simulation, zero values get defaults where noted
type Dependencies struct {
	Flight  physics.FlightConfig
	Field   system.FieldConfig
	Terrain terrain.Sampler
	Store   score.Store

	Rand     *vmath.FastRand // Default seeded from Clock
	Clock    TimeProvider    // Default monotonic
	Logger   zerolog.Logger
	Listener Listener     // Optional
	Meter    metric.Meter // Default global otel meter
}

// TickResult reports the outcome of one Tick
type TickResult struct {
	Phase     Phase
	Score     float64
	Collision system.Collision

	// GameOver is true only on the tick that ended the run
	GameOver bool
}

// Simulation runs flight, obstacles, collision and scoring for one session
// All methods are safe for concurrent use, each is atomic with respect to the others
type Simulation struct {
	mu sync.Mutex

	ctx      context.Context
	flight   *physics.FlightModel
	field    *system.ObstacleField
	terrain  terrain.Sampler
	store    score.Store
	clock    TimeProvider
	log      zerolog.Logger
	listener Listener
	metrics  *simMetrics

	state GameState
}

// NewSimulation builds a running simulation and loads the leaderboard once
// A failed load starts with an empty leaderboard
func NewSimulation(ctx context.Context, deps Dependencies) (*Simulation, error) {
	if deps.Terrain == nil {
		return nil, errors.New("simulation: nil terrain")
	}
	if deps.Store == nil {
		return nil, errors.New("simulation: nil score store")
	}
	if deps.Clock == nil {
		deps.Clock = NewMonotonicTimeProvider()
	}
	if deps.Rand == nil {
		deps.Rand = vmath.NewFastRand(uint64(deps.Clock.Now().UnixNano()))
	}

	flight, err := physics.NewFlightModel(deps.Flight)
	if err != nil {
		return nil, err
	}
	field, err := system.NewObstacleField(deps.Field, deps.Rand)
	if err != nil {
		return nil, err
	}
	sm, err := newSimMetrics(deps.Meter)
	if err != nil {
		return nil, fmt.Errorf("simulation metrics: %w", err)
	}

	s := &Simulation{
		ctx:      ctx,
		flight:   flight,
		field:    field,
		terrain:  deps.Terrain,
		store:    deps.Store,
		clock:    deps.Clock,
		log:      deps.Logger.With().Str("component", "simulation").Logger(),
		listener: deps.Listener,
		metrics:  sm,
	}
	field.OnSpawn = s.onSpawn

	entries, err := deps.Store.Load(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("High scores unavailable, starting with empty leaderboard")
		entries = nil
	}
	s.state = GameState{
		Phase:          PhaseRunning,
		PhaseStartTime: deps.Clock.Now(),
		Leaderboard:    score.NewLeaderboard(entries),
	}
	s.log.Info().Int("high_scores", s.state.Leaderboard.Len()).Msg("Simulation ready")
	return s, nil
}

// Tick advances one frame
// Negative or non-finite dt counts as zero, and a zero tick or a finished run mutates nothing
func (s *Simulation) Tick(in physics.ControlInput, dt float64) TickResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !vmath.IsFinite(dt) || dt < 0 {
		dt = 0
	}
	if s.state.Phase != PhaseRunning || dt == 0 {
		return s.resultLocked(system.Collision{}, false)
	}
	s.metrics.tick(s.ctx)

	pose := s.flight.Step(in, dt)
	s.field.Advance(dt, pose.Position.Z)

	hit := system.CheckCollision(s.flight.Bounds(), pose, s.terrain, s.field.Live())
	if !hit.Hit() {
		s.state.Score += s.flight.Config().MaxSpeed * dt
		return s.resultLocked(hit, false)
	}

	s.gameOverLocked(hit)
	return s.resultLocked(hit, true)
}

// Check runs the collision detector against the current state without advancing it
func (s *Simulation) Check() system.Collision {
	s.mu.Lock()
	defer s.mu.Unlock()
	return system.CheckCollision(s.flight.Bounds(), s.flight.Pose(), s.terrain, s.field.Live())
}

// Restart resets the aircraft, obstacles and score and resumes running
// Valid in either phase
func (s *Simulation) Restart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.flight.Reset(physics.StartPose())
	s.field.Reset()

	s.state.TransitionPhase(PhaseRunning, s.clock.Now())
	s.state.Score = 0
	s.state.FinalScore = 0
	s.state.LastCrash = system.Collision{}
	s.state.NewHighScore = false

	s.metrics.restart(s.ctx)
	if s.listener != nil {
		s.listener.OnRestart()
	}
	s.log.Debug().Msg("Restarted")
}

// ForcePosition teleports the aircraft, orientation and velocity are kept
func (s *Simulation) ForcePosition(p vmath.Vec3F) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flight.SetPosition(p)
}

// SpawnObstacle places an obstacle at z immediately, outside the spawn timer
func (s *Simulation) SpawnObstacle(z float64) component.ObstacleComponent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.field.SpawnAt(z)
}

func (s *Simulation) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Phase
}

func (s *Simulation) Score() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Score
}

func (s *Simulation) gameOverLocked(hit system.Collision) {
	now := s.clock.Now()
	s.state.TransitionPhase(PhaseGameOver, now)
	s.state.LastCrash = hit
	s.state.FinalScore = int(math.Floor(s.state.Score))

	final := s.state.FinalScore
	if s.state.Leaderboard.Insert(final, now.Format(parameter.ScoreTimestampLayout)) {
		s.state.NewHighScore = true
		if err := s.store.Save(s.ctx, s.state.Leaderboard.Entries()); err != nil {
			s.log.Error().Err(err).Msg("Failed to save high scores")
		}
	}

	s.log.Info().
		Str("cause", hit.Result.String()).
		Int("score", final).
		Bool("high_score", s.state.NewHighScore).
		Msg("Game over")

	s.metrics.crash(s.ctx, hit.Result.String(), final)
	if s.listener != nil {
		s.listener.OnCrash(hit, final)
	}
}

func (s *Simulation) onSpawn(o component.ObstacleComponent) {
	s.metrics.spawn(s.ctx, o.Kind.String())
	if s.listener != nil {
		s.listener.OnSpawn(o)
	}
}

func (s *Simulation) resultLocked(hit system.Collision, ended bool) TickResult {
	return TickResult{
		Phase:     s.state.Phase,
		Score:     s.state.Score,
		Collision: hit,
		GameOver:  ended,
	}
}
