package engine

import (
	"time"

	"github.com/lixenwraith/sky-dodger/score"
	"github.com/lixenwraith/sky-dodger/system"
)

// Phase is the simulation's top-level state
type Phase uint8

const (
	PhaseRunning Phase = iota
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// CanTransition checks if a phase transition is valid
// Collision ends a run, restart is valid from either phase
func CanTransition(from, to Phase) bool {
	validTransitions := map[Phase][]Phase{
		PhaseRunning:  {PhaseGameOver, PhaseRunning},
		PhaseGameOver: {PhaseRunning},
	}

	for _, phase := range validTransitions[from] {
		if phase == to {
			return true
		}
	}
	return false
}

// GameState is the run-level state owned by Simulation
// Not synchronized itself, Simulation's mutex guards it
type GameState struct {
	Phase          Phase
	PhaseStartTime time.Time

	// Score is distance flown this run, only grows while running
	Score float64

	// Set on the transition to game over
	FinalScore   int
	LastCrash    system.Collision
	NewHighScore bool

	Leaderboard *score.Leaderboard
}

// TransitionPhase attempts to transition to a new phase with validation
// Returns true if transition succeeded, false if transition is invalid
func (gs *GameState) TransitionPhase(to Phase, now time.Time) bool {
	if !CanTransition(gs.Phase, to) {
		return false
	}
	gs.Phase = to
	gs.PhaseStartTime = now
	return true
}

// PhaseDuration returns how long the current phase has been active
func (gs *GameState) PhaseDuration(now time.Time) time.Duration {
	return now.Sub(gs.PhaseStartTime)
}
