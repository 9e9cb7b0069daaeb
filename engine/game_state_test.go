package engine

import (
	"testing"
	"time"
)

// TestCanTransition covers the full phase table
func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to Phase
		want     bool
	}{
		{PhaseRunning, PhaseGameOver, true},
		{PhaseRunning, PhaseRunning, true},
		{PhaseGameOver, PhaseRunning, true},
		{PhaseGameOver, PhaseGameOver, false},
		{Phase(7), PhaseRunning, false},
	}

	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%v, %v) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

// TestTransitionPhase verifies phase start time follows successful transitions only
func TestTransitionPhase(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	gs := GameState{Phase: PhaseRunning, PhaseStartTime: start}

	crash := start.Add(3 * time.Second)
	if !gs.TransitionPhase(PhaseGameOver, crash) {
		t.Fatal("Running -> GameOver should succeed")
	}
	if gs.PhaseStartTime != crash {
		t.Errorf("Expected phase start %v, got %v", crash, gs.PhaseStartTime)
	}

	if gs.TransitionPhase(PhaseGameOver, crash.Add(time.Second)) {
		t.Error("GameOver -> GameOver should be rejected")
	}
	if gs.PhaseStartTime != crash {
		t.Error("Rejected transition must not move phase start")
	}

	if d := gs.PhaseDuration(crash.Add(2 * time.Second)); d != 2*time.Second {
		t.Errorf("Expected 2s in phase, got %v", d)
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseRunning.String() != "running" || PhaseGameOver.String() != "game_over" {
		t.Errorf("Unexpected phase names %q %q", PhaseRunning, PhaseGameOver)
	}
}
