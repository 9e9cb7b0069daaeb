package engine

import (
	"github.com/lixenwraith/sky-dodger/component"
	"github.com/lixenwraith/sky-dodger/physics"
	"github.com/lixenwraith/sky-dodger/score"
	"github.com/lixenwraith/sky-dodger/system"
	"github.com/lixenwraith/sky-dodger/vmath"
)

// Snapshot is a deep copy of everything the renderer draws
type Snapshot struct {
	Phase      Phase
	Score      float64
	FinalScore int

	Pose     physics.Pose
	Velocity vmath.Vec3F
	Bounds   vmath.AABB
	Altitude float64 // Height above terrain

	Obstacles []component.ObstacleComponent
	Field     system.FieldState

	Leaderboard  []score.Entry
	LastCrash    system.Collision
	NewHighScore bool
}

// Snapshot copies the current state under the lock
func (s *Simulation) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	pose := s.flight.Pose()
	return Snapshot{
		Phase:        s.state.Phase,
		Score:        s.state.Score,
		FinalScore:   s.state.FinalScore,
		Pose:         pose,
		Velocity:     s.flight.Velocity(),
		Bounds:       s.flight.Bounds(),
		Altitude:     system.GroundClearance(pose, s.terrain),
		Obstacles:    s.field.Obstacles(),
		Field:        s.field.State(),
		Leaderboard:  s.state.Leaderboard.Entries(),
		LastCrash:    s.state.LastCrash,
		NewHighScore: s.state.NewHighScore,
	}
}
