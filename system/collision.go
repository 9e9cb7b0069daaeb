package system

import (
	"github.com/lixenwraith/sky-dodger/component"
	"github.com/lixenwraith/sky-dodger/parameter"
	"github.com/lixenwraith/sky-dodger/physics"
	"github.com/lixenwraith/sky-dodger/terrain"
	"github.com/lixenwraith/sky-dodger/vmath"
)

// CollisionResult classifies a collision check
type CollisionResult uint8

const (
	CollisionNone CollisionResult = iota
	CollisionGround
	CollisionObstacle
)

func (r CollisionResult) String() string {
	switch r {
	case CollisionNone:
		return "none"
	case CollisionGround:
		return "ground"
	case CollisionObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// Collision is the outcome of one check
type Collision struct {
	Result CollisionResult

	// ObstacleID and Kind identify the hit obstacle when Result is CollisionObstacle
	ObstacleID uint64
	Kind       component.ShapeKind
}

// Hit reports any collision
func (c Collision) Hit() bool {
	return c.Result != CollisionNone
}

// GroundClearance is the height above terrain below which the aircraft crashes
func GroundClearance(pose physics.Pose, ground terrain.Sampler) float64 {
	return pose.Position.Y - ground.HeightAt(pose.Position.X, pose.Position.Z)
}

// CheckCollision tests terrain first, then each obstacle until the first box overlap
func CheckCollision(aircraft vmath.AABB, pose physics.Pose, ground terrain.Sampler, obstacles []component.ObstacleComponent) Collision {
	h := ground.HeightAt(pose.Position.X, pose.Position.Z)
	if pose.Position.Y < h+parameter.GroundBuffer {
		return Collision{Result: CollisionGround}
	}

	for i := range obstacles {
		if aircraft.Intersects(obstacles[i].Bounds()) {
			return Collision{
				Result:     CollisionObstacle,
				ObstacleID: obstacles[i].ID,
				Kind:       obstacles[i].Kind,
			}
		}
	}
	return Collision{}
}
