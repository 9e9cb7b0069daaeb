package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/sky-dodger/component"
	"github.com/lixenwraith/sky-dodger/physics"
	"github.com/lixenwraith/sky-dodger/terrain"
	"github.com/lixenwraith/sky-dodger/vmath"
)

func poseAt(x, y, z float64) physics.Pose {
	return physics.Pose{Position: vmath.Vec3F{X: x, Y: y, Z: z}}
}

func hullAt(p physics.Pose) vmath.AABB {
	return physics.AircraftHull().Translate(p.Position)
}

func TestGroundBoundary(t *testing.T) {
	hf := terrain.New(77)
	points := [][2]float64{{0, 0}, {120, -80}, {-250, 300}, {10, -400}}

	for _, xz := range points {
		h := hf.HeightAt(xz[0], xz[1])
		threshold := h + 15

		tests := []struct {
			name string
			y    float64
			want CollisionResult
		}{
			{"just below", math.Nextafter(threshold, math.Inf(-1)), CollisionGround},
			{"exactly at", threshold, CollisionNone},
			{"just above", math.Nextafter(threshold, math.Inf(1)), CollisionNone},
			{"well below", h + 10, CollisionGround},
		}
		for _, tt := range tests {
			p := poseAt(xz[0], tt.y, xz[1])
			got := CheckCollision(hullAt(p), p, hf, nil)
			assert.Equal(t, tt.want, got.Result, "%s at %v", tt.name, xz)
		}
	}
}

func TestGroundTestedBeforeObstacles(t *testing.T) {
	p := poseAt(0, 5, 0)
	obstacle := component.ObstacleComponent{
		ID:       3,
		Kind:     component.ShapeWall,
		Position: p.Position,
		Local:    vmath.BoxFromHalfExtents(10, 10, 10),
	}
	got := CheckCollision(hullAt(p), p, terrain.Flat{}, []component.ObstacleComponent{obstacle})
	assert.Equal(t, CollisionGround, got.Result)
}

func TestObstacleHit(t *testing.T) {
	p := poseAt(0, 50, 0)
	far := component.ObstacleComponent{
		ID: 1, Kind: component.ShapeRing,
		Position: vmath.Vec3F{Z: -500},
		Local:    vmath.BoxFromHalfExtents(30, 3, 30),
	}
	near := component.ObstacleComponent{
		ID: 2, Kind: component.ShapePoly,
		Position: vmath.Vec3F{X: 20, Y: 50, Z: -20},
		Local:    vmath.BoxFromHalfExtents(6, 6, 6),
	}

	got := CheckCollision(hullAt(p), p, terrain.Flat{}, []component.ObstacleComponent{far, near})
	assert.Equal(t, CollisionObstacle, got.Result)
	assert.Equal(t, uint64(2), got.ObstacleID)
	assert.Equal(t, component.ShapePoly, got.Kind)
	assert.True(t, got.Hit())
}

func TestObstacleMiss(t *testing.T) {
	p := poseAt(0, 50, 0)
	beside := component.ObstacleComponent{
		ID:       1,
		Position: vmath.Vec3F{X: 40, Y: 50, Z: 0},
		Local:    vmath.BoxFromHalfExtents(5, 5, 5),
	}
	got := CheckCollision(hullAt(p), p, terrain.Flat{}, []component.ObstacleComponent{beside})
	assert.Equal(t, CollisionNone, got.Result)
	assert.False(t, got.Hit())
}

func TestGroundClearance(t *testing.T) {
	assert.Equal(t, 42.0, GroundClearance(poseAt(1, 50, 2), terrain.Flat{Height: 8}))
}

func TestCollisionResultString(t *testing.T) {
	assert.Equal(t, "none", CollisionNone.String())
	assert.Equal(t, "ground", CollisionGround.String())
	assert.Equal(t, "obstacle", CollisionObstacle.String())
}
