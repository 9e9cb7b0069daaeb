package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/sky-dodger/vmath"
)

func newModel(t *testing.T) *FlightModel {
	t.Helper()
	m, err := NewFlightModel(DefaultFlightConfig())
	require.NoError(t, err)
	return m
}

func TestStepZeroDtIsNoop(t *testing.T) {
	m := newModel(t)
	m.Step(ControlInput{PitchUp: 1, YawLeft: 1}, 0.05)

	pose, vel := m.Pose(), m.Velocity()
	for _, dt := range []float64{0, -1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		got := m.Step(ControlInput{PitchUp: 1, RollRight: 1}, dt)
		assert.Equal(t, pose, got, "dt=%v", dt)
		assert.Equal(t, pose, m.Pose(), "dt=%v", dt)
		assert.Equal(t, vel, m.Velocity(), "dt=%v", dt)
	}
}

func TestStepLevelFlight(t *testing.T) {
	m := newModel(t)
	pose := m.Step(ControlInput{}, 1)

	// Forward at max speed, gravity then drag
	assert.InDelta(t, 0, pose.Position.X, 1e-12)
	assert.InDelta(t, 50-0.005*0.995, pose.Position.Y, 1e-12)
	assert.InDelta(t, -99.5, pose.Position.Z, 1e-12)
	assert.InDelta(t, -99.5, m.Velocity().Z, 1e-12)
}

func TestStepForwardProgressMonotonic(t *testing.T) {
	m := newModel(t)
	prevZ := m.Pose().Position.Z
	for i := 0; i < 100; i++ {
		z := m.Step(ControlInput{}, 1).Position.Z
		assert.Less(t, z, prevZ)
		prevZ = z
	}
}

func TestAngularDampingConverges(t *testing.T) {
	m := newModel(t)
	m.Step(ControlInput{PitchUp: 1, RollLeft: 1, YawRight: 1}, 0.1)
	require.NotZero(t, vmath.V3FMag(m.Pose().AngularVelocity))

	const eps = 1e-9
	converged := false
	for n := 0; n < 500; n++ {
		m.Step(ControlInput{}, 0.1)
		if vmath.V3FMag(m.Pose().AngularVelocity) < eps {
			converged = true
			break
		}
	}
	assert.True(t, converged)
}

func TestAngularSigns(t *testing.T) {
	tests := []struct {
		name string
		in   ControlInput
		want vmath.Vec3F
	}{
		{"pitch up", ControlInput{PitchUp: 1}, vmath.Vec3F{X: 1}},
		{"pitch down", ControlInput{PitchDown: 1}, vmath.Vec3F{X: -1}},
		{"yaw left", ControlInput{YawLeft: 1}, vmath.Vec3F{Y: 1}},
		{"yaw right", ControlInput{YawRight: 1}, vmath.Vec3F{Y: -1}},
		{"roll left", ControlInput{RollLeft: 1}, vmath.Vec3F{Z: 1}},
		{"roll right", ControlInput{RollRight: 1}, vmath.Vec3F{Z: -1}},
		{"opposed cancel", ControlInput{PitchUp: 1, PitchDown: 1}, vmath.Vec3F{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newModel(t)
			pose := m.Step(tt.in, 0.1)
			// ω = 1.5 * 0.1 then orientation += ω * 0.1
			assert.InDelta(t, tt.want.X*0.015, pose.Orientation.X, 1e-12)
			assert.InDelta(t, tt.want.Y*0.015, pose.Orientation.Y, 1e-12)
			assert.InDelta(t, tt.want.Z*0.015, pose.Orientation.Z, 1e-12)
		})
	}
}

func TestPitchUpClimbs(t *testing.T) {
	level, climbing := newModel(t), newModel(t)
	for i := 0; i < 30; i++ {
		level.Step(ControlInput{}, 0.05)
		climbing.Step(ControlInput{PitchUp: 1}, 0.05)
	}
	assert.Greater(t, climbing.Pose().Position.Y, level.Pose().Position.Y)
}

func TestYawLeftDriftsWest(t *testing.T) {
	m := newModel(t)
	for i := 0; i < 30; i++ {
		m.Step(ControlInput{YawLeft: 1}, 0.05)
	}
	assert.Less(t, m.Pose().Position.X, 0.0)
}

func TestInvalidInputIsInactive(t *testing.T) {
	bad := ControlInput{PitchUp: math.NaN(), RollLeft: -3, YawLeft: math.Inf(1)}
	assert.Equal(t, ControlInput{}, bad.Sanitized())
	assert.Equal(t, 1.0, ControlInput{PitchDown: 4}.Sanitized().PitchDown)

	a, b := newModel(t), newModel(t)
	assert.Equal(t, a.Step(ControlInput{}, 0.1), b.Step(bad, 0.1))
}

func TestThrottle(t *testing.T) {
	t.Run("locked ignores input", func(t *testing.T) {
		m := newModel(t)
		m.Step(ControlInput{Throttle: 0}, 1)
		assert.InDelta(t, -99.5, m.Velocity().Z, 1e-12)
	})

	t.Run("unlocked follows input", func(t *testing.T) {
		cfg := DefaultFlightConfig()
		cfg.ThrottleLocked = false
		m, err := NewFlightModel(cfg)
		require.NoError(t, err)
		m.Step(ControlInput{Throttle: 0.5}, 1)
		assert.InDelta(t, -49.75, m.Velocity().Z, 1e-12)
	})
}

func TestResetAndSetPosition(t *testing.T) {
	m := newModel(t)
	m.Step(ControlInput{PitchUp: 1}, 0.5)
	m.SetPosition(vmath.Vec3F{X: 1, Y: 2, Z: 3})
	assert.Equal(t, vmath.Vec3F{X: 1, Y: 2, Z: 3}, m.Pose().Position)
	assert.NotZero(t, m.Pose().Orientation.X)

	m.Reset(StartPose())
	assert.Equal(t, StartPose(), m.Pose())
	assert.Equal(t, vmath.Vec3F{}, m.Velocity())
}

func TestBoundsAtStart(t *testing.T) {
	m := newModel(t)
	b := m.Bounds()
	assert.Equal(t, vmath.Vec3F{X: -15, Y: 48, Z: -14}, b.Min)
	assert.Equal(t, vmath.Vec3F{X: 15, Y: 54, Z: 11}, b.Max)
}

func TestFlightConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultFlightConfig().Validate())

	cfg := DefaultFlightConfig()
	cfg.Gravity = -1
	cfg.DragFactor = 0
	cfg.RotationDamping = 1.5
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gravity")
	assert.Contains(t, err.Error(), "drag_factor")
	assert.Contains(t, err.Error(), "rotation_damping")

	_, err = NewFlightModel(cfg)
	assert.Error(t, err)
}
