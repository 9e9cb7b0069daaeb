package physics

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/sky-dodger/parameter"
	"github.com/lixenwraith/sky-dodger/vmath"
)

// ControlInput is one frame of pilot input, axes in [0, 1]
type ControlInput struct {
	PitchUp, PitchDown  float64
	RollLeft, RollRight float64
	YawLeft, YawRight   float64
	Throttle            float64
}

// Sanitized maps NaN, Inf and negative axes to 0 and clamps the rest to 1
func (in ControlInput) Sanitized() ControlInput {
	return ControlInput{
		PitchUp:   sanitizeAxis(in.PitchUp),
		PitchDown: sanitizeAxis(in.PitchDown),
		RollLeft:  sanitizeAxis(in.RollLeft),
		RollRight: sanitizeAxis(in.RollRight),
		YawLeft:   sanitizeAxis(in.YawLeft),
		YawRight:  sanitizeAxis(in.YawRight),
		Throttle:  sanitizeAxis(in.Throttle),
	}
}

func sanitizeAxis(v float64) float64 {
	if !vmath.IsFinite(v) || v <= 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// FlightConfig holds flight tuning, immutable once the model is built
type FlightConfig struct {
	MaxSpeed        float64 `mapstructure:"max_speed"`
	LiftFactor      float64 `mapstructure:"lift_factor"`
	Gravity         float64 `mapstructure:"gravity"`
	DragFactor      float64 `mapstructure:"drag_factor"`
	RotationSpeed   float64 `mapstructure:"rotation_speed"`
	RotationDamping float64 `mapstructure:"rotation_damping"`
	ThrottleLocked  bool    `mapstructure:"throttle_locked"`
}

func DefaultFlightConfig() FlightConfig {
	return FlightConfig{
		MaxSpeed:        parameter.FlightMaxSpeed,
		LiftFactor:      parameter.FlightLiftFactor,
		Gravity:         parameter.FlightGravity,
		DragFactor:      parameter.FlightDragFactor,
		RotationSpeed:   parameter.FlightRotationSpeed,
		RotationDamping: parameter.FlightRotationDamping,
		ThrottleLocked:  parameter.FlightThrottleLocked,
	}
}

// Validate checks every constant is finite and non-negative, drag and damping in (0, 1]
func (c FlightConfig) Validate() error {
	var errs []error
	check := func(name string, v float64) {
		if !vmath.IsFinite(v) || v < 0 {
			errs = append(errs, fmt.Errorf("flight.%s must be finite and non-negative, got %v", name, v))
		}
	}
	check("max_speed", c.MaxSpeed)
	check("lift_factor", c.LiftFactor)
	check("gravity", c.Gravity)
	check("rotation_speed", c.RotationSpeed)

	unit := func(name string, v float64) {
		if !vmath.IsFinite(v) || v <= 0 || v > 1 {
			errs = append(errs, fmt.Errorf("flight.%s must be in (0, 1], got %v", name, v))
		}
	}
	unit("drag_factor", c.DragFactor)
	unit("rotation_damping", c.RotationDamping)

	return errors.Join(errs...)
}

// Pose is the aircraft's kinematic state
// Orientation is Euler XYZ: X pitch, Y yaw, Z roll
type Pose struct {
	Position        vmath.Vec3F
	Orientation     vmath.Vec3F
	AngularVelocity vmath.Vec3F
}

// StartPose is the pose at session start and after restart
func StartPose() Pose {
	return Pose{
		Position: vmath.Vec3F{X: parameter.AircraftStartX, Y: parameter.AircraftStartY, Z: parameter.AircraftStartZ},
	}
}

// FlightModel integrates control input into the aircraft pose
// Velocity is re-derived from orientation every step, there is no horizontal inertia
type FlightModel struct {
	cfg      FlightConfig
	pose     Pose
	velocity vmath.Vec3F
	hull     vmath.AABB
}

// NewFlightModel validates cfg and returns a model at the start pose
func NewFlightModel(cfg FlightConfig) (*FlightModel, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("flight config: %w", err)
	}
	return &FlightModel{
		cfg:  cfg,
		pose: StartPose(),
		hull: AircraftHull(),
	}, nil
}

// AircraftHull is the aircraft's box in its own frame
func AircraftHull() vmath.AABB {
	return vmath.AABB{
		Min: vmath.Vec3F{X: parameter.HullMinX, Y: parameter.HullMinY, Z: parameter.HullMinZ},
		Max: vmath.Vec3F{X: parameter.HullMaxX, Y: parameter.HullMaxY, Z: parameter.HullMaxZ},
	}
}

func (m *FlightModel) Config() FlightConfig { return m.cfg }

func (m *FlightModel) Pose() Pose { return m.pose }

func (m *FlightModel) Velocity() vmath.Vec3F { return m.velocity }

func (m *FlightModel) Hull() vmath.AABB { return m.hull }

// Bounds returns the hull rotated by orientation and placed at position
func (m *FlightModel) Bounds() vmath.AABB {
	return vmath.RotatedBounds(m.hull, m.pose.Orientation).Translate(m.pose.Position)
}

// Reset places the aircraft at pose with zero velocity
func (m *FlightModel) Reset(pose Pose) {
	m.pose = pose
	m.velocity = vmath.Vec3F{}
}

// SetPosition moves the aircraft without touching orientation or velocity
func (m *FlightModel) SetPosition(p vmath.Vec3F) {
	m.pose.Position = p
}

// Step advances the model by dt seconds and returns the new pose
// Non-positive or non-finite dt leaves all state unchanged
func (m *FlightModel) Step(in ControlInput, dt float64) Pose {
	if !vmath.IsFinite(dt) || dt <= 0 {
		return m.pose
	}
	in = in.Sanitized()
	cfg := &m.cfg
	p := &m.pose

	// Angular accumulation: pitch up, roll left, yaw left are positive
	turn := cfg.RotationSpeed * dt
	p.AngularVelocity.X += (in.PitchUp - in.PitchDown) * turn
	p.AngularVelocity.Y += (in.YawLeft - in.YawRight) * turn
	p.AngularVelocity.Z += (in.RollLeft - in.RollRight) * turn

	p.Orientation = vmath.V3FAdd(p.Orientation, vmath.V3FScale(p.AngularVelocity, dt))
	p.AngularVelocity = vmath.V3FScale(p.AngularVelocity, cfg.RotationDamping)

	throttle := 1.0
	if !cfg.ThrottleLocked {
		throttle = in.Throttle
	}
	forward := vmath.RotateEuler(vmath.Forward, p.Orientation)
	v := vmath.V3FScale(forward, throttle*cfg.MaxSpeed)

	v.Y -= cfg.Gravity * dt
	aoa := 1 - math.Cos(p.Orientation.X)
	v.Y += vmath.V3FMag(v) * aoa * cfg.LiftFactor * dt

	v = vmath.V3FScale(v, cfg.DragFactor)
	m.velocity = v

	p.Position = vmath.V3FAdd(p.Position, vmath.V3FScale(v, dt))
	return *p
}
