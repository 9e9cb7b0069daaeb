package system

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/sky-dodger/component"
	"github.com/lixenwraith/sky-dodger/parameter"
	"github.com/lixenwraith/sky-dodger/vmath"
)

// FieldConfig holds the spawn ramp and placement constants
type FieldConfig struct {
	InitialInterval float64 `mapstructure:"initial_interval"`
	MinInterval     float64 `mapstructure:"min_interval"`
	IntervalDecay   float64 `mapstructure:"interval_decay"`
	InitialSpeed    float64 `mapstructure:"initial_speed"`
	MaxSpeed        float64 `mapstructure:"max_speed"`
	SpeedGrowth     float64 `mapstructure:"speed_growth"`
	SpawnDistance   float64 `mapstructure:"spawn_distance"`
	CullMargin      float64 `mapstructure:"cull_margin"`
	SpawnHalfX      float64 `mapstructure:"spawn_half_x"`
	SpawnHalfY      float64 `mapstructure:"spawn_half_y"`
}

func DefaultFieldConfig() FieldConfig {
	return FieldConfig{
		InitialInterval: parameter.ObstacleInitialInterval,
		MinInterval:     parameter.ObstacleMinInterval,
		IntervalDecay:   parameter.ObstacleIntervalDecay,
		InitialSpeed:    parameter.ObstacleInitialSpeed,
		MaxSpeed:        parameter.ObstacleMaxSpeed,
		SpeedGrowth:     parameter.ObstacleSpeedGrowth,
		SpawnDistance:   parameter.ObstacleSpawnDistance,
		CullMargin:      parameter.ObstacleCullMargin,
		SpawnHalfX:      parameter.ObstacleSpawnHalfX,
		SpawnHalfY:      parameter.ObstacleSpawnHalfY,
	}
}

// Validate enforces a ramp that tightens toward its floor and speeds up toward its ceiling
func (c FieldConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if !vmath.IsFinite(v) || v <= 0 {
			errs = append(errs, fmt.Errorf("obstacles.%s must be finite and positive, got %v", name, v))
		}
	}
	positive("initial_interval", c.InitialInterval)
	positive("min_interval", c.MinInterval)
	positive("initial_speed", c.InitialSpeed)
	positive("max_speed", c.MaxSpeed)
	positive("spawn_distance", c.SpawnDistance)

	nonNegative := func(name string, v float64) {
		if !vmath.IsFinite(v) || v < 0 {
			errs = append(errs, fmt.Errorf("obstacles.%s must be finite and non-negative, got %v", name, v))
		}
	}
	nonNegative("cull_margin", c.CullMargin)
	nonNegative("spawn_half_x", c.SpawnHalfX)
	nonNegative("spawn_half_y", c.SpawnHalfY)

	if !vmath.IsFinite(c.IntervalDecay) || c.IntervalDecay <= 0 || c.IntervalDecay > 1 {
		errs = append(errs, fmt.Errorf("obstacles.interval_decay must be in (0, 1], got %v", c.IntervalDecay))
	}
	if !vmath.IsFinite(c.SpeedGrowth) || c.SpeedGrowth < 1 {
		errs = append(errs, fmt.Errorf("obstacles.speed_growth must be >= 1, got %v", c.SpeedGrowth))
	}
	if c.InitialInterval < c.MinInterval {
		errs = append(errs, fmt.Errorf("obstacles.initial_interval %v below min_interval %v", c.InitialInterval, c.MinInterval))
	}
	if c.InitialSpeed > c.MaxSpeed {
		errs = append(errs, fmt.Errorf("obstacles.initial_speed %v above max_speed %v", c.InitialSpeed, c.MaxSpeed))
	}
	return errors.Join(errs...)
}

// FieldState is a comparable summary of the field's scalar state
type FieldState struct {
	Count    int
	Timer    float64
	Interval float64
	Speed    float64
}

// ObstacleField owns the live obstacle set and the spawn ramp
// Not safe for concurrent use, the simulation serializes access
type ObstacleField struct {
	cfg FieldConfig
	rng *vmath.FastRand

	obstacles []component.ObstacleComponent
	timer     float64
	interval  float64
	speed     float64
	nextID    uint64

	// OnSpawn is called with each new obstacle after placement
	OnSpawn func(component.ObstacleComponent)
}

// NewObstacleField validates cfg and returns an empty field
func NewObstacleField(cfg FieldConfig, rng *vmath.FastRand) (*ObstacleField, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("obstacle field config: %w", err)
	}
	if rng == nil {
		return nil, errors.New("obstacle field: nil rng")
	}
	f := &ObstacleField{cfg: cfg, rng: rng}
	f.Reset()
	return f, nil
}

// Reset clears all obstacles and restores the initial ramp
func (f *ObstacleField) Reset() {
	clear(f.obstacles)
	f.obstacles = f.obstacles[:0]
	f.timer = 0
	f.interval = f.cfg.InitialInterval
	f.speed = f.cfg.InitialSpeed
}

// Advance runs spawn, advance and cull for one tick
// Non-positive or non-finite dt leaves the field unchanged
func (f *ObstacleField) Advance(dt, aircraftZ float64) {
	if !vmath.IsFinite(dt) || dt <= 0 || !vmath.IsFinite(aircraftZ) {
		return
	}

	f.timer += dt
	if f.timer >= f.interval {
		f.SpawnAt(aircraftZ - f.cfg.SpawnDistance)
		f.timer = 0
		f.interval = max(f.cfg.MinInterval, f.interval*f.cfg.IntervalDecay)
		f.speed = min(f.cfg.MaxSpeed, f.speed*f.cfg.SpeedGrowth)
	}

	step := f.speed * dt
	limit := aircraftZ + f.cfg.CullMargin

	// Stable in-place compaction, survivors keep their order
	kept := f.obstacles[:0]
	for _, o := range f.obstacles {
		o.Position.Z += step
		if o.Position.Z > limit {
			continue
		}
		kept = append(kept, o)
	}
	clear(f.obstacles[len(kept):])
	f.obstacles = kept
}

// SpawnAt places one random obstacle at depth z without touching the timer or ramp
func (f *ObstacleField) SpawnAt(z float64) component.ObstacleComponent {
	kind := component.ShapeKind(f.rng.Intn(component.ShapeKindCount))
	o := shapeFactories[kind](f.rng)

	f.nextID++
	o.ID = f.nextID
	o.Position = vmath.Vec3F{
		X: f.rng.Range(-f.cfg.SpawnHalfX, f.cfg.SpawnHalfX),
		Y: f.rng.Range(-f.cfg.SpawnHalfY, f.cfg.SpawnHalfY),
		Z: z,
	}
	f.obstacles = append(f.obstacles, o)

	if f.OnSpawn != nil {
		f.OnSpawn(o.Clone())
	}
	return o.Clone()
}

// Obstacles returns a deep copy of the live set
func (f *ObstacleField) Obstacles() []component.ObstacleComponent {
	out := make([]component.ObstacleComponent, len(f.obstacles))
	for i := range f.obstacles {
		out[i] = f.obstacles[i].Clone()
	}
	return out
}

// Live exposes the live set for read-only iteration within the owning goroutine
func (f *ObstacleField) Live() []component.ObstacleComponent {
	return f.obstacles
}

func (f *ObstacleField) Len() int            { return len(f.obstacles) }
func (f *ObstacleField) Timer() float64      { return f.timer }
func (f *ObstacleField) Interval() float64   { return f.interval }
func (f *ObstacleField) Speed() float64      { return f.speed }
func (f *ObstacleField) Config() FieldConfig { return f.cfg }

func (f *ObstacleField) State() FieldState {
	return FieldState{
		Count:    len(f.obstacles),
		Timer:    f.timer,
		Interval: f.interval,
		Speed:    f.speed,
	}
}
