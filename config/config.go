package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/lixenwraith/sky-dodger/logging"
	"github.com/lixenwraith/sky-dodger/parameter"
	"github.com/lixenwraith/sky-dodger/physics"
	"github.com/lixenwraith/sky-dodger/score"
	"github.com/lixenwraith/sky-dodger/system"
)

// EnvPrefix namespaces environment overrides, e.g. SKYDODGER_FLIGHT_MAX_SPEED
const EnvPrefix = "SKYDODGER"

// TerrainConfig sizes the ground mesh and its decorations
type TerrainConfig struct {
	Seed           int64   `mapstructure:"seed"`
	MeshSize       float64 `mapstructure:"mesh_size"`
	MeshResolution int     `mapstructure:"mesh_resolution"`
	TreeCount      int     `mapstructure:"tree_count"`
	RockCount      int     `mapstructure:"rock_count"`
}

type AudioConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Muted   bool `mapstructure:"muted"`
}

type InputConfig struct {
	HoldWindow time.Duration `mapstructure:"hold_window"`
}

// MetricsConfig turns on the in-process meter provider, totals are logged at exit
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type RenderConfig struct {
	FPS             int  `mapstructure:"fps"`
	Stars           bool `mapstructure:"stars"`
	ShowDecorations bool `mapstructure:"show_decorations"`
}

// Config is the full runtime configuration
type Config struct {
	Flight    physics.FlightConfig `mapstructure:"flight"`
	Obstacles system.FieldConfig   `mapstructure:"obstacles"`
	Terrain   TerrainConfig        `mapstructure:"terrain"`
	Scores    score.Config         `mapstructure:"scores"`
	Log       logging.Config       `mapstructure:"log"`
	Audio     AudioConfig          `mapstructure:"audio"`
	Input     InputConfig          `mapstructure:"input"`
	Render    RenderConfig         `mapstructure:"render"`
	Metrics   MetricsConfig        `mapstructure:"metrics"`
}

func setDefaults() {
	f := physics.DefaultFlightConfig()
	viper.SetDefault("flight.max_speed", f.MaxSpeed)
	viper.SetDefault("flight.lift_factor", f.LiftFactor)
	viper.SetDefault("flight.gravity", f.Gravity)
	viper.SetDefault("flight.drag_factor", f.DragFactor)
	viper.SetDefault("flight.rotation_speed", f.RotationSpeed)
	viper.SetDefault("flight.rotation_damping", f.RotationDamping)
	viper.SetDefault("flight.throttle_locked", f.ThrottleLocked)

	o := system.DefaultFieldConfig()
	viper.SetDefault("obstacles.initial_interval", o.InitialInterval)
	viper.SetDefault("obstacles.min_interval", o.MinInterval)
	viper.SetDefault("obstacles.interval_decay", o.IntervalDecay)
	viper.SetDefault("obstacles.initial_speed", o.InitialSpeed)
	viper.SetDefault("obstacles.max_speed", o.MaxSpeed)
	viper.SetDefault("obstacles.speed_growth", o.SpeedGrowth)
	viper.SetDefault("obstacles.spawn_distance", o.SpawnDistance)
	viper.SetDefault("obstacles.cull_margin", o.CullMargin)
	viper.SetDefault("obstacles.spawn_half_x", o.SpawnHalfX)
	viper.SetDefault("obstacles.spawn_half_y", o.SpawnHalfY)

	viper.SetDefault("terrain.seed", 0)
	viper.SetDefault("terrain.mesh_size", parameter.TerrainMeshSize)
	viper.SetDefault("terrain.mesh_resolution", parameter.TerrainMeshResolution)
	viper.SetDefault("terrain.tree_count", parameter.ScatterTreeCount)
	viper.SetDefault("terrain.rock_count", parameter.ScatterRockCount)

	viper.SetDefault("scores.backend", score.BackendFile)
	viper.SetDefault("scores.path", "sky-dodger-scores.yaml")

	viper.SetDefault("log.enabled", false)
	viper.SetDefault("log.dir", "logs")
	viper.SetDefault("log.level", "info")

	viper.SetDefault("audio.enabled", true)
	viper.SetDefault("audio.muted", false)

	viper.SetDefault("input.hold_window", parameter.InputHoldWindow)

	viper.SetDefault("render.fps", int(time.Second/parameter.FrameUpdateInterval))
	viper.SetDefault("render.stars", true)
	viper.SetDefault("render.show_decorations", true)

	viper.SetDefault("metrics.enabled", false)
}

// Load layers defaults, an optional config file and SKYDODGER_* environment overrides
// An empty path skips the file, a named file that cannot be read is an error
func Load(path string) (*Config, error) {
	setDefaults()

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every invalid field at once
func (c *Config) Validate() error {
	var errs []error
	if err := c.Flight.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.Obstacles.Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Terrain.MeshSize <= 0 {
		errs = append(errs, fmt.Errorf("terrain.mesh_size must be positive, got %v", c.Terrain.MeshSize))
	}
	if c.Terrain.MeshResolution < 1 {
		errs = append(errs, fmt.Errorf("terrain.mesh_resolution must be at least 1, got %d", c.Terrain.MeshResolution))
	}
	if c.Terrain.TreeCount < 0 || c.Terrain.RockCount < 0 {
		errs = append(errs, errors.New("terrain decoration counts must be non-negative"))
	}
	if !score.ValidBackend(c.Scores.Backend) {
		errs = append(errs, fmt.Errorf("scores.backend: unknown backend %q", c.Scores.Backend))
	}
	if c.Input.HoldWindow <= 0 {
		errs = append(errs, fmt.Errorf("input.hold_window must be positive, got %v", c.Input.HoldWindow))
	}
	if c.Render.FPS < 1 {
		errs = append(errs, fmt.Errorf("render.fps must be at least 1, got %d", c.Render.FPS))
	}
	return errors.Join(errs...)
}

// FrameInterval converts the configured FPS to a ticker period
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.Render.FPS)
}
