// Package config loads the simulation settings of a feather2d world and its host program.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation error
var ErrInvalid = errors.New("invalid config")

// Config holds the world tunables and the host setup (spawn, loop, policies)
type Config struct {
	// Restitution is the bounciness used for every contact, in [0, 1]
	Restitution float64 `yaml:"restitution"`
	Substeps    int     `yaml:"substeps"`

	Container ContainerConfig `yaml:"container"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Loop      LoopConfig      `yaml:"loop"`

	// RemoveOnCollision clears every body on the first collision
	RemoveOnCollision bool `yaml:"remove_on_collision"`
	Sound             bool `yaml:"sound"`
}

// ContainerConfig describes the circle every body must stay inside
type ContainerConfig struct {
	Enabled     bool       `yaml:"enabled"`
	Radius      float64    `yaml:"radius"`
	Center      mgl64.Vec2 `yaml:"center,flow"`
	Velocity    mgl64.Vec2 `yaml:"velocity,flow"`
	InverseMass float64    `yaml:"inverse_mass"`
}

// SpawnConfig places Count circles on a ring, aimed at the center
type SpawnConfig struct {
	Count       int     `yaml:"count"`
	MinDistance float64 `yaml:"min_distance"`
	MaxDistance float64 `yaml:"max_distance"`
	// body radius = distance * RadiusScale
	RadiusScale float64 `yaml:"radius_scale"`
	Speed       float64 `yaml:"speed"`
	// 0 picks a random seed
	Seed uint64 `yaml:"seed"`
}

// LoopConfig drives the fixed timestep: dt = TimeScale / TicksPerSecond
type LoopConfig struct {
	TicksPerSecond int     `yaml:"ticks_per_second"`
	TimeScale      float64 `yaml:"time_scale"`
}

// Default returns the settings of the bouncing circles demo
func Default() Config {
	return Config{
		Restitution: 0.99,
		Substeps:    1,
		Container: ContainerConfig{
			Enabled:     true,
			Radius:      0.5,
			Center:      mgl64.Vec2{0, 0},
			Velocity:    mgl64.Vec2{1, 1},
			InverseMass: 5,
		},
		Spawn: SpawnConfig{
			Count:       20,
			MinDistance: 0.2,
			MaxDistance: 0.4,
			RadiusScale: 0.1,
			Speed:       1,
		},
		Loop: LoopConfig{
			TicksPerSecond: 60,
			TimeScale:      0.3,
		},
	}
}

// Load reads a YAML file on top of Default(). Unknown keys are rejected.
// An empty file yields Default().
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes YAML on top of Default() and validates the result
func Parse(data []byte) (Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Save writes the configuration as YAML
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}

	return nil
}

// Validate reports the first setting outside its domain
func (c Config) Validate() error {
	if !inRange(c.Restitution, 0, 1) {
		return fmt.Errorf("%w: restitution %v outside [0, 1]", ErrInvalid, c.Restitution)
	}
	if c.Substeps < 1 {
		return fmt.Errorf("%w: substeps %d, need at least 1", ErrInvalid, c.Substeps)
	}

	if c.Container.Enabled {
		if !(c.Container.Radius > 0) || math.IsInf(c.Container.Radius, 0) {
			return fmt.Errorf("%w: container radius %v, must be > 0", ErrInvalid, c.Container.Radius)
		}
		if !finiteNonNegative(c.Container.InverseMass) {
			return fmt.Errorf("%w: container inverse mass %v, must be >= 0", ErrInvalid, c.Container.InverseMass)
		}
	}

	if c.Spawn.Count < 0 {
		return fmt.Errorf("%w: spawn count %d", ErrInvalid, c.Spawn.Count)
	}
	if !(c.Spawn.MinDistance > 0) || !(c.Spawn.MaxDistance >= c.Spawn.MinDistance) {
		return fmt.Errorf("%w: spawn distance range [%v, %v)", ErrInvalid, c.Spawn.MinDistance, c.Spawn.MaxDistance)
	}
	if !(c.Spawn.RadiusScale > 0) {
		return fmt.Errorf("%w: spawn radius scale %v, must be > 0", ErrInvalid, c.Spawn.RadiusScale)
	}
	if !finiteNonNegative(c.Spawn.Speed) {
		return fmt.Errorf("%w: spawn speed %v", ErrInvalid, c.Spawn.Speed)
	}

	if c.Loop.TicksPerSecond < 1 {
		return fmt.Errorf("%w: ticks per second %d", ErrInvalid, c.Loop.TicksPerSecond)
	}
	if !(c.Loop.TimeScale > 0) || math.IsInf(c.Loop.TimeScale, 0) {
		return fmt.Errorf("%w: time scale %v, must be > 0", ErrInvalid, c.Loop.TimeScale)
	}

	return nil
}

// Timestep is the simulated time advanced per tick
func (c Config) Timestep() float64 {
	return c.Loop.TimeScale / float64(c.Loop.TicksPerSecond)
}

func inRange(v, min, max float64) bool {
	return v >= min && v <= max
}

func finiteNonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
}
