// Package config provides YAML-based configuration loading and validation
// for the flappy simulation.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config contains all tunable parameters of the simulation.
// Values are immutable once an engine is built from them.
type Config struct {
	Board   Board   `yaml:"board"`
	Bird    Bird    `yaml:"bird"`
	Physics Physics `yaml:"physics"`
	Pipes   Pipes   `yaml:"pipes"`
	Timing  Timing  `yaml:"timing"`
	Scoring Scoring `yaml:"scoring"`
}

// Board defines the playfield size in pixels.
type Board struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Bird defines the avatar hitbox.
type Bird struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Physics defines per-tick integer motion parameters.
type Physics struct {
	Gravity      int `yaml:"gravity"`       // Added to vertical velocity every tick
	JumpImpulse  int `yaml:"jump_impulse"`  // Velocity set by a jump (negative = up)
	PipeVelocity int `yaml:"pipe_velocity"` // Horizontal pipe movement per tick (negative = left)
}

// Pipes defines obstacle geometry.
type Pipes struct {
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
	Opening int `yaml:"opening"` // Vertical gap between top and bottom pipe
}

// Timing defines the external clock cadence.
type Timing struct {
	TickRate      int           `yaml:"tick_rate"`      // Simulation ticks per second
	SpawnInterval time.Duration `yaml:"spawn_interval"` // Time between pipe pair spawns
}

// Scoring defines how points are awarded.
type Scoring struct {
	PerPair float64 `yaml:"per_pair"` // Points added when a pipe pair is passed
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Board: Board{Width: 360, Height: 640},
		Bird:  Bird{Width: 34, Height: 24},
		Physics: Physics{
			Gravity:      1,
			JumpImpulse:  -9,
			PipeVelocity: -4,
		},
		Pipes: Pipes{
			Width:   64,
			Height:  512,
			Opening: 640 / 4,
		},
		Timing: Timing{
			TickRate:      60,
			SpawnInterval: 1500 * time.Millisecond,
		},
		Scoring: Scoring{PerPair: 0.5},
	}
}

// TickInterval returns the duration of one simulation tick.
func (c Config) TickInterval() time.Duration {
	if c.Timing.TickRate <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.Timing.TickRate)
}

// SpawnEveryTicks returns the spawn interval expressed in whole ticks, rounded
// to the nearest tick and never less than one.
func (c Config) SpawnEveryTicks() int {
	tick := c.TickInterval()
	if tick <= 0 {
		return 1
	}
	n := int((c.Timing.SpawnInterval + tick/2) / tick)
	if n < 1 {
		n = 1
	}
	return n
}

// BirdStart returns the avatar's initial top-left position.
func (c Config) BirdStart() (x, y int) {
	return c.Board.Width / 8, c.Board.Height / 2
}

// Validate checks every rule and returns all violations joined together.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Board.Width > 0 && c.Board.Height > 0, "board size must be positive, got %dx%d", c.Board.Width, c.Board.Height)
	check(c.Bird.Width > 0 && c.Bird.Height > 0, "bird size must be positive, got %dx%d", c.Bird.Width, c.Bird.Height)
	check(c.Pipes.Width > 0 && c.Pipes.Height > 0, "pipe size must be positive, got %dx%d", c.Pipes.Width, c.Pipes.Height)
	check(c.Pipes.Height >= 2, "pipe height must be at least 2, got %d", c.Pipes.Height)
	check(c.Pipes.Opening > 0 && c.Pipes.Opening < c.Board.Height,
		"pipe opening must be in (0, %d), got %d", c.Board.Height, c.Pipes.Opening)
	check(c.Physics.Gravity > 0, "gravity must be positive, got %d", c.Physics.Gravity)
	check(c.Physics.JumpImpulse < 0, "jump impulse must be negative, got %d", c.Physics.JumpImpulse)
	check(c.Physics.PipeVelocity < 0, "pipe velocity must be negative, got %d", c.Physics.PipeVelocity)
	check(c.Timing.TickRate > 0, "tick rate must be positive, got %d", c.Timing.TickRate)
	check(c.Timing.SpawnInterval > 0, "spawn interval must be positive, got %s", c.Timing.SpawnInterval)
	check(c.Scoring.PerPair >= 0, "per-pair score must not be negative, got %g", c.Scoring.PerPair)

	return errors.Join(errs...)
}
