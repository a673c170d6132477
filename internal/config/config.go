// Package config provides YAML/TOML game configuration loading with
// embedded defaults and environment overrides.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-pong/internal/geom"
	"github.com/vovakirdan/tui-pong/internal/round"
)

// ErrInvalid is returned when a configuration fails validation.
var ErrInvalid = errors.New("config: invalid")

// PongConfig contains all tunables of a session.
type PongConfig struct {
	Physics PongPhysics `yaml:"physics" toml:"physics" envPrefix:"PHYSICS_"`
	Paddles PongPaddles `yaml:"paddles" toml:"paddles" envPrefix:"PADDLES_"`
	Field   PongField   `yaml:"field" toml:"field" envPrefix:"FIELD_"`
	AI      PongAI      `yaml:"ai" toml:"ai" envPrefix:"AI_"`
	Launch  PongLaunch  `yaml:"launch" toml:"launch" envPrefix:"LAUNCH_"`
	Loop    PongLoop    `yaml:"loop" toml:"loop" envPrefix:"LOOP_"`
}

// PongPhysics defines ball and paddle motion, in world units per second.
type PongPhysics struct {
	BallSpeed   float64 `yaml:"ball_speed" toml:"ball_speed" env:"BALL_SPEED"`
	PaddleSpeed float64 `yaml:"paddle_speed" toml:"paddle_speed" env:"PADDLE_SPEED"`
	BallRadius  float64 `yaml:"ball_radius" toml:"ball_radius" env:"BALL_RADIUS"`
}

// PongPaddles defines paddle geometry.
type PongPaddles struct {
	Width  float64 `yaml:"width" toml:"width" env:"WIDTH"`
	Height float64 `yaml:"height" toml:"height" env:"HEIGHT"`
	Inset  float64 `yaml:"inset" toml:"inset" env:"INSET"` // Distance of the paddle center from the side boundary
}

// PongField defines the playfield. The width follows from the display
// aspect ratio.
type PongField struct {
	HalfHeight float64 `yaml:"half_height" toml:"half_height" env:"HALF_HEIGHT"`
}

// PongAI defines the tracker paddle policy.
type PongAI struct {
	Deadband float64 `yaml:"deadband" toml:"deadband" env:"DEADBAND"`
}

// PongLaunch defines the launch angle sampler.
type PongLaunch struct {
	MinDeg int `yaml:"min_deg" toml:"min_deg" env:"MIN_DEG"` // Launches closer to horizontal are excluded
}

// PongLoop defines frame timing.
type PongLoop struct {
	MaxDeltaMS int `yaml:"max_delta_ms" toml:"max_delta_ms" env:"MAX_DELTA_MS"` // Cap on a single step
	HoldFrames int `yaml:"hold_frames" toml:"hold_frames" env:"HOLD_FRAMES"`    // Ticks a key press keeps a paddle moving
}

// MaxDelta returns the step cap as a duration.
func (l PongLoop) MaxDelta() time.Duration {
	return time.Duration(l.MaxDeltaMS) * time.Millisecond
}

// Layout converts the config into the round's reset layout.
func (c PongConfig) Layout() round.Layout {
	return round.Layout{
		PaddleScale: geom.Vec(c.Paddles.Width, c.Paddles.Height),
		PaddleInset: c.Paddles.Inset,
		BallRadius:  c.Physics.BallRadius,
		BallSpeed:   c.Physics.BallSpeed,
		PaddleSpeed: c.Physics.PaddleSpeed,
	}
}

// Validate checks that the config describes a playable field.
func (c PongConfig) Validate() error {
	switch {
	case c.Physics.BallSpeed <= 0:
		return fmt.Errorf("%w: physics.ball_speed must be positive", ErrInvalid)
	case c.Physics.PaddleSpeed <= 0:
		return fmt.Errorf("%w: physics.paddle_speed must be positive", ErrInvalid)
	case c.Physics.BallRadius <= 0:
		return fmt.Errorf("%w: physics.ball_radius must be positive", ErrInvalid)
	case c.Paddles.Width <= 0 || c.Paddles.Height <= 0:
		return fmt.Errorf("%w: paddles.width and paddles.height must be positive", ErrInvalid)
	case c.Field.HalfHeight <= 0:
		return fmt.Errorf("%w: field.half_height must be positive", ErrInvalid)
	case c.Paddles.Height > 2*c.Field.HalfHeight:
		return fmt.Errorf("%w: paddles.height %.2f exceeds the field height %.2f",
			ErrInvalid, c.Paddles.Height, 2*c.Field.HalfHeight)
	case c.Paddles.Inset < 0:
		return fmt.Errorf("%w: paddles.inset must not be negative", ErrInvalid)
	case c.AI.Deadband < 0:
		return fmt.Errorf("%w: ai.deadband must not be negative", ErrInvalid)
	case c.Launch.MinDeg < 0 || c.Launch.MinDeg >= 45:
		return fmt.Errorf("%w: launch.min_deg must be within [0, 45)", ErrInvalid)
	case c.Loop.MaxDeltaMS < 0 || c.Loop.HoldFrames < 0:
		return fmt.Errorf("%w: loop values must not be negative", ErrInvalid)
	}
	return nil
}
