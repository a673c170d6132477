package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the built-in configuration. It mirrors the
// embedded defaults/pong.yaml.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Physics: PongPhysics{
			BallSpeed:   8.0,
			PaddleSpeed: 4.5,
			BallRadius:  0.25,
		},
		Paddles: PongPaddles{
			Width:  0.33,
			Height: 1.5,
			Inset:  0.5,
		},
		Field: PongField{
			HalfHeight: 5.0,
		},
		AI: PongAI{
			Deadband: 0.2,
		},
		Launch: PongLaunch{
			MinDeg: 5,
		},
		Loop: PongLoop{
			MaxDeltaMS: 50,
			HoldFrames: 8,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPongYAML
}
