package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/physics"
	"github.com/vovakirdan/tui-pong/internal/registry"
	"github.com/vovakirdan/tui-pong/internal/round"
)

// roundFactory returns a constructor for rounds on field with cfg's tunables.
func roundFactory(cfg config.PongConfig, field round.Playfield, logger *log.Logger) func(seed int64) *round.Controller {
	return func(seed int64) *round.Controller {
		return round.New(field,
			round.NewLaunchSampler(seed, cfg.Launch.MinDeg),
			round.WithLayout(cfg.Layout()),
			round.WithLogger(logger),
		)
	}
}

// createPlayers instantiates the players for both seats.
func createPlayers(cfg config.PongConfig, leftID, rightID string) (registry.Player, registry.Player, error) {
	settings := registry.Settings{
		Deadband:   cfg.AI.Deadband,
		HoldFrames: cfg.Loop.HoldFrames,
	}
	left, err := registry.Create(leftID, settings)
	if err != nil {
		return nil, nil, err
	}
	right, err := registry.Create(rightID, settings)
	if err != nil {
		return nil, nil, err
	}
	return left, right, nil
}

// resolveSeed returns the --seed flag, or a time-based seed when unset.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// printState prints the end state of a round.
func printState(ctrl *round.Controller) {
	ball := ctrl.Ball()
	left, right := ctrl.Points()
	fmt.Printf("  Frames:   %d\n", ctrl.Frames())
	fmt.Printf("  Field:    %.3f x %.3f\n", ctrl.Field().HalfWidth*2, ctrl.Field().HalfHeight*2)
	fmt.Printf("  Ball:     pos (%.4f, %.4f) vel (%.4f, %.4f)\n",
		ball.Position().X, ball.Position().Y, ball.Velocity().X, ball.Velocity().Y)
	fmt.Printf("  Paddles:  left y=%.4f right y=%.4f\n",
		ctrl.Paddle(physics.SideLeft).Position().Y, ctrl.Paddle(physics.SideRight).Position().Y)
	fmt.Printf("  Points:   %d - %d\n", left, right)
}
