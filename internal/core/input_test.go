package core

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-pong/internal/physics"
)

func TestInputFrameDirection(t *testing.T) {
	tests := []struct {
		name     string
		actions  []Action
		expected physics.Direction
	}{
		{"empty", nil, physics.DirectionNone},
		{"up", []Action{ActionUp}, physics.DirectionUp},
		{"down", []Action{ActionDown}, physics.DirectionDown},
		{"both prefers up", []Action{ActionDown, ActionUp}, physics.DirectionUp},
		{"unrelated", []Action{ActionPause}, physics.DirectionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tc.actions {
				f.Set(a)
			}
			if got := f.Direction(); got != tc.expected {
				t.Errorf("Direction() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionUp) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionUp)
	if !f.Has(ActionUp) {
		t.Error("Set on zero frame should work")
	}
	f.Clear()
	if f.Has(ActionUp) {
		t.Error("Clear should remove actions")
	}
}

func TestSeatInput(t *testing.T) {
	in := NewSeatInput()
	in.Set(physics.SideLeft, ActionUp)
	in.Set(physics.SideRight, ActionDown)

	if in.Side(physics.SideLeft).Direction() != physics.DirectionUp {
		t.Error("left seat should be Up")
	}
	if in.Side(physics.SideRight).Direction() != physics.DirectionDown {
		t.Error("right seat should be Down")
	}

	in.Clear()
	if in.Side(physics.SideLeft).Direction() != physics.DirectionNone {
		t.Error("Clear should reset the left seat")
	}
	if in.Side(physics.SideNone).Has(ActionUp) {
		t.Error("unknown side should return an empty frame")
	}
}

func TestActionString(t *testing.T) {
	if ActionUp.String() != "Up" || ActionQuit.String() != "Quit" || Action(99).String() != "Unknown" {
		t.Error("unexpected Action names")
	}
}

func TestStepDelta(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name     string
		elapsed  time.Duration
		expected float64
	}{
		{"nominal", 16 * time.Millisecond, 0.016},
		{"spike capped", time.Second, 0.05},
		{"zero uses tick", 0, 1.0 / 60},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := cfg.StepDelta(tc.elapsed)
			if diff := got - tc.expected; diff > 1e-6 || diff < -1e-6 {
				t.Errorf("StepDelta(%v) = %f, expected %f", tc.elapsed, got, tc.expected)
			}
		})
	}
}
