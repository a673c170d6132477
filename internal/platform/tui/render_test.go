package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/round"
)

func snapshotScreen(t *testing.T) (*core.Screen, round.Snapshot) {
	t.Helper()
	field := round.PlayfieldFromCells(80, 24, round.DefaultHalfHeight)
	ctrl := round.New(field, round.AngleFunc(func() float64 { return 0 }))
	s := core.NewScreen(80, 24)
	snap := ctrl.Snapshot()
	DrawSnapshot(s, snap)
	return s, snap
}

func TestNetTransforms(t *testing.T) {
	field := round.PlayfieldFromCells(80, 24, round.DefaultHalfHeight)
	mps := NetTransforms(field)
	if len(mps) != netSegments {
		t.Fatalf("NetTransforms() returned %d segments, expected %d", len(mps), netSegments)
	}

	first := mps[0].Position()
	last := mps[len(mps)-1].Position()
	if first.Y >= last.Y {
		t.Errorf("segments not ordered bottom to top: first %v, last %v", first, last)
	}
}

func TestDrawSnapshotEntities(t *testing.T) {
	s, _ := snapshotScreen(t)

	counts := map[rune]int{}
	for y, yn := 0, s.Height(); y < yn; y++ {
		for x, xn := 0, s.Width(); x < xn; x++ {
			counts[s.Get(x, y)]++
		}
	}
	if counts[BallChar] == 0 {
		t.Error("ball not drawn")
	}
	if counts[PaddleChar] == 0 {
		t.Error("paddles not drawn")
	}
	if counts[NetChar] == 0 {
		t.Error("net not drawn")
	}
}

func TestDrawSnapshotPaddleColors(t *testing.T) {
	s, _ := snapshotScreen(t)

	var left, right bool
	for y, yn := 0, s.Height(); y < yn; y++ {
		for x, xn := 0, s.Width(); x < xn; x++ {
			c := s.GetCell(x, y)
			if c.Rune != PaddleChar {
				continue
			}
			switch c.Color {
			case core.ColorLeft:
				left = true
				if x >= s.Width()/2 {
					t.Errorf("left paddle cell at x=%d, right half of screen", x)
				}
			case core.ColorRight:
				right = true
				if x < s.Width()/2 {
					t.Errorf("right paddle cell at x=%d, left half of screen", x)
				}
			}
		}
	}
	if !left || !right {
		t.Errorf("paddles drawn: left=%v right=%v", left, right)
	}
}

func TestDrawSnapshotPoints(t *testing.T) {
	s, _ := snapshotScreen(t)
	if !strings.Contains(s.Row(0), "0") {
		t.Errorf("top row %q does not show points", s.Row(0))
	}
}

func TestDrawMessage(t *testing.T) {
	s := core.NewScreen(40, 12)
	DrawMessage(s, "PAUSED", "p to resume")

	found := false
	for y, yn := 0, s.Height(); y < yn; y++ {
		if strings.Contains(s.Row(y), "PAUSED") {
			found = true
		}
	}
	if !found {
		t.Errorf("message not drawn:\n%s", s.String())
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "hi", core.ColorText)

	out := RenderScreen(s)
	if !strings.Contains(out, "hi") {
		t.Errorf("RenderScreen() = %q, expected it to contain %q", out, "hi")
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("RenderScreen() has %d newlines, expected 1", strings.Count(out, "\n"))
	}
}
