package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/geom"
	"github.com/vovakirdan/tui-pong/internal/round"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '┃'
)

// Net layout: segment count and size in world units.
const (
	netSegments = 11
	netWidth    = 0.25
	netHeight   = 0.45
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorBall:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorLeft:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorRight:   lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorNet:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorText:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
}

// DrawSnapshot rasterises a round snapshot onto dst.
func DrawSnapshot(dst *core.Screen, s round.Snapshot) {
	dst.Clear()

	for _, mp := range NetTransforms(s.Field) {
		dst.Raster(mp, core.ShapeBox, NetChar, core.ColorNet)
	}

	dst.Raster(s.Left.MP, core.ShapeBox, PaddleChar, core.ColorLeft)
	dst.Raster(s.Right.MP, core.ShapeBox, PaddleChar, core.ColorRight)
	dst.Raster(s.Ball.MP, core.ShapeCircle, BallChar, core.ColorBall)

	centerX := dst.Width() / 2
	left := fmt.Sprintf("%d", s.PointsLeft)
	dst.DrawText(centerX-3-len(left), 0, left, core.ColorText)
	dst.DrawText(centerX+3, 0, fmt.Sprintf("%d", s.PointsRight), core.ColorText)
}

// NetTransforms returns the model-projection transforms of the center line
// segments, spread evenly over the field height.
func NetTransforms(f round.Playfield) []geom.Matrix3 {
	proj := f.Projection()
	step := f.HalfHeight * 2 / netSegments
	out := make([]geom.Matrix3, 0, netSegments)
	for i := 0; i < netSegments; i++ {
		y := step*0.5 - f.HalfHeight + step*float64(i)
		model := geom.Compose(geom.Vec(0, y), geom.Vec(netWidth, netHeight))
		out = append(out, model.Mul(proj))
	}
	return out
}

// DrawMessage draws a boxed message in the center of the screen.
func DrawMessage(dst *core.Screen, title, subtitle string) {
	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2
	box := core.NewRect(boxX, boxY, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorText)
	dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, core.ColorText)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle, core.ColorDefault)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, yn := 0, s.Height(); y < yn; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
