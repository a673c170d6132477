package core

import (
	"math"
	"strings"

	"github.com/vovakirdan/tui-pong/internal/geom"
)

// Cell is a single character on the screen.
type Cell struct {
	Rune  rune
	Color Color
}

// Shape selects the mesh a transform is applied to.
type Shape int

const (
	ShapeBox    Shape = iota // unit box spanning [-0.5, 0.5]
	ShapeCircle              // unit-radius circle around the origin
)

// Screen is a 2D character buffer. Games draw world-space meshes through
// their clip-space transforms; the platform turns the buffer into a string.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  max(width, 0),
		height: max(height, 0),
	}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions. Content is discarded.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = max(width, 0)
	s.height = max(height, 0)
	s.allocate()
	s.Clear()
}

// Clear fills the entire screen with blank cells.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' '}
		}
	}
}

// Set places a rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = Cell{Rune: r, Color: c}
}

// Get returns the rune at the given position, or a space when out of bounds.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' '}
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
func (s *Screen) DrawText(x, y int, text string, c Color) {
	i := 0
	for _, r := range text {
		s.Set(x+i, y, r, c)
		i++
	}
}

// DrawTextCentered draws text centered horizontally at row y.
func (s *Screen) DrawTextCentered(y int, text string, c Color) {
	x := (s.width - len([]rune(text))) / 2
	s.DrawText(x, y, text, c)
}

// DrawRect fills a rectangular area with the given rune.
func (s *Screen) DrawRect(r Rect, fill rune, c Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.Set(x, y, fill, c)
		}
	}
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(r Rect, c Color) {
	s.Set(r.X, r.Y, '┌', c)
	s.Set(r.Right()-1, r.Y, '┐', c)
	s.Set(r.X, r.Bottom()-1, '└', c)
	s.Set(r.Right()-1, r.Bottom()-1, '┘', c)

	for x := r.X + 1; x < r.Right()-1; x++ {
		s.Set(x, r.Y, '─', c)
		s.Set(x, r.Bottom()-1, '─', c)
	}
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		s.Set(r.X, y, '│', c)
		s.Set(r.Right()-1, y, '│', c)
	}
}

// ClipToCell maps a clip-space point ([-1, 1], +Y up) to the cell that
// contains it.
func (s *Screen) ClipToCell(p geom.Vector2) (int, int) {
	x := (p.X + 1) * 0.5 * float64(s.width)
	y := (1 - p.Y) * 0.5 * float64(s.height)
	return int(math.Floor(x)), int(math.Floor(y))
}

// cellToClip returns the clip-space center of cell (x, y).
func (s *Screen) cellToClip(x, y int) geom.Vector2 {
	return geom.Vector2{
		X: (float64(x)+0.5)/float64(s.width)*2 - 1,
		Y: 1 - (float64(y)+0.5)/float64(s.height)*2,
	}
}

// Raster fills every cell whose center falls inside the mesh mapped by mp,
// a model-projection transform. The cell under the mesh origin is always
// filled so small shapes stay visible.
func (s *Screen) Raster(mp geom.Matrix3, shape Shape, r rune, c Color) {
	if s.width == 0 || s.height == 0 {
		return
	}
	inv, ok := mp.Inverse()
	if !ok {
		return
	}

	extent := 0.5
	if shape == ShapeCircle {
		extent = 1
	}
	x0, y0 := s.ClipToCell(mp.Apply(geom.Vec(-extent, extent)))
	x1, y1 := s.ClipToCell(mp.Apply(geom.Vec(extent, -extent)))
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}

	for y := max(y0, 0); y <= min(y1, s.height-1); y++ {
		for x := max(x0, 0); x <= min(x1, s.width-1); x++ {
			m := inv.Apply(s.cellToClip(x, y))
			if insideMesh(shape, m) {
				s.Set(x, y, r, c)
			}
		}
	}

	cx, cy := s.ClipToCell(mp.Apply(geom.Vector2{}))
	cx = int(ClampF(float64(cx), 0, float64(s.width-1)))
	cy = int(ClampF(float64(cy), 0, float64(s.height-1)))
	s.Set(cx, cy, r, c)
}

func insideMesh(shape Shape, p geom.Vector2) bool {
	if shape == ShapeCircle {
		return p.X*p.X+p.Y*p.Y <= 1
	}
	return math.Abs(p.X) <= 0.5 && math.Abs(p.Y) <= 0.5
}

// String converts the screen buffer to plain text, one row per line.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
