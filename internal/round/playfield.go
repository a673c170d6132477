// Package round owns the per-frame policy around the physics core: update
// ordering, reset-on-score, the launch angle source, the tracker AI and the
// snapshots handed to renderers.
package round

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-pong/internal/geom"
)

// DefaultHalfHeight is the vertical half-extent of the field in world units.
const DefaultHalfHeight = 5.0

// CellAspect is the height-to-width ratio of a terminal cell.
const CellAspect = 2.0

// ErrFieldTooNarrow is returned when the paddles of a layout would not
// leave room for the ball between them.
var ErrFieldTooNarrow = errors.New("round: playfield too narrow")

// Playfield holds the half-extents of the field. It is fixed for the
// lifetime of a session.
type Playfield struct {
	HalfWidth  float64
	HalfHeight float64
}

// PlayfieldFromAspect derives the field from a display aspect ratio
// (width / height).
func PlayfieldFromAspect(aspect, halfHeight float64) Playfield {
	if halfHeight <= 0 {
		halfHeight = DefaultHalfHeight
	}
	if aspect <= 0 {
		aspect = 1
	}
	return Playfield{HalfWidth: halfHeight * aspect, HalfHeight: halfHeight}
}

// PlayfieldFromCells derives the field from a terminal size in cells,
// accounting for cells being taller than they are wide.
func PlayfieldFromCells(cols, rows int, halfHeight float64) Playfield {
	if cols <= 0 || rows <= 0 {
		return PlayfieldFromAspect(1, halfHeight)
	}
	return PlayfieldFromAspect(float64(cols)/(float64(rows)*CellAspect), halfHeight)
}

// Projection maps the field onto [-1, 1] x [-1, 1].
func (f Playfield) Projection() geom.Matrix3 {
	return geom.Ortho(f.HalfWidth, f.HalfHeight)
}

// MinHalfWidth is the narrowest half-width on which l keeps the served ball
// clear of both paddles and both scoring boundaries.
func (l Layout) MinHalfWidth() float64 {
	return l.PaddleInset + l.PaddleScale.X*0.5 + l.BallRadius
}

// Fits reports whether l can be played on f.
func (f Playfield) Fits(l Layout) error {
	if f.HalfWidth <= l.MinHalfWidth() {
		return fmt.Errorf("%w: half-width %.3f, need more than %.3f",
			ErrFieldTooNarrow, f.HalfWidth, l.MinHalfWidth())
	}
	return nil
}
