// Package camera maps world units onto terminal cells: a viewport that
// follows the player without ever showing outside the world.
package camera

import (
	"math"

	"github.com/vovakirdan/homeward/internal/core"
)

// Projection is how many world units one terminal cell covers.
// Cells are about twice as tall as wide, so CellH is usually 2*CellW.
type Projection struct {
	CellW, CellH float64
}

// DefaultProjection shows a 16 unit tile as 4x2 cells.
var DefaultProjection = Projection{CellW: 4, CellH: 8}

// ViewSize returns the world extent of a cols x rows cell area.
func (p Projection) ViewSize(cols, rows int) (w, h float64) {
	return float64(cols) * p.CellW, float64(rows) * p.CellH
}

// Cells returns how many cells a world extent spans, rounded up.
func (p Projection) Cells(w, h float64) (cols, rows int) {
	return int(math.Ceil(w / p.CellW)), int(math.Ceil(h / p.CellH))
}

// Camera is the viewport rectangle in world units.
type Camera struct {
	X, Y float64
	W, H float64
}

// Follow centers a viewW x viewH viewport on target and clamps its origin
// to [0, worldW-viewW] x [0, worldH-viewH]. A viewport larger than the
// world is pinned at the origin.
func Follow(target core.Vec, viewW, viewH, worldW, worldH float64) Camera {
	x := target.X - viewW/2
	y := target.Y - viewH/2
	return Camera{
		X: math.Max(0, math.Min(worldW-viewW, x)),
		Y: math.Max(0, math.Min(worldH-viewH, y)),
		W: viewW,
		H: viewH,
	}
}

// Snap aligns the origin down to whole cells so sprites do not shimmer
// between neighbouring cells as the camera moves.
func (c Camera) Snap(p Projection) Camera {
	c.X = math.Floor(c.X/p.CellW) * p.CellW
	c.Y = math.Floor(c.Y/p.CellH) * p.CellH
	return c
}

// Rect returns the viewport as a rectangle.
func (c Camera) Rect() core.RectF {
	return core.RectF{X: c.X, Y: c.Y, W: c.W, H: c.H}
}

// ToScreen converts a world point to a cell position: (world - origin) / cell.
func (c Camera) ToScreen(p core.Vec, proj Projection) (int, int) {
	return int(math.Floor((p.X - c.X) / proj.CellW)), int(math.Floor((p.Y - c.Y) / proj.CellH))
}

// RectToScreen converts a world rectangle to the cell rectangle it covers.
func (c Camera) RectToScreen(r core.RectF, proj Projection) core.Rect {
	x0, y0 := c.ToScreen(core.Vec{X: r.X, Y: r.Y}, proj)
	x1 := int(math.Ceil((r.Right() - c.X) / proj.CellW))
	y1 := int(math.Ceil((r.Bottom() - c.Y) / proj.CellH))
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// VisibleTiles returns the half-open tile range [c0, c1) x [r0, r1)
// overlapping the viewport, widened by one tile on each side and clamped
// to a cols x rows grid.
func (c Camera) VisibleTiles(tile float64, cols, rows int) (c0, c1, r0, r1 int) {
	c0 = core.Max(0, int(math.Floor(c.X/tile))-1)
	c1 = core.Min(cols, int(math.Ceil((c.X+c.W)/tile))+1)
	r0 = core.Max(0, int(math.Floor(c.Y/tile))-1)
	r1 = core.Min(rows, int(math.Ceil((c.Y+c.H)/tile))+1)
	return c0, c1, r0, r1
}

// Intersects reports whether r overlaps the viewport.
func (c Camera) Intersects(r core.RectF) bool {
	return c.Rect().Intersects(r)
}
