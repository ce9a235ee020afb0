package world

// TileKind is the static ground type of a grid cell.
type TileKind uint8

const (
	TileGrass TileKind = iota
	TileRoad
	TileFlower
)

// String returns the tile kind name.
func (k TileKind) String() string {
	switch k {
	case TileGrass:
		return "grass"
	case TileRoad:
		return "road"
	case TileFlower:
		return "flower"
	default:
		return "unknown"
	}
}

// Walkable reports whether the kind can be walked on. Only road is.
func (k TileKind) Walkable() bool {
	return k == TileRoad
}

// TileRect is a rectangle of whole tiles.
type TileRect struct {
	Col, Row int
	W, H     int
}

// Grid is the static tile map with its derived solidity.
type Grid struct {
	W, H  int
	kinds []TileKind
	solid []bool
}

func newGrid(w, h int) *Grid {
	return &Grid{
		W:     w,
		H:     h,
		kinds: make([]TileKind, w*h),
		solid: make([]bool, w*h),
	}
}

// InBounds reports whether (col, row) is inside the grid.
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.W && row >= 0 && row < g.H
}

// Kind returns the tile kind, grass when out of bounds.
func (g *Grid) Kind(col, row int) TileKind {
	if !g.InBounds(col, row) {
		return TileGrass
	}
	return g.kinds[row*g.W+col]
}

// paint fills r with kind, clipped to the grid.
func (g *Grid) paint(r TileRect, kind TileKind) {
	for row := r.Row; row < r.Row+r.H; row++ {
		for col := r.Col; col < r.Col+r.W; col++ {
			if g.InBounds(col, row) {
				g.kinds[row*g.W+col] = kind
			}
		}
	}
}

func (g *Grid) deriveSolid() {
	for i, k := range g.kinds {
		g.solid[i] = !k.Walkable()
	}
}
