package world

import (
	"github.com/vovakirdan/homeward/internal/content"
	"github.com/vovakirdan/homeward/internal/core"
)

// Layout is the declarative description New turns into a World.
// Positions are in tiles unless a field says otherwise.
type Layout struct {
	ID   string
	Name string
	Seed int64

	Cols, Rows int
	Tile       int

	Roads    []TileRect
	Flowers  []TileRect
	Barriers []BarrierSpec
	Zones    []ZoneSpec

	PlayerSpawn  core.Vec // world units
	PursuerSpawn core.Vec // world units

	Bands  DecorBands
	Trees  []string
	Bushes []string
}

// BarrierSpec places one barrier.
type BarrierSpec struct {
	Col          int
	Rows         []int
	RequiredStep int
}

// ZoneSpec describes one story zone and everything drawn around it.
type ZoneSpec struct {
	Place    content.PlaceID
	Step     int
	Trigger  TileRect
	Label    LabelSpec
	Arrows   ArrowSpec
	Clearing Clearing
}

// LabelSpec anchors a zone plaque. Title and date come from the catalog.
type LabelSpec struct {
	Col, Row float64
	Above    bool
}

// ArrowSpec lists road arrows and the entrance marker, in fractional tiles.
type ArrowSpec struct {
	Road         []core.Vec
	Entrance     core.Vec
	EntranceDown bool
}

// New builds and validates a World. Content inconsistencies fail here so
// nothing downstream has to cope with them.
func New(l Layout, cat *content.Catalog) (*World, error) {
	if l.Cols <= 0 || l.Rows <= 0 || l.Tile <= 0 {
		return nil, invalid("BAD_GRID", "grid %dx%d with tile %d", l.Cols, l.Rows, l.Tile)
	}
	if cat == nil {
		return nil, invalid("NO_CATALOG", "layout %q needs a content catalog", l.ID)
	}

	w := &World{
		id:           l.ID,
		name:         l.Name,
		seed:         l.Seed,
		tile:         float64(l.Tile),
		grid:         newGrid(l.Cols, l.Rows),
		playerSpawn:  l.PlayerSpawn,
		pursuerSpawn: l.PursuerSpawn,
	}

	for _, r := range l.Roads {
		w.grid.paint(r, TileRoad)
	}
	for _, r := range l.Flowers {
		w.grid.paint(r, TileFlower)
	}
	w.grid.deriveSolid()

	if err := w.buildZones(l, cat); err != nil {
		return nil, err
	}
	if err := w.buildBarriers(l); err != nil {
		return nil, err
	}

	if w.IsSolid(l.PlayerSpawn.X, l.PlayerSpawn.Y, 0) {
		return nil, invalid("SPAWN_SOLID", "player spawn (%.0f, %.0f) is on a solid tile", l.PlayerSpawn.X, l.PlayerSpawn.Y)
	}
	if l.PursuerSpawn.X < 0 || l.PursuerSpawn.X > w.Width() || l.PursuerSpawn.Y < 0 || l.PursuerSpawn.Y > w.Height() {
		return nil, invalid("SPAWN_OUTSIDE", "pursuer spawn (%.0f, %.0f) is outside the world", l.PursuerSpawn.X, l.PursuerSpawn.Y)
	}

	clearings := make([]Clearing, len(l.Zones))
	for i, z := range l.Zones {
		clearings[i] = z.Clearing
	}
	w.decor = GenerateDecorations(NewLCG(l.Seed), DecorParams{
		Cols:      l.Cols,
		Tile:      l.Tile,
		Bands:     l.Bands,
		Clearings: clearings,
		Trees:     l.Trees,
		Bushes:    l.Bushes,
	})

	return w, nil
}

func (w *World) buildZones(l Layout, cat *content.Catalog) error {
	if len(l.Zones) == 0 {
		return invalid("NO_ZONES", "layout %q has no zones", l.ID)
	}
	tile := w.tile
	seen := make(map[TriggerID]bool, len(l.Zones))

	for i, z := range l.Zones {
		if z.Step != i {
			return invalid("STEP_ORDER", "zone %q has step %d at position %d", z.Place, z.Step, i)
		}
		if seen[z.Place] {
			return invalid("DUPLICATE_ZONE", "zone %q appears twice", z.Place)
		}
		seen[z.Place] = true

		place, ok := cat.Place(z.Place)
		if !ok {
			return invalid("UNKNOWN_PLACE", "zone %q has no place in the catalog", z.Place)
		}
		if _, ok := cat.Item(place.Reward); !ok {
			return invalid("UNKNOWN_REWARD", "place %q rewards unknown item %q", place.ID, place.Reward)
		}

		r := z.Trigger
		if r.W <= 0 || r.H <= 0 || !w.grid.InBounds(r.Col, r.Row) || !w.grid.InBounds(r.Col+r.W-1, r.Row+r.H-1) {
			return invalid("ZONE_OUTSIDE", "zone %q rectangle %+v is not inside the grid", z.Place, r)
		}

		w.zones = append(w.zones, TriggerZone{
			ID: z.Place,
			Rect: core.RectF{
				X: float64(r.Col) * tile,
				Y: float64(r.Row) * tile,
				W: float64(r.W) * tile,
				H: float64(r.H) * tile,
			},
			StepIndex: z.Step,
			Reward:    place.Reward,
		})
		w.labels = append(w.labels, ZoneLabel{
			Title: place.Title,
			Date:  place.Date,
			Pos:   core.Vec{X: z.Label.Col * tile, Y: z.Label.Row * tile},
			Above: z.Label.Above,
		})

		road := make([]core.Vec, len(z.Arrows.Road))
		for j, p := range z.Arrows.Road {
			road[j] = p.Scale(tile)
		}
		w.arrows = append(w.arrows, ArrowGuide{
			Road:         road,
			Entrance:     z.Arrows.Entrance.Scale(tile),
			EntranceDown: z.Arrows.EntranceDown,
		})
	}
	return nil
}

func (w *World) buildBarriers(l Layout) error {
	if len(l.Barriers) != len(l.Zones)-1 {
		return invalid("BARRIER_COUNT", "%d barriers for %d zones, expected %d", len(l.Barriers), len(l.Zones), len(l.Zones)-1)
	}
	for i, b := range l.Barriers {
		if b.RequiredStep != i {
			return invalid("BARRIER_ORDER", "barrier %d has threshold %d", i, b.RequiredStep)
		}
		if b.Col < 0 || b.Col >= w.grid.W || len(b.Rows) == 0 {
			return invalid("BARRIER_OUTSIDE", "barrier %d at column %d is not inside the grid", i, b.Col)
		}
		mask := make([]bool, w.grid.H)
		for _, row := range b.Rows {
			if row < 0 || row >= w.grid.H {
				return invalid("BARRIER_OUTSIDE", "barrier %d row %d is not inside the grid", i, row)
			}
			mask[row] = true
		}
		w.barriers = append(w.barriers, Barrier{
			Col:          b.Col,
			Rows:         append([]int(nil), b.Rows...),
			RequiredStep: b.RequiredStep,
			mask:         mask,
		})
	}
	return nil
}
