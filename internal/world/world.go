// Package world is the immutable map the journey takes place on: the tile
// grid, the barriers gating each section, the story trigger zones and the
// static decoration. The only state-dependent query is barrier solidity,
// which is a pure function of the current step.
package world

import (
	"fmt"
	"iter"
	"math"
	"slices"

	"github.com/vovakirdan/homeward/internal/content"
	"github.com/vovakirdan/homeward/internal/core"
)

// TriggerID identifies a trigger zone. It is the id of the place it opens.
type TriggerID = content.PlaceID

// Barrier blocks a column of road rows until progression passes it.
type Barrier struct {
	Col          int
	Rows         []int
	RequiredStep int

	mask []bool // indexed by row
}

// ActiveAt reports whether the barrier is solid at step.
func (b *Barrier) ActiveAt(step int) bool {
	return step <= b.RequiredStep
}

// Covers reports whether the barrier occupies (col, row).
func (b *Barrier) Covers(col, row int) bool {
	return col == b.Col && row >= 0 && row < len(b.mask) && b.mask[row]
}

// TriggerZone is a story rectangle in world units.
type TriggerZone struct {
	ID        TriggerID
	Rect      core.RectF
	StepIndex int
	Reward    content.ItemID
}

// ZoneLabel is the plaque naming a zone. Pos is the anchor in world units.
type ZoneLabel struct {
	Title string
	Date  string
	Pos   core.Vec
	Above bool
}

// ArrowGuide points the way to a step's zone, in world units.
type ArrowGuide struct {
	Road         []core.Vec
	Entrance     core.Vec
	EntranceDown bool
}

// World is built once by New and never mutated afterwards.
type World struct {
	id   string
	name string
	seed int64

	tile     float64
	grid     *Grid
	barriers []Barrier
	zones    []TriggerZone
	labels   []ZoneLabel
	arrows   []ArrowGuide
	decor    []Decoration

	playerSpawn  core.Vec
	pursuerSpawn core.Vec
}

// ID returns the registry id of the world.
func (w *World) ID() string { return w.id }

// Name returns the display name.
func (w *World) Name() string { return w.name }

// Seed returns the decoration seed the world was built with.
func (w *World) Seed() int64 { return w.seed }

// TileSize returns the edge of one tile in world units.
func (w *World) TileSize() float64 { return w.tile }

// Grid returns the static tile grid.
func (w *World) Grid() *Grid { return w.grid }

// Width returns the world width in world units.
func (w *World) Width() float64 { return float64(w.grid.W) * w.tile }

// Height returns the world height in world units.
func (w *World) Height() float64 { return float64(w.grid.H) * w.tile }

// Steps returns the number of story steps.
func (w *World) Steps() int { return len(w.zones) }

// PlayerSpawn returns where the player starts.
func (w *World) PlayerSpawn() core.Vec { return w.playerSpawn }

// PursuerSpawn returns where the pursuer starts.
func (w *World) PursuerSpawn() core.Vec { return w.pursuerSpawn }

// Barriers returns a copy of the barriers in gating order.
func (w *World) Barriers() []Barrier {
	out := slices.Clone(w.barriers)
	for i := range out {
		out[i].Rows = slices.Clone(out[i].Rows)
	}
	return out
}

// Zones returns every trigger zone in step order.
func (w *World) Zones() []TriggerZone { return slices.Clone(w.zones) }

// Labels returns one plaque per zone, in step order.
func (w *World) Labels() []ZoneLabel { return slices.Clone(w.labels) }

// Decorations returns the generated decoration sprites.
func (w *World) Decorations() []Decoration { return slices.Clone(w.decor) }

// Arrows returns the guidance for step, or false once every step is done.
func (w *World) Arrows(step int) (ArrowGuide, bool) {
	if step < 0 || step >= len(w.arrows) {
		return ArrowGuide{}, false
	}
	return w.arrows[step], true
}

// IsSolid reports whether the world point (x, y) blocks movement at step.
// Points outside the grid are solid.
func (w *World) IsSolid(x, y float64, step int) bool {
	col := int(math.Floor(x / w.tile))
	row := int(math.Floor(y / w.tile))
	return w.IsTileSolid(col, row, step)
}

// IsTileSolid is IsSolid in tile coordinates.
func (w *World) IsTileSolid(col, row, step int) bool {
	if !w.grid.InBounds(col, row) {
		return true
	}
	if w.grid.solid[row*w.grid.W+col] {
		return true
	}
	for i := range w.barriers {
		b := &w.barriers[i]
		if b.ActiveAt(step) && b.Covers(col, row) {
			return true
		}
	}
	return false
}

// TriggersAt yields the zones reachable at step, in table order.
func (w *World) TriggersAt(step int) iter.Seq[TriggerZone] {
	return func(yield func(TriggerZone) bool) {
		for _, z := range w.zones {
			if z.StepIndex != step {
				continue
			}
			if !yield(z) {
				return
			}
		}
	}
}

// Zone returns the zone with the given id.
func (w *World) Zone(id TriggerID) (TriggerZone, bool) {
	for _, z := range w.zones {
		if z.ID == id {
			return z, true
		}
	}
	return TriggerZone{}, false
}

// IsFinal reports whether z is the last zone of the journey.
func (w *World) IsFinal(z TriggerZone) bool {
	return z.StepIndex == len(w.zones)-1
}

// ValidationError describes a layout that cannot form a consistent world.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("world: [%s] %s", e.Code, e.Message)
}

func invalid(code, format string, args ...any) error {
	return &ValidationError{Code: code, Message: fmt.Sprintf(format, args...)}
}
