// Package journey is the shipped world: a 100x20 road with five story
// plazas, alternating above and below the road, each gated by a barrier.
package journey

import (
	"github.com/vovakirdan/homeward/internal/content"
	"github.com/vovakirdan/homeward/internal/core"
	"github.com/vovakirdan/homeward/internal/registry"
	"github.com/vovakirdan/homeward/internal/world"
)

const (
	ID          = "journey"
	Title       = "Homeward Journey"
	DefaultSeed = 42

	cols     = 100
	rows     = 20
	tileSize = 16

	roadTop    = 8
	roadBottom = 11
	section    = 20 // columns per story section
	plazaCol   = 7  // plaza start within a section
	plazaW     = 7
	plazaH     = 4
)

var places = []content.PlaceID{
	"eat_shawarma",
	"first_kiss",
	"visited_tetouan",
	"first_sleep_rabat",
	"final_house",
}

// entrance markers and the road arrows leading to each plaza, in tiles.
var guides = []world.ArrowSpec{
	{Road: []core.Vec{{X: 5, Y: 9.5}, {X: 7, Y: 9.5}}, Entrance: core.Vec{X: 10, Y: 7.5}},
	{Road: []core.Vec{{X: 18, Y: 9.5}, {X: 22, Y: 9.5}, {X: 26, Y: 9.5}}, Entrance: core.Vec{X: 30, Y: 11.5}, EntranceDown: true},
	{Road: []core.Vec{{X: 38, Y: 9.5}, {X: 42, Y: 9.5}, {X: 46, Y: 9.5}}, Entrance: core.Vec{X: 50, Y: 7.5}},
	{Road: []core.Vec{{X: 58, Y: 9.5}, {X: 62, Y: 9.5}, {X: 66, Y: 9.5}}, Entrance: core.Vec{X: 70, Y: 11.5}, EntranceDown: true},
	{Road: []core.Vec{{X: 78, Y: 9.5}, {X: 82, Y: 9.5}, {X: 86, Y: 9.5}}, Entrance: core.Vec{X: 90, Y: 7.5}},
}

func init() {
	registry.Register(ID, Title, New)
}

// Layout returns the journey layout for a seed. Zero means DefaultSeed.
func Layout(seed int64) world.Layout {
	if seed == 0 {
		seed = DefaultSeed
	}

	l := world.Layout{
		ID:   ID,
		Name: Title,
		Seed: seed,
		Cols: cols,
		Rows: rows,
		Tile: tileSize,

		Roads: []world.TileRect{{Col: 0, Row: roadTop, W: cols, H: roadBottom - roadTop + 1}},

		PlayerSpawn:  core.Vec{X: 3 * tileSize, Y: 10 * tileSize},
		PursuerSpawn: core.Vec{X: 1 * tileSize, Y: 10 * tileSize},

		Bands: world.DecorBands{
			BorderTop:     0,
			BorderBottom:  17,
			TreesAbove:    2,
			TreesBelow:    13,
			BushesAbove:   6,
			BushesBelow:   12,
			ClearingAbove: 2,
			ClearingBelow: 16,
		},
		Trees:  []string{"tree1", "tree2", "tree3", "tree4"},
		Bushes: []string{"bush1", "bush2", "bush3", "bush5"},
	}

	roadRows := make([]int, 0, roadBottom-roadTop+1)
	for r := roadTop; r <= roadBottom; r++ {
		roadRows = append(roadRows, r)
	}

	for i, place := range places {
		start := i*section + plazaCol
		above := i%2 == 0

		plazaRow, flowerRow, triggerRow, labelRow := roadBottom+1, 14, 12, 16.0
		if above {
			plazaRow, flowerRow, triggerRow, labelRow = roadTop-plazaH, 4, 4, 3
		}

		l.Roads = append(l.Roads, world.TileRect{Col: start, Row: plazaRow, W: plazaW, H: plazaH})
		l.Flowers = append(l.Flowers,
			world.TileRect{Col: start - 2, Row: flowerRow, W: 2, H: 2},
			world.TileRect{Col: start + plazaW, Row: flowerRow, W: 2, H: 2},
		)

		l.Zones = append(l.Zones, world.ZoneSpec{
			Place:    place,
			Step:     i,
			Trigger:  world.TileRect{Col: start + 1, Row: triggerRow, W: 4, H: 3},
			Label:    world.LabelSpec{Col: float64(start + 3), Row: labelRow, Above: above},
			Arrows:   guides[i],
			Clearing: world.Clearing{Start: start - 2, End: start + plazaW + 2, Above: above},
		})

		if i < len(places)-1 {
			l.Barriers = append(l.Barriers, world.BarrierSpec{
				Col:          (i+1)*section - 1,
				Rows:         roadRows,
				RequiredStep: i,
			})
		}
	}

	return l
}

// New builds the journey world with the embedded content catalog.
func New(seed int64) (*world.World, error) {
	cat, err := content.Default()
	if err != nil {
		return nil, err
	}
	return world.New(Layout(seed), cat)
}
