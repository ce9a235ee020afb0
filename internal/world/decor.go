package world

import "github.com/vovakirdan/homeward/internal/core"

// DecorKind is the class of a decoration sprite.
type DecorKind uint8

const (
	DecorTree DecorKind = iota
	DecorBush
)

// Decoration is a draw-only sprite rectangle in world units.
type Decoration struct {
	Kind  DecorKind
	Asset string
	Rect  core.RectF
}

// Clearing is a column range kept free of scattered decoration around a zone.
// Above marks zones that sit above the road.
type Clearing struct {
	Start, End int
	Above      bool
}

func (c Clearing) contains(col int) bool {
	return col >= c.Start && col <= c.End
}

// DecorBands are the first rows of each decoration band.
type DecorBands struct {
	BorderTop     int // border trees, spread 2 rows
	BorderBottom  int
	TreesAbove    int // scattered trees, spread 4 rows
	TreesBelow    int
	BushesAbove   int // roadside bushes, spread 2 rows
	BushesBelow   int
	ClearingAbove int // bushes around zone plazas, spread 2 rows
	ClearingBelow int
}

// DecorParams drives GenerateDecorations.
type DecorParams struct {
	Cols, Tile int
	Bands      DecorBands
	Clearings  []Clearing
	Trees      []string
	Bushes     []string
}

func (p DecorParams) nearZone(col int) bool {
	for _, c := range p.Clearings {
		if c.contains(col) {
			return true
		}
	}
	return false
}

// GenerateDecorations places trees and bushes. The draw order of rng calls is
// fixed, so a given seed always yields the same layout.
func GenerateDecorations(rng *LCG, p DecorParams) []Decoration {
	if len(p.Trees) == 0 || len(p.Bushes) == 0 {
		return nil
	}
	t := p.Tile
	var out []Decoration

	tree := func(x, y, w, h int, asset string) {
		out = append(out, Decoration{
			Kind:  DecorTree,
			Asset: asset,
			Rect:  core.RectF{X: float64(x), Y: float64(y), W: float64(w), H: float64(h)},
		})
	}
	bush := func(x, y, w, h int, asset string) {
		out = append(out, Decoration{
			Kind:  DecorBush,
			Asset: asset,
			Rect:  core.RectF{X: float64(x), Y: float64(y), W: float64(w), H: float64(h)},
		})
	}

	for _, band := range []int{p.Bands.BorderTop, p.Bands.BorderBottom} {
		for col := 0; col < p.Cols; col += 3 {
			asset := p.Trees[rng.Intn(len(p.Trees))]
			w := 32 + rng.Intn(16)
			h := 40 + rng.Intn(24)
			x := col*t + rng.Intn(8)
			y := (band + rng.Intn(2)) * t
			tree(x, y, w, h, asset)
		}
	}

	for _, band := range []int{p.Bands.TreesAbove, p.Bands.TreesBelow} {
		for col := 2; col < p.Cols-2; col += 4 {
			if p.nearZone(col) {
				continue
			}
			if rng.Float() > 0.7 {
				continue
			}
			asset := p.Trees[rng.Intn(len(p.Trees))]
			x := col*t + rng.Intn(16)
			y := (band + rng.Intn(4)) * t
			w := 36 + rng.Intn(16)
			h := 44 + rng.Intn(20)
			tree(x, y, w, h, asset)
		}
	}

	for col := 1; col < p.Cols-1; col += 2 {
		if p.nearZone(col) {
			continue
		}
		if rng.Float() > 0.5 {
			continue
		}
		asset := p.Bushes[rng.Intn(len(p.Bushes))]
		above := rng.Float() > 0.5
		x := col*t + rng.Intn(8)
		var y int
		if above {
			y = (p.Bands.BushesAbove + rng.Intn(2)) * t
		} else {
			y = (p.Bands.BushesBelow + rng.Intn(2)) * t
		}
		w := 20 + rng.Intn(12)
		h := 14 + rng.Intn(8)
		bush(x, y, w, h, asset)
	}

	for _, c := range p.Clearings {
		for i := 0; i < 4; i++ {
			asset := p.Bushes[rng.Intn(len(p.Bushes))]
			col := c.Start + rng.Intn(c.End-c.Start)
			var y int
			if c.Above {
				y = (p.Bands.ClearingAbove + rng.Intn(2)) * t
			} else {
				y = (p.Bands.ClearingBelow + rng.Intn(2)) * t
			}
			w := 22 + rng.Intn(10)
			h := 14 + rng.Intn(8)
			bush(col*t, y, w, h, asset)
		}
	}

	return out
}
