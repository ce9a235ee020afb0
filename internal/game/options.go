package game

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/homeward/internal/config"
	"github.com/vovakirdan/homeward/internal/content"
)

// Option configures a Game.
type Option func(*Game)

// WithLogger routes progression events to l.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// WithDevice selects the pursuer speed for the input device.
func WithDevice(d config.Device) Option {
	return func(g *Game) {
		g.device = d
	}
}

// WithViewport sets the map viewport size in terminal cells.
func WithViewport(cols, rows int) Option {
	return func(g *Game) {
		g.viewCols, g.viewRows = cols, rows
	}
}

// WithCatalog supplies the lines used for the phone call.
func WithCatalog(c *content.Catalog) Option {
	return func(g *Game) {
		g.catalog = c
	}
}
