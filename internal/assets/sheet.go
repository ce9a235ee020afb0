// Package assets holds the glyph sheet the renderer draws with. The sheet
// is YAML; the default one is embedded. Loading it is the readiness gate
// for the simulation.
package assets

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/homeward/internal/core"
	"github.com/vovakirdan/homeward/internal/world"
)

//go:embed data/glyphs.yaml
var defaultSheetYAML []byte

// Glyph is one colored rune.
type Glyph struct {
	Rune  rune
	Color core.Color
}

// Sprite is a rectangle of glyphs. Zero glyphs are transparent.
type Sprite struct {
	W, H  int
	cells []Glyph
}

// At returns the glyph at (x, y) of the sprite pattern.
func (s Sprite) At(x, y int) Glyph {
	if x < 0 || y < 0 || x >= s.W || y >= s.H {
		return Glyph{}
	}
	return s.cells[y*s.W+x]
}

// Sample maps a destination cell of a w x h rectangle onto the pattern.
func (s Sprite) Sample(x, y, w, h int) Glyph {
	if w <= 0 || h <= 0 || s.W == 0 || s.H == 0 {
		return Glyph{}
	}
	return s.At(x*s.W/w, y*s.H/h)
}

// PlayerGlyphs is the player's body (one glyph per facing) and legs.
type PlayerGlyphs struct {
	Color   core.Color
	Facings [8]rune
	Idle    rune
	Walk    []rune
}

// Legs returns the leg glyph for an animation frame.
func (p PlayerGlyphs) Legs(walking bool, frame int) rune {
	if !walking || len(p.Walk) == 0 {
		return p.Idle
	}
	return p.Walk[frame%len(p.Walk)]
}

// UI holds the overlay glyphs: trigger hearts, markers, guidance arrows.
type UI struct {
	Heart        Glyph
	Marker       Glyph
	Arrow        Glyph
	EntranceUp   Glyph
	EntranceDown Glyph
	Discovered   Glyph
	Pulse        Glyph
}

// Sheet is a parsed glyph sheet.
type Sheet struct {
	Name    string
	Ground  map[world.TileKind][2]Glyph
	Barrier Glyph
	Decor   map[string]Sprite
	Player  PlayerGlyphs
	Pursuer Sprite
	UI      UI
}

// GroundGlyph returns the tile glyph for kind, alternating shade by parity.
func (s *Sheet) GroundGlyph(kind world.TileKind, col, row int) Glyph {
	return s.Ground[kind][(col+row)%2]
}

// Check reports every decoration asset of w the sheet cannot draw.
func (s *Sheet) Check(w *world.World) error {
	var missing []string
	seen := make(map[string]bool)
	for _, d := range w.Decorations() {
		if _, ok := s.Decor[d.Asset]; ok || seen[d.Asset] {
			continue
		}
		seen[d.Asset] = true
		missing = append(missing, d.Asset)
	}
	if len(missing) > 0 {
		return fmt.Errorf("assets: sheet %q has no sprite for %s", s.Name, strings.Join(missing, ", "))
	}
	return nil
}

type rawGlyph struct {
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
}

type rawSprite struct {
	Rows   []string          `yaml:"rows"`
	Colors map[string]string `yaml:"colors"`
}

type rawSheet struct {
	Name    string                `yaml:"name"`
	Ground  map[string][]rawGlyph `yaml:"ground"`
	Barrier rawGlyph              `yaml:"barrier"`
	Decor   map[string]rawSprite  `yaml:"decor"`
	Player  struct {
		Color   string   `yaml:"color"`
		Facings []string `yaml:"facings"`
		Idle    string   `yaml:"idle"`
		Walk    []string `yaml:"walk"`
	} `yaml:"player"`
	Pursuer rawSprite           `yaml:"pursuer"`
	UI      map[string]rawGlyph `yaml:"ui"`
}

var groundKinds = map[string]world.TileKind{
	"grass":  world.TileGrass,
	"road":   world.TileRoad,
	"flower": world.TileFlower,
}

// Default parses the embedded sheet.
func Default() (*Sheet, error) {
	return Parse(defaultSheetYAML)
}

// Load reads the sheet at path, or the embedded one when path is empty.
func Load(path string) (*Sheet, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

// LoadFile reads and parses a sheet from disk. A leading ~ is expanded.
func LoadFile(path string) (*Sheet, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("assets: get home dir: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a glyph sheet. Every ground kind, the player and the
// pursuer must be present.
func Parse(data []byte) (*Sheet, error) {
	var raw rawSheet
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("assets: parse sheet: %w", err)
	}

	s := &Sheet{
		Name:   raw.Name,
		Ground: make(map[world.TileKind][2]Glyph, len(groundKinds)),
		Decor:  make(map[string]Sprite, len(raw.Decor)),
	}

	for name, kind := range groundKinds {
		shades, ok := raw.Ground[name]
		if !ok || len(shades) != 2 {
			return nil, fmt.Errorf("assets: ground %q needs exactly 2 shades", name)
		}
		var pair [2]Glyph
		for i, g := range shades {
			parsed, err := g.parse()
			if err != nil {
				return nil, fmt.Errorf("assets: ground %q: %w", name, err)
			}
			pair[i] = parsed
		}
		s.Ground[kind] = pair
	}

	var err error
	if s.Barrier, err = raw.Barrier.parse(); err != nil {
		return nil, fmt.Errorf("assets: barrier: %w", err)
	}

	for name, rs := range raw.Decor {
		sp, err := rs.parse()
		if err != nil {
			return nil, fmt.Errorf("assets: decor %q: %w", name, err)
		}
		s.Decor[name] = sp
	}

	if s.Pursuer, err = raw.Pursuer.parse(); err != nil {
		return nil, fmt.Errorf("assets: pursuer: %w", err)
	}

	if s.Player, err = raw.parsePlayer(); err != nil {
		return nil, fmt.Errorf("assets: player: %w", err)
	}

	ui := []struct {
		key string
		dst *Glyph
	}{
		{"heart", &s.UI.Heart},
		{"marker", &s.UI.Marker},
		{"arrow", &s.UI.Arrow},
		{"entrance_up", &s.UI.EntranceUp},
		{"entrance_down", &s.UI.EntranceDown},
		{"discovered", &s.UI.Discovered},
		{"pulse", &s.UI.Pulse},
	}
	for _, u := range ui {
		g, ok := raw.UI[u.key]
		if !ok {
			return nil, fmt.Errorf("assets: ui glyph %q missing", u.key)
		}
		if *u.dst, err = g.parse(); err != nil {
			return nil, fmt.Errorf("assets: ui %q: %w", u.key, err)
		}
	}

	return s, nil
}

func (g rawGlyph) parse() (Glyph, error) {
	r, err := singleRune(g.Glyph)
	if err != nil {
		return Glyph{}, err
	}
	c, err := parseColor(g.Color)
	if err != nil {
		return Glyph{}, err
	}
	return Glyph{Rune: r, Color: c}, nil
}

func (rs rawSprite) parse() (Sprite, error) {
	if len(rs.Rows) == 0 {
		return Sprite{}, fmt.Errorf("no rows")
	}
	palette := make(map[rune]core.Color, len(rs.Colors))
	for k, name := range rs.Colors {
		r, err := singleRune(k)
		if err != nil {
			return Sprite{}, err
		}
		c, err := parseColor(name)
		if err != nil {
			return Sprite{}, err
		}
		palette[r] = c
	}

	w := 0
	for _, row := range rs.Rows {
		w = max(w, utf8.RuneCountInString(row))
	}
	sp := Sprite{W: w, H: len(rs.Rows), cells: make([]Glyph, w*len(rs.Rows))}
	for y, row := range rs.Rows {
		x := 0
		for _, r := range row {
			if r != ' ' {
				c, ok := palette[r]
				if !ok {
					return Sprite{}, fmt.Errorf("glyph %q has no color", r)
				}
				sp.cells[y*w+x] = Glyph{Rune: r, Color: c}
			}
			x++
		}
	}
	return sp, nil
}

func (raw rawSheet) parsePlayer() (PlayerGlyphs, error) {
	var p PlayerGlyphs
	c, err := parseColor(raw.Player.Color)
	if err != nil {
		return p, err
	}
	p.Color = c

	if len(raw.Player.Facings) != len(p.Facings) {
		return p, fmt.Errorf("need %d facings, got %d", len(p.Facings), len(raw.Player.Facings))
	}
	for i, f := range raw.Player.Facings {
		if p.Facings[i], err = singleRune(f); err != nil {
			return p, err
		}
	}
	if p.Idle, err = singleRune(raw.Player.Idle); err != nil {
		return p, err
	}
	for _, f := range raw.Player.Walk {
		r, err := singleRune(f)
		if err != nil {
			return p, err
		}
		p.Walk = append(p.Walk, r)
	}
	return p, nil
}

func singleRune(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("glyph %q must be a single rune", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

func parseColor(name string) (core.Color, error) {
	c, ok := core.ParseColor(name)
	if !ok {
		return core.ColorDefault, fmt.Errorf("unknown color %q", name)
	}
	return c, nil
}
