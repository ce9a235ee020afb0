// Package render draws a frame of the game into a core.Screen. It only
// reads the FrameView it is given.
package render

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/homeward/internal/assets"
	"github.com/vovakirdan/homeward/internal/camera"
	"github.com/vovakirdan/homeward/internal/core"
	"github.com/vovakirdan/homeward/internal/entity"
	"github.com/vovakirdan/homeward/internal/progress"
	"github.com/vovakirdan/homeward/internal/world"
)

// Speech bubble text above the pursuer.
const (
	BubbleTitle = "Mom calling:"
	BubbleLine  = "“Where are you ?!”"
)

// FrameView is everything one frame needs.
type FrameView struct {
	World    *world.World
	Progress progress.Snapshot
	Player   entity.Player
	Pursuer  entity.Pursuer
	Camera   camera.Camera
	Time     float64 // wall clock seconds, drives animations
	Ready    bool
}

// Renderer draws frames with a glyph sheet.
type Renderer struct {
	Sheet *assets.Sheet
	Proj  camera.Projection
}

// New creates a renderer. A nil sheet draws the loading placeholder.
func New(sheet *assets.Sheet, proj camera.Projection) *Renderer {
	return &Renderer{Sheet: sheet, Proj: proj}
}

// Draw renders v into dst, back to front: ground, decorations, barriers,
// guidance arrows, trigger indicators, zone labels, pursuer, player.
func (r *Renderer) Draw(dst *core.Screen, v FrameView) {
	if r.Sheet == nil || !v.Ready || v.World == nil {
		drawLoading(dst, v.Time)
		return
	}

	dst.FillColored(' ', core.ColorDarkGreen)
	r.drawGround(dst, v)
	r.drawDecorations(dst, v)
	r.drawBarriers(dst, v)
	r.drawArrows(dst, v)
	r.drawTriggers(dst, v)
	r.drawLabels(dst, v)
	r.drawPursuer(dst, v)
	r.drawPlayer(dst, v)
}

var spinner = []rune("⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏")

func drawLoading(dst *core.Screen, t float64) {
	dst.Clear()
	frame := spinner[int(t*10)%len(spinner)]
	y := dst.Height() / 2
	msg := string(frame) + " Loading..."
	dst.DrawTextColored((dst.Width()-utf8.RuneCountInString(msg))/2, y, msg, core.ColorGray)
}

func (r *Renderer) drawGround(dst *core.Screen, v FrameView) {
	w := v.World
	g := w.Grid()
	tile := w.TileSize()
	c0, c1, r0, r1 := v.Camera.VisibleTiles(tile, g.W, g.H)

	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			glyph := r.Sheet.GroundGlyph(g.Kind(col, row), col, row)
			rect := r.tileRect(v.Camera, col, row, tile)
			dst.DrawRectColored(rect, glyph.Rune, glyph.Color)
		}
	}
}

func (r *Renderer) tileRect(cam camera.Camera, col, row int, tile float64) core.Rect {
	return cam.RectToScreen(core.RectF{X: float64(col) * tile, Y: float64(row) * tile, W: tile, H: tile}, r.Proj)
}

func (r *Renderer) drawDecorations(dst *core.Screen, v FrameView) {
	for _, d := range v.World.Decorations() {
		if !v.Camera.Intersects(d.Rect) {
			continue
		}
		sprite, ok := r.Sheet.Decor[d.Asset]
		if !ok {
			continue
		}
		drawSprite(dst, sprite, v.Camera.RectToScreen(d.Rect, r.Proj))
	}
}

// drawSprite stretches sprite over rect, skipping transparent glyphs.
func drawSprite(dst *core.Screen, sprite assets.Sprite, rect core.Rect) {
	for y := 0; y < rect.H; y++ {
		for x := 0; x < rect.W; x++ {
			g := sprite.Sample(x, y, rect.W, rect.H)
			if g.Rune == 0 {
				continue
			}
			dst.SetColored(rect.X+x, rect.Y+y, g.Rune, g.Color)
		}
	}
}

func (r *Renderer) drawBarriers(dst *core.Screen, v FrameView) {
	step := v.Progress.Step
	tile := v.World.TileSize()
	for _, b := range v.World.Barriers() {
		if !b.ActiveAt(step) {
			continue
		}
		for _, row := range b.Rows {
			rect := r.tileRect(v.Camera, b.Col, row, tile)
			dst.DrawRectColored(rect, r.Sheet.Barrier.Rune, r.Sheet.Barrier.Color)
		}
	}
}

// bounce maps a sine wave onto a whole cell offset in {-1, 0, 1}.
func bounce(phase float64) int {
	return int(math.Round(math.Sin(phase) * 0.75))
}

func (r *Renderer) drawArrows(dst *core.Screen, v FrameView) {
	guide, ok := v.World.Arrows(v.Progress.Step)
	if !ok {
		return
	}
	ui := r.Sheet.UI

	dx := bounce(v.Time * 3)
	for _, p := range guide.Road {
		x, y := v.Camera.ToScreen(p, r.Proj)
		dst.SetColored(x+dx, y, ui.Arrow.Rune, ui.Arrow.Color)
	}

	x, y := v.Camera.ToScreen(guide.Entrance, r.Proj)
	g := ui.EntranceUp
	if guide.EntranceDown {
		g = ui.EntranceDown
	}
	dst.SetColored(x, y+bounce(v.Time*3), g.Rune, g.Color)
}

func (r *Renderer) drawTriggers(dst *core.Screen, v FrameView) {
	step := v.Progress.Step
	ui := r.Sheet.UI

	for _, z := range v.World.Zones() {
		discovered := v.Progress.HasDiscovered(z.ID)
		if z.StepIndex > step && !discovered {
			continue
		}
		rect := v.Camera.RectToScreen(z.Rect, r.Proj)

		if discovered {
			for y := rect.Y; y < rect.Bottom(); y++ {
				for x := rect.X; x < rect.Right(); x++ {
					dst.Tint(x, y, ui.Discovered.Color)
				}
			}
		}
		if z.StepIndex != step {
			continue
		}

		// pulse strength swings between 0.05 and 0.25
		alpha := 0.15 + math.Sin(v.Time*3)*0.1
		for y := rect.Y; y < rect.Bottom(); y++ {
			for x := rect.X; x < rect.Right(); x++ {
				if alpha > 0.15 && (x+y)%2 == 0 {
					dst.SetColored(x, y, ui.Pulse.Rune, ui.Pulse.Color)
				} else {
					dst.Tint(x, y, ui.Pulse.Color)
				}
			}
		}

		c := z.Rect.Center()
		for i := range 4 {
			phase := v.Time*2 + float64(i)*math.Pi/2
			p := core.Vec{
				X: c.X + math.Cos(phase)*z.Rect.W*0.35,
				Y: c.Y + math.Sin(phase*1.3)*z.Rect.H*0.35,
			}
			x, y := v.Camera.ToScreen(p, r.Proj)
			dst.SetColored(x, y, ui.Heart.Rune, ui.Heart.Color)
		}

		mx, my := v.Camera.ToScreen(core.Vec{X: c.X, Y: z.Rect.Y}, r.Proj)
		dst.SetColored(mx, my-2+bounce(v.Time*4), ui.Marker.Rune, ui.Marker.Color)
	}
}

func (r *Renderer) drawLabels(dst *core.Screen, v FrameView) {
	step := v.Progress.Step
	total := v.Progress.TotalSteps

	for i, l := range v.World.Labels() {
		if i > step {
			continue
		}
		lines := []string{l.Title, l.Date}
		border := core.ColorMagenta
		if i == step {
			lines = append(lines, stepText(i, total))
			border = core.ColorPink
		}
		box := labelBox(lines)

		x, y := v.Camera.ToScreen(l.Pos, r.Proj)
		box.X = x - box.W/2
		if l.Above {
			box.Y = y - box.H
		} else {
			box.Y = y
		}
		if !box.Intersects(core.NewRect(0, 0, dst.Width(), dst.Height())) {
			continue
		}

		dst.DrawRectColored(box, ' ', core.ColorDefault)
		dst.DrawBox(box, border)
		for j, line := range lines {
			c := core.ColorBrightWhite
			if j > 0 {
				c = core.ColorSand
			}
			dst.DrawTextColored(box.X+2, box.Y+1+j, line, c)
		}
	}
}

func stepText(i, total int) string {
	return fmt.Sprintf("Step %d/%d", i+1, total)
}

// labelBox sizes a bordered box around lines with one cell of padding.
func labelBox(lines []string) core.Rect {
	w := 0
	for _, l := range lines {
		w = max(w, utf8.RuneCountInString(l))
	}
	return core.NewRect(0, 0, w+4, len(lines)+2)
}

func (r *Renderer) drawPursuer(dst *core.Screen, v FrameView) {
	sprite := r.Sheet.Pursuer
	x, y := v.Camera.ToScreen(v.Pursuer.Pos, r.Proj)
	y += bounce(v.Time * 3)

	rect := core.NewRect(x-sprite.W/2, y-sprite.H+1, sprite.W, sprite.H)
	drawSprite(dst, sprite, rect)

	bubble := labelBox([]string{BubbleTitle, BubbleLine})
	bubble.X = x - bubble.W/2
	bubble.Y = rect.Y - bubble.H
	dst.DrawRectColored(bubble, ' ', core.ColorDefault)
	dst.DrawBox(bubble, core.ColorBrightWhite)
	dst.DrawTextColored(bubble.X+2, bubble.Y+1, BubbleTitle, core.ColorGray)
	dst.DrawTextColored(bubble.X+2, bubble.Y+2, BubbleLine, core.ColorBrightRed)
}

func (r *Renderer) drawPlayer(dst *core.Screen, v FrameView) {
	pg := r.Sheet.Player
	p := v.Player
	x, y := v.Camera.ToScreen(p.Pos, r.Proj)
	dst.SetColored(x, y-1, pg.Facings[p.Facing], pg.Color)
	dst.SetColored(x, y, pg.Legs(p.Walking, p.AnimFrame), pg.Color)
}
