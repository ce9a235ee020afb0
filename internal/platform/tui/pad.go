package tui

import (
	"github.com/vovakirdan/homeward/internal/core"
)

const (
	padButtonW = 5
	padButtonH = 3
	padMargin  = 1
)

type padButton struct {
	action core.Action
	col    int
	row    int
	glyph  rune
}

// up, left, right and down in a 3x3 grid; the middle and corners are empty
var padButtons = []padButton{
	{core.ActionUp, 1, 0, '▲'},
	{core.ActionLeft, 0, 1, '◀'},
	{core.ActionRight, 2, 1, '▶'},
	{core.ActionDown, 1, 2, '▼'},
}

// Pad is the on-screen direction pad used in touch mode. A button stays
// pressed from mouse press until release.
type Pad struct {
	originX, originY int
	pressed          core.Action
}

// NewPad creates a pad anchored to the bottom-left of a map area mapH rows tall.
func NewPad(mapH int) *Pad {
	p := &Pad{}
	p.Layout(mapH)
	return p
}

// Layout re-anchors the pad after the map area changes height.
func (p *Pad) Layout(mapH int) {
	p.originX = padMargin
	p.originY = max(mapH-3*padButtonH-padMargin, 0)
}

func (p *Pad) buttonRect(b padButton) core.Rect {
	return core.NewRect(p.originX+b.col*padButtonW, p.originY+b.row*padButtonH, padButtonW, padButtonH)
}

// HitTest returns the action under map cell (x, y), or ActionNone.
func (p *Pad) HitTest(x, y int) core.Action {
	for _, b := range padButtons {
		if p.buttonRect(b).Contains(x, y) {
			return b.action
		}
	}
	return core.ActionNone
}

// Press presses the button under (x, y). It reports whether a button was hit.
func (p *Pad) Press(x, y int) bool {
	a := p.HitTest(x, y)
	if a == core.ActionNone {
		return false
	}
	p.pressed = a
	return true
}

// Release lets go of whatever is pressed.
func (p *Pad) Release() {
	p.pressed = core.ActionNone
}

// Pressed returns the held direction, or ActionNone.
func (p *Pad) Pressed() core.Action {
	return p.pressed
}

// Intents returns the pad's contribution to this tick's input.
func (p *Pad) Intents() core.Intents {
	return core.Intents{}.With(p.Pressed())
}

// Draw paints the pad onto the map screen.
func (p *Pad) Draw(s *core.Screen) {
	for _, b := range padButtons {
		r := p.buttonRect(b)
		c := core.ColorGray
		if b.action == p.Pressed() {
			c = core.ColorBrightWhite
		}
		s.DrawRectColored(r, ' ', core.ColorDefault)
		s.DrawBox(r, c)
		s.SetColored(r.X+r.W/2, r.Y+r.H/2, b.glyph, c)
	}
}
