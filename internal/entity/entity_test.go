package entity

import (
	"math"
	"testing"

	"github.com/vovakirdan/homeward/internal/core"
)

func TestFacingForCanonicalVectors(t *testing.T) {
	d := math.Sqrt2 / 2
	tests := []struct {
		v    core.Vec
		want Facing
	}{
		{core.Vec{X: 0, Y: -1}, FacingUp},
		{core.Vec{X: d, Y: -d}, FacingUpRight},
		{core.Vec{X: 1, Y: 0}, FacingRight},
		{core.Vec{X: d, Y: d}, FacingDownRight},
		{core.Vec{X: 0, Y: 1}, FacingDown},
		{core.Vec{X: -d, Y: d}, FacingDownLeft},
		{core.Vec{X: -1, Y: 0}, FacingLeft},
		{core.Vec{X: -d, Y: -d}, FacingUpLeft},
	}

	for _, tc := range tests {
		t.Run(tc.want.String(), func(t *testing.T) {
			got, ok := FacingFor(tc.v)
			if !ok || got != tc.want {
				t.Errorf("FacingFor(%v) = %s, %v; expected %s", tc.v, got, ok, tc.want)
			}
		})
	}

	if _, ok := FacingFor(core.Vec{}); ok {
		t.Error("zero velocity should report no change")
	}
}

func TestFacingRowsMatchSpriteSheet(t *testing.T) {
	if FacingDown != 0 || FacingUp != 4 || FacingRight != 6 || FacingDownRight != 7 {
		t.Error("facing values must equal sprite rows")
	}
}

func TestDirectionFromIntents(t *testing.T) {
	tests := []struct {
		name string
		in   core.Intents
		want core.Vec
	}{
		{"none", core.Intents{}, core.Vec{}},
		{"up", core.Intents{Up: true}, core.Vec{Y: -1}},
		{"opposed", core.Intents{Left: true, Right: true}, core.Vec{}},
		{"diagonal is unit", core.Intents{Down: true, Right: true}, core.Vec{X: math.Sqrt2 / 2, Y: math.Sqrt2 / 2}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := DirectionFromIntents(tc.in)
			if math.Abs(got.X-tc.want.X) > 1e-12 || math.Abs(got.Y-tc.want.Y) > 1e-12 {
				t.Errorf("got %v, expected %v", got, tc.want)
			}
		})
	}
}

var params = PlayerParams{Speed: 180, Radius: 5, AnimFPS: 8, WorldW: 1600, WorldH: 320}

func openWorld(x, y float64) bool { return false }

func TestPlayerMoves(t *testing.T) {
	p := NewPlayer(core.Vec{X: 100, Y: 100})
	p.Update(core.Vec{X: 1}, 0.05, openWorld, params)

	if p.Pos != (core.Vec{X: 109, Y: 100}) {
		t.Errorf("Pos = %v, expected (109, 100)", p.Pos)
	}
	if p.Vel != (core.Vec{X: 180}) || !p.Walking || p.Facing != FacingRight {
		t.Errorf("player = %+v", p)
	}
}

func TestPlayerIdleKeepsFacingAndResetsAnimation(t *testing.T) {
	p := NewPlayer(core.Vec{X: 100, Y: 100})
	for i := 0; i < 3; i++ {
		p.Update(core.Vec{X: -1}, 0.05, openWorld, params)
	}
	if p.AnimFrame != 1 {
		t.Fatalf("AnimFrame = %d after 0.15s at 8 fps, expected 1", p.AnimFrame)
	}

	p.Update(core.Vec{}, 0.05, openWorld, params)
	if p.Facing != FacingLeft {
		t.Errorf("idle changed facing to %s", p.Facing)
	}
	if p.AnimFrame != 0 || p.Walking {
		t.Errorf("idle should reset animation: %+v", p)
	}
}

func TestPlayerWalkCycleWraps(t *testing.T) {
	p := NewPlayer(core.Vec{X: 800, Y: 160})
	for i := 0; i < WalkFrames; i++ {
		p.Update(core.Vec{Y: 1}, 0.125, openWorld, params)
	}
	if p.AnimFrame != 0 {
		t.Errorf("AnimFrame = %d after a full cycle, expected 0", p.AnimFrame)
	}
}

func TestPlayerBlockedByWall(t *testing.T) {
	wall := func(x, _ float64) bool { return x >= 112 }
	p := NewPlayer(core.Vec{X: 104, Y: 100})
	p.Update(core.Vec{X: 1}, 0.05, wall, params)

	if p.Pos.X != 104 {
		t.Errorf("Pos.X = %v, expected no penetration", p.Pos.X)
	}
}

func TestPlayerClampedToWorld(t *testing.T) {
	p := NewPlayer(core.Vec{X: 6, Y: 316})
	p.Update(core.Vec{X: -1}, 0.05, openWorld, params)
	p.Update(core.Vec{Y: 1}, 0.05, openWorld, params)

	if p.Pos != (core.Vec{X: 5, Y: 315}) {
		t.Errorf("Pos = %v, expected clamp to (5, 315)", p.Pos)
	}
}

func TestPursuerChases(t *testing.T) {
	m := NewPursuer(core.Vec{X: 0, Y: 0})
	dist := m.Update(core.Vec{X: 30, Y: 40}, 0.1, 50, 2, 1600, 320)

	if dist != 50 {
		t.Errorf("returned distance %v, expected pre-move 50", dist)
	}
	if math.Abs(m.Pos.X-3) > 1e-9 || math.Abs(m.Pos.Y-4) > 1e-9 {
		t.Errorf("Pos = %v, expected (3, 4)", m.Pos)
	}
}

func TestPursuerStopsWhenClose(t *testing.T) {
	m := NewPursuer(core.Vec{X: 10, Y: 10})
	m.Update(core.Vec{X: 11, Y: 10}, 0.05, 50, 2, 1600, 320)
	if m.Pos != (core.Vec{X: 10, Y: 10}) {
		t.Errorf("pursuer within min distance moved to %v", m.Pos)
	}
}

func TestPursuerClampedAndIgnoresTiles(t *testing.T) {
	m := NewPursuer(core.Vec{X: 1599, Y: 160})
	// Overshooting target: huge dt
	m.Update(core.Vec{X: 1700, Y: 160}, 10, 50, 2, 1600, 320)
	if m.Pos.X != 1600 {
		t.Errorf("Pos.X = %v, expected clamp to 1600", m.Pos.X)
	}
}
