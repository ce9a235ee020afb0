package collide

import (
	"math"
	"testing"

	"github.com/vovakirdan/homeward/internal/core"
)

// wallRight is solid for x >= 100.
func wallRight(x, _ float64) bool { return x >= 100 }

// floor is solid for y >= 50.
func floor(_, y float64) bool { return y >= 50 }

// corner is solid right of x=100 and below y=50.
func corner(x, y float64) bool { return x >= 100 || y >= 50 }

func open(_, _ float64) bool { return false }

func TestResolve(t *testing.T) {
	const r = 5

	tests := []struct {
		name     string
		solid    SolidFunc
		from, to core.Vec
		want     core.Vec
	}{
		{"free movement", open, core.Vec{X: 10, Y: 10}, core.Vec{X: 13, Y: 14}, core.Vec{X: 13, Y: 14}},
		{"blocked x keeps old x", wallRight, core.Vec{X: 94, Y: 20}, core.Vec{X: 97, Y: 20}, core.Vec{X: 94, Y: 20}},
		{"slides along wall", wallRight, core.Vec{X: 94, Y: 20}, core.Vec{X: 97, Y: 24}, core.Vec{X: 94, Y: 24}},
		{"blocked y keeps old y", floor, core.Vec{X: 20, Y: 44}, core.Vec{X: 20, Y: 46}, core.Vec{X: 20, Y: 44}},
		{"slides along floor", floor, core.Vec{X: 20, Y: 44}, core.Vec{X: 23, Y: 46}, core.Vec{X: 23, Y: 44}},
		{"corner stops both", corner, core.Vec{X: 94, Y: 44}, core.Vec{X: 97, Y: 47}, core.Vec{X: 94, Y: 44}},
		{"touching edge is solid", wallRight, core.Vec{X: 94, Y: 20}, core.Vec{X: 95, Y: 20}, core.Vec{X: 94, Y: 20}},
		{"just short of edge moves", wallRight, core.Vec{X: 94, Y: 20}, core.Vec{X: 94.9, Y: 20}, core.Vec{X: 94.9, Y: 20}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Resolve(tc.solid, tc.from, tc.to, r)
			if got != tc.want {
				t.Errorf("Resolve(%v -> %v) = %v, expected %v", tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestResolveUsesResolvedXForY(t *testing.T) {
	// A pillar at x in [100, 110) that is only solid below y=30. Moving
	// diagonally into it: X is blocked at the old Y only if the pillar is
	// there, and Y is then tested at whichever X survived.
	pillar := func(x, y float64) bool { return x >= 100 && x < 110 && y >= 30 }

	got := Resolve(pillar, core.Vec{X: 90, Y: 40}, core.Vec{X: 96, Y: 20}, 5)
	// X to 96 at y=40: corner x+5=101 in pillar -> blocked, x stays 90.
	// Y to 20 at x=90: clear -> y moves.
	if got != (core.Vec{X: 90, Y: 20}) {
		t.Errorf("got %v", got)
	}
}

func TestResolveIsPure(t *testing.T) {
	calls := 0
	counting := func(x, y float64) bool {
		calls++
		return wallRight(x, y)
	}

	a := Resolve(counting, core.Vec{X: 90, Y: 20}, core.Vec{X: 96, Y: 21}, 5)
	b := Resolve(counting, core.Vec{X: 90, Y: 20}, core.Vec{X: 96, Y: 21}, 5)
	if a != b {
		t.Errorf("same inputs gave %v and %v", a, b)
	}
	if calls > 16 {
		t.Errorf("made %d solidity queries, expected at most 8 per call", calls)
	}
	if math.IsNaN(a.X) || math.IsNaN(a.Y) {
		t.Error("NaN result")
	}
}
