package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/homeward/internal/core"
)

func plainLines(s string) []string {
	return strings.Split(s, "\n")
}

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorPink)
	s.DrawTextColored(2, 0, "cd", core.ColorSand)

	lines := plainLines(RenderScreen(s))
	if len(lines) != 2 || !strings.Contains(lines[0], "ab") || !strings.Contains(lines[0], "cd") {
		t.Errorf("RenderScreen = %q", lines)
	}
}

func TestRenderWithOverlaysSplices(t *testing.T) {
	s := core.NewScreen(10, 4)
	s.FillColored('.', core.ColorDefault)

	got := plainLines(RenderWithOverlays(s, Overlay{X: 2, Y: 1, Block: "ab\ncdef"}))
	want := []string{
		"..........",
		"..ab  ....",
		"..cdef....",
		"..........",
	}
	if len(got) != len(want) {
		t.Fatalf("got %d lines, expected %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, expected %q", i, got[i], want[i])
		}
	}
}

func TestRenderWithOverlaysClipsRows(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.FillColored('.', core.ColorDefault)

	got := plainLines(RenderWithOverlays(s, Overlay{X: 0, Y: 1, Block: "xy\nzz\nzz"}))
	if len(got) != 2 || got[1] != "xy...." {
		t.Errorf("rows past the screen should be dropped, got %q", got)
	}
}

func TestCentered(t *testing.T) {
	o := Centered("abcd\nefgh", 10, 6)
	if o.X != 3 || o.Y != 2 {
		t.Errorf("Centered = (%d, %d), expected (3, 2)", o.X, o.Y)
	}
	o = Centered(strings.Repeat("x", 20), 10, 6)
	if o.X != 0 {
		t.Errorf("oversized block should pin to the left, got %d", o.X)
	}
}
