// Package collide resolves movement of a small square against a solidity
// predicate, one axis at a time, so blocked movement slides along walls.
package collide

import "github.com/vovakirdan/homeward/internal/core"

// SolidFunc reports whether a world point blocks movement.
type SolidFunc func(x, y float64) bool

// boxBlocked tests the four corners of the square of half-width r at (x, y).
func boxBlocked(solid SolidFunc, x, y, r float64) bool {
	return solid(x-r, y-r) || solid(x+r, y-r) || solid(x-r, y+r) || solid(x+r, y+r)
}

// Resolve moves from toward to. The X move is tested at the old Y and
// dropped if any corner is solid; the Y move is then tested at the
// resolved X. A blocked axis keeps its original coordinate exactly.
func Resolve(solid SolidFunc, from, to core.Vec, r float64) core.Vec {
	x := to.X
	if boxBlocked(solid, to.X, from.Y, r) {
		x = from.X
	}

	y := to.Y
	if boxBlocked(solid, x, to.Y, r) {
		y = from.Y
	}

	return core.Vec{X: x, Y: y}
}
