// Package entity simulates the two moving actors: the player, steered by
// input and stopped by solid tiles, and the pursuer, which walks straight
// at the player through everything.
package entity

import (
	"math"

	"github.com/vovakirdan/homeward/internal/core"
)

// Facing is one of eight directions. The value is the sprite row.
type Facing uint8

const (
	FacingDown Facing = iota
	FacingDownLeft
	FacingLeft
	FacingUpLeft
	FacingUp
	FacingUpRight
	FacingRight
	FacingDownRight
)

var facingNames = [...]string{"down", "down-left", "left", "up-left", "up", "up-right", "right", "down-right"}

func (f Facing) String() string {
	if int(f) < len(facingNames) {
		return facingNames[f]
	}
	return "unknown"
}

// sectors run clockwise from up in 45 degree steps (screen y grows down).
var sectorFacing = [8]Facing{
	FacingUp, FacingUpRight, FacingRight, FacingDownRight,
	FacingDown, FacingDownLeft, FacingLeft, FacingUpLeft,
}

// FacingFor quantizes a velocity into one of eight facings.
// The zero vector returns false so the caller keeps its previous facing.
func FacingFor(v core.Vec) (Facing, bool) {
	if v.IsZero() {
		return 0, false
	}
	deg := math.Mod(math.Atan2(v.Y, v.X)*180/math.Pi+360+90, 360)
	sector := int(math.Round(deg/45)) % 8
	return sectorFacing[sector], true
}

// DirectionFromIntents sums the held directions into a unit vector, or
// zero when nothing (or only opposing keys) is held.
func DirectionFromIntents(in core.Intents) core.Vec {
	var d core.Vec
	if in.Up {
		d.Y--
	}
	if in.Down {
		d.Y++
	}
	if in.Left {
		d.X--
	}
	if in.Right {
		d.X++
	}
	return d.Normalize()
}
