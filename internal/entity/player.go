package entity

import (
	"github.com/vovakirdan/homeward/internal/collide"
	"github.com/vovakirdan/homeward/internal/core"
)

// WalkFrames is the length of the walk cycle.
const WalkFrames = 8

// PlayerParams are the movement constants for one update.
type PlayerParams struct {
	Speed   float64
	Radius  float64
	AnimFPS float64
	WorldW  float64
	WorldH  float64
}

// Player is the character the user steers.
type Player struct {
	Pos       core.Vec
	Vel       core.Vec
	Facing    Facing
	Walking   bool
	AnimFrame int

	animTimer float64
}

// NewPlayer spawns a player facing down.
func NewPlayer(spawn core.Vec) *Player {
	return &Player{Pos: spawn, Facing: FacingDown}
}

// Update moves the player along dir (a unit or zero vector) for dt seconds.
func (p *Player) Update(dir core.Vec, dt float64, solid collide.SolidFunc, pp PlayerParams) {
	p.Vel = dir.Scale(pp.Speed)
	p.Walking = !dir.IsZero()

	if f, ok := FacingFor(dir); ok {
		p.Facing = f
	}

	if p.Walking {
		frame := 1 / pp.AnimFPS
		p.animTimer += dt
		if p.animTimer >= frame {
			p.animTimer -= frame
			p.AnimFrame = (p.AnimFrame + 1) % WalkFrames
		}
	} else {
		p.AnimFrame = 0
		p.animTimer = 0
	}

	next := collide.Resolve(solid, p.Pos, p.Pos.Add(p.Vel.Scale(dt)), pp.Radius)
	p.Pos = core.Vec{
		X: core.ClampF(next.X, pp.Radius, pp.WorldW-pp.Radius),
		Y: core.ClampF(next.Y, pp.Radius, pp.WorldH-pp.Radius),
	}
}

// Box returns the collision square around the player.
func (p *Player) Box(radius float64) core.RectF {
	return core.Around(p.Pos, radius)
}
