package entity

import "github.com/vovakirdan/homeward/internal/core"

// Pursuer chases the player in a straight line, ignoring tiles.
type Pursuer struct {
	Pos core.Vec
}

// NewPursuer spawns a pursuer.
func NewPursuer(spawn core.Vec) *Pursuer {
	return &Pursuer{Pos: spawn}
}

// Update steps toward target at speed for dt seconds, unless it is already
// within minDist, and keeps the pursuer inside [0, worldW] x [0, worldH].
// It returns the distance to target measured before moving; catch checks
// use that value.
func (m *Pursuer) Update(target core.Vec, dt, speed, minDist, worldW, worldH float64) float64 {
	delta := target.Sub(m.Pos)
	dist := delta.Len()

	if dist > minDist {
		step := delta.Scale(speed * dt / dist)
		m.Pos = core.Vec{
			X: core.ClampF(m.Pos.X+step.X, 0, worldW),
			Y: core.ClampF(m.Pos.Y+step.Y, 0, worldH),
		}
	}
	return dist
}
