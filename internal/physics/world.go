package physics

import "github.com/go-gl/mathgl/mgl64"

// World holds the environment shared by every body of one simulation: gravity and the
// ambient material. Each simulation owns its own World, so independent simulations
// (tests included) never share state.
type World struct {
	Gravity mgl64.Vec2
	Ambient Material
}

// NewWorld returns a world with the given gravity and air as ambient material.
// The integrator applies gravity with a -0.03 factor, so (0, -0.981) pulls toward +Y.
func NewWorld(gravity mgl64.Vec2) *World {
	return &World{
		Gravity: gravity,
		Ambient: Air,
	}
}

// SetGravity replaces gravity; the next step uses the new value.
func (w *World) SetGravity(g mgl64.Vec2) {
	w.Gravity = g
}

// InvertGravity flips gravity on both axes.
func (w *World) InvertGravity() {
	w.Gravity = w.Gravity.Mul(-1)
}
