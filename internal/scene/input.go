package scene

import (
	"physics-arena/internal/vmath"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	pushStep   = 0.020
	boostScale = 2.5
	turboScale = 4.0
	// jumpAttenuation scales gravity into the jump force before the configured impulse.
	jumpAttenuation = 0.3 * 0.1
)

// Input is the directional state read from the keyboard for one frame.
type Input struct {
	Up, Down, Left, Right bool
	Boost                 bool // x2.5
	Turbo                 bool // x4
}

func (in Input) any() bool {
	return in.Up || in.Down || in.Left || in.Right
}

// Move turns the frame's input into forces on the player. Up is only honoured without
// gravity; with gravity the player jumps instead. With no key held the player loses
// speed by its own friction.
func (s *Scene) Move(in Input) {
	p, ok := s.Player()
	if !ok {
		return
	}
	step := pushStep
	if in.Boost {
		step *= boostScale
	}
	if in.Turbo {
		step *= turboScale
	}

	var f mgl64.Vec2
	if in.Up && vmath.IsZero(s.World.Gravity) {
		f[1] -= step
	}
	if in.Down {
		f[1] += step
	}
	if in.Left {
		f[0] -= step
	}
	if in.Right {
		f[0] += step
	}
	if !vmath.IsZero(f) {
		p.AddForce(f)
	}
	if !in.any() && len(p.Forces) == 0 {
		p.Velocity = p.Velocity.Mul(p.Material.Friction)
	}
}

// Jump pushes the player against gravity. It does nothing and returns false when gravity is zero.
func (s *Scene) Jump() bool {
	p, ok := s.Player()
	if !ok || vmath.IsZero(s.World.Gravity) {
		return false
	}
	p.AddForce(s.World.Gravity.Mul(jumpAttenuation * s.cfg.JumpImpulse))
	return true
}
