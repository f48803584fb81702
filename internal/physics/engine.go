package physics

import (
	"time"

	"physics-arena/internal/vmath"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// timeScale converts elapsed nanoseconds into engine time units.
	timeScale = 1_000_000.0 * 0.9
	// gravityFactor attenuates world gravity before it joins the applied forces.
	gravityFactor = -0.03
	// settleElapsed is the micro tick run on both bodies after a collision response.
	settleElapsed = time.Nanosecond
)

// Logger receives diagnostic lines from the engine and the detector.
type Logger interface {
	Logf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Logf(string, ...any) {}

// Limits are the per-axis clamps applied to acceleration, velocity and collision
// velocity deltas. Values below the min snap to zero, values above the max are capped.
type Limits struct {
	AccMin, AccMax           float64
	SpeedMin, SpeedMax       float64
	ColSpeedMin, ColSpeedMax float64
}

// DefaultLimits returns the clamps used when no configuration is loaded.
func DefaultLimits() Limits {
	return Limits{
		AccMin: 0.01, AccMax: 0.5,
		SpeedMin: 0.01, SpeedMax: 0.5,
		ColSpeedMin: 0.0, ColSpeedMax: 0.5,
	}
}

// Options configures an Engine. A zero-sized Area disables containment in Update.
type Options struct {
	Limits Limits
	Area   vmath.Rect
	// AmbientDamping scales the velocity of bodies without contact by
	// material.Density * ambient.Density every step. Off by default.
	AmbientDamping bool
	Log            Logger
}

// Engine integrates forces into motion for the bodies of an Arena and keeps them
// inside the play area.
type Engine struct {
	World *World
	opts  Options
	log   Logger
}

// NewEngine returns an engine bound to w.
func NewEngine(w *World, opts Options) *Engine {
	log := opts.Log
	if log == nil {
		log = nopLogger{}
	}
	return &Engine{World: w, opts: opts, log: log}
}

// Limits returns the clamps in use.
func (e *Engine) Limits() Limits { return e.opts.Limits }

// Area returns the play area used by Update.
func (e *Engine) Area() vmath.Rect { return e.opts.Area }

// SetArea replaces the play area used by Update.
func (e *Engine) SetArea(r vmath.Rect) { e.opts.Area = r }

// stepTime converts a raw elapsed duration into engine time units.
func stepTime(elapsed time.Duration) float64 {
	return float64(elapsed) / timeScale
}

// Update runs one integration pass over the arena and constrains every dynamic body
// to the play area.
func (e *Engine) Update(a *Arena, elapsed time.Duration) {
	bounded := e.opts.Area.W > 0 && e.opts.Area.H > 0
	for _, b := range a.Bodies() {
		e.UpdateBody(a, b, elapsed)
		if bounded && b.Type == Dynamic {
			e.ConstrainToArea(b, e.opts.Area)
		}
	}
}

// Step runs one integration pass over every body of the arena.
func (e *Engine) Step(a *Arena, elapsed time.Duration) {
	for _, b := range a.Bodies() {
		e.UpdateBody(a, b, elapsed)
	}
}

// UpdateBody integrates a single body. a resolves the body's contacts and may be nil.
// Static and None bodies keep their kinematics; every body leaves with Collided reset.
func (e *Engine) UpdateBody(a *Arena, b *Body, elapsed time.Duration) {
	switch b.Type {
	case Dynamic:
		e.integrate(a, b, stepTime(elapsed))
	case Static, None:
	}
	b.Collided = false
}

func (e *Engine) integrate(a *Arena, b *Body, t float64) {
	lim := e.opts.Limits

	force := vmath.Sum(e.World.Gravity.Mul(gravityFactor), b.Forces)
	b.Acceleration = vmath.ClampComponents(force.Mul(t/(b.Mass*b.Material.Density)), lim.AccMin, lim.AccMax)

	b.Velocity = b.Velocity.Add(b.Acceleration.Mul(0.5 * t))
	if friction, ok := contactFriction(a, b); ok {
		// Only the first contact counts.
		b.Velocity = b.Velocity.Mul(friction)
	} else if e.opts.AmbientDamping {
		b.Velocity = b.Velocity.Mul(b.Material.Density * e.World.Ambient.Density)
	}
	b.Velocity = vmath.ClampComponents(b.Velocity, lim.SpeedMin, lim.SpeedMax)

	b.Position = b.Position.Add(b.Velocity.Mul(t))
	b.Forces = b.Forces[:0]
}

// contactFriction returns the friction of the first body b touched during the last
// detection pass. A contact that left the arena counts as no contact.
func contactFriction(a *Arena, b *Body) (float64, bool) {
	if !b.Collided || len(b.Contacts) == 0 || a == nil {
		return 0, false
	}
	c, ok := a.Get(b.Contacts[0])
	if !ok {
		return 0, false
	}
	return c.Material.Friction, true
}

// ConstrainToArea clamps b back inside area and bounces it off the violated edges.
// It returns true when the body was outside. Friction is applied before the signed
// elasticity, on both axes, whichever axis was hit.
func (e *Engine) ConstrainToArea(b *Body, area vmath.Rect) bool {
	if area.ContainsRect(b.Bounds()) {
		return false
	}

	sign := mgl64.Vec2{1, 1}
	hit := false
	if b.Position[0] < area.X {
		b.Position[0] = area.X
		sign[0] = -1
		hit = true
	}
	if maxX := area.X + area.W - b.Width; b.Position[0] > maxX {
		b.Position[0] = maxX
		sign[0] = -1
		hit = true
	}
	if b.Position[1] < area.Y {
		b.Position[1] = area.Y
		sign[1] = -1
		hit = true
	}
	if maxY := area.Y + area.H - b.Height; b.Position[1] > maxY {
		b.Position[1] = maxY
		sign[1] = -1
		hit = true
	}
	if !hit {
		return false
	}

	b.Forces = b.Forces[:0]
	b.Velocity = b.Velocity.Mul(b.Material.Friction)
	b.Velocity = vmath.MulComponents(b.Velocity, sign.Mul(b.Material.Elasticity))
	return true
}

// Settle advances a dynamic body's position by one nanosecond worth of velocity.
// Forces, clamps and Collided are left untouched.
func (e *Engine) Settle(b *Body) {
	if b.Type != Dynamic {
		return
	}
	b.Position = b.Position.Add(b.Velocity.Mul(stepTime(settleElapsed)))
}
