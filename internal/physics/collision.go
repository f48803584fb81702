package physics

import (
	"math"

	"physics-arena/internal/vmath"

	"github.com/go-gl/mathgl/mgl64"
)

// fallbackNormal is used when two bodies share the exact same position.
var fallbackNormal = mgl64.Vec2{1, 0}

// DetectorOption customises a Detector.
type DetectorOption func(*Detector)

// WithActive replaces the predicate selecting collision targets. The default keeps
// bodies that are alive or persistent.
func WithActive(fn func(*Body) bool) DetectorOption {
	return func(d *Detector) {
		d.active = fn
	}
}

type pairKey struct {
	lo, hi BodyID
}

func makePair(a, b BodyID) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{lo: a, hi: b}
}

// Detector tests every body of an arena against every active body, bounding box
// against bounding box, and applies a response depending on both physic types.
//
// There is no broad phase: a pass is O(n·m) for n bodies and m active ones, which is
// fine for tens to a few hundred bodies.
type Detector struct {
	engine   *Engine
	active   func(*Body) bool
	log      Logger
	targets  []*Body
	resolved map[pairKey]struct{}
}

// NewDetector returns a detector that settles bodies through e after each response.
func NewDetector(e *Engine, opts ...DetectorOption) *Detector {
	d := &Detector{
		engine:   e,
		active:   (*Body).Alive,
		log:      e.log,
		resolved: make(map[pairKey]struct{}),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Update runs a detection pass and returns the number of pairs resolved.
func (d *Detector) Update(a *Arena) int {
	return d.detect(a)
}

func (d *Detector) detect(a *Arena) int {
	d.targets = d.targets[:0]
	for _, b := range a.Bodies() {
		if d.active(b) {
			d.targets = append(d.targets, b)
		}
	}
	clear(d.resolved)

	hits := 0
	for _, b1 := range a.Bodies() {
		for _, b2 := range d.targets {
			if b1.ID == b2.ID {
				continue
			}
			if !b1.Bounds().Intersects(b2.Bounds()) {
				continue
			}
			// A dynamic pair updates both bodies at once; the reverse visit is skipped.
			if b1.Type == Dynamic && b2.Type == Dynamic {
				k := makePair(b1.ID, b2.ID)
				if _, done := d.resolved[k]; done {
					continue
				}
				d.resolved[k] = struct{}{}
			}
			d.resolve(b1, b2)
			hits++
		}
	}
	return hits
}

func (d *Detector) resolve(b1, b2 *Body) {
	b1.Collided = true
	b2.Collided = true

	switch {
	case b1.Type == Dynamic && b2.Type == Dynamic:
		d.bounce(b1, b2)
	case b1.Type == Dynamic && b2.Type == Static:
		d.land(b1, b2)
	case b1.Type == Dynamic && b2.Type == None:
		b1.Contacts = append(b1.Contacts, b2.ID)
	}

	d.engine.Settle(b1)
	d.engine.Settle(b2)
}

// bounce exchanges momentum between two dynamic bodies along the line joining them.
func (d *Detector) bounce(b1, b2 *Body) {
	b1.Contacts = append(b1.Contacts, b2.ID)
	b2.Contacts = append(b2.Contacts, b1.ID)

	normal, ok := collisionNormal(b2.Position.Sub(b1.Position))
	if !ok {
		d.log.Logf("collision: %q and %q share position %v, using normal %v", b1.Name, b2.Name, b1.Position, normal)
	}

	lim := d.engine.opts.Limits
	closing := b1.Velocity.Sub(b2.Velocity).Dot(normal)
	impulse := 2 * closing / (b1.Mass*b1.Material.Density + b2.Mass*b2.Material.Density)

	// Both terms are weighted by b2's density.
	dv1 := vmath.ClampComponents(normal.Mul(impulse*b2.Mass*b2.Material.Density*closing), lim.ColSpeedMin, lim.ColSpeedMax)
	dv2 := vmath.ClampComponents(normal.Mul(impulse*b1.Mass*b2.Material.Density*closing), lim.ColSpeedMin, lim.ColSpeedMax)
	b1.Velocity = b1.Velocity.Sub(dv1)
	b2.Velocity = b2.Velocity.Add(dv2)
}

// land puts a dynamic body back on top of (or under) a static one. Only the vertical
// axis is corrected.
func (d *Detector) land(b1, b2 *Body) {
	b1.Contacts = append(b1.Contacts, b2.ID)
	if !(b2.Material.Elasticity > 0) {
		return
	}
	// below: b2's top edge lies under b1's, so b1 came down onto it.
	below := b2.Position[1] > b1.Position[1]
	if b1.Position[1]+b1.Height > b2.Position[1] && below {
		b1.Position[1] = b2.Position[1] - b1.Height
	} else {
		b1.Position[1] = b2.Position[1] + b2.Height
	}
	b1.Velocity[1] = -b1.Velocity[1] * b1.Material.Elasticity * b2.Material.Elasticity
}

// collisionNormal returns delta normalised, or fallbackNormal and false when delta
// has no usable length.
func collisionNormal(delta mgl64.Vec2) (mgl64.Vec2, bool) {
	dist := delta.Len()
	if dist == 0 || math.IsNaN(dist) || math.IsInf(dist, 0) {
		return fallbackNormal, false
	}
	return delta.Mul(1 / dist), true
}

// Pick returns the first body, in registration order, whose bounding box contains p.
func (d *Detector) Pick(a *Arena, p mgl64.Vec2) (*Body, bool) {
	for _, b := range a.Bodies() {
		if b.Bounds().ContainsPoint(p) {
			return b, true
		}
	}
	return nil, false
}
