package physics

import (
	"errors"
	"fmt"
	"time"

	"physics-arena/internal/vmath"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	ErrInvalidMass   = errors.New("mass must be > 0")
	ErrInvalidExtent = errors.New("width and height must be >= 0")
)

// PhysicType tells the integrator and the detector how a body takes part in the simulation.
type PhysicType uint8

const (
	// None bodies are never integrated nor pushed, but can still be touched (HUD overlays, pick targets).
	None PhysicType = iota
	// Static bodies never move; they are obstacles for Dynamic ones.
	Static
	// Dynamic bodies are fully simulated.
	Dynamic
)

func (t PhysicType) String() string {
	switch t {
	case None:
		return "none"
	case Static:
		return "static"
	case Dynamic:
		return "dynamic"
	}
	return fmt.Sprintf("PhysicType(%d)", uint8(t))
}

// ParsePhysicType is the inverse of String.
func ParsePhysicType(s string) (PhysicType, error) {
	switch s {
	case "none":
		return None, nil
	case "static":
		return Static, nil
	case "dynamic":
		return Dynamic, nil
	}
	return None, fmt.Errorf("unknown physic type %q", s)
}

// BodyID is the stable handle of a body inside an Arena. Zero is never assigned.
type BodyID uint32

// BodyDef holds everything needed to build a body. Zero Lifetime means persistent.
type BodyDef struct {
	Name     string
	Shape    string // drawing hint only ("rect", "ellipse", "text"); physics ignores it
	Position mgl64.Vec2
	Velocity mgl64.Vec2
	Width    float64
	Height   float64
	Mass     float64
	Material Material
	Type     PhysicType
	Lifetime time.Duration
}

// Body is a simulated non-rotating box. Kinematic fields are only written by the
// Engine and the Detector; Forces is filled by gameplay code between steps.
type Body struct {
	ID    BodyID
	Name  string
	Shape string

	Position     mgl64.Vec2 // top-left corner of the bounding box
	Velocity     mgl64.Vec2
	Acceleration mgl64.Vec2
	Forces       []mgl64.Vec2

	Width, Height float64
	Mass          float64
	Material      Material
	Type          PhysicType

	// Collided stays true until the body's next integration pass once any contact was seen.
	Collided bool
	// Contacts lists the bodies touched during the latest detection pass, in detection order.
	Contacts []BodyID

	Persistent bool
	Lifetime   time.Duration
}

// NewBody validates def and builds a body. Non-positive mass or density is rejected
// here so the integrator never divides by them.
func NewBody(def BodyDef) (*Body, error) {
	if !(def.Mass > 0) {
		return nil, fmt.Errorf("body %q: %w (got %v)", def.Name, ErrInvalidMass, def.Mass)
	}
	if err := def.Material.Validate(); err != nil {
		return nil, fmt.Errorf("body %q: %w", def.Name, err)
	}
	if def.Width < 0 || def.Height < 0 {
		return nil, fmt.Errorf("body %q: %w (got %vx%v)", def.Name, ErrInvalidExtent, def.Width, def.Height)
	}
	shape := def.Shape
	if shape == "" {
		shape = "rect"
	}
	return &Body{
		Name:       def.Name,
		Shape:      shape,
		Position:   def.Position,
		Velocity:   def.Velocity,
		Width:      def.Width,
		Height:     def.Height,
		Mass:       def.Mass,
		Material:   def.Material,
		Type:       def.Type,
		Persistent: def.Lifetime <= 0,
		Lifetime:   def.Lifetime,
	}, nil
}

// AddForce queues f for the next integration pass.
func (b *Body) AddForce(f mgl64.Vec2) {
	b.Forces = append(b.Forces, f)
}

// Bounds returns the bounding box used for containment and collision tests.
func (b *Body) Bounds() vmath.Rect {
	return vmath.NewRect(b.Position, b.Width, b.Height)
}

// Alive reports whether the body still takes part as a collision target.
func (b *Body) Alive() bool {
	return b.Persistent || b.Lifetime > 0
}

// Age consumes d of the remaining lifetime. Persistent bodies never age.
func (b *Body) Age(d time.Duration) {
	if b.Persistent || b.Lifetime <= 0 {
		return
	}
	b.Lifetime -= d
	if b.Lifetime < 0 {
		b.Lifetime = 0
	}
}
