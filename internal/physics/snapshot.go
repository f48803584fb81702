package physics

import (
	"fmt"

	"physics-arena/internal/vmath"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jinzhu/copier"
)

// BodyState is a detached copy of the fields a renderer or gameplay layer reads
// after a step. Holding one never aliases a live Body.
type BodyState struct {
	ID           BodyID
	Name         string
	Shape        string
	Position     mgl64.Vec2
	Velocity     mgl64.Vec2
	Width        float64
	Height       float64
	Type         PhysicType
	Collided     bool
	Contacts     []BodyID
	MaterialName string
}

// Bounds returns the bounding box of the copied body.
func (s BodyState) Bounds() vmath.Rect {
	return vmath.NewRect(s.Position, s.Width, s.Height)
}

// Snapshot copies every body of the arena, in registration order.
func Snapshot(a *Arena) ([]BodyState, error) {
	bodies := a.Bodies()
	out := make([]BodyState, 0, len(bodies))
	if err := copier.CopyWithOption(&out, bodies, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	for i, b := range bodies {
		out[i].MaterialName = b.Material.Name
	}
	return out, nil
}
