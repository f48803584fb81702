package physics

import (
	"math"
	"testing"
	"time"

	"physics-arena/internal/vmath"

	"github.com/go-gl/mathgl/mgl64"
)

const tenMillis = 10 * time.Millisecond // 10,000,000 raw time units

func TestUpdateBodyMovesDynamicBody(t *testing.T) {
	e := newTestEngine(mgl64.Vec2{})
	a := NewArena()
	b := mustBody(t, BodyDef{Name: "test", Type: Dynamic})
	a.Add(b)
	b.AddForce(vmath.Vec(10, 0))

	e.UpdateBody(a, b, tenMillis)

	if !approx(b.Position.X(), 5.0, 1.0) {
		t.Errorf("position.x = %v, want 5 ± 1", b.Position.X())
	}
	if b.Position.Y() != 0 {
		t.Errorf("position.y = %v, want 0", b.Position.Y())
	}
}

func TestStepMovesEveryBodyBySameAmount(t *testing.T) {
	e := newTestEngine(mgl64.Vec2{})
	a := NewArena()
	for i := 0; i < 10; i++ {
		b := mustBody(t, BodyDef{
			Name:     "body",
			Position: vmath.Vec(float64(i)*100, 0),
			Type:     Dynamic,
		})
		b.AddForce(vmath.Vec(0.1, 0))
		a.Add(b)
	}

	e.Step(a, tenMillis)

	for i, b := range a.Bodies() {
		want := 5.0 + float64(i)*100
		if !approx(b.Position.X(), want, 1.0) {
			t.Errorf("body %d x = %v, want %v ± 1", i, b.Position.X(), want)
		}
	}
}

func TestStepAtRestWithoutForcesOrGravity(t *testing.T) {
	e := newTestEngine(mgl64.Vec2{})
	a := NewArena()
	b := mustBody(t, BodyDef{Name: "rest", Position: vmath.Vec(40, 60), Type: Dynamic})
	a.Add(b)

	for i := 0; i < 5; i++ {
		e.Step(a, tenMillis)
	}

	if b.Position != vmath.Vec(40, 60) {
		t.Errorf("position = %v, want (40,60)", b.Position)
	}
	if !vmath.IsZero(b.Velocity) {
		t.Errorf("velocity = %v, want zero", b.Velocity)
	}
}

func TestStepDrainsForces(t *testing.T) {
	e := newTestEngine(mgl64.Vec2{})
	a := NewArena()
	b := mustBody(t, BodyDef{Name: "p", Type: Dynamic})
	a.Add(b)
	b.AddForce(vmath.Vec(1, 0))
	b.AddForce(vmath.Vec(0, 1))

	e.Step(a, tenMillis)

	if len(b.Forces) != 0 {
		t.Errorf("forces = %v, want empty", b.Forces)
	}
}

func TestGravityPullsTowardPositiveY(t *testing.T) {
	e := newTestEngine(vmath.Vec(0, -0.981))
	a := NewArena()
	b := mustBody(t, BodyDef{Name: "falling", Position: vmath.Vec(100, 50), Type: Dynamic})
	a.Add(b)

	e.Step(a, tenMillis)
	if b.Position.Y() <= 50 {
		t.Fatalf("y = %v, want > 50 with gravity (0,-0.981)", b.Position.Y())
	}

	e.World.InvertGravity()
	b.Position = vmath.Vec(100, 50)
	b.Velocity = mgl64.Vec2{}
	e.Step(a, tenMillis)
	if b.Position.Y() >= 50 {
		t.Errorf("y = %v, want < 50 after gravity inversion", b.Position.Y())
	}
}

func TestStaticAndNoneBodiesDoNotMove(t *testing.T) {
	for _, typ := range []PhysicType{Static, None} {
		t.Run(typ.String(), func(t *testing.T) {
			e := newTestEngine(vmath.Vec(0, -0.981))
			a := NewArena()
			b := mustBody(t, BodyDef{Name: "fixed", Position: vmath.Vec(10, 10), Type: typ})
			a.Add(b)
			b.AddForce(vmath.Vec(10, 0))
			b.Collided = true

			e.Step(a, tenMillis)

			if b.Position != vmath.Vec(10, 10) {
				t.Errorf("position = %v, want (10,10)", b.Position)
			}
			if !vmath.IsZero(b.Velocity) || !vmath.IsZero(b.Acceleration) {
				t.Errorf("kinematics changed: v=%v acc=%v", b.Velocity, b.Acceleration)
			}
			if b.Collided {
				t.Error("Collided not reset")
			}
		})
	}
}

func TestCollidedBodyUsesFirstContactFriction(t *testing.T) {
	e := newTestEngine(mgl64.Vec2{})
	a := NewArena()
	floor := mustBody(t, BodyDef{Name: "floor", Material: Floor, Type: Static})
	steel := mustBody(t, BodyDef{Name: "steel", Material: Steel, Type: Static})
	b := mustBody(t, BodyDef{Name: "slider", Velocity: vmath.Vec(0.4, 0), Type: Dynamic})
	a.Add(floor)
	a.Add(steel)
	a.Add(b)
	b.Collided = true
	b.Contacts = []BodyID{floor.ID, steel.ID}

	e.UpdateBody(a, b, tenMillis)

	if !approx(b.Velocity.X(), 0.4*Floor.Friction, 1e-12) {
		t.Errorf("velocity.x = %v, want %v", b.Velocity.X(), 0.4*Floor.Friction)
	}
	if b.Collided {
		t.Error("Collided not reset after the update")
	}
}

func TestCollidedBodyWithRemovedContactKeepsVelocity(t *testing.T) {
	e := newTestEngine(mgl64.Vec2{})
	a := NewArena()
	floor := mustBody(t, BodyDef{Name: "floor", Material: Floor, Type: Static})
	b := mustBody(t, BodyDef{Name: "slider", Velocity: vmath.Vec(0.4, 0), Type: Dynamic})
	a.Add(floor)
	a.Add(b)
	b.Collided = true
	b.Contacts = []BodyID{floor.ID}
	a.Remove(floor.ID)

	e.UpdateBody(a, b, tenMillis)

	if b.Velocity.X() != 0.4 {
		t.Errorf("velocity.x = %v, want 0.4", b.Velocity.X())
	}
}

func TestAmbientDamping(t *testing.T) {
	tests := []struct {
		name    string
		damping bool
		want    float64
	}{
		// 0.4 * 0.7 * 0.01 = 0.0028, below SpeedMin, snaps to zero.
		{"on", true, 0},
		{"off", false, 0.4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine(NewWorld(mgl64.Vec2{}), Options{Limits: DefaultLimits(), AmbientDamping: tt.damping})
			a := NewArena()
			b := mustBody(t, BodyDef{Name: "ball", Material: Rubber, Velocity: vmath.Vec(0.4, 0), Type: Dynamic})
			a.Add(b)

			e.Step(a, tenMillis)

			if !approx(b.Velocity.X(), tt.want, 1e-12) {
				t.Errorf("velocity.x = %v, want %v", b.Velocity.X(), tt.want)
			}
		})
	}
}

func TestStepClampsRunawayForces(t *testing.T) {
	e := newTestEngine(mgl64.Vec2{})
	a := NewArena()
	b := mustBody(t, BodyDef{Name: "rocket", Type: Dynamic})
	a.Add(b)

	for i := 0; i < 100; i++ {
		b.AddForce(vmath.Vec(1e300, -1e300))
		b.AddForce(vmath.Vec(math.NaN(), 0))
		e.Step(a, tenMillis)
	}

	lim := e.Limits()
	for axis := 0; axis < 2; axis++ {
		v := b.Velocity[axis]
		if math.IsNaN(v) || math.Abs(v) > lim.SpeedMax {
			t.Errorf("velocity[%d] = %v, want within ±%v", axis, v, lim.SpeedMax)
		}
		if math.IsNaN(b.Position[axis]) {
			t.Errorf("position[%d] is NaN", axis)
		}
	}
}

func TestConstrainToAreaAfterLargeStep(t *testing.T) {
	e := newTestEngine(mgl64.Vec2{})
	a := NewArena()
	b := mustBody(t, BodyDef{Name: "test", Type: Dynamic})
	a.Add(b)
	b.AddForce(vmath.Vec(10, 10))

	e.UpdateBody(a, b, 20*time.Millisecond)
	e.ConstrainToArea(b, vmath.Rect{W: 320, H: 200})

	if !approx(b.Position.X(), 10, b.Width) {
		t.Errorf("x = %v, want 10 ± %v", b.Position.X(), b.Width)
	}
	if !approx(b.Position.Y(), 10, b.Height) {
		t.Errorf("y = %v, want 10 ± %v", b.Position.Y(), b.Height)
	}
	if !(vmath.Rect{W: 320, H: 200}).ContainsRect(b.Bounds()) {
		t.Errorf("bounds %v escaped the area", b.Bounds())
	}
}

func TestConstrainToArea(t *testing.T) {
	area := vmath.Rect{W: 320, H: 200}
	tests := []struct {
		name    string
		pos     mgl64.Vec2
		vel     mgl64.Vec2
		wantPos mgl64.Vec2
		wantVel mgl64.Vec2
	}{
		{
			name:    "bottom left corner",
			pos:     vmath.Vec(-5, 190),
			vel:     vmath.Vec(-0.4, 0.3),
			wantPos: vmath.Vec(0, 184),
			wantVel: vmath.Vec(0.4*0.98*0.9, -0.3*0.98*0.9),
		},
		{
			// Elasticity applies to both axes even though only x penetrated.
			name:    "left edge only",
			pos:     vmath.Vec(-2, 50),
			vel:     vmath.Vec(-0.4, 0.2),
			wantPos: vmath.Vec(0, 50),
			wantVel: vmath.Vec(0.4*0.98*0.9, 0.2*0.98*0.9),
		},
		{
			name:    "top right corner",
			pos:     vmath.Vec(310, -3),
			vel:     vmath.Vec(0.5, -0.5),
			wantPos: vmath.Vec(304, 0),
			wantVel: vmath.Vec(-0.5*0.98*0.9, 0.5*0.98*0.9),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(mgl64.Vec2{})
			b := mustBody(t, BodyDef{Name: "ball", Material: Rubber, Position: tt.pos, Velocity: tt.vel, Type: Dynamic})
			b.AddForce(vmath.Vec(1, 1))

			if !e.ConstrainToArea(b, area) {
				t.Fatal("ConstrainToArea reported no correction")
			}
			if b.Position != tt.wantPos {
				t.Errorf("position = %v, want %v", b.Position, tt.wantPos)
			}
			for axis := 0; axis < 2; axis++ {
				if !approx(b.Velocity[axis], tt.wantVel[axis], 1e-12) {
					t.Errorf("velocity = %v, want %v", b.Velocity, tt.wantVel)
					break
				}
			}
			if len(b.Forces) != 0 {
				t.Errorf("forces = %v, want cleared", b.Forces)
			}
		})
	}
}

func TestConstrainToAreaIsIdempotent(t *testing.T) {
	e := newTestEngine(mgl64.Vec2{})
	area := vmath.Rect{W: 320, H: 200}
	b := mustBody(t, BodyDef{Name: "ball", Material: Rubber, Position: vmath.Vec(330, 210), Velocity: vmath.Vec(0.3, 0.3), Type: Dynamic})

	e.ConstrainToArea(b, area)
	pos, vel := b.Position, b.Velocity

	if e.ConstrainToArea(b, area) {
		t.Error("second call reported a correction")
	}
	if b.Position != pos || b.Velocity != vel {
		t.Errorf("second call mutated the body: pos %v -> %v, vel %v -> %v", pos, b.Position, vel, b.Velocity)
	}
}

func TestUpdateConstrainsOnlyDynamicBodies(t *testing.T) {
	e := newTestEngine(mgl64.Vec2{})
	a := NewArena()
	wall := mustBody(t, BodyDef{Name: "wall", Position: vmath.Vec(-50, 0), Type: Static})
	ball := mustBody(t, BodyDef{Name: "ball", Position: vmath.Vec(-50, 0), Type: Dynamic})
	a.Add(wall)
	a.Add(ball)

	e.Update(a, tenMillis)

	if wall.Position.X() != -50 {
		t.Errorf("static wall moved to %v", wall.Position)
	}
	if ball.Position.X() != 0 {
		t.Errorf("ball x = %v, want 0", ball.Position.X())
	}
}

func TestSettle(t *testing.T) {
	e := newTestEngine(mgl64.Vec2{})
	b := mustBody(t, BodyDef{Name: "b", Velocity: vmath.Vec(0.45, -0.45), Type: Dynamic})
	b.Collided = true
	b.AddForce(vmath.Vec(3, 3))

	e.Settle(b)

	want := 0.45 / timeScale
	if !approx(b.Position.X(), want, 1e-15) || !approx(b.Position.Y(), -want, 1e-15) {
		t.Errorf("position = %v, want (%v,%v)", b.Position, want, -want)
	}
	if !b.Collided || len(b.Forces) != 1 {
		t.Error("Settle must not touch Collided or Forces")
	}

	s := mustBody(t, BodyDef{Name: "s", Velocity: vmath.Vec(1, 1), Type: Static})
	e.Settle(s)
	if !vmath.IsZero(s.Position) {
		t.Errorf("static body settled to %v", s.Position)
	}
}
