package scene

import (
	"math"
	"time"

	"physics-arena/internal/vmath"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera is the part of the arena shown on screen. It eases toward its target every
// frame: each millisecond covers Tween of the remaining distance.
type Camera struct {
	Position      mgl64.Vec2 // top-left corner of the view
	Width, Height float64
	Tween         float64
	// Bounds keeps the view inside the arena. A zero-sized Bounds leaves the view free.
	Bounds vmath.Rect
}

// View returns the visible area in arena coordinates.
func (c *Camera) View() vmath.Rect {
	return vmath.NewRect(c.Position, c.Width, c.Height)
}

// Follow moves the view toward target by one tween step for elapsed. A step never
// overshoots the target.
func (c *Camera) Follow(target vmath.Rect, elapsed time.Duration) {
	k := c.Tween * float64(elapsed) / float64(time.Millisecond)
	k = math.Max(0, math.Min(k, 1))
	c.Position = c.Position.Add(c.goal(target).Sub(c.Position).Mul(k))
	c.clamp()
}

// Snap centres the view on target at once.
func (c *Camera) Snap(target vmath.Rect) {
	c.Position = c.goal(target)
	c.clamp()
}

func (c *Camera) goal(target vmath.Rect) mgl64.Vec2 {
	return target.Center().Sub(mgl64.Vec2{c.Width / 2, c.Height / 2})
}

// clamp keeps the view inside Bounds; on an axis where the view is larger than Bounds
// it is centred instead.
func (c *Camera) clamp() {
	if c.Bounds.W <= 0 || c.Bounds.H <= 0 {
		return
	}
	lo := c.Bounds.Min()
	hi := c.Bounds.Max().Sub(mgl64.Vec2{c.Width, c.Height})
	for i := 0; i < 2; i++ {
		if hi[i] < lo[i] {
			c.Position[i] = (lo[i] + hi[i]) / 2
			continue
		}
		c.Position[i] = math.Max(lo[i], math.Min(c.Position[i], hi[i]))
	}
}
