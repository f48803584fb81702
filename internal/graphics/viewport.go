package graphics

import (
	"physics-arena/internal/vmath"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"
)

// Viewport maps the camera view (arena coordinates) to screen pixels with a uniform
// scale, keeping the view centred on screen.
type Viewport struct {
	View    vmath.Rect
	Scale   float32
	OffsetX float32
	OffsetY float32
}

// Fit returns the largest viewport showing the whole view inside a screen of the given
// size, leaving margin pixels on every side. The scale never drops below a tiny positive value.
func Fit(view vmath.Rect, screenW, screenH, margin float32) Viewport {
	availW := math32.Max(screenW-2*margin, 1)
	availH := math32.Max(screenH-2*margin, 1)
	aw := math32.Max(float32(view.W), 1)
	ah := math32.Max(float32(view.H), 1)
	scale := math32.Max(math32.Min(availW/aw, availH/ah), 1e-3)
	return Viewport{
		View:    view,
		Scale:   scale,
		OffsetX: math32.Floor((screenW - aw*scale) / 2),
		OffsetY: math32.Floor((screenH - ah*scale) / 2),
	}
}

// ToScreen maps an arena box to a screen rectangle.
func (v Viewport) ToScreen(r vmath.Rect) rl.Rectangle {
	return rl.Rectangle{
		X:      v.OffsetX + float32(r.X-v.View.X)*v.Scale,
		Y:      v.OffsetY + float32(r.Y-v.View.Y)*v.Scale,
		Width:  float32(r.W) * v.Scale,
		Height: float32(r.H) * v.Scale,
	}
}

// ToWorld maps a screen point (e.g. the mouse) back to arena coordinates.
func (v Viewport) ToWorld(x, y float32) mgl64.Vec2 {
	return mgl64.Vec2{
		v.View.X + float64((x-v.OffsetX)/v.Scale),
		v.View.Y + float64((y-v.OffsetY)/v.Scale),
	}
}

// Camera2D returns the raylib camera equivalent to ToScreen, for drawing in arena units.
func (v Viewport) Camera2D() rl.Camera2D {
	return rl.Camera2D{
		Offset: rl.NewVector2(v.OffsetX, v.OffsetY),
		Target: rl.NewVector2(float32(v.View.X), float32(v.View.Y)),
		Zoom:   v.Scale,
	}
}

// Anchored returns v with its view moved to origin. Bodies that stick to the camera are
// placed relative to the arena origin, so drawing them through the anchored viewport keeps
// them fixed on screen wherever the camera is.
func (v Viewport) Anchored(origin mgl64.Vec2) Viewport {
	v.View.X, v.View.Y = origin[0], origin[1]
	return v
}
