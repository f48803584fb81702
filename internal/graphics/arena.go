package graphics

import (
	"physics-arena/internal/physics"
	"physics-arena/internal/primitives"
	"physics-arena/internal/vmath"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	gridStep       = 16
	gridMajorEvery = 4
	gridMinorAlpha = 30
	gridMajorAlpha = 70
)

var (
	// Reused every frame to avoid per-frame colour allocations.
	gridMinor   = rl.NewColor(128, 128, 128, gridMinorAlpha)
	gridMajor   = rl.NewColor(160, 160, 160, gridMajorAlpha)
	arenaBorder = rl.NewColor(220, 220, 220, 255)
)

// DrawArena draws the arena seen through v: the tile grid and border of area, then every
// body of the snapshot in registration order. World bodies are clipped to the view and
// follow the camera; None bodies are overlays drawn at a fixed place on screen.
// labels gives the text of "text" bodies by name.
func DrawArena(states []physics.BodyState, v Viewport, area vmath.Rect, shapes *primitives.Registry, labels map[string]string, grid bool) {
	view := v.ToScreen(v.View)
	rl.BeginScissorMode(int32(view.X), int32(view.Y), int32(view.Width), int32(view.Height))
	rl.BeginMode2D(v.Camera2D())
	if grid && gridStep*v.Scale >= 4 {
		drawGrid(area)
	}
	rl.DrawRectangleLinesEx(worldRect(area), 1/v.Scale, arenaBorder)
	rl.EndMode2D()
	// Bodies go through ToScreen rather than the camera so borders stay pixel sized.
	for _, s := range states {
		if s.Type != physics.None {
			shapes.Draw(s.Shape, s.Name, v.ToScreen(s.Bounds()), s.Collided, labels[s.Name])
		}
	}
	rl.EndScissorMode()

	hud := v.Anchored(area.Min())
	for _, s := range states {
		if s.Type == physics.None {
			shapes.Draw(s.Shape, s.Name, hud.ToScreen(s.Bounds()), s.Collided, labels[s.Name])
		}
	}
}

func worldRect(r vmath.Rect) rl.Rectangle {
	return rl.Rectangle{X: float32(r.X), Y: float32(r.Y), Width: float32(r.W), Height: float32(r.H)}
}

// drawGrid draws vertical and horizontal tile lines across area in arena units, every
// fourth one brighter. It must run inside BeginMode2D.
func drawGrid(area vmath.Rect) {
	r := worldRect(area)
	var start, end rl.Vector2
	for i := 0; float32(i*gridStep) <= r.Width; i++ {
		c := gridMinor
		if i%gridMajorEvery == 0 {
			c = gridMajor
		}
		x := r.X + float32(i*gridStep)
		start.X, start.Y = x, r.Y
		end.X, end.Y = x, r.Y+r.Height
		rl.DrawLineV(start, end, c)
	}
	for i := 0; float32(i*gridStep) <= r.Height; i++ {
		c := gridMinor
		if i%gridMajorEvery == 0 {
			c = gridMajor
		}
		y := r.Y + float32(i*gridStep)
		start.X, start.Y = r.X, y
		end.X, end.Y = r.X+r.Width, y
		rl.DrawLineV(start, end, c)
	}
}
