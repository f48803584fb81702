package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Options describes the viewer window.
type Options struct {
	Title      string
	Width      int
	Height     int
	FPS        int
	Fullscreen bool
}

// Run opens the window and runs the main loop. Each frame it calls update with the frame time,
// then clears the screen and calls draw. ESC is left to the caller (it toggles the console);
// the window closes via its close button.
func Run(opts Options, update func(dt float32), draw func()) {
	if opts.Fullscreen {
		rl.SetConfigFlags(rl.FlagFullscreenMode)
		opts.Width, opts.Height = rl.GetMonitorWidth(0), rl.GetMonitorHeight(0)
	}
	rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(int32(opts.FPS))

	for !rl.WindowShouldClose() {
		update(rl.GetFrameTime())

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
}
