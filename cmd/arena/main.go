package main

import (
	"fmt"
	"os"
	"time"

	"physics-arena/internal/commands"
	"physics-arena/internal/debug"
	"physics-arena/internal/engineconfig"
	"physics-arena/internal/env"
	"physics-arena/internal/fonts"
	"physics-arena/internal/graphics"
	"physics-arena/internal/logger"
	"physics-arena/internal/primitives"
	"physics-arena/internal/scene"
	"physics-arena/internal/terminal"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const viewMargin = 24

func main() {
	if _, err := env.Load(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "env: %v\n", err)
	}
	cfg, err := engineconfig.Load(env.ConfigPath())
	if err != nil {
		fatal(err)
	}
	if err := env.Apply(&cfg); err != nil {
		fatal(err)
	}

	log := logger.New(logger.LogFilePath)
	scn, err := scene.New(cfg, log)
	if err != nil {
		fatal(err)
	}
	reg := commands.NewRegistry()
	scene.RegisterCommands(reg, scn)
	term := terminal.New(log, reg)

	shapes := primitives.NewRegistry()
	if err := shapes.Load(primitives.ShapesPath); err != nil {
		log.Logf("shapes: %v", err)
	}
	dbg := debug.New(scn.Stats)
	dbg.ShowFPS = cfg.Window.ShowFPS
	dbg.ShowStats = cfg.Window.ShowStats

	fontPath := ""
	if cfg.Window.Font != "" {
		if fontPath, err = fonts.FindFont(cfg.Window.Font, fonts.BaseDirs()...); err != nil {
			log.Logf("font %q: %v", cfg.Window.Font, err)
		}
	}
	fontLoaded := false

	viewport := func() graphics.Viewport {
		return graphics.Fit(scn.Camera.View(), float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()), viewMargin)
	}

	update := func(dt float32) {
		if !fontLoaded {
			// GPU resources need the window, so the font is loaded on the first frame.
			fontLoaded = true
			if fontPath != "" {
				f := fonts.Load(fontPath)
				term.SetFont(f)
				dbg.SetFont(f)
			}
		}
		term.Update()
		if !term.IsOpen() {
			handleInput(scn, dbg, viewport(), log)
		}
		scn.Update(time.Duration(float64(dt) * float64(time.Second)))
	}
	draw := func() {
		states, err := scn.Snapshot()
		if err != nil {
			log.Logf("snapshot: %v", err)
		}
		graphics.DrawArena(states, viewport(), scn.Engine.Area(), shapes, scn.Labels(), true)
		term.Draw()
		dbg.Draw()
	}

	graphics.Run(graphics.Options{
		Title:  "physics arena",
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		FPS:    cfg.Window.FPS,
	}, update, draw)
}

// handleInput maps the keyboard and mouse to scene intents: arrows push the player
// (ctrl x2.5, shift x4), up or space jumps, G inverts gravity, Z rebuilds the scene,
// F1 toggles the overlays and a left click logs the body under the cursor.
func handleInput(scn *scene.Scene, dbg *debug.Debug, vp graphics.Viewport, log *logger.Logger) {
	scn.Move(scene.Input{
		Up:    rl.IsKeyDown(rl.KeyUp),
		Down:  rl.IsKeyDown(rl.KeyDown),
		Left:  rl.IsKeyDown(rl.KeyLeft),
		Right: rl.IsKeyDown(rl.KeyRight),
		Boost: rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl),
		Turbo: rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift),
	})
	if rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeySpace) {
		scn.Jump()
	}
	if rl.IsKeyPressed(rl.KeyG) {
		scn.InvertGravity()
	}
	if rl.IsKeyReleased(rl.KeyZ) {
		if err := scn.Reset(); err != nil {
			log.Logf("reset: %v", err)
		}
	}
	if rl.IsKeyPressed(rl.KeyF1) {
		dbg.Toggle()
	}
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		m := rl.GetMousePosition()
		p := vp.ToWorld(m.X, m.Y)
		if b, ok := scn.Pick(p); ok {
			log.Logf("picked #%d %s (%s, %s) at (%.1f, %.1f) vel (%.3f, %.3f)",
				b.ID, b.Name, b.Type, b.Material.Name, b.Position[0], b.Position[1], b.Velocity[0], b.Velocity[1])
		}
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
