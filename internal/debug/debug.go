package debug

import (
	"fmt"
	"runtime"

	"physics-arena/internal/fonts"
	"physics-arena/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh the text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug draws runtime overlays in the top-right corner: FPS, heap size and simulation stats.
// All overlays are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowStats    bool
	stats        func() scene.Stats
	font         rl.Font
	frameCount   uint32
	lines        []string
	memStats     runtime.MemStats
}

// New returns a Debug system with all overlays hidden. stats is polled when ShowStats is on; it may be nil.
func New(stats func() scene.Stats) *Debug {
	return &Debug{stats: stats}
}

// SetFont sets the overlay font. A zero Font keeps raylib's default.
func (d *Debug) SetFont(font rl.Font) {
	d.font = font
}

// Toggle flips every overlay on or off together.
func (d *Debug) Toggle() {
	on := !(d.ShowFPS || d.ShowMemAlloc || d.ShowStats)
	d.ShowFPS, d.ShowMemAlloc, d.ShowStats = on, on, on
	d.lines = nil
}

// FormatStats renders simulation stats as overlay lines.
func FormatStats(st scene.Stats) []string {
	return []string{
		fmt.Sprintf("Frame: %d", st.Frames),
		fmt.Sprintf("Bodies: %d (%d dyn, %d static, %d none)", st.Bodies, st.Dynamic, st.Static, st.None),
		fmt.Sprintf("Collided: %d, contacts: %d", st.Collided, st.Contacts),
		fmt.Sprintf("Gravity: (%.3f, %.3f)", st.Gravity[0], st.Gravity[1]),
		fmt.Sprintf("Seed: %d", st.Seed),
	}
}

// Draw renders the enabled overlays. Call last in the draw loop.
// Text is only recomputed every updateInterval frames.
func (d *Debug) Draw() {
	d.frameCount++
	if d.frameCount%updateInterval == 0 || d.lines == nil {
		d.refresh()
	}
	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	for _, text := range d.lines {
		w := fonts.MeasureText(d.font, text, fontSize)
		fonts.DrawText(d.font, text, screenW-w-padding, y, fontSize, rl.Green)
		y += lineHeight
	}
}

func (d *Debug) refresh() {
	d.lines = d.lines[:0]
	if d.ShowFPS {
		d.lines = append(d.lines, fmt.Sprintf("FPS: %d", rl.GetFPS()))
	}
	if d.ShowMemAlloc {
		runtime.ReadMemStats(&d.memStats)
		d.lines = append(d.lines, fmt.Sprintf("Mem: %.2f MiB", float64(d.memStats.Alloc)/(1024*1024)))
	}
	if d.ShowStats && d.stats != nil {
		d.lines = append(d.lines, FormatStats(d.stats())...)
	}
}
