package debug

import (
	"strings"
	"testing"

	"physics-arena/internal/scene"

	"github.com/go-gl/mathgl/mgl64"
)

func TestFormatStats(t *testing.T) {
	lines := FormatStats(scene.Stats{
		Frames: 12, Bodies: 5, Dynamic: 2, Static: 2, None: 1,
		Collided: 1, Contacts: 2, Gravity: mgl64.Vec2{0, -0.981}, Seed: 7,
	})
	want := []string{
		"Frame: 12",
		"Bodies: 5 (2 dyn, 2 static, 1 none)",
		"Collided: 1, contacts: 2",
		"Gravity: (0.000, -0.981)",
		"Seed: 7",
	}
	if strings.Join(lines, "\n") != strings.Join(want, "\n") {
		t.Errorf("FormatStats =\n%s\nwant\n%s", strings.Join(lines, "\n"), strings.Join(want, "\n"))
	}
}

func TestToggle(t *testing.T) {
	d := New(nil)
	d.Toggle()
	if !d.ShowFPS || !d.ShowMemAlloc || !d.ShowStats {
		t.Error("Toggle did not turn every overlay on")
	}
	d.ShowMemAlloc = false
	d.Toggle()
	if d.ShowFPS || d.ShowMemAlloc || d.ShowStats {
		t.Error("Toggle did not turn every overlay off")
	}
}
