package physics

import (
	"fmt"
	"math"
	"testing"

	"physics-arena/internal/vmath"

	"github.com/go-gl/mathgl/mgl64"
)

func approx(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// recordLogger keeps every formatted line for assertions.
type recordLogger struct {
	lines []string
}

func (r *recordLogger) Logf(format string, args ...any) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

func newTestEngine(gravity mgl64.Vec2) *Engine {
	return NewEngine(NewWorld(gravity), Options{
		Limits: DefaultLimits(),
		Area:   vmath.Rect{W: 320, H: 200},
	})
}

func mustBody(t *testing.T, def BodyDef) *Body {
	t.Helper()
	if def.Mass == 0 {
		def.Mass = 1
	}
	if def.Material.Name == "" {
		def.Material = Default
	}
	if def.Width == 0 && def.Height == 0 {
		def.Width, def.Height = 16, 16
	}
	b, err := NewBody(def)
	if err != nil {
		t.Fatalf("NewBody(%q): %v", def.Name, err)
	}
	return b
}
