package mapgen

import (
	"testing"

	"physics-arena/internal/physics"
	"physics-arena/internal/vmath"
)

func TestGeneratePlatformsDeterministic(t *testing.T) {
	opts := DefaultPlatformOptions(vmath.Rect{W: 320, H: 200})
	opts.Seed = 1234

	a, seedA := GeneratePlatforms(opts)
	b, seedB := GeneratePlatforms(opts)
	if seedA != 1234 || seedB != 1234 {
		t.Fatalf("seeds = %d, %d", seedA, seedB)
	}
	if len(a) != opts.Count || len(b) != opts.Count {
		t.Fatalf("got %d and %d platforms, want %d", len(a), len(b), opts.Count)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("platform %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGeneratePlatformsStayOnGrid(t *testing.T) {
	area := vmath.Rect{X: 8, Y: 4, W: 640, H: 352}
	opts := PlatformOptions{Count: 50, Area: area, Tile: 16, Border: 1, MinWidth: 2, MaxWidth: 8, Seed: 7}
	inner := vmath.Rect{X: area.X + 16, Y: area.Y + 16, W: area.W - 32, H: area.H - 32}

	defs, _ := GeneratePlatforms(opts)
	for _, d := range defs {
		b, err := physics.NewBody(d)
		if err != nil {
			t.Fatalf("%s: %v", d.Name, err)
		}
		if d.Type != physics.Static || d.Material != physics.Steel {
			t.Errorf("%s: type %v material %s", d.Name, d.Type, d.Material.Name)
		}
		if !inner.ContainsRect(b.Bounds()) {
			t.Errorf("%s at %+v leaves the bordered area %+v", d.Name, b.Bounds(), inner)
		}
		if d.Height != 16 || d.Width < 16 || d.Width > 8*16 {
			t.Errorf("%s: size %vx%v", d.Name, d.Width, d.Height)
		}
		if int(d.Position[0]-area.X)%16 != 0 || int(d.Position[1]-area.Y)%16 != 0 {
			t.Errorf("%s off grid at %v", d.Name, d.Position)
		}
	}
}

func TestGeneratePlatformsEmpty(t *testing.T) {
	tests := []struct {
		name string
		opts PlatformOptions
	}{
		{"no count", PlatformOptions{Count: 0, Area: vmath.Rect{W: 320, H: 200}, Seed: 1}},
		{"border eats area", PlatformOptions{Count: 3, Area: vmath.Rect{W: 32, H: 32}, Tile: 16, Border: 1, Seed: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if defs, _ := GeneratePlatforms(tt.opts); len(defs) != 0 {
				t.Errorf("got %d platforms, want none", len(defs))
			}
		})
	}
}

func TestHash2DRange(t *testing.T) {
	for i := int32(0); i < 200; i++ {
		v := hash2D(i, i*3, 99)
		if v < 0 || v > 1 {
			t.Fatalf("hash2D(%d) = %v out of [0,1]", i, v)
		}
	}
}
