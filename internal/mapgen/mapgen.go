package mapgen

import (
	"fmt"
	"math"
	"time"

	"physics-arena/internal/physics"
	"physics-arena/internal/vmath"

	"github.com/go-gl/mathgl/mgl64"
)

// PlatformOptions controls procedural platform generation.
// Area is the region platforms are laid out in; Tile is the world size of one grid cell.
// Border is the number of free tiles kept around the area. Widths are in tiles, every
// platform is one tile high. Seed == 0 uses a time-based seed.
type PlatformOptions struct {
	Count    int
	Area     vmath.Rect
	Tile     float64
	Border   int
	MinWidth int
	MaxWidth int
	Seed     int64
	Material physics.Material
}

// DefaultPlatformOptions returns a sane configuration for area.
func DefaultPlatformOptions(area vmath.Rect) PlatformOptions {
	return PlatformOptions{
		Count:    6,
		Area:     area,
		Tile:     16,
		Border:   1,
		MinWidth: 2,
		MaxWidth: 5,
		Material: physics.Steel,
	}
}

// GeneratePlatforms lays out Count static platforms on the tile grid of the area and
// returns their definitions together with the seed actually used. The same seed and
// options always produce the same platforms. Nothing is returned when the grid left
// inside the border is empty.
func GeneratePlatforms(opts PlatformOptions) ([]physics.BodyDef, int64) {
	if opts.Tile <= 0 {
		opts.Tile = 16
	}
	if opts.MinWidth < 1 {
		opts.MinWidth = 1
	}
	if opts.MaxWidth < opts.MinWidth {
		opts.MaxWidth = opts.MinWidth
	}
	if opts.Material.Name == "" {
		opts.Material = physics.Steel
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cols := int(opts.Area.W/opts.Tile) - 2*opts.Border
	rows := int(opts.Area.H/opts.Tile) - 2*opts.Border
	if opts.Count <= 0 || cols <= 0 || rows <= 0 {
		return nil, seed
	}

	defs := make([]physics.BodyDef, 0, opts.Count)
	for i := 0; i < opts.Count; i++ {
		col := opts.Border + pick(hash2D(int32(i), 0, seed), cols)
		row := opts.Border + pick(hash2D(int32(i), 1, seed), rows)
		width := opts.MinWidth + pick(hash2D(int32(i), 2, seed), opts.MaxWidth-opts.MinWidth+1)
		width = min(width, opts.Border+cols-col)

		defs = append(defs, physics.BodyDef{
			Name:     fmt.Sprintf("pf_%d", i),
			Shape:    "rect",
			Position: mgl64.Vec2{opts.Area.X + float64(col)*opts.Tile, opts.Area.Y + float64(row)*opts.Tile},
			Width:    float64(width) * opts.Tile,
			Height:   opts.Tile,
			Mass:     1,
			Material: opts.Material,
			Type:     physics.Static,
		})
	}
	return defs, seed
}

// pick maps a value in [0,1] to an index in [0,n).
func pick(v float64, n int) int {
	i := int(math.Floor(v * float64(n)))
	return max(0, min(i, n-1))
}

// hash2D maps integer lattice coordinates to a deterministic pseudo-random float in [0,1].
func hash2D(x, y int32, seed int64) float64 {
	s := int32(seed) ^ int32(seed>>32)
	n := x*374761393 + y*668265263 + s*362437
	n = (n ^ (n >> 13)) * 1274126177
	n = n ^ (n >> 16)
	const invMaxInt = 1.0 / 2147483647.0
	return float64(n&0x7fffffff) * invMaxInt
}
