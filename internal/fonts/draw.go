package fonts

import rl "github.com/gen2brain/raylib-go/raylib"

const spacing = 1

// Load loads a TTF/OTF at a size suited to UI text. A zero Font is returned when the
// file cannot be used, so callers fall back to raylib's default font.
func Load(path string) rl.Font {
	f := rl.LoadFontEx(path, 48, nil)
	if f.Texture.ID == 0 {
		return rl.Font{}
	}
	rl.SetTextureFilter(f.Texture, rl.FilterBilinear)
	return f
}

// DrawText draws with font, or with raylib's default font when font has no texture.
func DrawText(font rl.Font, text string, x, y, size int32, c rl.Color) {
	if font.Texture.ID == 0 {
		rl.DrawText(text, x, y, size, c)
		return
	}
	rl.DrawTextEx(font, text, rl.NewVector2(float32(x), float32(y)), float32(size), spacing, c)
}

// MeasureText returns the width of text as DrawText would draw it.
func MeasureText(font rl.Font, text string, size int32) int32 {
	if font.Texture.ID == 0 {
		return rl.MeasureText(text, size)
	}
	return int32(rl.MeasureTextEx(font, text, float32(size), spacing).X)
}
