package primitives

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

// ShapesPath is the default shapes file, relative to the working directory.
const ShapesPath = "assets/shapes.yaml"

// Style is the resolved look of a shape.
type Style struct {
	Fill        rl.Color
	Border      rl.Color
	BorderWidth float32
	FontSize    int32
}

// DrawFunc draws one body inside r (screen space). label is only used by text shapes.
type DrawFunc func(r rl.Rectangle, st Style, label string)

// highlight is blended over bodies that touched something during the last pass.
var highlight = rl.NewColor(255, 80, 80, 255)

// Registry maps shape names to a draw function and a style. Body-name overrides win
// over the shape style.
type Registry struct {
	draw   map[string]DrawFunc
	styles map[string]Style
	bodies map[string]Style
}

// NewRegistry returns a registry with rect, ellipse and text shapes and their default colours.
func NewRegistry() *Registry {
	r := &Registry{
		draw:   make(map[string]DrawFunc),
		styles: make(map[string]Style),
		bodies: make(map[string]Style),
	}
	r.Register("rect", Style{Fill: rl.Gray, Border: rl.DarkGray, BorderWidth: 1}, drawRect)
	r.Register("ellipse", Style{Fill: rl.SkyBlue, Border: rl.Blue, BorderWidth: 1}, drawEllipse)
	r.Register("text", Style{Fill: rl.White, FontSize: 20}, drawText)
	return r
}

// Register adds or replaces a shape.
func (r *Registry) Register(shape string, st Style, fn DrawFunc) {
	r.draw[shape] = fn
	r.styles[shape] = st
}

// Has reports whether shape has a draw function.
func (r *Registry) Has(shape string) bool {
	_, ok := r.draw[shape]
	return ok
}

// Load applies the shapes file at path. A missing file is not an error.
func (r *Registry) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if err := r.LoadBytes(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// LoadBytes applies a YAML shapes sheet on top of the current styles.
func (r *Registry) LoadBytes(data []byte) error {
	var sheet Sheet
	if err := yaml.Unmarshal(data, &sheet); err != nil {
		return err
	}
	for i, def := range sheet.Shapes {
		base, ok := r.styles[def.Type]
		if !ok {
			return fmt.Errorf("shapes[%d]: unknown shape %q", i, def.Type)
		}
		st, err := merge(base, def)
		if err != nil {
			return fmt.Errorf("shapes[%d]: %w", i, err)
		}
		r.styles[def.Type] = st
	}
	for name, def := range sheet.Bodies {
		shape := def.Type
		if shape == "" {
			shape = "rect"
		}
		base, ok := r.styles[shape]
		if !ok {
			return fmt.Errorf("bodies.%s: unknown shape %q", name, shape)
		}
		st, err := merge(base, def)
		if err != nil {
			return fmt.Errorf("bodies.%s: %w", name, err)
		}
		r.bodies[name] = st
	}
	return nil
}

func merge(st Style, def ShapeDef) (Style, error) {
	if def.Fill != "" {
		c, err := ParseColor(def.Fill)
		if err != nil {
			return st, err
		}
		st.Fill = c
	}
	if def.Border != "" {
		c, err := ParseColor(def.Border)
		if err != nil {
			return st, err
		}
		st.Border = c
	}
	if def.BorderWidth > 0 {
		st.BorderWidth = def.BorderWidth
	}
	if def.FontSize > 0 {
		st.FontSize = def.FontSize
	}
	return st, nil
}

// Style returns the style for a body of the given shape and name.
func (r *Registry) Style(shape, name string) Style {
	if st, ok := r.bodies[name]; ok {
		return st
	}
	if st, ok := r.styles[shape]; ok {
		return st
	}
	return r.styles["rect"]
}

// Draw draws a body. Unknown shapes fall back to rect; collided bodies get a highlighted border.
func (r *Registry) Draw(shape, name string, rect rl.Rectangle, collided bool, label string) {
	fn, ok := r.draw[shape]
	if !ok {
		fn = drawRect
	}
	st := r.Style(shape, name)
	if collided {
		st.Border = highlight
		st.BorderWidth = max(st.BorderWidth, 2)
	}
	fn(rect, st, label)
}

// ParseColor parses "#RRGGBB" or "#RRGGBBAA".
func ParseColor(s string) (rl.Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return rl.Color{}, fmt.Errorf("bad colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return rl.Color{}, fmt.Errorf("bad colour %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return rl.NewColor(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

func drawRect(r rl.Rectangle, st Style, _ string) {
	rl.DrawRectangleRec(r, st.Fill)
	if st.BorderWidth > 0 {
		rl.DrawRectangleLinesEx(r, st.BorderWidth, st.Border)
	}
}

func drawEllipse(r rl.Rectangle, st Style, _ string) {
	cx := int32(r.X + r.Width/2)
	cy := int32(r.Y + r.Height/2)
	rl.DrawEllipse(cx, cy, r.Width/2, r.Height/2, st.Fill)
	if st.BorderWidth > 0 {
		rl.DrawEllipseLines(cx, cy, r.Width/2, r.Height/2, st.Border)
	}
}

func drawText(r rl.Rectangle, st Style, label string) {
	rl.DrawText(label, int32(r.X), int32(r.Y), st.FontSize, st.Fill)
}
