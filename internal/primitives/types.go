package primitives

// ShapeDef is the YAML definition of how one shape (or one named body) is drawn
// (e.g. assets/shapes.yaml). Colours are "#RRGGBB" or "#RRGGBBAA"; empty fields keep the default.
type ShapeDef struct {
	Type        string  `yaml:"type,omitempty"`
	Fill        string  `yaml:"fill,omitempty"`
	Border      string  `yaml:"border,omitempty"`
	BorderWidth float32 `yaml:"border_width,omitempty"`
	FontSize    int32   `yaml:"font_size,omitempty"`
}

// Sheet is the root of a shapes file: per-shape styles plus per-body overrides keyed by body name.
type Sheet struct {
	Shapes []ShapeDef          `yaml:"shapes"`
	Bodies map[string]ShapeDef `yaml:"bodies,omitempty"`
}
