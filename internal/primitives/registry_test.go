package primitives

import (
	"path/filepath"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    rl.Color
		wantErr bool
	}{
		{"#ff0080", rl.NewColor(255, 0, 128, 255), false},
		{"00ff0040", rl.NewColor(0, 255, 0, 64), false},
		{"#fff", rl.Color{}, true},
		{"#zzzzzz", rl.Color{}, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%q) err = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLoadBytes(t *testing.T) {
	r := NewRegistry()
	err := r.LoadBytes([]byte(`
shapes:
  - type: ellipse
    fill: "#00ffff"
    border_width: 3
bodies:
  pf_floor:
    fill: "#00ff00"
`))
	if err != nil {
		t.Fatalf("LoadBytes: %v", err)
	}
	st := r.Style("ellipse", "player")
	if st.Fill != rl.NewColor(0, 255, 255, 255) || st.BorderWidth != 3 || st.Border != rl.Blue {
		t.Errorf("ellipse style = %+v", st)
	}
	if got := r.Style("rect", "pf_floor").Fill; got != rl.NewColor(0, 255, 0, 255) {
		t.Errorf("floor fill = %v", got)
	}
	if got := r.Style("rect", "pf_0"); got != r.Style("rect", "") {
		t.Errorf("unrelated body got an override: %+v", got)
	}
	if got := r.Style("hexagon", ""); got != r.Style("rect", "") {
		t.Errorf("unknown shape style = %+v", got)
	}
}

func TestLoadBytesErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown shape", "shapes:\n  - type: star\n"},
		{"bad colour", "shapes:\n  - type: rect\n    fill: red\n"},
		{"bad override", "bodies:\n  player:\n    type: blob\n"},
		{"malformed", "shapes: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := NewRegistry().LoadBytes([]byte(tt.yaml)); err == nil {
				t.Error("LoadBytes accepted invalid input")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if err := NewRegistry().Load(filepath.Join(t.TempDir(), "none.yaml")); err != nil {
		t.Errorf("Load(missing) = %v", err)
	}
}
