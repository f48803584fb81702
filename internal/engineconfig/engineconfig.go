package engineconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"physics-arena/internal/physics"
	"physics-arena/internal/vmath"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// ConfigPath is the default path to the arena config file, relative to the process working directory.
const ConfigPath = "config/arena.yaml"

// Config holds the tunables of one simulation: gravity, clamps, arena bounds and the demo scene setup.
type Config struct {
	Gravity        [2]float64       `yaml:"gravity"`
	Limits         LimitsConfig     `yaml:"limits"`
	Arena          ArenaConfig      `yaml:"arena"`
	AmbientDamping bool             `yaml:"ambient_damping"`
	JumpImpulse    float64          `yaml:"jump_impulse"`
	Seed           int64            `yaml:"seed"`
	Platforms      PlatformsConfig  `yaml:"platforms"`
	Materials      []MaterialConfig `yaml:"materials"`
	Camera         CameraConfig     `yaml:"camera"`
	Window         WindowConfig     `yaml:"window"`
}

// LimitsConfig mirrors physics.Limits.
type LimitsConfig struct {
	AccMin      float64 `yaml:"acc_min"`
	AccMax      float64 `yaml:"acc_max"`
	SpeedMin    float64 `yaml:"speed_min"`
	SpeedMax    float64 `yaml:"speed_max"`
	ColSpeedMin float64 `yaml:"col_speed_min"`
	ColSpeedMax float64 `yaml:"col_speed_max"`
}

// ArenaConfig is the play area bodies are kept in.
type ArenaConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlatformsConfig drives the platform generator. Widths are in tiles.
type PlatformsConfig struct {
	Count    int     `yaml:"count"`
	Tile     float64 `yaml:"tile"`
	Border   int     `yaml:"border"`
	MinWidth int     `yaml:"min_width"`
	MaxWidth int     `yaml:"max_width"`
}

// CameraConfig sizes the view that follows the player. A zero width or height shows the
// whole arena on that axis. Tween is the share of the remaining distance covered per millisecond.
type CameraConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Tween  float64 `yaml:"tween"`
}

// MaterialConfig declares an extra material on top of the built-in presets.
type MaterialConfig struct {
	Name       string  `yaml:"name"`
	Elasticity float64 `yaml:"elasticity"`
	Density    float64 `yaml:"density"`
	Friction   float64 `yaml:"friction"`
}

// WindowConfig is only read by the viewer.
type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	FPS       int    `yaml:"fps"`
	ShowFPS   bool   `yaml:"show_fps"`
	ShowStats bool   `yaml:"show_stats"`
	Font      string `yaml:"font,omitempty"` // family searched under assets/fonts; empty = built-in font
}

// Default returns the configuration used when no file is present.
func Default() Config {
	l := physics.DefaultLimits()
	return Config{
		Gravity: [2]float64{0, -0.981},
		Limits: LimitsConfig{
			AccMin: l.AccMin, AccMax: l.AccMax,
			SpeedMin: l.SpeedMin, SpeedMax: l.SpeedMax,
			ColSpeedMin: l.ColSpeedMin, ColSpeedMax: l.ColSpeedMax,
		},
		Arena:       ArenaConfig{Width: 320, Height: 200},
		JumpImpulse: 40,
		Platforms:   PlatformsConfig{Count: 6, Tile: 16, Border: 1, MinWidth: 2, MaxWidth: 5},
		Materials: []MaterialConfig{
			{Name: "player", Elasticity: 0.98, Density: 0.6, Friction: 0.95},
		},
		Camera: CameraConfig{Width: 160, Height: 100, Tween: 0.005},
		Window: WindowConfig{Width: 960, Height: 600, FPS: 60},
	}
}

// Load reads the config at path on top of Default(). A missing file yields Default() and no error;
// a malformed or invalid file is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating the parent directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports the first out-of-range value, naming its key.
func (c Config) Validate() error {
	l := c.Limits
	for _, r := range []struct {
		key      string
		min, max float64
	}{
		{"limits.acc", l.AccMin, l.AccMax},
		{"limits.speed", l.SpeedMin, l.SpeedMax},
		{"limits.col_speed", l.ColSpeedMin, l.ColSpeedMax},
	} {
		if r.min < 0 || r.max < r.min {
			return fmt.Errorf("%s: need 0 <= min <= max, got [%v, %v]", r.key, r.min, r.max)
		}
	}
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		return fmt.Errorf("arena: width and height must be > 0, got %vx%v", c.Arena.Width, c.Arena.Height)
	}
	if c.JumpImpulse < 0 {
		return fmt.Errorf("jump_impulse: must be >= 0, got %v", c.JumpImpulse)
	}
	p := c.Platforms
	if p.Count < 0 {
		return fmt.Errorf("platforms.count: must be >= 0, got %d", p.Count)
	}
	if p.Count > 0 && (p.Tile <= 0 || p.MinWidth < 1 || p.MaxWidth < p.MinWidth || p.Border < 0) {
		return fmt.Errorf("platforms: need tile > 0, border >= 0 and 1 <= min_width <= max_width")
	}
	if err := c.RegisterMaterials(physics.NewMaterialRegistry()); err != nil {
		return err
	}
	if c.Camera.Width < 0 || c.Camera.Height < 0 || c.Camera.Tween < 0 {
		return fmt.Errorf("camera: width, height and tween must be >= 0")
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 || c.Window.FPS <= 0 {
		return fmt.Errorf("window: width, height and fps must be > 0")
	}
	return nil
}

// GravityVec returns the configured gravity.
func (c Config) GravityVec() mgl64.Vec2 {
	return mgl64.Vec2{c.Gravity[0], c.Gravity[1]}
}

// PhysicsLimits converts the limits section.
func (c Config) PhysicsLimits() physics.Limits {
	l := c.Limits
	return physics.Limits{
		AccMin: l.AccMin, AccMax: l.AccMax,
		SpeedMin: l.SpeedMin, SpeedMax: l.SpeedMax,
		ColSpeedMin: l.ColSpeedMin, ColSpeedMax: l.ColSpeedMax,
	}
}

// Area returns the play area.
func (c Config) Area() vmath.Rect {
	return vmath.Rect{X: c.Arena.X, Y: c.Arena.Y, W: c.Arena.Width, H: c.Arena.Height}
}

// CameraSize returns the view extent, falling back to the arena size on a zero axis.
func (c Config) CameraSize() (w, h float64) {
	w, h = c.Camera.Width, c.Camera.Height
	if w == 0 {
		w = c.Arena.Width
	}
	if h == 0 {
		h = c.Arena.Height
	}
	return w, h
}

// EngineOptions builds the physics options for this config.
func (c Config) EngineOptions(log physics.Logger) physics.Options {
	return physics.Options{
		Limits:         c.PhysicsLimits(),
		Area:           c.Area(),
		AmbientDamping: c.AmbientDamping,
		Log:            log,
	}
}

// RegisterMaterials adds every configured material to reg.
func (c Config) RegisterMaterials(reg *physics.MaterialRegistry) error {
	for i, mc := range c.Materials {
		m, err := physics.NewMaterial(mc.Name, mc.Elasticity, mc.Density, mc.Friction)
		if err != nil {
			return fmt.Errorf("materials[%d]: %w", i, err)
		}
		if err := reg.Register(m); err != nil {
			return fmt.Errorf("materials[%d]: %w", i, err)
		}
	}
	return nil
}
