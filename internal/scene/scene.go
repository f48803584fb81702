package scene

import (
	"errors"
	"fmt"
	"time"

	"physics-arena/internal/engineconfig"
	"physics-arena/internal/mapgen"
	"physics-arena/internal/physics"
	"physics-arena/internal/vmath"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// PlayerName is the body driven by Move and Jump.
	PlayerName = "player"
	// ScoreName is the HUD body showing the score.
	ScoreName = "score"

	// A plain push and gravity both clear the default acc_min on a 16ms frame at this mass.
	playerMass   = 40.0
	playerSize   = 16.0
	floorHeight  = 8.0
	floorMass    = 1000.0
	scorePerTick = 10
)

// PlayerMaterial is used when the config does not declare a "player" material.
var PlayerMaterial = physics.Material{Name: "player", Elasticity: 0.98, Density: 0.6, Friction: 0.95}

// Scene owns one running simulation: the arena of bodies, its world, the integrator and
// the collision detector. All methods must be called from the goroutine running Update.
type Scene struct {
	cfg       engineconfig.Config
	log       physics.Logger
	Materials *physics.MaterialRegistry
	World     *physics.World
	Engine    *physics.Engine
	Detector  *physics.Detector
	Arena     *physics.Arena
	// Camera follows the player; None bodies are drawn relative to it.
	Camera Camera

	player  physics.BodyID
	seed    int64
	frames  int
	score   int
	spawned int
}

// New builds the demo scene described by cfg. log may be nil.
func New(cfg engineconfig.Config, log physics.Logger) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = discard{}
	}
	reg := physics.NewMaterialRegistry()
	if err := cfg.RegisterMaterials(reg); err != nil {
		return nil, err
	}
	if _, err := reg.Lookup(PlayerMaterial.Name); errors.Is(err, physics.ErrUnknownMaterial) {
		if err := reg.Register(PlayerMaterial); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}
	world := physics.NewWorld(cfg.GravityVec())
	engine := physics.NewEngine(world, cfg.EngineOptions(log))
	s := &Scene{
		cfg:       cfg,
		log:       log,
		Materials: reg,
		World:     world,
		Engine:    engine,
		Detector:  physics.NewDetector(engine),
	}
	if err := s.Build(); err != nil {
		return nil, err
	}
	return s, nil
}

type discard struct{}

func (discard) Logf(string, ...any) {}

// Build replaces the arena with a fresh demo layout: player, floor, generated platforms,
// a few balls and the HUD. Gravity is left as it is.
func (s *Scene) Build() error {
	area := s.cfg.Area()
	s.Engine.SetArea(area)
	arena := physics.NewArena()
	player, err := s.Materials.Lookup(PlayerMaterial.Name)
	if err != nil {
		return err
	}

	defs := []physics.BodyDef{
		{
			Name:     PlayerName,
			Shape:    "ellipse",
			Position: area.Center().Sub(mgl64.Vec2{playerSize / 2, playerSize / 2}),
			Width:    playerSize, Height: playerSize,
			Mass:     playerMass,
			Material: player,
			Type:     physics.Dynamic,
		},
		{
			Name:     "pf_floor",
			Position: mgl64.Vec2{area.X, area.Y + area.H - floorHeight},
			Width:    area.W, Height: floorHeight,
			Mass:     floorMass,
			Material: physics.Steel,
			Type:     physics.Static,
		},
	}

	p := s.cfg.Platforms
	opts := mapgen.DefaultPlatformOptions(vmath.Rect{X: area.X, Y: area.Y, W: area.W, H: area.H - floorHeight})
	opts.Count, opts.Tile, opts.Border = p.Count, p.Tile, p.Border
	opts.MinWidth, opts.MaxWidth = p.MinWidth, p.MaxWidth
	opts.Seed = s.cfg.Seed
	platforms, seed := mapgen.GeneratePlatforms(opts)
	defs = append(defs, platforms...)

	for i, m := range []physics.Material{physics.Rubber, physics.SuperBall, physics.Steel} {
		defs = append(defs, physics.BodyDef{
			Name:     "ball_" + m.Name,
			Shape:    "ellipse",
			Position: mgl64.Vec2{area.X + area.W*float64(i+1)/4, area.Y + 24},
			Velocity: mgl64.Vec2{0.1 * float64(i-1), 0},
			Width:    10, Height: 10,
			Mass:     2,
			Material: m,
			Type:     physics.Dynamic,
		})
	}

	defs = append(defs, physics.BodyDef{
		Name:     ScoreName,
		Shape:    "text",
		Position: mgl64.Vec2{area.X + 8, area.Y + 8},
		Width:    64, Height: 16,
		Mass:     1,
		Material: physics.Default,
		Type:     physics.None,
	})

	for _, def := range defs {
		b, err := physics.NewBody(def)
		if err != nil {
			s.log.Logf("scene: rejected body: %v", err)
			return err
		}
		id := arena.Add(b)
		if def.Name == PlayerName {
			s.player = id
		}
	}

	s.Arena = arena
	w, h := s.cfg.CameraSize()
	s.Camera = Camera{Width: w, Height: h, Tween: s.cfg.Camera.Tween, Bounds: area}
	if b, ok := arena.Get(s.player); ok {
		s.Camera.Snap(b.Bounds())
	}
	s.seed = seed
	s.frames = 0
	s.score = 0
	s.spawned = 0
	s.log.Logf("scene: built %d bodies (platform seed %d)", arena.Len(), seed)
	return nil
}

// Reset restores the configured gravity and rebuilds the scene.
func (s *Scene) Reset() error {
	s.World.SetGravity(s.cfg.GravityVec())
	return s.Build()
}

// Update advances the simulation by one frame: expired bodies are dropped, every body is
// integrated and kept in the arena, contacts are rebuilt by the detector and the camera
// eases toward the player.
func (s *Scene) Update(elapsed time.Duration) {
	for _, b := range s.Arena.Bodies() {
		b.Age(elapsed)
	}
	if n := s.Arena.RemoveExpired(); n > 0 {
		s.log.Logf("scene: %d bodies expired", n)
	}
	s.Engine.Update(s.Arena, elapsed)
	s.Arena.ClearContacts()
	s.Detector.Update(s.Arena)
	if p, ok := s.Player(); ok {
		s.Camera.Follow(p.Bounds(), elapsed)
	}
	s.frames++
	s.score += scorePerTick
}

// Player returns the player body, if it is still in the arena.
func (s *Scene) Player() (*physics.Body, bool) {
	return s.Arena.Get(s.player)
}

// Push queues force f on the named body.
func (s *Scene) Push(name string, f mgl64.Vec2) error {
	b, ok := s.Arena.Lookup(name)
	if !ok {
		return fmt.Errorf("no body named %q", name)
	}
	b.AddForce(f)
	return nil
}

// Spawn adds a body built from def, naming it when def.Name is empty.
func (s *Scene) Spawn(def physics.BodyDef) (*physics.Body, error) {
	if def.Name == "" {
		def.Name = fmt.Sprintf("spawn_%d", s.spawned)
	}
	b, err := physics.NewBody(def)
	if err != nil {
		s.log.Logf("scene: rejected body: %v", err)
		return nil, err
	}
	s.Arena.Add(b)
	s.spawned++
	return b, nil
}

// InvertGravity flips the world gravity.
func (s *Scene) InvertGravity() {
	s.World.InvertGravity()
	s.log.Logf("scene: gravity now %v", s.World.Gravity)
}

// Pick returns the first body under p.
func (s *Scene) Pick(p mgl64.Vec2) (*physics.Body, bool) {
	return s.Detector.Pick(s.Arena, p)
}

// Snapshot copies every body for a renderer.
func (s *Scene) Snapshot() ([]physics.BodyState, error) {
	return physics.Snapshot(s.Arena)
}

// Labels returns the text shown by "text" bodies, keyed by body name.
func (s *Scene) Labels() map[string]string {
	return map[string]string{ScoreName: fmt.Sprintf("%06d", s.score)}
}

// Stats summarizes the arena after the latest frame.
type Stats struct {
	Frames   int
	Score    int
	Seed     int64
	Bodies   int
	Dynamic  int
	Static   int
	None     int
	Collided int
	Contacts int
	Gravity  mgl64.Vec2
}

// Stats counts bodies by type and contact state.
func (s *Scene) Stats() Stats {
	st := Stats{
		Frames:  s.frames,
		Score:   s.score,
		Seed:    s.seed,
		Bodies:  s.Arena.Len(),
		Gravity: s.World.Gravity,
	}
	for _, b := range s.Arena.Bodies() {
		switch b.Type {
		case physics.Dynamic:
			st.Dynamic++
		case physics.Static:
			st.Static++
		case physics.None:
			st.None++
		}
		if len(b.Contacts) > 0 {
			st.Collided++
		}
		st.Contacts += len(b.Contacts)
	}
	return st
}

// Config returns the scene's configuration with the current gravity and arena size.
func (s *Scene) Config() engineconfig.Config {
	cfg := s.cfg
	g := s.World.Gravity
	cfg.Gravity = [2]float64{g[0], g[1]}
	return cfg
}

// Resize changes the play area's extent, keeping its origin. A zero w or h keeps that
// axis. The layout is not rebuilt; Reset uses the new size.
func (s *Scene) Resize(w, h float64) error {
	cfg := s.cfg
	if w != 0 {
		cfg.Arena.Width = w
	}
	if h != 0 {
		cfg.Arena.Height = h
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	s.cfg = cfg
	s.Engine.SetArea(cfg.Area())
	s.Camera.Bounds = cfg.Area()
	s.Camera.Width, s.Camera.Height = cfg.CameraSize()
	return nil
}
