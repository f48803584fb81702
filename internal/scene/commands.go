package scene

import (
	"fmt"
	"math"
	"time"

	"physics-arena/internal/commands"
	"physics-arena/internal/engineconfig"
	"physics-arena/internal/physics"

	"github.com/go-gl/mathgl/mgl64"
)

// RegisterCommands installs the scene's console commands on reg. Command output goes to
// the scene's logger. Gravity axes left unset keep their current value.
func RegisterCommands(reg *commands.Registry, s *Scene) {
	{
		fs := commands.NewFlagSet("gravity")
		x := fs.Float64("x", math.NaN(), "gravity x")
		y := fs.Float64("y", math.NaN(), "gravity y")
		invert := fs.Bool("invert", false, "flip gravity")
		reg.Register("gravity", "[-x X -y Y | -invert]", fs, func([]string) error {
			switch {
			case *invert:
				s.World.InvertGravity()
			case !math.IsNaN(*x) || !math.IsNaN(*y):
				g := s.World.Gravity
				if !math.IsNaN(*x) {
					g[0] = *x
				}
				if !math.IsNaN(*y) {
					g[1] = *y
				}
				s.World.SetGravity(g)
			}
			s.log.Logf("gravity %v", s.World.Gravity)
			return nil
		})
	}
	{
		fs := commands.NewFlagSet("push")
		name := fs.String("name", PlayerName, "body name")
		fx := fs.Float64("fx", 0, "force x")
		fy := fs.Float64("fy", 0, "force y")
		reg.Register("push", "[-name N] -fx X -fy Y", fs, func([]string) error {
			return s.Push(*name, mgl64.Vec2{*fx, *fy})
		})
	}
	{
		fs := commands.NewFlagSet("spawn")
		n := fs.Int("n", 1, "how many bodies")
		x := fs.Float64("x", 0, "left")
		y := fs.Float64("y", 0, "top")
		size := fs.Float64("size", 8, "width and height")
		mass := fs.Float64("mass", 1, "mass")
		material := fs.String("material", physics.Rubber.Name, "material name")
		ttl := fs.Duration("ttl", 0, "lifetime, 0 = persistent")
		typ := fs.String("type", physics.Dynamic.String(), "none, static or dynamic")
		reg.Register("spawn", "[-n N] -x X -y Y [-size S] [-mass M] [-material NAME] [-type T] [-ttl D]", fs, func([]string) error {
			m, err := s.Materials.Lookup(*material)
			if err != nil {
				return err
			}
			pt, err := physics.ParsePhysicType(*typ)
			if err != nil {
				return err
			}
			for i := 0; i < *n; i++ {
				b, err := s.Spawn(physics.BodyDef{
					Shape:    "ellipse",
					Position: mgl64.Vec2{*x + float64(i)*(*size), *y},
					Width:    *size, Height: *size,
					Mass:     *mass,
					Material: m,
					Type:     pt,
					Lifetime: *ttl,
				})
				if err != nil {
					return err
				}
				s.log.Logf("spawned %s #%d at %v", b.Name, b.ID, b.Position)
			}
			return nil
		})
	}
	{
		fs := commands.NewFlagSet("step")
		n := fs.Int("n", 1, "frames")
		dt := fs.Duration("dt", 16*time.Millisecond, "frame time")
		reg.Register("step", "[-n N] [-dt D]", fs, func([]string) error {
			if *n < 0 || *dt < 0 {
				return fmt.Errorf("step: n and dt must be >= 0")
			}
			for i := 0; i < *n; i++ {
				s.Update(*dt)
			}
			st := s.Stats()
			s.log.Logf("frame %d: %d bodies, %d collided", st.Frames, st.Bodies, st.Collided)
			return nil
		})
	}
	{
		fs := commands.NewFlagSet("pick")
		x := fs.Float64("x", 0, "x")
		y := fs.Float64("y", 0, "y")
		reg.Register("pick", "-x X -y Y", fs, func([]string) error {
			b, ok := s.Pick(mgl64.Vec2{*x, *y})
			if !ok {
				s.log.Logf("pick (%v, %v): nothing", *x, *y)
				return nil
			}
			s.log.Logf("pick (%v, %v): %s", *x, *y, describe(b))
			return nil
		})
	}
	{
		fs := commands.NewFlagSet("arena")
		w := fs.Float64("w", 0, "width, 0 = keep")
		h := fs.Float64("h", 0, "height, 0 = keep")
		reg.Register("arena", "[-w W] [-h H]", fs, func([]string) error {
			if *w != 0 || *h != 0 {
				if err := s.Resize(*w, *h); err != nil {
					return err
				}
			}
			a, l := s.Engine.Area(), s.Engine.Limits()
			s.log.Logf("arena (%g, %g) %gx%g", a.X, a.Y, a.W, a.H)
			s.log.Logf("limits acc [%g, %g] speed [%g, %g] col [%g, %g]",
				l.AccMin, l.AccMax, l.SpeedMin, l.SpeedMax, l.ColSpeedMin, l.ColSpeedMax)
			return nil
		})
	}
	{
		fs := commands.NewFlagSet("save")
		path := fs.String("path", engineconfig.ConfigPath, "config file")
		reg.Register("save", "[-path P]", fs, func([]string) error {
			if err := engineconfig.Save(*path, s.Config()); err != nil {
				return err
			}
			s.log.Logf("saved %s", *path)
			return nil
		})
	}
	reg.Register("materials", "", nil, func([]string) error {
		for _, name := range s.Materials.Names() {
			m, _ := s.Materials.Lookup(name)
			s.log.Logf("%s elasticity=%g density=%g friction=%g", m.Name, m.Elasticity, m.Density, m.Friction)
		}
		return nil
	})
	reg.Register("reset", "", nil, func([]string) error {
		return s.Reset()
	})
	reg.Register("list", "", nil, func([]string) error {
		for _, b := range s.Arena.Bodies() {
			s.log.Logf("%s", describe(b))
		}
		return nil
	})
}

func describe(b *physics.Body) string {
	return fmt.Sprintf("#%d %s %s %s pos=(%.2f, %.2f) vel=(%.3f, %.3f) contacts=%v",
		b.ID, b.Name, b.Type, b.Material.Name,
		b.Position[0], b.Position[1], b.Velocity[0], b.Velocity[1], b.Contacts)
}
